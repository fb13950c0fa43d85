// Package wd implements WDBuilder (§4.4): for every source vertex s it
// runs a modified Dijkstra over the main graph that fills row s of two
// matrices at once —
//
//   - W[s][v]: the ordinary shortest-path distance in edge weights.
//   - D[s][v]: among all W[s][v]-minimizing paths, the largest total
//     vertex-delay sum (the delay tie-breaker).
//
// The heap and lazy-decrease-key structure follow the teacher's
// dijkstra package (see dijkstra/dijkstra.go's nodePQ and "lazy
// priority queue" doc comments), adapted in two ways the plain
// shortest-path algorithm doesn't need:
//
//  1. A popped vertex is not permanently finalized. Because the delay
//     tie-breaker can raise D[s][v] after v's distance was already
//     settled, v may be re-enqueued and re-processed; a second
//     extraction is only acted on if it carries a strictly better D
//     than the last time v's out-edges were relaxed (tracked by
//     lastProcessedD), per spec §9's "accept a second extraction only
//     when it carries a strictly better D".
//  2. Before adopting a new parent for v (on either a distance
//     improvement or a delay-only tie-break), the candidate parent u
//     must not already lie on v's current parent chain — otherwise the
//     tie-breaker could wire the parent pointers into a cycle.
//
// Tie-breaking among heap entries with equal distance is FIFO by
// insertion (a monotonically increasing sequence number breaks ties in
// the heap comparator) — deterministic, and per §5 it affects only
// which parent witness is recorded, never the final W or D values.
package wd
