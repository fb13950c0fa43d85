// Package solver implements the Solver stage (§4.6): single-source
// Bellman–Ford from G_pc's Origin, detecting a negative cycle rather
// than reconstructing one (the pipeline only needs to know retiming is
// infeasible, not where the cycle lives).
//
// Grounded on the Bellman–Ford/SPFA style of detecting negative cycles
// by counting relaxations (see the sibling watcher repo's
// internal/detector/bellmanford.go, which returns a hasNegativeCycle
// bool from the same relax-and-count idea), but implemented as the
// classical |V|-1 full passes plus one verification pass per spec §4.6,
// since G_pc is already dense and a queue-based SPFA buys nothing once
// every pass is O(V²) anyway (§9: "Bellman-Ford's O(V·E) cost is
// O(N³), matching the W/D construction").
//
// Infinite is the saturating sentinel for "not yet reached". It must
// dominate the sum of any two PC-graph edge weights without
// overflowing int64; §9 flags that a short-integer sentinel can
// overflow on large graphs, so this implementation uses MaxInt64/4.
package solver
