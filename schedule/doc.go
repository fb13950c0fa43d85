// Package schedule implements the Scheduler stage (§4.8): a breadth-first
// walk of the (post-retiming) main graph from SOURCE that assigns each
// vertex a cumulative schedule time.
//
// Grounded on the teacher's bfs package (see bfs/bfs.go's walker/queue
// shape), simplified to this package's narrower contract: s[SOURCE] is
// seeded with δ[0] rather than 0 (§9 note 2 — preserved for
// compatibility, not "fixed"), each BFS-tree edge u->v adds its weight
// to s[u] to produce s[v], a vertex reached more than once keeps the
// value from its first visit, and a vertex never reached from SOURCE
// keeps its zero-valued initial entry.
package schedule
