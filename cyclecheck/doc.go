// Package cyclecheck detects directed cycles in the zero-weight subgraph
// of a core.Graph — the feasibility precondition retiming requires
// before any matrix work begins (§3, §4.3).
//
// The walk is DFS with an on-stack marker, grounded on the teacher's
// dfs.DetectCycles three-color recursion (see dfs/cycle.go), simplified
// to this package's narrower contract: only edges with weight 0 are
// traversed at all, "visited" is tracked globally across every root's
// DFS (not reset between roots), and "on-stack" is tracked per DFS
// tree. A later root's DFS will not re-explore a vertex a previous
// root already marked visited. Because non-zero-weight edges are never
// followed, every visited vertex was reached along zero-weight edges
// only and its zero-weight reachable set has already been searched, so
// the property of interest (any zero-weight cycle anywhere) still holds.
package cyclecheck
