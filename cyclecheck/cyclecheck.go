package cyclecheck

import "github.com/katalvlaran/retime/core"

// HasZeroWeightCycle reports whether g's zero-weight subgraph contains a
// directed cycle. It visits every vertex as a DFS root; recursion only
// follows edges with weight 0, and a back-edge into the current DFS
// tree's on-stack set signals a cycle.
func HasZeroWeightCycle(g *core.Graph) bool {
	n := g.NumVertices()
	visited := make([]bool, n)

	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		onStack := make([]bool, n)
		if visit(g, root, visited, onStack) {
			return true
		}
	}

	return false
}

// visit runs one DFS tree rooted at u, restricted to zero-weight edges.
func visit(g *core.Graph, u int, visited, onStack []bool) bool {
	visited[u] = true
	onStack[u] = true

	edges, _ := g.OutEdges(u) // u is always in range: caller bounds root/recursion by NumVertices
	for _, e := range edges {
		if e.Weight != 0 {
			continue
		}
		if onStack[e.To] {
			return true
		}
		if !visited[e.To] {
			if visit(g, e.To, visited, onStack) {
				return true
			}
		}
	}

	onStack[u] = false

	return false
}
