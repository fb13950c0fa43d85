package schedule

import "github.com/katalvlaran/retime/core"

// Build runs BFS from core.SOURCE over g and returns the schedule
// vector s, where s[v] is the cumulative edge-weight sum along the BFS
// tree path from SOURCE to v, plus δ[SOURCE] at the root. Vertices
// unreachable from SOURCE are left at 0.
func Build(g *core.Graph) ([]int64, error) {
	n := g.NumVertices()
	s := make([]int64, n)
	visited := make([]bool, n)

	root := core.SOURCE
	rootDelay, err := g.Delay(root)
	if err != nil {
		return nil, err
	}
	s[root] = rootDelay
	visited[root] = true

	queue := []int{root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		edges, err := g.OutEdges(u)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			v := e.To
			if visited[v] {
				continue
			}
			visited[v] = true
			s[v] = s[u] + e.Weight
			queue = append(queue, v)
		}
	}

	return s, nil
}
