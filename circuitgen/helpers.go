package circuitgen

import "github.com/katalvlaran/retime/core"

// newCircuit allocates delays for SOURCE plus n internal vertices
// (SOURCE's own delay is always 0, per §3) and constructs the
// underlying graph. Internal vertices are 1..n.
func newCircuit(n int, cfg generatorConfig) (*core.Graph, error) {
	delays := make([]int64, n+1)
	for v := 1; v <= n; v++ {
		delays[v] = cfg.randDelay()
	}
	return core.NewGraph(delays, cfg.controlSteps)
}

// wireSource connects SOURCE to every vertex in entries; the edge
// weight requested here is irrelevant since core.Graph.AddEdge
// overrides any SOURCE-outgoing weight with controlSteps.
func wireSource(g *core.Graph, entries ...int) error {
	for _, v := range entries {
		if _, err := g.AddEdge(core.SOURCE, v, 0); err != nil {
			return err
		}
	}
	return nil
}
