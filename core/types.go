package core

import "fmt"

// Edge is a directed connection From -> To carrying Weight latches.
// Edge identity is the pointer itself: Graph hands out *Edge so callers
// (notably retimer) can mutate Weight in place without a lookup.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// Graph is a directed, edge-weighted, vertex-delayed circuit graph over
// vertex IDs [0, N). See the package doc for the single-threaded,
// mutate-only-via-retimer contract.
type Graph struct {
	delay        []int64  // delay[v] = combinational delay at v, immutable after NewGraph
	out          [][]*Edge // out[v] = edges leaving v, in insertion order
	edges        []*Edge   // all edges, in insertion order
	controlSteps int64     // weight forced onto every SOURCE-outgoing edge
}

// NewGraph constructs a Graph over len(delay) vertices with the given
// per-vertex delays. controlSteps is the latch count that will override
// any caller-supplied weight on edges leaving SOURCE (§3, §6.1).
func NewGraph(delay []int64, controlSteps int64) (*Graph, error) {
	for v, d := range delay {
		if d < 0 {
			return nil, fmt.Errorf("core: vertex %d: %w", v, ErrNegativeDelay)
		}
	}

	n := len(delay)
	g := &Graph{
		delay:        append([]int64(nil), delay...),
		out:          make([][]*Edge, n),
		edges:        make([]*Edge, 0, n),
		controlSteps: controlSteps,
	}

	return g, nil
}

// NumVertices returns N, the number of vertices in the graph.
func (g *Graph) NumVertices() int {
	return len(g.delay)
}

// checkVertex validates that v is a vertex index of g.
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= len(g.delay) {
		return fmt.Errorf("core: vertex %d: %w", v, ErrVertexOutOfRange)
	}

	return nil
}

// Delay returns δ[v], the combinational propagation delay at vertex v.
func (g *Graph) Delay(v int) (int64, error) {
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}

	return g.delay[v], nil
}

// AddEdge inserts a directed edge from -> to with the given weight and
// returns the stored *Edge. Any edge whose tail is SOURCE has its weight
// overridden to the graph's configured control_steps, regardless of the
// weight argument (§3, §6.1) — the loader relies on this to implement
// the input-file override rule.
func (g *Graph) AddEdge(from, to int, weight int64) (*Edge, error) {
	if err := g.checkVertex(from); err != nil {
		return nil, err
	}
	if err := g.checkVertex(to); err != nil {
		return nil, err
	}
	if from == SOURCE {
		weight = g.controlSteps
	}
	if weight < 0 {
		return nil, fmt.Errorf("core: edge %d->%d: %w", from, to, ErrNegativeWeight)
	}

	e := &Edge{From: from, To: to, Weight: weight}
	g.out[from] = append(g.out[from], e)
	g.edges = append(g.edges, e)

	return e, nil
}

// OutEdges returns the edges leaving v, in the order they were added.
// The returned slice aliases Graph's internal storage; callers must not
// mutate it (mutate Edge.Weight via SetWeight instead).
func (g *Graph) OutEdges(v int) ([]*Edge, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	return g.out[v], nil
}

// Edges returns every edge in the graph, in insertion order.
func (g *Graph) Edges() []*Edge {
	return g.edges
}

// WeightAt returns the weight of the (first, since the graph is
// multi-edge-free) edge from -> to, or ErrEdgeNotFound if none exists.
func (g *Graph) WeightAt(from, to int) (int64, error) {
	if err := g.checkVertex(from); err != nil {
		return 0, err
	}
	for _, e := range g.out[from] {
		if e.To == to {
			return e.Weight, nil
		}
	}

	return 0, fmt.Errorf("core: %d->%d: %w", from, to, ErrEdgeNotFound)
}

// SetWeight overwrites e's weight. Used by retimer to apply the
// computed retiming vector; no non-negativity check is enforced here
// because a feasible retiming is a theorem to produce non-negative
// weights (§4.7) — callers that want a defensive check should use
// AssertNonNegative after a full retiming pass.
func (g *Graph) SetWeight(e *Edge, w int64) {
	e.Weight = w
}

// AssertNonNegative reports whether every edge in the graph currently
// carries a non-negative weight. Intended as a post-retiming sanity
// check (§4.7), not a runtime guard.
func (g *Graph) AssertNonNegative() bool {
	for _, e := range g.edges {
		if e.Weight < 0 {
			return false
		}
	}

	return true
}
