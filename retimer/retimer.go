package retimer

import (
	"errors"

	"github.com/katalvlaran/retime/core"
	"github.com/katalvlaran/retime/pc"
)

// ErrVectorTooShort indicates r does not have one entry per G_pc vertex
// (N+1 entries for an N-vertex main graph).
var ErrVectorTooShort = errors.New("retimer: retiming vector shorter than N+1")

// Apply rewrites every edge of g in place using the retiming vector r.
// It does not validate that the result is non-negative — that is a
// theorem of a feasible retiming (§4.7), not a runtime condition — but
// callers that want a defensive check can follow up with
// g.AssertNonNegative().
func Apply(g *core.Graph, r []int64) error {
	if len(r) < g.NumVertices()+1 {
		return ErrVectorTooShort
	}

	for _, e := range g.Edges() {
		shifted := e.Weight + r[pc.VertexOf(e.To)] - r[pc.VertexOf(e.From)]
		g.SetWeight(e, shifted)
	}

	return nil
}
