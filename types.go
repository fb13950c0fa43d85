package retime

import "github.com/katalvlaran/retime/matrix"

// Config holds the parameters a retiming run needs beyond the circuit
// graph itself.
type Config struct {
	// ControlSteps is the weight carried by every edge leaving SOURCE
	// (§3); it models the host's register-transfer control overhead.
	// Run does not read it: that weight is fixed when the graph is built
	// (core.NewGraph, ioformat.Load).
	ControlSteps int64

	// ClockPeriod is the target clock period the retimed circuit must
	// meet.
	ClockPeriod int64
}

// Result holds every artifact the pipeline produces, in case a caller
// wants to inspect intermediate stages rather than just the final
// retimed graph and schedule.
type Result struct {
	// W and D are the all-pairs weight and delay matrices (§4.3).
	W, D *matrix.Dense

	// PCMatrix is the PC[i][j] constraint matrix (§4.5).
	PCMatrix *matrix.Dense

	// PCGraph is the dense (N+1)x(N+1) constraint graph Bellman-Ford
	// runs over, with Origin at index pc.Origin (§4.5).
	PCGraph *matrix.Dense

	// Retiming is the feasible retiming vector r, indexed by
	// pc.VertexOf(v) (§4.6).
	Retiming []int64

	// Schedule is the BFS schedule vector s, one entry per vertex: the
	// edge-weight sum along the BFS tree path from SOURCE (first visit
	// wins), plus δ[SOURCE] (§4.8).
	Schedule []int64
}
