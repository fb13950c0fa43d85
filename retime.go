package retime

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/retime/core"
	"github.com/katalvlaran/retime/cyclecheck"
	"github.com/katalvlaran/retime/pc"
	"github.com/katalvlaran/retime/retimer"
	"github.com/katalvlaran/retime/schedule"
	"github.com/katalvlaran/retime/solver"
	"github.com/katalvlaran/retime/wd"
)

// Run executes the full retiming pipeline against g:
//
//	cyclecheck -> wd -> pc -> solver -> retimer -> schedule
//
// g is mutated in place by retimer.Apply only once a feasible retiming
// has been found; on any error g is left untouched (§4.9, §7).
func Run(g *core.Graph, cfg Config) (*Result, error) {
	if cyclecheck.HasZeroWeightCycle(g) {
		return nil, ErrCycleInGraph
	}

	W, D, err := wd.Build(g)
	if err != nil {
		return nil, fmt.Errorf("retime: building W/D matrices: %w", err)
	}

	pcMatrix, pcGraph, err := pc.Build(W, D, cfg.ClockPeriod)
	if err != nil {
		return nil, fmt.Errorf("retime: building PC graph: %w", err)
	}

	r, err := solver.Solve(pcGraph)
	if err != nil {
		if errors.Is(err, solver.ErrNegativeCycle) {
			return nil, fmt.Errorf("%w: %v", ErrNegativeCycleInPC, err)
		}
		return nil, fmt.Errorf("retime: solving PC graph: %w", err)
	}

	if err := retimer.Apply(g, r); err != nil {
		return nil, fmt.Errorf("retime: applying retiming vector: %w", err)
	}

	s, err := schedule.Build(g)
	if err != nil {
		return nil, fmt.Errorf("retime: scheduling retimed graph: %w", err)
	}

	return &Result{
		W:        W,
		D:        D,
		PCMatrix: pcMatrix,
		PCGraph:  pcGraph,
		Retiming: r,
		Schedule: s,
	}, nil
}
