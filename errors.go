package retime

import "errors"

// ErrCycleInGraph is returned when the input circuit contains a
// zero-weight cycle. Such a circuit has a combinational loop and
// cannot be retimed; Run aborts before touching the graph.
var ErrCycleInGraph = errors.New("retime: zero-weight cycle in circuit graph")

// ErrNegativeCycleInPC is returned when no retiming exists that meets
// the requested clock period: the PC constraint graph contains a
// negative-weight cycle. Run aborts without mutating the input graph.
var ErrNegativeCycleInPC = errors.New("retime: no retiming meets the requested clock period")
