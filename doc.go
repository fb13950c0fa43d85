// Package retime implements the Leiserson–Saxe retiming transformation
// for synchronous circuits: given a directed, edge-weighted,
// vertex-delayed circuit graph and a target clock period, it
// redistributes latches across edges so the circuit's critical path
// meets that period, without changing the circuit's function.
//
// Run sequences the pipeline end to end:
//
//	cyclecheck -> wd -> pc -> solver -> retimer -> schedule
//
// Each stage lives in its own package (core, matrix, cyclecheck, wd,
// pc, solver, retimer, schedule); this package is the thin facade that
// wires them together and is what cmd/retime and library callers use.
// The ioformat package handles the text graph file format; circuitgen
// generates synthetic circuits for experimentation and tests.
//
//	go get github.com/katalvlaran/retime
package retime
