// Package matrix provides a dense, square, integer-valued matrix used by
// the retiming pipeline to hold the W (minimum latch count) and D (maximum
// combinational delay) tables, and the PC constraint matrix derived from
// them.
//
// Dense stores a single owned flat block of side N (row-major), the target
// language's value-copy idiom for the teacher's "raw nested arrays and
// manual copy" representation. INF is the sentinel for "no path" in W;
// it is large enough that two INF-adjacent sums never wrap an int64.
package matrix
