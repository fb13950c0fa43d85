package matrix

import "fmt"

// INF is the sentinel "no path" value stored in W. It is chosen large
// enough that INF+INF and INF plus any realistic edge weight still fits
// well within int64, so callers never need to special-case overflow
// before comparing against it.
const INF = int64(0x3f3f3f3f)

// Dense is a square, row-major integer matrix of side N. The zero value
// is not usable; construct with NewDense or NewFilled.
type Dense struct {
	side int     // number of rows == number of columns
	data []int64 // flat backing storage, length == side*side
}

// NewDense allocates a side×side matrix with every entry set to 0.
func NewDense(side int) (*Dense, error) {
	if side <= 0 {
		return nil, ErrInvalidSide
	}

	return &Dense{side: side, data: make([]int64, side*side)}, nil
}

// NewFilled allocates a side×side matrix with every entry set to fill.
// Used to seed W with INF before relaxation writes the reachable entries.
func NewFilled(side int, fill int64) (*Dense, error) {
	d, err := NewDense(side)
	if err != nil {
		return nil, err
	}
	for i := range d.data {
		d.data[i] = fill
	}

	return d, nil
}

// Side returns the matrix's row/column count.
func (d *Dense) Side() int {
	return d.side
}

func (d *Dense) offset(row, col int) (int, error) {
	if row < 0 || row >= d.side || col < 0 || col >= d.side {
		return 0, fmt.Errorf("matrix: At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return row*d.side + col, nil
}

// At returns the value at (row, col).
func (d *Dense) At(row, col int) (int64, error) {
	off, err := d.offset(row, col)
	if err != nil {
		return 0, err
	}

	return d.data[off], nil
}

// MustAt is At without the error return, for call sites that have already
// validated row/col (e.g. loops bounded by Side()).
func (d *Dense) MustAt(row, col int) int64 {
	return d.data[row*d.side+col]
}

// Set writes v at (row, col).
func (d *Dense) Set(row, col int, v int64) error {
	off, err := d.offset(row, col)
	if err != nil {
		return err
	}
	d.data[off] = v

	return nil
}

// MustSet is Set without the error return, for call sites that have
// already validated row/col.
func (d *Dense) MustSet(row, col int, v int64) {
	d.data[row*d.side+col] = v
}

// CopyFrom overwrites d's contents with src's. Both matrices must share
// the same side; a mismatch is a contract violation (§7 MatrixSizeMismatch).
func (d *Dense) CopyFrom(src *Dense) error {
	if src == nil || d.side != src.side {
		return ErrSizeMismatch
	}
	copy(d.data, src.data)

	return nil
}

// Clone returns a new Dense with the same side and contents as d.
func (d *Dense) Clone() *Dense {
	out := &Dense{side: d.side, data: make([]int64, len(d.data))}
	copy(out.data, d.data)

	return out
}
