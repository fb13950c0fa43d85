package matrix

import "errors"

// ErrInvalidSide indicates a requested matrix side is not strictly positive.
var ErrInvalidSide = errors.New("matrix: side must be > 0")

// ErrOutOfRange indicates a row or column index outside [0, side).
var ErrOutOfRange = errors.New("matrix: index out of range")

// ErrSizeMismatch indicates an operation (CopyFrom) was attempted between
// matrices of differing side. A mismatch here is a contract violation
// (§7 MatrixSizeMismatch), not a recoverable runtime condition.
var ErrSizeMismatch = errors.New("matrix: size mismatch")
