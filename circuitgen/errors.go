package circuitgen

import "errors"

// ErrTooFewVertices indicates a requested topology's parameter is
// below its minimum vertex count.
var ErrTooFewVertices = errors.New("circuitgen: too few vertices")

// ErrInvalidProbability indicates a RandomSparse probability p is
// outside [0, 1].
var ErrInvalidProbability = errors.New("circuitgen: probability out of [0,1]")

// ErrInvalidDelayRange indicates a requested delay range is empty
// (min > max) or negative.
var ErrInvalidDelayRange = errors.New("circuitgen: invalid delay range")
