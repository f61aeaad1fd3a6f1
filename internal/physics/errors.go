package physics

import "errors"

// Validated preconditions. Numeric domain problems (zero density, log of a
// non-positive argument) are not checked and propagate as NaN or Inf.
var (
	// ErrInsufficientSamples indicates a profile too short for the operation.
	ErrInsufficientSamples = errors.New("physics: profile needs at least two samples")

	// ErrLengthMismatch indicates element-wise operands of different lengths.
	ErrLengthMismatch = errors.New("physics: profile lengths differ")
)
