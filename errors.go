package msm

import "errors"

var (
	// ErrIndexLengthMismatch reports firstIndex and secondIndex slices of
	// different lengths.
	ErrIndexLengthMismatch = errors.New("msm: index slices must have the same length")

	// ErrIndexOutOfRange reports an index outside [0, len(points)).
	ErrIndexOutOfRange = errors.New("msm: point index out of range")

	// ErrNotInvertible reports a pair with coinciding x-coordinates, which
	// makes the batched product non-invertible.
	ErrNotInvertible = errors.New("msm: zero x-coordinate difference, batch product not invertible")
)
