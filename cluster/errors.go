package cluster

import "errors"

var (
	// ErrNoVectors is returned when FitTransform is called with no input.
	ErrNoVectors = errors.New("no vectors to cluster")

	// ErrDimensionMismatch is returned when input vectors have differing lengths.
	ErrDimensionMismatch = errors.New("vectors have mismatched dimensions")
)
