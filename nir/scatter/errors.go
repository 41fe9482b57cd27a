package scatter

import "errors"

// Errors returned by the correction functions.
var (
	ErrEmptyMatrix     = errors.New("scatter: empty spectra matrix")
	ErrShapeMismatch   = errors.New("scatter: destination shape mismatch")
	ErrReferenceLength = errors.New("scatter: reference length mismatch")
)
