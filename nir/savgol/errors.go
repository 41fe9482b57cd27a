package savgol

import "errors"

// Errors returned for invalid filter configurations. All are detected in
// New, before any spectral data is touched; callers match with errors.Is.
var (
	ErrWindowLength  = errors.New("savgol: window length must be odd and at least 1")
	ErrPolyOrder     = errors.New("savgol: polynomial order out of range")
	ErrDerivative    = errors.New("savgol: derivative order out of range")
	ErrDelta         = errors.New("savgol: delta must be positive and finite")
	ErrEmptyMatrix   = errors.New("savgol: empty spectra matrix")
	ErrWindowTooWide = errors.New("savgol: window length exceeds channel count")
	ErrShapeMismatch = errors.New("savgol: destination shape mismatch")
)
