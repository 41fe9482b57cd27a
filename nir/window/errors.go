package window

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by window generation.
var (
	ErrLength      = errors.New("window: length must be at least 1")
	ErrUnknownType = errors.New("window: unknown type")
	ErrBeta        = errors.New("window: kaiser beta must be >= 0")
	ErrSigma       = errors.New("window: gauss sigma must be > 0")
	ErrShapeFunc   = errors.New("window: custom type requires a shape function")
	ErrZeroSum     = errors.New("window: coefficients sum to zero")
)

var errEmptyCoeffs = errors.New("window: coefficients must not be empty")

func validateLength(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", ErrLength, n)
	}
	return nil
}

func validateType(t Type, cfg config) error {
	switch t {
	case TypeKaiser:
		if cfg.beta < 0 || !isFinite(cfg.beta) {
			return fmt.Errorf("%w: %v", ErrBeta, cfg.beta)
		}
	case TypeGauss:
		if cfg.sigma <= 0 || !isFinite(cfg.sigma) {
			return fmt.Errorf("%w: %v", ErrSigma, cfg.sigma)
		}
	case TypeCustom:
		if cfg.shape == nil {
			return ErrShapeFunc
		}
	case TypeFlat, TypeTriangle, TypeBartlett, TypeHann, TypeHamming,
		TypeBlackman, TypeBlackmanHarris, TypeNuttall, TypeFlatTop:
	default:
		return fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
