// Package detrend removes per-row polynomial baselines from spectra.
//
// Scatter correction leaves smooth curvature behind; detrending fits a
// polynomial of configurable order to each row over the normalized channel
// axis and subtracts it, the usual companion step to SNV. The fit is
// ordinary least squares against a Vandermonde design matrix shared by all
// rows and factorized once per call.
package detrend

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Errors returned by Apply and ApplyTo.
var (
	ErrOrder         = errors.New("detrend: polynomial order out of range")
	ErrEmptyMatrix   = errors.New("detrend: empty spectra matrix")
	ErrShapeMismatch = errors.New("detrend: destination shape mismatch")
)

// Option configures detrending.
type Option func(*config)

type config struct {
	order int
}

func defaultConfig() config {
	return config{order: 2}
}

// WithOrder sets the baseline polynomial order. Must be non-negative and
// less than the channel count. Default 2.
func WithOrder(p int) Option {
	return func(c *config) { c.order = p }
}

// Apply detrends every row of spectra, returning a new matrix of the same
// shape. The input is never modified.
func Apply(spectra *mat.Dense, opts ...Option) (*mat.Dense, error) {
	r, c := spectra.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyMatrix
	}

	dst := mat.NewDense(r, c, nil)
	if err := ApplyTo(dst, spectra, opts...); err != nil {
		return nil, err
	}
	return dst, nil
}

// ApplyTo detrends every row of src into dst, which must have the same
// shape. dst == src detrends in place.
func ApplyTo(dst, src *mat.Dense, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	r, c := src.Dims()
	if r == 0 || c == 0 {
		return ErrEmptyMatrix
	}
	if dr, dc := dst.Dims(); dr != r || dc != c {
		return fmt.Errorf("%w: expected %dx%d, got %dx%d", ErrShapeMismatch, r, c, dr, dc)
	}
	if cfg.order < 0 || cfg.order >= c {
		return fmt.Errorf("%w: order %d with %d channels", ErrOrder, cfg.order, c)
	}

	// Channels mapped to [-1, 1] keep the Vandermonde columns from
	// blowing up at higher orders.
	xs := make([]float64, c)
	step := 0.0
	if c > 1 {
		step = 2 / float64(c-1)
	}
	for j := range xs {
		xs[j] = -1 + float64(j)*step
	}

	design := mat.NewDense(c, cfg.order+1, nil)
	for j, x := range xs {
		v := 1.0
		for k := 0; k <= cfg.order; k++ {
			design.Set(j, k, v)
			v *= x
		}
	}

	var qr mat.QR
	qr.Factorize(design)

	var beta mat.VecDense
	for i := 0; i < r; i++ {
		row := src.RawRowView(i)

		if err := qr.SolveVecTo(&beta, false, mat.NewVecDense(c, row)); err != nil {
			return fmt.Errorf("detrend: baseline fit failed: %w", err)
		}

		out := dst.RawRowView(i)
		for j, x := range xs {
			base := beta.AtVec(cfg.order)
			for k := cfg.order - 1; k >= 0; k-- {
				base = base*x + beta.AtVec(k)
			}
			out[j] = row[j] - base
		}
	}
	return nil
}
