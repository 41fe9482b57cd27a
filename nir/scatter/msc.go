package scatter

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-nir/nir/spectra"
)

// Option configures MSC.
type Option func(*config)

type config struct {
	ref []float64
}

// WithReference supplies an explicit reference spectrum, one value per
// channel, used as given. Without it the reference is derived from the
// input; see Reference.
func WithReference(ref []float64) Option {
	return func(c *config) { c.ref = ref }
}

// MSC performs multiplicative scatter correction on every row of spectra,
// returning a new matrix of the same shape. The input is never modified.
//
// Each row is mean-centered, regressed against the reference (row ~ a*ref
// + b by ordinary least squares) and corrected to (row - b) / a. Rows with
// a numerically zero slope come out non-finite.
func MSC(spectra *mat.Dense, opts ...Option) (*mat.Dense, error) {
	r, c := spectra.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyMatrix
	}

	dst := mat.NewDense(r, c, nil)
	if err := MSCTo(dst, spectra, opts...); err != nil {
		return nil, err
	}
	return dst, nil
}

// MSCTo corrects every row of src into dst, which must have the same shape.
// dst == src corrects in place.
func MSCTo(dst, src *mat.Dense, opts ...Option) error {
	var cfg config
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
	if cfg.ref != nil && len(cfg.ref) != c {
		return fmt.Errorf("%w: expected %d, got %d", ErrReferenceLength, c, len(cfg.ref))
	}

	centered := centerRows(src)

	ref := cfg.ref
	if ref == nil {
		ref = spectra.ColumnMeans(centered)
	}

	for i := 0; i < r; i++ {
		row := centered.RawRowView(i)
		b, a := stat.LinearRegression(ref, row, nil, false)

		out := dst.RawRowView(i)
		for j, v := range row {
			out[j] = (v - b) / a
		}
	}
	return nil
}

// Reference returns the reference spectrum MSC derives when none is
// supplied: the column-wise mean of the row-centered matrix. Useful for
// correcting later batches against the same reference.
func Reference(src *mat.Dense) ([]float64, error) {
	r, c := src.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyMatrix
	}
	return spectra.ColumnMeans(centerRows(src)), nil
}

// centerRows returns a copy of src with each row shifted to zero mean.
func centerRows(src *mat.Dense) *mat.Dense {
	centered := mat.DenseCopyOf(src)
	r, _ := centered.Dims()
	for i := 0; i < r; i++ {
		row := centered.RawRowView(i)
		floats.AddConst(-stat.Mean(row, nil), row)
	}
	return centered
}
