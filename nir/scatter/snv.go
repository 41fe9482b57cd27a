package scatter

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// SNV applies the standard normal variate transform to every row of
// spectra, returning a new matrix of the same shape. The input is never
// modified.
//
// Each row is shifted to zero mean and scaled to unit population standard
// deviation. Zero-variance rows come out non-finite.
func SNV(spectra *mat.Dense) (*mat.Dense, error) {
	r, c := spectra.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyMatrix
	}

	dst := mat.NewDense(r, c, nil)
	if err := SNVTo(dst, spectra); err != nil {
		return nil, err
	}
	return dst, nil
}

// SNVTo transforms every row of src into dst, which must have the same
// shape. dst == src transforms in place.
func SNVTo(dst, src *mat.Dense) error {
	r, c := src.Dims()
	if r == 0 || c == 0 {
		return ErrEmptyMatrix
	}
	if dr, dc := dst.Dims(); dr != r || dc != c {
		return fmt.Errorf("%w: expected %dx%d, got %dx%d", ErrShapeMismatch, r, c, dr, dc)
	}

	for i := 0; i < r; i++ {
		row := src.RawRowView(i)
		mean := stat.Mean(row, nil)
		std := stat.PopStdDev(row, nil)

		out := dst.RawRowView(i)
		for j, v := range row {
			out[j] = (v - mean) / std
		}
	}
	return nil
}
