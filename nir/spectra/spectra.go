// Package spectra provides matrix helpers and a synthetic spectrum
// generator shared by the preprocessing packages and their hosts.
package spectra

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Errors returned by matrix construction.
var (
	ErrNoRows     = errors.New("spectra: no rows")
	ErrRaggedRows = errors.New("spectra: rows have differing lengths")
)

// ColumnMeans returns the column-wise mean of m, one value per channel.
func ColumnMeans(m *mat.Dense) []float64 {
	r, c := m.Dims()
	means := make([]float64, c)
	if r == 0 {
		return means
	}

	for i := 0; i < r; i++ {
		floats.Add(means, m.RawRowView(i))
	}
	floats.Scale(1/float64(r), means)
	return means
}

// HasNonFinite reports whether m contains a NaN or an infinity. Transforms
// propagate non-finite values instead of raising them; this is the
// documented downstream check.
func HasNonFinite(m *mat.Dense) bool {
	r, _ := m.Dims()
	for i := 0; i < r; i++ {
		for _, v := range m.RawRowView(i) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return true
			}
		}
	}
	return false
}

// FromRows copies equal-length rows into a new spectral matrix.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrNoRows
	}

	c := len(rows[0])
	m := mat.NewDense(len(rows), c, nil)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%w: row %d has %d channels, want %d", ErrRaggedRows, i, len(row), c)
		}
		m.SetRow(i, row)
	}
	return m, nil
}
