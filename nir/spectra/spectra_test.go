package spectra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestColumnMeans(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		3, 4, 7,
	})
	assert.Equal(t, []float64{2, 3, 5}, ColumnMeans(m))
}

func TestColumnMeansEmpty(t *testing.T) {
	assert.Empty(t, ColumnMeans(&mat.Dense{}))
}

func TestHasNonFinite(t *testing.T) {
	clean := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	assert.False(t, HasNonFinite(clean))

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
		m.Set(1, 0, bad)
		assert.True(t, HasNonFinite(m), "value %v", bad)
	}
}

func TestFromRows(t *testing.T) {
	m, err := FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	r, c := m.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	assert.Equal(t, []float64{4, 5, 6}, m.RawRowView(1))

	_, err = FromRows(nil)
	require.ErrorIs(t, err, ErrNoRows)

	_, err = FromRows([][]float64{{}})
	require.ErrorIs(t, err, ErrNoRows)

	_, err = FromRows([][]float64{{1, 2}, {1, 2, 3}})
	require.ErrorIs(t, err, ErrRaggedRows)
}

func TestGeneratorDeterministic(t *testing.T) {
	a := NewGenerator(WithSeed(7)).Spectra(5, 64)
	b := NewGenerator(WithSeed(7)).Spectra(5, 64)
	require.True(t, mat.Equal(a, b), "same seed must reproduce the matrix")

	c := NewGenerator(WithSeed(8)).Spectra(5, 64)
	require.False(t, mat.Equal(a, c), "different seeds must differ")
}

func TestGeneratorOutput(t *testing.T) {
	g := NewGenerator(WithSeed(3), WithNoise(0.001), WithPeakCount(3), WithScatter(0.2))
	m := g.Spectra(8, 128)

	r, c := m.Dims()
	require.Equal(t, 8, r)
	require.Equal(t, 128, c)
	require.False(t, HasNonFinite(m))

	// Reflectance-like: positive, order of magnitude around the baseline.
	for i := 0; i < r; i++ {
		for _, v := range m.RawRowView(i) {
			assert.Greater(t, v, 0.0)
			assert.Less(t, v, 3.0)
		}
	}
}

func TestGeneratorScatterSpread(t *testing.T) {
	// Higher scatter must spread the rows further apart.
	tight := NewGenerator(WithSeed(5), WithScatter(0.01), WithNoise(0)).Spectra(10, 64)
	loose := NewGenerator(WithSeed(5), WithScatter(0.4), WithNoise(0)).Spectra(10, 64)

	assert.Less(t, rowSpread(tight), rowSpread(loose))
}

// rowSpread sums per-column standard deviations across rows.
func rowSpread(m *mat.Dense) float64 {
	r, c := m.Dims()
	means := ColumnMeans(m)

	total := 0.0
	for j := 0; j < c; j++ {
		var ss float64
		for i := 0; i < r; i++ {
			d := m.At(i, j) - means[j]
			ss += d * d
		}
		total += math.Sqrt(ss / float64(r))
	}
	return total
}
