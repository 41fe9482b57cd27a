package scatter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-nir/internal/testutil"
	"github.com/cwbudde/algo-nir/nir/spectra"
)

func TestSNVLiteral(t *testing.T) {
	m := mat.NewDense(1, 3, []float64{1, 2, 3})

	out, err := SNV(m)
	require.NoError(t, err)

	// Population std of [1 2 3] is sqrt(2/3).
	s := math.Sqrt(1.5)
	testutil.RequireSliceNearlyEqual(t, out.RawRowView(0), []float64{-s, 0, s}, 1e-12)
}

func TestSNVRowMoments(t *testing.T) {
	m := newTestSpectra(t, 10, 80)

	out, err := SNV(m)
	require.NoError(t, err)

	r, c := out.Dims()
	require.Equal(t, 10, r)
	require.Equal(t, 80, c)

	for i := 0; i < r; i++ {
		row := out.RawRowView(i)
		assert.InDelta(t, 0, stat.Mean(row, nil), 1e-12, "row %d mean", i)
		assert.InDelta(t, 1, stat.PopStdDev(row, nil), 1e-12, "row %d std", i)
	}
}

func TestSNVConstantRow(t *testing.T) {
	m := mat.NewDense(2, 8, nil)
	for j := 0; j < 8; j++ {
		m.Set(0, j, 4.2)
		m.Set(1, j, float64(j))
	}

	out, err := SNV(m)
	require.NoError(t, err)

	for j := 0; j < 8; j++ {
		assert.True(t, math.IsNaN(out.At(0, j)), "channel %d must be NaN", j)
		assert.False(t, math.IsNaN(out.At(1, j)), "healthy row must stay finite")
	}
	require.True(t, spectra.HasNonFinite(out))
}

func TestSNVLeavesInputUntouched(t *testing.T) {
	m := newTestSpectra(t, 3, 24)
	snapshot := mat.DenseCopyOf(m)

	_, err := SNV(m)
	require.NoError(t, err)
	require.True(t, mat.Equal(snapshot, m), "input matrix was modified")
}

func TestSNVToInPlace(t *testing.T) {
	m := newTestSpectra(t, 3, 24)

	want, err := SNV(m)
	require.NoError(t, err)

	require.NoError(t, SNVTo(m, m))
	testutil.RequireMatrixNearlyEqual(t, m, want, 1e-14)
}

func TestSNVErrors(t *testing.T) {
	_, err := SNV(&mat.Dense{})
	require.ErrorIs(t, err, ErrEmptyMatrix)

	src := mat.NewDense(2, 4, nil)
	dst := mat.NewDense(2, 5, nil)
	err = SNVTo(dst, src)
	require.ErrorIs(t, err, ErrShapeMismatch)
	require.ErrorContains(t, err, "expected 2x4, got 2x5")
}
