package detrend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-nir/internal/testutil"
)

func TestApplyAnnihilatesPolynomialRows(t *testing.T) {
	const n = 50

	rows := [][]float64{
		testutil.Constant(2.5, n),
		testutil.PolynomialRow(n, 1, 0.1),
		testutil.PolynomialRow(n, 1, -0.2, 0.003),
	}

	for _, row := range rows {
		m := mat.NewDense(1, n, row)

		out, err := Apply(m) // default order 2
		require.NoError(t, err)

		for j := 0; j < n; j++ {
			assert.InDelta(t, 0, out.At(0, j), 1e-9, "channel %d", j)
		}
	}
}

func TestApplyIgnoresBaselineUnderPeaks(t *testing.T) {
	// Least squares is linear and annihilates polynomials, so a baseline
	// added under a band must not change the detrended result.
	const n = 64

	band := testutil.GaussianBand(n, 40, 3, 0.8)
	withBaseline := make([]float64, n)
	for j := range band {
		x := float64(j)
		withBaseline[j] = band[j] + 1.5 + 0.02*x - 0.0004*x*x
	}

	clean, err := Apply(mat.NewDense(1, n, append([]float64(nil), band...)))
	require.NoError(t, err)

	corrected, err := Apply(mat.NewDense(1, n, withBaseline))
	require.NoError(t, err)

	testutil.RequireSliceNearlyEqual(t, corrected.RawRowView(0), clean.RawRowView(0), 1e-9)
}

func TestOrderZeroRemovesMean(t *testing.T) {
	m := mat.NewDense(2, 20, nil)
	for j := 0; j < 20; j++ {
		m.Set(0, j, float64(j))
		m.Set(1, j, math.Sin(float64(j)/3)+5)
	}

	out, err := Apply(m, WithOrder(0))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		row := out.RawRowView(i)
		assert.InDelta(t, 0, stat.Mean(row, nil), 1e-10, "row %d", i)

		// Order 0 only shifts, never reshapes.
		shift := m.At(i, 0) - out.At(i, 0)
		for j := 1; j < 20; j++ {
			assert.InDelta(t, shift, m.At(i, j)-out.At(i, j), 1e-10)
		}
	}
}

func TestApplyLeavesInputUntouched(t *testing.T) {
	m := mat.NewDense(2, 16, nil)
	for j := 0; j < 16; j++ {
		m.Set(0, j, float64(j*j))
		m.Set(1, j, float64(16-j))
	}
	snapshot := mat.DenseCopyOf(m)

	_, err := Apply(m)
	require.NoError(t, err)
	require.True(t, mat.Equal(snapshot, m), "input matrix was modified")
}

func TestApplyToInPlace(t *testing.T) {
	m := mat.NewDense(2, 16, nil)
	for j := 0; j < 16; j++ {
		m.Set(0, j, math.Exp(float64(j)/10))
		m.Set(1, j, float64(j)+math.Cos(float64(j)))
	}

	want, err := Apply(m)
	require.NoError(t, err)

	require.NoError(t, ApplyTo(m, m))
	testutil.RequireMatrixNearlyEqual(t, m, want, 1e-12)
}

func TestApplyErrors(t *testing.T) {
	m := mat.NewDense(2, 8, nil)

	_, err := Apply(m, WithOrder(-1))
	require.ErrorIs(t, err, ErrOrder)

	_, err = Apply(m, WithOrder(8))
	require.ErrorIs(t, err, ErrOrder)

	_, err = Apply(&mat.Dense{})
	require.ErrorIs(t, err, ErrEmptyMatrix)

	dst := mat.NewDense(2, 9, nil)
	require.ErrorIs(t, ApplyTo(dst, m), ErrShapeMismatch)
}
