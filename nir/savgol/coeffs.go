package savgol

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// solveKernel computes the convolution kernel for the given window length,
// polynomial order, derivative order and channel spacing. The caller
// guarantees window is odd and positive, 0 <= deriv <= poly < window and
// delta is positive.
//
// The least-squares fit over the window positions t = -h..h (h = (window-1)/2)
// uses the normalized abscissa s = t/h, which keeps the normal equations
// well conditioned for wide windows. The Gram matrix holds the power sums
// G[a][b] = sum_t s^(a+b); solving G z = e_deriv gives the fit polynomial
// whose value at each s is the weight of that channel. The derivative is
// rescaled from s back to channel units by d! / (h*delta)^d.
func solveKernel(window, poly, deriv int, delta float64) ([]float64, error) {
	if window == 1 {
		// Zero-order fit through a single sample.
		return []float64{1}, nil
	}

	half := (window - 1) / 2
	h := float64(half)

	// Power sums of s = t/h; odd powers cancel by symmetry.
	sums := make([]float64, 2*poly+1)
	sums[0] = float64(window)
	for q := 2; q <= 2*poly; q += 2 {
		var s float64
		for t := 1; t <= half; t++ {
			s += math.Pow(float64(t)/h, float64(q))
		}
		sums[q] = 2 * s
	}

	gram := mat.NewSymDense(poly+1, nil)
	for a := 0; a <= poly; a++ {
		for b := a; b <= poly; b++ {
			gram.SetSym(a, b, sums[a+b])
		}
	}

	var chol mat.Cholesky
	if !chol.Factorize(gram) {
		return nil, fmt.Errorf("savgol: normal equations not positive definite (window %d, order %d)", window, poly)
	}

	rhs := mat.NewVecDense(poly+1, nil)
	rhs.SetVec(deriv, 1)

	var z mat.VecDense
	if err := chol.SolveVecTo(&z, rhs); err != nil {
		return nil, fmt.Errorf("savgol: solving normal equations: %w", err)
	}

	scale := factorial(deriv) / math.Pow(h*delta, float64(deriv))

	// Evaluate the fit polynomial at each window position; the kernel is
	// stored reversed, in convolution order.
	kernel := make([]float64, window)
	for j := 0; j < window; j++ {
		s := float64(j-half) / h
		acc := z.AtVec(poly)
		for a := poly - 1; a >= 0; a-- {
			acc = acc*s + z.AtVec(a)
		}
		kernel[window-1-j] = acc * scale
	}

	return kernel, nil
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}
