// Package conv provides same-length convolution of spectra with smoothing
// kernels.
//
// Output samples align with input samples: the signal is extended past its
// edges under a pad.Mode before convolving, so a row of n channels always
// produces n filtered channels. Two strategies are used:
//
//   - Direct convolution: O(N*K) sliding dot product, best for the short
//     kernels typical of spectral smoothing
//   - Overlap-add (OLA): FFT-based block convolution for long kernels
//
// For repeated filtering with one kernel (every row of a spectral matrix),
// create a reusable SameConvolver; the one-shot Same function is a
// convenience wrapper around it.
package conv

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-nir/nir/pad"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
)

// Kernels at most this long use the direct path; longer kernels go through
// the FFT overlap-add engine.
const directThreshold = 64

// Direct performs direct time-domain linear convolution of x and kernel.
// Returns a new slice of length len(x) + len(kernel) - 1.
func Direct(x, kernel []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(x)+len(kernel)-1)
	DirectTo(result, x, kernel)
	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated
// destination. dst must have length len(x) + len(kernel) - 1.
func DirectTo(dst, x, kernel []float64) {
	for i := range dst {
		dst[i] = 0
	}

	// Scale-and-accumulate the kernel for each input sample.
	const scalarThreshold = 4
	if len(kernel) >= scalarThreshold {
		for i, v := range x {
			floats.AddScaled(dst[i:i+len(kernel)], v, kernel)
		}
		return
	}

	for i, v := range x {
		for j, k := range kernel {
			dst[i+j] += v * k
		}
	}
}

// SameConvolver filters signals with a fixed kernel, producing output of the
// same length as the input. The zero value is not usable; construct with
// NewSameConvolver.
type SameConvolver struct {
	reversed []float64
	mode     pad.Mode

	// FFT engine, non-nil for kernels past directThreshold.
	oa *OverlapAdd

	// Scratch reused across Process calls.
	ext  []float64
	full []float64
}

// NewSameConvolver creates a convolver for the given kernel and boundary
// mode. The kernel is copied.
func NewSameConvolver(kernel []float64, mode pad.Mode) (*SameConvolver, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	if err := pad.ValidateMode(mode); err != nil {
		return nil, err
	}

	c := &SameConvolver{
		reversed: make([]float64, len(kernel)),
		mode:     mode,
	}
	for i, v := range kernel {
		c.reversed[len(kernel)-1-i] = v
	}

	if len(kernel) > directThreshold {
		oa, err := NewOverlapAdd(kernel, 0)
		if err != nil {
			return nil, err
		}
		c.oa = oa
	}

	return c, nil
}

// KernelLen returns the kernel length.
func (c *SameConvolver) KernelLen() int {
	return len(c.reversed)
}

// Mode returns the boundary mode.
func (c *SameConvolver) Mode() pad.Mode {
	return c.mode
}

// Process convolves x with the kernel and returns a new slice of the same
// length as x.
func (c *SameConvolver) Process(x []float64) ([]float64, error) {
	out := make([]float64, len(x))
	if err := c.ProcessTo(out, x); err != nil {
		return nil, err
	}
	return out, nil
}

// ProcessTo convolves x with the kernel into dst. dst must have the same
// length as x and may alias it; the extended signal is staged in scratch
// before any output sample is written.
func (c *SameConvolver) ProcessTo(dst, x []float64) error {
	n := len(x)
	if n == 0 {
		return ErrEmptyInput
	}
	if len(dst) != n {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, n, len(dst))
	}

	k := len(c.reversed)
	left := (k - 1) / 2
	right := k / 2

	c.ext = ensureLen(c.ext, left+n+right)
	if err := pad.ExtendTo(c.ext, x, left, right, c.mode); err != nil {
		return err
	}

	if c.oa != nil {
		// Full convolution of the extended signal; the same-length result
		// is its valid part.
		c.full = ensureLen(c.full, len(c.ext)+k-1)
		if err := c.oa.ProcessTo(c.full, c.ext); err != nil {
			return err
		}
		copy(dst, c.full[k-1:k-1+n])
		return nil
	}

	for i := 0; i < n; i++ {
		dst[i] = floats.Dot(c.reversed, c.ext[i:i+k])
	}
	return nil
}

// Same convolves x with kernel under the given boundary mode, returning a
// new slice of the same length as x. The kernel order follows the
// convolution convention: it is flipped relative to the samples it weights.
func Same(x, kernel []float64, mode pad.Mode) ([]float64, error) {
	c, err := NewSameConvolver(kernel, mode)
	if err != nil {
		return nil, err
	}
	return c.Process(x)
}

// SameTo is the pre-allocated variant of Same. dst may alias x.
func SameTo(dst, x, kernel []float64, mode pad.Mode) error {
	c, err := NewSameConvolver(kernel, mode)
	if err != nil {
		return err
	}
	return c.ProcessTo(dst, x)
}

// ensureLen returns buf resized to length n, reusing its backing array when
// possible.
func ensureLen(buf []float64, n int) []float64 {
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
