package savgol

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-nir/nir/conv"
	"github.com/cwbudde/algo-nir/nir/pad"
)

// Option configures a Filter.
type Option func(*config)

type config struct {
	window int
	poly   int
	deriv  int
	delta  float64
	mode   pad.Mode
}

func defaultConfig() config {
	return config{
		window: 15,
		poly:   2,
		deriv:  0,
		delta:  1,
		mode:   pad.Mirror,
	}
}

func buildConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithWindowLength sets the window length in channels. Must be odd and at
// least 1. Default 15.
func WithWindowLength(n int) Option {
	return func(c *config) { c.window = n }
}

// WithPolyOrder sets the order of the local polynomial fit. Must be
// non-negative and less than the window length. Default 2.
func WithPolyOrder(p int) Option {
	return func(c *config) { c.poly = p }
}

// WithDerivative sets the derivative order evaluated at the window center.
// Must not exceed the polynomial order. Default 0 (smoothing).
func WithDerivative(d int) Option {
	return func(c *config) { c.deriv = d }
}

// WithDelta sets the channel spacing used to scale derivatives. Must be
// positive and finite. Default 1.
func WithDelta(dx float64) Option {
	return func(c *config) { c.delta = dx }
}

// WithMode sets the boundary extension mode. Default pad.Mirror.
func WithMode(m pad.Mode) Option {
	return func(c *config) { c.mode = m }
}

// Filter applies a fixed Savitzky-Golay kernel to spectra row by row.
// A Filter is safe to reuse across matrices of any width that fits the
// window, amortizing kernel derivation and convolution scratch.
type Filter struct {
	cfg    config
	kernel []float64
	conv   *conv.SameConvolver
}

// New derives the filter kernel for the given options. All configuration
// errors surface here, before any spectral data is touched.
func New(opts ...Option) (*Filter, error) {
	cfg := buildConfig(opts)
	if err := validate(cfg); err != nil {
		return nil, err
	}

	kernel, err := solveKernel(cfg.window, cfg.poly, cfg.deriv, cfg.delta)
	if err != nil {
		return nil, err
	}

	sc, err := conv.NewSameConvolver(kernel, cfg.mode)
	if err != nil {
		return nil, err
	}

	return &Filter{cfg: cfg, kernel: kernel, conv: sc}, nil
}

func validate(cfg config) error {
	if cfg.window < 1 || cfg.window%2 == 0 {
		return fmt.Errorf("%w: got %d", ErrWindowLength, cfg.window)
	}
	if cfg.poly < 0 || cfg.poly >= cfg.window {
		return fmt.Errorf("%w: order %d with window %d", ErrPolyOrder, cfg.poly, cfg.window)
	}
	if cfg.deriv < 0 || cfg.deriv > cfg.poly {
		return fmt.Errorf("%w: derivative %d with order %d", ErrDerivative, cfg.deriv, cfg.poly)
	}
	if cfg.delta <= 0 || math.IsNaN(cfg.delta) || math.IsInf(cfg.delta, 0) {
		return fmt.Errorf("%w: got %v", ErrDelta, cfg.delta)
	}
	return pad.ValidateMode(cfg.mode)
}

// Apply filters every row of spectra, returning a new matrix of the same
// shape. The input is never modified.
func (f *Filter) Apply(spectra *mat.Dense) (*mat.Dense, error) {
	r, c := spectra.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyMatrix
	}

	dst := mat.NewDense(r, c, nil)
	if err := f.ApplyTo(dst, spectra); err != nil {
		return nil, err
	}
	return dst, nil
}

// ApplyTo filters every row of src into dst, which must have the same shape.
// dst == src filters in place.
func (f *Filter) ApplyTo(dst, src *mat.Dense) error {
	r, c := src.Dims()
	if r == 0 || c == 0 {
		return ErrEmptyMatrix
	}
	if dr, dc := dst.Dims(); dr != r || dc != c {
		return fmt.Errorf("%w: expected %dx%d, got %dx%d", ErrShapeMismatch, r, c, dr, dc)
	}
	if c < f.cfg.window {
		return fmt.Errorf("%w: window %d, %d channels", ErrWindowTooWide, f.cfg.window, c)
	}

	for i := 0; i < r; i++ {
		if err := f.conv.ProcessTo(dst.RawRowView(i), src.RawRowView(i)); err != nil {
			return err
		}
	}
	return nil
}

// Smooth filters a single spectrum, returning a new slice of the same
// length.
func (f *Filter) Smooth(row []float64) ([]float64, error) {
	if len(row) < f.cfg.window {
		return nil, fmt.Errorf("%w: window %d, %d channels", ErrWindowTooWide, f.cfg.window, len(row))
	}
	return f.conv.Process(row)
}

// Coefficients returns a copy of the convolution kernel.
func (f *Filter) Coefficients() []float64 {
	out := make([]float64, len(f.kernel))
	copy(out, f.kernel)
	return out
}

// Apply is the one-shot variant: it derives the kernel and filters spectra
// in a single call.
func Apply(spectra *mat.Dense, opts ...Option) (*mat.Dense, error) {
	f, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return f.Apply(spectra)
}

// Coeffs returns the convolution kernel for the given options without
// constructing a Filter.
func Coeffs(opts ...Option) ([]float64, error) {
	cfg := buildConfig(opts)
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return solveKernel(cfg.window, cfg.poly, cfg.deriv, cfg.delta)
}
