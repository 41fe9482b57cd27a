// Package smooth provides moving-window smoothing of spectra.
//
// Each row is convolved with a normalized window so the filter has unit DC
// gain: a constant spectrum passes through unchanged. The window defaults to
// flat (a moving average) but any type from nir/window, or a custom shape
// function, can be selected. Boundary samples are synthesized under a
// pad.Mode, pad.Reflect by default.
package smooth

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-nir/nir/conv"
	"github.com/cwbudde/algo-nir/nir/pad"
	"github.com/cwbudde/algo-nir/nir/window"
)

// Errors returned by Apply and ApplyTo. Window and boundary configuration
// errors come from the nir/window and nir/pad packages and keep their own
// identities.
var (
	ErrWindowLength  = errors.New("smooth: window length must be at least 1")
	ErrWindowTooWide = errors.New("smooth: window length exceeds channel count")
	ErrEmptyMatrix   = errors.New("smooth: empty spectra matrix")
	ErrShapeMismatch = errors.New("smooth: destination shape mismatch")
)

// Option configures smoothing.
type Option func(*config)

type config struct {
	length  int
	typ     window.Type
	mode    pad.Mode
	winOpts []window.Option
}

func defaultConfig() config {
	return config{
		length: 11,
		typ:    window.TypeFlat,
		mode:   pad.Reflect,
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

// WithWindowLength sets the window length in channels. Must be at least 1
// and no wider than a spectrum. Default 11.
func WithWindowLength(n int) Option {
	return func(c *config) { c.length = n }
}

// WithWindow selects the window type. Default window.TypeFlat.
func WithWindow(typ window.Type) Option {
	return func(c *config) { c.typ = typ }
}

// WithShape smooths with a caller-supplied window shape. Implies
// window.TypeCustom.
func WithShape(fn window.ShapeFunc) Option {
	return func(c *config) {
		c.typ = window.TypeCustom
		c.winOpts = append(c.winOpts, window.WithShape(fn))
	}
}

// WithMode sets the boundary extension mode. Default pad.Reflect.
func WithMode(m pad.Mode) Option {
	return func(c *config) { c.mode = m }
}

// WithKaiserBeta sets the Kaiser window beta, forwarded to window
// generation.
func WithKaiserBeta(beta float64) Option {
	return func(c *config) {
		c.winOpts = append(c.winOpts, window.WithBeta(beta))
	}
}

// WithGaussSigma sets the Gauss window sigma, forwarded to window
// generation.
func WithGaussSigma(sigma float64) Option {
	return func(c *config) {
		c.winOpts = append(c.winOpts, window.WithSigma(sigma))
	}
}

// Apply smooths every row of spectra, returning a new matrix of the same
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

// ApplyTo smooths every row of src into dst, which must have the same
// shape. dst == src smooths in place. All configuration errors surface
// before any row is written.
func ApplyTo(dst, src *mat.Dense, opts ...Option) error {
	cfg := buildConfig(opts)

	r, c := src.Dims()
	if r == 0 || c == 0 {
		return ErrEmptyMatrix
	}
	if dr, dc := dst.Dims(); dr != r || dc != c {
		return fmt.Errorf("%w: expected %dx%d, got %dx%d", ErrShapeMismatch, r, c, dr, dc)
	}
	if cfg.length < 1 {
		return fmt.Errorf("%w: got %d", ErrWindowLength, cfg.length)
	}
	if cfg.length > c {
		return fmt.Errorf("%w: window %d, %d channels", ErrWindowTooWide, cfg.length, c)
	}

	kernel, err := window.Generate(cfg.typ, cfg.length, cfg.winOpts...)
	if err != nil {
		return err
	}
	if err := window.Normalize(kernel); err != nil {
		return err
	}

	sc, err := conv.NewSameConvolver(kernel, cfg.mode)
	if err != nil {
		return err
	}

	for i := 0; i < r; i++ {
		if err := sc.ProcessTo(dst.RawRowView(i), src.RawRowView(i)); err != nil {
			return err
		}
	}
	return nil
}
