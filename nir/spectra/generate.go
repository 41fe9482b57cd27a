package spectra

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// Generator creates deterministic synthetic reflectance spectra from a
// shared configuration. Each spectrum is a smooth baseline with Gaussian
// absorption bands, distorted by per-row multiplicative and additive
// scatter and seeded white noise. Scatter correction is expected to undo
// most of the row-to-row distortion.
type Generator struct {
	seed    int64
	noise   float64
	peaks   int
	scatter float64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed. Default 1.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithNoise sets the standard deviation of the additive white noise.
// Default 0.002.
func WithNoise(sigma float64) Option {
	return func(g *Generator) {
		g.noise = sigma
	}
}

// WithPeakCount sets the number of Gaussian absorption bands. Default 4.
func WithPeakCount(n int) Option {
	return func(g *Generator) {
		g.peaks = n
	}
}

// WithScatter sets the relative strength of the per-row multiplicative gain
// and additive offset. Default 0.15.
func WithScatter(scale float64) Option {
	return func(g *Generator) {
		g.scatter = scale
	}
}

// NewGenerator creates a configured spectrum generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		seed:    1,
		noise:   0.002,
		peaks:   4,
		scatter: 0.15,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Spectra generates a rows x cols matrix of synthetic spectra. Both
// dimensions must be positive. Output is identical for identical
// configurations.
func (g *Generator) Spectra(rows, cols int) *mat.Dense {
	rng := rand.New(rand.NewSource(g.seed))

	// Shared pure component: tilted baseline plus absorption bands.
	pure := make([]float64, cols)
	step := 0.0
	if cols > 1 {
		step = 1 / float64(cols-1)
	}
	for j := range pure {
		pure[j] = 0.4 + 0.3*float64(j)*step
	}
	for p := 0; p < g.peaks; p++ {
		center := rng.Float64() * float64(cols-1)
		width := (0.01 + 0.04*rng.Float64()) * float64(cols)
		amp := 0.1 + 0.3*rng.Float64()
		for j := range pure {
			t := (float64(j) - center) / width
			pure[j] += amp * math.Exp(-0.5*t*t)
		}
	}

	m := mat.NewDense(rows, cols, nil)
	gain := make([]float64, cols)

	for i := 0; i < rows; i++ {
		// Wavelength-dependent gain and a constant offset per row.
		a := 1 + g.scatter*(2*rng.Float64()-1)
		tilt := g.scatter * (2*rng.Float64() - 1) / float64(cols)
		offset := 0.5 * g.scatter * (2*rng.Float64() - 1)

		for j := range gain {
			gain[j] = a + tilt*float64(j)
		}

		row := m.RawRowView(i)
		vecmath.MulBlock(row, pure, gain)
		for j := range row {
			row[j] += offset + rng.NormFloat64()*g.noise
		}
	}

	return m
}
