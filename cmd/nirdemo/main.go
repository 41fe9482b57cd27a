// Command nirdemo generates synthetic reflectance spectra and runs them
// through the preprocessing chains, reporting per-stage timing and summary
// statistics.
//
// Usage:
//
//	nirdemo [flags]
//
// Examples:
//
//	nirdemo
//	nirdemo -rows 100 -cols 1024 -seed 42
//	nirdemo -scatter 0.4 -debug
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-nir/nir/detrend"
	"github.com/cwbudde/algo-nir/nir/savgol"
	"github.com/cwbudde/algo-nir/nir/scatter"
	"github.com/cwbudde/algo-nir/nir/smooth"
	"github.com/cwbudde/algo-nir/nir/spectra"
	"github.com/cwbudde/algo-nir/nir/window"
)

type stage struct {
	name string
	run  func(*mat.Dense) (*mat.Dense, error)
}

func main() {
	rows := flag.Int("rows", 20, "number of spectra to generate")
	cols := flag.Int("cols", 700, "channels per spectrum")
	seed := flag.Int64("seed", 1, "generator seed")
	noise := flag.Float64("noise", 0.002, "additive noise level")
	scatterScale := flag.Float64("scatter", 0.15, "scatter distortion strength")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	var (
		zapLogger *zap.Logger
		err       error
	)
	if *debug {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapLogger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = zapLogger.Sync() }()
	log := zapLogger.Sugar()

	if *rows < 1 || *cols < 16 {
		log.Fatalw("invalid dimensions", "rows", *rows, "cols", *cols)
	}

	g := spectra.NewGenerator(
		spectra.WithSeed(*seed),
		spectra.WithNoise(*noise),
		spectra.WithScatter(*scatterScale),
	)

	start := time.Now()
	m := g.Spectra(*rows, *cols)
	mean, lo, hi := matStats(m)
	log.Infow("generated synthetic spectra",
		"rows", *rows, "cols", *cols, "seed", *seed,
		"elapsed", time.Since(start),
		"mean", mean, "min", lo, "max", hi,
	)

	runChain(log, "snv", m, []stage{
		{"snv", func(in *mat.Dense) (*mat.Dense, error) {
			return scatter.SNV(in)
		}},
		{"smooth", func(in *mat.Dense) (*mat.Dense, error) {
			return smooth.Apply(in, smooth.WithWindowLength(11))
		}},
		{"savgol-d1", func(in *mat.Dense) (*mat.Dense, error) {
			return savgol.Apply(in,
				savgol.WithWindowLength(15),
				savgol.WithPolyOrder(2),
				savgol.WithDerivative(1),
			)
		}},
	})

	runChain(log, "msc", m, []stage{
		{"msc", func(in *mat.Dense) (*mat.Dense, error) {
			return scatter.MSC(in)
		}},
		{"detrend", func(in *mat.Dense) (*mat.Dense, error) {
			return detrend.Apply(in)
		}},
		{"smooth-hann", func(in *mat.Dense) (*mat.Dense, error) {
			return smooth.Apply(in,
				smooth.WithWindowLength(9),
				smooth.WithWindow(window.TypeHann),
			)
		}},
	})
}

// runChain feeds each stage's output into the next, logging timing and
// summary statistics per stage.
func runChain(log *zap.SugaredLogger, name string, input *mat.Dense, stages []stage) {
	cur := input
	for _, s := range stages {
		start := time.Now()

		out, err := s.run(cur)
		if err != nil {
			log.Fatalw("stage failed", "chain", name, "stage", s.name, "error", err)
		}

		mean, lo, hi := matStats(out)
		log.Infow("stage complete",
			"chain", name,
			"stage", s.name,
			"elapsed", time.Since(start),
			"mean", mean, "min", lo, "max", hi,
			"nonfinite", spectra.HasNonFinite(out),
		)
		cur = out
	}
}

func matStats(m *mat.Dense) (mean, lo, hi float64) {
	r, c := m.Dims()
	lo, hi = math.Inf(1), math.Inf(-1)

	var sum float64
	for i := 0; i < r; i++ {
		for _, v := range m.RawRowView(i) {
			sum += v
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return sum / float64(r*c), lo, hi
}
