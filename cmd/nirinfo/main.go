// Command nirinfo prints the smoothing windows and Savitzky-Golay kernels
// used by the preprocessing filters.
//
// Usage:
//
//	nirinfo [flags] [window-name ...]
//
// Without arguments it prints a summary of all window types.
//
// Examples:
//
//	nirinfo hann blackman
//	nirinfo -length 15 -beta 8 kaiser
//	nirinfo -length 11 -normalize -weights flat hann
//	nirinfo -savgol -length 15 -poly 2 -deriv 1
//	nirinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-nir/nir/savgol"
	"github.com/cwbudde/algo-nir/nir/window"
)

type paramKind int

const (
	paramNone paramKind = iota
	paramBeta
	paramSigma
)

type windowEntry struct {
	name     string
	typ      window.Type
	param    paramKind
	defParam float64
}

var registry = []windowEntry{
	{"flat", window.TypeFlat, paramNone, 0},
	{"triangle", window.TypeTriangle, paramNone, 0},
	{"bartlett", window.TypeBartlett, paramNone, 0},
	{"hann", window.TypeHann, paramNone, 0},
	{"hamming", window.TypeHamming, paramNone, 0},
	{"blackman", window.TypeBlackman, paramNone, 0},
	{"blackman-harris", window.TypeBlackmanHarris, paramNone, 0},
	{"nuttall", window.TypeNuttall, paramNone, 0},
	{"flat-top", window.TypeFlatTop, paramNone, 0},
	{"kaiser", window.TypeKaiser, paramBeta, 8.6},
	{"gauss", window.TypeGauss, paramSigma, 0.4},
}

func main() {
	length := flag.Int("length", 0, "window length in channels (default 11, savgol 15)")
	beta := flag.Float64("beta", math.NaN(), "beta override for the kaiser window")
	sigma := flag.Float64("sigma", math.NaN(), "sigma override for the gauss window")
	normalize := flag.Bool("normalize", false, "normalize weights to sum to 1, as the smoother applies them")
	weights := flag.Bool("weights", false, "print the full weight vectors")
	all := flag.Bool("all", false, "show all window types")
	list := flag.Bool("list", false, "list available window names")

	sg := flag.Bool("savgol", false, "print a Savitzky-Golay kernel instead of window weights")
	poly := flag.Int("poly", 2, "savgol polynomial order")
	deriv := flag.Int("deriv", 0, "savgol derivative order")
	delta := flag.Float64("delta", 1, "savgol channel spacing")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: nirinfo [flags] [window-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the smoothing windows and Savitzky-Golay kernels used by the\n")
		fmt.Fprintf(os.Stderr, "preprocessing filters. Without arguments or with -all, prints a summary\n")
		fmt.Fprintf(os.Stderr, "of all window types.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  nirinfo hann blackman\n")
		fmt.Fprintf(os.Stderr, "  nirinfo -length 15 -beta 8 kaiser\n")
		fmt.Fprintf(os.Stderr, "  nirinfo -savgol -length 15 -poly 2 -deriv 1\n")
		fmt.Fprintf(os.Stderr, "  nirinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	n := *length
	if n == 0 {
		n = 11
		if *sg {
			n = 15
		}
	}

	if *sg {
		printKernel(n, *poly, *deriv, *delta)
		return
	}

	names := flag.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names, *beta, *sigma)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching window types\n")
		os.Exit(1)
	}

	printWindows(entries, n, *normalize, *weights)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

type resolvedEntry struct {
	windowEntry
	paramValue float64
}

func resolveEntries(names []string, betaFlag, sigmaFlag float64) []resolvedEntry {
	byName := make(map[string]windowEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []resolvedEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown window %q (use -list to see available)\n", name)
			continue
		}

		p := e.defParam
		switch e.param {
		case paramBeta:
			if !math.IsNaN(betaFlag) {
				p = betaFlag
			}
		case paramSigma:
			if !math.IsNaN(sigmaFlag) {
				p = sigmaFlag
			}
		}
		result = append(result, resolvedEntry{e, p})
	}
	return result
}

func (e resolvedEntry) label() string {
	switch e.param {
	case paramBeta:
		return fmt.Sprintf("%s (beta=%.2f)", e.name, e.paramValue)
	case paramSigma:
		return fmt.Sprintf("%s (sigma=%.2f)", e.name, e.paramValue)
	default:
		return e.name
	}
}

func (e resolvedEntry) options() []window.Option {
	switch e.param {
	case paramBeta:
		return []window.Option{window.WithBeta(e.paramValue)}
	case paramSigma:
		return []window.Option{window.WithSigma(e.paramValue)}
	default:
		return nil
	}
}

func printWindows(entries []resolvedEntry, length int, normalize, showWeights bool) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Window\tLength\tSum\tPeak\tEdge\n"); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "------\t------\t---\t----\t----\n"); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	type namedWeights struct {
		label string
		w     []float64
	}
	var dumps []namedWeights

	for _, e := range entries {
		w, err := window.Generate(e.typ, length, e.options()...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", e.name, err)
			continue
		}
		if normalize {
			if err := window.Normalize(w); err != nil {
				fmt.Fprintf(os.Stderr, "warning: %s: %v\n", e.name, err)
				continue
			}
		}

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.6f\t%.6f\n",
			e.label(), length, floats.Sum(w), floats.Max(w), w[0]); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}

		if showWeights {
			dumps = append(dumps, namedWeights{e.label(), w})
		}
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		return
	}

	for _, d := range dumps {
		fmt.Printf("\n%s:", d.label)
		for _, v := range d.w {
			fmt.Printf(" %.6f", v)
		}
		fmt.Println()
	}
}

func printKernel(length, poly, deriv int, delta float64) {
	kernel, err := savgol.Coeffs(
		savgol.WithWindowLength(length),
		savgol.WithPolyOrder(poly),
		savgol.WithDerivative(deriv),
		savgol.WithDelta(delta),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Savitzky-Golay kernel: window %d, order %d, derivative %d, delta %g\n\n",
		length, poly, deriv, delta)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tw, "Offset\tWeight\t\n"); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	// Coefficients come in convolution order; display the weight applied
	// to channel i+t.
	half := length / 2
	for t := -half; t <= half; t++ {
		w := kernel[length-1-(t+half)]
		if _, err := fmt.Fprintf(tw, "%+d\t%.8f\t\n", t, w); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		return
	}

	fmt.Printf("\nsum: %+.6f\n", floats.Sum(kernel))
}
