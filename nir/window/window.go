package window

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Type identifies a window function.
type Type int

const (
	// TypeFlat is the uniform (boxcar) window, the default smoothing window.
	TypeFlat Type = iota
	TypeTriangle
	TypeBartlett
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris
	TypeNuttall
	TypeFlatTop
	TypeGauss
	TypeKaiser

	// TypeCustom evaluates a caller-supplied shape function (WithShape).
	TypeCustom
)

// String returns the lowercase window name.
func (t Type) String() string {
	switch t {
	case TypeFlat:
		return "flat"
	case TypeTriangle:
		return "triangle"
	case TypeBartlett:
		return "bartlett"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	case TypeBlackman:
		return "blackman"
	case TypeBlackmanHarris:
		return "blackman-harris"
	case TypeNuttall:
		return "nuttall"
	case TypeFlatTop:
		return "flat-top"
	case TypeGauss:
		return "gauss"
	case TypeKaiser:
		return "kaiser"
	case TypeCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// ShapeFunc computes sample i of an n-point window. It is the extension
// point for window families not covered by the built-in types.
type ShapeFunc func(i, n int) float64

// Option configures window generation.
type Option func(*config)

type config struct {
	beta  float64
	sigma float64
	shape ShapeFunc
}

func defaultConfig() config {
	return config{
		beta:  8.6,
		sigma: 0.4,
	}
}

// WithBeta sets the Kaiser beta parameter (default 8.6, must be >= 0).
func WithBeta(beta float64) Option {
	return func(c *config) {
		c.beta = beta
	}
}

// WithSigma sets the Gauss width as a fraction of the half-window
// (default 0.4, must be > 0).
func WithSigma(sigma float64) Option {
	return func(c *config) {
		c.sigma = sigma
	}
}

// WithShape sets the shape function evaluated for TypeCustom.
func WithShape(fn ShapeFunc) Option {
	return func(c *config) {
		c.shape = fn
	}
}

// Generate returns window coefficients of the given length.
//
// Built-in windows are symmetric; a single-sample window is [1] for every
// built-in type. TypeCustom evaluates the shape function as supplied,
// including at length 1.
func Generate(t Type, length int, opts ...Option) ([]float64, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}

	out := make([]float64, length)
	if err := GenerateTo(out, t, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// GenerateTo fills dst with window coefficients; the window length is
// len(dst).
func GenerateTo(dst []float64, t Type, opts ...Option) error {
	n := len(dst)
	if err := validateLength(n); err != nil {
		return err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := validateType(t, cfg); err != nil {
		return err
	}

	if t == TypeCustom {
		for i := range dst {
			dst[i] = cfg.shape(i, n)
		}
		return nil
	}

	if n == 1 {
		dst[0] = 1
		return nil
	}

	for i := range dst {
		dst[i] = evalWindow(t, i, n, cfg)
	}
	return nil
}

// Normalize scales w in place so its coefficients sum to 1, preserving the
// DC gain of a smoothing kernel built from it.
func Normalize(w []float64) error {
	if len(w) == 0 {
		return errEmptyCoeffs
	}
	sum := floats.Sum(w)
	if sum == 0 {
		return ErrZeroSum
	}
	floats.Scale(1/sum, w)
	return nil
}

func evalWindow(t Type, i, n int, cfg config) float64 {
	x := samplePosition(i, n)

	switch t {
	case TypeFlat:
		return 1
	case TypeTriangle:
		return triangleAt(i, n)
	case TypeBartlett:
		return 1 - math.Abs(2*x-1)
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	case TypeBlackmanHarris:
		return cosineFromCoeffs(x, blackmanHarrisCoeffs)
	case TypeNuttall:
		return cosineFromCoeffs(x, nuttallCoeffs)
	case TypeFlatTop:
		return cosineFromCoeffs(x, flatTopCoeffs)
	case TypeGauss:
		return gaussAt(x, cfg.sigma)
	case TypeKaiser:
		return kaiserAt(x, cfg.beta)
	default:
		return 1
	}
}

// Cosine-sum coefficient tables. cosineFromCoeffs evaluates
// sum_k c[k]*cos(k*2*pi*x), so taper terms carry alternating signs.
var (
	hannCoeffs           = []float64{0.5, -0.5}
	hammingCoeffs        = []float64{0.54, -0.46}
	blackmanCoeffs       = []float64{0.42, -0.5, 0.08}
	blackmanHarrisCoeffs = []float64{0.35875, -0.48829, 0.14128, -0.01168}
	nuttallCoeffs        = []float64{0.3635819, -0.4891775, 0.1365995, -0.0106411}
	flatTopCoeffs        = []float64{0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368}
)

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func samplePosition(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// triangleAt keeps the window endpoints nonzero, so no smoothing tap is
// wasted. The zero-endpoint variant is TypeBartlett.
func triangleAt(i, n int) float64 {
	den := float64(n)
	if n%2 == 1 {
		den = float64(n + 1)
	}
	return 1 - math.Abs(float64(2*i-(n-1)))/den
}

func gaussAt(x, sigma float64) float64 {
	r := (2*x - 1) / sigma
	return math.Exp(-0.5 * r * r)
}

func kaiserAt(x, beta float64) float64 {
	if beta <= 0 {
		return 1
	}

	r := 2*x - 1
	term := math.Sqrt(math.Max(0, 1-r*r))

	return besselI0(beta*term) / besselI0(beta)
}

// besselI0 returns a numerical approximation of the modified Bessel function I0.
func besselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := x / 3.75
		y *= y

		return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
	}

	y := 3.75 / ax

	return (math.Exp(ax) / math.Sqrt(ax)) *
		(0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377))))))))
}
