// Package pad extends signals past their edges for same-length filtering.
//
// The extension modes follow the usual image/signal-processing conventions:
// Reflect repeats the signal including the edge sample, Mirror repeats it
// excluding the edge sample, Nearest replicates the edge sample, Wrap is
// periodic, and Constant fills with zeros.
package pad

import (
	"errors"
	"fmt"
)

// Errors returned by extension functions.
var (
	ErrEmptyInput     = errors.New("pad: empty input")
	ErrNegativePad    = errors.New("pad: negative pad width")
	ErrUnknownMode    = errors.New("pad: unknown mode")
	ErrPadTooWide     = errors.New("pad: pad wider than input allows")
	ErrLengthMismatch = errors.New("pad: destination length mismatch")
)

// Mode selects how a signal is extended past its edges.
type Mode int

const (
	// Reflect repeats the signal about the edge, edge sample included:
	// d c b a | a b c d | d c b a
	Reflect Mode = iota

	// Constant fills the extension with zeros:
	// 0 0 0 0 | a b c d | 0 0 0 0
	Constant

	// Nearest replicates the edge sample:
	// a a a a | a b c d | d d d d
	Nearest

	// Wrap extends the signal periodically:
	// a b c d | a b c d | a b c d
	Wrap

	// Mirror repeats the signal about the edge, edge sample excluded:
	// d c b | a b c d | c b a
	Mirror
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case Reflect:
		return "reflect"
	case Constant:
		return "constant"
	case Nearest:
		return "nearest"
	case Wrap:
		return "wrap"
	case Mirror:
		return "mirror"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ValidateMode returns ErrUnknownMode unless mode is one of the defined
// boundary modes.
func ValidateMode(mode Mode) error {
	switch mode {
	case Reflect, Constant, Nearest, Wrap, Mirror:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
}

// MaxPad returns the widest single-side extension the mode supports for a
// signal of length n. Reflect and Wrap can produce at most n samples per
// side, Mirror n-1; Nearest and Constant have no limit.
func MaxPad(n int, mode Mode) (int, error) {
	switch mode {
	case Reflect, Wrap:
		return n, nil
	case Mirror:
		return n - 1, nil
	case Nearest, Constant:
		return int(^uint(0) >> 1), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
}

// Extend returns a new slice of length left+len(x)+right holding x extended
// on both sides under the given mode.
func Extend(x []float64, left, right int, mode Mode) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if left < 0 || right < 0 {
		return nil, fmt.Errorf("%w: left=%d right=%d", ErrNegativePad, left, right)
	}

	dst := make([]float64, left+len(x)+right)
	if err := ExtendTo(dst, x, left, right, mode); err != nil {
		return nil, err
	}
	return dst, nil
}

// ExtendTo extends x into a pre-allocated destination of length
// left+len(x)+right. dst must not alias x.
func ExtendTo(dst, x []float64, left, right int, mode Mode) error {
	n := len(x)
	if n == 0 {
		return ErrEmptyInput
	}
	if left < 0 || right < 0 {
		return fmt.Errorf("%w: left=%d right=%d", ErrNegativePad, left, right)
	}
	if len(dst) != left+n+right {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, left+n+right, len(dst))
	}

	limit, err := MaxPad(n, mode)
	if err != nil {
		return err
	}
	if left > limit || right > limit {
		return fmt.Errorf("%w: mode %s on %d samples allows %d, got left=%d right=%d",
			ErrPadTooWide, mode, n, limit, left, right)
	}

	copy(dst[left:left+n], x)

	for i := 0; i < left; i++ {
		// k counts samples from the left edge, starting at 1.
		k := left - i
		switch mode {
		case Reflect:
			dst[i] = x[k-1]
		case Constant:
			dst[i] = 0
		case Nearest:
			dst[i] = x[0]
		case Wrap:
			dst[i] = x[n-k]
		case Mirror:
			dst[i] = x[k]
		}
	}

	for j := 0; j < right; j++ {
		switch mode {
		case Reflect:
			dst[left+n+j] = x[n-1-j]
		case Constant:
			dst[left+n+j] = 0
		case Nearest:
			dst[left+n+j] = x[n-1]
		case Wrap:
			dst[left+n+j] = x[j]
		case Mirror:
			dst[left+n+j] = x[n-2-j]
		}
	}

	return nil
}
