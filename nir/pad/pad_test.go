package pad

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-nir/internal/testutil"
)

func TestExtendSymmetric(t *testing.T) {
	x := []float64{1, 2, 3}

	tests := []struct {
		mode Mode
		want []float64
	}{
		{Reflect, []float64{1, 1, 2, 3, 3}},
		{Constant, []float64{0, 1, 2, 3, 0}},
		{Nearest, []float64{1, 1, 2, 3, 3}},
		{Wrap, []float64{3, 1, 2, 3, 1}},
		{Mirror, []float64{2, 1, 2, 3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			got, err := Extend(x, 1, 1, tt.mode)
			if err != nil {
				t.Fatalf("Extend error: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, got, tt.want, 0)
		})
	}
}

func TestExtendAsymmetric(t *testing.T) {
	x := []float64{1, 2, 3, 4}

	tests := []struct {
		mode Mode
		want []float64
	}{
		{Reflect, []float64{1, 1, 2, 3, 4, 4, 3}},
		{Constant, []float64{0, 1, 2, 3, 4, 0, 0}},
		{Nearest, []float64{1, 1, 2, 3, 4, 4, 4}},
		{Wrap, []float64{4, 1, 2, 3, 4, 1, 2}},
		{Mirror, []float64{2, 1, 2, 3, 4, 3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			got, err := Extend(x, 1, 2, tt.mode)
			if err != nil {
				t.Fatalf("Extend error: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, got, tt.want, 0)
		})
	}
}

func TestExtendWidestAllowed(t *testing.T) {
	x := []float64{1, 2, 3}

	got, err := Extend(x, 3, 3, Reflect)
	if err != nil {
		t.Fatalf("Extend error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{3, 2, 1, 1, 2, 3, 3, 2, 1}, 0)

	got, err = Extend(x, 2, 2, Mirror)
	if err != nil {
		t.Fatalf("Extend error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{3, 2, 1, 2, 3, 2, 1}, 0)

	got, err = Extend(x, 3, 3, Wrap)
	if err != nil {
		t.Fatalf("Extend error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 2, 3, 1, 2, 3, 1, 2, 3}, 0)
}

func TestExtendZeroPad(t *testing.T) {
	x := []float64{4, 5, 6}

	got, err := Extend(x, 0, 0, Reflect)
	if err != nil {
		t.Fatalf("Extend error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, x, 0)

	// The result must be a copy, not the input itself.
	got[0] = -1
	if x[0] != 4 {
		t.Fatalf("Extend mutated its input: %v", x)
	}
}

func TestExtendToPreallocated(t *testing.T) {
	x := []float64{1, 2}
	dst := make([]float64, 6)

	if err := ExtendTo(dst, x, 2, 2, Nearest); err != nil {
		t.Fatalf("ExtendTo error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, dst, []float64{1, 1, 1, 2, 2, 2}, 0)
}

func TestExtendErrors(t *testing.T) {
	if _, err := Extend(nil, 1, 1, Reflect); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}

	if _, err := Extend([]float64{1, 2}, -1, 0, Reflect); !errors.Is(err, ErrNegativePad) {
		t.Errorf("expected ErrNegativePad, got %v", err)
	}

	if _, err := Extend([]float64{1, 2}, 1, 1, Mode(99)); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}

	if _, err := Extend([]float64{1, 2}, 3, 0, Reflect); !errors.Is(err, ErrPadTooWide) {
		t.Errorf("expected ErrPadTooWide for reflect, got %v", err)
	}

	if _, err := Extend([]float64{1, 2}, 0, 2, Mirror); !errors.Is(err, ErrPadTooWide) {
		t.Errorf("expected ErrPadTooWide for mirror, got %v", err)
	}

	err := ExtendTo(make([]float64, 3), []float64{1, 2}, 1, 1, Reflect)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestMaxPad(t *testing.T) {
	if n, err := MaxPad(5, Reflect); err != nil || n != 5 {
		t.Fatalf("MaxPad(5, Reflect) = %d, %v", n, err)
	}
	if n, err := MaxPad(5, Mirror); err != nil || n != 4 {
		t.Fatalf("MaxPad(5, Mirror) = %d, %v", n, err)
	}
	if _, err := MaxPad(5, Mode(-1)); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}

	// Nearest and Constant replicate arbitrarily far.
	n, err := MaxPad(1, Nearest)
	if err != nil || n < 1<<30 {
		t.Fatalf("MaxPad(1, Nearest) = %d, %v", n, err)
	}
}

func TestValidateMode(t *testing.T) {
	for _, mode := range []Mode{Reflect, Constant, Nearest, Wrap, Mirror} {
		if err := ValidateMode(mode); err != nil {
			t.Errorf("ValidateMode(%v) = %v", mode, err)
		}
	}
	if err := ValidateMode(Mode(9)); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
}

func TestModeString(t *testing.T) {
	names := map[Mode]string{
		Reflect:  "reflect",
		Constant: "constant",
		Nearest:  "nearest",
		Wrap:     "wrap",
		Mirror:   "mirror",
	}
	for mode, want := range names {
		if got := mode.String(); got != want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(mode), got, want)
		}
	}
	if got := Mode(42).String(); got != "mode(42)" {
		t.Errorf("unknown mode string = %q", got)
	}
}
