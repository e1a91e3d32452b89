package fractal

import (
	"math"
	"testing"
)

// escapedAt builds a synthetic escape result whose color position, with
// stripes off and density 1, is exactly pos.
func escapedAt(pos float64) Result {
	return Result{Escaped: true, Iterations: 1, Smooth: pos}
}

func plainState() State {
	st := DefaultState()
	st.Stripes = false
	st.ColorDensity = 1
	return st
}

func TestColorOf_Interior(t *testing.T) {
	got := ColorOf(Result{}, DefaultState(), Grayscale)
	if got != InteriorColor {
		t.Errorf("interior color = %v, want %v", got, InteriorColor)
	}
}

func TestColorOf_PaletteWraparound(t *testing.T) {
	pal := Grayscale
	n := float64(len(pal))
	st := plainState()

	tests := []struct {
		name string
		pos  float64
		want RGBA
		tol  float64
	}{
		{name: "zero", pos: 0, want: pal[0]},
		{name: "exactly palette length", pos: n, want: pal[0]},
		{name: "just below palette length", pos: n - 1e-9, want: pal[0], tol: 1e-6},
		{name: "one full cycle plus a half step", pos: n + 0.5, want: pal[0].Lerp(pal[1], 0.5)},
		{name: "many cycles", pos: 100 * n, want: pal[0]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColorOf(escapedAt(tt.pos), st, pal)
			if !colorsClose(got, tt.want, tt.tol) {
				t.Errorf("ColorOf(pos=%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestColorOf_NegativePositionStaysInRange(t *testing.T) {
	st := plainState()
	got := ColorOf(escapedAt(-0.5), st, Grayscale)
	for _, ch := range []float64{got.R, got.G, got.B, got.A} {
		if math.IsNaN(ch) || ch < 0 || ch > 1 {
			t.Fatalf("channel out of range for negative position: %v", got)
		}
	}
}

func TestColorOf_DensityScalesPosition(t *testing.T) {
	st := plainState()
	st.ColorDensity = 0.5

	// Smooth 1 at density 0.5 lands halfway into the first ramp segment.
	got := ColorOf(escapedAt(1), st, Grayscale)
	want := Grayscale[0].Lerp(Grayscale[1], 0.5)
	if !colorsClose(got, want, 0) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestColorOf_StripeAverage(t *testing.T) {
	st := DefaultState()
	st.Stripes = true
	st.StripeIntensity = 10

	// Average 0.5 at intensity 10 is position 5: exactly palette entry 5.
	res := Result{Escaped: true, Iterations: 10, StripeSum: 5, Smooth: 99}
	got := ColorOf(res, st, Grayscale)
	if !colorsClose(got, Grayscale[5], 0) {
		t.Errorf("got %v, want palette entry 5 %v", got, Grayscale[5])
	}
}

func TestColorOf_StripeWithZeroIterationsFallsBackToSmooth(t *testing.T) {
	// A point already outside the escape radius reports zero iterations;
	// the stripe average would divide by zero, so the smooth branch is
	// used instead.
	st := plainState()
	st.Stripes = true

	res := Result{Escaped: true, Iterations: 0, Smooth: 2}
	got := ColorOf(res, st, Grayscale)
	if !colorsClose(got, Grayscale[2], 0) {
		t.Errorf("got %v, want palette entry 2 %v", got, Grayscale[2])
	}
}

func TestPaletteAt_AnyIndexSafe(t *testing.T) {
	for _, idx := range []int{0, 1, len(Palettes) - 1, len(Palettes), 2 * len(Palettes), -1, -17, 1 << 20} {
		pal := PaletteAt(idx)
		if len(pal) == 0 {
			t.Errorf("PaletteAt(%d) returned an empty palette", idx)
		}
	}
	if &PaletteAt(len(Palettes))[0] != &Palettes[0][0] {
		t.Error("PaletteAt should wrap to the first palette at the set size")
	}
}

func TestPalette_At(t *testing.T) {
	pal := Grayscale
	if pal.At(len(pal)) != pal[0] {
		t.Error("At(len) should wrap to the first entry")
	}
	if pal.At(-1) != pal[len(pal)-1] {
		t.Error("At(-1) should wrap to the last entry")
	}
}

func colorsClose(a, b RGBA, tol float64) bool {
	if tol == 0 {
		return a == b
	}
	return math.Abs(a.R-b.R) <= tol &&
		math.Abs(a.G-b.G) <= tol &&
		math.Abs(a.B-b.B) <= tol &&
		math.Abs(a.A-b.A) <= tol
}
