package fractal

import (
	"errors"
	"fmt"
	"math"
)

// Formula selects the escape-time recurrence. The set is closed: there is
// no plugin mechanism for user-defined formulas.
type Formula int

const (
	// FormulaMandelbrot is the standard quadratic recurrence z -> z^2 + c.
	FormulaMandelbrot Formula = iota
	// FormulaBurningShip folds the imaginary product term through its
	// absolute value before doubling, producing the "burning ship" shape.
	FormulaBurningShip

	numFormulas = 2
)

// String returns the formula's canonical name.
func (f Formula) String() string {
	switch f {
	case FormulaMandelbrot:
		return "mandelbrot"
	case FormulaBurningShip:
		return "burning-ship"
	default:
		return fmt.Sprintf("Formula(%d)", int(f))
	}
}

// ParseFormula converts a canonical formula name back to a Formula.
func ParseFormula(name string) (Formula, error) {
	switch name {
	case "mandelbrot":
		return FormulaMandelbrot, nil
	case "burning-ship":
		return FormulaBurningShip, nil
	default:
		return 0, fmt.Errorf("fractal: unknown formula %q", name)
	}
}

const (
	// BaseViewportWidth is the span of the initial viewport; zoom level is
	// reported relative to it.
	BaseViewportWidth = 3.0

	// EscapeRadius is the bailout magnitude for the iteration kernel.
	EscapeRadius = 100.0

	escapeRadiusSquared = EscapeRadius * EscapeRadius

	// MinIterations and MaxIterations bound the adaptive iteration cap.
	MinIterations = 100
	MaxIterations = 10000
)

// State is one immutable snapshot of everything a render depends on.
// It is a small value type: pass it by value, copy it freely. The input
// layer owns the canonical mutable copy; the core only ever reads the
// snapshot it was handed.
type State struct {
	// CenterX, CenterY locate the viewport center on the complex plane.
	CenterX float64
	CenterY float64

	// ViewportWidth is the horizontal span of the viewport. Must be > 0.
	// Pixels are square, so the vertical span follows from the buffer.
	ViewportWidth float64

	// MaxIter caps the iteration count per sample. Must be > 0.
	MaxIter int

	// ColorDensity scales the smooth iteration value before palette lookup.
	ColorDensity float64

	// Julia switches to Julia dynamics: the sampled point seeds the orbit
	// and JuliaX/JuliaY provide the additive constant.
	Julia  bool
	JuliaX float64
	JuliaY float64

	// PaletteIndex selects from [Palettes]; it is reduced modulo the
	// palette-set size before use, so any value is safe.
	PaletteIndex int

	// AutoIterations enables the adaptive iteration budget
	// (see [AdjustIterations]).
	AutoIterations bool

	// Formula selects the recurrence.
	Formula Formula

	// Stripes enables stripe-average coloring; StripeFrequency scales the
	// angular signal, StripeIntensity scales the averaged sum.
	Stripes         bool
	StripeFrequency float64
	StripeIntensity float64

	// InteriorCheck enables the closed-form cardioid and period-2-bulb
	// tests, and shades cap-exhausted points as if they had escaped.
	InteriorCheck bool
}

// DefaultState returns the home view: the full Mandelbrot set, stripes on.
func DefaultState() State {
	return State{
		CenterX:         -0.5,
		CenterY:         0.0,
		ViewportWidth:   BaseViewportWidth,
		MaxIter:         128,
		ColorDensity:    0.2,
		Julia:           false,
		JuliaX:          -0.8,
		JuliaY:          0.156,
		PaletteIndex:    0,
		AutoIterations:  true,
		Formula:         FormulaMandelbrot,
		Stripes:         true,
		StripeFrequency: 5,
		StripeIntensity: 10,
		InteriorCheck:   false,
	}
}

// Validation errors.
var (
	// ErrInvalidViewport reports a zero, negative, or non-finite viewport width.
	ErrInvalidViewport = errors.New("fractal: viewport width must be positive and finite")

	// ErrInvalidIterations reports a non-positive iteration cap.
	ErrInvalidIterations = errors.New("fractal: iteration cap must be positive")
)

// Validate rejects degenerate state before it can reach the sampler, where
// a zero viewport or iteration cap would mean division by zero or a loop
// that never terminates.
func (s State) Validate() error {
	if !(s.ViewportWidth > 0) || math.IsInf(s.ViewportWidth, 0) {
		return fmt.Errorf("%w (got %v)", ErrInvalidViewport, s.ViewportWidth)
	}
	if s.MaxIter <= 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidIterations, s.MaxIter)
	}
	return nil
}

// Zoom reports the magnification relative to the base viewport.
func (s State) Zoom() float64 {
	return BaseViewportWidth / s.ViewportWidth
}

// AdjustIterations derives the iteration cap from the current zoom level.
// With AutoIterations off the cap is left untouched (manual control).
// With it on, the cap grows with the decimal log of the zoom factor and is
// clamped to [MinIterations, MaxIterations], keeping detail proportional
// to zoom depth while bounding worst-case render cost.
func AdjustIterations(s State) State {
	if !s.AutoIterations {
		return s
	}
	zoom := BaseViewportWidth / s.ViewportWidth
	iter := int(math.Round(100 * math.Log10(1+zoom)))
	if iter < MinIterations {
		iter = MinIterations
	}
	if iter > MaxIterations {
		iter = MaxIterations
	}
	s.MaxIter = iter
	return s
}

// PointAt maps a pixel coordinate in a w-by-h buffer to its complex-plane
// coordinate under this state's viewport.
func (s State) PointAt(px, py, w, h int) (cr, ci float64) {
	pixelSize := s.ViewportWidth / float64(w)
	halfSize := s.ViewportWidth / 2
	cr = s.CenterX - halfSize + float64(px)*pixelSize
	ci = s.CenterY - halfSize + float64(py)*pixelSize
	return cr, ci
}

// ZoomAt zooms by factor (< 1 zooms in) about the plane point under pixel
// (px, py), keeping that point stationary on screen.
func (s State) ZoomAt(px, py, w, h int, factor float64) State {
	mx, my := s.PointAt(px, py, w, h)
	s.CenterX = mx + (s.CenterX-mx)*factor
	s.CenterY = my + (s.CenterY-my)*factor
	s.ViewportWidth *= factor
	return s
}

// Pan translates the viewport by a pixel delta.
func (s State) Pan(dxPx, dyPx, w, h int) State {
	pixelSize := s.ViewportWidth / float64(w)
	s.CenterX += float64(dxPx) * pixelSize
	s.CenterY += float64(dyPx) * pixelSize
	return s
}

// Reset restores the home viewport, leaving coloring and mode flags alone.
func (s State) Reset() State {
	s.CenterX = -0.5
	s.CenterY = 0.0
	s.ViewportWidth = BaseViewportWidth
	return s
}

// CyclePalette advances to the next palette in the set.
func (s State) CyclePalette() State {
	s.PaletteIndex = (s.PaletteIndex + 1) % len(Palettes)
	return s
}

// CycleFormula advances to the next formula in the closed set.
func (s State) CycleFormula() State {
	s.Formula = Formula((int(s.Formula) + 1) % numFormulas)
	return s
}
