// Package preset provides named starting viewports for the fractal
// renderer and their persistence as TOML files, so interesting locations
// can be revisited and renders reproduced offline.
package preset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/fractal"
)

// Preset errors.
var (
	// ErrUnknown is returned when no preset has the requested name.
	ErrUnknown = errors.New("preset: unknown preset")

	// ErrEmptyFile is returned when a preset file contains no presets.
	ErrEmptyFile = errors.New("preset: file contains no presets")
)

// Preset is a named render configuration. The zero values of optional
// fields fall back to the renderer defaults, so files only need to spell
// out what they change.
type Preset struct {
	Name string `toml:"name"`

	CenterX       float64 `toml:"center_x"`
	CenterY       float64 `toml:"center_y"`
	ViewportWidth float64 `toml:"viewport_width"`

	// Formula is the canonical formula name ("mandelbrot", "burning-ship").
	// Empty means mandelbrot.
	Formula string `toml:"formula,omitempty"`

	Julia  bool    `toml:"julia,omitempty"`
	JuliaX float64 `toml:"julia_x,omitempty"`
	JuliaY float64 `toml:"julia_y,omitempty"`

	PaletteIndex int `toml:"palette,omitempty"`

	// MaxIter overrides the adaptive iteration budget when positive.
	MaxIter int `toml:"max_iter,omitempty"`

	Stripes         bool    `toml:"stripes"`
	StripeFrequency float64 `toml:"stripe_frequency,omitempty"`
	StripeIntensity float64 `toml:"stripe_intensity,omitempty"`

	InteriorCheck bool `toml:"interior_check,omitempty"`
}

// State converts the preset into a render state, starting from
// [fractal.DefaultState] and applying the adaptive iteration budget unless
// the preset pins the cap.
func (p Preset) State() (fractal.State, error) {
	st := fractal.DefaultState()

	st.CenterX = p.CenterX
	st.CenterY = p.CenterY
	if p.ViewportWidth > 0 {
		st.ViewportWidth = p.ViewportWidth
	}

	if p.Formula != "" {
		f, err := fractal.ParseFormula(p.Formula)
		if err != nil {
			return fractal.State{}, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		st.Formula = f
	}

	st.Julia = p.Julia
	if p.Julia {
		st.JuliaX = p.JuliaX
		st.JuliaY = p.JuliaY
	}

	st.PaletteIndex = p.PaletteIndex
	st.Stripes = p.Stripes
	if p.StripeFrequency > 0 {
		st.StripeFrequency = p.StripeFrequency
	}
	if p.StripeIntensity > 0 {
		st.StripeIntensity = p.StripeIntensity
	}
	st.InteriorCheck = p.InteriorCheck

	if p.MaxIter > 0 {
		st.AutoIterations = false
		st.MaxIter = p.MaxIter
	} else {
		st = fractal.AdjustIterations(st)
	}

	if err := st.Validate(); err != nil {
		return fractal.State{}, fmt.Errorf("preset %q: %w", p.Name, err)
	}
	return st, nil
}

// FromState captures a render state as a named preset.
func FromState(name string, st fractal.State) Preset {
	p := Preset{
		Name:            name,
		CenterX:         st.CenterX,
		CenterY:         st.CenterY,
		ViewportWidth:   st.ViewportWidth,
		Formula:         st.Formula.String(),
		Julia:           st.Julia,
		PaletteIndex:    st.PaletteIndex,
		Stripes:         st.Stripes,
		StripeFrequency: st.StripeFrequency,
		StripeIntensity: st.StripeIntensity,
		InteriorCheck:   st.InteriorCheck,
	}
	if st.Julia {
		p.JuliaX = st.JuliaX
		p.JuliaY = st.JuliaY
	}
	if !st.AutoIterations {
		p.MaxIter = st.MaxIter
	}
	return p
}

// Builtin returns the built-in presets.
func Builtin() []Preset {
	return []Preset{
		{
			Name:    "home",
			CenterX: -0.5, CenterY: 0,
			ViewportWidth: fractal.BaseViewportWidth,
			Stripes:       true,
		},
		{
			Name:    "seahorse-valley",
			CenterX: -0.743643887037151, CenterY: 0.13182590420533,
			ViewportWidth: 0.00012,
			Stripes:       true,
		},
		{
			Name:    "elephant-valley",
			CenterX: 0.2925, CenterY: 0.0149,
			ViewportWidth: 0.0025,
			Stripes:       true,
		},
		{
			Name:    "julia-dendrite",
			CenterX: 0, CenterY: 0,
			ViewportWidth: fractal.BaseViewportWidth,
			Julia:         true,
			JuliaX:        -0.8, JuliaY: 0.156,
			Stripes: true,
		},
		{
			Name:    "burning-ship",
			CenterX: -1.75, CenterY: -0.035,
			ViewportWidth: 0.12,
			Formula:       "burning-ship",
			Stripes:       true,
		},
	}
}

// Lookup finds a built-in preset by name.
func Lookup(name string) (Preset, error) {
	for _, p := range Builtin() {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w %q", ErrUnknown, name)
}

// file is the on-disk TOML document: a list of [[preset]] tables.
type file struct {
	Presets []Preset `toml:"preset"`
}

// Load reads presets from a TOML file.
func Load(path string) ([]Preset, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("preset: read file: %w", err)
	}

	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("preset: parse %s: %w", path, err)
	}
	if len(f.Presets) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}
	return f.Presets, nil
}

// Save writes presets to a TOML file.
func Save(path string, presets []Preset) error {
	data, err := toml.Marshal(file{Presets: presets})
	if err != nil {
		return fmt.Errorf("preset: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("preset: write file: %w", err)
	}
	return nil
}
