// Command fractalrender renders an escape-time fractal to a PNG file.
//
//	fractalrender -preset seahorse-valley -size 1600 -o seahorse.png
//	fractalrender -cx -0.5 -cy 0 -vw 3 -julia=false -palette fire -scale 3
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/export"
	"github.com/gogpu/fractal/preset"
)

func main() {
	var (
		presetName = flag.String("preset", "", "built-in preset name (overrides viewport flags)")
		presetFile = flag.String("preset-file", "", "TOML preset file to load -preset from")
		cx         = flag.Float64("cx", -0.5, "viewport center, real part")
		cy         = flag.Float64("cy", 0.0, "viewport center, imaginary part")
		vw         = flag.Float64("vw", fractal.BaseViewportWidth, "viewport width")
		iterations = flag.Int("iterations", 0, "iteration cap (0 = adaptive from zoom)")
		paletteArg = flag.String("palette", "classic", "palette name")
		formulaArg = flag.String("formula", "mandelbrot", "formula: mandelbrot or burning-ship")
		julia      = flag.Bool("julia", false, "render the Julia set seeded at (jx, jy)")
		jx         = flag.Float64("jx", -0.8, "Julia seed, real part")
		jy         = flag.Float64("jy", 0.156, "Julia seed, imaginary part")
		stripes    = flag.Bool("stripes", false, "stripe-average coloring")
		density    = flag.Float64("density", 0.2, "color density")
		interior   = flag.Bool("interior", false, "interior detection (cardioid/bulb short-circuit)")
		size       = flag.Int("size", 800, "output image size in pixels (square)")
		scale      = flag.Int("scale", 1, "supersampling factor (rendered at size*scale, downsampled)")
		workers    = flag.Int("workers", 0, "render workers (0 = one per CPU)")
		output     = flag.String("o", "", "output file (default: descriptive generated name)")
		verbose    = flag.Bool("v", false, "log render diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		fractal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	st, err := buildState(*presetName, *presetFile, *cx, *cy, *vw, *iterations,
		*paletteArg, *formulaArg, *julia, *jx, *jy, *stripes, *density, *interior)
	if err != nil {
		log.Fatalf("fractalrender: %v", err)
	}

	r := fractal.NewRenderer(fractal.WithWorkers(*workers))
	defer r.Close()

	start := time.Now()
	pm, err := export.Supersample(r, st, *size, *size, *scale)
	if err != nil {
		log.Fatalf("fractalrender: render: %v", err)
	}
	elapsed := time.Since(start)

	path := *output
	if path == "" {
		path = export.Filename(st, *size, *size, *scale > 1, time.Now())
	}
	if err := export.Save(path, pm); err != nil {
		log.Fatalf("fractalrender: %v", err)
	}

	log.Printf("Rendered %dx%d (scale %d, %d iterations) in %v -> %s",
		*size, *size, *scale, st.MaxIter, elapsed, path)
}

func buildState(presetName, presetFile string, cx, cy, vw float64, iterations int,
	paletteArg, formulaArg string, julia bool, jx, jy float64,
	stripes bool, density float64, interior bool) (fractal.State, error) {

	if presetName != "" {
		p, err := findPreset(presetName, presetFile)
		if err != nil {
			return fractal.State{}, err
		}
		return p.State()
	}

	st := fractal.DefaultState()
	st.CenterX, st.CenterY = cx, cy
	st.ViewportWidth = vw
	st.Julia = julia
	st.JuliaX, st.JuliaY = jx, jy
	st.Stripes = stripes
	st.ColorDensity = density
	st.InteriorCheck = interior

	f, err := fractal.ParseFormula(formulaArg)
	if err != nil {
		return fractal.State{}, err
	}
	st.Formula = f

	idx, err := paletteIndex(paletteArg)
	if err != nil {
		return fractal.State{}, err
	}
	st.PaletteIndex = idx

	if iterations > 0 {
		st.AutoIterations = false
		st.MaxIter = iterations
	} else {
		st = fractal.AdjustIterations(st)
	}
	return st, st.Validate()
}

func findPreset(name, file string) (preset.Preset, error) {
	if file != "" {
		ps, err := preset.Load(file)
		if err != nil {
			return preset.Preset{}, err
		}
		for _, p := range ps {
			if p.Name == name {
				return p, nil
			}
		}
		return preset.Preset{}, fmt.Errorf("preset %q not found in %s", name, file)
	}
	return preset.Lookup(name)
}

func paletteIndex(name string) (int, error) {
	for i, n := range fractal.PaletteNames {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown palette %q (have %v)", name, fractal.PaletteNames)
}
