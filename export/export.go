// Package export turns finished pixel buffers into image files: PNG
// encoding, descriptive screenshot filenames, and supersampled exports
// that render at an integer scale and downsample for antialiasing.
package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"time"

	"golang.org/x/image/draw"

	"github.com/gogpu/fractal"
)

// Filename builds a screenshot filename that encodes the view it shows:
//
//	fractal_mandelbrot_-0.500000_0.000000_zoom_1.00_1724572800.png
//	fractal_julia_0.000000_0.000000_zoom_4.00_hires_2400x2400_1724572800.png
//
// so a directory of captures stays navigable without opening anything.
func Filename(st fractal.State, width, height int, hires bool, now time.Time) string {
	mode := "mandelbrot"
	if st.Julia {
		mode = "julia"
	}

	name := fmt.Sprintf("fractal_%s_%.6f_%.6f_zoom_%.2f", mode, st.CenterX, st.CenterY, st.Zoom())
	if hires {
		name += fmt.Sprintf("_hires_%dx%d", width, height)
	}
	return fmt.Sprintf("%s_%d.png", name, now.Unix())
}

// Encode writes the pixmap to w as PNG.
func Encode(w io.Writer, pm *fractal.Pixmap) error {
	if err := png.Encode(w, pm.ToImage()); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return nil
}

// Save writes the pixmap to a PNG file at path.
func Save(path string, pm *fractal.Pixmap) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-chosen by design
	if err != nil {
		return fmt.Errorf("export: create file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return Encode(f, pm)
}

// Supersample renders the viewport at scale times the display dimensions
// and downsamples the result back to width-by-height with a Catmull-Rom
// kernel. The extra samples per output pixel antialias the fractal
// boundary, where single-sample renders alias badly.
func Supersample(r *fractal.Renderer, st fractal.State, width, height, scale int) (*fractal.Pixmap, error) {
	hi, err := r.RenderHighRes(st, width, height, scale)
	if err != nil {
		return nil, err
	}
	if scale == 1 {
		return hi, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), hi.ToImage(), hi.Bounds(), draw.Src, nil)
	return fractal.FromImage(dst), nil
}
