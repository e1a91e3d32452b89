// Package fractal renders escape-time fractals (the Mandelbrot family and
// their Julia sets) into RGBA pixel buffers.
//
// # Overview
//
// The package is a pure-CPU rendering core intended to sit behind an
// interactive front end: the caller owns the window, the input handling and
// the persistence of finished images, while fractal owns the numerical
// kernel, the color pipeline and the parallel scheduling.
//
// # Quick Start
//
//	import "github.com/gogpu/fractal"
//
//	st := fractal.AdjustIterations(fractal.DefaultState())
//	pm := fractal.NewPixmap(800, 800)
//
//	r := fractal.NewRenderer()
//	defer r.Close()
//
//	elapsed, err := r.Render(st, pm, false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = pm.SavePNG("mandelbrot.png")
//
// # Rendering modes
//
// A full render partitions the buffer into contiguous row bands and fills
// them concurrently on a fixed worker pool. A preview render fills the
// buffer single-threaded on a coarse block grid, trading fidelity for
// roughly stride-squared less work; front ends use previews while the user
// is panning or zooming and issue one full render once input settles.
//
// [Renderer.RenderHighRes] renders the same viewport into a buffer that is
// an integer multiple of the display size, for high-quality export.
//
// # Coordinate System
//
// Pixel (0,0) is the top-left corner. The viewport is described by its
// center on the complex plane and its width; pixels are square, so the
// vertical span follows from the buffer's aspect ratio.
//
// # Concurrency
//
// [State] is a value type and every render call receives its own copy, so
// the caller may mutate its canonical state freely between calls. Workers
// write through disjoint row-band views of the target pixmap and need no
// synchronization on the buffer itself.
package fractal
