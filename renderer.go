package fractal

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/fractal/internal/parallel"
)

// DefaultPreviewStride is the block size for preview renders, chosen so an
// 800x800 preview costs about as much as a 67x67 full render.
const DefaultPreviewStride = 12

// Renderer errors.
var (
	// ErrSizeMismatch is returned when requested dimensions do not match
	// the provided buffer.
	ErrSizeMismatch = errors.New("fractal: buffer size does not match requested dimensions")

	// ErrInvalidStride is returned when the preview stride is not positive.
	ErrInvalidStride = errors.New("fractal: preview stride must be positive")

	// ErrInvalidScale is returned when a high-resolution scale factor is
	// not a positive integer.
	ErrInvalidScale = errors.New("fractal: scale factor must be positive")
)

// Renderer schedules fractal renders onto a fixed pool of workers.
//
// A full-resolution render partitions the target buffer's rows into one
// contiguous band per worker and joins all bands before returning; a
// preview render runs single-threaded, its cost already bounded by the
// block stride. The zero worker count means one worker per logical CPU.
//
// A Renderer holds goroutines; call Close when done with it.
type Renderer struct {
	stride int
	pool   *parallel.Pool
}

// NewRenderer creates a renderer and starts its worker pool.
func NewRenderer(opts ...RendererOption) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{
		stride: o.stride,
		pool:   parallel.New(o.workers),
	}
	Logger().Info("fractal: renderer started", "workers", r.pool.Workers())
	return r
}

// Close stops the worker pool. The renderer must not be used afterwards.
func (r *Renderer) Close() {
	r.pool.Close()
	Logger().Info("fractal: renderer closed")
}

// Workers returns the number of render workers.
func (r *Renderer) Workers() int {
	return r.pool.Workers()
}

// Render fills the pixmap with the fractal described by st and reports the
// elapsed wall time. With preview set it performs a coarse block render;
// otherwise it renders every pixel, fanning the rows out across the worker
// pool. The pixmap is fully written when Render returns: no band is left
// partially visible.
//
// st is consumed by value; the caller's copy may be mutated freely once
// Render has been entered.
func (r *Renderer) Render(st State, pm *Pixmap, preview bool) (time.Duration, error) {
	if err := st.Validate(); err != nil {
		return 0, err
	}
	if r.stride <= 0 {
		return 0, fmt.Errorf("%w (got %d)", ErrInvalidStride, r.stride)
	}

	if pm.Width() == 0 || pm.Height() == 0 {
		return 0, nil
	}

	start := time.Now()
	pal := PaletteAt(st.PaletteIndex)

	if preview {
		renderPreviewBand(st, pm.Band(0, pm.Height()), r.stride, pal)
	} else {
		bands := splitRows(pm.Height(), r.pool.Workers())
		tasks := make([]func(), 0, len(bands))
		for _, rg := range bands {
			band := pm.Band(rg.y0, rg.y1)
			tasks = append(tasks, func() {
				renderBand(st, band, pal)
			})
		}
		r.pool.ExecuteAll(tasks)
	}

	elapsed := time.Since(start)
	Logger().Debug("fractal: render complete",
		"width", pm.Width(), "height", pm.Height(),
		"preview", preview, "iterations", st.MaxIter, "elapsed", elapsed)
	return elapsed, nil
}

// RenderInto renders into pm after checking that the requested dimensions
// match the buffer. A mismatch is a programming error at the caller and
// fails fast with [ErrSizeMismatch] rather than truncating silently.
func (r *Renderer) RenderInto(st State, pm *Pixmap, width, height int, preview bool) (time.Duration, error) {
	if pm.Width() != width || pm.Height() != height {
		return 0, fmt.Errorf("%w: requested %dx%d, buffer %dx%d",
			ErrSizeMismatch, width, height, pm.Width(), pm.Height())
	}
	return r.Render(st, pm, preview)
}

// RenderHighRes allocates and fills a buffer scale times larger than the
// given display dimensions, using the same viewport: more pixels sample
// the same mathematical region, so the result shows the identical view at
// higher quality.
func (r *Renderer) RenderHighRes(st State, width, height, scale int) (*Pixmap, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidScale, scale)
	}

	pm := NewPixmap(width*scale, height*scale)
	if _, err := r.Render(st, pm, false); err != nil {
		return nil, err
	}
	return pm, nil
}

// rowRange is a half-open row interval [y0, y1).
type rowRange struct {
	y0, y1 int
}

// splitRows partitions [0, height) into at most n contiguous bands.
// The bands cover every row exactly once; the last band absorbs the
// remainder of the integer division. Heights smaller than n yield fewer,
// single-row bands rather than empty ones.
func splitRows(height, n int) []rowRange {
	if n < 1 {
		n = 1
	}
	if n > height {
		n = height
	}

	per := height / n
	bands := make([]rowRange, 0, n)
	for i := 0; i < n; i++ {
		y0 := i * per
		y1 := y0 + per
		if i == n-1 {
			y1 = height
		}
		bands = append(bands, rowRange{y0: y0, y1: y1})
	}
	return bands
}
