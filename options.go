package fractal

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	// Default: one worker per logical CPU, stride-12 previews.
//	r := fractal.NewRenderer()
//
//	// Fixed worker count for reproducible benchmarks.
//	r := fractal.NewRenderer(fractal.WithWorkers(4))
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	workers int
	stride  int
}

// defaultRendererOptions returns the default renderer options.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		workers: 0, // 0 means one worker per logical CPU
		stride:  DefaultPreviewStride,
	}
}

// WithWorkers sets the number of parallel render workers.
// Values <= 0 select one worker per logical CPU.
func WithWorkers(n int) RendererOption {
	return func(o *rendererOptions) {
		o.workers = n
	}
}

// WithPreviewStride sets the block size used by preview renders.
// Larger strides are faster and blockier. Values <= 0 are rejected at
// render time.
func WithPreviewStride(stride int) RendererOption {
	return func(o *rendererOptions) {
		o.stride = stride
	}
}
