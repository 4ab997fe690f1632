package svgfig

// Option configures Render and RenderFig.
type Option func(*options)

type options struct {
	parallelism int
}

func newOptions(opts []Option) options {
	o := options{parallelism: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithParallelism renders the top level figures with up to n
// goroutines. The output is identical to the sequential one:
// each figure is buffered and the buffers are written in order.
// Values below 2 disable concurrency.
func WithParallelism(n int) Option {
	return func(o *options) { o.parallelism = n }
}
