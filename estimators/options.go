package estimators

import "go.uber.org/zap"

const defaultMaxIterations = 500

// Options configures a single estimator call. The zero options suppress all
// optimizer output; there is no process-wide logging state.
type Options struct {
	logger        *zap.Logger
	maxIterations int
}

// Option mutates the per-call Options.
type Option func(*Options)

// WithLogger routes solver diagnostics to l. By default they are dropped.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxIterations caps the optimizer's major iterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

func newOptions(opts []Option) Options {
	o := Options{logger: zap.NewNop(), maxIterations: defaultMaxIterations}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
