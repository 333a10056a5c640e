package matrix

import (
	"github.com/storax/envmatrix/log"
)

// Option configures parsing and expansion.
type Option func(*options)

type options struct {
	logger log.Logger
}

// WithLogger supplies a structured logger for stage and diagnostic output.
// Without it the engine is silent.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func makeOptions(opts ...Option) options {
	var o options

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		opt(&o)
	}

	return o
}
