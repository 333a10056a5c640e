package log

// Option is a functional option that modifies a logger configuration.
type Option func(config) config

// apply applies the given options to cfg in order and returns the result.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		cfg = opt(cfg)
	}

	return cfg
}
