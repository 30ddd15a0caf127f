package lookahead

// Option configures a [Buffer] at construction.
type Option[Item any] = func(*config[Item])

// WithCapacity preallocates space for n items in the internal queue. Purely a
// tuning knob: the queue still grows past n on demand and behavior is
// otherwise identical.
func WithCapacity[Item any](capacity int) Option[Item] {
	if capacity < 0 {
		panic("capacity can't be < 0")
	}
	return func(c *config[Item]) {
		c.capacity = capacity
	}
}

// WithPrometheus enables the Prometheus metrics described by cfg.
func WithPrometheus[Item any](cfg *PrometheusConfig) Option[Item] {
	if cfg == nil {
		panic("prometheus config can't be nil")
	}
	return func(c *config[Item]) {
		c.metrics = cfg.metrics()
	}
}

type config[Item any] struct {
	capacity int
	metrics  *metrics
}

func newConfig[Item any](options ...Option[Item]) *config[Item] {
	options = append([]Option[Item]{
		WithPrometheus[Item](Prometheus(nil)),
	}, options...)

	cfg := config[Item]{}
	for _, opt := range options {
		opt(&cfg)
	}

	return &cfg
}
