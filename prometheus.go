package lookahead

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusConfig is a config of the Prometheus metrics provided by the
// buffer.
//
// An instance can be created only by the [Prometheus] function. The zero
// value is invalid.
type PrometheusConfig struct {
	// Namespace of the metrics.
	Namespace string
	// Subsystem of the metrics.
	Subsystem string
	// Options for the pulled items counter.
	ItemsPulled prometheus.CounterOpts
	// Options for the consumed items counter.
	ItemsConsumed prometheus.CounterOpts
	// Options for the peek operations counter.
	Peeks prometheus.CounterOpts
	// Options for the source errors counter.
	SourceErrors prometheus.CounterOpts
	// Options for the buffered depth gauge.
	Depth prometheus.GaugeOpts

	registerer prometheus.Registerer
}

// Prometheus returns a [PrometheusConfig] with the provided registerer. If
// registerer is nil, metrics will not be registered. Many default parameters
// can be configured by passing configuration functions.
func Prometheus(
	registerer prometheus.Registerer,
	configFuncs ...func(c *PrometheusConfig),
) *PrometheusConfig {
	const (
		namespace = "lookahead"
		subsystem = ""
	)

	c := PrometheusConfig{
		registerer: registerer,
		Namespace:  namespace,
		Subsystem:  subsystem,
		ItemsPulled: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "items_pulled",
			Help:      "Number of items pulled from the source into the queue",
		},
		ItemsConsumed: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "items_consumed",
			Help:      "Number of items returned to the consumer",
		},
		Peeks: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "peeks",
			Help:      "Number of peek operations",
		},
		SourceErrors: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "source_errors",
			Help:      "Number of errors returned by the source",
		},
		Depth: prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "depth",
			Help:      "Number of items currently buffered",
		},
	}

	for _, cf := range configFuncs {
		if cf != nil {
			cf(&c)
		}
	}

	return &c
}

func (c *PrometheusConfig) metrics() *metrics {
	m := metrics{
		itemsPulled:   prometheus.NewCounter(c.ItemsPulled),
		itemsConsumed: prometheus.NewCounter(c.ItemsConsumed),
		peeks:         prometheus.NewCounter(c.Peeks),
		sourceErrors:  prometheus.NewCounter(c.SourceErrors),
		depth:         prometheus.NewGauge(c.Depth),
	}

	if c.registerer != nil {
		c.registerer.MustRegister(
			m.itemsPulled,
			m.itemsConsumed,
			m.peeks,
			m.sourceErrors,
			m.depth,
		)
	}

	return &m
}

type metrics struct {
	itemsPulled   prometheus.Counter
	itemsConsumed prometheus.Counter
	peeks         prometheus.Counter
	sourceErrors  prometheus.Counter
	depth         prometheus.Gauge
}
