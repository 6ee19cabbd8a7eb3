package progress

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	perrors "github.com/vango-dev/progressus/internal/errors"
)

// MetricsConfig configures the widget's Prometheus collectors.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "progressus").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus collectors.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "progressus",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the collectors shared by every widget given WithMetrics.
// Collectors are safe for concurrent use, so one Metrics may serve many
// widgets.
type Metrics struct {
	initsTotal  *prometheus.CounterVec
	eventsTotal *prometheus.CounterVec
	errorsTotal *prometheus.CounterVec
	percentage  *prometheus.GaugeVec
}

// NewMetrics registers the widget collectors.
//
// Metrics collected:
//   - progressus_inits_total: widgets initialized, by mode (discovered, created) and status
//   - progressus_events_total: events published, by event kind
//   - progressus_errors_total: rejected calls, by error code
//   - progressus_percentage: last rendered percentage, by container selector
//
// Registering twice against the same registry panics, as with promauto.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		initsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "inits_total",
			Help:        "Total number of widget initializations",
			ConstLabels: config.ConstLabels,
		}, []string{"mode", "status"}),

		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "events_total",
			Help:        "Total number of widget events published",
			ConstLabels: config.ConstLabels,
		}, []string{"event"}),

		errorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "errors_total",
			Help:        "Total number of rejected widget calls",
			ConstLabels: config.ConstLabels,
		}, []string{"code"}),

		percentage: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "percentage",
			Help:        "Last percentage rendered by the widget",
			ConstLabels: config.ConstLabels,
		}, []string{"container"}),
	}
}

func (m *Metrics) recordInit(mode string, err error) {
	if m == nil {
		return
	}
	if mode == "" {
		mode = "none"
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.initsTotal.WithLabelValues(mode, status).Inc()
}

func (m *Metrics) recordEvent(kind EventKind) {
	if m == nil {
		return
	}
	m.eventsTotal.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) recordError(err error) {
	if m == nil || err == nil {
		return
	}
	m.errorsTotal.WithLabelValues(errorCode(err)).Inc()
}

func (m *Metrics) recordPercentage(container string, p float64) {
	if m == nil {
		return
	}
	m.percentage.WithLabelValues(container).Set(p)
}

// errorCode keeps the errors label low-cardinality.
func errorCode(err error) string {
	var pe *perrors.ProgressError
	if errors.As(err, &pe) && pe.Code != "" {
		return pe.Code
	}
	return "unknown"
}
