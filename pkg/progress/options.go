package progress

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Options holds the configuration applied by Init.
type Options struct {
	// Max is the upper bound of the counter. Default: 1.
	Max any

	// Value is the starting offset added to every SetValue delta. Default: 0.
	Value any

	// Formatter renders the value element. Default: DefaultFormatter.
	Formatter any

	// Text, when non-empty, is published as the initial label.
	Text string

	// Logger receives debug logs. Default: slog.Default().
	Logger *slog.Logger

	// Metrics records widget activity. Default: none.
	Metrics *Metrics

	// Tracer creates spans around Init and the setters. Default: the
	// global OpenTelemetry tracer named "progressus".
	Tracer trace.Tracer

	// Context parents the widget's spans. Default: context.Background().
	Context context.Context

	listeners []listener
}

type listener struct {
	kind    EventKind
	handler Handler
}

// Option configures Init.
type Option func(*Options)

// WithMax sets the upper bound. Numbers and numeric strings are accepted and
// validated by ValidateMax.
func WithMax(max any) Option {
	return func(o *Options) {
		o.Max = max
	}
}

// WithValue sets the starting offset, validated by ValidateStart.
func WithValue(value any) Option {
	return func(o *Options) {
		o.Value = value
	}
}

// WithFormatter sets the value formatter, validated by ValidateFormatter.
func WithFormatter(formatter any) Option {
	return func(o *Options) {
		o.Formatter = formatter
	}
}

// WithText sets the initial label.
func WithText(text string) Option {
	return func(o *Options) {
		o.Text = text
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithMetrics records widget activity on m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// WithTracer sets the tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *Options) {
		o.Tracer = tracer
	}
}

// WithContext sets the context that parents the widget's spans.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Context = ctx
	}
}

// WithListener subscribes h to kind during Init, after the widget's own
// handlers, so it also observes the initial text and value events.
func WithListener(kind EventKind, h Handler) Option {
	return func(o *Options) {
		o.listeners = append(o.listeners, listener{kind: kind, handler: h})
	}
}
