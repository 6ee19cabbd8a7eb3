package progress

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	perrors "github.com/vango-dev/progressus/internal/errors"
	"github.com/vango-dev/progressus/pkg/host"
)

const tracerName = "progressus"

// Widget is a progress bar bound to a container element.
type Widget struct {
	id      string
	locator string
	mode    string

	container    host.Node
	progressNode host.Node
	textNode     host.Node // nil when the container has no text element
	valueNode    host.Node // nil when the container has no value element

	max       float64
	start     float64
	formatter Formatter

	value      float64
	percentage float64

	bus     *Bus
	own     []func() // unsubscribes the element handlers
	ready   bool
	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
	ctx     context.Context

	// depth counts nested setter calls so a failure is counted once.
	depth int
}

// Init binds a new widget to the element matching locator in doc.
func Init(doc host.Document, locator string, opts ...Option) (*Widget, error) {
	return new(Widget).Init(doc, locator, opts...)
}

// Init binds w to the element matching locator in doc and returns w.
//
// It resolves the container, discovers or creates its children, subscribes
// the element handlers, validates the options and finally publishes the
// initial text (if any) and value. On error the widget is unusable and
// should be discarded; elements created before the failure stay in doc.
//
// Listeners added with On before Init are kept and run after the element
// handlers, so they observe the initial events too.
func (w *Widget) Init(doc host.Document, locator string, opts ...Option) (_ *Widget, err error) {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}
	w.configure(options)
	w.locator = locator
	w.mode = ""
	w.depth = 0
	w.ready = false

	span := w.enter("progressus.Init", locator)
	defer func() {
		w.metrics.recordInit(w.mode, err)
		w.leave(span, err)
		if err != nil {
			w.logger.Debug("progress widget init failed",
				"widget_id", w.id, "selector", locator, "error", err)
		}
	}()

	w.container, err = resolveContainer(doc, locator)
	if err != nil {
		return nil, err
	}

	nodes, mode, err := bindDependencies(doc, w.container)
	w.mode = mode
	if err != nil {
		return nil, err
	}
	w.progressNode, w.textNode, w.valueNode = nodes[0], nodes[1], nodes[2]

	w.subscribe(options.listeners)

	if w.max, err = ValidateMax(withDefault(options.Max, 1)); err != nil {
		return nil, err
	}
	if w.start, err = ValidateStart(withDefault(options.Value, 0), w.max); err != nil {
		return nil, err
	}
	if w.formatter, err = ValidateFormatter(withDefault(options.Formatter, nil)); err != nil {
		return nil, err
	}
	if w.formatter == nil {
		w.formatter = DefaultFormatter
	}
	w.ready = true

	w.logger.Debug("progress widget bound",
		"widget_id", w.id,
		"selector", locator,
		"mode", w.mode,
		"max", w.max,
		"start", w.start,
		"text_element", w.textNode != nil,
		"value_element", w.valueNode != nil,
	)

	if options.Text != "" {
		if err = w.SetText(options.Text); err != nil {
			return nil, err
		}
	}
	if err = w.SetValue(0); err != nil {
		return nil, err
	}

	return w, nil
}

func (w *Widget) configure(o Options) {
	w.id = uuid.NewString()
	w.logger = o.Logger
	if w.logger == nil {
		w.logger = slog.Default()
	}
	w.metrics = o.Metrics
	w.tracer = o.Tracer
	if w.tracer == nil {
		w.tracer = otel.Tracer(tracerName)
	}
	w.ctx = o.Context
	if w.ctx == nil {
		w.ctx = context.Background()
	}
}

func resolveContainer(doc host.Document, locator string) (host.Node, error) {
	if strings.TrimSpace(locator) == "" {
		return nil, perrors.New("P001")
	}
	if doc == nil {
		return nil, perrors.New("P002").WithInput(locator).WithSuggestion("Init needs a document to search")
	}
	node, ok := doc.QuerySelector(locator)
	if !ok || node == nil {
		return nil, perrors.New("P002").WithInput(locator)
	}
	return node, nil
}

// subscribe puts the element handlers ahead of any listener already on the
// bus, replacing the ones from a previous Init, then adds listeners.
func (w *Widget) subscribe(listeners []listener) {
	if w.bus == nil {
		w.bus = NewBus()
	}
	for _, unsubscribe := range w.own {
		unsubscribe()
	}
	w.own = []func(){
		w.bus.subscribeFirst(EventTextChanged, w.textChanged),
		w.bus.subscribeFirst(EventValueChanged, w.valueChanged),
		w.bus.subscribeFirst(EventProgressChanged, w.progressChanged),
	}
	for _, l := range listeners {
		w.bus.Subscribe(l.kind, l.handler)
	}
}

// withDefault returns def when v is Unset.
func withDefault(v, def any) any {
	if Unset(v) {
		return def
	}
	return v
}

// SetProgress moves the bar to percentage without touching the value
// element. percentage must be a number in [0, 100]; fractions are kept.
func (w *Widget) SetProgress(percentage any) (err error) {
	span := w.enter("progressus.SetProgress", percentage)
	defer func() { w.leave(span, err) }()

	n, ok := parseNumber(percentage)
	if !ok || n < 0 || n > 100 {
		return perrors.New("P008").WithInput(percentage)
	}
	return w.publish(Event{Kind: EventProgressChanged, Percentage: n})
}

// SetValue reports start+delta as the current value. delta is an offset
// from the starting value, not from the previous call. It must be a
// non-negative number with start+delta <= max.
func (w *Widget) SetValue(delta any) (err error) {
	span := w.enter("progressus.SetValue", delta)
	defer func() { w.leave(span, err) }()

	n, ok := parseNumber(delta)
	if !ok || n < 0 || n+w.start > w.max {
		return perrors.New("P009").WithInput(delta)
	}
	return w.publish(Event{Kind: EventValueChanged, Value: n + w.start})
}

// SetText sets the label. It is a no-op on widgets without a text element.
func (w *Widget) SetText(text string) (err error) {
	span := w.enter("progressus.SetText", text)
	defer func() { w.leave(span, err) }()

	return w.publish(Event{Kind: EventTextChanged, Text: text})
}

// On subscribes h to kind after the widget's own handlers and returns a
// function that removes it. It may be called before Init.
func (w *Widget) On(kind EventKind, h Handler) (unsubscribe func()) {
	if w.bus == nil {
		w.bus = NewBus()
	}
	return w.bus.Subscribe(kind, h)
}

func (w *Widget) publish(ev Event) error {
	if !w.ready {
		return perrors.New("P010")
	}
	w.logger.Debug("progress event", "widget_id", w.id, "event", ev.String())
	w.metrics.recordEvent(ev.Kind)
	return w.bus.Publish(ev)
}

func (w *Widget) enter(name string, input any) trace.Span {
	w.depth++
	return w.startSpan(name, attribute.String("progressus.input", fmt.Sprint(input)))
}

func (w *Widget) leave(span trace.Span, err error) {
	w.depth--
	if w.depth == 0 {
		w.metrics.recordError(err)
	}
	endSpan(span, err)
}

func (w *Widget) startSpan(name string, attrs ...attribute.KeyValue) trace.Span {
	if w.tracer == nil {
		w.tracer = otel.Tracer(tracerName)
	}
	if w.ctx == nil {
		w.ctx = context.Background()
	}
	attrs = append(attrs, attribute.String("progressus.widget_id", w.id))
	_, span := w.tracer.Start(w.ctx, name, trace.WithAttributes(attrs...))
	return span
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// ID returns the widget's instance ID, used in logs and spans.
func (w *Widget) ID() string { return w.id }

// Container returns the element the widget is bound to.
func (w *Widget) Container() host.Node { return w.container }

// ProgressNode returns the bar element.
func (w *Widget) ProgressNode() host.Node { return w.progressNode }

// TextNode returns the label element, or nil.
func (w *Widget) TextNode() host.Node { return w.textNode }

// ValueNode returns the readout element, or nil.
func (w *Widget) ValueNode() host.Node { return w.valueNode }

// Mode reports whether Init found ("discovered") or built ("created") the
// container's children.
func (w *Widget) Mode() string { return w.mode }

// Max returns the upper bound.
func (w *Widget) Max() float64 { return w.max }

// Start returns the starting offset.
func (w *Widget) Start() float64 { return w.start }

// Value returns the last value published, start included.
func (w *Widget) Value() float64 { return w.value }

// Percentage returns the last percentage applied to the bar.
func (w *Widget) Percentage() float64 { return w.percentage }
