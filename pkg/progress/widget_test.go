package progress

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

func emptyContainer(t *testing.T) (*fakeDocument, *fakeNode) {
	t.Helper()
	doc := newFakeDocument()
	return doc, doc.add(".abc", &fakeNode{tag: "div", class: "abc"})
}

func mustInit(t *testing.T, doc *fakeDocument, locator string, opts ...Option) *Widget {
	t.Helper()
	w, err := Init(doc, locator, opts...)
	if err != nil {
		t.Fatalf("Init(%q) error: %v", locator, err)
	}
	return w
}

func TestInitErrors(t *testing.T) {
	tests := []struct {
		name     string
		locator  string
		opts     []Option
		populate func(*fakeNode)
		wantErr  error
		wantMsg  string
	}{
		{
			name:    "empty locator",
			locator: "",
			wantErr: ErrInvalidSelector,
			wantMsg: "Invalid selector given",
		},
		{
			name:    "blank locator",
			locator: "   ",
			wantErr: ErrInvalidSelector,
		},
		{
			name:    "no match",
			locator: ".missing",
			wantErr: ErrContainerNotFound,
			wantMsg: "No matches found for given selector: .missing",
		},
		{
			name:    "populated without progress element",
			locator: ".abc",
			populate: func(n *fakeNode) {
				n.children = []*fakeNode{{tag: "div", class: "progress-bar-text"}}
			},
			wantErr: ErrMissingRequiredDependency,
			wantMsg: "required dependency not found: progress-bar-progress",
		},
		{
			name:    "string zero max",
			locator: ".abc",
			opts:    []Option{WithMax("0")},
			wantErr: ErrInvalidMax,
			wantMsg: "given value is invalid: 0",
		},
		{
			name:    "non-numeric max",
			locator: ".abc",
			opts:    []Option{WithMax("lots")},
			wantErr: ErrInvalidMax,
		},
		{
			name:    "start above max",
			locator: ".abc",
			opts:    []Option{WithMax(2), WithValue(5)},
			wantErr: ErrInvalidStart,
			wantMsg: "Failed to initialize starting value, given value is invalid: 5",
		},
		{
			name:    "formatter not a function",
			locator: ".abc",
			opts:    []Option{WithFormatter("{percentage}%")},
			wantErr: ErrInvalidFormatter,
			wantMsg: "given formatter is not a function: string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, container := emptyContainer(t)
			if tt.populate != nil {
				tt.populate(container)
			}

			w, err := Init(doc, tt.locator, tt.opts...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Init() error = %v, want %v", err, tt.wantErr)
			}
			if w != nil {
				t.Error("Init() returned a widget alongside an error")
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
			var pe *Error
			if !errors.As(err, &pe) {
				t.Errorf("error %T is not a *progress.Error", err)
			}
		})
	}
}

func TestInitNilDocument(t *testing.T) {
	_, err := Init(nil, ".abc")
	if !errors.Is(err, ErrContainerNotFound) {
		t.Errorf("Init(nil) error = %v, want ErrContainerNotFound", err)
	}
}

func TestInitCreatesDependencies(t *testing.T) {
	doc, container := emptyContainer(t)
	w := mustInit(t, doc, ".abc")

	if w.Mode() != modeCreated {
		t.Errorf("Mode() = %q, want %q", w.Mode(), modeCreated)
	}
	if doc.created != 3 {
		t.Errorf("created %d elements, want 3", doc.created)
	}

	var classes []string
	for _, c := range container.children {
		if c.tag != "div" {
			t.Errorf("created <%s>, want <div>", c.tag)
		}
		classes = append(classes, c.class)
	}
	want := []string{"progress-bar-progress", "progress-bar-text", "progress-bar-value"}
	if !reflect.DeepEqual(classes, want) {
		t.Errorf("children = %v, want %v", classes, want)
	}

	if w.Container() != asNode(container) {
		t.Error("Container() is not the matched element")
	}
	if w.ProgressNode() != asNode(container.children[0]) ||
		w.TextNode() != asNode(container.children[1]) ||
		w.ValueNode() != asNode(container.children[2]) {
		t.Error("bound nodes do not match the created children")
	}

	if got := container.children[0].style["width"]; got != "0%" {
		t.Errorf("progress width = %q, want 0%%", got)
	}
	if got := container.children[2].text; got != "0%" {
		t.Errorf("value text = %q, want 0%%", got)
	}
	if got := container.children[1].text; got != "" {
		t.Errorf("text = %q, want empty", got)
	}
}

func asNode(n *fakeNode) any { return n }

func TestInitDefaults(t *testing.T) {
	doc, _ := emptyContainer(t)
	w := mustInit(t, doc, ".abc")

	if w.Max() != 1 || w.Start() != 0 || w.Value() != 0 || w.Percentage() != 0 {
		t.Errorf("max=%v start=%v value=%v percentage=%v; want 1 0 0 0",
			w.Max(), w.Start(), w.Value(), w.Percentage())
	}
	if w.ID() == "" {
		t.Error("ID() is empty")
	}

	other := mustInit(t, doc, ".abc")
	if other.ID() == w.ID() {
		t.Error("two widgets share an ID")
	}
}

func TestInitFalsyOptionsUseDefaults(t *testing.T) {
	tests := []struct {
		name      string
		opts      []Option
		wantMax   float64
		wantStart float64
	}{
		{"zero max", []Option{WithMax(0)}, 1, 0},
		{"empty max", []Option{WithMax("")}, 1, 0},
		{"NaN max", []Option{WithMax(math.NaN())}, 1, 0},
		{"nil max", []Option{WithMax(nil)}, 1, 0},
		{"empty value", []Option{WithMax(4), WithValue("")}, 4, 0},
		{"false value", []Option{WithMax(4), WithValue(false)}, 4, 0},
		{"zero max with value", []Option{WithMax(0), WithValue(1)}, 1, 1},
		{"empty formatter", []Option{WithMax(4), WithFormatter("")}, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, container := emptyContainer(t)
			w := mustInit(t, doc, ".abc", tt.opts...)

			if w.Max() != tt.wantMax || w.Start() != tt.wantStart {
				t.Errorf("max=%v start=%v, want %v %v", w.Max(), w.Start(), tt.wantMax, tt.wantStart)
			}
			want := fmt.Sprintf("%d%%", int(tt.wantStart/tt.wantMax*100))
			if got := container.children[2].text; got != want {
				t.Errorf("value text = %q, want %q", got, want)
			}
		})
	}
}

func TestInitDiscoversDependencies(t *testing.T) {
	doc, container := emptyContainer(t)
	progressEl := &fakeNode{tag: "span", class: "bar progress-bar-progress"}
	wrapper := &fakeNode{tag: "div", children: []*fakeNode{progressEl}}
	container.children = []*fakeNode{wrapper}

	w := mustInit(t, doc, ".abc", WithText("ignored"))

	if w.Mode() != modeDiscovered {
		t.Errorf("Mode() = %q, want %q", w.Mode(), modeDiscovered)
	}
	if doc.created != 0 {
		t.Errorf("created %d elements in a populated container", doc.created)
	}
	if w.ProgressNode() != asNode(progressEl) {
		t.Error("ProgressNode() is not the nested progress element")
	}
	if w.TextNode() != nil || w.ValueNode() != nil {
		t.Error("optional nodes should be nil when absent")
	}
	if err := w.SetText("still ignored"); err != nil {
		t.Errorf("SetText() without text element error: %v", err)
	}
	if err := w.SetValue(1); err != nil {
		t.Fatalf("SetValue(1) error: %v", err)
	}
	if got := progressEl.style["width"]; got != "100%" {
		t.Errorf("progress width = %q, want 100%%", got)
	}
}

func TestInitDiscoversFirstMatch(t *testing.T) {
	doc, container := emptyContainer(t)
	first := &fakeNode{class: "progress-bar-value"}
	second := &fakeNode{class: "progress-bar-value"}
	container.children = []*fakeNode{
		{class: "progress-bar-progress"},
		first,
		second,
	}

	w := mustInit(t, doc, ".abc")
	if w.ValueNode() != asNode(first) {
		t.Error("ValueNode() is not the first matching element")
	}
	if second.text != "" {
		t.Errorf("second value element was written: %q", second.text)
	}
}

func TestInitWithTextAndValue(t *testing.T) {
	doc, container := emptyContainer(t)
	w := mustInit(t, doc, ".abc", WithMax(2), WithValue(1), WithText("Installing..."))

	progressEl, textEl, valueEl := container.children[0], container.children[1], container.children[2]
	if textEl.text != "Installing..." {
		t.Errorf("text = %q", textEl.text)
	}
	if valueEl.text != "50%" {
		t.Errorf("value text = %q, want 50%%", valueEl.text)
	}
	if progressEl.style["width"] != "50%" {
		t.Errorf("width = %q, want 50%%", progressEl.style["width"])
	}
	if w.Value() != 1 || w.Percentage() != 50 {
		t.Errorf("Value()=%v Percentage()=%v", w.Value(), w.Percentage())
	}
}

func TestSetValuePercentages(t *testing.T) {
	tests := []struct {
		max   any
		delta any
		want  string
	}{
		{4, 1, "25%"},
		{3, 1, "33%"},
		{12, 6.56, "55%"},
		{"10", "7", "70%"},
		{8, 8, "100%"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v/%v", tt.delta, tt.max), func(t *testing.T) {
			doc, container := emptyContainer(t)
			w := mustInit(t, doc, ".abc", WithMax(tt.max))
			if err := w.SetValue(tt.delta); err != nil {
				t.Fatalf("SetValue(%v) error: %v", tt.delta, err)
			}
			if got := container.children[2].text; got != tt.want {
				t.Errorf("value text = %q, want %q", got, tt.want)
			}
			if got := container.children[0].style["width"]; got != tt.want {
				t.Errorf("width = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetValueIsNotCumulative(t *testing.T) {
	doc, container := emptyContainer(t)
	var published []float64
	w := mustInit(t, doc, ".abc", WithMax(10))
	w.On(EventValueChanged, func(ev Event) error {
		published = append(published, ev.Value)
		return nil
	})

	for i := 0; i < 2; i++ {
		if err := w.SetValue(5); err != nil {
			t.Fatalf("SetValue(5) error: %v", err)
		}
	}

	if !reflect.DeepEqual(published, []float64{5, 5}) {
		t.Errorf("published values %v, want [5 5]", published)
	}
	if container.children[2].text != "50%" {
		t.Errorf("value text = %q, want 50%%", container.children[2].text)
	}
}

func TestSetValueAddsStart(t *testing.T) {
	doc, container := emptyContainer(t)
	w := mustInit(t, doc, ".abc", WithMax(10), WithValue(2))

	if container.children[2].text != "20%" {
		t.Errorf("initial value text = %q, want 20%%", container.children[2].text)
	}
	if err := w.SetValue(3); err != nil {
		t.Fatalf("SetValue(3) error: %v", err)
	}
	if w.Value() != 5 || container.children[2].text != "50%" {
		t.Errorf("Value()=%v text=%q; want 5, 50%%", w.Value(), container.children[2].text)
	}
	if err := w.SetValue(8.5); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("SetValue(8.5) with start 2 and max 10 error = %v, want ErrInvalidValue", err)
	}
	if w.Value() != 5 {
		t.Errorf("rejected SetValue changed Value() to %v", w.Value())
	}
}

func TestSetValueInvalid(t *testing.T) {
	doc, _ := emptyContainer(t)
	w := mustInit(t, doc, ".abc", WithMax(10))

	for _, delta := range []any{-1, 11, "abc", nil, true} {
		err := w.SetValue(delta)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("SetValue(%v) error = %v, want ErrInvalidValue", delta, err)
			continue
		}
		want := fmt.Sprintf("Failed to set progress bar value, given value is invalid: %v", delta)
		if !strings.HasSuffix(err.Error(), want) {
			t.Errorf("SetValue(%v) error = %q", delta, err.Error())
		}
	}
}

func TestSetProgress(t *testing.T) {
	doc, container := emptyContainer(t)
	w := mustInit(t, doc, ".abc", WithMax(4))
	_ = w.SetValue(1)

	if err := w.SetProgress(33.5); err != nil {
		t.Fatalf("SetProgress(33.5) error: %v", err)
	}
	if got := container.children[0].style["width"]; got != "33.5%" {
		t.Errorf("width = %q, want 33.5%%", got)
	}
	if got := container.children[2].text; got != "25%" {
		t.Errorf("SetProgress changed value text to %q", got)
	}
	if w.Percentage() != 33.5 || w.Value() != 1 {
		t.Errorf("Percentage()=%v Value()=%v", w.Percentage(), w.Value())
	}

	if err := w.SetProgress("80"); err != nil {
		t.Errorf("SetProgress(\"80\") error: %v", err)
	}
	if err := w.SetProgress(0); err != nil {
		t.Errorf("SetProgress(0) error: %v", err)
	}
	if err := w.SetProgress(100); err != nil {
		t.Errorf("SetProgress(100) error: %v", err)
	}
}

func TestSetProgressInvalid(t *testing.T) {
	doc, container := emptyContainer(t)
	w := mustInit(t, doc, ".abc")

	for _, p := range []any{-1, 100.5, "abc", nil} {
		err := w.SetProgress(p)
		if !errors.Is(err, ErrInvalidPercentage) {
			t.Errorf("SetProgress(%v) error = %v, want ErrInvalidPercentage", p, err)
		}
	}
	if got := container.children[0].style["width"]; got != "0%" {
		t.Errorf("rejected SetProgress changed width to %q", got)
	}
}

func TestSetText(t *testing.T) {
	doc, container := emptyContainer(t)
	w := mustInit(t, doc, ".abc")

	if err := w.SetText("Downloading"); err != nil {
		t.Fatalf("SetText() error: %v", err)
	}
	if container.children[1].text != "Downloading" {
		t.Errorf("text = %q", container.children[1].text)
	}
	if err := w.SetText(""); err != nil {
		t.Fatalf("SetText(\"\") error: %v", err)
	}
	if container.children[1].text != "" {
		t.Errorf("text = %q, want empty", container.children[1].text)
	}
}

func TestCustomFormatter(t *testing.T) {
	doc, container := emptyContainer(t)
	w := mustInit(t, doc, ".abc",
		WithMax(12),
		WithFormatter(func(it Iteration) string {
			return fmt.Sprintf("%v of %v", it.Value, it.Max)
		}),
	)
	if container.children[2].text != "0 of 12" {
		t.Errorf("initial value text = %q", container.children[2].text)
	}
	_ = w.SetValue(3)
	if container.children[2].text != "3 of 12" {
		t.Errorf("value text = %q", container.children[2].text)
	}
}

func TestFormatterErrorPropagates(t *testing.T) {
	doc, _ := emptyContainer(t)
	boom := errors.New("formatter failed")
	calls := 0
	formatter := Formatter(func(Iteration) (string, error) {
		calls++
		if calls > 1 {
			return "", boom
		}
		return "ok", nil
	})

	w := mustInit(t, doc, ".abc", WithMax(2), WithFormatter(formatter))
	if err := w.SetValue(1); !errors.Is(err, boom) {
		t.Errorf("SetValue() error = %v, want %v", err, boom)
	}
	if w.Percentage() != 0 {
		t.Errorf("bar moved to %v after formatter failure", w.Percentage())
	}
	if w.Value() != 0 {
		t.Errorf("Value() = %v after formatter failure, want the last rendered value 0", w.Value())
	}
}

func TestListenersObserveInit(t *testing.T) {
	doc, _ := emptyContainer(t)
	var got []string
	record := func(ev Event) error {
		got = append(got, ev.String())
		return nil
	}

	mustInit(t, doc, ".abc",
		WithMax(2),
		WithText("Installing..."),
		WithListener(EventTextChanged, record),
		WithListener(EventValueChanged, record),
		WithListener(EventProgressChanged, record),
	)

	// The value handler moves the bar before later value listeners run.
	want := []string{
		`progressus:text:change{text="Installing..."}`,
		"progressus:progress:change{percentage=0}",
		"progressus:value:change{value=0}",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestListenerErrorIsReturned(t *testing.T) {
	doc, _ := emptyContainer(t)
	w := mustInit(t, doc, ".abc", WithMax(4))

	veto := errors.New("veto")
	unsubscribe := w.On(EventProgressChanged, func(Event) error { return veto })

	if err := w.SetValue(2); !errors.Is(err, veto) {
		t.Errorf("SetValue() error = %v, want %v", err, veto)
	}

	unsubscribe()
	if err := w.SetValue(2); err != nil {
		t.Errorf("SetValue() after unsubscribe error: %v", err)
	}
}

func TestSettersBeforeInit(t *testing.T) {
	var w Widget
	if err := w.SetText("x"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("SetText() error = %v, want ErrNotInitialized", err)
	}
	if err := w.SetProgress(10); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("SetProgress() error = %v, want ErrNotInitialized", err)
	}

	called := 0
	w.On(EventTextChanged, func(Event) error {
		called++
		return nil
	})
	if err := w.SetText("x"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("SetText() after On error = %v, want ErrNotInitialized", err)
	}
	if err := w.SetValue(0); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("SetValue() after On error = %v, want ErrNotInitialized", err)
	}
	if called != 0 {
		t.Errorf("listener ran %d times on an uninitialized widget", called)
	}
}

func TestSettersAfterFailedInit(t *testing.T) {
	doc, _ := emptyContainer(t)
	w := new(Widget)
	if _, err := w.Init(doc, ".abc", WithMax("lots")); !errors.Is(err, ErrInvalidMax) {
		t.Fatalf("Init() error = %v, want ErrInvalidMax", err)
	}
	if err := w.SetValue(0); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("SetValue() error = %v, want ErrNotInitialized", err)
	}
}

func TestOnBeforeInit(t *testing.T) {
	doc, container := emptyContainer(t)
	w := new(Widget)

	var seen []string
	w.On(EventValueChanged, func(ev Event) error {
		// The element handler has already rendered this value.
		seen = append(seen, fmt.Sprintf("%s@%s", formatNumber(ev.Value), container.children[2].text))
		return nil
	})

	if _, err := w.Init(doc, ".abc", WithMax(4)); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if err := w.SetValue(1); err != nil {
		t.Fatalf("SetValue() error: %v", err)
	}
	if want := []string{"0@0%", "1@25%"}; !reflect.DeepEqual(seen, want) {
		t.Errorf("listener saw %v, want %v", seen, want)
	}
}

func TestReinitKeepsListeners(t *testing.T) {
	doc, _ := emptyContainer(t)
	w := new(Widget)

	calls := 0
	w.On(EventProgressChanged, func(Event) error {
		calls++
		return nil
	})
	for i := 0; i < 2; i++ {
		if _, err := w.Init(doc, ".abc", WithMax(2)); err != nil {
			t.Fatalf("Init() #%d error: %v", i+1, err)
		}
	}
	calls = 0

	if err := w.SetValue(1); err != nil {
		t.Fatalf("SetValue() error: %v", err)
	}
	if calls != 1 {
		t.Errorf("listener ran %d times, want 1", calls)
	}
	if w.Percentage() != 50 {
		t.Errorf("Percentage() = %v, want 50", w.Percentage())
	}
}

func TestInitMethodReturnsReceiver(t *testing.T) {
	doc, _ := emptyContainer(t)
	w := new(Widget)
	got, err := w.Init(doc, ".abc")
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if got != w {
		t.Error("(*Widget).Init did not return its receiver")
	}
}

// recordingTracer records span names.
type recordingTracer struct {
	noop.Tracer
	spans []string
}

func (r *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	r.spans = append(r.spans, name)
	return r.Tracer.Start(ctx, name, opts...)
}

func TestTracerSpans(t *testing.T) {
	doc, _ := emptyContainer(t)
	tracer := &recordingTracer{}
	w := mustInit(t, doc, ".abc", WithTracer(tracer), WithContext(context.Background()))

	want := []string{
		"progressus.Init",
		"progressus.SetValue",
		"progressus.SetProgress",
	}
	if !reflect.DeepEqual(tracer.spans, want) {
		t.Errorf("spans = %v, want %v", tracer.spans, want)
	}

	tracer.spans = nil
	_ = w.SetText("x")
	if !reflect.DeepEqual(tracer.spans, []string{"progressus.SetText"}) {
		t.Errorf("spans = %v", tracer.spans)
	}
}
