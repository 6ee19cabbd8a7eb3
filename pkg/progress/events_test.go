package progress

import (
	"errors"
	"reflect"
	"testing"
)

func TestBusPublishOrder(t *testing.T) {
	var bus Bus
	var got []string

	bus.Subscribe(EventTextChanged, func(ev Event) error {
		got = append(got, "first:"+ev.Text)
		return nil
	})
	bus.Subscribe(EventTextChanged, func(ev Event) error {
		got = append(got, "second:"+ev.Text)
		return nil
	})
	bus.Subscribe(EventValueChanged, func(Event) error {
		got = append(got, "value")
		return nil
	})

	if err := bus.Publish(Event{Kind: EventTextChanged, Text: "hi"}); err != nil {
		t.Fatalf("Publish() error: %v", err)
	}

	want := []string{"first:hi", "second:hi"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("handlers ran %v, want %v", got, want)
	}
}

func TestBusPublishStopsAtFirstError(t *testing.T) {
	bus := NewBus()
	boom := errors.New("boom")
	calls := 0

	bus.Subscribe(EventProgressChanged, func(Event) error {
		calls++
		return boom
	})
	bus.Subscribe(EventProgressChanged, func(Event) error {
		calls++
		return nil
	})

	err := bus.Publish(Event{Kind: EventProgressChanged})
	if !errors.Is(err, boom) {
		t.Fatalf("Publish() error = %v, want %v", err, boom)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestBusPublishWithoutHandlers(t *testing.T) {
	var bus Bus
	if err := bus.Publish(Event{Kind: EventValueChanged, Value: 1}); err != nil {
		t.Errorf("Publish() error: %v", err)
	}
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()
	var got []int

	unsubA := bus.Subscribe(EventValueChanged, func(Event) error {
		got = append(got, 1)
		return nil
	})
	bus.Subscribe(EventValueChanged, func(Event) error {
		got = append(got, 2)
		return nil
	})

	unsubA()
	unsubA() // second call is a no-op

	_ = bus.Publish(Event{Kind: EventValueChanged})
	if !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("handlers ran %v, want [2]", got)
	}
}

func TestBusSubscribeFirst(t *testing.T) {
	bus := NewBus()
	var got []string
	record := func(name string) Handler {
		return func(Event) error {
			got = append(got, name)
			return nil
		}
	}

	bus.Subscribe(EventValueChanged, record("listener"))
	unsub := bus.subscribeFirst(EventValueChanged, record("widget"))
	bus.Subscribe(EventValueChanged, record("late"))

	_ = bus.Publish(Event{Kind: EventValueChanged})
	if want := []string{"widget", "listener", "late"}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}

	got = nil
	unsub()
	_ = bus.Publish(Event{Kind: EventValueChanged})
	if want := []string{"listener", "late"}; !reflect.DeepEqual(got, want) {
		t.Errorf("after unsubscribe = %v, want %v", got, want)
	}
}

func TestBusUnsubscribeDuringPublish(t *testing.T) {
	bus := NewBus()
	var got []int
	var unsub func()

	unsub = bus.Subscribe(EventTextChanged, func(Event) error {
		got = append(got, 1)
		unsub()
		return nil
	})
	bus.Subscribe(EventTextChanged, func(Event) error {
		got = append(got, 2)
		return nil
	})

	_ = bus.Publish(Event{Kind: EventTextChanged})
	_ = bus.Publish(Event{Kind: EventTextChanged})

	want := []int{1, 2, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("handlers ran %v, want %v", got, want)
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Event{Kind: EventProgressChanged, Percentage: 33.5}, "progressus:progress:change{percentage=33.5}"},
		{Event{Kind: EventValueChanged, Value: 5}, "progressus:value:change{value=5}"},
		{Event{Kind: EventTextChanged, Text: "Installing..."}, `progressus:text:change{text="Installing..."}`},
		{Event{Kind: "custom"}, "custom"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
