package progress

import "fmt"

// EventKind names a semantic state change.
type EventKind string

const (
	EventProgressChanged EventKind = "progressus:progress:change"
	EventValueChanged    EventKind = "progressus:value:change"
	EventTextChanged     EventKind = "progressus:text:change"
)

// Event is the payload of a published change. Only the field matching Kind
// is meaningful.
type Event struct {
	Kind       EventKind
	Percentage float64 // EventProgressChanged
	Value      float64 // EventValueChanged, absolute (start + delta)
	Text       string  // EventTextChanged
}

// String returns a compact representation for logs.
func (e Event) String() string {
	switch e.Kind {
	case EventProgressChanged:
		return fmt.Sprintf("%s{percentage=%s}", e.Kind, formatNumber(e.Percentage))
	case EventValueChanged:
		return fmt.Sprintf("%s{value=%s}", e.Kind, formatNumber(e.Value))
	case EventTextChanged:
		return fmt.Sprintf("%s{text=%q}", e.Kind, e.Text)
	default:
		return string(e.Kind)
	}
}

// Handler reacts to a published event. A non-nil error stops dispatch and is
// returned to the publisher.
type Handler func(Event) error

type subscription struct {
	id      uint64
	handler Handler
}

// Bus dispatches events to handlers synchronously, in subscription order.
// The zero value is ready to use.
type Bus struct {
	handlers map[EventKind][]subscription
	nextID   uint64
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers h for kind and returns a function that removes it.
func (b *Bus) Subscribe(kind EventKind, h Handler) (unsubscribe func()) {
	return b.add(kind, h, false)
}

// subscribeFirst registers h ahead of every handler already on kind.
func (b *Bus) subscribeFirst(kind EventKind, h Handler) (unsubscribe func()) {
	return b.add(kind, h, true)
}

func (b *Bus) add(kind EventKind, h Handler, first bool) func() {
	if b.handlers == nil {
		b.handlers = make(map[EventKind][]subscription)
	}
	b.nextID++
	id := b.nextID
	sub := subscription{id: id, handler: h}
	if first {
		b.handlers[kind] = append([]subscription{sub}, b.handlers[kind]...)
	} else {
		b.handlers[kind] = append(b.handlers[kind], sub)
	}

	return func() {
		subs := b.handlers[kind]
		for i, s := range subs {
			if s.id == id {
				b.handlers[kind] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Publish runs every handler subscribed to ev.Kind before returning. Handlers
// may publish further events; those run to completion first. The handler
// list is captured when Publish starts.
func (b *Bus) Publish(ev Event) error {
	subs := b.handlers[ev.Kind]
	for _, s := range subs {
		if err := s.handler(ev); err != nil {
			return err
		}
	}
	return nil
}
