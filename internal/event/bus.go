// Package event carries fire-and-forget notifications from the simulation to
// whatever draws it. Delivery is synchronous, in subscription order, on the
// goroutine that publishes.
package event

import "reflect"

// Bus routes events to handlers by the event's Go type.
// The zero value is ready to use.
type Bus struct {
	handlers map[reflect.Type][]any
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[reflect.Type][]any)}
}

// Subscribe registers handler for events of type T.
func Subscribe[T any](bus *Bus, handler func(T)) {
	if bus.handlers == nil {
		bus.handlers = make(map[reflect.Type][]any)
	}
	t := reflect.TypeFor[T]()
	bus.handlers[t] = append(bus.handlers[t], handler)
}

// Publish delivers ev to every handler subscribed to T.
// Publishing on a nil bus is a no-op.
func Publish[T any](bus *Bus, ev T) {
	if bus == nil {
		return
	}
	for _, h := range bus.handlers[reflect.TypeFor[T]()] {
		h.(func(T))(ev)
	}
}

// Recorder collects every event of type T, for tests and HUD counters.
type Recorder[T any] struct {
	Events []T
}

// Record subscribes a new Recorder to bus.
func Record[T any](bus *Bus) *Recorder[T] {
	r := &Recorder[T]{}
	Subscribe(bus, func(ev T) { r.Events = append(r.Events, ev) })
	return r
}

// Len returns the number of recorded events.
func (r *Recorder[T]) Len() int { return len(r.Events) }
