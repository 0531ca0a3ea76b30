package event

import "testing"

type ping struct{ n int }
type pong struct{}

func TestPublishRoutesByType(t *testing.T) {
	bus := NewBus()
	var got []int
	Subscribe(bus, func(p ping) { got = append(got, p.n) })
	pongs := 0
	Subscribe(bus, func(pong) { pongs++ })

	Publish(bus, ping{1})
	Publish(bus, ping{2})
	Publish(bus, pong{})

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("ping handler got %v, want [1 2]", got)
	}
	if pongs != 1 {
		t.Fatalf("pong handler called %d times, want 1", pongs)
	}
}

func TestHandlersRunInSubscriptionOrder(t *testing.T) {
	bus := NewBus()
	var order []string
	Subscribe(bus, func(ping) { order = append(order, "first") })
	Subscribe(bus, func(ping) { order = append(order, "second") })
	Publish(bus, ping{})
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("order = %v", order)
	}
}

func TestPublishWithoutSubscribers(t *testing.T) {
	var nilBus *Bus
	Publish(nilBus, ping{}) // must not panic

	var zero Bus
	Publish(&zero, ping{})
	Subscribe(&zero, func(ping) {})
	Publish(&zero, ping{})
}

func TestRecorder(t *testing.T) {
	bus := NewBus()
	rec := Record[Killed](bus)
	Publish(bus, Killed{ID: 4})
	Publish(bus, Removed{ID: 4})
	if rec.Len() != 1 || rec.Events[0].ID != 4 {
		t.Fatalf("recorder = %+v", rec.Events)
	}
}
