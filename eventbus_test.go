package kumiai

import (
	"testing"
)

type damageEvent struct {
	Value int
}

func TestEventBusSubscribeAndPublish(t *testing.T) {
	bus := &EventBus{}
	received := 0
	Subscribe(bus, func(e damageEvent) {
		received += e.Value
	})
	Subscribe(bus, func(e damageEvent) {
		received += e.Value * 2
	})
	Publish(bus, damageEvent{Value: 1})
	if received != 3 {
		t.Errorf("expected received 3, got %d", received)
	}
	Publish(bus, damageEvent{Value: 2})
	if received != 3+6 {
		t.Errorf("expected received 9, got %d", received)
	}
}

func TestEventBusMultipleTypes(t *testing.T) {
	bus := &EventBus{}
	received1 := 0
	received2 := 0
	Subscribe(bus, func(e damageEvent) {
		received1 += e.Value
	})
	Subscribe(bus, func(p Position) {
		received2 += int(p.X)
	})
	Publish(bus, damageEvent{Value: 42})
	Publish(bus, Position{X: 10})
	if received1 != 42 {
		t.Errorf("expected received1 42, got %d", received1)
	}
	if received2 != 10 {
		t.Errorf("expected received2 10, got %d", received2)
	}
}

func TestEventBusNoHandlers(t *testing.T) {
	bus := &EventBus{}
	// No panic expected
	Publish(bus, damageEvent{Value: 42})
}

func TestEventBusUnsubscribe(t *testing.T) {
	bus := &EventBus{}
	var order []int
	first := Subscribe(bus, func(damageEvent) { order = append(order, 1) })
	Subscribe(bus, func(damageEvent) { order = append(order, 2) })
	bus.Unsubscribe(first)
	bus.Unsubscribe(first)
	Publish(bus, damageEvent{})
	if len(order) != 1 || order[0] != 2 {
		t.Errorf("expected [2], got %v", order)
	}
}

func TestEventBusSubscribeDuringPublish(t *testing.T) {
	bus := &EventBus{}
	calls := 0
	Subscribe(bus, func(damageEvent) {
		calls++
		Subscribe(bus, func(damageEvent) { calls++ })
	})
	Publish(bus, damageEvent{})
	if calls != 1 {
		t.Errorf("expected 1 call on first publish, got %d", calls)
	}
	Publish(bus, damageEvent{})
	if calls != 3 {
		t.Errorf("expected 3 calls after second publish, got %d", calls)
	}
}

func TestEventBusFromSystem(t *testing.T) {
	w := newTestWorld(t)
	spawnMoving(w, 3)
	total := 0
	Subscribe(w.Bus(), func(e damageEvent) { total += e.Value })
	NewSystemBuilder1[Position](w).EachEntity(func(e Entity, _ *Position) {
		Publish(w.Bus(), damageEvent{Value: 2})
	})
	w.Progress(0)
	if total != 6 {
		t.Errorf("expected 6, got %d", total)
	}
}

func TestEventBusManySubscribers(t *testing.T) {
	bus := &EventBus{}
	const numSubs = 100
	received := 0
	for i := 0; i < numSubs; i++ {
		Subscribe(bus, func(e damageEvent) {
			received += e.Value
		})
	}
	Publish(bus, damageEvent{Value: 1})
	if received != numSubs {
		t.Errorf("expected %d, got %d", numSubs, received)
	}
}
