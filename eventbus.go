package kumiai

import (
	"reflect"
	"sync"
)

// Subscription identifies one handler registered on an EventBus.
type Subscription struct {
	t  reflect.Type
	id uint64
}

type busHandler struct {
	id uint64
	fn any
}

// EventBus delivers plain application messages by Go type. It is unrelated
// to component observers: nothing here touches entities or tables.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[reflect.Type][]busHandler
	nextID   uint64
}

// Subscribe registers handler for messages of type T. Handlers run in
// subscription order.
func Subscribe[T any](bus *EventBus, handler func(T)) Subscription {
	t := reflect.TypeFor[T]()
	bus.mu.Lock()
	defer bus.mu.Unlock()
	if bus.handlers == nil {
		bus.handlers = make(map[reflect.Type][]busHandler)
	}
	bus.nextID++
	bus.handlers[t] = append(bus.handlers[t], busHandler{id: bus.nextID, fn: handler})
	return Subscription{t: t, id: bus.nextID}
}

// Unsubscribe removes a handler. Unknown subscriptions are ignored.
func (bus *EventBus) Unsubscribe(sub Subscription) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	list := bus.handlers[sub.t]
	for i, h := range list {
		if h.id == sub.id {
			next := make([]busHandler, 0, len(list)-1)
			next = append(next, list[:i]...)
			bus.handlers[sub.t] = append(next, list[i+1:]...)
			return
		}
	}
}

// Publish calls every handler subscribed to T with event. Handlers may
// subscribe or unsubscribe; changes apply to the next Publish.
func Publish[T any](bus *EventBus, event T) {
	bus.mu.RLock()
	list := bus.handlers[reflect.TypeFor[T]()]
	bus.mu.RUnlock()
	for _, h := range list {
		h.fn.(func(T))(event)
	}
}
