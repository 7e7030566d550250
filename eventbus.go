package hako

import "reflect"

// EventBus provides a simple, type-safe event bus for decoupled
// communication. Systems subscribe to specific event types and a Registry
// configured WithEventBus publishes its lifecycle events (EntityCreated,
// EntityRemoved, ComponentSet, ComponentRemoved) to them.
//
// Handlers run synchronously on the publishing goroutine, in subscription
// order. The bus is not safe for concurrent use.
type EventBus struct {
	handlers map[reflect.Type][]subscription
	nextID   uint64
}

// Subscription identifies a registered handler so it can be removed later.
type Subscription struct {
	typ reflect.Type
	id  uint64
}

type subscription struct {
	id uint64
	fn any // func(T)
}

// Subscribe registers a handler function to be called when an event of type
// T is published.
//
// Parameters:
//   - bus: The EventBus instance to subscribe to.
//   - handler: A function that takes a single argument of type T.
//
// Returns:
//   - A Subscription that can be passed to Unsubscribe.
func Subscribe[T any](bus *EventBus, handler func(T)) Subscription {
	t := reflect.TypeFor[T]()
	if bus.handlers == nil {
		bus.handlers = make(map[reflect.Type][]subscription)
	}
	bus.nextID++
	bus.handlers[t] = append(bus.handlers[t], subscription{id: bus.nextID, fn: handler})
	return Subscription{typ: t, id: bus.nextID}
}

// Unsubscribe removes a handler. It reports whether the subscription was
// still registered.
func (bus *EventBus) Unsubscribe(s Subscription) bool {
	hs := bus.handlers[s.typ]
	for i, h := range hs {
		if h.id != s.id {
			continue
		}
		// copy so an in-flight Publish keeps iterating its own slice
		next := make([]subscription, 0, len(hs)-1)
		next = append(next, hs[:i]...)
		next = append(next, hs[i+1:]...)
		if len(next) == 0 {
			delete(bus.handlers, s.typ)
		} else {
			bus.handlers[s.typ] = next
		}
		return true
	}
	return false
}

// Publish broadcasts an event of type T to all registered handlers for that
// type. Publishing on a nil bus is a no-op.
//
// Parameters:
//   - bus: The EventBus instance to publish to.
//   - event: The event data of type T to be sent to handlers.
func Publish[T any](bus *EventBus, event T) {
	if bus == nil {
		return
	}
	for _, h := range bus.handlers[reflect.TypeFor[T]()] {
		h.fn.(func(T))(event)
	}
}
