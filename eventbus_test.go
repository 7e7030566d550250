package hako

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// EventBus test events
type TestEvent struct {
	Value int
}

type otherEvent struct {
	X float32
}

func TestEventBusSubscribeAndPublish(t *testing.T) {
	bus := &EventBus{}
	received := 0
	Subscribe(bus, func(e TestEvent) {
		received += e.Value
	})
	Subscribe(bus, func(e TestEvent) {
		received += e.Value * 2
	})
	Publish(bus, TestEvent{Value: 1})
	assert.Equal(t, 3, received)
	Publish(bus, TestEvent{Value: 2})
	assert.Equal(t, 3+6, received)
}

func TestEventBusMultipleTypes(t *testing.T) {
	bus := &EventBus{}
	received1 := 0
	received2 := 0
	Subscribe(bus, func(e TestEvent) {
		received1 += e.Value
	})
	Subscribe(bus, func(o otherEvent) {
		received2 += int(o.X)
	})
	Publish(bus, TestEvent{Value: 42})
	Publish(bus, otherEvent{X: 10})
	assert.Equal(t, 42, received1)
	assert.Equal(t, 10, received2)
}

func TestEventBusNoHandlers(t *testing.T) {
	bus := &EventBus{}
	// No panic expected
	Publish(bus, TestEvent{Value: 42})

	var nilBus *EventBus
	Publish(nilBus, TestEvent{Value: 42})
}

func TestEventBusManySubscribers(t *testing.T) {
	bus := &EventBus{}
	const numSubs = 100
	received := 0
	for i := 0; i < numSubs; i++ {
		Subscribe(bus, func(e TestEvent) {
			received += e.Value
		})
	}
	Publish(bus, TestEvent{Value: 1})
	assert.Equal(t, numSubs, received)
}

func TestEventBusUnsubscribe(t *testing.T) {
	bus := &EventBus{}
	var order []int
	first := Subscribe(bus, func(TestEvent) { order = append(order, 1) })
	Subscribe(bus, func(TestEvent) { order = append(order, 2) })

	assert.True(t, bus.Unsubscribe(first))
	assert.False(t, bus.Unsubscribe(first), "second unsubscribe is a no-op")
	Publish(bus, TestEvent{})
	assert.Equal(t, []int{2}, order)
}

func TestEventBusUnsubscribeDuringPublish(t *testing.T) {
	bus := &EventBus{}
	calls := 0
	var self Subscription
	self = Subscribe(bus, func(TestEvent) {
		calls++
		bus.Unsubscribe(self)
	})
	Subscribe(bus, func(TestEvent) { calls++ })
	Publish(bus, TestEvent{})
	assert.Equal(t, 2, calls, "the in-flight publish still reaches every handler")
	Publish(bus, TestEvent{})
	assert.Equal(t, 3, calls)
}
