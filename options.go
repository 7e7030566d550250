package hako

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Option configures a Registry at construction.
type Option func(*Registry)

// WithLogger sets the logger used for lifecycle debug output. The registry
// adds a "registry" field with its ID to every event.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.baseLogger = logger
	}
}

// WithEventBus makes the registry publish lifecycle events to bus.
func WithEventBus(bus *EventBus) Option {
	return func(r *Registry) {
		if bus != nil {
			r.events = bus
		}
	}
}

// WithID overrides the randomly generated registry ID.
func WithID(id uuid.UUID) Option {
	return func(r *Registry) {
		if id != uuid.Nil {
			r.id = id
		}
	}
}
