package hako

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Registry owns every entity and component. Entities are plain identifiers;
// components are stored in one table per Go type and reached only through the
// registry.
//
// A Registry is not safe for concurrent use. Wrap it in Shared to access it
// from several goroutines.
type Registry struct {
	entities   entityRegistry
	components componentRegistry
	resources  *Resources
	events     *EventBus
	baseLogger zerolog.Logger
	logger     zerolog.Logger
	id         uuid.UUID
}

// New creates an empty registry.
//
// Parameters:
//   - opts: Options such as WithLogger or WithEventBus.
//
// Returns:
//   - The newly created Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		entities:   newEntityRegistry(),
		components: newComponentRegistry(),
		resources:  &Resources{},
		baseLogger: zerolog.Nop(),
		id:         uuid.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.baseLogger.With().Str("registry", r.id.String()).Logger()
	// the marker table always exists, so Run[All] works on an empty registry
	ensureTable[All](&r.components)
	return r
}

// ID returns the registry's identifier, used to tell registries apart in
// logs.
func (r *Registry) ID() uuid.UUID {
	return r.id
}

// Resources returns the registry's resource store for global, non-entity
// data.
func (r *Registry) Resources() *Resources {
	return r.resources
}

// Events returns the event bus the registry publishes to, or nil.
func (r *Registry) Events() *EventBus {
	return r.events
}

// CreateEntity creates a new entity carrying only the All marker.
func (r *Registry) CreateEntity() Entity {
	e := r.entities.issue()
	attach(r, e, r.entities.mask(e), All{})
	r.logger.Debug().Uint64("entity_id", uint64(e)).Msg("entity created")
	Publish(r.events, EntityCreated{Entity: e})
	return e
}

// CreateEntities creates count entities and returns them in creation order.
func (r *Registry) CreateEntities(count int) []Entity {
	if count <= 0 {
		return nil
	}
	ents := make([]Entity, count)
	for i := range ents {
		ents[i] = r.CreateEntity()
	}
	return ents
}

// RemoveEntity removes e and every component attached to it. It fails with
// ErrEntityNotFound if e is not live, in which case nothing is modified.
func (r *Registry) RemoveEntity(e Entity) error {
	m := r.entities.mask(e)
	if m == nil {
		return entityNotFound(e)
	}
	r.purge(e, m)
	return nil
}

// RemoveEntities removes a batch of entities. Every entity is validated
// first, duplicates included, so either all of them are removed or none.
func (r *Registry) RemoveEntities(ents []Entity) error {
	seen := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		if _, dup := seen[e]; dup || !r.entities.alive(e) {
			return entityNotFound(e)
		}
		seen[e] = struct{}{}
	}
	for _, e := range ents {
		r.purge(e, r.entities.mask(e))
	}
	return nil
}

// Clear removes every entity. Component tables survive and identifiers keep
// increasing from where they were.
func (r *Registry) Clear() {
	for _, e := range r.Entities() {
		r.purge(e, r.entities.mask(e))
	}
}

// EntityCount returns the number of live entities.
func (r *Registry) EntityCount() int {
	return len(r.entities.attached)
}

// Alive reports whether e has been created and not removed.
func (r *Registry) Alive(e Entity) bool {
	return r.entities.alive(e)
}

// Entities returns the live entities in creation order.
func (r *Registry) Entities() []Entity {
	return sortedKeys(r.entities.attached)
}

func (r *Registry) registry() *Registry {
	return r
}

// attach stores v on the live entity e and records its type in the attached
// set.
func attach[T any](r *Registry, e Entity, m *bitmask, v T) (old T, replaced bool) {
	id, t, created := ensureTable[T](&r.components)
	if created {
		r.logger.Debug().
			Str("component_name", t.typ.String()).
			Uint32("component_id", uint32(id)).
			Msg("component table created")
	}
	m.set(id)
	return t.put(e, v)
}

// purge drops every row of e and then e itself.
func (r *Registry) purge(e Entity, m *bitmask) {
	for _, id := range m.ids() {
		r.components.tables[id].remove(e)
	}
	delete(r.entities.attached, e)
	r.logger.Debug().Uint64("entity_id", uint64(e)).Msg("entity removed")
	Publish(r.events, EntityRemoved{Entity: e})
}
