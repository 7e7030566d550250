// Package hako provides a small, correctness-first entity-component registry.
package hako

import (
	"math"
	"strconv"
)

// Entity is an opaque identifier minted by a Registry. Identifiers increase
// monotonically in creation order and are never reused, so two identifiers
// are equal iff they denote the same logical entity. The zero Entity is never
// issued.
type Entity uint64

// String renders the entity as entity(<n>).
func (e Entity) String() string {
	return "entity(" + strconv.FormatUint(uint64(e), 10) + ")"
}

// entityRegistry holds the live entities and the attached-type set of each.
type entityRegistry struct {
	attached map[Entity]*bitmask // live entity -> attached component IDs
	nextID   Entity              // smallest identifier not yet issued
}

func newEntityRegistry() entityRegistry {
	return entityRegistry{
		attached: make(map[Entity]*bitmask, 64),
		nextID:   1,
	}
}

// issue allocates the next identifier and registers an empty attached set.
func (er *entityRegistry) issue() Entity {
	if er.nextID == math.MaxUint64 {
		panic("hako: entity identifier space exhausted")
	}
	e := er.nextID
	er.nextID++
	er.attached[e] = &bitmask{}
	return e
}

// mask returns the attached set of e, or nil if e is not live.
func (er *entityRegistry) mask(e Entity) *bitmask {
	return er.attached[e]
}

func (er *entityRegistry) alive(e Entity) bool {
	_, ok := er.attached[e]
	return ok
}
