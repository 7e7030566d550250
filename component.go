package hako

import "reflect"

// ComponentID is a registry-local identifier for a component type. IDs are
// assigned in the order types are first stored and index the registry's
// tables.
type ComponentID uint32

// All is the universal marker component. It is attached to every entity at
// creation, so Run[All] visits every live entity.
type All struct{}

// Cloner is implemented by components that need a deep copy when handed out
// by Get. Without it Get returns a plain Go value copy.
type Cloner[T any] interface {
	Clone() T
}

// TypeOf returns the component type key for T.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// componentRegistry maps component types to their IDs and tables. A table is
// created the first time a value of its type is stored; types that were never
// stored have no ID.
type componentRegistry struct {
	typeToID map[reflect.Type]ComponentID
	tables   []storage // indexed by ComponentID
}

func newComponentRegistry() componentRegistry {
	return componentRegistry{
		typeToID: make(map[reflect.Type]ComponentID, 16),
		tables:   make([]storage, 0, 16),
	}
}

// lookup returns the ID and table for t without registering it.
func (cr *componentRegistry) lookup(t reflect.Type) (ComponentID, storage, bool) {
	id, ok := cr.typeToID[t]
	if !ok {
		return 0, nil, false
	}
	return id, cr.tables[id], true
}

// register stores s as the table for its component type and returns the new
// ID.
func (cr *componentRegistry) register(s storage) ComponentID {
	id := ComponentID(len(cr.tables))
	cr.typeToID[s.componentType()] = id
	cr.tables = append(cr.tables, s)
	return id
}

// tableOf returns the typed table for T. The downcast cannot fail: tables are
// only created by ensureTable, which keys them under reflect.TypeFor[T]().
func tableOf[T any](cr *componentRegistry) (ComponentID, *table[T], bool) {
	id, s, ok := cr.lookup(reflect.TypeFor[T]())
	if !ok {
		return 0, nil, false
	}
	t, ok := s.(*table[T])
	if !ok {
		panic("hako: component table does not match its type key " + s.componentType().String())
	}
	return id, t, true
}

// ensureTable returns the typed table for T, creating it when missing. The
// boolean reports whether a table was created.
func ensureTable[T any](cr *componentRegistry) (ComponentID, *table[T], bool) {
	if id, t, ok := tableOf[T](cr); ok {
		return id, t, false
	}
	t := newTable[T]()
	return cr.register(t), t, true
}
