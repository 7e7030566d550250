package hako

import "reflect"

// Add attaches v to e, overwriting any existing component of the same type.
// It is Set without the previous value.
func Add[T any](r *Registry, e Entity, v T) error {
	_, _, err := Set(r, e, v)
	return err
}

// Set attaches v to e or overwrites the component of type T already attached.
// The table for T is created on first use.
//
// If e is not live, Set fails with ErrEntityNotFound and neither the tables
// nor the entity are modified.
//
// Returns:
//   - old: The previous value, when one existed.
//   - replaced: true if a previous value was overwritten.
//   - err: ErrEntityNotFound if e is not live.
func Set[T any](r *Registry, e Entity, v T) (old T, replaced bool, err error) {
	m := r.entities.mask(e)
	if m == nil {
		return old, false, entityNotFound(e)
	}
	old, replaced = attach(r, e, m, v)
	Publish(r.events, ComponentSet{Entity: e, Type: reflect.TypeFor[T](), Replaced: replaced})
	return old, replaced, nil
}

// Remove detaches the component of type T from e. It fails with
// ErrComponentNotFound when no table exists for T, and with ErrEntityNotFound
// when e is not live or has no such component.
//
// The universal marker cannot be detached; removing All from a live entity
// does nothing.
func Remove[T any](r *Registry, e Entity) error {
	id, t, ok := tableOf[T](&r.components)
	if !ok {
		return componentNotFound(reflect.TypeFor[T]())
	}
	if !t.has(e) {
		return entityNotFound(e)
	}
	if t.typ == reflect.TypeFor[All]() {
		return nil
	}
	t.remove(e)
	r.entities.mask(e).unset(id)
	Publish(r.events, ComponentRemoved{Entity: e, Type: t.typ})
	return nil
}

// Borrow returns a pointer to the component of type T on e without copying
// it. The pointer must be treated as read-only and is valid until the
// component is overwritten or removed.
//
// It fails with ErrComponentNotFound when no table exists for T, else with
// ErrEntityNotFound when e has no such component.
func Borrow[T any](rd Reader, e Entity) (*T, error) {
	c, err := lookup[T](rd.registry(), e)
	if err != nil {
		return nil, err
	}
	if c.borrowed {
		panic(aliasViolation(reflect.TypeFor[T](), e))
	}
	return &c.value, nil
}

// BorrowMut hands fn exclusive mutable access to the component of type T on
// e for the duration of the call. Errors are those of Borrow.
//
// Any Borrow, BorrowMut or Set of the same component while fn runs panics.
// fn may otherwise use r freely; removing the component or the entity only
// detaches the value fn is working on.
func BorrowMut[T any](r *Registry, e Entity, fn func(*T)) error {
	c, err := lookup[T](r, e)
	if err != nil {
		return err
	}
	if c.borrowed {
		panic(aliasViolation(reflect.TypeFor[T](), e))
	}
	c.borrowed = true
	defer func() { c.borrowed = false }()
	fn(&c.value)
	return nil
}

// Get returns a copy of the component of type T on e. When *T implements
// Cloner[T] the copy is made with Clone. Errors are those of Borrow.
func Get[T any](rd Reader, e Entity) (T, error) {
	p, err := Borrow[T](rd, e)
	if err != nil {
		var zero T
		return zero, err
	}
	if c, ok := any(p).(Cloner[T]); ok {
		return c.Clone(), nil
	}
	return *p, nil
}

// Has reports whether e has a component of type T. It never fails: an
// unknown type or entity simply yields false.
func Has[T any](rd Reader, e Entity) bool {
	r := rd.registry()
	id, _, ok := tableOf[T](&r.components)
	if !ok {
		return false
	}
	m := r.entities.mask(e)
	return m != nil && m.containsBit(id)
}

// ComponentTypes returns the types attached to e in ComponentID order.
func (r *Registry) ComponentTypes(e Entity) ([]reflect.Type, error) {
	m := r.entities.mask(e)
	if m == nil {
		return nil, entityNotFound(e)
	}
	ids := m.ids()
	types := make([]reflect.Type, len(ids))
	for i, id := range ids {
		types[i] = r.components.tables[id].componentType()
	}
	return types, nil
}

// Components returns a copy of every component attached to e, in the order of
// ComponentTypes. It is meant for debugging and logging.
func (r *Registry) Components(e Entity) ([]any, error) {
	m := r.entities.mask(e)
	if m == nil {
		return nil, entityNotFound(e)
	}
	ids := m.ids()
	values := make([]any, 0, len(ids))
	for _, id := range ids {
		v, ok := r.components.tables[id].value(e)
		if !ok {
			panic("hako: attached component set out of sync with table " + r.components.tables[id].componentType().String())
		}
		values = append(values, v)
	}
	return values, nil
}

// lookup resolves the cell for (T, e), checking the table before the row.
func lookup[T any](r *Registry, e Entity) (*cell[T], error) {
	_, t, ok := tableOf[T](&r.components)
	if !ok {
		return nil, componentNotFound(reflect.TypeFor[T]())
	}
	c := t.get(e)
	if c == nil {
		return nil, entityNotFound(e)
	}
	return c, nil
}
