package hako

import "reflect"

// Reader is the read-only surface of a registry. *Registry implements it, and
// Run hands visitors a Reader that exposes nothing else, so a read-only visit
// cannot mutate the registry: every mutating function takes a *Registry.
//
// Reader is sealed; it cannot be implemented outside this package.
type Reader interface {
	// EntityCount returns the number of live entities.
	EntityCount() int
	// Alive reports whether e is live.
	Alive(e Entity) bool
	// Entities returns the live entities in creation order.
	Entities() []Entity

	registry() *Registry
}

// view is the Reader given to Run visitors.
type view struct {
	r *Registry
}

func (v view) EntityCount() int { return v.r.EntityCount() }
func (v view) Alive(e Entity) bool { return v.r.Alive(e) }
func (v view) Entities() []Entity { return v.r.Entities() }
func (v view) registry() *Registry { return v.r }

// Run calls fn once for every entity that has a component of type T, in
// creation order. fn receives a read-only view of the registry and may read
// any component of any entity.
//
// Example:
//
//	err := hako.Run[Position](r, func(rd hako.Reader, e hako.Entity) {
//	    p, _ := hako.Borrow[Position](rd, e)
//	    fmt.Println(e, p.X, p.Y)
//	})
//
// Run fails with ErrComponentNotFound, before calling fn at all, when no
// table exists for T.
func Run[T any](rd Reader, fn func(Reader, Entity)) error {
	r := rd.registry()
	_, t, ok := tableOf[T](&r.components)
	if !ok {
		return componentNotFound(reflect.TypeFor[T]())
	}
	v := view{r: r}
	for _, e := range t.entities() {
		fn(v, e)
	}
	return nil
}

// RunMut is Run with a mutable registry. fn may add, set and remove
// components, including T on the entity being visited, and create or remove
// entities.
//
// The entities to visit are copied before the first call to fn, so each
// entity that had a T when RunMut was called is visited exactly once, even if
// fn removes its T or removes the entity itself, and entities that gain a T
// during the call are not visited. Mutations are never reported as errors;
// they take effect for later calls.
func RunMut[T any](r *Registry, fn func(*Registry, Entity)) error {
	_, t, ok := tableOf[T](&r.components)
	if !ok {
		return componentNotFound(reflect.TypeFor[T]())
	}
	snapshot := t.entities()
	r.logger.Trace().
		Str("component_name", t.typ.String()).
		Int("entities", len(snapshot)).
		Msg("run_mut snapshot")
	for _, e := range snapshot {
		fn(r, e)
	}
	return nil
}
