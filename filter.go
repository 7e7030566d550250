package hako

import "reflect"

// Filter selects the entities that have every included component type and
// none of the excluded ones. It is the multi-component counterpart of Run and
// RunMut and follows the same snapshot rule: matches are collected before any
// visitor runs.
//
// A Filter holds only types, so one value can be reused across calls and
// registries. The zero Filter matches every entity.
type Filter struct {
	include []reflect.Type
	exclude []reflect.Type
}

// NewFilter creates a filter requiring every type in include. With no types
// it matches every entity, like Run[All].
//
// Example:
//
//	movers := hako.NewFilter(hako.TypeOf[Position](), hako.TypeOf[Velocity]()).
//	    Without(hako.TypeOf[Frozen]())
//	err := movers.EachMut(r, func(r *hako.Registry, e hako.Entity) { ... })
func NewFilter(include ...reflect.Type) *Filter {
	if len(include) == 0 {
		include = []reflect.Type{reflect.TypeFor[All]()}
	}
	return &Filter{include: include}
}

// Without returns a copy of f that also rejects entities having any of types.
func (f *Filter) Without(types ...reflect.Type) *Filter {
	return &Filter{
		include: f.include,
		exclude: append(append([]reflect.Type(nil), f.exclude...), types...),
	}
}

// Entities returns the matching entities in creation order. It fails with
// ErrComponentNotFound when an included type has no table. Excluded types
// without a table are ignored, as no entity can carry them.
func (f *Filter) Entities(rd Reader) ([]Entity, error) {
	r := rd.registry()
	var want, reject bitmask
	var smallest storage
	include := f.include
	if len(include) == 0 {
		include = []reflect.Type{reflect.TypeFor[All]()}
	}
	for _, typ := range include {
		id, s, ok := r.components.lookup(typ)
		if !ok {
			return nil, componentNotFound(typ)
		}
		want.set(id)
		if smallest == nil || s.len() < smallest.len() {
			smallest = s
		}
	}
	for _, typ := range f.exclude {
		if id, _, ok := r.components.lookup(typ); ok {
			reject.set(id)
		}
	}
	candidates := smallest.entities()
	matched := candidates[:0]
	for _, e := range candidates {
		m := r.entities.mask(e)
		if m.contains(&want) && !m.intersects(&reject) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// Each calls fn with a read-only view for every matching entity.
func (f *Filter) Each(rd Reader, fn func(Reader, Entity)) error {
	ents, err := f.Entities(rd)
	if err != nil {
		return err
	}
	v := view{r: rd.registry()}
	for _, e := range ents {
		fn(v, e)
	}
	return nil
}

// EachMut calls fn with the mutable registry for every entity that matched
// when EachMut was called. See RunMut for the mutation rules.
func (f *Filter) EachMut(r *Registry, fn func(*Registry, Entity)) error {
	ents, err := f.Entities(r)
	if err != nil {
		return err
	}
	for _, e := range ents {
		fn(r, e)
	}
	return nil
}
