package hako

import "reflect"

// Resources holds registry-global data that belongs to no entity, such as
// configuration, clocks or asset caches. It keeps at most one value per Go
// type.
type Resources struct {
	items map[reflect.Type]any
}

// SetResource stores v as the resource of type T, replacing any previous one.
// It returns the replaced value and whether one existed.
func SetResource[T any](r *Resources, v T) (old T, replaced bool) {
	t := reflect.TypeFor[T]()
	if r.items == nil {
		r.items = make(map[reflect.Type]any)
	}
	if prev, ok := r.items[t]; ok {
		old, replaced = prev.(T)
	}
	r.items[t] = v
	return old, replaced
}

// GetResource returns the resource of type T, if present.
func GetResource[T any](r *Resources) (T, bool) {
	v, ok := r.items[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// HasResource reports whether a resource of type T is present.
func HasResource[T any](r *Resources) bool {
	_, ok := r.items[reflect.TypeFor[T]()]
	return ok
}

// RemoveResource deletes the resource of type T and reports whether it
// existed.
func RemoveResource[T any](r *Resources) bool {
	t := reflect.TypeFor[T]()
	if _, ok := r.items[t]; !ok {
		return false
	}
	delete(r.items, t)
	return true
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	return len(r.items)
}

// Clear removes all resources.
func (r *Resources) Clear() {
	clear(r.items)
}
