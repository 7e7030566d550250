package hako

import "reflect"

// storage is the type-erased view of a component table. The registry keeps
// one per component type and only needs these operations when it does not
// know the static type, e.g. when an entity is removed.
type storage interface {
	componentType() reflect.Type
	has(e Entity) bool
	remove(e Entity) bool
	value(e Entity) (any, bool)
	len() int
	entities() []Entity
}

// cell owns one component value. Borrow hands out pointers into it, so the
// value never moves while the row exists.
type cell[T any] struct {
	value    T
	borrowed bool // a BorrowMut callback currently holds the value
}

// table stores every value of one component type keyed by entity.
type table[T any] struct {
	typ  reflect.Type
	rows map[Entity]*cell[T]
}

func newTable[T any]() *table[T] {
	return &table[T]{
		typ:  reflect.TypeFor[T](),
		rows: make(map[Entity]*cell[T]),
	}
}

func (t *table[T]) componentType() reflect.Type {
	return t.typ
}

func (t *table[T]) has(e Entity) bool {
	_, ok := t.rows[e]
	return ok
}

func (t *table[T]) remove(e Entity) bool {
	if _, ok := t.rows[e]; !ok {
		return false
	}
	delete(t.rows, e)
	return true
}

func (t *table[T]) value(e Entity) (any, bool) {
	c, ok := t.rows[e]
	if !ok {
		return nil, false
	}
	return c.value, true
}

func (t *table[T]) len() int {
	return len(t.rows)
}

// entities returns a snapshot of the table's entities in creation order.
func (t *table[T]) entities() []Entity {
	return sortedKeys(t.rows)
}

// get returns the cell for e, or nil.
func (t *table[T]) get(e Entity) *cell[T] {
	return t.rows[e]
}

// put stores v for e, overwriting in place when a row exists so outstanding
// Borrow pointers observe the new value. It returns the previous value.
func (t *table[T]) put(e Entity, v T) (old T, replaced bool) {
	if c, ok := t.rows[e]; ok {
		if c.borrowed {
			panic(aliasViolation(t.typ, e))
		}
		old = c.value
		c.value = v
		return old, true
	}
	t.rows[e] = &cell[T]{value: v}
	return old, false
}
