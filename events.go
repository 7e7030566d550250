package hako

import "reflect"

// EntityCreated is published after an entity has been created.
type EntityCreated struct {
	Entity Entity
}

// EntityRemoved is published after an entity and all of its components have
// been removed.
type EntityRemoved struct {
	Entity Entity
}

// ComponentSet is published after a component was attached to, or
// overwritten on, an entity.
type ComponentSet struct {
	Entity   Entity
	Type     reflect.Type
	Replaced bool
}

// ComponentRemoved is published after a component was removed from an entity
// through Remove. Rows dropped by RemoveEntity are covered by EntityRemoved.
type ComponentRemoved struct {
	Entity Entity
	Type   reflect.Type
}
