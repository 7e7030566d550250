package hako

import (
	"maps"
	"slices"
)

// sortedKeys copies the entity keys of m into a new slice in creation order.
// Iteration always walks such a copy, never the live map, so visitors are
// free to resize the map they are driven from.
func sortedKeys[V any](m map[Entity]V) []Entity {
	if len(m) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(m))
}
