package hako

import "math/bits"

// bitmask represents the set of component IDs attached to an entity. Each bit
// corresponds to a ComponentID. Unlike a fixed-width archetype mask it grows
// on demand, so the number of component types a registry can hold is not
// capped.
type bitmask struct {
	words []uint64
}

// set enables the bit corresponding to the given component ID.
func (m *bitmask) set(id ComponentID) {
	i := int(id >> 6) // (id / 64) to find the word index
	o := id & 63      // (id % 64) to find the bit offset
	if i >= len(m.words) {
		m.words = append(m.words, make([]uint64, i+1-len(m.words))...)
	}
	m.words[i] |= uint64(1) << o
}

// unset disables the bit corresponding to the given component ID.
func (m *bitmask) unset(id ComponentID) {
	i := int(id >> 6)
	if i >= len(m.words) {
		return
	}
	m.words[i] &^= uint64(1) << (id & 63)
}

// containsBit checks if a specific bit is set in the mask.
func (m *bitmask) containsBit(id ComponentID) bool {
	i := int(id >> 6)
	if i >= len(m.words) {
		return false
	}
	return m.words[i]&(uint64(1)<<(id&63)) != 0
}

// contains checks if all the bits set in sub are also set in m. Filters use
// it to decide whether an entity carries every required component.
func (m *bitmask) contains(sub *bitmask) bool {
	for i, w := range sub.words {
		if w == 0 {
			continue
		}
		if i >= len(m.words) || m.words[i]&w != w {
			return false
		}
	}
	return true
}

// intersects reports whether m and other share any bit.
func (m *bitmask) intersects(other *bitmask) bool {
	n := min(len(m.words), len(other.words))
	for i := 0; i < n; i++ {
		if m.words[i]&other.words[i] != 0 {
			return true
		}
	}
	return false
}

// count returns the number of set bits.
func (m *bitmask) count() int {
	n := 0
	for _, w := range m.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// ids returns the set component IDs in ascending order.
func (m *bitmask) ids() []ComponentID {
	out := make([]ComponentID, 0, m.count())
	for i, w := range m.words {
		for w != 0 {
			o := bits.TrailingZeros64(w)
			out = append(out, ComponentID(i*64+o))
			w &= w - 1
		}
	}
	return out
}
