package hako

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitmask(t *testing.T) {
	t.Run("SetGrows", func(t *testing.T) {
		var m bitmask
		m.set(3)
		m.set(130)
		assert.Len(t, m.words, 3)
		assert.True(t, m.containsBit(3))
		assert.True(t, m.containsBit(130))
		assert.False(t, m.containsBit(64))
		assert.False(t, m.containsBit(1000))
		assert.Equal(t, []ComponentID{3, 130}, m.ids())
		assert.Equal(t, 2, m.count())
	})

	t.Run("Unset", func(t *testing.T) {
		var m bitmask
		m.set(0)
		m.set(65)
		m.unset(65)
		m.unset(500)
		assert.Equal(t, []ComponentID{0}, m.ids())
	})

	t.Run("Contains", func(t *testing.T) {
		var m, sub, other bitmask
		m.set(1)
		m.set(70)
		sub.set(70)
		assert.True(t, m.contains(&sub))
		assert.True(t, m.contains(&bitmask{}))
		other.set(200)
		assert.False(t, m.contains(&other))
		assert.False(t, sub.contains(&m))
	})

	t.Run("Intersects", func(t *testing.T) {
		var a, b bitmask
		a.set(5)
		b.set(6)
		assert.False(t, a.intersects(&b))
		b.set(5)
		assert.True(t, a.intersects(&b))
		assert.False(t, a.intersects(&bitmask{}))
	})
}
