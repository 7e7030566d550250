package hako_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwinsyarief/hako"
)

type Frozen struct{}

func setupMovers(t *testing.T) (*hako.Registry, []hako.Entity) {
	t.Helper()
	r := hako.New()
	ents := r.CreateEntities(8)
	for i, e := range ents {
		require.NoError(t, hako.Add(r, e, Position{X: float32(i)}))
		if i%2 == 0 {
			require.NoError(t, hako.Add(r, e, Velocity{VX: 1}))
		}
		if i%4 == 0 {
			require.NoError(t, hako.Add(r, e, Frozen{}))
		}
	}
	return r, ents
}

// go test -run ^TestFilterEntities$ . -count 1
func TestFilterEntities(t *testing.T) {
	r, ents := setupMovers(t)

	t.Run("Conjunction", func(t *testing.T) {
		got, err := hako.NewFilter(hako.TypeOf[Position](), hako.TypeOf[Velocity]()).Entities(r)
		require.NoError(t, err)
		assert.Equal(t, []hako.Entity{ents[0], ents[2], ents[4], ents[6]}, got)
	})

	t.Run("Without", func(t *testing.T) {
		base := hako.NewFilter(hako.TypeOf[Position](), hako.TypeOf[Velocity]())
		got, err := base.Without(hako.TypeOf[Frozen]()).Entities(r)
		require.NoError(t, err)
		assert.Equal(t, []hako.Entity{ents[2], ents[6]}, got)

		// Without does not modify the receiver
		all, err := base.Entities(r)
		require.NoError(t, err)
		assert.Len(t, all, 4)
	})

	t.Run("ExcludingUnknownTypeIsIgnored", func(t *testing.T) {
		got, err := hako.NewFilter(hako.TypeOf[Velocity]()).Without(hako.TypeOf[Unused]()).Entities(r)
		require.NoError(t, err)
		assert.Len(t, got, 4)
	})

	t.Run("UnknownIncludedType", func(t *testing.T) {
		_, err := hako.NewFilter(hako.TypeOf[Position](), hako.TypeOf[Unused]()).Entities(r)
		require.ErrorIs(t, err, hako.ErrComponentNotFound)
	})

	t.Run("NoTypesMatchesEverything", func(t *testing.T) {
		got, err := hako.NewFilter().Entities(r)
		require.NoError(t, err)
		assert.Equal(t, ents, got)
	})

	t.Run("ZeroValueMatchesEverything", func(t *testing.T) {
		var f hako.Filter
		got, err := f.Entities(r)
		require.NoError(t, err)
		assert.Equal(t, ents, got)

		got, err = (&hako.Filter{}).Without(hako.TypeOf[Velocity]()).Entities(r)
		require.NoError(t, err)
		assert.Equal(t, []hako.Entity{ents[1], ents[3], ents[5], ents[7]}, got)
	})
}

// go test -run ^TestFilterEach$ . -count 1
func TestFilterEach(t *testing.T) {
	r, ents := setupMovers(t)
	movers := hako.NewFilter(hako.TypeOf[Position](), hako.TypeOf[Velocity]()).Without(hako.TypeOf[Frozen]())

	var seen []hako.Entity
	require.NoError(t, movers.Each(r, func(rd hako.Reader, e hako.Entity) {
		assert.True(t, hako.Has[Velocity](rd, e))
		seen = append(seen, e)
	}))
	assert.Equal(t, []hako.Entity{ents[2], ents[6]}, seen)

	err := hako.NewFilter(hako.TypeOf[Unused]()).Each(r, func(hako.Reader, hako.Entity) {
		t.Fatal("visitor must not run")
	})
	require.ErrorIs(t, err, hako.ErrComponentNotFound)
}

// go test -run ^TestFilterEachMut$ . -count 1
func TestFilterEachMut(t *testing.T) {
	r, ents := setupMovers(t)
	movers := hako.NewFilter(hako.TypeOf[Position](), hako.TypeOf[Velocity]()).Without(hako.TypeOf[Frozen]())

	var visited []hako.Entity
	err := movers.EachMut(r, func(r *hako.Registry, e hako.Entity) {
		visited = append(visited, e)
		require.NoError(t, hako.BorrowMut(r, e, func(p *Position) { p.X += 100 }))
		// freezing the mover does not cut the current pass short
		require.NoError(t, hako.Add(r, e, Frozen{}))
	})
	require.NoError(t, err)
	assert.Equal(t, []hako.Entity{ents[2], ents[6]}, visited)

	p, err := hako.Get[Position](r, ents[2])
	require.NoError(t, err)
	assert.Equal(t, float32(102), p.X)

	got, err := movers.Entities(r)
	require.NoError(t, err)
	assert.Empty(t, got)
}
