package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/flatsouls/arena"
	"github.com/lixenwraith/flatsouls/vmath"
)

func newTestStore(t *testing.T, capacity int) *Store {
	t.Helper()
	s, err := NewStore(arena.New[Entity](capacity), capacity)
	require.NoError(t, err)
	return s
}

func thing(priority Priority, x float64) Entity {
	return Entity{
		Type:     Thing,
		Priority: priority,
		Pos:      vmath.V3(x, 0, 0),
		Hitbox:   vmath.NewCube(-0.5, -0.5, 0, 0.5, 0.5, 0),
	}
}

func TestNewStoreExceedsArena(t *testing.T) {
	_, err := NewStore(arena.New[Entity](4), 8)
	require.Error(t, err)
	assert.True(t, errors.Is(err, arena.ErrFull))
}

func TestInsertAppendsInOrder(t *testing.T) {
	s := newTestStore(t, 4)
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Insert(thing(0, float64(i))))
	}
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 4, s.Cap())

	var xs []float64
	for i, e := range s.All() {
		assert.Equal(t, float64(i), e.Pos.X)
		xs = append(xs, e.Pos.X)
	}
	assert.Equal(t, []float64{0, 1, 2}, xs)
}

func TestInsertFull(t *testing.T) {
	s := newTestStore(t, 2)
	require.NoError(t, s.Insert(thing(0, 0)))
	require.NoError(t, s.Insert(thing(0, 1)))

	err := s.Insert(thing(5, 2))
	assert.ErrorIs(t, err, ErrFull)
	assert.Equal(t, 2, s.Len())
}

func TestInsertRejectsNullType(t *testing.T) {
	s := newTestStore(t, 2)
	assert.ErrorIs(t, s.Insert(Entity{}), ErrNullType)
	assert.ErrorIs(t, s.Insert(Entity{Type: Type(42)}), ErrNullType)
	assert.Equal(t, 0, s.Len())
}

func TestInsertWithEvictionAppendsWhenRoom(t *testing.T) {
	s := newTestStore(t, 2)
	evictions := 0
	s.OnEvict(func(int, Entity) { evictions++ })

	require.NoError(t, s.InsertWithEviction(thing(PriorityUnimportant, 0)))
	assert.Equal(t, 1, s.Len())
	assert.Zero(t, evictions)
}

func TestInsertWithEvictionReplacesLowestPriorityFirstIndex(t *testing.T) {
	s := newTestStore(t, 4)
	require.NoError(t, s.Insert(thing(1, 0)))
	require.NoError(t, s.Insert(thing(-1, 1))) // first minimum
	require.NoError(t, s.Insert(thing(0, 2)))
	require.NoError(t, s.Insert(thing(-1, 3))) // tied minimum, later index

	var evictedSlot = -1
	var evicted Entity
	calls := 0
	s.OnEvict(func(slot int, e Entity) {
		calls++
		evictedSlot = slot
		evicted = e
	})

	incoming := thing(0, 99)
	require.NoError(t, s.InsertWithEviction(incoming))

	assert.Equal(t, 1, calls, "exactly one eviction")
	assert.Equal(t, 1, evictedSlot)
	assert.Equal(t, 1.0, evicted.Pos.X)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 99.0, s.At(1).Pos.X, "new entity takes the evicted slot")
	assert.Equal(t, 3.0, s.At(3).Pos.X, "tied later slot untouched")
}

func TestInsertWithEvictionRejectsEqualOrLowerPriority(t *testing.T) {
	for _, p := range []Priority{PriorityUnimportant, PriorityMap} {
		s := newTestStore(t, 2)
		require.NoError(t, s.Insert(thing(PriorityMap, 0)))
		require.NoError(t, s.Insert(thing(PriorityPlayer, 1)))
		before := s.Digest()

		called := false
		s.OnEvict(func(int, Entity) { called = true })

		err := s.InsertWithEviction(thing(p, 50))
		assert.ErrorIs(t, err, ErrRejected, "priority %d", p)
		assert.False(t, called)
		assert.Equal(t, before, s.Digest(), "rejected insert must leave the store unchanged")
	}
}

func TestInsertWithEvictionDeterministic(t *testing.T) {
	run := func() uint64 {
		s := newTestStore(t, 3)
		require.NoError(t, s.Insert(thing(0, 0)))
		require.NoError(t, s.Insert(thing(0, 1)))
		require.NoError(t, s.Insert(thing(0, 2)))
		for i := 0; i < 3; i++ {
			require.NoError(t, s.InsertWithEviction(thing(1, float64(10+i))))
		}
		assert.ErrorIs(t, s.InsertWithEviction(thing(1, 20)), ErrRejected)
		return s.Digest()
	}
	first := run()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, run())
	}
}

func TestAtOutOfRangePanics(t *testing.T) {
	s := newTestStore(t, 2)
	require.NoError(t, s.Insert(thing(0, 0)))
	assert.Panics(t, func() { s.At(1) })
	assert.Panics(t, func() { s.At(-1) })
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newTestStore(t, 4)
	require.NoError(t, s.Insert(thing(0, 1)))
	require.NoError(t, s.Insert(thing(0, 2)))

	snap := s.Snapshot(nil)
	require.Len(t, snap, 2)
	s.At(0).Pos.X = 100
	assert.Equal(t, 1.0, snap[0].Pos.X)

	reused := s.Snapshot(snap)
	assert.Equal(t, 100.0, reused[0].Pos.X)
}

func TestDigestTracksState(t *testing.T) {
	s := newTestStore(t, 2)
	require.NoError(t, s.Insert(thing(0, 1)))
	d1 := s.Digest()
	s.At(0).Vel.Y = 1e-9
	assert.NotEqual(t, d1, s.Digest())
	s.At(0).Vel.Y = 0
	assert.Equal(t, d1, s.Digest())
}

func TestResetClearsWithoutHook(t *testing.T) {
	s := newTestStore(t, 2)
	require.NoError(t, s.Insert(thing(0, 1)))
	s.OnEvict(func(int, Entity) { t.Fatal("reset must not evict") })
	s.Reset()
	assert.Equal(t, 0, s.Len())
	require.NoError(t, s.Insert(thing(0, 3)))
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "Wall", Wall.String())
	assert.Equal(t, "Type(9)", Type(9).String())
	assert.False(t, Type(9).Valid())
	assert.True(t, Thing.Valid())
}

func TestCenterAndBounds(t *testing.T) {
	e := NewPlayer(vmath.V3(2, 3, 1), vmath.NewCube(-0.5, -0.5, -0.5, 0.5, 0.5, 0.5))
	assert.Equal(t, vmath.V3(2, 3, 1), e.Center())
	b := e.Bounds()
	assert.Equal(t, 1.5, b.X0)
	assert.Equal(t, 3.5, b.Y1)
	assert.Equal(t, PriorityPlayer, e.Priority)
}
