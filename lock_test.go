package kumiai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// go test -run ^TestStructuralChangesDeferredDuringIteration$ . -count 1
func TestStructuralChangesDeferredDuringIteration(t *testing.T) {
	w := newTestWorld(t)
	ents := spawnMoving(w, 5)
	q := NewQueryBuilder2[Position, Velocity](w).Build()

	visited := 0
	q.EachEntity(func(e Entity, p *Position, _ *Velocity) {
		visited++
		require.True(t, w.Locked())
		if p.X == 0 {
			w.RemoveEntity(e)
			// still alive until the iteration ends
			assert.True(t, w.IsValid(e))
		}
		if p.X == 1 {
			RemoveComponent[Velocity](w, e)
			assert.True(t, HasComponent[Velocity](w, e))
		}
		if p.X == 2 {
			SetComponent(w, e, Health{Current: 1})
			assert.False(t, HasComponent[Health](w, e))
		}
	})
	assert.Equal(t, 5, visited)
	assert.False(t, w.Locked())
	assert.Zero(t, w.Pending())

	assert.False(t, w.IsValid(ents[0]))
	assert.False(t, HasComponent[Velocity](w, ents[1]))
	assert.Equal(t, &Health{Current: 1}, GetComponent[Health](w, ents[2]))
	assert.Equal(t, 3, q.Count())
}

// go test -run ^TestTableCreatedDuringIterationKeepsOrder$ . -count 1
func TestTableCreatedDuringIterationKeepsOrder(t *testing.T) {
	w := newTestWorld(t, WithInitialCapacity(4))
	pid := RegisterComponent[Position](w)
	vid := RegisterComponent[Velocity](w)
	lid := RegisterComponent[Label](w)
	mid := RegisterComponent[Marker](w)
	hid := RegisterComponent[Health](w)
	w.Spawner(pid, vid).Spawn()
	w.Spawner(pid, lid).Spawn()
	w.Spawner(pid, mid).Spawn()

	// tables holding Health sort first
	q := NewQueryBuilder1[Position](w).Cached().GroupBy(func(t *Table) uint64 {
		if t.Has(hid) {
			return 0
		}
		return 1
	}).Build()
	require.Equal(t, 3, q.Count())

	visits := map[Entity]int{}
	q.EachEntity(func(e Entity, _ *Position) {
		if len(visits) == 0 {
			w.Spawner(pid, hid)
			// refreshes the cache mid-iteration
			assert.Equal(t, 3, q.Count())
		}
		visits[e]++
	})
	assert.Len(t, visits, 3)
	for e, n := range visits {
		assert.Equal(t, 1, n, "entity %v", e)
	}
	e := w.Spawner(pid, hid).Spawn()
	assert.Equal(t, e, q.Untyped().First())
}

// go test -run ^TestInPlaceWriteNotDeferred$ . -count 1
func TestInPlaceWriteNotDeferred(t *testing.T) {
	w := newTestWorld(t)
	ents := spawnMoving(w, 2)
	q := NewQueryBuilder1[Position](w).Build()

	q.EachEntity(func(e Entity, _ *Position) {
		SetComponent(w, e, Position{X: 42})
		assert.Equal(t, float32(42), GetComponent[Position](w, e).X)
		assert.Zero(t, w.Pending())
	})
	for _, e := range ents {
		assert.Equal(t, float32(42), GetComponent[Position](w, e).X)
	}
}

// go test -run ^TestPanicReleasesLock$ . -count 1
func TestPanicReleasesLock(t *testing.T) {
	w := newTestWorld(t)
	spawnMoving(w, 3)
	q := NewQueryBuilder1[Position](w).Build()

	assert.Panics(t, func() {
		q.Each(func(*Position) { panic("boom") })
	})
	assert.False(t, w.Locked())

	assert.Panics(t, func() {
		q.Untyped().Run(func(it *Iter) {
			it.Next()
			panic("boom")
		})
	})
	assert.False(t, w.Locked())
}

// go test -run ^TestNestedIterationFlushesOnce$ . -count 1
func TestNestedIterationFlushesOnce(t *testing.T) {
	w := newTestWorld(t)
	ents := spawnMoving(w, 2)
	outer := NewQueryBuilder1[Position](w).Build()
	inner := NewQueryBuilder1[Velocity](w).Build()

	outer.EachEntity(func(e Entity, _ *Position) {
		inner.Each(func(*Velocity) {})
		RemoveComponent[Velocity](w, e)
		inner.Each(func(*Velocity) {})
		// inner iteration ended but the outer one still holds the lock
		assert.True(t, HasComponent[Velocity](w, e))
	})
	for _, e := range ents {
		assert.False(t, HasComponent[Velocity](w, e))
	}
}

// go test -run ^TestRejectLockedMutation$ . -count 1
func TestRejectLockedMutation(t *testing.T) {
	w := newTestWorld(t, WithRejectLockedMutation(true))
	spawnMoving(w, 1)
	q := NewQueryBuilder1[Position](w).Build()

	q.EachEntity(func(e Entity, _ *Position) {
		err := recoverError(t, func() { w.RemoveEntity(e) })
		assert.True(t, errors.Is(err, ErrTableLocked))
		assert.Contains(t, err.Error(), "RemoveEntity")

		err = recoverError(t, func() { SetComponent(w, e, Health{}) })
		assert.True(t, errors.Is(err, ErrTableLocked))

		// in-place writes stay legal
		SetComponent(w, e, Position{X: 9})
	})
	assert.False(t, w.Locked())
	assert.Equal(t, 1, q.Count())
}

// go test -run ^TestCreateEntityWhileLocked$ . -count 1
func TestCreateEntityWhileLocked(t *testing.T) {
	w := newTestWorld(t)
	var e Entity
	w.Defer(func() {
		e = w.CreateEntity()
		assert.True(t, w.IsValid(e))
		assert.Nil(t, w.tableOf(e))
		SetComponent(w, e, Position{X: 3})
		assert.Nil(t, GetComponent[Position](w, e))
		assert.Equal(t, 2, w.Pending())
	})
	require.True(t, w.IsValid(e))
	assert.Equal(t, &Position{X: 3}, GetComponent[Position](w, e))
}

// go test -run ^TestCreateThenRemoveWhileLocked$ . -count 1
func TestCreateThenRemoveWhileLocked(t *testing.T) {
	w := newTestWorld(t)
	before := w.Count()
	w.Defer(func() {
		e := w.CreateEntity()
		w.RemoveEntity(e)
	})
	assert.Equal(t, before, w.Count())
	assert.False(t, w.Locked())
}

// go test -run ^TestDeferRunsInOrder$ . -count 1
func TestDeferRunsInOrder(t *testing.T) {
	w := newTestWorld(t)
	e := w.CreateEntity()
	w.Defer(func() {
		SetComponent(w, e, Health{Current: 1})
		RemoveComponent[Health](w, e)
		SetComponent(w, e, Health{Current: 2})
		assert.Equal(t, 3, w.Pending())
	})
	assert.Equal(t, &Health{Current: 2}, GetComponent[Health](w, e))
}

// go test -run ^TestUnbalancedUnlockPanics$ . -count 1
func TestUnbalancedUnlockPanics(t *testing.T) {
	w := newTestWorld(t)
	err := recoverError(t, w.unlockTables)
	assert.True(t, errors.Is(err, ErrUnbalancedLock))
	assert.False(t, w.Locked())
}
