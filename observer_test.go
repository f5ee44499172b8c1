package kumiai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// go test -run ^TestObserverOnAddOnSet$ . -count 1
func TestObserverOnAddOnSet(t *testing.T) {
	w := newTestWorld(t)
	var log []string
	NewObserverBuilder1[Position](w).
		Event(OnAdd).
		Event(OnSet).
		EachIter(func(it *Iter, _ int, p *Position) {
			switch it.Event() {
			case OnAdd:
				// value is not written yet
				assert.Equal(t, Position{}, *p)
				log = append(log, "add")
			case OnSet:
				log = append(log, "set")
			}
			assert.Equal(t, RegisterComponent[Position](w), it.EventID())
		})

	e := w.CreateEntity()
	SetComponent(w, e, Position{X: 1})
	SetComponent(w, e, Position{X: 2})
	assert.Equal(t, []string{"add", "set", "set"}, log)

	// Add skips OnSet
	other := w.CreateEntity()
	w.Add(other, RegisterComponent[Position](w))
	assert.Equal(t, []string{"add", "set", "set", "add"}, log)
}

// go test -run ^TestObserverOnRemove$ . -count 1
func TestObserverOnRemove(t *testing.T) {
	w := newTestWorld(t)
	ents := spawnMoving(w, 2)
	var removed []float32
	o := NewObserverBuilder1[Position](w).
		Name("cleanup").
		Event(OnRemove).
		Each(func(p *Position) { removed = append(removed, p.X) })
	assert.Equal(t, "cleanup", o.Name())
	assert.Equal(t, []EventID{OnRemove}, o.Events())

	RemoveComponent[Position](w, ents[1])
	w.RemoveEntity(ents[0])
	// only Position triggers, not Velocity
	assert.Equal(t, []float32{1, 0}, removed)

	RemoveComponent[Position](w, ents[1])
	assert.Len(t, removed, 2)
}

// go test -run ^TestObserverMatchesAllTerms$ . -count 1
func TestObserverMatchesAllTerms(t *testing.T) {
	w := newTestWorld(t)
	var got []Entity
	NewObserverBuilder2[Position, Velocity](w).
		Event(OnAdd).
		EachEntity(func(e Entity, _ *Position, _ *Velocity) { got = append(got, e) })

	ents := spawnMoving(w, 2)
	assert.Equal(t, ents, got)

	lone := w.CreateEntity()
	SetComponent(w, lone, Position{})
	assert.Len(t, got, 2)
}

// go test -run ^TestObserverWithout$ . -count 1
func TestObserverWithout(t *testing.T) {
	w := newTestWorld(t)
	fid := RegisterComponent[Frozen](w)
	fired := 0
	NewObserverBuilder1[Health](w).
		Without(fid).
		Event(OnSet).
		Each(func(*Health) { fired++ })

	e := w.CreateEntity()
	AddTag[Frozen](w, e)
	SetComponent(w, e, Health{Current: 1})
	assert.Zero(t, fired)

	RemoveComponent[Frozen](w, e)
	SetComponent(w, e, Health{Current: 2})
	assert.Equal(t, 1, fired)
}

// go test -run ^TestCustomEvent$ . -count 1
func TestCustomEvent(t *testing.T) {
	w := newTestWorld(t)
	hit := NewEvent(w)
	other := NewEvent(w)
	assert.NotEqual(t, hit, other)

	var got []Entity
	NewObserverBuilder1[Health](w).
		Event(hit).
		EachEntity(func(e Entity, h *Health) {
			h.Current--
			got = append(got, e)
		})

	e := w.CreateEntity()
	SetComponent(w, e, Health{Current: 10})
	bystander := w.CreateEntity()
	SetComponent(w, bystander, Position{})

	Emit(w, hit, e)
	Emit(w, hit, bystander)
	Emit(w, other, e)
	assert.Equal(t, []Entity{e}, got)
	assert.Equal(t, 9, GetComponent[Health](w, e).Current)
}

// go test -run ^TestObserverYieldExisting$ . -count 1
func TestObserverYieldExisting(t *testing.T) {
	w := newTestWorld(t)
	ents := spawnMoving(w, 3)
	var got []Entity
	NewObserverBuilder1[Velocity](w).
		Event(OnSet).
		YieldExisting().
		EachEntity(func(e Entity, _ *Velocity) { got = append(got, e) })
	assert.ElementsMatch(t, ents, got)
}

// go test -run ^TestObserverDefersStructuralChanges$ . -count 1
func TestObserverDefersStructuralChanges(t *testing.T) {
	w := newTestWorld(t)
	NewObserverBuilder1[Position](w).
		Event(OnAdd).
		EachEntity(func(e Entity, _ *Position) {
			SetComponent(w, e, Velocity{X: 5})
			assert.False(t, HasComponent[Velocity](w, e))
		})

	e := w.CreateEntity()
	SetComponent(w, e, Position{X: 1})
	assert.Equal(t, &Velocity{X: 5}, GetComponent[Velocity](w, e))
	assert.Equal(t, &Position{X: 1}, GetComponent[Position](w, e))
}

// go test -run ^TestObserverDestroy$ . -count 1
func TestObserverDestroy(t *testing.T) {
	w := newTestWorld(t)
	fired := 0
	o := NewObserverBuilder1[Position](w).Event(OnSet).Each(func(*Position) { fired++ })
	e := w.CreateEntity()
	SetComponent(w, e, Position{})
	o.Destroy()
	o.Destroy()
	SetComponent(w, e, Position{X: 1})
	assert.Equal(t, 1, fired)
	assert.False(t, w.observers.any(OnSet))
}

// go test -run ^TestObserverNeedsEvents$ . -count 1
func TestObserverNeedsEvents(t *testing.T) {
	w := newTestWorld(t)
	b := NewObserverBuilder1[Position](w)
	err := recoverError(t, func() { b.Each(func(*Position) {}) })
	assert.True(t, errors.Is(err, ErrNoEvents))
}

// go test -run ^TestSpawnerEmitsOnAdd$ . -count 1
func TestSpawnerEmitsOnAdd(t *testing.T) {
	w := newTestWorld(t)
	pid := RegisterComponent[Position](w)
	vid := RegisterComponent[Velocity](w)
	adds := 0
	NewObserverBuilder(w).With(pid).Event(OnAdd).Iter(func(it *Iter) {
		adds += it.Count()
	})
	ents := w.Spawner(pid, vid).SpawnN(4)
	require.Len(t, ents, 4)
	assert.Equal(t, 4, adds)
}
