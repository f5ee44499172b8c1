package kumiai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// go test -run ^TestEntityLifecycle$ . -count 1
func TestEntityLifecycle(t *testing.T) {
	w := newTestWorld(t)
	e := w.CreateEntity()
	require.True(t, w.IsValid(e))
	assert.False(t, e.IsZero())
	assert.Equal(t, 1, w.Count())

	w.RemoveEntity(e)
	assert.False(t, w.IsValid(e))
	assert.Zero(t, w.Count())
	w.RemoveEntity(e)

	// the slot is recycled under a new version
	again := w.CreateEntity()
	assert.Equal(t, e.ID, again.ID)
	assert.NotEqual(t, e.Version, again.Version)
	assert.False(t, w.IsValid(e))
	assert.Nil(t, GetComponent[Position](w, e))
	SetComponent(w, e, Position{})
	assert.False(t, HasComponent[Position](w, again))
}

// go test -run ^TestCreateEntitiesGrows$ . -count 1
func TestCreateEntitiesGrows(t *testing.T) {
	w := newTestWorld(t, WithInitialCapacity(2))
	ents := w.CreateEntities(100)
	require.Len(t, ents, 100)
	for _, e := range ents {
		assert.True(t, w.IsValid(e))
	}
	assert.Equal(t, 100, w.Count())
	assert.Nil(t, w.CreateEntities(0))
}

// go test -run ^TestComponentValuesSurviveMoves$ . -count 1
func TestComponentValuesSurviveMoves(t *testing.T) {
	w := newTestWorld(t)
	ents := spawnMoving(w, 3)
	SetComponent(w, ents[1], Label{Text: "mid"})
	SetComponent(w, ents[1], Sprite{Frames: []int{7}})
	RemoveComponent[Velocity](w, ents[1])
	w.RemoveEntity(ents[0])

	assert.Equal(t, &Position{X: 1}, GetComponent[Position](w, ents[1]))
	assert.Equal(t, "mid", GetComponent[Label](w, ents[1]).Text)
	assert.Equal(t, []int{7}, GetComponent[Sprite](w, ents[1]).Frames)
	assert.Nil(t, GetComponent[Velocity](w, ents[1]))
	assert.Equal(t, &Position{X: 2}, GetComponent[Position](w, ents[2]))
	assert.Equal(t, &Velocity{X: 1, Y: 2}, GetComponent[Velocity](w, ents[2]))
}

// go test -run ^TestTagComponents$ . -count 1
func TestTagComponents(t *testing.T) {
	w := newTestWorld(t)
	e := w.CreateEntity()
	AddTag[Frozen](w, e)
	assert.True(t, HasComponent[Frozen](w, e))
	assert.NotNil(t, GetComponent[Frozen](w, e))
	RemoveComponent[Frozen](w, e)
	assert.False(t, HasComponent[Frozen](w, e))
	assert.Nil(t, GetComponent[Frozen](w, e))
}

// go test -run ^TestSparseStorage$ . -count 1
func TestSparseStorage(t *testing.T) {
	w := newTestWorld(t)
	id := SetSparse[Marker](w)
	assert.True(t, w.IsSparse(id))

	ents := w.CreateEntities(3)
	for i, e := range ents {
		SetComponent(w, e, Marker{Value: i + 1})
	}
	assert.Equal(t, 3, w.sparse[id].count())

	RemoveComponent[Marker](w, ents[0])
	assert.Nil(t, GetComponent[Marker](w, ents[0]))
	assert.Equal(t, 2, GetComponent[Marker](w, ents[1]).Value)
	assert.Equal(t, 3, GetComponent[Marker](w, ents[2]).Value)

	w.RemoveEntity(ents[2])
	assert.Equal(t, 1, w.sparse[id].count())
	assert.False(t, w.sparse[id].has(ents[2].ID))

	// the table carries the bit but no column
	tbl := w.tableOf(ents[1])
	assert.True(t, tbl.Has(id))
	assert.Empty(t, tbl.columns)
}

// go test -run ^TestSparseAddressesStableAcrossGrowth$ . -count 1
func TestSparseAddressesStableAcrossGrowth(t *testing.T) {
	w := newTestWorld(t)
	SetSparse[Marker](w)
	first := w.CreateEntity()
	SetComponent(w, first, Marker{Value: 1})
	p := GetComponent[Marker](w, first)
	for _, e := range w.CreateEntities(3 * sparsePageSize) {
		SetComponent(w, e, Marker{})
	}
	assert.Same(t, p, GetComponent[Marker](w, first))
	assert.Equal(t, 1, p.Value)
}

// go test -run ^TestComponentNames$ . -count 1
func TestComponentNames(t *testing.T) {
	w := newTestWorld(t)
	id := RegisterComponent[Health](w)
	assert.Equal(t, id, RegisterComponent[Health](w))
	assert.Equal(t, TypeOf[Health]().FullName, w.ComponentName(id))
	assert.Same(t, TypeOf[Health](), w.ComponentType(id))

	got, err := w.ComponentIDByName("Health")
	require.NoError(t, err)
	assert.Equal(t, id, got)
	got, err = w.ComponentIDByName(TypeOf[Health]().FullName)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = w.ComponentIDByName("Mana")
	assert.True(t, errors.Is(err, ErrUnknownComponent))
	err = recoverError(t, func() { w.ComponentName(200) })
	assert.True(t, errors.Is(err, ErrUnknownComponent))
}

// go test -run ^TestEntityNames$ . -count 1
func TestEntityNames(t *testing.T) {
	w := newTestWorld(t)
	a := w.CreateEntity()
	b := w.CreateEntity()
	w.SetName(a, "player")
	assert.Equal(t, "player", w.Name(a))

	got, ok := w.Lookup("player")
	require.True(t, ok)
	assert.Equal(t, a, got)

	// names are unique
	w.SetName(b, "player")
	assert.Empty(t, w.Name(a))
	got, _ = w.Lookup("player")
	assert.Equal(t, b, got)

	w.RemoveEntity(b)
	_, ok = w.Lookup("player")
	assert.False(t, ok)
}

// go test -run ^TestSpawner$ . -count 1
func TestSpawner(t *testing.T) {
	w := newTestWorld(t)
	pid := RegisterComponent[Position](w)
	vid := RegisterComponent[Velocity](w)
	sp := w.Spawner(vid, pid)
	assert.Equal(t, []ComponentID{pid, vid}, sp.Table().Type())

	e := sp.Spawn()
	assert.Equal(t, &Position{}, GetComponent[Position](w, e))
	ents := sp.SpawnN(20)
	assert.Equal(t, 21, sp.Table().Count())
	assert.Nil(t, sp.SpawnN(0))

	var spawned []Entity
	w.Defer(func() {
		spawned = sp.SpawnN(2)
		assert.Equal(t, 21, sp.Table().Count())
	})
	assert.Equal(t, 23, sp.Table().Count())
	for _, e := range append(ents, spawned...) {
		assert.True(t, HasComponent[Velocity](w, e))
	}
}

// go test -run ^TestTablesCreatedOnce$ . -count 1
func TestTablesCreatedOnce(t *testing.T) {
	w := newTestWorld(t)
	spawnMoving(w, 10)
	// empty, {Position} and {Position, Velocity}
	assert.Len(t, w.Tables(), 3)
}
