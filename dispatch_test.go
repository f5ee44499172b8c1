//go:build !kumiai_release

package kumiai

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// go test -run ^TestEachMovesEntities$ . -count 1
func TestEachMovesEntities(t *testing.T) {
	w := newTestWorld(t)
	ents := spawnMoving(w, 3)

	s := NewSystemBuilder2[Position, Velocity](w).
		Name("move").
		Each(func(p *Position, v *Velocity) {
			p.X += v.X
			p.Y += v.Y
		})
	require.NotNil(t, s)
	assert.Equal(t, "move", s.Name())

	require.True(t, w.Progress(0.016))
	for i, e := range ents {
		p := GetComponent[Position](w, e)
		require.NotNil(t, p)
		assert.Equal(t, Position{X: float32(i) + 1, Y: 2}, *p)
	}
}

// go test -run ^TestIterSpanMatchesEach$ . -count 1
func TestIterSpanMatchesEach(t *testing.T) {
	w := newTestWorld(t)
	spawnMoving(w, 10)
	q := NewQueryBuilder2[Position, Velocity](w).Build()

	q.IterSpan(func(it *Iter, ps []Position, vs []Velocity) {
		require.Len(t, ps, it.Count())
		require.Len(t, vs, it.Count())
		for i := range ps {
			ps[i].X += vs[i].X
		}
	})

	var sum float32
	q.Each(func(p *Position, _ *Velocity) { sum += p.X })
	// 0..9 shifted by one each
	assert.Equal(t, float32(55), sum)
}

// go test -run ^TestIterUnsafeAndEachUnsafe$ . -count 1
func TestIterUnsafeAndEachUnsafe(t *testing.T) {
	w := newTestWorld(t)
	spawnMoving(w, 4)
	q := NewQueryBuilder2[Position, Velocity](w).Build()

	q.IterUnsafe(func(it *Iter, pp, vp unsafe.Pointer) {
		ps := unsafe.Slice((*Position)(pp), it.Count())
		vs := unsafe.Slice((*Velocity)(vp), it.Count())
		for i := range ps {
			ps[i].Y = vs[i].Y * 10
		}
	})
	seen := 0
	q.EachUnsafe(func(e Entity, pp, _ unsafe.Pointer) {
		assert.Equal(t, float32(20), (*Position)(pp).Y)
		assert.Same(t, GetComponent[Position](w, e), (*Position)(pp))
		seen++
	})
	assert.Equal(t, 4, seen)
}

// go test -run ^TestReferenceTypesAllowedInRowShapes$ . -count 1
func TestReferenceTypesAllowedInRowShapes(t *testing.T) {
	w := newTestWorld(t)
	e := w.CreateEntity()
	SetComponent(w, e, Label{Text: "hero"})
	SetComponent(w, e, Sprite{Frames: []int{1, 2}})
	q := NewQueryBuilder2[Label, Sprite](w).Build()

	var texts []string
	q.Each(func(l *Label, s *Sprite) {
		texts = append(texts, l.Text)
		s.Frames = append(s.Frames, 3)
	})
	assert.Equal(t, []string{"hero"}, texts)
	assert.Equal(t, []int{1, 2, 3}, GetComponent[Sprite](w, e).Frames)

	q.Iter(func(it *Iter, ls Field[Label], _ Field[Sprite]) {
		assert.Equal(t, "hero", ls.At(0).Text)
	})
	found := q.FindEntity(func(_ Entity, l *Label, _ *Sprite) bool { return l.Text == "hero" })
	assert.Equal(t, e, found)
}

// go test -run ^TestReferenceTypesRejectedByRawShapes$ . -count 1
func TestReferenceTypesRejectedByRawShapes(t *testing.T) {
	w := newTestWorld(t)
	q := NewQueryBuilder3[Position, Label, Sprite](w).Build()
	refs := []string{TypeOf[Label]().FullName, TypeOf[Sprite]().FullName}

	verr := recoverValidation(t, func() {
		q.IterSpan(func(*Iter, []Position, []Label, []Sprite) {})
	})
	assert.Equal(t, ConstraintNoReferences, verr.Constraint)
	assert.Equal(t, refs, verr.Types)
	assert.True(t, errors.Is(verr, ErrReferenceComponent))

	for _, fn := range []func(){
		func() { q.IterUnsafe(func(*Iter, unsafe.Pointer, unsafe.Pointer, unsafe.Pointer) {}) },
		func() { q.EachUnsafe(func(Entity, unsafe.Pointer, unsafe.Pointer, unsafe.Pointer) {}) },
		func() {
			q.FindUnsafe(func(Entity, unsafe.Pointer, unsafe.Pointer, unsafe.Pointer) bool { return false })
		},
	} {
		verr := recoverValidation(t, fn)
		assert.Equal(t, refs, verr.Types)
	}
}

// go test -run ^TestSparseRejectedByContiguousShapes$ . -count 1
func TestSparseRejectedByContiguousShapes(t *testing.T) {
	w := newTestWorld(t)
	SetSparse[Marker](w)
	q := NewQueryBuilder2[Position, Marker](w).Build()

	verr := recoverValidation(t, func() {
		q.IterSpan(func(*Iter, []Position, []Marker) {})
	})
	assert.Equal(t, ConstraintNoSparse, verr.Constraint)
	assert.Equal(t, []string{TypeOf[Marker]().FullName}, verr.Types)
	assert.True(t, errors.Is(verr, ErrSparseComponent))
	assert.Contains(t, verr.Error(), "use Iter/Each/Run")

	verr = recoverValidation(t, func() {
		q.IterUnsafe(func(*Iter, unsafe.Pointer, unsafe.Pointer) {})
	})
	assert.Equal(t, ConstraintNoSparse, verr.Constraint)
}

// go test -run ^TestSparseServedPerRow$ . -count 1
func TestSparseServedPerRow(t *testing.T) {
	w := newTestWorld(t)
	SetSparse[Marker](w)
	ents := spawnMoving(w, 3)
	for i, e := range ents {
		SetComponent(w, e, Marker{Value: i * 10})
	}
	q := NewQueryBuilder2[Position, Marker](w).Build()

	total := 0
	q.Each(func(_ *Position, m *Marker) { total += m.Value })
	assert.Equal(t, 30, total)

	q.Iter(func(it *Iter, ps Field[Position], ms Field[Marker]) {
		assert.False(t, ps.IsSparse())
		assert.True(t, ms.IsSparse())
		assert.True(t, it.IsSparse(1))
		for i := 0; i < it.Count(); i++ {
			assert.Equal(t, ms.At(i), GetComponent[Marker](w, it.Entity(i)))
		}
	})

	q.EachUnsafe(func(e Entity, _, mp unsafe.Pointer) {
		(*Marker)(mp).Value++
	})
	assert.Equal(t, 1, GetComponent[Marker](w, ents[0]).Value)

	hit := q.Find(func(_ *Position, m *Marker) bool { return m.Value == 21 })
	assert.Equal(t, ents[2], hit)
}

// go test -run ^TestRunShapeIsUnchecked$ . -count 1
func TestRunShapeIsUnchecked(t *testing.T) {
	w := newTestWorld(t)
	SetSparse[Marker](w)
	e := w.CreateEntity()
	SetComponent(w, e, Label{Text: "a"})
	SetComponent(w, e, Marker{Value: 7})
	q := NewQueryBuilder2[Label, Marker](w).Build()

	rows := 0
	q.Run(func(it *Iter) {
		for it.Next() {
			labels, markers := q.Fields(it)
			for i := 0; i < it.Count(); i++ {
				assert.Equal(t, "a", labels.At(i).Text)
				assert.Equal(t, 7, markers.At(i).Value)
				rows++
			}
		}
	})
	assert.Equal(t, 1, rows)
	assert.False(t, w.Locked())
}

// go test -run ^TestFailedShapeRegistersNothing$ . -count 1
func TestFailedShapeRegistersNothing(t *testing.T) {
	w := newTestWorld(t)
	b := NewSystemBuilder2[Position, Label](w).Name("render")

	recoverValidation(t, func() {
		b.IterSpan(func(*Iter, []Position, []Label) {})
	})
	assert.Empty(t, w.Systems(OnUpdate))
	require.NoError(t, b.Err())

	// the builder is still usable with a compatible shape
	s := b.Each(func(*Position, *Label) {})
	assert.Equal(t, []*System{s.Untyped()}, w.Systems(OnUpdate))

	ob := NewObserverBuilder1[Label](w).Event(OnSet)
	recoverValidation(t, func() {
		ob.EachUnsafe(func(Entity, unsafe.Pointer) {})
	})
	assert.False(t, w.observers.any(OnSet))
}

// go test -run ^TestFindShortCircuits$ . -count 1
func TestFindShortCircuits(t *testing.T) {
	w := newTestWorld(t)
	ents := spawnMoving(w, 100)
	q := NewQueryBuilder1[Position](w).Build()

	calls := 0
	got := q.Find(func(p *Position) bool {
		calls++
		return p.X == 5
	})
	assert.Equal(t, ents[5], got)
	assert.Equal(t, 6, calls)

	miss := q.FindIter(func(*Iter, int, *Position) bool { return false })
	assert.True(t, miss.IsZero())
	assert.False(t, w.Locked())
}

// go test -run ^TestFindStopsBeforeLaterEntities$ . -count 1
func TestFindStopsBeforeLaterEntities(t *testing.T) {
	w := newTestWorld(t)
	var ents []Entity
	for _, hp := range []int{10, 0, 5} {
		e := w.CreateEntity()
		SetComponent(w, e, Health{Current: hp})
		ents = append(ents, e)
	}
	q := NewQueryBuilder1[Health](w).Build()

	var seen []int
	got := q.FindEntity(func(e Entity, h *Health) bool {
		seen = append(seen, h.Current)
		return h.Current == 0
	})
	assert.Equal(t, ents[1], got)
	assert.Equal(t, []int{10, 0}, seen)
}

// go test -run ^TestEachMutationVisibleToNextIteration$ . -count 1
func TestEachMutationVisibleToNextIteration(t *testing.T) {
	w := newTestWorld(t)
	e1 := w.CreateEntity()
	SetComponent(w, e1, Position{})
	SetComponent(w, e1, Velocity{X: 1, Y: 1})
	q := NewQueryBuilder2[Position, Velocity](w).Build()

	calls := 0
	q.EachEntity(func(e Entity, p *Position, v *Velocity) {
		calls++
		assert.Equal(t, e1, e)
		assert.Equal(t, Position{}, *p)
		assert.Equal(t, Velocity{X: 1, Y: 1}, *v)
		p.X += v.X
		p.Y += v.Y
	})
	require.Equal(t, 1, calls)

	var after []Position
	q.Each(func(p *Position, _ *Velocity) { after = append(after, *p) })
	assert.Equal(t, []Position{{X: 1, Y: 1}}, after)
}

// go test -run ^TestOptionalTermUnsetOnOtherTables$ . -count 1
func TestOptionalTermUnsetOnOtherTables(t *testing.T) {
	w := newTestWorld(t)
	healthy := w.CreateEntity()
	SetComponent(w, healthy, Position{X: 1})
	SetComponent(w, healthy, Health{Current: 5, Max: 10})
	plain := w.CreateEntity()
	SetComponent(w, plain, Position{X: 2})

	hid := RegisterComponent[Health](w)
	q := NewQueryBuilder1[Position](w).Optional(hid).Build()

	byEntity := map[Entity]bool{}
	q.Untyped().Iter(func(it *Iter) {
		for i := 0; i < it.Count(); i++ {
			byEntity[it.Entity(i)] = it.IsSet(1)
			if it.IsSet(1) {
				assert.Equal(t, 5, FieldAt[Health](it, 1, i).Current)
			} else {
				assert.Nil(t, FieldOf[Health](it, 1).At(i))
			}
		}
	})
	assert.Equal(t, map[Entity]bool{healthy: true, plain: false}, byEntity)
}

// go test -run ^TestFieldBounds$ . -count 1
func TestFieldBounds(t *testing.T) {
	w := newTestWorld(t)
	spawnMoving(w, 2)
	q := NewQueryBuilder1[Position](w).Build()
	q.Iter(func(it *Iter, ps Field[Position]) {
		assert.Equal(t, 2, ps.Len())
		assert.Panics(t, func() { ps.At(2) })
		assert.Panics(t, func() { ps.At(-1) })
	})
	assert.False(t, w.Locked())
}

// go test -run ^TestIterationSpansChunks$ . -count 1
func TestIterationSpansChunks(t *testing.T) {
	w := newTestWorld(t)
	sp := w.Spawner(RegisterComponent[Position](w), RegisterComponent[Velocity](w))
	sp.SpawnN(2*ChunkSize + 452)
	q := NewQueryBuilder2[Position, Velocity](w).Build()

	var sizes []int
	q.IterSpan(func(it *Iter, ps []Position, _ []Velocity) {
		sizes = append(sizes, len(ps))
	})
	assert.Equal(t, []int{ChunkSize, ChunkSize, 452}, sizes)
	assert.Equal(t, 2*ChunkSize+452, q.Count())
}

// go test -run ^TestEachIterExposesRowIndex$ . -count 1
func TestEachIterExposesRowIndex(t *testing.T) {
	w := newTestWorld(t)
	ents := spawnMoving(w, 3)
	q := NewQueryBuilder1[Velocity](w).Build()
	var got []Entity
	q.EachIter(func(it *Iter, i int, v *Velocity) {
		got = append(got, it.Entity(i))
		assert.Equal(t, it.Query(), q.Untyped())
	})
	assert.ElementsMatch(t, ents, got)
}
