package kumiai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// go test -run ^TestQueryWithout$ . -count 1
func TestQueryWithout(t *testing.T) {
	w := newTestWorld(t)
	ents := spawnMoving(w, 4)
	AddTag[Frozen](w, ents[1])
	AddTag[Frozen](w, ents[3])

	q := NewQueryBuilder1[Position](w).Without(RegisterComponent[Frozen](w)).Build()
	assert.ElementsMatch(t, []Entity{ents[0], ents[2]}, q.Untyped().Entities())
	assert.Equal(t, 2, q.Count())
}

// go test -run ^TestQueryExpr$ . -count 1
func TestQueryExpr(t *testing.T) {
	w := newTestWorld(t)
	ents := spawnMoving(w, 3)
	AddTag[Frozen](w, ents[0])
	SetComponent(w, ents[2], Health{Current: 3})

	b := NewQueryBuilder(w).Name("awake").Expr("Position, !Frozen, ?Health, [in] Velocity")
	require.NoError(t, b.Err())
	terms := b.Terms()
	require.Len(t, terms, 4)
	assert.Equal(t, OperNot, terms[1].Oper)
	assert.Equal(t, OperOptional, terms[2].Oper)
	assert.Equal(t, AccessIn, terms[3].Access)

	q := b.Build()
	assert.Equal(t, "awake", q.Name())
	assert.ElementsMatch(t, []Entity{ents[1], ents[2]}, q.Entities())
}

// go test -run ^TestQueryExprFullName$ . -count 1
func TestQueryExprFullName(t *testing.T) {
	w := newTestWorld(t)
	pid := RegisterComponent[Position](w)
	fid := RegisterComponent[Frozen](w)
	b := NewQueryBuilder(w).Expr(TypeOf[Position]().FullName + ", !" + TypeOf[Frozen]().FullName)
	require.NoError(t, b.Err())
	terms := b.Terms()
	require.Len(t, terms, 2)
	assert.Equal(t, pid, terms[0].ID)
	assert.Equal(t, fid, terms[1].ID)
	assert.Equal(t, OperNot, terms[1].Oper)
}

// go test -run ^TestQueryExprErrors$ . -count 1
func TestQueryExprErrors(t *testing.T) {
	w := newTestWorld(t)
	RegisterComponent[Position](w)

	b := NewQueryBuilder(w).Expr("Position, Unknown")
	require.Error(t, b.Err())
	assert.True(t, errors.Is(b.Err(), ErrUnknownComponent))
	err := recoverError(t, func() { b.Build() })
	assert.True(t, errors.Is(err, ErrUnknownComponent))

	b = NewQueryBuilder(w).Expr("Position,,")
	assert.Error(t, b.Err())
}

// go test -run ^TestCachedQuerySeesNewTables$ . -count 1
func TestCachedQuerySeesNewTables(t *testing.T) {
	w := newTestWorld(t)
	spawnMoving(w, 2)
	q := NewQueryBuilder1[Position](w).Cached().Build()
	assert.Equal(t, 2, q.Count())
	assert.False(t, q.Untyped().IsStale())

	e := w.CreateEntity()
	SetComponent(w, e, Position{})
	SetComponent(w, e, Health{})
	assert.True(t, q.Untyped().IsStale())
	assert.Equal(t, 3, q.Count())
}

// go test -run ^TestGroupByOrdersAndFilters$ . -count 1
func TestGroupByOrdersAndFilters(t *testing.T) {
	w := newTestWorld(t)
	hid := RegisterComponent[Health](w)

	healthy := w.CreateEntity()
	SetComponent(w, healthy, Position{X: 1})
	SetComponent(w, healthy, Health{})
	plain := w.CreateEntity()
	SetComponent(w, plain, Position{X: 2})

	q := NewQueryBuilder1[Position](w).
		Cached().
		GroupBy(func(t *Table) uint64 {
			if t.Has(hid) {
				return 1
			}
			return 0
		}).
		Build()

	var order []Entity
	q.EachEntity(func(e Entity, _ *Position) { order = append(order, e) })
	assert.Equal(t, []Entity{plain, healthy}, order)

	q.SetGroup(1)
	assert.Equal(t, 1, q.Count())
	assert.Equal(t, healthy, q.First())

	q.Untyped().ClearGroup()
	assert.Equal(t, 2, q.Count())
}

// go test -run ^TestQueryCountIsTrueFirst$ . -count 1
func TestQueryCountIsTrueFirst(t *testing.T) {
	w := newTestWorld(t)
	q := NewQueryBuilder1[Velocity](w).Build()
	assert.Zero(t, q.Count())
	assert.False(t, q.IsTrue())
	assert.True(t, q.First().IsZero())

	ents := spawnMoving(w, 2)
	assert.Equal(t, 2, q.Count())
	assert.True(t, q.IsTrue())
	assert.Contains(t, ents, q.First())
}

// go test -run ^TestDestroyedQueryPanics$ . -count 1
func TestDestroyedQueryPanics(t *testing.T) {
	w := newTestWorld(t)
	q := NewQueryBuilder1[Position](w).Build()
	q.Destroy()
	q.Destroy()
	err := recoverError(t, func() { q.Count() })
	assert.True(t, errors.Is(err, ErrDestroyed))
	err = recoverError(t, func() { q.Each(func(*Position) {}) })
	assert.True(t, errors.Is(err, ErrDestroyed))
}

// go test -run ^TestBuilderLifecycle$ . -count 1
func TestBuilderLifecycle(t *testing.T) {
	w := newTestWorld(t)
	b := NewQueryBuilder2[Position, Velocity](w)
	other := NewQueryBuilder2[Position, Velocity](w)
	assert.True(t, b.Equals(b))
	assert.False(t, b.Equals(other))

	b.Build()
	err := recoverError(t, func() { b.Build() })
	assert.True(t, errors.Is(err, ErrBuilderFinalized))
	err = recoverError(t, func() { b.Cached() })
	assert.True(t, errors.Is(err, ErrBuilderFinalized))

	other.Dispose()
	other.Dispose()
	err = recoverError(t, func() { other.Build() })
	assert.True(t, errors.Is(err, ErrBuilderFinalized))
}

// go test -run ^TestTypedTermsFollowTupleOrder$ . -count 1
func TestTypedTermsFollowTupleOrder(t *testing.T) {
	w := newTestWorld(t)
	q := NewQueryBuilder3[Velocity, Health, Position](w).Build()
	terms := q.Untyped().Terms()
	require.Len(t, terms, 3)
	assert.Equal(t, RegisterComponent[Velocity](w), terms[0].ID)
	assert.Equal(t, RegisterComponent[Health](w), terms[1].ID)
	assert.Equal(t, RegisterComponent[Position](w), terms[2].ID)
}

// go test -run ^TestTooManyTermsReported$ . -count 1
func TestTooManyTermsReported(t *testing.T) {
	w := newTestWorld(t)
	id := RegisterComponent[Position](w)
	b := NewQueryBuilder(w)
	for i := 0; i < 33; i++ {
		b.Optional(id)
	}
	assert.True(t, errors.Is(b.Err(), ErrTooManyTerms))
	assert.Len(t, b.Terms(), 32)
}

// go test -run ^TestUntypedQueryShapes$ . -count 1
func TestUntypedQueryShapes(t *testing.T) {
	w := newTestWorld(t)
	ents := spawnMoving(w, 3)
	q := NewQueryBuilder(w).With(RegisterComponent[Velocity](w)).Build()

	n := 0
	q.EachEntity(func(Entity) { n++ })
	assert.Equal(t, 3, n)
	assert.Equal(t, ents[1], q.FindEntity(func(e Entity) bool { return e == ents[1] }))

	batches := 0
	q.Iter(func(it *Iter) {
		batches++
		vs := SpanOf[Velocity](it, 0)
		assert.Len(t, vs, 3)
	})
	assert.Equal(t, 1, batches)
}

// go test -run ^TestQueryPage$ . -count 1
func TestQueryPage(t *testing.T) {
	w := newTestWorld(t)
	ents := spawnMoving(w, 2*ChunkSize+10)
	q := NewQueryBuilder2[Position, Velocity](w).Build()

	var xs []float32
	var batches []int
	page := q.Page(ChunkSize-2, 5)
	page.Iter(func(it *Iter, p Field[Position], _ Field[Velocity]) {
		batches = append(batches, it.Count())
		for i := 0; i < p.Len(); i++ {
			xs = append(xs, p.At(i).X)
		}
	})
	// the page straddles the first chunk boundary
	assert.Equal(t, []int{2, 3}, batches)
	assert.Equal(t, []float32{1022, 1023, 1024, 1025, 1026}, xs)
	assert.Equal(t, 5, page.Count())
	assert.Equal(t, ents[ChunkSize-2:ChunkSize+3], page.Entities())

	assert.Equal(t, ents[3], q.Page(3, 0).First())
	assert.Equal(t, 7, q.Page(2*ChunkSize+3, 0).Count())
	assert.False(t, q.Page(len(ents), 10).IsTrue())
	assert.Equal(t, len(ents), q.Count())
}

// go test -run ^TestQueryWorker$ . -count 1
func TestQueryWorker(t *testing.T) {
	w := newTestWorld(t)
	n := 3*ChunkSize + 1
	spawnMoving(w, n)
	q := NewQueryBuilder1[Position](w).Build()

	seen := make(map[float32]int, n)
	batches := make([]int, 3)
	for i := range batches {
		q.Worker(i, 3).Iter(func(it *Iter, p Field[Position]) {
			batches[i]++
			for j := 0; j < p.Len(); j++ {
				seen[p.At(j).X]++
			}
		})
	}
	assert.Equal(t, []int{2, 1, 1}, batches)
	assert.Len(t, seen, n)
	for x, c := range seen {
		assert.Equal(t, 1, c, "row %v", x)
	}
	assert.Equal(t, ChunkSize+1, q.Worker(0, 3).Count())

	err := recoverError(t, func() { q.Worker(3, 3) })
	assert.True(t, errors.Is(err, ErrInvalidWorker))
}
