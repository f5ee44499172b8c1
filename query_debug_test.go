//go:build !kumiai_release

package kumiai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// go test -run ^TestFieldTypeMismatch$ . -count 1
func TestFieldTypeMismatch(t *testing.T) {
	w := newTestWorld(t)
	spawnMoving(w, 1)
	q := NewQueryBuilder1[Position](w).Build()
	q.Untyped().Iter(func(it *Iter) {
		err := recoverError(t, func() { FieldOf[Velocity](it, 0) })
		assert.True(t, errors.Is(err, ErrFieldType))
		err = recoverError(t, func() { FieldOf[Position](it, 3) })
		assert.True(t, errors.Is(err, ErrFieldType))
	})
}

// go test -run ^TestSpanOfSparsePanics$ . -count 1
func TestSpanOfSparsePanics(t *testing.T) {
	w := newTestWorld(t)
	SetSparse[Marker](w)
	e := w.CreateEntity()
	SetComponent(w, e, Marker{Value: 1})
	q := NewQueryBuilder(w).With(RegisterComponent[Marker](w)).Build()
	q.Iter(func(it *Iter) {
		err := recoverError(t, func() { SpanOf[Marker](it, 0) })
		assert.True(t, errors.Is(err, ErrSparseComponent))
	})
}

// go test -run ^TestSetSparseAfterUse$ . -count 1
func TestSetSparseAfterUse(t *testing.T) {
	w := newTestWorld(t)
	spawnMoving(w, 1)
	err := recoverError(t, func() { SetSparse[Position](w) })
	assert.True(t, errors.Is(err, ErrStorageInUse))
	assert.False(t, w.IsSparse(RegisterComponent[Position](w)))
}
