//go:build !kumiai_release

package kumiai

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// go test -run ^TestTagRejectedAtConstruction$ . -count 1
func TestTagRejectedAtConstruction(t *testing.T) {
	w := newTestWorld(t)
	verr := recoverValidation(t, func() {
		NewQueryBuilder2[Position, Frozen](w)
	})
	assert.Equal(t, ConstraintNoTags, verr.Constraint)
	assert.Equal(t, []string{TypeOf[Frozen]().FullName}, verr.Types)
	assert.True(t, errors.Is(verr, ErrTagComponent))

	// nothing was registered
	_, ok := w.lookupComponent(reflect.TypeFor[Position]())
	assert.False(t, ok)
}

// go test -run ^TestAllViolatorsNamedInOrder$ . -count 1
func TestAllViolatorsNamedInOrder(t *testing.T) {
	w := newTestWorld(t)
	verr := recoverValidation(t, func() {
		NewSystemBuilder4[Stunned, Position, Frozen, Velocity](w)
	})
	assert.Equal(t, []string{TypeOf[Stunned]().FullName, TypeOf[Frozen]().FullName}, verr.Types)
	assert.Contains(t, verr.Error(), "zero-sized")
	assert.Contains(t, verr.Error(), TypeOf[Stunned]().FullName+", "+TypeOf[Frozen]().FullName)
}

// go test -run ^TestDuplicateRejected$ . -count 1
func TestDuplicateRejected(t *testing.T) {
	w := newTestWorld(t)
	verr := recoverValidation(t, func() {
		NewObserverBuilder3[Position, Velocity, Position](w)
	})
	assert.Equal(t, ConstraintNoDuplicates, verr.Constraint)
	assert.Equal(t, []string{TypeOf[Position]().FullName}, verr.Types)
	assert.True(t, errors.Is(verr, ErrDuplicateComponent))
}

// go test -run ^TestTypeSetMasks$ . -count 1
func TestTypeSetMasks(t *testing.T) {
	w := newTestWorld(t)
	SetSparse[Marker](w)
	s := newTypeSet(TypeOf[Position](), TypeOf[Label](), TypeOf[Marker](), TypeOf[Frozen](), TypeOf[Label]())
	assert.Equal(t, uint32(0b01000), s.tagMask())
	assert.Equal(t, uint32(0b10010), s.referenceMask())
	assert.Equal(t, uint32(0b00100), s.sparseMask(w))
	assert.Equal(t, uint32(0b10000), s.duplicateMask())

	// types the world has never seen are dense
	fresh := newTestWorld(t)
	assert.Zero(t, s.sparseMask(fresh))
}

// go test -run ^TestTooManyTerms$ . -count 1
func TestTooManyTerms(t *testing.T) {
	infos := make([]*TypeInfo, 33)
	for i := range infos {
		infos[i] = TypeOf[Position]()
	}
	require.Panics(t, func() { newTypeSet(infos...) })
}

// go test -run ^TestValidationLogsBeforePanic$ . -count 1
func TestValidationLogsBeforePanic(t *testing.T) {
	var buf logBuffer
	w := NewWorld(WithLogger(newBufferLogger(&buf)))
	recoverValidation(t, func() {
		NewQueryBuilder1[Frozen](w)
	})
	assert.Contains(t, buf.String(), "type set validation failed")
	assert.Contains(t, buf.String(), TypeOf[Frozen]().FullName)
}
