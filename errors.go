package kumiai

import (
	"strings"

	"github.com/rotisserie/eris"
)

var (
	// ErrTagComponent is raised when a zero-sized type is bound to a typed slot.
	ErrTagComponent = eris.New("ecs: zero-sized component in typed slot")
	// ErrReferenceComponent is raised when a pointer-holding type is used by a
	// callback shape that hands out raw memory.
	ErrReferenceComponent = eris.New("ecs: reference component in raw callback")
	// ErrSparseComponent is raised when a sparse component is used by a
	// callback shape that assumes contiguous columns.
	ErrSparseComponent = eris.New("ecs: sparse component in contiguous callback")
	// ErrDuplicateComponent is raised when a type appears twice in one tuple.
	ErrDuplicateComponent = eris.New("ecs: duplicate component in typed slot")

	ErrTableLocked       = eris.New("ecs: structural change while tables are locked")
	ErrStorageInUse      = eris.New("ecs: storage class changed after component use")
	ErrBuilderFinalized  = eris.New("ecs: builder already built or disposed")
	ErrUnknownComponent  = eris.New("ecs: unknown component")
	ErrTooManyComponents = eris.New("ecs: too many component types")
	ErrTooManyTerms      = eris.New("ecs: too many query terms")
	ErrDestroyed         = eris.New("ecs: handle already destroyed")
	ErrNoEvents          = eris.New("ecs: observer has no events")
	ErrFieldType         = eris.New("ecs: field type does not match term component")
	ErrUnbalancedLock    = eris.New("ecs: table lock released more often than acquired")
	ErrInvalidWorker     = eris.New("ecs: worker index out of range")
)

// Constraint names the rule a ValidationError reports.
type Constraint uint8

const (
	ConstraintNoTags Constraint = iota
	ConstraintNoReferences
	ConstraintNoSparse
	ConstraintNoDuplicates
)

func (c Constraint) sentinel() error {
	switch c {
	case ConstraintNoTags:
		return ErrTagComponent
	case ConstraintNoReferences:
		return ErrReferenceComponent
	case ConstraintNoSparse:
		return ErrSparseComponent
	default:
		return ErrDuplicateComponent
	}
}

func (c Constraint) advice() string {
	switch c {
	case ConstraintNoTags:
		return "cannot use zero-sized structs as generic type arguments; remove the following type arguments"
	case ConstraintNoReferences:
		return "cannot use pointer-holding types with callbacks that retrieve unsafe pointers or spans; remove the following type arguments"
	case ConstraintNoSparse:
		return "cannot use sparse components with span or unsafe iteration because sparse fields are not contiguous; use Iter/Each/Run or remove the following type arguments"
	default:
		return "each type argument may appear only once; remove the following duplicated type arguments"
	}
}

// ValidationError names every type argument that broke one constraint, in
// tuple order.
type ValidationError struct {
	Constraint Constraint
	Types      []string
}

func (e *ValidationError) Error() string {
	return "ecs: " + e.Constraint.advice() + ": " + strings.Join(e.Types, ", ")
}

func (e *ValidationError) Unwrap() error {
	return e.Constraint.sentinel()
}
