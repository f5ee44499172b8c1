package kumiai

// Oper is how a term constrains matching tables.
type Oper uint8

const (
	// OperAnd requires the component.
	OperAnd Oper = iota
	// OperNot excludes tables holding the component.
	OperNot
	// OperOptional matches either way; the field is unset when absent.
	OperOptional
)

// Access declares how a callback uses a term's data.
type Access uint8

const (
	AccessDefault Access = iota
	AccessIn
	AccessOut
	AccessNone
)

// Term is one component constraint of a query.
type Term struct {
	ID     ComponentID
	Oper   Oper
	Access Access
}

// hasData reports whether the term can produce a field.
func (t Term) hasData() bool {
	return t.Oper != OperNot && t.Access != AccessNone
}

func (o Oper) String() string {
	switch o {
	case OperNot:
		return "not"
	case OperOptional:
		return "optional"
	default:
		return "and"
	}
}

func (a Access) String() string {
	switch a {
	case AccessIn:
		return "in"
	case AccessOut:
		return "out"
	case AccessNone:
		return "none"
	default:
		return "inout"
	}
}
