package kumiai

import (
	"github.com/edwinsyarief/kumiai/internal/expr"
	"github.com/rotisserie/eris"
)

// GroupByFunc assigns a group to each matched table. Iteration visits groups
// in ascending order.
type GroupByFunc func(t *Table) uint64

// QueryBuilder collects the terms and options of an untyped query. Typed
// builders wrap one and forward their configuration to it.
type QueryBuilder struct {
	world   *World
	name    string
	terms   []Term
	cached  bool
	groupBy GroupByFunc
	err     error
	done    bool
}

// NewQueryBuilder starts an untyped query description on w.
func NewQueryBuilder(w *World) *QueryBuilder {
	return &QueryBuilder{world: w}
}

func (b *QueryBuilder) check() {
	if b.done {
		panic(ErrBuilderFinalized)
	}
}

func (b *QueryBuilder) addTerm(t Term) {
	if len(b.terms) >= 32 {
		if b.err == nil {
			b.err = eris.Wrapf(ErrTooManyTerms, "query %q", b.name)
		}
		return
	}
	b.terms = append(b.terms, t)
}

// withTypeSet registers each type of a typed tuple and adds its required
// term. Term i always refers to tuple slot i.
func withTypeSet(b *QueryBuilder, types typeSet) *QueryBuilder {
	for _, info := range types {
		b.addTerm(Term{ID: b.world.registerComponent(info), Oper: OperAnd})
	}
	return b
}

// Name sets the query name used in logs.
func (b *QueryBuilder) Name(name string) *QueryBuilder {
	b.check()
	b.name = name
	return b
}

// With adds a required term per id.
func (b *QueryBuilder) With(ids ...ComponentID) *QueryBuilder {
	b.check()
	for _, id := range ids {
		b.addTerm(Term{ID: id, Oper: OperAnd})
	}
	return b
}

// Without excludes tables holding any of ids.
func (b *QueryBuilder) Without(ids ...ComponentID) *QueryBuilder {
	b.check()
	for _, id := range ids {
		b.addTerm(Term{ID: id, Oper: OperNot})
	}
	return b
}

// Optional adds terms that match whether or not the component is present.
func (b *QueryBuilder) Optional(ids ...ComponentID) *QueryBuilder {
	b.check()
	for _, id := range ids {
		b.addTerm(Term{ID: id, Oper: OperOptional})
	}
	return b
}

func (b *QueryBuilder) access(a Access) *QueryBuilder {
	b.check()
	if len(b.terms) > 0 {
		b.terms[len(b.terms)-1].Access = a
	}
	return b
}

// In marks the last term as read-only.
func (b *QueryBuilder) In() *QueryBuilder { return b.access(AccessIn) }

// Out marks the last term as write-only.
func (b *QueryBuilder) Out() *QueryBuilder { return b.access(AccessOut) }

// InOutNone marks the last term as a filter that produces no field.
func (b *QueryBuilder) InOutNone() *QueryBuilder { return b.access(AccessNone) }

// Cached keeps the matched table list between iterations.
func (b *QueryBuilder) Cached() *QueryBuilder {
	b.check()
	b.cached = true
	return b
}

// GroupBy orders iteration by the group fn assigns to each table.
func (b *QueryBuilder) GroupBy(fn GroupByFunc) *QueryBuilder {
	b.check()
	b.groupBy = fn
	return b
}

// Expr appends the terms of a query expression such as
// "Position, !Frozen, ?Health, [in] Velocity". Component names resolve
// against w's registry. Errors are reported by Err and Build.
func (b *QueryBuilder) Expr(s string) *QueryBuilder {
	b.check()
	terms, err := expr.Parse(s)
	if err != nil {
		b.setErr(eris.Wrapf(err, "invalid query expression %q", s))
		return b
	}
	for _, t := range terms {
		id, err := b.world.ComponentIDByName(t.Name)
		if err != nil {
			b.setErr(err)
			return b
		}
		term := Term{ID: id}
		switch t.Oper {
		case expr.Not:
			term.Oper = OperNot
		case expr.Optional:
			term.Oper = OperOptional
		}
		switch t.Access {
		case "in":
			term.Access = AccessIn
		case "out":
			term.Access = AccessOut
		case "none":
			term.Access = AccessNone
		}
		b.addTerm(term)
	}
	return b
}

func (b *QueryBuilder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Err returns the first configuration error, if any.
func (b *QueryBuilder) Err() error {
	return b.err
}

// Terms returns a copy of the terms collected so far.
func (b *QueryBuilder) Terms() []Term {
	return append([]Term(nil), b.terms...)
}

// Build finalizes the builder into a Query. It panics with the recorded
// configuration error, if any.
func (b *QueryBuilder) Build() *Query {
	b.check()
	if b.err != nil {
		b.world.logger.Error().Err(b.err).Str("query", b.name).Msg("query build failed")
		panic(eris.Wrap(b.err, "query build"))
	}
	b.done = true
	return newQuery(b.world, b.name, b.terms, b.cached, b.groupBy)
}

// Dispose releases the builder without building. A second call is a no-op.
func (b *QueryBuilder) Dispose() {
	if b.done {
		return
	}
	b.done = true
	b.terms = nil
	b.groupBy = nil
}

// Equals reports whether b and other are the same builder.
func (b *QueryBuilder) Equals(other *QueryBuilder) bool {
	return b == other
}
