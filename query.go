package kumiai

import (
	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

// Query is a built, reusable description of the entities to visit. Typed
// query handles wrap one. Page and Worker return views that share the
// query's state.
type Query struct {
	*queryState
	limits iterLimits
}

type queryState struct {
	queryCache
	name      string
	terms     []Term
	group     uint64
	hasGroup  bool
	destroyed bool
}

func newQuery(w *World, name string, terms []Term, cached bool, groupBy GroupByFunc) *Query {
	var include, exclude bitmask256
	for _, t := range terms {
		switch t.Oper {
		case OperAnd:
			include.set(t.ID)
		case OperNot:
			exclude.set(t.ID)
		}
	}
	q := &Query{queryState: &queryState{
		queryCache: newQueryCache(w, include, exclude, groupBy, cached),
		name:       name,
		terms:      append([]Term(nil), terms...),
	}}
	w.logger.Debug().
		Str("query", name).
		Int("terms", len(terms)).
		Bool("cached", cached).
		Msg("query built")
	return q
}

func (q *Query) check() {
	if q.destroyed {
		panic(eris.Wrapf(ErrDestroyed, "query %q", q.name))
	}
}

// Name returns the name given to the builder.
func (q *Query) Name() string {
	return q.name
}

// World returns the world the query runs against.
func (q *Query) World() *World {
	return q.world
}

// Terms returns a copy of the query's terms.
func (q *Query) Terms() []Term {
	return append([]Term(nil), q.terms...)
}

// snapshot returns the tables to visit, honoring the group filter.
func (q *Query) snapshot() []*Table {
	q.check()
	tables, groups := q.tables()
	if !q.hasGroup {
		return tables
	}
	out := make([]*Table, 0, len(tables))
	for i, t := range tables {
		if groups[i] == q.group {
			out = append(out, t)
		}
	}
	return out
}

// SetGroup limits iteration to tables of group g.
func (q *Query) SetGroup(g uint64) *Query {
	q.check()
	q.group = g
	q.hasGroup = true
	return q
}

// ClearGroup removes the group filter.
func (q *Query) ClearGroup() *Query {
	q.hasGroup = false
	return q
}

// Page returns a view of q that skips the first offset matching entities
// and visits at most limit of the rest. A limit of zero or less means no
// limit.
func (q *Query) Page(offset, limit int) *Query {
	q.check()
	v := *q
	v.limits.paged = true
	v.limits.offset = max(offset, 0)
	v.limits.limit = limit
	return &v
}

// Worker returns a view of q that visits every count-th batch, starting at
// batch index. The count views 0..count-1 together visit each batch once.
func (q *Query) Worker(index, count int) *Query {
	q.check()
	if count < 1 || index < 0 || index >= count {
		panic(eris.Wrapf(ErrInvalidWorker, "worker %d of %d", index, count))
	}
	v := *q
	v.limits.worker = index
	v.limits.workers = count
	return &v
}

// Count returns the number of matching entities.
func (q *Query) Count() int {
	if q.limits.active() {
		n := 0
		q.iterate(func(it *Iter) { n += it.count })
		return n
	}
	n := 0
	for _, t := range q.snapshot() {
		n += t.size
	}
	return n
}

// IsTrue reports whether at least one entity matches.
func (q *Query) IsTrue() bool {
	if q.limits.active() {
		return q.Count() > 0
	}
	for _, t := range q.snapshot() {
		if t.size > 0 {
			return true
		}
	}
	return false
}

// First returns the first matching entity, or the zero Entity.
func (q *Query) First() Entity {
	if q.limits.active() {
		return q.find(func(*Iter, int) bool { return true })
	}
	for _, t := range q.snapshot() {
		if t.size > 0 {
			return t.chunks[0].entities[0]
		}
	}
	return Entity{}
}

// Entities returns every matching entity in iteration order.
func (q *Query) Entities() []Entity {
	out := make([]Entity, 0, q.Count())
	q.iterate(func(it *Iter) {
		out = append(out, it.entities...)
	})
	return out
}

// ToJSON encodes the matching entities in iteration order, in the layout
// of World.ToJSON.
func (q *Query) ToJSON() ([]byte, error) {
	var out jsonWorld
	out.Results = make([]jsonEntity, 0, q.Count())
	var err error
	q.iterate(func(it *Iter) {
		for _, e := range it.entities {
			if err != nil {
				return
			}
			var je jsonEntity
			je, err = q.world.encodeEntity(it.table, e)
			out.Results = append(out.Results, je)
		}
	})
	if err != nil {
		return nil, err
	}
	bz, err := json.Marshal(out)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to encode query %q", q.name)
	}
	return bz, nil
}

// Destroy releases the query. Later use panics with ErrDestroyed.
func (q *Query) Destroy() {
	if q.destroyed {
		return
	}
	q.destroyed = true
	q.matchingTables = nil
	q.groups = nil
}

// Run calls fn once with an iterator the caller advances with Next.
func (q *Query) Run(fn func(it *Iter)) {
	q.run(fn)
}

// Iter calls fn once per matched batch.
func (q *Query) Iter(fn func(it *Iter)) {
	q.iterate(iterAction(fn))
}

// EachEntity calls fn once per matched entity.
func (q *Query) EachEntity(fn func(e Entity)) {
	q.iterate(eachRows(func(it *Iter, i int) { fn(it.entities[i]) }))
}

// FindEntity returns the first entity for which fn reports true.
func (q *Query) FindEntity(fn func(e Entity) bool) Entity {
	return q.find(func(it *Iter, i int) bool { return fn(it.entities[i]) })
}
