package kumiai

import (
	"reflect"
	"unsafe"

	"github.com/rotisserie/eris"
)

const maxTerms = 32

// Iter walks a query batch by batch. One batch is one chunk of one table, or
// a single row when an observer fires. Tables stay locked from the moment an
// Iter is created until it is exhausted or released.
type Iter struct {
	world  *World
	query  *Query
	terms  []Term
	tables []*Table

	ti, ci  int
	batch   int
	worker  int
	workers int
	paged   bool
	skip    int
	remain  int

	table    *Table
	count    int
	entities []Entity
	columns  [maxTerms]unsafe.Pointer
	sizes    [maxTerms]uintptr
	set      uint32
	sparse   uint32

	deltaTime float64
	event     EventID
	eventID   ComponentID

	single     bool
	singleDone bool
	locked     bool
}

// iterLimits restricts an iteration to a page of rows and to a share of the
// batches.
type iterLimits struct {
	paged         bool
	offset, limit int

	worker, workers int
}

func (l iterLimits) active() bool {
	return l.paged || l.workers > 1
}

func (q *Query) newIter(tables []*Table) *Iter {
	it := &Iter{
		world:   q.world,
		query:   q,
		terms:   q.terms,
		tables:  tables,
		paged:   q.limits.paged,
		skip:    q.limits.offset,
		remain:  q.limits.limit,
		worker:  q.limits.worker,
		workers: q.limits.workers,
	}
	it.deltaTime = q.world.deltaTime
	q.world.lockTables()
	it.locked = true
	return it
}

// rowIter builds a one-row iterator positioned on e, which must be placed.
func (q *Query) rowIter(e Entity) *Iter {
	it := q.newIter(nil)
	meta := &q.world.entities.metas[e.ID]
	t := q.world.tables.list[meta.table]
	it.bind(t, t.chunks[meta.chunk], meta.row, 1)
	it.single = true
	return it
}

// fini releases the table lock. It is safe to call more than once.
func (it *Iter) fini() {
	if it.locked {
		it.locked = false
		it.world.unlockTables()
	}
}

// Next advances to the next batch and reports whether there is one.
func (it *Iter) Next() bool {
	if it.single {
		if it.singleDone {
			return false
		}
		it.singleDone = true
		return true
	}
	for it.ti < len(it.tables) {
		t := it.tables[it.ti]
		if it.ci >= len(t.chunks) {
			it.ti++
			it.ci = 0
			continue
		}
		c := t.chunks[it.ci]
		it.ci++
		if c.size == 0 {
			continue
		}
		offset, count := 0, c.size
		if it.paged {
			if offset, count = it.page(count); count == 0 {
				if it.limited() && it.remain == 0 {
					it.ti = len(it.tables)
				}
				continue
			}
		}
		b := it.batch
		it.batch++
		if it.workers > 1 && b%it.workers != it.worker {
			continue
		}
		it.bind(t, c, offset, count)
		return true
	}
	it.count = 0
	it.entities = nil
	return false
}

func (it *Iter) limited() bool { return it.query.limits.limit > 0 }

// page consumes the page window for a batch of n rows and returns the rows
// of the batch that fall inside it.
func (it *Iter) page(n int) (int, int) {
	skip := min(it.skip, n)
	it.skip -= skip
	n -= skip
	if it.limited() {
		n = min(n, it.remain)
		it.remain -= n
	}
	return skip, n
}

func (it *Iter) bind(t *Table, c *chunk, offset, count int) {
	it.table = t
	it.count = count
	it.entities = c.entities[offset : offset+count]
	it.set = 0
	it.sparse = 0
	for k, term := range it.terms {
		it.columns[k] = nil
		if !term.hasData() || !t.mask.has(term.ID) {
			continue
		}
		bit := uint32(1) << k
		info := t.infos[term.ID]
		it.sizes[k] = info.Size
		it.set |= bit
		if it.world.sparse[term.ID] != nil {
			it.sparse |= bit
			continue
		}
		if !info.IsTag {
			it.columns[k] = unsafe.Add(c.columns[term.ID], uintptr(offset)*info.Size)
		}
	}
}

// ptr returns the address of term k on row i, or nil if the term has no
// data for this batch.
func (it *Iter) ptr(k, i int) unsafe.Pointer {
	bit := uint32(1) << k
	if it.set&bit == 0 {
		return nil
	}
	if it.sparse&bit != 0 {
		return it.world.sparse[it.terms[k].ID].get(it.entities[i].ID)
	}
	if it.columns[k] == nil {
		return nil
	}
	return unsafe.Add(it.columns[k], uintptr(i)*it.sizes[k])
}

// Count returns the number of rows in the current batch.
func (it *Iter) Count() int { return it.count }

// Entity returns the entity on row i.
func (it *Iter) Entity(i int) Entity { return it.entities[i] }

// Entities returns the batch's entities. The slice aliases table storage.
func (it *Iter) Entities() []Entity { return it.entities }

// World returns the world being iterated.
func (it *Iter) World() *World { return it.world }

// Query returns the query driving the iteration.
func (it *Iter) Query() *Query { return it.query }

// DeltaTime is the frame time passed to Progress, or to the system's Run.
func (it *Iter) DeltaTime() float64 { return it.deltaTime }

// Event is the event that triggered an observer, zero otherwise.
func (it *Iter) Event() EventID { return it.event }

// EventID is the component the observer event was raised for.
func (it *Iter) EventID() ComponentID { return it.eventID }

// Table returns the table of the current batch.
func (it *Iter) Table() *Table { return it.table }

// IsSet reports whether term has data in the current batch. Optional terms
// are unset on tables without the component.
func (it *Iter) IsSet(term int) bool {
	return it.set&(uint32(1)<<term) != 0
}

// IsSparse reports whether term is served from sparse storage.
func (it *Iter) IsSparse(term int) bool {
	return it.sparse&(uint32(1)<<term) != 0
}

func (it *Iter) checkField(term int, t reflect.Type) {
	if !debugChecks {
		return
	}
	if term < 0 || term >= len(it.terms) {
		panic(eris.Wrapf(ErrFieldType, "term %d out of range", term))
	}
	want := it.world.components.info(it.terms[term].ID)
	if want.Type != t {
		panic(eris.Wrapf(ErrFieldType, "term %d holds %s, not %s", term, want.FullName, fullTypeName(t)))
	}
}

// Field is a bounds-checked view of one term over the current batch. Sparse
// terms are resolved per row.
type Field[T any] struct {
	base     unsafe.Pointer
	sparse   *sparseColumn
	entities []Entity
	count    int
	set      bool
}

// FieldOf returns the view of term for the current batch.
func FieldOf[T any](it *Iter, term int) Field[T] {
	it.checkField(term, reflect.TypeFor[T]())
	f := Field[T]{entities: it.entities, count: it.count, set: it.IsSet(term)}
	switch {
	case !f.set:
	case it.IsSparse(term):
		f.sparse = it.world.sparse[it.terms[term].ID]
	default:
		f.base = it.columns[term]
	}
	return f
}

// FieldAt returns term's value on row i.
func FieldAt[T any](it *Iter, term, i int) *T {
	return FieldOf[T](it, term).At(i)
}

// Len returns the number of rows in the view.
func (f Field[T]) Len() int { return f.count }

// IsSet reports whether the term has data in this batch.
func (f Field[T]) IsSet() bool { return f.set }

// IsSparse reports whether rows are resolved through sparse storage.
func (f Field[T]) IsSparse() bool { return f.sparse != nil }

// At returns a pointer to row i, or nil when the term is unset.
func (f Field[T]) At(i int) *T {
	if uint(i) >= uint(f.count) {
		panic(eris.Errorf("ecs: field index %d out of range [0:%d]", i, f.count))
	}
	if f.sparse != nil {
		return (*T)(f.sparse.get(f.entities[i].ID))
	}
	if f.base == nil {
		return nil
	}
	var zero T
	return (*T)(unsafe.Add(f.base, uintptr(i)*unsafe.Sizeof(zero)))
}

// SpanOf returns term's column for the current batch as a slice, or nil when
// the term is unset. Sparse terms have no contiguous column and panic.
func SpanOf[T any](it *Iter, term int) []T {
	it.checkField(term, reflect.TypeFor[T]())
	p := it.columnOf(term)
	if p == nil {
		return nil
	}
	return unsafe.Slice((*T)(p), it.count)
}

// PointerOf returns the base address of term's column for the current
// batch. Sparse terms panic.
func PointerOf(it *Iter, term int) unsafe.Pointer {
	return it.columnOf(term)
}

func (it *Iter) columnOf(term int) unsafe.Pointer {
	if it.IsSparse(term) {
		panic(eris.Wrapf(ErrSparseComponent, "term %d (%s)", term, it.world.ComponentName(it.terms[term].ID)))
	}
	if !it.IsSet(term) {
		return nil
	}
	return it.columns[term]
}
