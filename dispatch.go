package kumiai

// shape names the callback signature a typed handle was given.
type shape uint8

const (
	shapeRun shape = iota
	shapeIter
	shapeIterSpan
	shapeIterUnsafe
	shapeEach
	shapeEachEntity
	shapeEachIter
	shapeEachUnsafe
	shapeFind
	shapeFindEntity
	shapeFindIter
	shapeFindUnsafe
)

type shapeRule struct {
	name            string
	checked         bool
	allowReferences bool
	allowSparse     bool
}

// shapeRules says which component traits each callback shape tolerates.
// Span and unsafe batch shapes hand out raw column memory, so they need
// contiguous pointer-free data. Row shapes resolve sparse terms per row.
var shapeRules = [...]shapeRule{
	shapeRun:        {name: "Run"},
	shapeIter:       {name: "Iter", checked: true, allowReferences: true, allowSparse: true},
	shapeIterSpan:   {name: "IterSpan", checked: true},
	shapeIterUnsafe: {name: "IterUnsafe", checked: true},
	shapeEach:       {name: "Each", checked: true, allowReferences: true, allowSparse: true},
	shapeEachEntity: {name: "EachEntity", checked: true, allowReferences: true, allowSparse: true},
	shapeEachIter:   {name: "EachIter", checked: true, allowReferences: true, allowSparse: true},
	shapeEachUnsafe: {name: "EachUnsafe", checked: true, allowSparse: true},
	shapeFind:       {name: "Find", checked: true, allowReferences: true, allowSparse: true},
	shapeFindEntity: {name: "FindEntity", checked: true, allowReferences: true, allowSparse: true},
	shapeFindIter:   {name: "FindIter", checked: true, allowReferences: true, allowSparse: true},
	shapeFindUnsafe: {name: "FindUnsafe", checked: true, allowSparse: true},
}

func (s shape) String() string {
	return shapeRules[s].name
}

// assertShape validates the tuple for a callback shape. It runs before any
// action is built so a failure leaves nothing registered.
func (s typeSet) assertShape(w *World, sh shape) {
	r := shapeRules[sh]
	if !r.checked {
		return
	}
	s.assertReferenceTypes(w, r.allowReferences)
	s.assertSparseTypes(w, r.allowSparse)
}

// iterAction is the single trampoline every shape compiles to. It runs once
// per batch.
type iterAction func(it *Iter)

type rowAction func(it *Iter, i int)

type findAction func(it *Iter, i int) bool

func eachRows(fn rowAction) iterAction {
	return func(it *Iter) {
		for i := 0; i < it.count; i++ {
			fn(it, i)
		}
	}
}

// callbackSink is the stored form of a system or observer callback. Exactly
// one of the two is set.
type callbackSink struct {
	batch iterAction  // called per batch
	run   func(*Iter) // called once, drives Next itself
}

func (s callbackSink) invoke(it *Iter) {
	if s.run != nil {
		s.run(it)
		return
	}
	for it.Next() {
		s.batch(it)
	}
}

func (q *Query) run(fn func(*Iter)) {
	it := q.newIter(q.snapshot())
	defer it.fini()
	fn(it)
}

func (q *Query) iterate(action iterAction) {
	it := q.newIter(q.snapshot())
	defer it.fini()
	for it.Next() {
		action(it)
	}
}

// find stops at the first row pred accepts. It returns the zero Entity when
// no row does.
func (q *Query) find(pred findAction) Entity {
	it := q.newIter(q.snapshot())
	defer it.fini()
	for it.Next() {
		for i := 0; i < it.count; i++ {
			if pred(it, i) {
				return it.entities[i]
			}
		}
	}
	return Entity{}
}
