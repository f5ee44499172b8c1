package main

const forwardTmpl = `
{{- define "forwards"}}{{$recv := .Recv}}{{$type := .Type}}{{$inner := .Inner}}
{{- range .List}}
// {{.Name}} {{.Doc}}
func ({{$recv}} *{{$type}}) {{.Name}}({{.Params}}) *{{$type}} {
	{{$recv}}.{{$inner}}.{{.Call}}
	return {{$recv}}
}
{{end}}
{{- end}}`

const shapesTmpl = `
{{- define "shapes"}}{{$r := .Recv}}{{$t := .Type}}{{$h := .Handle}}{{$w := .World}}{{$n := .A.N}}
// Run registers fn, which receives the iterator and calls Next itself.
func ({{$r}} *{{$t}}) Run(fn func(*Iter)) *{{$h}} {
	return {{$r}}.build(callbackSink{run: fn})
}

// Iter registers fn, called once per batch with bounds-checked field views.
func ({{$r}} *{{$t}}) Iter(fn func(*Iter, {{.A.Fields}})) *{{$h}} {
	{{$r}}.types.assertShape({{$w}}, shapeIter)
	return {{$r}}.build(callbackSink{batch: fieldAction{{$n}}(fn)})
}

// IterSpan registers fn, called once per batch with each column as a slice.
func ({{$r}} *{{$t}}) IterSpan(fn func(*Iter, {{.A.Spans}})) *{{$h}} {
	{{$r}}.types.assertShape({{$w}}, shapeIterSpan)
	return {{$r}}.build(callbackSink{batch: spanAction{{$n}}(fn)})
}

// IterUnsafe registers fn, called once per batch with each column's base
// address.
func ({{$r}} *{{$t}}) IterUnsafe(fn func(*Iter, {{.A.Ptrs}})) *{{$h}} {
	{{$r}}.types.assertShape({{$w}}, shapeIterUnsafe)
	return {{$r}}.build(callbackSink{batch: unsafeAction{{$n}}(fn)})
}

// Each registers fn, called once per matching entity.
func ({{$r}} *{{$t}}) Each(fn func({{.A.Stars}})) *{{$h}} {
	{{$r}}.types.assertShape({{$w}}, shapeEach)
	return {{$r}}.build(callbackSink{batch: eachAction{{$n}}(fn)})
}

// EachEntity registers fn, called once per matching entity with the entity.
func ({{$r}} *{{$t}}) EachEntity(fn func(Entity, {{.A.Stars}})) *{{$h}} {
	{{$r}}.types.assertShape({{$w}}, shapeEachEntity)
	return {{$r}}.build(callbackSink{batch: eachEntityAction{{$n}}(fn)})
}

// EachIter registers fn, called once per matching entity with the iterator
// and row.
func ({{$r}} *{{$t}}) EachIter(fn func(*Iter, int, {{.A.Stars}})) *{{$h}} {
	{{$r}}.types.assertShape({{$w}}, shapeEachIter)
	return {{$r}}.build(callbackSink{batch: eachIterAction{{$n}}(fn)})
}

// EachUnsafe registers fn, called once per matching entity with each
// component's address.
func ({{$r}} *{{$t}}) EachUnsafe(fn func(Entity, {{.A.Ptrs}})) *{{$h}} {
	{{$r}}.types.assertShape({{$w}}, shapeEachUnsafe)
	return {{$r}}.build(callbackSink{batch: eachUnsafeAction{{$n}}(fn)})
}
{{- end}}`

const dispatchTmpl = `// Code generated by go run ./cmd/generate. DO NOT EDIT.

package kumiai

import "unsafe"
{{range .}}
// Arity {{.N}}.

func fieldAction{{.N}}[{{.TypeParams}}](fn func(*Iter, {{.Fields}})) iterAction {
	return func(it *Iter) {
		fn(it, {{.CallFields}})
	}
}

func spanAction{{.N}}[{{.TypeParams}}](fn func(*Iter, {{.Spans}})) iterAction {
	return func(it *Iter) {
		fn(it, {{.CallSpans}})
	}
}

func unsafeAction{{.N}}(fn func(*Iter, {{.Ptrs}})) iterAction {
	return func(it *Iter) {
		fn(it, {{.CallPtrs}})
	}
}

func eachAction{{.N}}[{{.TypeParams}}](fn func({{.Stars}})) iterAction {
	return eachRows(func(it *Iter, i int) {
		fn({{.RowTyped}})
	})
}

func eachEntityAction{{.N}}[{{.TypeParams}}](fn func(Entity, {{.Stars}})) iterAction {
	return eachRows(func(it *Iter, i int) {
		fn(it.entities[i], {{.RowTyped}})
	})
}

func eachIterAction{{.N}}[{{.TypeParams}}](fn func(*Iter, int, {{.Stars}})) iterAction {
	return eachRows(func(it *Iter, i int) {
		fn(it, i, {{.RowTyped}})
	})
}

func eachUnsafeAction{{.N}}(fn func(Entity, {{.Ptrs}})) iterAction {
	return eachRows(func(it *Iter, i int) {
		fn(it.entities[i], {{.RowPtrs}})
	})
}

func findRow{{.N}}[{{.TypeParams}}](fn func({{.Stars}}) bool) findAction {
	return func(it *Iter, i int) bool {
		return fn({{.RowTyped}})
	}
}

func findEntityRow{{.N}}[{{.TypeParams}}](fn func(Entity, {{.Stars}}) bool) findAction {
	return func(it *Iter, i int) bool {
		return fn(it.entities[i], {{.RowTyped}})
	}
}

func findIterRow{{.N}}[{{.TypeParams}}](fn func(*Iter, int, {{.Stars}}) bool) findAction {
	return func(it *Iter, i int) bool {
		return fn(it, i, {{.RowTyped}})
	}
}

func findUnsafeRow{{.N}}(fn func(Entity, {{.Ptrs}}) bool) findAction {
	return func(it *Iter, i int) bool {
		return fn(it.entities[i], {{.RowPtrs}})
	}
}
{{end}}`

const queryTmpl = `// Code generated by go run ./cmd/generate. DO NOT EDIT.

package kumiai

import "unsafe"
{{range .}}{{$T := printf "QueryBuilder%d[%s]" .N .TypeArgs}}{{$Q := printf "Query%d[%s]" .N .TypeArgs}}
// QueryBuilder{{.N}} describes a query over entities holding {{.List}}.
type QueryBuilder{{.N}}[{{.TypeParams}}] struct {
	b     *QueryBuilder
	types typeSet
}

// NewQueryBuilder{{.N}} validates the {{.N}}-component tuple and adds one required
// term per type, in order.
func NewQueryBuilder{{.N}}[{{.TypeParams}}](w *World) *{{$T}} {
	types := newTypeSet({{.Infos}})
	types.assertConstruction(w)
	return &{{$T}}{b: withTypeSet(NewQueryBuilder(w), types), types: types}
}
{{template "forwards" (dict "Recv" "qb" "Type" $T "Inner" "b" "List" queryForwards)}}
// Untyped returns the wrapped builder.
func (qb *{{$T}}) Untyped() *QueryBuilder {
	return qb.b
}

// Err returns the first configuration error.
func (qb *{{$T}}) Err() error {
	return qb.b.Err()
}

// Equals reports whether qb and other wrap the same builder.
func (qb *{{$T}}) Equals(other *{{$T}}) bool {
	return qb.b.Equals(other.b)
}

// Dispose releases the builder without building a query.
func (qb *{{$T}}) Dispose() {
	qb.b.Dispose()
}

// Build finalizes the query.
func (qb *{{$T}}) Build() *{{$Q}} {
	return &{{$Q}}{q: qb.b.Build(), types: qb.types}
}

// Query{{.N}} is a built query over entities holding {{.List}}. Term i-1 is Ti.
type Query{{.N}}[{{.TypeParams}}] struct {
	q     *Query
	types typeSet
}

// Untyped returns the wrapped query.
func (q *{{$Q}}) Untyped() *Query {
	return q.q
}

// Name returns the name given to the builder.
func (q *{{$Q}}) Name() string {
	return q.q.Name()
}

// Page returns a view of q that skips the first offset matching entities
// and visits at most limit of the rest. A limit of zero or less means no
// limit.
func (q *{{$Q}}) Page(offset, limit int) *{{$Q}} {
	return &{{$Q}}{q: q.q.Page(offset, limit), types: q.types}
}

// Worker returns a view of q that visits every count-th batch, starting at
// batch index.
func (q *{{$Q}}) Worker(index, count int) *{{$Q}} {
	return &{{$Q}}{q: q.q.Worker(index, count), types: q.types}
}

// Fields returns the typed views of the tuple terms for the current batch.
func (q *{{$Q}}) Fields(it *Iter) {{.Results}} {
	return {{.CallFields}}
}

// Run calls fn once with an iterator the caller advances.
func (q *{{$Q}}) Run(fn func(*Iter)) {
	q.q.run(fn)
}

// Iter calls fn once per batch with bounds-checked field views.
func (q *{{$Q}}) Iter(fn func(*Iter, {{.Fields}})) {
	q.types.assertShape(q.q.world, shapeIter)
	q.q.iterate(fieldAction{{.N}}(fn))
}

// IterSpan calls fn once per batch with each column as a slice.
func (q *{{$Q}}) IterSpan(fn func(*Iter, {{.Spans}})) {
	q.types.assertShape(q.q.world, shapeIterSpan)
	q.q.iterate(spanAction{{.N}}(fn))
}

// IterUnsafe calls fn once per batch with each column's base address.
func (q *{{$Q}}) IterUnsafe(fn func(*Iter, {{.Ptrs}})) {
	q.types.assertShape(q.q.world, shapeIterUnsafe)
	q.q.iterate(unsafeAction{{.N}}(fn))
}

// Each calls fn once per matching entity.
func (q *{{$Q}}) Each(fn func({{.Stars}})) {
	q.types.assertShape(q.q.world, shapeEach)
	q.q.iterate(eachAction{{.N}}(fn))
}

// EachEntity calls fn once per matching entity, passing the entity.
func (q *{{$Q}}) EachEntity(fn func(Entity, {{.Stars}})) {
	q.types.assertShape(q.q.world, shapeEachEntity)
	q.q.iterate(eachEntityAction{{.N}}(fn))
}

// EachIter calls fn once per matching entity with the iterator and row.
func (q *{{$Q}}) EachIter(fn func(*Iter, int, {{.Stars}})) {
	q.types.assertShape(q.q.world, shapeEachIter)
	q.q.iterate(eachIterAction{{.N}}(fn))
}

// EachUnsafe calls fn once per matching entity with the address of each
// component.
func (q *{{$Q}}) EachUnsafe(fn func(Entity, {{.Ptrs}})) {
	q.types.assertShape(q.q.world, shapeEachUnsafe)
	q.q.iterate(eachUnsafeAction{{.N}}(fn))
}

// Find returns the first entity fn accepts, or the zero Entity.
func (q *{{$Q}}) Find(fn func({{.Stars}}) bool) Entity {
	q.types.assertShape(q.q.world, shapeFind)
	return q.q.find(findRow{{.N}}(fn))
}

// FindEntity is Find with the entity passed to fn.
func (q *{{$Q}}) FindEntity(fn func(Entity, {{.Stars}}) bool) Entity {
	q.types.assertShape(q.q.world, shapeFindEntity)
	return q.q.find(findEntityRow{{.N}}(fn))
}

// FindIter is Find with the iterator and row passed to fn.
func (q *{{$Q}}) FindIter(fn func(*Iter, int, {{.Stars}}) bool) Entity {
	q.types.assertShape(q.q.world, shapeFindIter)
	return q.q.find(findIterRow{{.N}}(fn))
}

// FindUnsafe is Find with each component's address passed to fn.
func (q *{{$Q}}) FindUnsafe(fn func(Entity, {{.Ptrs}}) bool) Entity {
	q.types.assertShape(q.q.world, shapeFindUnsafe)
	return q.q.find(findUnsafeRow{{.N}}(fn))
}

// Count returns the number of matching entities.
func (q *{{$Q}}) Count() int {
	return q.q.Count()
}

// IsTrue reports whether at least one entity matches.
func (q *{{$Q}}) IsTrue() bool {
	return q.q.IsTrue()
}

// First returns the first matching entity, or the zero Entity.
func (q *{{$Q}}) First() Entity {
	return q.q.First()
}

// Entities returns every matching entity in iteration order.
func (q *{{$Q}}) Entities() []Entity {
	return q.q.Entities()
}

// ToJSON encodes the matching entities in iteration order.
func (q *{{$Q}}) ToJSON() ([]byte, error) {
	return q.q.ToJSON()
}

// SetGroup limits iteration to tables of group g.
func (q *{{$Q}}) SetGroup(g uint64) *{{$Q}} {
	q.q.SetGroup(g)
	return q
}

// ClearGroup removes the group filter.
func (q *{{$Q}}) ClearGroup() *{{$Q}} {
	q.q.ClearGroup()
	return q
}

// Destroy releases the query. Later use panics with ErrDestroyed.
func (q *{{$Q}}) Destroy() {
	q.q.Destroy()
}
{{end}}`

const systemTmpl = `// Code generated by go run ./cmd/generate. DO NOT EDIT.

package kumiai

import "unsafe"
{{range .}}{{$T := printf "SystemBuilder%d[%s]" .N .TypeArgs}}{{$R := printf "System%d[%s]" .N .TypeArgs}}{{$Q := printf "Query%d[%s]" .N .TypeArgs}}
// SystemBuilder{{.N}} describes a system over entities holding {{.List}}.
type SystemBuilder{{.N}}[{{.TypeParams}}] struct {
	b     *SystemBuilder
	types typeSet
}

// NewSystemBuilder{{.N}} validates the {{.N}}-component tuple and adds one
// required term per type, in order.
func NewSystemBuilder{{.N}}[{{.TypeParams}}](w *World) *{{$T}} {
	types := newTypeSet({{.Infos}})
	types.assertConstruction(w)
	b := NewSystemBuilder(w)
	withTypeSet(b.query, types)
	return &{{$T}}{b: b, types: types}
}
{{template "forwards" (dict "Recv" "sb" "Type" $T "Inner" "b" "List" systemForwards)}}
// Untyped returns the wrapped builder.
func (sb *{{$T}}) Untyped() *SystemBuilder {
	return sb.b
}

// Err returns the first configuration error.
func (sb *{{$T}}) Err() error {
	return sb.b.Err()
}

// Equals reports whether sb and other wrap the same builder.
func (sb *{{$T}}) Equals(other *{{$T}}) bool {
	return sb.b.Equals(other.b)
}

// Dispose releases the builder without creating a system.
func (sb *{{$T}}) Dispose() {
	sb.b.Dispose()
}
{{template "shapes" (dict "Recv" "sb" "Type" $T "Handle" $R "World" "sb.b.query.world" "A" .)}}

func (sb *{{$T}}) build(sink callbackSink) *{{$R}} {
	s := sb.b.build(sink)
	return &{{$R}}{System: s, query: &{{$Q}}{q: s.query, types: sb.types}}
}

// System{{.N}} is a registered system over {{.List}}.
type System{{.N}}[{{.TypeParams}}] struct {
	*System
	query *{{$Q}}
}

// Query returns the system's typed query.
func (s *{{$R}}) Query() *{{$Q}} {
	return s.query
}

// Untyped returns the wrapped system.
func (s *{{$R}}) Untyped() *System {
	return s.System
}
{{end}}`

const observerTmpl = `// Code generated by go run ./cmd/generate. DO NOT EDIT.

package kumiai

import "unsafe"
{{range .}}{{$T := printf "ObserverBuilder%d[%s]" .N .TypeArgs}}{{$R := printf "Observer%d[%s]" .N .TypeArgs}}{{$Q := printf "Query%d[%s]" .N .TypeArgs}}
// ObserverBuilder{{.N}} describes an observer over entities holding {{.List}}.
type ObserverBuilder{{.N}}[{{.TypeParams}}] struct {
	b     *ObserverBuilder
	types typeSet
}

// NewObserverBuilder{{.N}} validates the {{.N}}-component tuple and adds one
// required term per type, in order.
func NewObserverBuilder{{.N}}[{{.TypeParams}}](w *World) *{{$T}} {
	types := newTypeSet({{.Infos}})
	types.assertConstruction(w)
	b := NewObserverBuilder(w)
	withTypeSet(b.query, types)
	return &{{$T}}{b: b, types: types}
}
{{template "forwards" (dict "Recv" "ob" "Type" $T "Inner" "b" "List" observerForwards)}}
// Untyped returns the wrapped builder.
func (ob *{{$T}}) Untyped() *ObserverBuilder {
	return ob.b
}

// Err returns the first configuration error.
func (ob *{{$T}}) Err() error {
	return ob.b.Err()
}

// Equals reports whether ob and other wrap the same builder.
func (ob *{{$T}}) Equals(other *{{$T}}) bool {
	return ob.b.Equals(other.b)
}

// Dispose releases the builder without creating an observer.
func (ob *{{$T}}) Dispose() {
	ob.b.Dispose()
}
{{template "shapes" (dict "Recv" "ob" "Type" $T "Handle" $R "World" "ob.b.query.world" "A" .)}}

func (ob *{{$T}}) build(sink callbackSink) *{{$R}} {
	o := ob.b.build(sink)
	return &{{$R}}{Observer: o, query: &{{$Q}}{q: o.query, types: ob.types}}
}

// Observer{{.N}} is a registered observer over {{.List}}.
type Observer{{.N}}[{{.TypeParams}}] struct {
	*Observer
	query *{{$Q}}
}

// Query returns the observer's typed query.
func (o *{{$R}}) Query() *{{$Q}} {
	return o.query
}

// Untyped returns the wrapped observer.
func (o *{{$R}}) Untyped() *Observer {
	return o.Observer
}
{{end}}`
