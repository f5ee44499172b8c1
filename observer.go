package kumiai

import (
	"slices"
	"sync"

	"github.com/rotisserie/eris"
)

// EventID identifies an observable event.
type EventID uint32

const (
	// OnAdd fires after a component is added, before its value is written.
	OnAdd EventID = iota + 1
	// OnRemove fires before a component is removed, including on entity
	// removal.
	OnRemove
	// OnSet fires after a component value is written.
	OnSet

	firstCustomEvent
)

type observerRegistry struct {
	mu        sync.RWMutex
	byEvent   map[EventID][]*Observer
	nextEvent EventID
}

func newObserverRegistry() observerRegistry {
	return observerRegistry{
		byEvent:   make(map[EventID][]*Observer),
		nextEvent: firstCustomEvent,
	}
}

func (r *observerRegistry) any(ev EventID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byEvent[ev]) > 0
}

func (r *observerRegistry) listeners(ev EventID) []*Observer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byEvent[ev]
}

func (r *observerRegistry) add(o *Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ev := range o.events {
		r.byEvent[ev] = append(r.byEvent[ev], o)
	}
}

func (r *observerRegistry) remove(o *Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ev := range o.events {
		list := r.byEvent[ev]
		if i := slices.Index(list, o); i >= 0 {
			r.byEvent[ev] = slices.Delete(slices.Clone(list), i, i+1)
		}
	}
}

// NewEvent allocates a custom event ID for use with Emit.
func NewEvent(w *World) EventID {
	w.observers.mu.Lock()
	defer w.observers.mu.Unlock()
	ev := w.observers.nextEvent
	w.observers.nextEvent++
	return ev
}

// Emit raises a custom event for e. Observers listening for ev whose terms
// match e's table are invoked in registration order.
func Emit(w *World, ev EventID, e Entity) {
	t := w.tableOf(e)
	if t == nil {
		return
	}
	w.lockTables()
	defer w.unlockTables()
	for _, o := range w.observers.listeners(ev) {
		if o.destroyed || !o.query.matches(t) {
			continue
		}
		o.fire(ev, 0, e)
	}
}

// emit delivers a component event. t is the table the entity is matched
// against: the post-add table for OnAdd and OnSet, the pre-remove table for
// OnRemove.
func (w *World) emit(ev EventID, id ComponentID, e Entity, t *Table) {
	for _, o := range w.observers.listeners(ev) {
		if o.destroyed || !o.query.include.has(id) || !o.query.matches(t) {
			continue
		}
		o.fire(ev, id, e)
	}
}

func (w *World) emitRemoveAll(e Entity, t *Table) {
	if !w.observers.any(OnRemove) {
		return
	}
	for _, id := range t.ids {
		w.emit(OnRemove, id, e, t)
	}
}

// Observer is a callback bound to one or more events and a query.
type Observer struct {
	world     *World
	name      string
	query     *Query
	events    []EventID
	sink      callbackSink
	destroyed bool
}

func (o *Observer) fire(ev EventID, id ComponentID, e Entity) {
	it := o.query.rowIter(e)
	defer it.fini()
	it.event = ev
	it.eventID = id
	o.sink.invoke(it)
}

// Name returns the observer's name.
func (o *Observer) Name() string {
	return o.name
}

// Query returns the query the observer matches entities with.
func (o *Observer) Query() *Query {
	return o.query
}

// Events returns the events the observer listens for.
func (o *Observer) Events() []EventID {
	return slices.Clone(o.events)
}

// Destroy unregisters the observer. A second call is a no-op.
func (o *Observer) Destroy() {
	if o.destroyed {
		return
	}
	o.destroyed = true
	o.world.observers.remove(o)
	o.query.Destroy()
}

// ObserverBuilder describes an untyped observer.
type ObserverBuilder struct {
	query  *QueryBuilder
	events []EventID
	yield  bool
	done   bool
}

// NewObserverBuilder starts an observer description on w.
func NewObserverBuilder(w *World) *ObserverBuilder {
	return &ObserverBuilder{query: NewQueryBuilder(w)}
}

func (b *ObserverBuilder) check() {
	if b.done {
		panic(ErrBuilderFinalized)
	}
}

// Name sets the name used in logs and errors.
func (b *ObserverBuilder) Name(name string) *ObserverBuilder {
	b.check()
	b.query.Name(name)
	return b
}

// With adds a required term for each of ids.
func (b *ObserverBuilder) With(ids ...ComponentID) *ObserverBuilder {
	b.check()
	b.query.With(ids...)
	return b
}

// Without excludes entities holding any of ids.
func (b *ObserverBuilder) Without(ids ...ComponentID) *ObserverBuilder {
	b.check()
	b.query.Without(ids...)
	return b
}

// Optional adds an optional term for each of ids.
func (b *ObserverBuilder) Optional(ids ...ComponentID) *ObserverBuilder {
	b.check()
	b.query.Optional(ids...)
	return b
}

// In marks the last term read-only.
func (b *ObserverBuilder) In() *ObserverBuilder {
	b.check()
	b.query.In()
	return b
}

// Out marks the last term write-only.
func (b *ObserverBuilder) Out() *ObserverBuilder {
	b.check()
	b.query.Out()
	return b
}

// InOutNone marks the last term as a filter that produces no field.
func (b *ObserverBuilder) InOutNone() *ObserverBuilder {
	b.check()
	b.query.InOutNone()
	return b
}

// Expr appends the terms of a query expression such as "Position, !Frozen".
func (b *ObserverBuilder) Expr(s string) *ObserverBuilder {
	b.check()
	b.query.Expr(s)
	return b
}

// Cached keeps the matched table list between iterations.
func (b *ObserverBuilder) Cached() *ObserverBuilder {
	b.check()
	b.query.Cached()
	return b
}

// GroupBy orders iteration by the group fn assigns to each table.
func (b *ObserverBuilder) GroupBy(fn GroupByFunc) *ObserverBuilder {
	b.check()
	b.query.GroupBy(fn)
	return b
}

// Event adds ev to the events the observer listens for.
func (b *ObserverBuilder) Event(ev EventID) *ObserverBuilder {
	b.check()
	if !slices.Contains(b.events, ev) {
		b.events = append(b.events, ev)
	}
	return b
}

// YieldExisting replays OnAdd and OnSet for entities that already match
// when the observer is created.
func (b *ObserverBuilder) YieldExisting() *ObserverBuilder {
	b.check()
	b.yield = true
	return b
}

// Err returns the first configuration error.
func (b *ObserverBuilder) Err() error {
	return b.query.Err()
}

// Untyped returns the underlying query builder.
func (b *ObserverBuilder) Untyped() *QueryBuilder {
	return b.query
}

// Equals reports whether b and other describe through the same builder.
func (b *ObserverBuilder) Equals(other *ObserverBuilder) bool {
	return b.query.Equals(other.query)
}

// Dispose releases the builder without creating an observer.
func (b *ObserverBuilder) Dispose() {
	if b.done {
		return
	}
	b.done = true
	b.query.Dispose()
}

// Run registers fn, which receives the event iterator and calls Next.
func (b *ObserverBuilder) Run(fn func(it *Iter)) *Observer {
	return b.build(callbackSink{run: fn})
}

// Iter registers fn, called once per matching batch.
func (b *ObserverBuilder) Iter(fn func(it *Iter)) *Observer {
	return b.build(callbackSink{batch: fn})
}

func (b *ObserverBuilder) build(sink callbackSink) *Observer {
	b.check()
	w := b.query.world
	if len(b.events) == 0 {
		panic(eris.Wrapf(ErrNoEvents, "observer %q", b.query.name))
	}
	name := b.query.name
	q := b.query.Build()
	b.done = true
	o := &Observer{
		world:  w,
		name:   name,
		query:  q,
		events: b.events,
		sink:   sink,
	}
	w.observers.add(o)
	w.logger.Debug().
		Str("observer", name).
		Int("events", len(o.events)).
		Msg("observer registered")
	if b.yield {
		o.yieldExisting()
	}
	return o
}

func (o *Observer) yieldExisting() {
	for _, ev := range o.events {
		if ev == OnAdd || ev == OnSet {
			o.replay(ev)
		}
	}
}

func (o *Observer) replay(ev EventID) {
	it := o.query.newIter(o.query.snapshot())
	defer it.fini()
	it.event = ev
	for _, t := range o.query.terms {
		if t.Oper == OperAnd {
			it.eventID = t.ID
			break
		}
	}
	o.sink.invoke(it)
}
