package kumiai

// SystemBuilder describes an untyped system.
type SystemBuilder struct {
	query    *QueryBuilder
	phase    Phase
	interval float64
	rate     int
	multi    bool
	done     bool
}

// NewSystemBuilder starts a system description on w. Systems run in OnUpdate
// unless Kind says otherwise.
func NewSystemBuilder(w *World) *SystemBuilder {
	return &SystemBuilder{query: NewQueryBuilder(w), phase: OnUpdate}
}

func (b *SystemBuilder) check() {
	if b.done {
		panic(ErrBuilderFinalized)
	}
}

// Name sets the name used in logs and errors.
func (b *SystemBuilder) Name(name string) *SystemBuilder {
	b.check()
	b.query.Name(name)
	return b
}

// With adds a required term for each of ids.
func (b *SystemBuilder) With(ids ...ComponentID) *SystemBuilder {
	b.check()
	b.query.With(ids...)
	return b
}

// Without excludes entities holding any of ids.
func (b *SystemBuilder) Without(ids ...ComponentID) *SystemBuilder {
	b.check()
	b.query.Without(ids...)
	return b
}

// Optional adds an optional term for each of ids.
func (b *SystemBuilder) Optional(ids ...ComponentID) *SystemBuilder {
	b.check()
	b.query.Optional(ids...)
	return b
}

// In marks the last term read-only.
func (b *SystemBuilder) In() *SystemBuilder {
	b.check()
	b.query.In()
	return b
}

// Out marks the last term write-only.
func (b *SystemBuilder) Out() *SystemBuilder {
	b.check()
	b.query.Out()
	return b
}

// InOutNone marks the last term as a filter that produces no field.
func (b *SystemBuilder) InOutNone() *SystemBuilder {
	b.check()
	b.query.InOutNone()
	return b
}

// Expr appends the terms of a query expression such as "Position, !Frozen".
func (b *SystemBuilder) Expr(s string) *SystemBuilder {
	b.check()
	b.query.Expr(s)
	return b
}

// Cached keeps the matched table list between iterations.
func (b *SystemBuilder) Cached() *SystemBuilder {
	b.check()
	b.query.Cached()
	return b
}

// GroupBy orders iteration by the group fn assigns to each table.
func (b *SystemBuilder) GroupBy(fn GroupByFunc) *SystemBuilder {
	b.check()
	b.query.GroupBy(fn)
	return b
}

// Kind sets the pipeline phase.
func (b *SystemBuilder) Kind(p Phase) *SystemBuilder {
	b.check()
	b.phase = p
	return b
}

// Interval runs the system at most once per seconds of accumulated time.
func (b *SystemBuilder) Interval(seconds float64) *SystemBuilder {
	b.check()
	b.interval = seconds
	return b
}

// Rate runs the system every n-th Progress call.
func (b *SystemBuilder) Rate(n int) *SystemBuilder {
	b.check()
	b.rate = n
	return b
}

// MultiThreaded splits the system's batches over Config.Threads workers.
// Workers may write components in place and queue structural changes but
// must not create entities.
func (b *SystemBuilder) MultiThreaded(multi bool) *SystemBuilder {
	b.check()
	b.multi = multi
	return b
}

// Err returns the first configuration error.
func (b *SystemBuilder) Err() error {
	return b.query.Err()
}

// Untyped returns the underlying query builder.
func (b *SystemBuilder) Untyped() *QueryBuilder {
	return b.query
}

// Equals reports whether b and other share the same query builder.
func (b *SystemBuilder) Equals(other *SystemBuilder) bool {
	return b.query.Equals(other.query)
}

// Dispose releases the builder without creating a system.
func (b *SystemBuilder) Dispose() {
	if b.done {
		return
	}
	b.done = true
	b.query.Dispose()
}

// Run registers fn, which receives the iterator and calls Next itself.
func (b *SystemBuilder) Run(fn func(it *Iter)) *System {
	return b.build(callbackSink{run: fn})
}

// Iter registers fn, called once per matched batch.
func (b *SystemBuilder) Iter(fn func(it *Iter)) *System {
	return b.build(callbackSink{batch: fn})
}

func (b *SystemBuilder) build(sink callbackSink) *System {
	b.check()
	w := b.query.world
	name := b.query.name
	q := b.query.Build()
	b.done = true
	s := &System{
		world:    w,
		name:     name,
		query:    q,
		phase:    b.phase,
		interval: b.interval,
		rate:     b.rate,
		multi:    b.multi,
		sink:     sink,
		enabled:  true,
	}
	w.pipeline.add(s)
	w.logger.Debug().
		Str("system", name).
		Stringer("phase", s.phase).
		Float64("interval", s.interval).
		Int("rate", s.rate).
		Bool("multi_threaded", s.multi).
		Msg("system registered")
	return s
}
