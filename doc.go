// Package kumiai is an archetype-based Entity-Component-System store.
//
// Components are plain Go types. Queries, systems and observers are built
// through arity-indexed generic builders (QueryBuilder1 .. QueryBuilder8 and
// friends) that validate their component tuple before anything is
// registered:
//
//   - zero-sized types (tags) cannot be bound to a typed slot;
//   - a type may appear only once per tuple;
//   - span and unsafe callbacks reject pointer-holding and sparse types.
//
// A violation is logged and raised as a panic carrying a *ValidationError
// that names every offending type. Building with -tags kumiai_release
// compiles these checks out.
//
// Every callback runs with the world's tables locked. Structural changes
// made inside one (creating or removing entities, adding or removing
// components) are queued and applied once the outermost iteration ends.
//
//	w := kumiai.NewWorld()
//	e := w.CreateEntity()
//	kumiai.SetComponent(w, e, Position{X: 1})
//	kumiai.SetComponent(w, e, Velocity{X: 2})
//
//	q := kumiai.NewQueryBuilder2[Position, Velocity](w).Build()
//	q.Each(func(p *Position, v *Velocity) {
//		p.X += v.X
//	})
//
//go:generate go run ./cmd/generate
package kumiai
