package kumiai

import (
	"reflect"
	"sync"

	"github.com/rotisserie/eris"
)

// ComponentID identifies a component type inside one World.
type ComponentID uint8

type componentEntry struct {
	info   *TypeInfo
	id     ComponentID
	sparse bool
	used   bool // some entity has held it
}

// componentRegistry maps types and names to IDs. Lookups may come from
// system workers, so it carries its own lock.
type componentRegistry struct {
	mu      sync.RWMutex
	byType  map[reflect.Type]ComponentID
	byName  map[string]ComponentID
	entries [MaxComponentTypes]*componentEntry
	count   int
}

func newComponentRegistry() componentRegistry {
	return componentRegistry{
		byType: make(map[reflect.Type]ComponentID, 16),
		byName: make(map[string]ComponentID, 32),
	}
}

func (r *componentRegistry) lookup(t reflect.Type) (ComponentID, bool) {
	r.mu.RLock()
	id, ok := r.byType[t]
	r.mu.RUnlock()
	return id, ok
}

func (r *componentRegistry) register(info *TypeInfo) (ComponentID, bool) {
	if id, ok := r.lookup(info.Type); ok {
		return id, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.byType[info.Type]; ok {
		return id, false
	}
	if r.count >= MaxComponentTypes {
		panic(eris.Wrapf(ErrTooManyComponents, "cannot register %s", info.FullName))
	}
	id := ComponentID(r.count)
	r.entries[id] = &componentEntry{info: info, id: id}
	r.byType[info.Type] = id
	r.byName[info.FullName] = id
	// Short names resolve to the first type that claimed them.
	if short := info.Type.Name(); short != "" {
		if _, taken := r.byName[short]; !taken {
			r.byName[short] = id
		}
	}
	r.count++
	return id, true
}

func (r *componentRegistry) entry(id ComponentID) *componentEntry {
	r.mu.RLock()
	e := r.entries[id]
	r.mu.RUnlock()
	if e == nil {
		panic(eris.Wrapf(ErrUnknownComponent, "component id %d", id))
	}
	return e
}

func (r *componentRegistry) info(id ComponentID) *TypeInfo {
	return r.entry(id).info
}

// RegisterComponent returns the ID of T in w, registering it on first use.
func RegisterComponent[T any](w *World) ComponentID {
	return w.registerComponent(TypeOf[T]())
}

func (w *World) registerComponent(info *TypeInfo) ComponentID {
	id, created := w.components.register(info)
	if created {
		w.logger.Debug().
			Str("component", info.FullName).
			Uint8("id", uint8(id)).
			Bool("tag", info.IsTag).
			Msg("component registered")
	}
	return id
}

func (w *World) lookupComponent(t reflect.Type) (ComponentID, bool) {
	return w.components.lookup(t)
}

// SetSparse switches T to sparse storage. It has to run before any entity
// holds T and panics with ErrStorageInUse otherwise.
func SetSparse[T any](w *World) ComponentID {
	id := RegisterComponent[T](w)
	w.components.mu.Lock()
	e := w.components.entries[id]
	if e.used && !e.sparse {
		w.components.mu.Unlock()
		panic(eris.Wrapf(ErrStorageInUse, "component %s", e.info.FullName))
	}
	e.sparse = true
	w.components.mu.Unlock()
	if w.sparse[id] == nil {
		w.sparse[id] = newSparseColumn(e.info)
	}
	return id
}

// IsSparse reports whether component id uses sparse storage.
func (w *World) IsSparse(id ComponentID) bool {
	w.components.mu.RLock()
	defer w.components.mu.RUnlock()
	e := w.components.entries[id]
	return e != nil && e.sparse
}

// ComponentName returns the full type name of component id.
func (w *World) ComponentName(id ComponentID) string {
	return w.components.info(id).FullName
}

// ComponentIDByName resolves a full type name, or a short name when it is
// unambiguous, to a component ID.
func (w *World) ComponentIDByName(name string) (ComponentID, error) {
	w.components.mu.RLock()
	id, ok := w.components.byName[name]
	w.components.mu.RUnlock()
	if !ok {
		return 0, eris.Wrapf(ErrUnknownComponent, "%q", name)
	}
	return id, nil
}

// ComponentType returns the TypeInfo registered under id.
func (w *World) ComponentType(id ComponentID) *TypeInfo {
	return w.components.info(id)
}

func (w *World) markUsed(id ComponentID) {
	w.components.mu.Lock()
	if e := w.components.entries[id]; e != nil {
		e.used = true
	}
	w.components.mu.Unlock()
}
