package kumiai

import (
	"reflect"
	"sync"
)

// Resources stores at most one value per type. Slots are recycled through a
// free list.
type Resources struct {
	mu      sync.RWMutex
	items   []any
	types   map[reflect.Type]int
	freeIDs []int
}

func (r *Resources) put(t reflect.Type, v any) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.types == nil {
		r.types = make(map[reflect.Type]int)
	}
	if id, ok := r.types[t]; ok {
		r.items[id] = v
		return id
	}
	var id int
	if n := len(r.freeIDs); n > 0 {
		id = r.freeIDs[n-1]
		r.freeIDs = r.freeIDs[:n-1]
		r.items[id] = v
	} else {
		r.items = append(r.items, v)
		id = len(r.items) - 1
	}
	r.types[t] = id
	return id
}

func (r *Resources) lookup(t reflect.Type) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.types[t]
	if !ok {
		return nil, false
	}
	return r.items[id], true
}

func (r *Resources) drop(t reflect.Type) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.types[t]
	if !ok {
		return false
	}
	delete(r.types, t)
	r.items[id] = nil
	r.freeIDs = append(r.freeIDs, id)
	return true
}

// Len returns the number of stored values.
func (r *Resources) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}

// Clear removes every value.
func (r *Resources) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.items)
	r.items = r.items[:0]
	clear(r.types)
	r.freeIDs = r.freeIDs[:0]
}

// Singletons returns the world's singleton store.
func (w *World) Singletons() *Resources {
	return w.singletons
}

// SetSingleton stores v as the world's only T, replacing any previous one.
// It returns a pointer to the stored copy.
func SetSingleton[T any](w *World, v T) *T {
	p := new(T)
	*p = v
	w.singletons.put(reflect.TypeFor[T](), p)
	return p
}

// GetSingleton returns the world's T, or nil if none is set.
func GetSingleton[T any](w *World) *T {
	v, ok := w.singletons.lookup(reflect.TypeFor[T]())
	if !ok {
		return nil
	}
	return v.(*T)
}

// HasSingleton reports whether a T is set.
func HasSingleton[T any](w *World) bool {
	_, ok := w.singletons.lookup(reflect.TypeFor[T]())
	return ok
}

// RemoveSingleton deletes the world's T and reports whether one existed.
func RemoveSingleton[T any](w *World) bool {
	return w.singletons.drop(reflect.TypeFor[T]())
}
