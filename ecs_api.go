package kumiai

import (
	"reflect"
	"unsafe"
)

// GetComponent returns a pointer to e's T, or nil if e is invalid, pending
// or does not hold T. The pointer is valid until the next structural change
// to e's table.
func GetComponent[T any](w *World, e Entity) *T {
	id, ok := w.lookupComponent(reflect.TypeFor[T]())
	if !ok || !w.IsValid(e) {
		return nil
	}
	return (*T)(w.componentPtr(e, id))
}

// SetComponent writes val into e's T, adding T first if needed. Adding is a
// structural change and is deferred while tables are locked; overwriting an
// existing value is not. Invalid entities are ignored.
//
// Observers see OnAdd when T is added and OnSet after every write.
func SetComponent[T any](w *World, e Entity, val T) {
	id := RegisterComponent[T](w)
	w.set(e, id, unsafe.Pointer(&val))
}

// HasComponent reports whether e holds T.
func HasComponent[T any](w *World, e Entity) bool {
	id, ok := w.lookupComponent(reflect.TypeFor[T]())
	return ok && w.Has(e, id)
}

// RemoveComponent removes T from e. Removing an absent component does
// nothing.
func RemoveComponent[T any](w *World, e Entity) {
	id, ok := w.lookupComponent(reflect.TypeFor[T]())
	if !ok {
		return
	}
	w.Remove(e, id)
}

// AddTag adds the zero-sized component T to e.
func AddTag[T any](w *World, e Entity) {
	w.Add(e, RegisterComponent[T](w))
}

// Has reports whether e holds component id.
func (w *World) Has(e Entity, id ComponentID) bool {
	t := w.tableOf(e)
	return t != nil && t.mask.has(id)
}

// Get returns the address of e's component id, or nil.
func (w *World) Get(e Entity, id ComponentID) unsafe.Pointer {
	if !w.IsValid(e) {
		return nil
	}
	return w.componentPtr(e, id)
}

// Add gives e a zero value of component id without emitting OnSet.
func (w *World) Add(e Entity, id ComponentID) {
	w.set(e, id, nil)
}

// SetPointer copies the value at src into e's component id. src must point
// to a value of the registered type.
func (w *World) SetPointer(e Entity, id ComponentID, src unsafe.Pointer) {
	w.set(e, id, src)
}

// Remove takes component id away from e.
func (w *World) Remove(e Entity, id ComponentID) {
	if !w.IsValid(e) {
		return
	}
	if w.structuralLocked("Remove") {
		w.enqueue(func() { w.Remove(e, id) })
		return
	}
	t := w.tableOf(e)
	if t == nil || !t.mask.has(id) {
		return
	}
	w.lockTables()
	defer w.unlockTables()
	w.emit(OnRemove, id, e, t)
	if s := w.sparse[id]; s != nil {
		s.remove(e.ID)
	}
	w.moveEntity(e, w.tableWithout(t, id))
	w.mutationVersion++
}

// set writes value (or nothing, when nil) into e's component id. Writes to a
// component e already holds happen in place even under lock.
func (w *World) set(e Entity, id ComponentID, value unsafe.Pointer) {
	if !w.IsValid(e) {
		return
	}
	info := w.components.info(id)
	if p := w.componentPtr(e, id); p != nil {
		if value == nil {
			return
		}
		copyValue(info, p, value)
		if w.observers.any(OnSet) {
			w.lockTables()
			defer w.unlockTables()
			w.emit(OnSet, id, e, w.tableOf(e))
		}
		return
	}
	if w.structuralLocked("Set") {
		held := cloneValue(info, value)
		w.enqueue(func() { w.set(e, id, held) })
		return
	}
	w.lockTables()
	defer w.unlockTables()
	w.markUsed(id)
	src := w.tableOf(e)
	if src == nil {
		src = w.tables.list[0]
		w.place(e, src)
	}
	dst := w.tableWith(src, id)
	w.moveEntity(e, dst)
	if s := w.sparse[id]; s != nil {
		s.add(e.ID)
	}
	w.mutationVersion++
	w.emit(OnAdd, id, e, dst)
	if value != nil {
		copyValue(info, w.componentPtr(e, id), value)
		w.emit(OnSet, id, e, dst)
	}
}

// cloneValue copies the value at p to the heap so a deferred operation can
// outlive the caller's frame.
func cloneValue(info *TypeInfo, p unsafe.Pointer) unsafe.Pointer {
	if p == nil {
		return nil
	}
	v := reflect.New(info.Type)
	copyValue(info, v.UnsafePointer(), p)
	return v.UnsafePointer()
}
