package kumiai

// Spawner creates entities directly in the table of a fixed component set,
// skipping the per-component moves SetComponent would do.
type Spawner struct {
	world *World
	table *Table
	ids   []ComponentID
}

// Spawner returns a spawner for entities holding exactly ids. Components
// start zeroed.
func (w *World) Spawner(ids ...ComponentID) *Spawner {
	var mask bitmask256
	for _, id := range ids {
		w.markUsed(id)
		mask.set(id)
	}
	t := w.getOrCreateTable(mask)
	return &Spawner{world: w, table: t, ids: t.ids}
}

// Table returns the table spawned entities are placed in.
func (s *Spawner) Table() *Table {
	return s.table
}

// Spawn creates one entity.
func (s *Spawner) Spawn() Entity {
	return s.SpawnN(1)[0]
}

// SpawnN creates count entities. While tables are locked each entity is
// created and filled through the deferred queue instead.
func (s *Spawner) SpawnN(count int) []Entity {
	if count <= 0 {
		return nil
	}
	w := s.world
	ents := make([]Entity, count)
	if w.structuralLocked("Spawn") {
		for i := range ents {
			e := w.CreateEntity()
			for _, id := range s.ids {
				w.Add(e, id)
			}
			ents[i] = e
		}
		return ents
	}
	if len(w.entities.freeIDs) < count {
		w.expand(count - len(w.entities.freeIDs))
	}
	for i := range ents {
		e := w.allocEntity()
		w.place(e, s.table)
		for _, id := range s.ids {
			if sc := w.sparse[id]; sc != nil {
				sc.add(e.ID)
			}
		}
		ents[i] = e
	}
	if w.observers.any(OnAdd) {
		w.lockTables()
		defer w.unlockTables()
		for _, e := range ents {
			for _, id := range s.ids {
				w.emit(OnAdd, id, e, s.table)
			}
		}
	}
	return ents
}
