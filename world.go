package kumiai

import (
	"slices"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

const (
	// MaxComponentTypes is the number of component types one World can hold.
	MaxComponentTypes = 256
	// ChunkSize is the row capacity of a chunk. One chunk is one batch.
	ChunkSize = 1024
	// MaxArity is the largest tuple the generated builder families accept.
	MaxArity = 8
)

// chunk holds ChunkSize rows of one table.
type chunk struct {
	entities [ChunkSize]Entity
	columns  [MaxComponentTypes]unsafe.Pointer
	size     int
}

func (c *chunk) at(id ComponentID, row int, size uintptr) unsafe.Pointer {
	return unsafe.Add(c.columns[id], uintptr(row)*size)
}

// Table stores every entity whose component set equals its mask. Dense
// components live in per-chunk columns; sparse components and tags only
// contribute their bit.
type Table struct {
	chunks  []*chunk
	ids     []ComponentID // every component, ascending
	columns []ComponentID // components with a chunk column
	infos   [MaxComponentTypes]*TypeInfo
	mask    bitmask256
	index   int
	size    int
	add     map[ComponentID]*Table
	remove  map[ComponentID]*Table
}

// Has reports whether the table's entities hold component id.
func (t *Table) Has(id ComponentID) bool {
	return t.mask.has(id)
}

// Count returns the number of entities stored in t.
func (t *Table) Count() int {
	return t.size
}

// Type returns the table's component IDs in ascending order.
func (t *Table) Type() []ComponentID {
	return slices.Clone(t.ids)
}

type entityRegistry struct {
	freeIDs     []uint32
	metas       []entityMeta
	nextVersion uint32
}

type tableRegistry struct {
	byMask  map[bitmask256]int
	list    []*Table
	version uint32 // bumped when a table is created
}

// World owns all entities, component storage, queries, systems and
// observers.
type World struct {
	cfg        Config
	logger     zerolog.Logger
	components componentRegistry
	entities   entityRegistry
	tables     tableRegistry
	sparse     [MaxComponentTypes]*sparseColumn
	lock       tableLock

	namesMu     sync.RWMutex
	names       map[string]Entity
	entityNames map[uint32]string

	singletons *Resources
	bus        *EventBus
	observers  observerRegistry
	pipeline   pipeline

	deltaTime float64
	tick      uint64
	quit      atomic.Bool

	mutationVersion uint64
}

// NewWorld creates a World from DefaultConfig and the given options.
func NewWorld(opts ...Option) *World {
	o := worldOptions{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	return newWorld(o)
}

// NewWorldFromConfig creates a World from cfg, typically one returned by
// LoadConfig.
func NewWorldFromConfig(cfg Config) *World {
	return NewWorld(WithConfig(cfg))
}

func newWorld(o worldOptions) *World {
	capacity := max(o.cfg.InitialCapacity, 0)
	if o.cfg.Threads <= 0 {
		o.cfg.Threads = 1
	}
	w := &World{
		cfg:        o.cfg,
		logger:     newLogger(o.logger, o.cfg.LogLevel),
		components: newComponentRegistry(),
		entities: entityRegistry{
			freeIDs:     make([]uint32, capacity),
			metas:       make([]entityMeta, capacity),
			nextVersion: 1,
		},
		tables: tableRegistry{
			byMask: make(map[bitmask256]int),
			list:   make([]*Table, 0, 16),
		},
		names:       make(map[string]Entity),
		entityNames: make(map[uint32]string),
		singletons:  &Resources{},
		bus:         &EventBus{},
		observers:   newObserverRegistry(),
	}
	for i := range w.entities.freeIDs {
		w.entities.freeIDs[i] = uint32(capacity - 1 - i)
	}
	for i := range w.entities.metas {
		w.entities.metas[i].clear()
	}
	w.getOrCreateTable(bitmask256{})
	w.logger.Debug().
		Int("capacity", capacity).
		Int("threads", w.cfg.Threads).
		Bool("reject_locked_mutation", w.cfg.RejectLockedMutation).
		Msg("world created")
	return w
}

// Config returns the configuration the world was created with.
func (w *World) Config() Config {
	return w.cfg
}

// Bus returns the world's application message bus.
func (w *World) Bus() *EventBus {
	return w.bus
}

// IsValid reports whether e is alive. Stale handles to recycled IDs are not.
func (w *World) IsValid(e Entity) bool {
	if int(e.ID) >= len(w.entities.metas) {
		return false
	}
	meta := &w.entities.metas[e.ID]
	return meta.version != 0 && meta.version == e.Version
}

// Count returns the number of live entities.
func (w *World) Count() int {
	return len(w.entities.metas) - len(w.entities.freeIDs)
}

// Tables returns every table created so far, in creation order.
func (w *World) Tables() []*Table {
	return slices.Clone(w.tables.list)
}

func (w *World) getOrCreateTable(mask bitmask256) *Table {
	if idx, ok := w.tables.byMask[mask]; ok {
		return w.tables.list[idx]
	}
	t := &Table{
		index:  len(w.tables.list),
		mask:   mask,
		chunks: make([]*chunk, 0, 4),
		add:    make(map[ComponentID]*Table),
		remove: make(map[ComponentID]*Table),
	}
	for id := 0; id < MaxComponentTypes; id++ {
		cid := ComponentID(id)
		if !mask.has(cid) {
			continue
		}
		info := w.components.info(cid)
		t.ids = append(t.ids, cid)
		t.infos[cid] = info
		if !info.IsTag && !w.IsSparse(cid) {
			t.columns = append(t.columns, cid)
		}
	}
	w.tables.list = append(w.tables.list, t)
	w.tables.byMask[mask] = t.index
	w.tables.version++
	if t.index > 0 {
		w.logger.Debug().
			Int("table", t.index).
			Int("components", len(t.ids)).
			Int("columns", len(t.columns)).
			Msg("table created")
	}
	return t
}

func (w *World) tableWith(t *Table, id ComponentID) *Table {
	if dst, ok := t.add[id]; ok {
		return dst
	}
	mask := t.mask
	mask.set(id)
	dst := w.getOrCreateTable(mask)
	t.add[id] = dst
	return dst
}

func (w *World) tableWithout(t *Table, id ComponentID) *Table {
	if dst, ok := t.remove[id]; ok {
		return dst
	}
	mask := t.mask
	mask.unset(id)
	dst := w.getOrCreateTable(mask)
	t.remove[id] = dst
	return dst
}

func (w *World) newChunk(t *Table) *chunk {
	c := &chunk{}
	for _, id := range t.columns {
		c.columns[id] = makeColumn(t.infos[id], ChunkSize)
	}
	return c
}

// expand grows the entity registry by at least additional slots.
func (w *World) expand(additional int) {
	oldCap := len(w.entities.metas)
	newCap := max(oldCap*2, oldCap+additional, 1)
	delta := newCap - oldCap
	grown := make([]entityMeta, delta)
	for i := range grown {
		grown[i].clear()
	}
	w.entities.metas = append(w.entities.metas, grown...)
	for i := range delta {
		w.entities.freeIDs = append(w.entities.freeIDs, uint32(newCap-1-i))
	}
}

// allocEntity reserves an ID and version without placing the entity in a
// table.
func (w *World) allocEntity() Entity {
	if len(w.entities.freeIDs) == 0 {
		w.expand(1)
	}
	last := len(w.entities.freeIDs) - 1
	id := w.entities.freeIDs[last]
	w.entities.freeIDs = w.entities.freeIDs[:last]
	meta := &w.entities.metas[id]
	meta.version = w.entities.nextVersion
	w.entities.nextVersion++
	if w.entities.nextVersion == 0 {
		w.entities.nextVersion = 1
	}
	return Entity{ID: id, Version: meta.version}
}

// appendRow places e at the end of t and returns its location.
func (t *Table) appendRow(w *World, e Entity) (int, int) {
	if len(t.chunks) == 0 || t.chunks[len(t.chunks)-1].size == ChunkSize {
		t.chunks = append(t.chunks, w.newChunk(t))
	}
	ci := len(t.chunks) - 1
	c := t.chunks[ci]
	row := c.size
	c.entities[row] = e
	c.size++
	t.size++
	return ci, row
}

func (w *World) place(e Entity, t *Table) {
	meta := &w.entities.metas[e.ID]
	ci, row := t.appendRow(w, e)
	meta.table = t.index
	meta.chunk = ci
	meta.row = row
	w.mutationVersion++
}

// CreateEntity creates an entity with no components. While tables are
// locked the entity is valid at once but joins the empty table when the
// deferred queue flushes.
func (w *World) CreateEntity() Entity {
	locked := w.structuralLocked("CreateEntity")
	if locked && w.lock.parallel.Load() > 0 {
		panic(eris.Wrap(ErrTableLocked, "CreateEntity from a multi-threaded system"))
	}
	e := w.allocEntity()
	if locked {
		w.enqueue(func() { w.placePending(e) })
		return e
	}
	w.place(e, w.tables.list[0])
	return e
}

func (w *World) placePending(e Entity) {
	if w.IsValid(e) && w.entities.metas[e.ID].table < 0 {
		w.place(e, w.tables.list[0])
	}
}

// CreateEntities creates count empty entities.
func (w *World) CreateEntities(count int) []Entity {
	if count <= 0 {
		return nil
	}
	ents := make([]Entity, count)
	if w.structuralLocked("CreateEntities") {
		for i := range ents {
			ents[i] = w.CreateEntity()
		}
		return ents
	}
	if len(w.entities.freeIDs) < count {
		w.expand(count - len(w.entities.freeIDs))
	}
	empty := w.tables.list[0]
	for i := range ents {
		ents[i] = w.allocEntity()
		w.place(ents[i], empty)
	}
	return ents
}

// RemoveEntity destroys e, emitting OnRemove for each of its components
// first. Invalid entities are ignored.
func (w *World) RemoveEntity(e Entity) {
	if !w.IsValid(e) {
		return
	}
	if w.structuralLocked("RemoveEntity") {
		w.enqueue(func() { w.RemoveEntity(e) })
		return
	}
	w.lockTables()
	defer w.unlockTables()
	if t := w.tableOf(e); t != nil {
		w.emitRemoveAll(e, t)
		for _, id := range t.ids {
			if s := w.sparse[id]; s != nil {
				s.remove(e.ID)
			}
		}
		// observers may have grown the registry
		w.removeRow(t, &w.entities.metas[e.ID])
	}
	w.entities.metas[e.ID].clear()
	w.entities.freeIDs = append(w.entities.freeIDs, e.ID)
	w.clearName(e)
	w.mutationVersion++
}

// RemoveEntities destroys every entity in ents.
func (w *World) RemoveEntities(ents []Entity) {
	for _, e := range ents {
		w.RemoveEntity(e)
	}
}

// removeRow unlinks meta's row from t by moving the table's last row of
// the same chunk into the hole. The entity ID and version are untouched.
func (w *World) removeRow(t *Table, meta *entityMeta) {
	ci := meta.chunk
	c := t.chunks[ci]
	row := meta.row
	last := c.size - 1
	if row < last {
		moved := c.entities[last]
		c.entities[row] = moved
		for _, id := range t.columns {
			info := t.infos[id]
			copyValue(info, c.at(id, row, info.Size), c.at(id, last, info.Size))
		}
		w.entities.metas[moved.ID].row = row
	}
	// appended rows must start zeroed
	for _, id := range t.columns {
		info := t.infos[id]
		zeroValue(info, c.at(id, last, info.Size))
	}
	c.entities[last] = Entity{}
	c.size--
	t.size--
	if c.size == 0 {
		lastChunk := len(t.chunks) - 1
		if ci < lastChunk {
			t.chunks[ci] = t.chunks[lastChunk]
			swapped := t.chunks[ci]
			for j := 0; j < swapped.size; j++ {
				w.entities.metas[swapped.entities[j].ID].chunk = ci
			}
		}
		t.chunks[lastChunk] = nil
		t.chunks = t.chunks[:lastChunk]
	}
	w.mutationVersion++
}

// moveEntity transfers e's row to dst, copying every column both tables
// share.
func (w *World) moveEntity(e Entity, dst *Table) {
	meta := &w.entities.metas[e.ID]
	src := w.tables.list[meta.table]
	ci, row := dst.appendRow(w, e)
	sc := src.chunks[meta.chunk]
	dc := dst.chunks[ci]
	for _, id := range src.columns {
		if !dst.mask.has(id) {
			continue
		}
		info := src.infos[id]
		copyValue(info, dc.at(id, row, info.Size), sc.at(id, meta.row, info.Size))
	}
	w.removeRow(src, meta)
	meta.table = dst.index
	meta.chunk = ci
	meta.row = row
}

// componentPtr returns the address of component id on a placed entity, or
// nil when the entity does not hold it.
func (w *World) componentPtr(e Entity, id ComponentID) unsafe.Pointer {
	meta := &w.entities.metas[e.ID]
	if meta.table < 0 {
		return nil
	}
	t := w.tables.list[meta.table]
	if !t.mask.has(id) {
		return nil
	}
	if s := w.sparse[id]; s != nil {
		return s.get(e.ID)
	}
	info := t.infos[id]
	if info.IsTag {
		return unsafe.Pointer(&tagSentinel)
	}
	return t.chunks[meta.chunk].at(id, meta.row, info.Size)
}

// tableOf returns the table e lives in, or nil for pending or dead entities.
func (w *World) tableOf(e Entity) *Table {
	if !w.IsValid(e) {
		return nil
	}
	meta := &w.entities.metas[e.ID]
	if meta.table < 0 {
		return nil
	}
	return w.tables.list[meta.table]
}

// SetName attaches a unique name to e. An empty name clears it.
func (w *World) SetName(e Entity, name string) {
	if !w.IsValid(e) {
		return
	}
	w.namesMu.Lock()
	defer w.namesMu.Unlock()
	if old, ok := w.entityNames[e.ID]; ok {
		delete(w.names, old)
		delete(w.entityNames, e.ID)
	}
	if name == "" {
		return
	}
	if prev, ok := w.names[name]; ok {
		delete(w.entityNames, prev.ID)
	}
	w.names[name] = e
	w.entityNames[e.ID] = name
}

// Name returns the name of e, or "" if it has none.
func (w *World) Name(e Entity) string {
	if !w.IsValid(e) {
		return ""
	}
	w.namesMu.RLock()
	defer w.namesMu.RUnlock()
	return w.entityNames[e.ID]
}

// Lookup finds a live entity by name.
func (w *World) Lookup(name string) (Entity, bool) {
	w.namesMu.RLock()
	e, ok := w.names[name]
	w.namesMu.RUnlock()
	if !ok || !w.IsValid(e) {
		return Entity{}, false
	}
	return e, true
}

func (w *World) clearName(e Entity) {
	w.namesMu.Lock()
	if name, ok := w.entityNames[e.ID]; ok {
		delete(w.names, name)
		delete(w.entityNames, e.ID)
	}
	w.namesMu.Unlock()
}
