package kumiai

// Entity is a recyclable 32-bit ID paired with a version. The zero Entity is
// never valid and is what Find returns when nothing matches.
type Entity struct {
	ID      uint32
	Version uint32
}

// IsZero reports whether e is the zero Entity.
func (e Entity) IsZero() bool {
	return e.ID == 0 && e.Version == 0
}

// entityMeta locates a live entity. table is -1 while the entity waits for a
// deferred placement.
type entityMeta struct {
	table   int
	chunk   int
	row     int
	version uint32
}

func (m *entityMeta) clear() {
	m.table = -1
	m.chunk = -1
	m.row = -1
	m.version = 0
}
