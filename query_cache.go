package kumiai

// queryCache tracks the tables matching an include/exclude mask pair. Tables
// are never deleted, so a refresh only has to look at tables created since
// the last scan.
type queryCache struct {
	world          *World
	include        bitmask256
	exclude        bitmask256
	groupBy        GroupByFunc
	matchingTables []*Table
	groups         []uint64
	scanned        int
	cached         bool
}

func newQueryCache(w *World, include, exclude bitmask256, groupBy GroupByFunc, cached bool) queryCache {
	return queryCache{
		world:   w,
		include: include,
		exclude: exclude,
		groupBy: groupBy,
		cached:  cached,
	}
}

func (c *queryCache) matches(t *Table) bool {
	return t.mask.contains(c.include) && !t.mask.intersects(c.exclude)
}

// IsStale reports whether tables were created since the last scan.
func (c *queryCache) IsStale() bool {
	return c.scanned != len(c.world.tables.list)
}

// updateMatching never writes into the slices it handed out: an iteration
// running under the table lock may still be walking them.
func (c *queryCache) updateMatching() {
	list := c.world.tables.list
	fresh := list[c.scanned:]
	c.scanned = len(list)
	var tables []*Table
	var groups []uint64
	for _, t := range fresh {
		if !c.matches(t) {
			continue
		}
		if tables == nil {
			tables = make([]*Table, len(c.matchingTables), len(c.matchingTables)+len(fresh))
			groups = make([]uint64, len(c.groups), len(c.groups)+len(fresh))
			copy(tables, c.matchingTables)
			copy(groups, c.groups)
		}
		var g uint64
		if c.groupBy != nil {
			g = c.groupBy(t)
		}
		// stable insert after every table of a lower or equal group
		i := len(groups)
		for i > 0 && groups[i-1] > g {
			i--
		}
		tables = append(tables, nil)
		groups = append(groups, 0)
		copy(tables[i+1:], tables[i:])
		copy(groups[i+1:], groups[i:])
		tables[i] = t
		groups[i] = g
	}
	if tables != nil {
		c.matchingTables, c.groups = tables, groups
	}
}

func (c *queryCache) reset() {
	c.matchingTables = nil
	c.groups = nil
	c.scanned = 0
}

// tables returns the matching tables in iteration order. Uncached queries
// rescan every time.
func (c *queryCache) tables() ([]*Table, []uint64) {
	if !c.cached {
		c.reset()
	}
	if c.IsStale() {
		c.updateMatching()
	}
	return c.matchingTables, c.groups
}
