package kumiai

import (
	"os"

	"github.com/rs/zerolog"
)

func newLogger(base *zerolog.Logger, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if base != nil {
		return base.Level(lvl)
	}
	return zerolog.New(os.Stderr).
		Level(lvl).
		With().
		Timestamp().
		Str("module", "kumiai").
		Logger()
}

// Logger returns the world's logger.
func (w *World) Logger() *zerolog.Logger {
	return &w.logger
}

// LogComponents writes the component registry to the logger at the given
// level, one array entry per registered type.
func (w *World) LogComponents(level zerolog.Level) {
	arr := zerolog.Arr()
	w.components.mu.RLock()
	for id := 0; id < w.components.count; id++ {
		c := w.components.entries[id]
		arr.Dict(zerolog.Dict().
			Int("id", id).
			Str("name", c.info.FullName).
			Uint64("size", uint64(c.info.Size)).
			Bool("sparse", c.sparse))
	}
	w.components.mu.RUnlock()
	w.logger.WithLevel(level).Array("components", arr).Msg("registered components")
}

// LogTables writes one entry per table with its entity count.
func (w *World) LogTables(level zerolog.Level) {
	arr := zerolog.Arr()
	for _, t := range w.tables.list {
		ids := make([]int, len(t.ids))
		for i, id := range t.ids {
			ids[i] = int(id)
		}
		arr.Dict(zerolog.Dict().
			Int("index", t.index).
			Ints("components", ids).
			Int("entities", t.size))
	}
	w.logger.WithLevel(level).Array("tables", arr).Msg("tables")
}
