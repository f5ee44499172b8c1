package kumiai

import (
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// go test -run ^TestDefaultConfig$ . -count 1
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 1024, cfg.InitialCapacity)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Threads)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.RejectLockedMutation)
}

// go test -run ^TestLoadConfigFromEnv$ . -count 1
func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("KUMIAI_THREADS", "3")
	t.Setenv("KUMIAI_INITIAL_CAPACITY", "64")
	t.Setenv("KUMIAI_LOG_LEVEL", "warn")
	t.Setenv("KUMIAI_REJECT_LOCKED_MUTATION", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Config{
		InitialCapacity:      64,
		Threads:              3,
		LogLevel:             "warn",
		RejectLockedMutation: true,
	}, cfg)

	w := NewWorldFromConfig(cfg)
	assert.Equal(t, cfg, w.Config())
}

// go test -run ^TestLoadConfigInvalid$ . -count 1
func TestLoadConfigInvalid(t *testing.T) {
	t.Run("level", func(t *testing.T) {
		t.Setenv("KUMIAI_LOG_LEVEL", "loud")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "invalid log level")
	})
	t.Run("threads", func(t *testing.T) {
		t.Setenv("KUMIAI_THREADS", "-2")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "thread count")
	})
}

// go test -run ^TestWorldOptions$ . -count 1
func TestWorldOptions(t *testing.T) {
	w := newTestWorld(t, WithThreads(0), WithLogLevel("debug"))
	assert.Equal(t, 1, w.Config().Threads)
	assert.Equal(t, "debug", w.Config().LogLevel)
	assert.NotNil(t, w.Logger())
}

// go test -run ^TestLogTables$ . -count 1
func TestLogTables(t *testing.T) {
	var buf logBuffer
	w := NewWorld(WithLogger(newBufferLogger(&buf)), WithLogLevel("debug"))
	spawnMoving(w, 2)
	w.LogComponents(zerolog.InfoLevel)
	w.LogTables(zerolog.InfoLevel)
	out := buf.String()
	assert.Contains(t, out, TypeOf[Velocity]().FullName)
	assert.Contains(t, out, `"entities":2`)
	assert.Contains(t, out, "component registered")
}
