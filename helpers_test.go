package kumiai

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// --- Test Components ---
type Position struct{ X, Y float32 }
type Velocity struct{ X, Y float32 }
type Health struct{ Current, Max int }
type Label struct{ Text string }
type Sprite struct{ Frames []int }
type Marker struct{ Value int }
type Frozen struct{}
type Stunned struct{}

func newTestWorld(t testing.TB, opts ...Option) *World {
	t.Helper()
	opts = append([]Option{WithLogger(zerolog.Nop()), WithInitialCapacity(16)}, opts...)
	return NewWorld(opts...)
}

// spawnMoving creates n entities holding Position{i, 0} and Velocity{1, 2}.
func spawnMoving(w *World, n int) []Entity {
	ents := make([]Entity, n)
	for i := range ents {
		e := w.CreateEntity()
		SetComponent(w, e, Position{X: float32(i)})
		SetComponent(w, e, Velocity{X: 1, Y: 2})
		ents[i] = e
	}
	return ents
}

// recoverError runs fn and returns the error it panicked with.
func recoverError(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		var ok bool
		err, ok = r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
	}()
	fn()
	return nil
}

func recoverValidation(t *testing.T, fn func()) *ValidationError {
	t.Helper()
	err := recoverError(t, fn)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "panic %v is not a *ValidationError", err)
	return verr
}

type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *logBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *logBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newBufferLogger(b *logBuffer) zerolog.Logger {
	return zerolog.New(b)
}
