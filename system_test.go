package kumiai

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// go test -run ^TestPhaseOrder$ . -count 1
func TestPhaseOrder(t *testing.T) {
	w := newTestWorld(t)
	var order []Phase
	for p := OnStore; ; p-- {
		NewSystemBuilder(w).Kind(p).Run(func(*Iter) { order = append(order, p) })
		if p == OnLoad {
			break
		}
	}
	NewSystemBuilder(w).Run(func(*Iter) { order = append(order, 100) })

	w.Progress(0)
	assert.Equal(t, []Phase{OnLoad, PostLoad, PreUpdate, OnUpdate, 100, OnValidate, PostUpdate, PreStore, OnStore}, order)
	assert.Equal(t, uint64(1), w.Tick())
	assert.Equal(t, "OnValidate", OnValidate.String())
}

// go test -run ^TestSystemRate$ . -count 1
func TestSystemRate(t *testing.T) {
	w := newTestWorld(t)
	runs := 0
	NewSystemBuilder(w).Rate(2).Run(func(*Iter) { runs++ })
	for i := 0; i < 4; i++ {
		w.Progress(0.1)
	}
	assert.Equal(t, 2, runs)
}

// go test -run ^TestSystemInterval$ . -count 1
func TestSystemInterval(t *testing.T) {
	w := newTestWorld(t)
	var seen []float64
	NewSystemBuilder(w).Interval(1).Run(func(it *Iter) { seen = append(seen, it.DeltaTime()) })
	for i := 0; i < 5; i++ {
		w.Progress(0.5)
	}
	assert.Equal(t, []float64{1, 1}, seen)
	assert.Equal(t, 0.5, w.DeltaTime())
}

// go test -run ^TestSystemDisableAndDestroy$ . -count 1
func TestSystemDisableAndDestroy(t *testing.T) {
	w := newTestWorld(t)
	spawnMoving(w, 2)
	rows := 0
	s := NewSystemBuilder1[Position](w).Each(func(*Position) { rows++ })

	s.Disable()
	assert.False(t, s.Enabled())
	w.Progress(0)
	assert.Zero(t, rows)

	s.Run(0)
	assert.Equal(t, 2, rows)

	s.Enable()
	w.Progress(0)
	assert.Equal(t, 4, rows)

	s.Destroy()
	assert.Empty(t, w.Systems(OnUpdate))
	err := recoverError(t, func() { s.Run(0) })
	assert.True(t, errors.Is(err, ErrDestroyed))
}

// go test -run ^TestSystemDefersStructuralChanges$ . -count 1
func TestSystemDefersStructuralChanges(t *testing.T) {
	w := newTestWorld(t)
	ents := spawnMoving(w, 4)
	NewSystemBuilder2[Position, Velocity](w).
		EachEntity(func(e Entity, p *Position, _ *Velocity) {
			if p.X < 2 {
				w.RemoveEntity(e)
			}
		})
	w.Progress(0)
	assert.False(t, w.IsValid(ents[0]))
	assert.False(t, w.IsValid(ents[1]))
	assert.True(t, w.IsValid(ents[2]))
	assert.False(t, w.Locked())
}

// go test -run ^TestSystemQuit$ . -count 1
func TestSystemQuit(t *testing.T) {
	w := newTestWorld(t)
	NewSystemBuilder(w).Run(func(it *Iter) { it.World().Quit() })
	assert.False(t, w.Progress(0))
	assert.True(t, w.ShouldQuit())
}

// go test -run ^TestMultiThreadedSystem$ . -count 1
func TestMultiThreadedSystem(t *testing.T) {
	w := newTestWorld(t, WithThreads(4))
	pid := RegisterComponent[Position](w)
	vid := RegisterComponent[Velocity](w)
	w.Spawner(pid, vid).SpawnN(5*ChunkSize + 7)

	var batches atomic.Int32
	s := NewSystemBuilder2[Position, Velocity](w).
		MultiThreaded(true).
		Iter(func(it *Iter, ps Field[Position], _ Field[Velocity]) {
			batches.Add(1)
			for i := 0; i < ps.Len(); i++ {
				ps.At(i).X++
			}
		})
	w.Progress(0)
	assert.Equal(t, int32(6), batches.Load())

	q := s.Query()
	bad := q.Find(func(p *Position, _ *Velocity) bool { return p.X != 1 })
	assert.True(t, bad.IsZero())
	assert.Zero(t, w.lock.parallel.Load())
}

// go test -run ^TestMultiThreadedPanicPropagates$ . -count 1
func TestMultiThreadedPanicPropagates(t *testing.T) {
	w := newTestWorld(t, WithThreads(2))
	w.Spawner(RegisterComponent[Position](w)).SpawnN(3 * ChunkSize)
	NewSystemBuilder1[Position](w).
		Name("explode").
		MultiThreaded(true).
		Each(func(*Position) { panic("boom") })

	err := recoverError(t, func() { w.Progress(0) })
	assert.Contains(t, err.Error(), "explode")
	assert.False(t, w.Locked())
	assert.Zero(t, w.lock.parallel.Load())
}

// go test -run ^TestMultiThreadedCreateEntityPanics$ . -count 1
func TestMultiThreadedCreateEntityPanics(t *testing.T) {
	w := newTestWorld(t, WithThreads(2))
	w.Spawner(RegisterComponent[Position](w)).SpawnN(2)
	NewSystemBuilder1[Position](w).
		MultiThreaded(true).
		Each(func(*Position) { w.CreateEntity() })

	err := recoverError(t, func() { w.Progress(0) })
	assert.Contains(t, err.Error(), "multi-threaded")
}

// go test -run ^TestAppFrames$ . -count 1
func TestAppFrames(t *testing.T) {
	w := newTestWorld(t)
	var dts []float64
	inits := 0
	err := w.App().
		Frames(3).
		DeltaTime(0.25).
		Threads(2).
		Init(func(w *World) {
			inits++
			NewSystemBuilder(w).Run(func(it *Iter) { dts = append(dts, it.DeltaTime()) })
		}).
		Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, inits)
	assert.Equal(t, []float64{0.25, 0.25, 0.25}, dts)
	assert.Equal(t, uint64(3), w.Tick())
	assert.Equal(t, 2, w.Config().Threads)
}

// go test -run ^TestAppStopsOnCancel$ . -count 1
func TestAppStopsOnCancel(t *testing.T) {
	w := newTestWorld(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	NewSystemBuilder(w).Run(func(it *Iter) {
		if it.World().Tick() == 1 {
			cancel()
		}
	})
	require.NoError(t, w.App().TargetFPS(1000).Run(ctx))
	assert.Equal(t, uint64(2), w.Tick())
}

// go test -run ^TestAppStopsOnQuit$ . -count 1
func TestAppStopsOnQuit(t *testing.T) {
	w := newTestWorld(t)
	NewSystemBuilder(w).Run(func(it *Iter) {
		if it.World().Tick() == 4 {
			it.World().Quit()
		}
	})
	require.NoError(t, w.App().DeltaTime(1).Run(context.Background()))
	assert.Equal(t, uint64(5), w.Tick())
}
