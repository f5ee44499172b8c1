package kumiai

import (
	"sync"
	"sync/atomic"

	"github.com/rotisserie/eris"
)

// tableLock counts active iterations. While depth is non-zero the table
// layout is frozen and structural changes wait in queue.
type tableLock struct {
	mu       sync.Mutex
	depth    int
	queue    []func()
	flushing bool
	parallel atomic.Int32 // multi-threaded systems in flight
}

func (w *World) lockTables() {
	w.lock.mu.Lock()
	w.lock.depth++
	w.lock.mu.Unlock()
}

func (w *World) unlockTables() {
	w.lock.mu.Lock()
	if w.lock.depth == 0 {
		w.lock.mu.Unlock()
		panic(eris.Wrap(ErrUnbalancedLock, "unlockTables"))
	}
	w.lock.depth--
	flush := w.lock.depth == 0 && !w.lock.flushing && len(w.lock.queue) > 0
	if flush {
		w.lock.flushing = true
	}
	w.lock.mu.Unlock()
	if flush {
		w.flush()
	}
}

// Locked reports whether tables are currently locked by an iteration.
func (w *World) Locked() bool {
	w.lock.mu.Lock()
	defer w.lock.mu.Unlock()
	return w.lock.depth > 0
}

// structuralLocked reports whether a structural change named op has to be
// deferred. Under RejectLockedMutation it panics instead.
func (w *World) structuralLocked(op string) bool {
	w.lock.mu.Lock()
	locked := w.lock.depth > 0
	w.lock.mu.Unlock()
	if locked && w.cfg.RejectLockedMutation {
		panic(eris.Wrapf(ErrTableLocked, "%s", op))
	}
	return locked
}

func (w *World) enqueue(op func()) {
	w.lock.mu.Lock()
	w.lock.queue = append(w.lock.queue, op)
	w.lock.mu.Unlock()
}

// flush runs queued operations in FIFO order. Operations queued while
// flushing are picked up by the same loop.
func (w *World) flush() {
	n := 0
	defer func() {
		w.lock.mu.Lock()
		w.lock.flushing = false
		w.lock.mu.Unlock()
	}()
	for {
		w.lock.mu.Lock()
		if len(w.lock.queue) == 0 || w.lock.depth > 0 {
			w.lock.mu.Unlock()
			break
		}
		op := w.lock.queue[0]
		w.lock.queue[0] = nil
		w.lock.queue = w.lock.queue[1:]
		w.lock.mu.Unlock()
		op()
		n++
	}
	if n > 0 {
		w.logger.Debug().Int("operations", n).Msg("deferred operations flushed")
	}
}

// Defer runs fn with tables locked. Structural changes made inside fn are
// applied in order once fn returns.
func (w *World) Defer(fn func()) {
	w.lockTables()
	defer w.unlockTables()
	fn()
}

// Pending returns the number of queued structural operations.
func (w *World) Pending() int {
	w.lock.mu.Lock()
	defer w.lock.mu.Unlock()
	return len(w.lock.queue)
}
