package kumiai

import (
	"fmt"

	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"
)

// Phase orders systems inside one Progress call.
type Phase uint8

const (
	OnLoad Phase = iota
	PostLoad
	PreUpdate
	OnUpdate
	OnValidate
	PostUpdate
	PreStore
	OnStore

	phaseCount
)

var phaseNames = [phaseCount]string{
	"OnLoad", "PostLoad", "PreUpdate", "OnUpdate",
	"OnValidate", "PostUpdate", "PreStore", "OnStore",
}

func (p Phase) String() string {
	if p < phaseCount {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", p)
}

type pipeline struct {
	phases [phaseCount][]*System
}

func (p *pipeline) add(s *System) {
	p.phases[s.phase] = append(p.phases[s.phase], s)
}

func (p *pipeline) remove(s *System) {
	list := p.phases[s.phase]
	for i, other := range list {
		if other == s {
			p.phases[s.phase] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// System is a query plus a callback run by Progress.
type System struct {
	world     *World
	name      string
	query     *Query
	phase     Phase
	interval  float64
	rate      int
	multi     bool
	sink      callbackSink
	enabled   bool
	destroyed bool

	elapsed float64
	ticks   uint64
}

// Name returns the system's name.
func (s *System) Name() string { return s.name }

// Query returns the system's query.
func (s *System) Query() *Query { return s.query }

// Phase returns the pipeline phase the system runs in.
func (s *System) Phase() Phase { return s.phase }

// Enable lets Progress run the system.
func (s *System) Enable() { s.enabled = true }

// Disable skips the system in Progress. Run still works.
func (s *System) Disable() { s.enabled = false }

// Enabled reports whether Progress runs the system.
func (s *System) Enabled() bool { return s.enabled }

// Destroy removes the system from the pipeline.
func (s *System) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.world.pipeline.remove(s)
	s.query.Destroy()
}

// due applies interval and rate filtering and returns the delta time the
// system should see.
func (s *System) due(dt float64) (float64, bool) {
	s.ticks++
	if s.rate > 1 && s.ticks%uint64(s.rate) != 0 {
		s.elapsed += dt
		return 0, false
	}
	s.elapsed += dt
	if s.interval > 0 && s.elapsed < s.interval {
		return 0, false
	}
	elapsed := s.elapsed
	if s.interval > 0 {
		s.elapsed -= s.interval
	} else {
		s.elapsed = 0
	}
	return elapsed, true
}

// Run runs the system once with dt, ignoring interval, rate and the enabled
// flag. Structural changes made by the callback are applied on return.
func (s *System) Run(dt float64) {
	if s.destroyed {
		panic(eris.Wrapf(ErrDestroyed, "system %q", s.name))
	}
	w := s.world
	w.lockTables()
	defer w.unlockTables()
	if s.multi && w.cfg.Threads > 1 && s.sink.run == nil {
		s.runParallel(dt)
		return
	}
	it := s.query.newIter(s.query.snapshot())
	defer it.fini()
	it.deltaTime = dt
	s.sink.invoke(it)
}

func (s *System) runParallel(dt float64) {
	w := s.world
	tables := s.query.snapshot()
	n := w.cfg.Threads
	w.lock.parallel.Add(1)
	defer w.lock.parallel.Add(-1)
	var g errgroup.Group
	for worker := 0; worker < n; worker++ {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = eris.Errorf("system %q worker %d: %v", s.name, worker, r)
				}
			}()
			it := s.query.newIter(tables)
			defer it.fini()
			it.deltaTime = dt
			it.worker = worker
			it.workers = n
			for it.Next() {
				s.sink.batch(it)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		w.logger.Error().Err(err).Str("system", s.name).Msg("multi-threaded system failed")
		panic(err)
	}
}

// Progress runs every enabled system once, phase by phase, in registration
// order. It returns false once Quit has been called.
func (w *World) Progress(dt float64) bool {
	w.deltaTime = dt
	for p := range w.pipeline.phases {
		// systems may be created or destroyed by systems
		list := append([]*System(nil), w.pipeline.phases[p]...)
		for _, s := range list {
			if !s.enabled || s.destroyed {
				continue
			}
			if sdt, ok := s.due(dt); ok {
				s.Run(sdt)
			}
		}
	}
	w.tick++
	return !w.quit.Load()
}

// Quit makes the next Progress return false.
func (w *World) Quit() {
	w.quit.Store(true)
}

// ShouldQuit reports whether Quit was called.
func (w *World) ShouldQuit() bool {
	return w.quit.Load()
}

// Tick returns the number of completed Progress calls.
func (w *World) Tick() uint64 {
	return w.tick
}

// DeltaTime returns the dt of the last Progress call.
func (w *World) DeltaTime() float64 {
	return w.deltaTime
}

// Systems returns the systems registered in phase p.
func (w *World) Systems(p Phase) []*System {
	return append([]*System(nil), w.pipeline.phases[p]...)
}
