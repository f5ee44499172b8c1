package kumiai

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

// AppBuilder configures the main loop of a World.
type AppBuilder struct {
	world     *World
	targetFPS float64
	frames    int
	deltaTime float64
	threads   int
	init      func(w *World)
}

// App returns a runner for w.
func (w *World) App() *AppBuilder {
	return &AppBuilder{world: w}
}

// TargetFPS caps the frame rate. Zero runs as fast as possible.
func (a *AppBuilder) TargetFPS(fps float64) *AppBuilder {
	a.targetFPS = fps
	return a
}

// Frames stops the loop after n frames. Zero runs until Quit or the context
// ends.
func (a *AppBuilder) Frames(n int) *AppBuilder {
	a.frames = n
	return a
}

// DeltaTime fixes the dt passed to Progress instead of measuring it.
func (a *AppBuilder) DeltaTime(dt float64) *AppBuilder {
	a.deltaTime = dt
	return a
}

// Threads overrides Config.Threads for multi-threaded systems.
func (a *AppBuilder) Threads(n int) *AppBuilder {
	a.threads = n
	return a
}

// Init registers a function run once before the first frame.
func (a *AppBuilder) Init(fn func(w *World)) *AppBuilder {
	a.init = fn
	return a
}

// Run drives Progress until Quit is called, the frame budget is spent or ctx
// ends. Context cancellation is not an error.
func (a *AppBuilder) Run(ctx context.Context) error {
	w := a.world
	if a.threads > 0 {
		w.cfg.Threads = a.threads
	}
	if a.init != nil {
		a.init(w)
	}
	var limiter *rate.Limiter
	if a.targetFPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(a.targetFPS), 1)
	}
	w.logger.Info().
		Float64("target_fps", a.targetFPS).
		Int("frames", a.frames).
		Int("threads", w.cfg.Threads).
		Msg("app started")
	last := time.Now()
	frame := 0
	for a.frames == 0 || frame < a.frames {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				if ctx.Err() != nil {
					break
				}
				return eris.Wrap(err, "frame limiter")
			}
		}
		if ctx.Err() != nil {
			break
		}
		now := time.Now()
		dt := a.deltaTime
		if dt == 0 {
			dt = now.Sub(last).Seconds()
		}
		last = now
		frame++
		if !w.Progress(dt) {
			break
		}
	}
	w.logger.Info().Int("frames", frame).Uint64("tick", w.tick).Msg("app stopped")
	return nil
}
