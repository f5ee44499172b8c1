// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/edwinsyarief/kumiai"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := kumiai.NewWorld(
			kumiai.WithInitialCapacity(numEntities),
			kumiai.WithLogger(zerolog.Nop()),
		)
		query := kumiai.NewQueryBuilder2[comp1, comp2](w).Cached().Build()
		spawner := w.Spawner(kumiai.RegisterComponent[comp1](w), kumiai.RegisterComponent[comp2](w))

		for range iters {
			spawner.SpawnN(numEntities)
			// removals are deferred until the iteration ends
			query.EachEntity(func(e kumiai.Entity, c1 *comp1, c2 *comp2) {
				c1.V += c2.V
				c1.W += c2.W
				w.RemoveEntity(e)
			})
		}
	}
}
