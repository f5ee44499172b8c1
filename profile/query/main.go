// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

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

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

type comp5 struct {
	V int64
	W int64
}

type comp6 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 10000
	entities := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := kumiai.NewWorld(
			kumiai.WithInitialCapacity(numEntities),
			kumiai.WithLogger(zerolog.Nop()),
		)
		query := kumiai.NewQueryBuilder6[comp1, comp2, comp3, comp4, comp5, comp6](w).Cached().Build()
		w.Spawner(
			kumiai.RegisterComponent[comp1](w),
			kumiai.RegisterComponent[comp2](w),
			kumiai.RegisterComponent[comp3](w),
			kumiai.RegisterComponent[comp4](w),
			kumiai.RegisterComponent[comp5](w),
			kumiai.RegisterComponent[comp6](w),
		).SpawnN(numEntities)

		for range iters {
			query.IterSpan(func(_ *kumiai.Iter, c1 []comp1, c2 []comp2, _ []comp3, _ []comp4, _ []comp5, _ []comp6) {
				for i := range c1 {
					c1[i].V += c2[i].V
					c1[i].W += c2[i].W
				}
			})
		}
	}
}
