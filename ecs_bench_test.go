package kumiai

import (
	"fmt"
	"testing"
	"unsafe"
)

var benchSizes = []int{1000, 10000, 100000}

func benchName(size int) string {
	return fmt.Sprintf("%dK", size/1000)
}

// World Creation Benchmarks
func BenchmarkCreateWorld(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			for b.Loop() {
				_ = newTestWorld(b, WithInitialCapacity(size))
			}
			b.ReportAllocs()
		})
	}
}

// Expansion Benchmarks
func BenchmarkAutoExpand(b *testing.B) {
	for _, initSize := range benchSizes {
		b.Run(benchName(initSize)+"_init_x2", func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				w := newTestWorld(b, WithInitialCapacity(initSize))
				sp := w.Spawner(RegisterComponent[Position](w))
				b.StartTimer()
				for range initSize * 2 {
					sp.Spawn()
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkWorldCreateEntity(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				w := newTestWorld(b, WithInitialCapacity(size))
				b.StartTimer()
				for range size {
					w.CreateEntity()
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkWorldCreateEntities(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				w := newTestWorld(b, WithInitialCapacity(size))
				b.StartTimer()
				w.CreateEntities(size)
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkSpawnerSpawnN(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				w := newTestWorld(b, WithInitialCapacity(size))
				sp := w.Spawner(RegisterComponent[Position](w), RegisterComponent[Velocity](w))
				b.StartTimer()
				sp.SpawnN(size)
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkGetComponent(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			w := newTestWorld(b, WithInitialCapacity(size))
			ents := w.Spawner(RegisterComponent[Position](w)).SpawnN(size)
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				for _, e := range ents {
					GetComponent[Position](w, e).X++
				}
			}
		})
	}
}

func BenchmarkSetComponentExisting(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			w := newTestWorld(b, WithInitialCapacity(size))
			ents := w.Spawner(RegisterComponent[Position](w)).SpawnN(size)
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				for _, e := range ents {
					SetComponent(w, e, Position{X: 1})
				}
			}
		})
	}
}

func BenchmarkSetComponentNew(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				w := newTestWorld(b, WithInitialCapacity(size))
				ents := w.Spawner(RegisterComponent[Position](w)).SpawnN(size)
				b.StartTimer()
				for _, e := range ents {
					SetComponent(w, e, Velocity{X: 1})
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkRemoveComponent(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				w := newTestWorld(b, WithInitialCapacity(size))
				ents := w.Spawner(RegisterComponent[Position](w), RegisterComponent[Velocity](w)).SpawnN(size)
				b.StartTimer()
				for _, e := range ents {
					RemoveComponent[Velocity](w, e)
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkWorldRemoveEntities(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				w := newTestWorld(b, WithInitialCapacity(size))
				ents := w.Spawner(RegisterComponent[Position](w)).SpawnN(size)
				b.StartTimer()
				w.RemoveEntities(ents)
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkDeferredRemoveEntities(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				w := newTestWorld(b, WithInitialCapacity(size))
				w.Spawner(RegisterComponent[Position](w)).SpawnN(size)
				q := NewQueryBuilder1[Position](w).Build()
				b.StartTimer()
				q.EachEntity(func(e Entity, _ *Position) { w.RemoveEntity(e) })
			}
			b.ReportAllocs()
		})
	}
}

func benchMovingWorld(b *testing.B, size int) *World {
	b.Helper()
	w := newTestWorld(b, WithInitialCapacity(size))
	w.Spawner(
		RegisterComponent[Position](w),
		RegisterComponent[Velocity](w),
		RegisterComponent[Health](w),
	).SpawnN(size)
	return w
}

func BenchmarkQueryEach(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			w := benchMovingWorld(b, size)
			q := NewQueryBuilder2[Position, Velocity](w).Cached().Build()
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				q.Each(func(p *Position, v *Velocity) {
					p.X += v.X
					p.Y += v.Y
				})
			}
		})
	}
}

func BenchmarkQueryIterSpan(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			w := benchMovingWorld(b, size)
			q := NewQueryBuilder2[Position, Velocity](w).Cached().Build()
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				q.IterSpan(func(_ *Iter, ps []Position, vs []Velocity) {
					for i := range ps {
						ps[i].X += vs[i].X
						ps[i].Y += vs[i].Y
					}
				})
			}
		})
	}
}

func BenchmarkQueryIterField(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			w := benchMovingWorld(b, size)
			q := NewQueryBuilder3[Position, Velocity, Health](w).Cached().Build()
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				q.Iter(func(it *Iter, ps Field[Position], vs Field[Velocity], hs Field[Health]) {
					for i := 0; i < it.Count(); i++ {
						ps.At(i).X += vs.At(i).X
						hs.At(i).Current++
					}
				})
			}
		})
	}
}

func BenchmarkQueryEachUnsafe(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			w := benchMovingWorld(b, size)
			q := NewQueryBuilder2[Position, Velocity](w).Cached().Build()
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				q.EachUnsafe(func(_ Entity, pp, vp unsafe.Pointer) {
					(*Position)(pp).X += (*Velocity)(vp).X
				})
			}
		})
	}
}

func BenchmarkQuerySparseEach(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			w := newTestWorld(b, WithInitialCapacity(size))
			SetSparse[Marker](w)
			w.Spawner(RegisterComponent[Position](w), RegisterComponent[Marker](w)).SpawnN(size)
			q := NewQueryBuilder2[Position, Marker](w).Cached().Build()
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				q.Each(func(p *Position, m *Marker) { m.Value += int(p.X) })
			}
		})
	}
}

func BenchmarkQueryUncachedEntities(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			w := benchMovingWorld(b, size)
			q := NewQueryBuilder1[Position](w).Build()
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				_ = q.Untyped().Entities()
			}
		})
	}
}

// Cost of the shape check on a typed handle with no matching tables.
func BenchmarkShapeCheck(b *testing.B) {
	w := newTestWorld(b)
	q := NewQueryBuilder4[Position, Velocity, Health, Label](w).Build()
	b.ReportAllocs()
	for b.Loop() {
		q.Each(func(*Position, *Velocity, *Health, *Label) {})
	}
}

func BenchmarkProgress(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			w := benchMovingWorld(b, size)
			NewSystemBuilder2[Position, Velocity](w).Cached().Each(func(p *Position, v *Velocity) {
				p.X += v.X
			})
			NewSystemBuilder1[Health](w).Cached().Kind(PostUpdate).Each(func(h *Health) {
				h.Current++
			})
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				w.Progress(1.0 / 60)
			}
		})
	}
}

func BenchmarkObserverOnSet(b *testing.B) {
	w := newTestWorld(b)
	e := w.CreateEntity()
	SetComponent(w, e, Position{})
	NewObserverBuilder1[Position](w).Event(OnSet).Each(func(*Position) {})
	b.ReportAllocs()
	for b.Loop() {
		SetComponent(w, e, Position{X: 1})
	}
}
