package kumiai

import (
	"fmt"
	"testing"
)

type healEvent struct{ Amount int }

type spawnEvent struct{ Entity Entity }

var busHandlerCounts = []int{1, 16, 256}

func BenchmarkEventBusSubscribeUnsubscribe(b *testing.B) {
	for _, n := range busHandlerCounts {
		b.Run(fmt.Sprintf("%dHandlers", n), func(b *testing.B) {
			bus := &EventBus{}
			for i := 0; i < n; i++ {
				Subscribe(bus, func(damageEvent) {})
			}
			b.ReportAllocs()
			for b.Loop() {
				sub := Subscribe(bus, func(damageEvent) {})
				bus.Unsubscribe(sub)
			}
		})
	}
}

func BenchmarkEventBusPublish(b *testing.B) {
	for _, n := range busHandlerCounts {
		b.Run(fmt.Sprintf("%dHandlers", n), func(b *testing.B) {
			bus := &EventBus{}
			total := 0
			for i := 0; i < n; i++ {
				Subscribe(bus, func(e damageEvent) { total += e.Value })
			}
			b.ReportAllocs()
			for b.Loop() {
				Publish(bus, damageEvent{Value: 1})
			}
		})
	}
}

// Handlers for other types sit in the same map and must not slow down
// delivery of the one being published.
func BenchmarkEventBusPublishMixedTypes(b *testing.B) {
	bus := &EventBus{}
	var damage, heal, spawned int
	for i := 0; i < 64; i++ {
		Subscribe(bus, func(e damageEvent) { damage += e.Value })
		Subscribe(bus, func(e healEvent) { heal += e.Amount })
		Subscribe(bus, func(spawnEvent) { spawned++ })
	}
	b.ReportAllocs()
	for b.Loop() {
		Publish(bus, damageEvent{Value: 1})
		Publish(bus, healEvent{Amount: 1})
		Publish(bus, spawnEvent{})
	}
}

func BenchmarkEventBusPublishFromSystem(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			w := benchMovingWorld(b, size)
			hits := 0
			Subscribe(w.Bus(), func(e damageEvent) { hits += e.Value })
			NewSystemBuilder1[Position](w).Cached().Each(func(p *Position) {
				if p.X < 0 {
					Publish(w.Bus(), damageEvent{Value: 1})
				}
				p.X--
			})
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				w.Progress(1.0 / 60)
			}
		})
	}
}
