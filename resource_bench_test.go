package kumiai

import (
	"fmt"
	"reflect"
	"testing"
)

func BenchmarkResourcesPut(b *testing.B) {
	sizes := []int{1000, 10000, 100000}
	for _, size := range sizes {
		name := fmt.Sprintf("%dK", size/1000)
		b.Run(name, func(b *testing.B) {
			types, reses := generateDistinctTypesAndRes(size)
			r := &Resources{}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < size; i++ {
				r.put(types[i], reses[i])
			}
		})
	}
}

func BenchmarkResourcesLookup(b *testing.B) {
	sizes := []int{1000, 10000, 100000}
	for _, size := range sizes {
		name := fmt.Sprintf("%dK", size/1000)
		b.Run(name, func(b *testing.B) {
			types, reses := generateDistinctTypesAndRes(size)
			r := &Resources{}
			for i := 0; i < size; i++ {
				r.put(types[i], reses[i])
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < size; i++ {
				r.lookup(types[i])
			}
		})
	}
}

func BenchmarkResourcesDrop(b *testing.B) {
	sizes := []int{1000, 10000, 100000}
	for _, size := range sizes {
		name := fmt.Sprintf("%dK", size/1000)
		b.Run(name, func(b *testing.B) {
			types, reses := generateDistinctTypesAndRes(size)
			r := &Resources{}
			for i := 0; i < size; i++ {
				r.put(types[i], reses[i])
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < size; i++ {
				r.drop(types[i])
			}
		})
	}
}

func BenchmarkResourcesClear(b *testing.B) {
	sizes := []int{1000, 10000, 100000}
	for _, size := range sizes {
		name := fmt.Sprintf("%dK", size/1000)
		b.Run(name, func(b *testing.B) {
			types, reses := generateDistinctTypesAndRes(size)
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				b.StopTimer()
				r := &Resources{}
				for j := 0; j < size; j++ {
					r.put(types[j], reses[j])
				}
				b.StartTimer()
				r.Clear()
			}
		})
	}
}

func BenchmarkGetSingleton(b *testing.B) {
	type gameClock struct{ Frame int }
	w := newTestWorld(b)
	SetSingleton(w, gameClock{})
	b.ReportAllocs()
	for b.Loop() {
		GetSingleton[gameClock](w).Frame++
	}
}

func generateDistinctTypesAndRes(n int) ([]reflect.Type, []any) {
	types := make([]reflect.Type, n)
	res := make([]any, n)
	for i := 0; i < n; i++ {
		fields := []reflect.StructField{
			{Name: fmt.Sprintf("F%d", i), Type: reflect.TypeOf(0)},
		}
		types[i] = reflect.StructOf(fields)
		res[i] = reflect.New(types[i]).Interface()
	}
	return types, res
}
