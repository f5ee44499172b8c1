package kumiai

import (
	"reflect"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// go test -run ^TestTypeOf$ . -count 1
func TestTypeOf(t *testing.T) {
	pos := TypeOf[Position]()
	assert.Equal(t, "github.com/edwinsyarief/kumiai.Position", pos.FullName)
	assert.Equal(t, unsafe.Sizeof(Position{}), pos.Size)
	assert.False(t, pos.IsTag)
	assert.False(t, pos.IsReference)

	tag := TypeOf[Frozen]()
	assert.True(t, tag.IsTag)
	assert.False(t, tag.IsReference)

	assert.True(t, TypeOf[Label]().IsReference)
	assert.True(t, TypeOf[Sprite]().IsReference)
	assert.Equal(t, "[]int", TypeOf[[]int]().FullName)
}

// go test -run ^TestHoldsPointers$ . -count 1
func TestHoldsPointers(t *testing.T) {
	cases := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{"int", reflect.TypeFor[int](), false},
		{"array of float", reflect.TypeFor[[4]float64](), false},
		{"empty array of pointers", reflect.TypeFor[[0]*int](), false},
		{"pointer", reflect.TypeFor[*int](), true},
		{"string", reflect.TypeFor[string](), true},
		{"slice", reflect.TypeFor[[]byte](), true},
		{"map", reflect.TypeFor[map[int]int](), true},
		{"chan", reflect.TypeFor[chan int](), true},
		{"func", reflect.TypeFor[func()](), true},
		{"interface", reflect.TypeFor[any](), true},
		{"unsafe pointer", reflect.TypeFor[unsafe.Pointer](), true},
		{"nested struct", reflect.TypeFor[struct{ A struct{ B [2]string } }](), true},
		{"flat struct", reflect.TypeFor[struct{ A, B int32 }](), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, holdsPointers(tc.typ))
		})
	}
}

// go test -run ^TestTypeOfConcurrent$ . -count 1 -race
func TestTypeOfConcurrent(t *testing.T) {
	type racer struct{ A, B int64 }
	const n = 64
	got := make([]*TypeInfo, n)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			got[i] = TypeOf[racer]()
		}()
	}
	close(start)
	wg.Wait()
	for _, info := range got {
		require.Same(t, got[0], info)
	}
	assert.Equal(t, uintptr(16), got[0].Size)
}
