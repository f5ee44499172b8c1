package kumiai

import (
	"reflect"
	"testing"
)

func TestResources(t *testing.T) {
	type testStruct1 struct{ A int }
	type testStruct2 struct{ B int }
	t1 := reflect.TypeFor[testStruct1]()
	t2 := reflect.TypeFor[testStruct2]()

	t.Run("Put and lookup", func(t *testing.T) {
		r := &Resources{}
		res1 := &testStruct1{}
		id := r.put(t1, res1)
		if id != 0 {
			t.Errorf("expected id 0, got %d", id)
		}
		if got, ok := r.lookup(t1); !ok || got != res1 {
			t.Errorf("expected %v, got %v", res1, got)
		}
		if _, ok := r.lookup(t2); ok {
			t.Error("expected no testStruct2")
		}
	})

	t.Run("Put same type replaces", func(t *testing.T) {
		r := &Resources{}
		r.put(t1, &testStruct1{A: 1})
		id := r.put(t1, &testStruct1{A: 2})
		if id != 0 {
			t.Errorf("expected id 0, got %d", id)
		}
		got, _ := r.lookup(t1)
		if got.(*testStruct1).A != 2 {
			t.Errorf("expected replaced value, got %v", got)
		}
		if r.Len() != 1 {
			t.Errorf("expected 1 item, got %d", r.Len())
		}
	})

	t.Run("Put different types", func(t *testing.T) {
		r := &Resources{}
		r.put(t1, &testStruct1{})
		id := r.put(t2, &testStruct2{})
		if id != 1 {
			t.Errorf("expected id 1, got %d", id)
		}
	})

	t.Run("Drop", func(t *testing.T) {
		r := &Resources{}
		r.put(t1, &testStruct1{})
		if !r.drop(t1) {
			t.Error("expected true")
		}
		if r.drop(t1) {
			t.Error("expected false on second drop")
		}
		if _, ok := r.lookup(t1); ok {
			t.Error("expected missing")
		}
	})

	t.Run("Put after drop reuses slot", func(t *testing.T) {
		r := &Resources{}
		id1 := r.put(t1, &testStruct1{})
		r.drop(t1)
		id2 := r.put(t2, &testStruct2{})
		if id2 != id1 {
			t.Errorf("expected reused id %d, got %d", id1, id2)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		r := &Resources{}
		r.put(t1, &testStruct1{})
		r.put(t2, &testStruct2{})
		r.Clear()
		if r.Len() != 0 {
			t.Errorf("expected empty, got %d", r.Len())
		}
		if id := r.put(t2, &testStruct2{}); id != 0 {
			t.Errorf("expected id 0 after clear, got %d", id)
		}
	})
}

func TestSingletons(t *testing.T) {
	type gameClock struct{ Frame int }
	w := newTestWorld(t)
	if GetSingleton[gameClock](w) != nil {
		t.Fatal("expected no clock")
	}
	p := SetSingleton(w, gameClock{Frame: 1})
	p.Frame++
	if got := GetSingleton[gameClock](w); got != p || got.Frame != 2 {
		t.Errorf("expected shared pointer with Frame 2, got %+v", got)
	}
	if !HasSingleton[gameClock](w) {
		t.Error("expected clock")
	}
	if !RemoveSingleton[gameClock](w) || HasSingleton[gameClock](w) {
		t.Error("expected clock removed")
	}
	if w.Singletons().Len() != 0 {
		t.Errorf("expected empty store, got %d", w.Singletons().Len())
	}
}
