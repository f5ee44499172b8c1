package kumiai

import (
	"reflect"
	"sync"
)

// TypeInfo holds the static facts about a component type. Values are
// computed once per type and shared for the life of the process.
type TypeInfo struct {
	Type        reflect.Type
	FullName    string
	Size        uintptr
	IsTag       bool // no data, presence only
	IsReference bool // holds Go pointers somewhere in its layout
}

var typeInfos sync.Map // reflect.Type -> *TypeInfo

// TypeOf returns the cached TypeInfo for T.
func TypeOf[T any]() *TypeInfo {
	return typeInfoOf(reflect.TypeFor[T]())
}

func typeInfoOf(t reflect.Type) *TypeInfo {
	if v, ok := typeInfos.Load(t); ok {
		return v.(*TypeInfo)
	}
	info := &TypeInfo{
		Type:        t,
		FullName:    fullTypeName(t),
		Size:        t.Size(),
		IsTag:       t.Size() == 0,
		IsReference: holdsPointers(t),
	}
	// Racing first calls compute equal values; the first store wins.
	v, _ := typeInfos.LoadOrStore(t, info)
	return v.(*TypeInfo)
}

func fullTypeName(t reflect.Type) string {
	if t.Name() != "" && t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}

// holdsPointers reports whether values of t contain memory the garbage
// collector has to trace.
func holdsPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.String, reflect.UnsafePointer:
		return true
	case reflect.Array:
		return t.Len() > 0 && holdsPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if holdsPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
