package kumiai

import (
	"reflect"
	"unsafe"

	"github.com/RoaringBitmap/roaring/v2"
)

const sparsePageSize = 256

var tagSentinel struct{}

// sparseColumn stores one sparse component outside the tables. Values live
// in fixed pages so their addresses survive growth; membership is a roaring
// bitmap over entity IDs.
type sparseColumn struct {
	info    *TypeInfo
	members *roaring.Bitmap
	slots   map[uint32]int
	owners  []uint32
	pages   []unsafe.Pointer
}

func newSparseColumn(info *TypeInfo) *sparseColumn {
	return &sparseColumn{
		info:    info,
		members: roaring.New(),
		slots:   make(map[uint32]int),
	}
}

func (s *sparseColumn) at(slot int) unsafe.Pointer {
	if s.info.Size == 0 {
		return unsafe.Pointer(&tagSentinel)
	}
	page := s.pages[slot/sparsePageSize]
	return unsafe.Add(page, uintptr(slot%sparsePageSize)*s.info.Size)
}

func (s *sparseColumn) has(id uint32) bool {
	return s.members.Contains(id)
}

// get returns the value slot of entity id, or nil if it holds none.
func (s *sparseColumn) get(id uint32) unsafe.Pointer {
	slot, ok := s.slots[id]
	if !ok {
		return nil
	}
	return s.at(slot)
}

// add reserves a zeroed slot for id and returns it. Adding twice returns the
// existing slot.
func (s *sparseColumn) add(id uint32) unsafe.Pointer {
	if slot, ok := s.slots[id]; ok {
		return s.at(slot)
	}
	slot := len(s.owners)
	if s.info.Size > 0 && slot/sparsePageSize >= len(s.pages) {
		s.pages = append(s.pages, makeColumn(s.info, sparsePageSize))
	}
	s.owners = append(s.owners, id)
	s.slots[id] = slot
	s.members.Add(id)
	return s.at(slot)
}

// remove releases the slot of id, filling the hole with the last slot.
func (s *sparseColumn) remove(id uint32) {
	slot, ok := s.slots[id]
	if !ok {
		return
	}
	last := len(s.owners) - 1
	if slot != last {
		moved := s.owners[last]
		copyValue(s.info, s.at(slot), s.at(last))
		s.owners[slot] = moved
		s.slots[moved] = slot
	}
	zeroValue(s.info, s.at(last))
	s.owners = s.owners[:last]
	delete(s.slots, id)
	s.members.Remove(id)
}

func (s *sparseColumn) count() int {
	return int(s.members.GetCardinality())
}

// makeColumn allocates n zeroed values of info's type. The backing array is
// typed so the collector scans pointer-holding components.
func makeColumn(info *TypeInfo, n int) unsafe.Pointer {
	return reflect.MakeSlice(reflect.SliceOf(info.Type), n, n).UnsafePointer()
}

// copyValue copies one component value. Pointer-holding types go through
// reflect so the write barrier sees the store.
func copyValue(info *TypeInfo, dst, src unsafe.Pointer) {
	if info.Size == 0 || dst == src {
		return
	}
	if info.IsReference {
		reflect.NewAt(info.Type, dst).Elem().Set(reflect.NewAt(info.Type, src).Elem())
		return
	}
	memCopy(dst, src, info.Size)
}

func zeroValue(info *TypeInfo, p unsafe.Pointer) {
	if info.Size == 0 {
		return
	}
	if info.IsReference {
		reflect.NewAt(info.Type, p).Elem().SetZero()
		return
	}
	clear(unsafe.Slice((*byte)(p), info.Size))
}

func memCopy(dst, src unsafe.Pointer, size uintptr) {
	if size == 0 {
		return
	}
	copy(unsafe.Slice((*byte)(dst), size), unsafe.Slice((*byte)(src), size))
}
