package slab

// entry is a tagged slot: full and holding a value, or empty and threaded
// into the free list through next.
type entry[T any] struct {
	value T
	next  uint32
	full  bool
}

// Slab assigns reusable integer indices to inserted items. The zero value is
// an empty slab ready for use.
type Slab[T any] struct {
	storage []entry[T]
	// next is the head of the free list: the next reusable slot, or
	// len(storage) when no freed slot remains.
	next uint32
}

// Insert stores item and returns its index. Freed indices are reused in LIFO
// order before storage grows.
func (s *Slab[T]) Insert(item T) uint32 {
	if int(s.next) == len(s.storage) {
		s.storage = append(s.storage, entry[T]{next: s.next + 1})
	}

	idx := s.next
	slot := &s.storage[idx]
	s.next = slot.next
	slot.value = item
	slot.full = true
	return idx
}

// Get returns a pointer to the value at idx, or false if the slot is empty
// or idx is out of range. The pointer is valid only until the next Insert or
// Remove.
func (s *Slab[T]) Get(idx uint32) (*T, bool) {
	if int(idx) >= len(s.storage) {
		return nil, false
	}

	slot := &s.storage[idx]
	if !slot.full {
		return nil, false
	}
	return &slot.value, true
}

// Remove empties the slot at idx, pushes it onto the free list, and returns
// the removed value. Removing an empty or out-of-range index has no effect
// and returns false.
func (s *Slab[T]) Remove(idx uint32) (T, bool) {
	var zero T
	if int(idx) >= len(s.storage) {
		return zero, false
	}

	slot := &s.storage[idx]
	if !slot.full {
		return zero, false
	}

	value := slot.value
	slot.value = zero
	slot.full = false
	slot.next = s.next
	s.next = idx
	return value, true
}

// Len returns the number of full slots.
func (s *Slab[T]) Len() int {
	count := 0
	for i := range s.storage {
		if s.storage[i].full {
			count++
		}
	}
	return count
}
