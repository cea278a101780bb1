package resource

import (
	"fmt"
	"math"

	"github.com/wippyai/wasmlink/slab"
)

// record is one host resource: the opaque underlying value and the number of
// live handle entries pointing at it.
type record struct {
	value uint32
	refs  uint32
}

// Table stores refcounted resource records. The zero value is an empty table
// ready for use.
type Table struct {
	slab slab.Slab[record]
}

// Insert stores value with a reference count of 1 and returns its locator.
func (t *Table) Insert(value uint32) Index {
	return Index(t.slab.Insert(record{value: value, refs: 1}))
}

// Value returns the underlying value at idx.
// An unresolved idx panics.
func (t *Table) Value(idx Index) uint32 {
	r, ok := t.slab.Get(uint32(idx))
	if !ok {
		panic(fmt.Sprintf("wasmlink: unresolved resource index %d", idx))
	}
	return r.value
}

// Clone adds one reference to the resource at idx.
// An unresolved idx or a reference count overflow panics.
func (t *Table) Clone(idx Index) {
	r, ok := t.slab.Get(uint32(idx))
	if !ok {
		panic(fmt.Sprintf("wasmlink: unresolved resource index %d", idx))
	}
	if r.refs == math.MaxUint32 {
		panic(fmt.Sprintf("wasmlink: reference count overflow at resource index %d", idx))
	}
	r.refs++
}

// Drop removes one reference from the resource at idx. When the count
// reaches zero the slot is recycled and Drop returns (value, true); the
// caller must finalize the returned value. Otherwise the resource stays
// alive and Drop returns (0, false).
//
// An unresolved idx panics. A zero count before the decrement is an
// invariant violation and also panics rather than wrapping.
func (t *Table) Drop(idx Index) (uint32, bool) {
	r, ok := t.slab.Get(uint32(idx))
	if !ok {
		panic(fmt.Sprintf("wasmlink: unresolved resource index %d", idx))
	}
	if r.refs == 0 {
		panic(fmt.Sprintf("wasmlink: reference count underflow at resource index %d", idx))
	}

	r.refs--
	if r.refs != 0 {
		return 0, false
	}

	rec, _ := t.slab.Remove(uint32(idx))
	return rec.value, true
}

// Len returns the number of live resources.
func (t *Table) Len() int {
	return t.slab.Len()
}
