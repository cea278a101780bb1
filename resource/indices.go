package resource

import (
	"github.com/wippyai/wasmlink/slab"
)

// IndexTable maps externally visible handle numbers to resource locators.
// Multiple entries may hold the same Index after a clone; each is removable
// on its own. The zero value is an empty table ready for use.
type IndexTable struct {
	slab slab.Slab[Index]
}

// Insert stores idx under a fresh handle number.
func (t *IndexTable) Insert(idx Index) Handle {
	return Handle(t.slab.Insert(idx))
}

// Get returns a copy of the Index stored for h, since an Index carries no
// ownership. Returns false for an unknown handle.
func (t *IndexTable) Get(h Handle) (Index, bool) {
	p, ok := t.slab.Get(uint32(h))
	if !ok {
		return 0, false
	}
	return *p, true
}

// Remove deletes the entry for h and returns the Index it held.
// Returns false for an unknown handle.
func (t *IndexTable) Remove(h Handle) (Index, bool) {
	return t.slab.Remove(uint32(h))
}

// Len returns the number of live handle entries.
func (t *IndexTable) Len() int {
	return t.slab.Len()
}
