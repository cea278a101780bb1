package canon

import (
	"github.com/wippyai/wasmlink/registry"
)

// StillAliveFlag is set in the upper half of resource_remove's return value
// when other handles still reference the resource. When the flag is clear,
// the lower half is the released value the guest must finalize.
const StillAliveFlag uint64 = 1 << 32

// EncodeDrop flattens a DropResult to the boundary's double-width scalar.
func EncodeDrop(res registry.DropResult) uint64 {
	if res.Released {
		return uint64(res.Value)
	}
	return StillAliveFlag
}

// DecodeDrop is the inverse of EncodeDrop. The second return is true when
// the resource was released and value must be finalized; when false, value
// is meaningless.
func DecodeDrop(enc uint64) (value uint32, released bool) {
	if enc&StillAliveFlag != 0 {
		return 0, false
	}
	return uint32(enc), true
}
