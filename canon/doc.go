// Package canon flattens the registry's operations onto the narrow binary
// boundary shared with WASM guests.
//
// Inside the process, Remove reports its outcome as an explicit
// registry.DropResult. The boundary calling convention returns one scalar per
// call, so canon encodes that result into a double-width integer: the upper
// half carries a still-alive flag, the lower half carries the released value
// when the flag is clear.
//
// Instantiate exposes the four operations to guests as a wazero host module
// named "wasmlink":
//
//	resource_insert(id: i32, value: i32) -> i32
//	resource_get(id: i32, handle: i32) -> i32
//	resource_clone(id: i32, handle: i32) -> i32
//	resource_remove(id: i32, handle: i32) -> i64
//
// A guest that presents an unresolved handle panics the host function, which
// wazero surfaces as a trap in the calling guest.
package canon
