// Package resource implements the per-module resource bookkeeping tables.
//
// Resources are opaque host-side values exposed to WASM modules only through
// small integer handles. Two tables cooperate per module:
//
//	Table       refcounted resource records, addressed by Index
//	IndexTable  one entry per externally visible handle, holding an Index
//
// The indirection gives every handle a lifetime independent of the resource
// it points at: cloning a handle inserts a second IndexTable entry for the
// same Index and bumps the reference count, so either handle can be removed
// without invalidating the other. A resource's slot is recycled exactly when
// its reference count reaches zero.
//
// Recycled slots carry no generation tag: a later insert may reuse the slot
// of a removed resource, and a handle held past its removal then resolves to
// the new occupant. Callers must not use a handle after removing it.
//
// # Fatal Conditions
//
// Resolving an Index that no longer exists, or moving a reference count past
// its bounds, means a caller reused a removed handle or otherwise broke the
// ownership contract. Table methods panic on these conditions; returning an
// error would hand the caller a result built on corrupted state.
//
// Neither table locks. The registry package serializes all access behind its
// process-wide lock.
package resource
