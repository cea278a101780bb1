// Package slab implements a free-list slot allocator.
//
// A Slab assigns stable small integer indices to inserted items in O(1).
// Freed slots are threaded into an intrusive free list and reused, most
// recently freed first, before storage grows. Indices are therefore dense:
// repeated insert/remove cycles stay within a small index range.
//
// Slabs are not safe for concurrent use. The registry package serializes all
// access behind its process-wide lock.
package slab
