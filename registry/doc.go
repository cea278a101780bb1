// Package registry multiplexes per-module resource tables behind a single
// process-wide lock and exposes the four boundary operations: Insert, Get,
// Clone, and Remove.
//
// A Registry is constructed explicitly with New and shared by reference;
// there is no package-level instance. It grows lazily as new module ids are
// seen, filling intermediate ids with empty table pairs, and never shrinks.
// Handle numbers from different module ids live in disjoint spaces and are
// never comparable.
//
// # Thread Safety
//
// All operations are safe for concurrent use. Calls are synchronous: each
// operation acquires the one registry lock, runs to completion, and releases
// it before returning. Operations on different module ids serialize on the
// shared lock; that is a simplicity tradeoff, not a performance one.
//
// # Fatal Conditions
//
// Removing or resolving a handle that does not exist panics, as do reference
// count underflow and overflow. See the resource package for the rationale.
// "Still referenced" on Remove is not an error; it is the expected outcome
// while clones remain and is reported through DropResult.
//
// # Observability
//
// Lifecycle events (insert, clone, remove, release) are logged at debug
// level through the package logger and fanned out to subscribed Observers
// after the registry lock is released.
package registry
