// Package wasmlink provides the host-side resource bookkeeping layer used
// when separately compiled WASM modules exchange opaque resource handles
// across a narrow binary interface.
//
// Each module owns a private table mapping the small integer handles it hands
// out to the underlying host resources. The registry multiplexes those tables
// by module id behind a single lock and exposes four boundary operations:
// insert, get, clone, and remove.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	wasmlink/
//	├── slab/        Free-list slot allocator assigning reusable integer indices
//	├── resource/    Refcounted resource table and handle indirection table
//	├── registry/    Per-module table pairs behind one process-wide lock
//	├── canon/       Scalar boundary encoding and the wazero host module
//	└── cmd/         wasmlink-run demo runner and registry inspector
//
// # Quick Start
//
// Create a registry and expose it to guest modules:
//
//	reg := registry.New()
//
//	r := wazero.NewRuntime(ctx)
//	defer r.Close(ctx)
//
//	if _, err := canon.Instantiate(ctx, r, reg); err != nil {
//	    log.Fatal(err)
//	}
//
// Guests import the four operations from the "wasmlink" module and refer to
// host resources only through the handle numbers they are given.
//
// # Fatal Conditions
//
// An unresolved handle or a reference count underflow/overflow means a caller
// broke the handle-ownership contract. These conditions panic rather than
// return an error: any result computed past that point would be built on
// corrupted table state.
package wasmlink
