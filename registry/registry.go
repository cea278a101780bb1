package registry

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/wasmlink/resource"
)

// pair is one module's private tables: handle entries in front, refcounted
// resource records behind them. Handle numbers from different pairs are
// never interchangeable.
type pair struct {
	handles   resource.IndexTable
	resources resource.Table
}

// Registry holds one table pair per module id. Use New; the zero value also
// works but a Registry must not be copied after first use.
type Registry struct {
	mu      sync.Mutex
	modules []pair

	observers []Observer
	obsMu     sync.RWMutex
}

// New creates an empty registry covering no module ids.
func New() *Registry {
	return &Registry{}
}

// DropResult reports the outcome of Remove: either the last handle was
// removed and Value must be finalized by the caller, or other handles still
// reference the resource and Value is zero.
type DropResult struct {
	Value    uint32
	Released bool
}

// pairOf grows the registry to cover moduleID and returns its pair.
// Growth is idempotent; intermediate ids get empty pairs. Caller holds mu.
// The pointer is valid only until the next growth.
func (r *Registry) pairOf(moduleID uint32) *pair {
	for uint32(len(r.modules)) <= moduleID {
		r.modules = append(r.modules, pair{})
	}
	return &r.modules[moduleID]
}

// Insert stores value in moduleID's tables and returns the new handle.
// Handle numbers are dense and reused after removal.
func (r *Registry) Insert(moduleID, value uint32) resource.Handle {
	r.mu.Lock()
	p := r.pairOf(moduleID)
	idx := p.resources.Insert(value)
	h := p.handles.Insert(idx)
	r.mu.Unlock()

	Logger().Debug("resource inserted",
		zap.Uint32("module", moduleID),
		zap.Uint32("handle", uint32(h)))
	r.notify(Event{Type: EventInserted, ModuleID: moduleID, Handle: h, Value: value})
	return h
}

// Get returns the underlying value behind h in moduleID's handle space.
// An unresolved handle panics.
func (r *Registry) Get(moduleID uint32, h resource.Handle) uint32 {
	r.mu.Lock()
	p := r.pairOf(moduleID)
	idx, ok := p.handles.Get(h)
	if !ok {
		r.mu.Unlock()
		panic(fmt.Sprintf("wasmlink: module %d: unresolved handle %d", moduleID, h))
	}
	v := p.resources.Value(idx)
	r.mu.Unlock()
	return v
}

// Clone adds one reference to the resource behind h and returns a fresh
// handle for it. The original handle stays valid and both are independently
// removable. An unresolved handle panics.
func (r *Registry) Clone(moduleID uint32, h resource.Handle) resource.Handle {
	r.mu.Lock()
	p := r.pairOf(moduleID)
	idx, ok := p.handles.Get(h)
	if !ok {
		r.mu.Unlock()
		panic(fmt.Sprintf("wasmlink: module %d: unresolved handle %d", moduleID, h))
	}
	p.resources.Clone(idx)
	nh := p.handles.Insert(idx)
	r.mu.Unlock()

	Logger().Debug("resource cloned",
		zap.Uint32("module", moduleID),
		zap.Uint32("handle", uint32(h)),
		zap.Uint32("new_handle", uint32(nh)))
	r.notify(Event{Type: EventCloned, ModuleID: moduleID, Handle: nh})
	return nh
}

// Remove deletes the handle entry for h and drops one reference from its
// resource. When the last reference goes, the result carries the released
// value for the caller to finalize; otherwise the resource stays alive
// behind its remaining handles. An unresolved handle panics.
func (r *Registry) Remove(moduleID uint32, h resource.Handle) DropResult {
	r.mu.Lock()
	p := r.pairOf(moduleID)
	idx, ok := p.handles.Remove(h)
	if !ok {
		r.mu.Unlock()
		panic(fmt.Sprintf("wasmlink: module %d: unresolved handle %d", moduleID, h))
	}
	value, released := p.resources.Drop(idx)
	r.mu.Unlock()

	if released {
		Logger().Debug("resource released",
			zap.Uint32("module", moduleID),
			zap.Uint32("handle", uint32(h)),
			zap.Uint32("value", value))
		r.notify(Event{Type: EventReleased, ModuleID: moduleID, Handle: h, Value: value})
		return DropResult{Value: value, Released: true}
	}

	Logger().Debug("handle removed",
		zap.Uint32("module", moduleID),
		zap.Uint32("handle", uint32(h)))
	r.notify(Event{Type: EventRemoved, ModuleID: moduleID, Handle: h})
	return DropResult{}
}

// Modules returns the number of module ids the registry has grown to cover.
func (r *Registry) Modules() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.modules)
}

// Live returns the number of live handle entries and resources for moduleID.
// A module id beyond the current registry size reports zeros without
// triggering growth.
func (r *Registry) Live(moduleID uint32) (handles, resources int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if uint32(len(r.modules)) <= moduleID {
		return 0, 0
	}
	p := &r.modules[moduleID]
	return p.handles.Len(), p.resources.Len()
}
