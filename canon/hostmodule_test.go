package canon

import (
	"context"
	"testing"

	"github.com/tetratelabs/wazero"

	"github.com/wippyai/wasmlink/registry"
)

func TestHostModuleExports(t *testing.T) {
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	mod, err := Instantiate(ctx, r, registry.New())
	if err != nil {
		t.Fatalf("Instantiate failed: %v", err)
	}

	for _, name := range []string{"resource_insert", "resource_get", "resource_clone", "resource_remove"} {
		if mod.ExportedFunction(name) == nil {
			t.Errorf("export %s missing", name)
		}
	}
}

// Drives the documented lifecycle through the wire-level exports: insert,
// clone, get via the clone, then remove both handles and check the encoded
// double-width result.
func TestHostModuleScenario(t *testing.T) {
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	reg := registry.New()
	mod, err := Instantiate(ctx, r, reg)
	if err != nil {
		t.Fatalf("Instantiate failed: %v", err)
	}

	call := func(name string, args ...uint64) uint64 {
		t.Helper()
		results, err := mod.ExportedFunction(name).Call(ctx, args...)
		if err != nil {
			t.Fatalf("%s failed: %v", name, err)
		}
		return results[0]
	}

	h0 := call("resource_insert", 0, 42)
	if h0 != 0 {
		t.Errorf("resource_insert = %d, want 0", h0)
	}

	h1 := call("resource_clone", 0, h0)
	if h1 == h0 {
		t.Error("resource_clone returned the original handle")
	}

	if v := call("resource_get", 0, h1); v != 42 {
		t.Errorf("resource_get = %d, want 42", v)
	}

	enc := call("resource_remove", 0, h0)
	if _, released := DecodeDrop(enc); released {
		t.Error("first remove released while clone remained")
	}

	enc = call("resource_remove", 0, h1)
	v, released := DecodeDrop(enc)
	if !released {
		t.Fatal("final remove did not release")
	}
	if v != 42 {
		t.Errorf("released value = %d, want 42", v)
	}

	if handles, resources := reg.Live(0); handles != 0 || resources != 0 {
		t.Errorf("Live(0) = (%d, %d) after teardown, want (0, 0)", handles, resources)
	}
}

func TestHostModuleGrowsRegistry(t *testing.T) {
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	reg := registry.New()
	mod, err := Instantiate(ctx, r, reg)
	if err != nil {
		t.Fatalf("Instantiate failed: %v", err)
	}

	results, err := mod.ExportedFunction("resource_insert").Call(ctx, 5, 7)
	if err != nil {
		t.Fatalf("resource_insert failed: %v", err)
	}
	if results[0] != 0 {
		t.Errorf("resource_insert = %d, want handle 0 for new module", results[0])
	}
	if got := reg.Modules(); got != 6 {
		t.Errorf("Modules() = %d, want 6", got)
	}
}

// An unresolved handle is a broken ownership contract; the host function
// panics and wazero turns that into a call error for the guest.
func TestHostModuleUnresolvedHandleTraps(t *testing.T) {
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	mod, err := Instantiate(ctx, r, registry.New())
	if err != nil {
		t.Fatalf("Instantiate failed: %v", err)
	}

	if _, err := mod.ExportedFunction("resource_get").Call(ctx, 0, 99); err == nil {
		t.Error("resource_get succeeded for unresolved handle")
	}
}
