package canon

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasmlink/registry"
	"github.com/wippyai/wasmlink/resource"
)

// ModuleName is the import module name guests use to reach the boundary
// functions.
const ModuleName = "wasmlink"

var (
	i32Pair   = []api.ValueType{api.ValueTypeI32, api.ValueTypeI32}
	i32Result = []api.ValueType{api.ValueTypeI32}
	i64Result = []api.ValueType{api.ValueTypeI64}
)

// Instantiate builds and instantiates the wasmlink host module on r,
// exporting the four boundary operations backed by reg. It must be called
// before instantiating guests that import from "wasmlink".
func Instantiate(ctx context.Context, r wazero.Runtime, reg *registry.Registry) (api.Module, error) {
	builder := r.NewHostModuleBuilder(ModuleName)

	builder = builder.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
			id := uint32(stack[0])
			value := uint32(stack[1])
			stack[0] = uint64(reg.Insert(id, value))
		}), i32Pair, i32Result).
		Export("resource_insert")

	builder = builder.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
			id := uint32(stack[0])
			h := resource.Handle(stack[1])
			stack[0] = uint64(reg.Get(id, h))
		}), i32Pair, i32Result).
		Export("resource_get")

	builder = builder.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
			id := uint32(stack[0])
			h := resource.Handle(stack[1])
			stack[0] = uint64(reg.Clone(id, h))
		}), i32Pair, i32Result).
		Export("resource_clone")

	builder = builder.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
			id := uint32(stack[0])
			h := resource.Handle(stack[1])
			stack[0] = EncodeDrop(reg.Remove(id, h))
		}), i32Pair, i64Result).
		Export("resource_remove")

	return builder.Instantiate(ctx)
}
