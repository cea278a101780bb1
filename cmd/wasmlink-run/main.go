package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/wasmlink/canon"
	"github.com/wippyai/wasmlink/registry"
)

func main() {
	var (
		wasmFile    = flag.String("wasm", "", "Path to core wasm module importing from \"wasmlink\"")
		funcName    = flag.String("func", "", "Exported function to call")
		funcArgs    = flag.String("args", "", "Arguments for -func (comma-separated unsigned integers)")
		verbose     = flag.Bool("v", false, "Log registry lifecycle events")
		interactive = flag.Bool("i", false, "Interactive registry inspector (no wasm file needed)")
	)
	flag.Parse()

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: -i requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*verbose); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *wasmFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: wasmlink-run -wasm <file.wasm> [-func name] [-args 1,2] [-v]")
		fmt.Fprintln(os.Stderr, "       wasmlink-run -i  (interactive inspector)")
		os.Exit(1)
	}

	if err := run(*wasmFile, *funcName, *funcArgs, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(wasmFile, funcName, argsStr string, verbose bool) error {
	ctx := context.Background()

	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer logger.Sync()
		registry.SetLogger(logger)
	}

	data, err := os.ReadFile(wasmFile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	reg := registry.New()
	if _, err := canon.Instantiate(ctx, r, reg); err != nil {
		return fmt.Errorf("instantiate host module: %w", err)
	}

	fmt.Printf("Module: %s\n", wasmFile)
	mod, err := r.Instantiate(ctx, data)
	if err != nil {
		return fmt.Errorf("instantiate guest: %w", err)
	}
	defer mod.Close(ctx)

	fmt.Printf("\nExported functions:\n")
	var exported []string
	for name := range mod.ExportedFunctionDefinitions() {
		exported = append(exported, name)
		fmt.Printf("  %s\n", name)
	}

	// Without an explicit function, try common entry points.
	if funcName == "" {
		for _, name := range []string{"_start", "run", "main"} {
			for _, f := range exported {
				if f == name {
					funcName = name
					break
				}
			}
			if funcName != "" {
				break
			}
		}
		if funcName == "" {
			fmt.Printf("\nNo function specified and no common entry point found.\n")
			fmt.Printf("Use -func to specify a function to call.\n")
			return nil
		}
	}

	args, err := parseArgs(argsStr)
	if err != nil {
		return err
	}

	fn := mod.ExportedFunction(funcName)
	if fn == nil {
		return fmt.Errorf("function %q not exported", funcName)
	}

	fmt.Printf("\nCalling %s(%s)...\n", funcName, argsStr)
	results, err := fn.Call(ctx, args...)
	if err != nil {
		return fmt.Errorf("call %s: %w", funcName, err)
	}
	fmt.Printf("Result: %v\n", results)

	printDiagnostics(reg)
	return nil
}

func parseArgs(argsStr string) ([]uint64, error) {
	if argsStr == "" {
		return nil, nil
	}
	var args []uint64
	for _, s := range strings.Split(argsStr, ",") {
		v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse argument %q: %w", s, err)
		}
		args = append(args, v)
	}
	return args, nil
}

func printDiagnostics(reg *registry.Registry) {
	modules := reg.Modules()
	fmt.Printf("\nRegistry: %d module id(s) covered\n", modules)
	for m := 0; m < modules; m++ {
		handles, resources := reg.Live(uint32(m))
		if handles == 0 && resources == 0 {
			continue
		}
		fmt.Printf("  module %d: %d live handle(s), %d live resource(s)\n", m, handles, resources)
	}
}
