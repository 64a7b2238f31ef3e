//go:build js && wasm

// WebAssembly entry point for the playground and JS-ecosystem tools. It
// exposes the shared formatting function on the JS global scope; the wrapper
// only marshals arguments and performs no formatting logic of its own.
//
// Build with:
//
//	GOOS=js GOARCH=wasm go build -o tanafmt.wasm ./wasm
package main

import (
	"syscall/js"

	"github.com/tanaplatform/tanafmt/pkg/diagnostic"
)

// formatValidationError bridges the JS call
// formatValidationError(code, filePath, errorKind, lineNum, colNum, message, help, underlineLength)
// to the native implementation, keeping the argument order identical.
func formatValidationError(this js.Value, args []js.Value) any {
	return diagnostic.FormatValidationError(
		args[0].String(),
		args[1].String(),
		args[2].String(),
		args[3].Int(),
		args[4].Int(),
		args[5].String(),
		args[6].String(),
		args[7].Int(),
	)
}

func main() {
	js.Global().Set("formatValidationError", js.FuncOf(formatValidationError))

	// Keep the Go runtime alive so the exported function stays callable.
	select {}
}
