//go:build js && wasm

package main

import (
	"fmt"
	"strings"
	"syscall/js"

	"csyntax/internal/context"
)

// analyzeCode runs the pipeline on a code string and packages the
// result for JavaScript.
func analyzeCode(code string, debug bool) map[string]interface{} {
	jsConsole := js.Global().Get("console")
	defer func() {
		if r := recover(); r != nil {
			jsConsole.Call("error", "💥 PANIC in analyzeCode:", r)
		}
	}()

	options := context.DefaultOptions()
	options.Debug = debug

	pipeline := context.NewPipeline(options)

	// Browser inputs have no file system; analyze a virtual buffer
	result := pipeline.Analyze("main.c", code)

	tokens := make([]interface{}, 0, len(result.Tokens))
	for _, tok := range result.Tokens {
		tokens = append(tokens, tok.String())
	}

	output := pipeline.Context.Diagnostics.EmitAllToString()
	if result.Valid && strings.TrimSpace(output) == "" {
		output = "✓ Code is valid."
	}

	return map[string]interface{}{
		"success": true,
		"valid":   result.Valid,
		"tokens":  tokens,
		"output":  output,
	}
}

// csyntaxAnalyzeJS is the JavaScript-callable function
func csyntaxAnalyzeJS(this js.Value, args []js.Value) interface{} {
	defer func() {
		if r := recover(); r != nil {
			jsConsole := js.Global().Get("console")
			jsConsole.Call("error", "💥 PANIC in analyzer:", r)
		}
	}()

	if len(args) < 1 {
		return map[string]interface{}{
			"success": false,
			"error":   "Expected at least 1 argument (code string)",
		}
	}

	code := args[0].String()
	debug := false
	if len(args) > 1 {
		debug = args[1].Bool()
	}

	return analyzeCode(code, debug)
}

func main() {
	// Prevent the program from exiting
	c := make(chan struct{})

	js.Global().Set("csyntaxAnalyze", js.FuncOf(csyntaxAnalyzeJS))
	js.Global().Set("csyntaxWasmVersion", "v0.1.0")

	fmt.Println("✅ csyntax WASM analyzer ready")

	<-c
}
