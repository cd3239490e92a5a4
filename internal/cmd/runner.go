// Package cmd drives the analyzer from the command line: it collects
// source text (file or interactive), runs the pipeline, and prints the
// token listing and validation report.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"csyntax/internal/context"
)

const historyFile = ".csyntax_history"

// Terminator modes for interactive input collection.
const (
	TerminatorEnd   = "end"   // a line reading END finishes input
	TerminatorBlank = "blank" // an empty line finishes input
)

// RunConfig carries the per-invocation inputs resolved from flags.
type RunConfig struct {
	FilePath   string // read source from this file; empty means interactive
	Terminator string // interactive terminator mode
}

// Run collects input, analyzes it, and prints the report to stdout.
// The return value is the process exit code: 0 for valid input, 1 for
// invalid input, 2 when input could not be collected at all.
func Run(pipeline *context.Pipeline, cfg RunConfig) int {
	name, source, ok := collect(cfg)
	if !ok {
		return 2
	}

	result := pipeline.Analyze(name, source)
	report(os.Stdout, pipeline, result)

	if !result.Valid {
		return 1
	}
	return 0
}

func collect(cfg RunConfig) (name, source string, ok bool) {
	if cfg.FilePath != "" {
		content, err := ReadSource(cfg.FilePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return "", "", false
		}
		return cfg.FilePath, content, true
	}

	source, ok = CollectInteractive(os.Stdout, cfg.Terminator)
	if !ok || strings.TrimSpace(source) == "" {
		fmt.Println("\nNo code entered!")
		return "", "", false
	}
	return "<input>", source, true
}

// ReadSource reads a source file, tolerating a UTF-8 byte order mark.
func ReadSource(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer f.Close()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(f, decoder))
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return string(data), nil
}

// CollectInteractive gathers source lines from the terminal until the
// terminator fires. Returns false on Ctrl+C, Ctrl+D or a read failure
// before any terminator.
func CollectInteractive(w io.Writer, terminator string) (string, bool) {
	banner(w, "C/C++ Code Scanner and Validator")
	fmt.Fprintln(w, "\nEnter your C/C++ code below.")
	if terminator == TerminatorBlank {
		fmt.Fprint(w, "Finish with an empty line:\n\n")
	} else {
		fmt.Fprint(w, "Type 'END' on a new line when finished:\n\n")
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	// History is best-effort; a missing or unwritable file is fine
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	var lines []string
	for {
		line, err := ln.Prompt("")
		if err != nil {
			// Ctrl+C aborts the session; EOF finishes what we have
			if err == liner.ErrPromptAborted {
				return "", false
			}
			break
		}
		if terminator == TerminatorBlank && strings.TrimSpace(line) == "" {
			break
		}
		if terminator != TerminatorBlank && strings.TrimSpace(line) == "END" {
			break
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		lines = append(lines, line)
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}

	return strings.Join(lines, "\n"), true
}

// report prints the token listing, the validation verdict, and any
// diagnostics with their source context.
func report(w io.Writer, pipeline *context.Pipeline, result *context.Result) {
	fmt.Fprintln(w)
	banner(w, "TOKENIZATION RESULTS")
	fmt.Fprintf(w, "\nTotal tokens: %d\n\n", len(result.Tokens))
	for _, tok := range result.Tokens {
		fmt.Fprintln(w, tok)
	}

	fmt.Fprintln(w)
	banner(w, "SYNTAX VALIDATION")

	if result.Valid {
		fmt.Fprintln(w, "\n✓ CODE IS VALID")
		fmt.Fprintln(w, "The code follows basic C/C++ syntax rules.")
	} else {
		fmt.Fprintln(w, "\n✗ CODE IS INVALID")
		fmt.Fprintln(w)
	}

	if len(result.Diagnostics) > 0 {
		pipeline.Context.Diagnostics.EmitAllToWriter(w)
	}

	fmt.Fprintln(w)
	banner(w, fmt.Sprintf("Result: %v", result.Valid))
}

func banner(w io.Writer, title string) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, rule)
}
