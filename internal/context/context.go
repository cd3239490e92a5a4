// Package context provides a shared analysis context for all pipeline phases
//
// ARCHITECTURE DESIGN:
// This package implements the central "context" pattern used in production
// compilers (Rustc, Zig, LLVM). The pipeline phases are stateless workers
// that receive an AnalyzerContext and operate on SourceBuffer objects
// within it.
//
// Key principles:
// 1. Single source of truth: all shared state lives in AnalyzerContext
// 2. Phases are workers: the scanner and validator don't own state
// 3. Thread-safe design: context mutations go through locked methods
// 4. Per-run isolation: diagnostics are cleared at the start of each run,
//    so analyzing the same buffer twice yields the same result
package context

import (
	"sync"

	"go.uber.org/zap"

	"csyntax/internal/diagnostics"
	"csyntax/internal/frontend/lexer"
	"csyntax/internal/validator"
)

// AnalyzerContext is the central hub for all analysis state.
// This is the ONLY place where shared analyzer state should live.
//
// Thread safety: all mutations go through methods that take the lock.
type AnalyzerContext struct {
	// Diagnostics - centralized error and warning collection
	// All phases report here instead of storing their own errors
	Diagnostics *diagnostics.DiagnosticBag

	// Buffers - maps buffer name -> SourceBuffer
	// This is the single registry of everything the context has analyzed
	Buffers map[string]*SourceBuffer

	// BufferOrder - tracks order buffers were added (for deterministic output)
	BufferOrder []string

	// Options - analyzer configuration
	Options *Options

	// Logger - structured debug logging; a no-op logger unless Debug is set
	Logger *zap.Logger

	mu sync.RWMutex
}

// SourceBuffer represents one analyzed input through all pipeline phases.
// This is the SINGLE structure per input - tokens and the verdict are
// attached directly to the buffer, not stored separately.
type SourceBuffer struct {
	Name    string // Display name (file path, or "<input>" for interactive text)
	Content string // Raw source code

	Tokens []lexer.Token
	Valid  bool
}

// Options holds analyzer configuration.
// Passed to the context at creation time and remains immutable.
type Options struct {
	Debug            bool           // Enable debug output during analysis
	IncludeComments  bool           // Keep comment tokens in reported results
	StrictStatements bool           // Statement heuristics become errors
	Dialect          *lexer.Dialect // Keyword and operator tables; nil means the default dialect
	Logger           *zap.Logger    // Override the context logger; nil picks one from Debug
}

// New creates an analysis context ready to accept buffers.
// This is the entry point for starting a new analysis session.
func New(options *Options) *AnalyzerContext {
	if options == nil {
		options = &Options{IncludeComments: true}
	}
	if options.Dialect == nil {
		options.Dialect = lexer.DefaultDialect()
	}

	logger := options.Logger
	if logger == nil {
		if options.Debug {
			logger, _ = zap.NewDevelopment()
		}
		if logger == nil {
			logger = zap.NewNop()
		}
	}

	return &AnalyzerContext{
		Diagnostics: diagnostics.NewDiagnosticBag(""),
		Buffers:     make(map[string]*SourceBuffer),
		BufferOrder: make([]string, 0),
		Options:     options,
		Logger:      logger,
	}
}

// DefaultOptions returns the options an unconfigured session runs with.
func DefaultOptions() *Options {
	return &Options{IncludeComments: true}
}

// AddBuffer registers source text under a name, replacing any previous
// buffer with the same name.
func (ctx *AnalyzerContext) AddBuffer(name, content string) *SourceBuffer {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	if _, exists := ctx.Buffers[name]; !exists {
		ctx.BufferOrder = append(ctx.BufferOrder, name)
	}
	buf := &SourceBuffer{Name: name, Content: content}
	ctx.Buffers[name] = buf
	return buf
}

// GetBuffer returns the buffer registered under name, or nil.
func (ctx *AnalyzerContext) GetBuffer(name string) *SourceBuffer {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	return ctx.Buffers[name]
}

// AllBuffers returns all registered buffers in insertion order.
func (ctx *AnalyzerContext) AllBuffers() []*SourceBuffer {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()

	out := make([]*SourceBuffer, 0, len(ctx.BufferOrder))
	for _, name := range ctx.BufferOrder {
		out = append(out, ctx.Buffers[name])
	}
	return out
}

// HasErrors reports whether the most recent run produced errors.
func (ctx *AnalyzerContext) HasErrors() bool {
	return ctx.Diagnostics.HasErrors()
}

// validatorOptions derives the validator configuration from the
// context options.
func (ctx *AnalyzerContext) validatorOptions() validator.Options {
	return validator.Options{StrictStatements: ctx.Options.StrictStatements}
}
