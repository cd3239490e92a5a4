// Package context - analysis pipeline
//
// PIPELINE ARCHITECTURE:
// The pipeline orchestrates analysis phases as a series of transformations.
// Each phase is a stateless worker function that:
//  1. Receives the AnalyzerContext and a SourceBuffer
//  2. Reads from the previous phase's output
//  3. Writes to the next phase's input
//  4. Reports findings to ctx.Diagnostics
//
// Phase progression:
//
//	Entry -> Scanner -> Validator -> Report -> Exit
//
// The scanner is total: it always produces a token stream, and every
// structural finding belongs to the validator. This keeps each phase
// independently testable.
package context

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"csyntax/internal/diagnostics"
	"csyntax/internal/frontend/lexer"
	"csyntax/internal/validator"
)

// Result is the outcome of analyzing one buffer.
type Result struct {
	ID          string // Unique run identifier
	Name        string // Buffer name the run analyzed
	Tokens      []lexer.Token
	Valid       bool
	Diagnostics []*diagnostics.Diagnostic
}

// Pipeline manages the analysis pipeline.
type Pipeline struct {
	Context *AnalyzerContext
}

// NewPipeline creates a new analysis pipeline with the given options.
func NewPipeline(options *Options) *Pipeline {
	return &Pipeline{
		Context: New(options),
	}
}

// Analyze runs the full pipeline on one piece of source text.
// Implements: Scanner -> Validator -> Report
//
// Each call is an isolated run: diagnostics from previous runs are
// cleared first, so calling Analyze twice with the same input yields
// the same result.
func (p *Pipeline) Analyze(name, content string) *Result {
	ctx := p.Context

	if ctx.Options.Debug {
		fmt.Println("╔════════════════════════════════════════╗")
		fmt.Println("║     CSYNTAX - ANALYSIS PIPELINE        ║")
		fmt.Println("╚════════════════════════════════════════╝")
	}

	runID := uuid.NewString()
	ctx.Logger.Debug("starting analysis run",
		zap.String("run_id", runID),
		zap.String("buffer", name),
		zap.Int("bytes", len(content)))

	ctx.Diagnostics.Clear()
	ctx.Diagnostics.SetSource(name, content)
	buf := ctx.AddBuffer(name, content)

	p.runScannerPhase(buf)
	p.runValidatorPhase(buf)

	buf.Valid = !ctx.Diagnostics.HasErrors()

	result := &Result{
		ID:          runID,
		Name:        name,
		Tokens:      p.reportTokens(buf),
		Valid:       buf.Valid,
		Diagnostics: ctx.Diagnostics.Snapshot(),
	}

	ctx.Logger.Debug("analysis run complete",
		zap.String("run_id", runID),
		zap.Bool("valid", result.Valid),
		zap.Int("errors", ctx.Diagnostics.ErrorCount()),
		zap.Int("warnings", ctx.Diagnostics.WarningCount()))

	return result
}

// runScannerPhase tokenizes the buffer
func (p *Pipeline) runScannerPhase(buf *SourceBuffer) {
	ctx := p.Context

	if ctx.Options.Debug {
		fmt.Printf("\n[Phase 1] Scanner\n")
		fmt.Printf("  Tokenizing %s (%d bytes)\n", buf.Name, len(buf.Content))
	}

	tokenizer := lexer.NewWithDialect(buf.Name, buf.Content, ctx.Options.Dialect)
	buf.Tokens = tokenizer.Tokenize(ctx.Options.Debug)

	if ctx.Options.Debug {
		fmt.Printf("  ✓ Generated %d tokens\n", len(buf.Tokens))
	}
	ctx.Logger.Debug("scanner phase complete",
		zap.String("buffer", buf.Name),
		zap.Int("tokens", len(buf.Tokens)))
}

// runValidatorPhase checks the token stream's structure
func (p *Pipeline) runValidatorPhase(buf *SourceBuffer) {
	ctx := p.Context

	if ctx.Options.Debug {
		fmt.Printf("\n[Phase 2] Validator\n")
		fmt.Printf("  Checking %s (%d tokens)\n", buf.Name, len(buf.Tokens))
	}

	validator.Validate(buf.Tokens, ctx.validatorOptions(), ctx.Diagnostics)

	if ctx.Options.Debug {
		fmt.Printf("  ✓ Validation complete (%d errors, %d warnings)\n",
			ctx.Diagnostics.ErrorCount(), ctx.Diagnostics.WarningCount())
	}
	ctx.Logger.Debug("validator phase complete",
		zap.String("buffer", buf.Name),
		zap.Int("errors", ctx.Diagnostics.ErrorCount()),
		zap.Int("warnings", ctx.Diagnostics.WarningCount()))
}

// reportTokens produces the token list a run hands back, honoring the
// comment-visibility option. The buffer keeps the full stream either
// way; only the report is filtered.
func (p *Pipeline) reportTokens(buf *SourceBuffer) []lexer.Token {
	if p.Context.Options.IncludeComments {
		out := make([]lexer.Token, len(buf.Tokens))
		copy(out, buf.Tokens)
		return out
	}

	out := make([]lexer.Token, 0, len(buf.Tokens))
	for _, tok := range buf.Tokens {
		if tok.Kind == lexer.COMMENT_TOKEN {
			continue
		}
		out = append(out, tok)
	}
	return out
}
