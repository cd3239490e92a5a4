package validator

import (
	"strings"
	"testing"

	"csyntax/internal/diagnostics"
	"csyntax/internal/frontend/lexer"
)

const (
	validProgram = `int main() {
    return 0;
}`

	unterminatedDelims = `int main( {`

	unterminatedString = `x = "unterminated`

	missingSemicolon = `if (x) y`

	orphanClose = `)`
)

func analyze(t *testing.T, src string, opts Options) *diagnostics.DiagnosticBag {
	t.Helper()
	bag := diagnostics.NewDiagnosticBag("test")
	bag.SetSource("test", src)
	tokens := lexer.New("test", src).Tokenize(false)
	Validate(tokens, opts, bag)
	return bag
}

func TestValidProgram(t *testing.T) {
	// Setup & Execute
	bag := analyze(t, validProgram, Options{})

	// Verify: a balanced, terminated program produces nothing at all
	if bag.HasErrors() {
		t.Errorf("expected no errors, got %d", bag.ErrorCount())
	}
	if bag.WarningCount() != 0 {
		t.Errorf("expected no warnings, got %d", bag.WarningCount())
	}
}

func TestUnterminatedDelimiters(t *testing.T) {
	bag := analyze(t, unterminatedDelims, Options{})

	if bag.ErrorCount() != 2 {
		t.Fatalf("expected 2 errors, got %d", bag.ErrorCount())
	}

	// Verify both opens are reported, innermost-open last
	diags := bag.Snapshot()
	if !strings.Contains(diags[0].Message, "unterminated delimiter") {
		t.Errorf("unexpected first diagnostic: %q", diags[0].Message)
	}
	if !strings.Contains(diags[1].Message, "unterminated delimiter") {
		t.Errorf("unexpected second diagnostic: %q", diags[1].Message)
	}
}

func TestUnterminatedStringLiteral(t *testing.T) {
	bag := analyze(t, unterminatedString, Options{})

	if bag.ErrorCount() != 1 {
		t.Fatalf("expected 1 error, got %d", bag.ErrorCount())
	}
	if !strings.Contains(bag.Snapshot()[0].Message, "unterminated string") {
		t.Errorf("unexpected diagnostic: %q", bag.Snapshot()[0].Message)
	}
}

func TestMissingTerminatorIsWarning(t *testing.T) {
	bag := analyze(t, missingSemicolon, Options{})

	// Verify: heuristic findings never flip the verdict by default
	if bag.HasErrors() {
		t.Errorf("expected no errors, got %d", bag.ErrorCount())
	}
	if bag.WarningCount() != 1 {
		t.Errorf("expected 1 warning, got %d", bag.WarningCount())
	}
}

func TestMissingTerminatorStrictMode(t *testing.T) {
	bag := analyze(t, missingSemicolon, Options{StrictStatements: true})

	if bag.ErrorCount() != 1 {
		t.Errorf("expected 1 error under strict mode, got %d", bag.ErrorCount())
	}
	if bag.WarningCount() != 0 {
		t.Errorf("expected no warnings under strict mode, got %d", bag.WarningCount())
	}
}

func TestOrphanClosingDelimiter(t *testing.T) {
	bag := analyze(t, orphanClose, Options{})

	// Verify: exactly one error, and no trailing-statement warning for
	// a run made of nothing but close delimiters
	if bag.ErrorCount() != 1 {
		t.Fatalf("expected 1 error, got %d", bag.ErrorCount())
	}
	if bag.WarningCount() != 0 {
		t.Errorf("expected no warnings, got %d", bag.WarningCount())
	}
	if !strings.Contains(bag.Snapshot()[0].Message, "unmatched closing delimiter") {
		t.Errorf("unexpected diagnostic: %q", bag.Snapshot()[0].Message)
	}
}

func TestDelimiterMismatchReportsOnce(t *testing.T) {
	bag := analyze(t, `int main() { ) }`, Options{})

	// The stray ')' against '{' reports once and leaves the frame in
	// place, so the real '}' still matches and nothing cascades.
	var mismatches, unterminated int
	for _, d := range bag.Snapshot() {
		switch d.Code {
		case diagnostics.ErrDelimiterMismatch:
			mismatches++
		case diagnostics.ErrUnterminatedOpen:
			unterminated++
		}
	}
	if mismatches != 1 {
		t.Errorf("expected 1 mismatch diagnostic, got %d", mismatches)
	}
	if unterminated != 0 {
		t.Errorf("expected no unterminated-open diagnostics, got %d", unterminated)
	}
}

func TestReturnMustReachSemicolon(t *testing.T) {
	bag := analyze(t, `int f() { return 1 }`, Options{})

	if bag.WarningCount() != 1 {
		t.Fatalf("expected 1 warning, got %d", bag.WarningCount())
	}
	if !strings.Contains(bag.Snapshot()[0].Message, "'return'") {
		t.Errorf("unexpected diagnostic: %q", bag.Snapshot()[0].Message)
	}
}

func TestBreakAndContinueHeads(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		warns int
	}{
		{"terminated break", `while (1) { break; }`, 0},
		{"bare break", `while (1) { break }`, 1},
		{"terminated continue", `for (;;) { continue; }`, 0},
		{"bare continue", `for (;;) { continue }`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bag := analyze(t, tt.src, Options{})
			if bag.WarningCount() != tt.warns {
				t.Errorf("expected %d warnings, got %d", tt.warns, bag.WarningCount())
			}
		})
	}
}

func TestCommentsAreStructurallyTransparent(t *testing.T) {
	src := `int main() { /* ( [ { */ return 0; // )
}`
	bag := analyze(t, src, Options{})

	// Delimiters inside comments must not touch the stack
	if bag.HasErrors() {
		t.Errorf("expected no errors, got %d", bag.ErrorCount())
	}
}

func TestUnterminatedBlockCommentWarns(t *testing.T) {
	bag := analyze(t, `int x; /* never closed`, Options{})

	if bag.HasErrors() {
		t.Errorf("expected no errors, got %d", bag.ErrorCount())
	}
	if bag.WarningCount() != 1 {
		t.Errorf("expected 1 warning, got %d", bag.WarningCount())
	}
}

func TestPreprocessorLinesSkipped(t *testing.T) {
	src := `#include <stdio.h>
#define OPEN (
int main() { return 0; }`
	bag := analyze(t, src, Options{})

	if bag.HasErrors() || bag.WarningCount() != 0 {
		t.Errorf("expected clean result, got %d errors %d warnings",
			bag.ErrorCount(), bag.WarningCount())
	}
}

func TestUnknownTokenReported(t *testing.T) {
	bag := analyze(t, `int x = 1 @ 2;`, Options{})

	if bag.ErrorCount() != 1 {
		t.Fatalf("expected 1 error, got %d", bag.ErrorCount())
	}
	if bag.Snapshot()[0].Code != diagnostics.ErrUnknownToken {
		t.Errorf("unexpected code: %s", bag.Snapshot()[0].Code)
	}
}

func TestNestedBalancedDelimiters(t *testing.T) {
	bag := analyze(t, `void f() { if (a[0]) { g(b[i], (c)); } }`, Options{})

	if bag.HasErrors() {
		t.Errorf("expected no errors, got %d", bag.ErrorCount())
	}
}

func BenchmarkValidate(b *testing.B) {
	src := strings.Repeat(validProgram+"\n", 50)
	tokens := lexer.New("bench", src).Tokenize(false)
	bag := diagnostics.NewDiagnosticBag("bench")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bag.Clear()
		Validate(tokens, Options{}, bag)
	}
}
