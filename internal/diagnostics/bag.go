package diagnostics

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// DiagnosticBag collects diagnostics during one analysis run
type DiagnosticBag struct {
	diagnostics []*Diagnostic
	bufferName  string
	sourceLines []string
	mu          sync.Mutex
	errorCount  int
	warnCount   int
}

// NewDiagnosticBag creates a new diagnostic bag for a buffer
func NewDiagnosticBag(bufferName string) *DiagnosticBag {
	return &DiagnosticBag{
		diagnostics: make([]*Diagnostic, 0),
		bufferName:  bufferName,
	}
}

// SetSource seeds the bag with the analyzed buffer so the emitter can
// render source context. The input is interactive, so there is no file
// to re-read later; the buffer itself is the only source of truth.
func (db *DiagnosticBag) SetSource(name, content string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.bufferName = name
	db.sourceLines = strings.Split(content, "\n")
}

// Add adds a diagnostic to the bag
func (db *DiagnosticBag) Add(diag *Diagnostic) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.diagnostics = append(db.diagnostics, diag)

	switch diag.Severity {
	case Error:
		db.errorCount++
	case Warning:
		db.warnCount++
	}
}

// HasErrors returns true if there are any errors
func (db *DiagnosticBag) HasErrors() bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount > 0
}

// ErrorCount returns the number of errors
func (db *DiagnosticBag) ErrorCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount
}

// WarningCount returns the number of warnings
func (db *DiagnosticBag) WarningCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.warnCount
}

// Snapshot returns the collected diagnostics in insertion order. The
// returned slice is a copy; the bag can keep collecting afterwards.
func (db *DiagnosticBag) Snapshot() []*Diagnostic {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]*Diagnostic, len(db.diagnostics))
	copy(out, db.diagnostics)
	return out
}

// EmitAll renders all diagnostics to stderr
func (db *DiagnosticBag) EmitAll() {
	db.EmitAllToWriter(os.Stderr)
}

// EmitAllToWriter renders all diagnostics to a specific writer
func (db *DiagnosticBag) EmitAllToWriter(w io.Writer) {
	db.mu.Lock()
	diagnostics := make([]*Diagnostic, len(db.diagnostics))
	copy(diagnostics, db.diagnostics)
	name := db.bufferName
	lines := db.sourceLines
	errorCount := db.errorCount
	warnCount := db.warnCount
	db.mu.Unlock()

	emitter := NewEmitter(w)
	emitter.SetSourceLines(lines)

	for _, diag := range diagnostics {
		emitter.Emit(name, diag)
	}

	if errorCount > 0 {
		fmt.Fprintf(w, "\nAnalysis found %d error(s)", errorCount)
		if warnCount > 0 {
			fmt.Fprintf(w, " and %d warning(s)", warnCount)
		}
		fmt.Fprintln(w)
	} else if warnCount > 0 {
		fmt.Fprintf(w, "\nAnalysis found %d warning(s)\n", warnCount)
	}
}

// EmitAllToString renders all diagnostics to a string
func (db *DiagnosticBag) EmitAllToString() string {
	var buf bytes.Buffer
	db.EmitAllToWriter(&buf)
	return buf.String()
}

// Clear removes all diagnostics, returning the bag to its fresh
// state. Called at the start of every analysis run so repeated runs on
// one context stay independent.
func (db *DiagnosticBag) Clear() {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.diagnostics = make([]*Diagnostic, 0)
	db.sourceLines = nil
	db.errorCount = 0
	db.warnCount = 0
}
