package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Emitter renders diagnostics in a Rust-style layout: a severity
// header, the source line with a caret underline per label, then any
// notes and help text.
type Emitter struct {
	w     io.Writer
	lines []string
}

var (
	errorHeader   = color.New(color.FgRed, color.Bold)
	warningHeader = color.New(color.FgYellow, color.Bold)
	infoHeader    = color.New(color.FgCyan, color.Bold)
	hintHeader    = color.New(color.FgMagenta, color.Bold)

	errorUnderline   = color.New(color.FgRed)
	warningUnderline = color.New(color.FgYellow)
	infoUnderline    = color.New(color.FgBlue)
	hintUnderline    = color.New(color.FgMagenta)

	gutter        = color.New(color.FgHiBlack)
	locationColor = color.New(color.FgBlue)
	secondary     = color.New(color.FgBlue)
	noteColor     = color.New(color.FgCyan)
	helpColor     = color.New(color.FgGreen)
)

// NewEmitter creates an emitter writing to w
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// SetSourceLines provides the analyzed buffer, split into lines, for
// snippet rendering. Without it only headers are printed.
func (e *Emitter) SetSourceLines(lines []string) {
	e.lines = lines
}

// Emit renders one diagnostic
func (e *Emitter) Emit(bufferName string, diag *Diagnostic) {
	e.printHeader(diag)

	for _, label := range diag.Labels {
		e.printLabel(bufferName, label, diag.Severity)
	}

	for _, note := range diag.Notes {
		noteColor.Fprint(e.w, "  = note: ")
		fmt.Fprintln(e.w, note.Message)
	}

	if diag.Help != "" {
		helpColor.Fprint(e.w, "  = help: ")
		fmt.Fprintln(e.w, diag.Help)
	}

	fmt.Fprintln(e.w)
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	header := e.headerColor(diag.Severity)

	header.Fprint(e.w, diag.Severity.String())
	if diag.Code != "" {
		fmt.Fprintf(e.w, "[%s]", diag.Code)
	}
	fmt.Fprint(e.w, ": ")
	header.Fprintln(e.w, diag.Message)
}

func (e *Emitter) printLabel(bufferName string, label Label, severity Severity) {
	if label.Location == nil || label.Location.Start == nil {
		return
	}

	start := label.Location.Start
	end := label.Location.End
	if end == nil {
		end = start
	}

	locationColor.Fprintf(e.w, "  --> %s:%d:%d\n", bufferName, start.Line, start.Column)

	sourceLine, ok := e.sourceLine(start.Line)
	if !ok {
		return
	}

	lineNumWidth := len(fmt.Sprintf("%d", start.Line))

	gutter.Fprint(e.w, strings.Repeat(" ", lineNumWidth))
	gutter.Fprintln(e.w, " |")

	gutter.Fprintf(e.w, "%*d | ", lineNumWidth, start.Line)
	fmt.Fprintln(e.w, sourceLine)

	gutter.Fprint(e.w, strings.Repeat(" ", lineNumWidth))
	gutter.Fprint(e.w, " | ")

	// Underline from the start column to the end column, clipped to
	// the line; multi-line spans underline to end of line.
	padding := start.Column - 1
	if padding > len(sourceLine) {
		padding = len(sourceLine)
	}
	length := 1
	if end.Line == start.Line && end.Column > start.Column {
		length = end.Column - start.Column
	} else if end.Line > start.Line {
		length = len(sourceLine) - padding
	}
	if length < 1 {
		length = 1
	}

	underline, char := e.underlineStyle(label.Style, severity, length)

	fmt.Fprint(e.w, strings.Repeat(" ", padding))
	underline.Fprint(e.w, strings.Repeat(char, length))
	if label.Message != "" {
		underline.Fprintf(e.w, " %s", label.Message)
	}
	fmt.Fprintln(e.w)

	gutter.Fprint(e.w, strings.Repeat(" ", lineNumWidth))
	gutter.Fprintln(e.w, " |")
}

func (e *Emitter) sourceLine(line int) (string, bool) {
	if line < 1 || line > len(e.lines) {
		return "", false
	}
	return e.lines[line-1], true
}

func (e *Emitter) headerColor(severity Severity) *color.Color {
	switch severity {
	case Error:
		return errorHeader
	case Warning:
		return warningHeader
	case Info:
		return infoHeader
	case Hint:
		return hintHeader
	default:
		return errorHeader
	}
}

func (e *Emitter) underlineStyle(style LabelStyle, severity Severity, length int) (*color.Color, string) {
	if style == Secondary {
		return secondary, "-"
	}

	char := "^"
	if length > 1 {
		char = "~"
	}

	switch severity {
	case Error:
		return errorUnderline, char
	case Warning:
		return warningUnderline, char
	case Info:
		return infoUnderline, char
	case Hint:
		return hintUnderline, char
	default:
		return errorUnderline, char
	}
}
