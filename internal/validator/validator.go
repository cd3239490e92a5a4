// Package validator checks the structural well-formedness of a token
// stream: delimiter balance, literal termination, and coarse statement
// structure. It builds no syntax tree and applies no grammar; the
// checks are exactly the ones a delimiter stack and a forward walk can
// answer.
package validator

import (
	"csyntax/internal/diagnostics"
	"csyntax/internal/frontend/lexer"
)

// Options controls validation behavior
type Options struct {
	// StrictStatements promotes statement-termination findings from
	// Warning to Error severity, so they flip the verdict.
	StrictStatements bool
}

// DelimiterFrame records one open delimiter awaiting its close
type DelimiterFrame struct {
	Shape lexer.DelimiterShape
	Open  lexer.Token
}

// Validator holds the walk state for a single pass. Created per run
// and discarded; the delimiter stack never outlives the token stream
// it was built from.
type Validator struct {
	tokens []lexer.Token
	opts   Options
	bag    *diagnostics.DiagnosticBag
	stack  []DelimiterFrame
}

// Validate runs the structural pass over the token stream, reporting
// findings into the bag. It never fails; the verdict is the bag's
// error count.
func Validate(tokens []lexer.Token, opts Options, bag *diagnostics.DiagnosticBag) {
	v := &Validator{
		tokens: tokens,
		opts:   opts,
		bag:    bag,
		stack:  make([]DelimiterFrame, 0, 8),
	}
	v.run()
}

func (v *Validator) run() {
	for i := range v.tokens {
		tok := &v.tokens[i]

		switch tok.Kind {
		case lexer.COMMENT_TOKEN:
			if tok.Unterminated {
				v.bag.Add(diagnostics.UnterminatedBlockComment(tok.Location()))
			}
			continue
		case lexer.PREPROCESSOR_TOKEN:
			continue
		case lexer.UNKNOWN_TOKEN:
			v.bag.Add(diagnostics.UnknownToken(tok.Location(), tok.Value))
			continue
		case lexer.STRING_TOKEN:
			if tok.Unterminated {
				v.bag.Add(diagnostics.UnterminatedString(tok.Location()))
			}
			continue
		case lexer.CHAR_TOKEN:
			if tok.Unterminated {
				v.bag.Add(diagnostics.UnterminatedChar(tok.Location()))
			}
			continue
		}

		if tok.Kind.IsOpenDelimiter() {
			v.stack = append(v.stack, DelimiterFrame{
				Shape: tok.Kind.Shape(),
				Open:  *tok,
			})
			continue
		}

		if tok.Kind.IsCloseDelimiter() {
			v.checkClose(tok)
			continue
		}

		if tok.Kind == lexer.KEYWORD_TOKEN && isJumpStatementHead(tok.Value) {
			v.checkStatementHead(i)
		}
	}

	// Remaining frames were opened but never closed. The stack is
	// walked bottom-up so diagnostics come out line-ascending.
	for i := range v.stack {
		frame := &v.stack[i]
		v.bag.Add(diagnostics.UnterminatedDelimiter(
			frame.Open.Location(), frame.Open.Value, frame.Open.Start.Line))
	}

	v.checkTrailingRun()
}

// checkClose matches a close delimiter against the innermost frame.
// Recovery policy: pop only on a shape match. A mismatch with a
// non-empty stack reports the close as an orphan and leaves the frame
// in place, so a single stray ')' inside braces produces one
// diagnostic instead of cascading through the rest of the buffer.
func (v *Validator) checkClose(tok *lexer.Token) {
	if len(v.stack) == 0 {
		v.bag.Add(diagnostics.UnmatchedClosingDelimiter(tok.Location(), tok.Value))
		return
	}

	top := &v.stack[len(v.stack)-1]
	if top.Shape == tok.Kind.Shape() {
		v.stack = v.stack[:len(v.stack)-1]
		return
	}

	v.bag.Add(diagnostics.DelimiterMismatch(
		tok.Location(), top.Open.Location(),
		top.Shape.CloseRune(), tok.Value))
}

// isJumpStatementHead reports whether the keyword begins a statement
// that must reach a ';' before any block boundary.
func isJumpStatementHead(word string) bool {
	return word == "return" || word == "break" || word == "continue"
}

// checkStatementHead scans forward from a return/break/continue head
// looking for ';' before a '{' or '}'. Comments and preprocessor
// lines are transparent to the search.
func (v *Validator) checkStatementHead(head int) {
	for i := head + 1; i < len(v.tokens); i++ {
		tok := &v.tokens[i]
		switch tok.Kind {
		case lexer.COMMENT_TOKEN, lexer.PREPROCESSOR_TOKEN:
			continue
		case lexer.PUNCTUATION_TOKEN:
			if tok.Value == ";" {
				return
			}
		case lexer.OPEN_CURLY, lexer.CLOSE_CURLY:
			v.addHeuristic(diagnostics.MissingStatementTerminator(
				v.tokens[head].Location(), v.tokens[head].Value))
			return
		}
	}

	v.addHeuristic(diagnostics.MissingStatementTerminator(
		v.tokens[head].Location(), v.tokens[head].Value))
}

// checkTrailingRun flags a buffer whose final statement-like run never
// reaches a terminator. The run is the structural tokens after the
// last ';', '{' or '}'; it is flagged only when it contains something
// statement-like (not just stray close delimiters, which already got
// their own diagnostics).
func (v *Validator) checkTrailingRun() {
	var run []*lexer.Token
	for i := range v.tokens {
		tok := &v.tokens[i]
		switch tok.Kind {
		case lexer.COMMENT_TOKEN, lexer.PREPROCESSOR_TOKEN:
			continue
		case lexer.OPEN_CURLY, lexer.CLOSE_CURLY:
			run = run[:0]
			continue
		case lexer.PUNCTUATION_TOKEN:
			if tok.Value == ";" {
				run = run[:0]
				continue
			}
		}
		run = append(run, tok)
	}

	if len(run) == 0 {
		return
	}

	flaggable := false
	for _, tok := range run {
		// An unterminated literal already got its own diagnostic and
		// swallowed the rest of the line; termination is moot.
		if tok.Unterminated {
			return
		}
		if !tok.Kind.IsCloseDelimiter() {
			flaggable = true
		}
	}
	if !flaggable {
		return
	}

	// Jump-statement heads already produced a finding for this run.
	for _, tok := range run {
		if tok.Kind == lexer.KEYWORD_TOKEN && isJumpStatementHead(tok.Value) {
			return
		}
	}

	head := run[0]
	v.addHeuristic(diagnostics.MissingStatementTerminator(head.Location(), ""))
}

// addHeuristic files a heuristic finding at the configured severity
func (v *Validator) addHeuristic(diag *diagnostics.Diagnostic) {
	if v.opts.StrictStatements {
		diag.AsError()
	}
	v.bag.Add(diag)
}
