package diagnostics

import (
	"fmt"

	"csyntax/internal/source"
)

// Common diagnostic builders for the scanner-flagged anomalies

// UnknownToken creates a diagnostic for an unrecognized lexeme
func UnknownToken(loc *source.Location, value string) *Diagnostic {
	return NewError(fmt.Sprintf("unknown token %q", value)).
		WithCode(ErrUnknownToken).
		WithPrimaryLabel(loc, "unrecognized character").
		WithHelp("remove this character or check if it's a typo")
}

// UnterminatedString creates a diagnostic for an unterminated string literal
func UnterminatedString(loc *source.Location) *Diagnostic {
	return NewError("unterminated string literal").
		WithCode(ErrUnterminatedString).
		WithPrimaryLabel(loc, "string starts here").
		WithHelp("add a closing quote (\") to terminate the string")
}

// UnterminatedChar creates a diagnostic for an unterminated char literal
func UnterminatedChar(loc *source.Location) *Diagnostic {
	return NewError("unterminated char literal").
		WithCode(ErrUnterminatedChar).
		WithPrimaryLabel(loc, "char starts here").
		WithHelp("add a closing quote (') to terminate the character")
}

// UnterminatedBlockComment creates a diagnostic for a block comment
// that was implicitly closed at end of input
func UnterminatedBlockComment(loc *source.Location) *Diagnostic {
	return NewWarning("unterminated block comment").
		WithCode(WarnUnterminatedBlock).
		WithPrimaryLabel(loc, "comment opened here").
		WithHelp("close the comment with */")
}

// Common diagnostic builders for the structural validator

// UnmatchedClosingDelimiter creates a diagnostic for a close delimiter
// with no open frame on the stack
func UnmatchedClosingDelimiter(loc *source.Location, value string) *Diagnostic {
	return NewError("unmatched closing delimiter").
		WithCode(ErrUnmatchedClose).
		WithPrimaryLabel(loc, fmt.Sprintf("'%s' closes nothing", value)).
		WithHelp("remove this delimiter or add a matching opening one")
}

// DelimiterMismatch creates a diagnostic for a close delimiter whose
// shape does not match the innermost open frame
func DelimiterMismatch(closeLoc, openLoc *source.Location, expected, got string) *Diagnostic {
	return NewError(fmt.Sprintf("delimiter mismatch: expected '%s', got '%s'", expected, got)).
		WithCode(ErrDelimiterMismatch).
		WithPrimaryLabel(closeLoc, "mismatched delimiter here").
		WithSecondaryLabel(openLoc, "innermost open delimiter").
		WithHelp(fmt.Sprintf("close the inner delimiter with '%s' first", expected))
}

// UnterminatedDelimiter creates a diagnostic for a frame still open at
// end of input
func UnterminatedDelimiter(loc *source.Location, value string, line int) *Diagnostic {
	return NewError(fmt.Sprintf("unterminated delimiter opened at line %d", line)).
		WithCode(ErrUnterminatedOpen).
		WithPrimaryLabel(loc, fmt.Sprintf("'%s' is never closed", value)).
		WithHelp("add the matching closing delimiter")
}

// MissingStatementTerminator creates a diagnostic for a statement run
// that never reaches a terminator. The check is a heuristic, so this
// is Warning severity unless the caller promotes it.
func MissingStatementTerminator(loc *source.Location, after string) *Diagnostic {
	msg := "missing statement terminator"
	if after != "" {
		msg = fmt.Sprintf("missing ';' after '%s' statement", after)
	}
	return NewWarning(msg).
		WithCode(WarnMissingTerminator).
		WithPrimaryLabel(loc, "statement is never terminated").
		WithNote("statement structure checks are heuristic and may misfire on valid code").
		WithHelp("end the statement with ';' or a block")
}
