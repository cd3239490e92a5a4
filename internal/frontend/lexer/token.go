// Package lexer turns raw C/C++ source text into a positioned token
// stream. The scanner is total: it never returns an error, and every
// byte of input lands in some token or in skipped whitespace.
package lexer

import (
	"fmt"

	"csyntax/internal/source"
)

// TokenKind identifies the lexical class of a token
type TokenKind int

const (
	KEYWORD_TOKEN TokenKind = iota
	IDENTIFIER_TOKEN
	INT_TOKEN
	FLOAT_TOKEN
	STRING_TOKEN
	CHAR_TOKEN
	OPERATOR_TOKEN
	PUNCTUATION_TOKEN
	OPEN_PAREN
	CLOSE_PAREN
	OPEN_CURLY
	CLOSE_CURLY
	OPEN_BRACKET
	CLOSE_BRACKET
	COMMENT_TOKEN
	PREPROCESSOR_TOKEN
	UNKNOWN_TOKEN
)

func (k TokenKind) String() string {
	switch k {
	case KEYWORD_TOKEN:
		return "KEYWORD"
	case IDENTIFIER_TOKEN:
		return "IDENTIFIER"
	case INT_TOKEN:
		return "INT"
	case FLOAT_TOKEN:
		return "FLOAT"
	case STRING_TOKEN:
		return "STRING"
	case CHAR_TOKEN:
		return "CHAR"
	case OPERATOR_TOKEN:
		return "OPERATOR"
	case PUNCTUATION_TOKEN:
		return "PUNCTUATION"
	case OPEN_PAREN:
		return "LPAREN"
	case CLOSE_PAREN:
		return "RPAREN"
	case OPEN_CURLY:
		return "LBRACE"
	case CLOSE_CURLY:
		return "RBRACE"
	case OPEN_BRACKET:
		return "LBRACKET"
	case CLOSE_BRACKET:
		return "RBRACKET"
	case COMMENT_TOKEN:
		return "COMMENT"
	case PREPROCESSOR_TOKEN:
		return "PREPROCESSOR"
	case UNKNOWN_TOKEN:
		return "UNKNOWN"
	default:
		return "INVALID"
	}
}

// DelimiterShape distinguishes the three bracket families tracked by
// the structural validator.
type DelimiterShape int

const (
	ParenShape DelimiterShape = iota
	BraceShape
	BracketShape
)

func (s DelimiterShape) String() string {
	switch s {
	case ParenShape:
		return "paren"
	case BraceShape:
		return "brace"
	case BracketShape:
		return "bracket"
	default:
		return "unknown"
	}
}

// OpenRune returns the opening character of the shape
func (s DelimiterShape) OpenRune() string {
	switch s {
	case ParenShape:
		return "("
	case BraceShape:
		return "{"
	case BracketShape:
		return "["
	default:
		return "?"
	}
}

// CloseRune returns the closing character of the shape
func (s DelimiterShape) CloseRune() string {
	switch s {
	case ParenShape:
		return ")"
	case BraceShape:
		return "}"
	case BracketShape:
		return "]"
	default:
		return "?"
	}
}

// IsOpenDelimiter reports whether the kind opens a delimiter pair
func (k TokenKind) IsOpenDelimiter() bool {
	return k == OPEN_PAREN || k == OPEN_CURLY || k == OPEN_BRACKET
}

// IsCloseDelimiter reports whether the kind closes a delimiter pair
func (k TokenKind) IsCloseDelimiter() bool {
	return k == CLOSE_PAREN || k == CLOSE_CURLY || k == CLOSE_BRACKET
}

// Shape maps a delimiter kind to its bracket family.
// Calling it on a non-delimiter kind is a programming error; it
// returns ParenShape so the validator stays total.
func (k TokenKind) Shape() DelimiterShape {
	switch k {
	case OPEN_PAREN, CLOSE_PAREN:
		return ParenShape
	case OPEN_CURLY, CLOSE_CURLY:
		return BraceShape
	case OPEN_BRACKET, CLOSE_BRACKET:
		return BracketShape
	default:
		return ParenShape
	}
}

// Token is one classified, positioned unit of source text.
// Value holds the raw lexeme exactly as it appeared in the buffer, so
// concatenating every lexeme with the skipped whitespace reconstructs
// the input.
type Token struct {
	Kind  TokenKind
	Value string
	Start source.Position
	End   source.Position

	// Unterminated marks string/char literals and block comments that
	// reached end of line or end of input before their closing
	// terminator. The scanner never fails on them; the validator turns
	// this flag into a diagnostic.
	Unterminated bool
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, '%s', Line: %d, Col: %d)", t.Kind, t.Value, t.Start.Line, t.Start.Column)
}

// Location returns the token's span for diagnostics
func (t *Token) Location() *source.Location {
	return source.NewLocation(&t.Start, &t.End)
}
