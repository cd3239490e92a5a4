package lexer

import (
	"fmt"
	"os"
	"unicode/utf8"

	"csyntax/internal/source"
)

// ============================================================================
// TOKENIZER - raw characters to token stream
// ============================================================================
//
// The tokenizer is a single forward cursor over the source buffer. It
// is total: any input, including garbage, produces a token stream.
// Unrecognized bytes become UNKNOWN_TOKEN, unterminated literals and
// comments are emitted with the Unterminated flag set, and no error is
// ever returned. Structural judgement (is this buffer well-formed?)
// belongs to the validator, not here.

// Tokenizer holds the cursor state for scanning a single buffer.
// Created per buffer and discarded afterwards; it is not reused.
type Tokenizer struct {
	filePath string
	source   string
	dialect  *Dialect

	// start is the byte offset of the token being scanned;
	// current is the byte offset under the cursor.
	start   int
	current int

	// line is 1-based; lineStart is the offset where the current line
	// began, so column = offset - lineStart + 1.
	line      int
	lineStart int

	startPos source.Position
}

// New creates a tokenizer for the given buffer using the default
// C/C++ dialect.
func New(filePath, content string) *Tokenizer {
	return NewWithDialect(filePath, content, DefaultDialect())
}

// NewWithDialect creates a tokenizer with explicit classification
// tables. A nil dialect falls back to the default.
func NewWithDialect(filePath, content string, dialect *Dialect) *Tokenizer {
	if dialect == nil {
		dialect = DefaultDialect()
	}
	return &Tokenizer{
		filePath: filePath,
		source:   content,
		dialect:  dialect,
		line:     1,
	}
}

// Tokenize scans the whole buffer and returns the token stream in
// source order. Whitespace is skipped, everything else is emitted.
func (t *Tokenizer) Tokenize(debug bool) []Token {
	tokens := make([]Token, 0, 64)

	for {
		t.skipWhitespace()
		if t.isAtEnd() {
			break
		}

		t.start = t.current
		t.startPos = t.position()
		tok := t.scanToken()
		tokens = append(tokens, tok)

		if debug {
			fmt.Fprintf(os.Stderr, "    %s\n", tok)
		}
	}

	return tokens
}

// scanToken scans exactly one token starting at the cursor.
// Precondition: not at end, cursor on a non-whitespace byte.
func (t *Tokenizer) scanToken() Token {
	ch := t.peekByte()

	switch {
	case ch == '#':
		return t.scanPreprocessor()
	case ch == '/' && t.peekByteAt(1) == '/':
		return t.scanLineComment()
	case ch == '/' && t.peekByteAt(1) == '*':
		return t.scanBlockComment()
	case ch == '"':
		return t.scanString()
	case ch == '\'':
		return t.scanChar()
	case isDigit(ch), ch == '.' && isDigit(t.peekByteAt(1)):
		return t.scanNumber()
	case isIdentStart(ch):
		return t.scanWord()
	}

	if kind := delimiterKind(ch); kind != UNKNOWN_TOKEN {
		t.current++
		return t.makeToken(kind)
	}

	if op := t.dialect.MatchOperator(t.source[t.current:]); op != "" {
		t.current += len(op)
		return t.makeToken(OPERATOR_TOKEN)
	}

	// Nothing matched: consume one rune so the cursor always makes
	// progress and the lexeme round-trip stays byte exact.
	_, size := utf8.DecodeRuneInString(t.source[t.current:])
	t.current += size
	return t.makeToken(UNKNOWN_TOKEN)
}

// scanPreprocessor consumes a `#...` directive through end of line
func (t *Tokenizer) scanPreprocessor() Token {
	for !t.isAtEnd() && t.peekByte() != '\n' {
		t.current++
	}
	return t.makeToken(PREPROCESSOR_TOKEN)
}

// scanLineComment consumes `//` through end of line
func (t *Tokenizer) scanLineComment() Token {
	for !t.isAtEnd() && t.peekByte() != '\n' {
		t.current++
	}
	return t.makeToken(COMMENT_TOKEN)
}

// scanBlockComment consumes `/* ... */`. An unterminated comment is
// closed implicitly at end of input and flagged; the validator owns
// the diagnostic.
func (t *Tokenizer) scanBlockComment() Token {
	t.current += 2 // consume /*

	for !t.isAtEnd() {
		if t.peekByte() == '*' && t.peekByteAt(1) == '/' {
			t.current += 2
			return t.makeToken(COMMENT_TOKEN)
		}
		if t.peekByte() == '\n' {
			t.current++
			t.line++
			t.lineStart = t.current
			continue
		}
		t.current++
	}

	tok := t.makeToken(COMMENT_TOKEN)
	tok.Unterminated = true
	return tok
}

// scanString consumes a double-quoted literal. The quotes stay in the
// lexeme. Stops at the closing quote, end of line, or end of input;
// the latter two flag the token as unterminated.
func (t *Tokenizer) scanString() Token {
	t.current++ // opening quote

	for !t.isAtEnd() && t.peekByte() != '\n' {
		ch := t.peekByte()
		if ch == '\\' {
			t.current++
			if !t.isAtEnd() && t.peekByte() != '\n' {
				t.current++
			}
			continue
		}
		t.current++
		if ch == '"' {
			return t.makeToken(STRING_TOKEN)
		}
	}

	tok := t.makeToken(STRING_TOKEN)
	tok.Unterminated = true
	return tok
}

// scanChar consumes a single-quoted literal, same termination rules as
// scanString. Multi-character constants like 'ab' are tolerated; this
// is a scanner, not a conformance checker.
func (t *Tokenizer) scanChar() Token {
	t.current++ // opening quote

	for !t.isAtEnd() && t.peekByte() != '\n' {
		ch := t.peekByte()
		if ch == '\\' {
			t.current++
			if !t.isAtEnd() && t.peekByte() != '\n' {
				t.current++
			}
			continue
		}
		t.current++
		if ch == '\'' {
			return t.makeToken(CHAR_TOKEN)
		}
	}

	tok := t.makeToken(CHAR_TOKEN)
	tok.Unterminated = true
	return tok
}

// scanNumber consumes a numeric literal: digits with `'` separators,
// at most one decimal point, an optional exponent, and trailing
// integer/float suffix letters. Classification is INT unless a dot,
// exponent, or float suffix was seen.
func (t *Tokenizer) scanNumber() Token {
	isFloat := false

	t.consumeDigits()

	if !t.isAtEnd() && t.peekByte() == '.' && isDigit(t.peekByteAt(1)) {
		isFloat = true
		t.current++
		t.consumeDigits()
	} else if t.peekByte() == '.' && t.current > t.start {
		// trailing dot as in `1.` - still a float
		isFloat = true
		t.current++
		t.consumeDigits()
	}

	if !t.isAtEnd() && (t.peekByte() == 'e' || t.peekByte() == 'E') {
		// only an exponent when digits follow the optional sign
		probe := t.current + 1
		if probe < len(t.source) && (t.source[probe] == '+' || t.source[probe] == '-') {
			probe++
		}
		if probe < len(t.source) && isDigit(t.source[probe]) {
			isFloat = true
			t.current = probe
			t.consumeDigits()
		}
	}

	for !t.isAtEnd() {
		switch t.peekByte() {
		case 'f', 'F':
			isFloat = true
			t.current++
		case 'u', 'U', 'l', 'L':
			t.current++
		default:
			if isFloat {
				return t.makeToken(FLOAT_TOKEN)
			}
			return t.makeToken(INT_TOKEN)
		}
	}

	if isFloat {
		return t.makeToken(FLOAT_TOKEN)
	}
	return t.makeToken(INT_TOKEN)
}

// consumeDigits advances over digits and digit separators. A `'` only
// counts as a separator when a digit follows, so `1'000` is one lexeme
// but the `'` of `1'a'` starts a char literal.
func (t *Tokenizer) consumeDigits() {
	for !t.isAtEnd() {
		ch := t.peekByte()
		if isDigit(ch) {
			t.current++
			continue
		}
		if ch == '\'' && isDigit(t.peekByteAt(1)) {
			t.current += 2
			continue
		}
		return
	}
}

// scanWord consumes a maximal identifier run and classifies it against
// the dialect's keyword table.
func (t *Tokenizer) scanWord() Token {
	for !t.isAtEnd() && isIdentPart(t.peekByte()) {
		t.current++
	}
	word := t.source[t.start:t.current]
	return t.makeToken(t.dialect.ClassifyWord(word))
}

// skipWhitespace advances over spaces, tabs, carriage returns and
// newlines, maintaining the line counters. Nothing is emitted.
func (t *Tokenizer) skipWhitespace() {
	for !t.isAtEnd() {
		switch t.peekByte() {
		case ' ', '\t', '\r':
			t.current++
		case '\n':
			t.current++
			t.line++
			t.lineStart = t.current
		default:
			return
		}
	}
}

func (t *Tokenizer) makeToken(kind TokenKind) Token {
	return Token{
		Kind:  kind,
		Value: t.source[t.start:t.current],
		Start: t.startPos,
		End:   t.position(),
	}
}

func (t *Tokenizer) position() source.Position {
	return source.Position{
		Line:   t.line,
		Column: t.current - t.lineStart + 1,
		Offset: t.current,
	}
}

func (t *Tokenizer) isAtEnd() bool {
	return t.current >= len(t.source)
}

func (t *Tokenizer) peekByte() byte {
	if t.isAtEnd() {
		return 0
	}
	return t.source[t.current]
}

func (t *Tokenizer) peekByteAt(n int) byte {
	if t.current+n >= len(t.source) {
		return 0
	}
	return t.source[t.current+n]
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
