package lexer

// ============================================================================
// TOKEN CLASSIFIER - lexeme shape to token kind
// ============================================================================
//
// The classifier holds the keyword set and the operator table as
// immutable data consulted by the tokenizer. Keeping the tables out of
// the scan loop lets a dialect (say, plain C without C++ keywords, or
// a project with contextual keywords) swap them without touching the
// cursor logic.

// Dialect carries the classification tables for one language variant.
// A Dialect is immutable after construction; tokenizers share it
// freely across goroutines.
type Dialect struct {
	keywords  map[string]bool
	operators []string // priority-ordered, longest lexemes first
}

// cppKeywords is the union of the C and C++ keyword and builtin type
// sets recognized by the analyzer.
var cppKeywords = []string{
	"auto", "bool", "break", "case", "catch", "char", "class", "const",
	"continue", "default", "delete", "do", "double", "else", "enum",
	"extern", "false", "float", "for", "friend", "goto", "if", "int",
	"long", "namespace", "new", "private", "protected", "public",
	"register", "return", "short", "signed", "sizeof", "static",
	"string", "struct", "switch", "this", "throw", "true", "try",
	"typedef", "union", "unsigned", "using", "virtual", "void",
	"volatile", "while",
}

// cppOperators is the operator table in match priority order. Longer
// lexemes come first so maximal munch falls out of a linear scan:
// `<<=` must win over `<<`, which must win over `<`. Within one
// length, table order is the fixed tie-break.
var cppOperators = []string{
	"<<=", ">>=", "...",
	"++", "--", "==", "!=", "<=", ">=", "&&", "||", "<<", ">>",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "->", "::",
	"+", "-", "*", "/", "%", "=", "<", ">", "!", "&", "|", "^", "~",
	".", ":", "?",
}

// DefaultDialect returns the stock C/C++ dialect
func DefaultDialect() *Dialect {
	return NewDialect(cppKeywords, cppOperators)
}

// NewDialect builds a dialect from explicit tables. The slices are
// copied; callers cannot mutate the dialect afterwards.
func NewDialect(keywords, operators []string) *Dialect {
	kw := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		kw[k] = true
	}
	ops := make([]string, len(operators))
	copy(ops, operators)
	return &Dialect{
		keywords:  kw,
		operators: ops,
	}
}

// WithKeywords returns a new dialect with extra keywords added to the
// base set. Used by config files to extend the default tables.
func (d *Dialect) WithKeywords(extra []string) *Dialect {
	if len(extra) == 0 {
		return d
	}
	kw := make(map[string]bool, len(d.keywords)+len(extra))
	for k := range d.keywords {
		kw[k] = true
	}
	for _, k := range extra {
		kw[k] = true
	}
	return &Dialect{
		keywords:  kw,
		operators: d.operators,
	}
}

// IsKeyword reports whether an identifier lexeme is a reserved word
func (d *Dialect) IsKeyword(word string) bool {
	return d.keywords[word]
}

// MatchOperator returns the longest operator lexeme that prefixes rest,
// or "" when no table entry matches.
func (d *Dialect) MatchOperator(rest string) string {
	for _, op := range d.operators {
		if len(rest) >= len(op) && rest[:len(op)] == op {
			return op
		}
	}
	return ""
}

// ClassifyWord maps an identifier-shaped lexeme to its kind
func (d *Dialect) ClassifyWord(word string) TokenKind {
	if d.IsKeyword(word) {
		return KEYWORD_TOKEN
	}
	return IDENTIFIER_TOKEN
}

// delimiterKind maps a delimiter or punctuation byte to its kind.
// Returns UNKNOWN_TOKEN when the byte is neither.
func delimiterKind(ch byte) TokenKind {
	switch ch {
	case '(':
		return OPEN_PAREN
	case ')':
		return CLOSE_PAREN
	case '{':
		return OPEN_CURLY
	case '}':
		return CLOSE_CURLY
	case '[':
		return OPEN_BRACKET
	case ']':
		return CLOSE_BRACKET
	case ';', ',':
		return PUNCTUATION_TOKEN
	default:
		return UNKNOWN_TOKEN
	}
}
