package internal

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
)

// A fixedToken is a keyword, punctuation, or operator spelled exactly one way.
type fixedToken struct {
	kind TokenKind
	text string
}

// A literalToken is a token class described by a regular expression.
type literalToken struct {
	kind TokenKind
	re   *regexp.Regexp
}

// fixedTokens take priority over literalTokens when both match the same
// length of input, so that e.g. "nil" is a keyword rather than an identifier.
var fixedTokens = []fixedToken{
	{SelfToken, "self"},
	{SuperToken, "super"},
	{NilToken, "nil"},
	{TrueToken, "true"},
	{FalseToken, "false"},

	{LParenToken, "("},
	{RParenToken, ")"},
	{LBracketToken, "["},
	{RBracketToken, "]"},
	{PeriodToken, "."},
	{SemicolonToken, ";"},
	{ColonToken, ":"},
	{PipeToken, "|"},
	{CaretToken, "^"},

	{PlusToken, "+"},
	{MinusToken, "-"},
	{StarToken, "*"},
	{SlashToken, "/"},
	{AmpersandToken, "&"},
	{LessToken, "<"},
	{GreaterToken, ">"},
	{LessEqualToken, "<="},
	{GreaterEqualToken, ">="},
	{DoubleEqualToken, "=="},
	{AssignToken, ":="},
}

var literalTokens = []literalToken{
	{IdentToken, anchored(`[a-zA-Z][a-zA-Z0-9_]*`)},
	{IntegerToken, anchored(`[0-9]+`)},
	{FloatToken, anchored(`[0-9]+\.[0-9]+(?:[eE][+-]?[0-9]+)?|[0-9]+[eE][+-]?[0-9]+`)},
	{RadixToken, anchored(`[0-9]+r[0-9A-Za-z]+`)},
	{StringToken, anchored(`'(?:[^']|'')*'`)},
	{SymbolToken, anchored(`#'(?:[^']|'')*'|#[a-zA-Z_][a-zA-Z0-9_]*`)},
	{CharacterToken, anchored(`\$.`)},
	{ArrayToken, anchored(`#\([^)]*\)`)},
	{ByteArrayToken, anchored(`#\[[^\]]*\]`)},
	{CommentToken, anchored(`"[^"]*"`)},
	{WhitespaceToken, anchored(`[ \t\r\n]+`)},
}

// anchored compiles expr so that it only matches at the start of its input
// and prefers the longest alternative.
func anchored(expr string) *regexp.Regexp {
	re := regexp.MustCompile(`^(?:` + expr + `)`)
	re.Longest()
	return re
}

// Lexer converts source text into tokens on demand. A Lexer has a single
// forward cursor; use Reset to lex new text.
type Lexer struct {
	src string
	pos int
	err error
}

// NewLexer creates a lexer over src.
func NewLexer(src string) *Lexer {
	l := new(Lexer)
	l.Reset(src)
	return l
}

// Reset restarts the lexer at the beginning of src.
func (l *Lexer) Reset(src string) {
	l.src = src
	l.pos = 0
	l.err = nil
	if _, err := safecast.Conv[uint32](len(src)); err != nil {
		l.err = fmt.Errorf("source of %d bytes is too large to lex: %w", len(src), err)
	}
}

// Source returns the text being lexed.
func (l *Lexer) Source() string {
	return l.src
}

// Err returns the error that stopped the lexer, if any. Unrecognized input is
// not an error; it produces ErrorToken tokens.
func (l *Lexer) Err() error {
	return l.err
}

// Next returns the next token. The second result is false once the input is
// exhausted.
func (l *Lexer) Next() (Token, bool) {
	if l.err != nil || l.pos >= len(l.src) {
		return Token{}, false
	}
	rest := l.src[l.pos:]
	kind, n := match(rest)
	if n == 0 {
		// Nothing matches. Consume one character so the stream continues.
		_, n = utf8.DecodeRuneInString(rest)
		kind = ErrorToken
	}
	start := l.pos
	l.pos += n
	return Token{
		Kind: kind,
		Span: Span{Start: uint32(start), End: uint32(l.pos)},
		Text: rest[:n],
	}, true
}

// match finds the longest token at the start of s. Fixed tokens win ties.
func match(s string) (kind TokenKind, n int) {
	for _, t := range fixedTokens {
		if len(t.text) > n && strings.HasPrefix(s, t.text) {
			kind, n = t.kind, len(t.text)
		}
	}
	for _, t := range literalTokens {
		if loc := t.re.FindStringIndex(s); loc != nil && loc[1] > n {
			kind, n = t.kind, loc[1]
		}
	}
	return kind, n
}

// TokenSource is anything that produces tokens one at a time.
type TokenSource interface {
	Next() (Token, bool)
}

// Lex converts all of src into tokens, including whitespace.
func Lex(src string) []Token {
	l := NewLexer(src)
	var toks []Token
	for tok, ok := l.Next(); ok; tok, ok = l.Next() {
		toks = append(toks, tok)
	}
	return toks
}
