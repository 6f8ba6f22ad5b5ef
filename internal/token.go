package internal

import "fmt"

// TokenKind is the lexical class of a token.
type TokenKind uint8

const (
	ErrorToken TokenKind = iota // unrecognized input

	SelfToken  // self
	SuperToken // super
	NilToken   // nil
	TrueToken  // true
	FalseToken // false

	LParenToken    // (
	RParenToken    // )
	LBracketToken  // [
	RBracketToken  // ]
	PeriodToken    // .
	SemicolonToken // ;
	ColonToken     // :
	PipeToken      // |
	CaretToken     // ^

	PlusToken         // +
	MinusToken        // -
	StarToken         // *
	SlashToken        // /
	AmpersandToken    // &
	LessToken         // <
	GreaterToken      // >
	LessEqualToken    // <=
	GreaterEqualToken // >=
	DoubleEqualToken  // ==
	AssignToken       // :=

	IdentToken     // identifier
	IntegerToken   // 123
	FloatToken     // 1.5, 1e3
	RadixToken     // 16rFF
	StringToken    // 'it''s'
	SymbolToken    // #foo or #'foo bar'
	CharacterToken // $x
	ArrayToken     // #(...)
	ByteArrayToken // #[...]
	CommentToken   // "..."
	WhitespaceToken
)

var tokenKindNames = [...]string{
	ErrorToken:        "Error",
	SelfToken:         "Self",
	SuperToken:        "Super",
	NilToken:          "Nil",
	TrueToken:         "True",
	FalseToken:        "False",
	LParenToken:       "LParen",
	RParenToken:       "RParen",
	LBracketToken:     "LBracket",
	RBracketToken:     "RBracket",
	PeriodToken:       "Period",
	SemicolonToken:    "Semicolon",
	ColonToken:        "Colon",
	PipeToken:         "Pipe",
	CaretToken:        "Caret",
	PlusToken:         "Plus",
	MinusToken:        "Minus",
	StarToken:         "Star",
	SlashToken:        "Slash",
	AmpersandToken:    "Ampersand",
	LessToken:         "LessThan",
	GreaterToken:      "GreaterThan",
	LessEqualToken:    "LessThanEqual",
	GreaterEqualToken: "GreaterThanEqual",
	DoubleEqualToken:  "DoubleEquals",
	AssignToken:       "Assignment",
	IdentToken:        "Identifier",
	IntegerToken:      "Integer",
	FloatToken:        "Float",
	RadixToken:        "RadixNumber",
	StringToken:       "String",
	SymbolToken:       "Symbol",
	CharacterToken:    "Character",
	ArrayToken:        "Array",
	ByteArrayToken:    "ByteArray",
	CommentToken:      "Comment",
	WhitespaceToken:   "Whitespace",
}

// String returns the name of a token kind.
func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(k))
}

// IsNumber reports whether the kind is a numeric literal.
func (k TokenKind) IsNumber() bool {
	return k == IntegerToken || k == FloatToken || k == RadixToken
}

// Span is a half-open range of byte offsets into a source string.
type Span struct {
	Start uint32 `json:"start" msgpack:"start"`
	End   uint32 `json:"end" msgpack:"end"`
}

// Len returns the length of the span in bytes.
func (s Span) Len() uint32 {
	return s.End - s.Start
}

// Text returns the part of src that the span covers.
func (s Span) Text(src string) string {
	return src[s.Start:s.End]
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Token is a single lexical element.
type Token struct {
	Kind TokenKind
	Span Span
	Text string
}

func (t Token) String() string {
	return fmt.Sprintf("%v %q at %v", t.Kind, t.Text, t.Span)
}
