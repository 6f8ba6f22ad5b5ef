package minitalk

import (
	"io"

	"github.com/zephyrtronium/minitalk/internal"
)

// A VM evaluates minitalk source.
type VM = internal.VM

// Object is the basic value type of minitalk. Everything the evaluator
// produces is an Object.
//
// Always use a VM's constructors to obtain new objects. Creating objects
// directly will result in arbitrary failures.
type Object = internal.Object

// Slots maps operation names to the objects that implement them.
type Slots = internal.Slots

// Tag is a type indicator for minitalk objects. Tag values must be comparable.
type Tag = internal.Tag

// BasicTag is a Tag for primitive types whose class is identified by name.
type BasicTag = internal.BasicTag

// An Fn is a compiled operation bound to its receiver.
type Fn = internal.Fn

// A CFunction is the value of an object wrapping a bound Fn.
type CFunction = internal.CFunction

// ClassMismatchError is the error returned when an object's value is read as
// a type other than the one its class holds.
type ClassMismatchError = internal.ClassMismatchError

// ContractError describes an internal invariant violation. It is only raised
// with panic.
type ContractError = internal.ContractError

// Lexer converts source text into tokens on demand.
type Lexer = internal.Lexer

// Token is a single lexical element.
type Token = internal.Token

// TokenKind is the lexical class of a token.
type TokenKind = internal.TokenKind

// TokenSource is anything that produces tokens one at a time.
type TokenSource = internal.TokenSource

// Span is a half-open range of byte offsets into a source string.
type Span = internal.Span

// Diagnostic is a recoverable problem found while evaluating a line.
type Diagnostic = internal.Diagnostic

// Reporter receives diagnostics.
type Reporter = internal.Reporter

// Severity is the importance of a diagnostic.
type Severity = internal.Severity

// Code identifies the kind of problem a diagnostic describes.
type Code = internal.Code

// WriterReporter prints each diagnostic's message on its own line.
type WriterReporter = internal.WriterReporter

// DiagnosticRecorder keeps every diagnostic it receives.
type DiagnosticRecorder = internal.DiagnosticRecorder

// Tags for core types.
const (
	IntegerTag   = internal.IntegerTag
	FloatTag     = internal.FloatTag
	CFunctionTag = internal.CFunctionTag
)

// Token kinds.
const (
	ErrorToken        = internal.ErrorToken
	SelfToken         = internal.SelfToken
	SuperToken        = internal.SuperToken
	NilToken          = internal.NilToken
	TrueToken         = internal.TrueToken
	FalseToken        = internal.FalseToken
	LParenToken       = internal.LParenToken
	RParenToken       = internal.RParenToken
	LBracketToken     = internal.LBracketToken
	RBracketToken     = internal.RBracketToken
	PeriodToken       = internal.PeriodToken
	SemicolonToken    = internal.SemicolonToken
	ColonToken        = internal.ColonToken
	PipeToken         = internal.PipeToken
	CaretToken        = internal.CaretToken
	PlusToken         = internal.PlusToken
	MinusToken        = internal.MinusToken
	StarToken         = internal.StarToken
	SlashToken        = internal.SlashToken
	AmpersandToken    = internal.AmpersandToken
	LessToken         = internal.LessToken
	GreaterToken      = internal.GreaterToken
	LessEqualToken    = internal.LessEqualToken
	GreaterEqualToken = internal.GreaterEqualToken
	DoubleEqualToken  = internal.DoubleEqualToken
	AssignToken       = internal.AssignToken
	IdentToken        = internal.IdentToken
	IntegerToken      = internal.IntegerToken
	FloatToken        = internal.FloatToken
	RadixToken        = internal.RadixToken
	StringToken       = internal.StringToken
	SymbolToken       = internal.SymbolToken
	CharacterToken    = internal.CharacterToken
	ArrayToken        = internal.ArrayToken
	ByteArrayToken    = internal.ByteArrayToken
	CommentToken      = internal.CommentToken
	WhitespaceToken   = internal.WhitespaceToken
)

// Diagnostic severities.
const (
	SevInfo    = internal.SevInfo
	SevWarning = internal.SevWarning
	SevError   = internal.SevError
)

// Diagnostic codes.
const (
	CodeRadixFormat  = internal.CodeRadixFormat
	CodeRadixBase    = internal.CodeRadixBase
	CodeRadixRange   = internal.CodeRadixRange
	CodeRadixDigits  = internal.CodeRadixDigits
	CodeIntegerRange = internal.CodeIntegerRange
	CodeFloatFormat  = internal.CodeFloatFormat
	CodeNoMethod     = internal.CodeNoMethod
)

// Version is the interpreter version.
const Version = internal.Version

// NewVM prepares a new VM. Diagnostics are written to standard output until
// the Reporter is replaced.
func NewVM() *VM {
	return internal.NewVM()
}

// NewLexer creates a lexer over src.
func NewLexer(src string) *Lexer {
	return internal.NewLexer(src)
}

// Lex converts all of src into tokens, including whitespace.
func Lex(src string) []Token {
	return internal.Lex(src)
}

// NewWriterReporter creates a reporter printing to w.
func NewWriterReporter(w io.Writer) *WriterReporter {
	return internal.NewWriterReporter(w)
}

// ValueAs returns the object's value as a T. If the value is not a T, the
// error is a *ClassMismatchError.
func ValueAs[T any](o *Object) (T, error) {
	return internal.ValueAs[T](o)
}
