package internal

import (
	"fmt"
	"io"
)

// Severity is the importance of a diagnostic.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}

// Code identifies the kind of problem a diagnostic describes.
type Code string

// Diagnostic codes produced by the evaluator.
const (
	CodeRadixFormat  Code = "radix-format"
	CodeRadixBase    Code = "radix-base"
	CodeRadixRange   Code = "radix-range"
	CodeRadixDigits  Code = "radix-digits"
	CodeIntegerRange Code = "integer-range"
	CodeFloatFormat  Code = "float-format"
	CodeNoMethod     Code = "no-method"
)

// Diagnostic is a recoverable problem found while evaluating a line. The
// offending token or operator is skipped and evaluation continues.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	// Span locates the problem in Source.
	Span   Span
	Source string
}

func (d Diagnostic) String() string {
	return d.Message
}

// Reporter receives diagnostics.
type Reporter interface {
	Report(Diagnostic)
}

// WriterReporter prints each diagnostic's message on its own line.
type WriterReporter struct {
	W io.Writer
}

// NewWriterReporter creates a reporter printing to w.
func NewWriterReporter(w io.Writer) *WriterReporter {
	return &WriterReporter{W: w}
}

// Report prints the diagnostic.
func (r *WriterReporter) Report(d Diagnostic) {
	fmt.Fprintln(r.W, d.Message)
}

// DiagnosticRecorder keeps every diagnostic it receives.
type DiagnosticRecorder struct {
	Diagnostics []Diagnostic
}

// Report records the diagnostic.
func (r *DiagnosticRecorder) Report(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
}

// Codes returns the codes of the recorded diagnostics in order.
func (r *DiagnosticRecorder) Codes() []Code {
	codes := make([]Code, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		codes[i] = d.Code
	}
	return codes
}

// Reset discards the recorded diagnostics.
func (r *DiagnosticRecorder) Reset() {
	r.Diagnostics = r.Diagnostics[:0]
}
