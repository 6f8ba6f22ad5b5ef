package internal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// evalState is the state of the evaluator over one line. None of it outlives
// the line.
type evalState struct {
	// stack holds operands, most recent last.
	stack []*Object
	// pending is an operation bound to its left operand, awaiting the next
	// literal as its right operand.
	pending *Object
	// sign negates the next numeric literal.
	sign bool
	// src is the line's text, for diagnostics.
	src string
}

func (s *evalState) pop() (*Object, bool) {
	if len(s.stack) == 0 {
		return nil, false
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return top, true
}

// DoString evaluates one line of source. The result is the object left on top
// of the stack, or nil if there is none.
func (vm *VM) DoString(src string) *Object {
	return vm.DoTokens(NewLexer(src))
}

// DoTokens evaluates one line's tokens. Binary messages have no precedence:
// each operator takes the value to its left as the receiver and the next
// numeric literal as the argument, strictly left to right. Token kinds other
// than numbers and + - * are consumed without effect.
func (vm *VM) DoTokens(toks TokenSource) *Object {
	var s evalState
	if l, ok := toks.(interface{ Source() string }); ok {
		s.src = l.Source()
	}
	for tok, ok := toks.Next(); ok; tok, ok = toks.Next() {
		switch tok.Kind {
		case IntegerToken, FloatToken, RadixToken:
			n, ok := vm.parseNumber(&s, tok)
			if !ok {
				continue
			}
			if s.sign {
				n.i, n.f = -n.i, -n.f
				s.sign = false
			}
			var lit *Object
			if n.tag == IntegerTag {
				lit = vm.NewInteger(n.i)
			} else {
				lit = vm.NewFloat(n.f)
			}
			if s.pending != nil {
				lit = s.pending.Activate(vm, lit)
				s.pending = nil
			}
			s.stack = append(s.stack, lit)
		case PlusToken:
			vm.send(&s, tok, opAdd)
		case StarToken:
			vm.send(&s, tok, opMul)
		case MinusToken:
			// A minus after an operator, or at the start of the line, negates
			// the next literal instead of subtracting.
			if s.pending != nil || len(s.stack) == 0 {
				s.sign = !s.sign
				continue
			}
			vm.send(&s, tok, opSub)
		}
	}
	r, _ := s.pop()
	return r
}

// send pops the receiver of a binary operator and makes its operation
// pending. An operator with no receiver clears the sign instead.
func (vm *VM) send(s *evalState, tok Token, op arithOp) {
	recv, ok := s.pop()
	if !ok {
		s.sign = false
		return
	}
	fn, proto := vm.GetSlot(recv, op.slot())
	if proto == nil {
		vm.Report(Diagnostic{
			Severity: SevError,
			Code:     CodeNoMethod,
			Message:  fmt.Sprintf("No '%s' function found", op.slot()),
			Span:     tok.Span,
			Source:   s.src,
		})
		return
	}
	s.pending = fn
}

// parseNumber converts a numeric literal token. If the literal is invalid, it
// reports a diagnostic and returns false.
func (vm *VM) parseNumber(s *evalState, tok Token) (number, bool) {
	report := func(code Code, format string, args ...interface{}) (number, bool) {
		vm.Report(Diagnostic{
			Severity: SevError,
			Code:     code,
			Message:  fmt.Sprintf(format, args...),
			Span:     tok.Span,
			Source:   s.src,
		})
		return number{}, false
	}
	switch tok.Kind {
	case IntegerToken:
		i, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return report(CodeIntegerRange, "Integer '%s' is out of range", tok.Text)
		}
		return number{tag: IntegerTag, i: i}, true
	case FloatToken:
		f, err := strconv.ParseFloat(tok.Text, 64)
		// Out of range floats saturate to infinity.
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return report(CodeFloatFormat, "Invalid float '%s'", tok.Text)
		}
		return number{tag: FloatTag, f: f}, true
	case RadixToken:
		digits, rest, ok := strings.Cut(tok.Text, "r")
		if !ok {
			return report(CodeRadixFormat, "Invalid radix number format: '%s'", tok.Text)
		}
		base, err := strconv.ParseUint(digits, 10, 32)
		if err != nil {
			return report(CodeRadixBase, "Invalid base: '%s'", digits)
		}
		if base < 2 || base > 36 {
			return report(CodeRadixRange, "Base %d is out of range. It must be between 2 and 36.", base)
		}
		i, err := strconv.ParseInt(rest, int(base), 64)
		if err != nil {
			return report(CodeRadixDigits, "Invalid number '%s' in base %d", rest, base)
		}
		return number{tag: IntegerTag, i: i}, true
	}
	panic(&ContractError{What: "parseNumber on " + tok.Kind.String()})
}
