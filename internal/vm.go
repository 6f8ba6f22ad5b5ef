package internal

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/zephyrtronium/contains"
)

// Version is the interpreter version.
const Version = "0.1.0"

// VM holds the core protos of minitalk and evaluates lines of source.
type VM struct {
	// BaseObject is the root proto of every object.
	BaseObject *Object
	// Number is the proto of both numeric kinds.
	Number *Object
	// Integer and Float are the protos of their numeric kinds.
	Integer *Object
	Float   *Object

	// Reporter receives recoverable diagnostics produced while evaluating.
	Reporter Reporter

	// protoSet is the set of protos checked during GetSlot.
	protoSet contains.Set
	// protoStack is the stack of protos to check during GetSlot.
	protoStack []*Object
}

// NewVM prepares a new VM. Diagnostics are written to standard output until
// the Reporter is replaced.
func NewVM() *VM {
	vm := VM{
		BaseObject: &Object{id: nextObject()},
		Reporter:   NewWriterReporter(os.Stdout),
	}
	vm.initNumber()
	return &vm
}

// AsString renders an object the way the REPL prints it. Integers print as
// decimal digits, floats with exactly ten fractional digits, and other objects
// as an opaque reference carrying their class, or nil if they hold nothing.
func (vm *VM) AsString(obj *Object) string {
	if obj == nil || obj.Value == nil {
		return "nil"
	}
	switch obj.Tag() {
	case IntegerTag:
		return strconv.FormatInt(mustValue[int64](obj), 10)
	case FloatTag:
		return formatFloat(mustValue[float64](obj))
	}
	return fmt.Sprintf("<%s at %p>", className(obj), obj)
}

// mustValue reads an object's value where its class guarantees the type.
func mustValue[T any](obj *Object) T {
	v, err := ValueAs[T](obj)
	if err != nil {
		panic(&ContractError{What: err.Error()})
	}
	return v
}

// Report sends a diagnostic to the VM's reporter.
func (vm *VM) Report(d Diagnostic) {
	if vm.Reporter != nil {
		vm.Reporter.Report(d)
	}
}

// Fprintln writes the rendering of obj followed by a newline to w. Nothing is
// written for a nil object.
func (vm *VM) Fprintln(w io.Writer, obj *Object) error {
	if obj == nil {
		return nil
	}
	_, err := fmt.Fprintln(w, vm.AsString(obj))
	return err
}
