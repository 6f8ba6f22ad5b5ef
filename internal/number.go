package internal

import (
	"math"
	"strconv"
)

// Tags for the numeric kinds.
const (
	IntegerTag BasicTag = "integer"
	FloatTag   BasicTag = "float"
)

// number is an unboxed numeric operand. Exactly one of i and f is meaningful,
// selected by tag.
type number struct {
	tag BasicTag
	i   int64
	f   float64
}

// float widens the number to floating point.
func (n number) float() float64 {
	if n.tag == IntegerTag {
		return float64(n.i)
	}
	return n.f
}

// arithOp is a binary arithmetic operation.
type arithOp uint8

const (
	opAdd arithOp = iota
	opSub
	opMul
)

// slot returns the name of the slot implementing the operation.
func (op arithOp) slot() string {
	switch op {
	case opAdd:
		return "add"
	case opSub:
		return "sub"
	case opMul:
		return "mul"
	}
	panic(&ContractError{What: "unknown arithmetic operation " + strconv.Itoa(int(op))})
}

func (op arithOp) ints(a, b int64) int64 {
	switch op {
	case opAdd:
		return a + b
	case opSub:
		return a - b
	default:
		return a * b
	}
}

func (op arithOp) floats(a, b float64) float64 {
	switch op {
	case opAdd:
		return a + b
	case opSub:
		return a - b
	default:
		return a * b
	}
}

var arithOps = [...]arithOp{opAdd, opSub, opMul}

// initNumber creates the numeric protos.
func (vm *VM) initNumber() {
	vm.Number = vm.ObjectWith(nil, []*Object{vm.BaseObject}, nil, nil)
	vm.Integer = vm.ObjectWith(nil, []*Object{vm.Number}, int64(0), IntegerTag)
	vm.Float = vm.ObjectWith(nil, []*Object{vm.Number}, float64(0), FloatTag)
}

// NewInteger creates an integer object. Its add, sub, and mul slots are bound
// to value.
func (vm *VM) NewInteger(value int64) *Object {
	return vm.newNumber(number{tag: IntegerTag, i: value}, vm.Integer)
}

// NewFloat creates a float object. Its add, sub, and mul slots are bound to
// value.
func (vm *VM) NewFloat(value float64) *Object {
	return vm.newNumber(number{tag: FloatTag, f: value}, vm.Float)
}

func (vm *VM) newNumber(n number, proto *Object) *Object {
	var v interface{} = n.i
	if n.tag == FloatTag {
		v = n.f
	}
	o := vm.ObjectWith(nil, []*Object{proto}, v, n.tag)
	for _, op := range arithOps {
		op := op
		f := func(vm *VM, other *Object) *Object {
			right, ok := vm.numberOf(other)
			if !ok {
				panic(&ContractError{What: op.slot() + " on " + n.tag.String() + " received a " + className(other)})
			}
			return vm.arith(op, n, right)
		}
		vm.SetSlot(o, op.slot(), vm.NewCFunction(f, n.tag.String()+" "+op.slot()))
	}
	return o
}

// numberOf unboxes an integer or float object.
func (vm *VM) numberOf(o *Object) (number, bool) {
	if !o.IsKindOf(vm.Number) {
		return number{}, false
	}
	switch o.Tag() {
	case IntegerTag:
		i, err := ValueAs[int64](o)
		return number{tag: IntegerTag, i: i}, err == nil
	case FloatTag:
		f, err := ValueAs[float64](o)
		return number{tag: FloatTag, f: f}, err == nil
	}
	return number{}, false
}

// arith applies op to a and b. An integer result requires both operands to be
// integers; any float operand promotes the result to float. Integer results
// wrap on overflow.
func (vm *VM) arith(op arithOp, a, b number) *Object {
	switch [2]BasicTag{a.tag, b.tag} {
	case [2]BasicTag{IntegerTag, IntegerTag}:
		return vm.NewInteger(op.ints(a.i, b.i))
	case [2]BasicTag{IntegerTag, FloatTag},
		[2]BasicTag{FloatTag, IntegerTag},
		[2]BasicTag{FloatTag, FloatTag}:
		return vm.NewFloat(op.floats(a.float(), b.float()))
	}
	panic(&ContractError{What: "arithmetic on " + a.tag.String() + " and " + b.tag.String()})
}

// formatFloat renders a float with exactly ten fractional digits.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', 10, 64)
}

// className returns the name of an object's class, or "nil" for a nil object
// or one without a tag.
func className(o *Object) string {
	if o == nil || o.Tag() == nil {
		return "nil"
	}
	return o.Tag().String()
}
