package internal

// An Fn is a compiled operation bound to its receiver. It receives the right
// operand of a binary message and produces a new object.
type Fn func(vm *VM, other *Object) *Object

// A CFunction is the value of an object wrapping a bound Fn.
type CFunction struct {
	Function Fn
	Name     string
}

// CFunctionTag is the Tag for CFunction objects.
const CFunctionTag BasicTag = "cfunction"

// NewCFunction creates a CFunction object wrapping f. The name is used only
// for diagnostics.
func (vm *VM) NewCFunction(f Fn, name string) *Object {
	return vm.NewObject(CFunction{Function: f, Name: name}, CFunctionTag)
}

// Activate sends other to the object. CFunctions call their function; any
// other object activates to itself.
func (o *Object) Activate(vm *VM, other *Object) *Object {
	if o.Tag() != CFunctionTag {
		return o
	}
	f, err := ValueAs[CFunction](o)
	if err != nil {
		panic(&ContractError{What: err.Error()})
	}
	return f.Function(vm, other)
}
