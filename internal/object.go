package internal

import (
	"fmt"
	"reflect"
	"sort"
	"sync/atomic"

	"github.com/zephyrtronium/contains"
)

// Object is the basic value type of minitalk. Everything the evaluator
// produces is an Object.
//
// Always use NewObject, ObjectWith, or a type-specific constructor to obtain
// new objects. Objects are not modified after construction; arithmetic
// produces new objects.
type Object struct {
	// slots is the set of messages to which this object responds, mapping
	// operation names to bound CFunction objects.
	slots Slots
	// protos are the objects checked for slots this object lacks.
	protos []*Object

	// Value is the object's type-specific primitive value. Its dynamic type is
	// determined by the tag; use ValueAs to read it.
	Value interface{}
	// tag is the type indicator of the object.
	tag Tag

	// id is the object's unique ID.
	id uintptr
}

// Slots maps operation names to the objects that implement them.
type Slots map[string]*Object

// Tag is a type indicator for minitalk objects, also known as the object's
// class. Tag values must be comparable.
type Tag interface {
	// String returns the name of the class associated with this tag.
	String() string
}

// BasicTag is a Tag for primitive types whose class is identified by name.
type BasicTag string

// String returns the receiver.
func (t BasicTag) String() string {
	return string(t)
}

// Tag returns the object's type indicator.
func (o *Object) Tag() Tag {
	return o.tag
}

// UniqueID returns the object's unique ID.
func (o *Object) UniqueID() uintptr {
	return o.id
}

// Protos returns a copy of the object's protos.
func (o *Object) Protos() []*Object {
	return append([]*Object(nil), o.protos...)
}

// Clone returns a new object with empty slots and this object as its only
// proto. The clone has the same tag and value as its parent.
func (o *Object) Clone() *Object {
	return &Object{
		protos: []*Object{o},
		Value:  o.Value,
		tag:    o.tag,
		id:     nextObject(),
	}
}

// IsKindOf evaluates whether the object has kind as any of its ancestors, or
// is itself kind.
func (o *Object) IsKindOf(kind *Object) bool {
	if o == nil {
		return false
	}
	protos := []*Object{o}
	set := contains.Set{}
	set.Add(o.UniqueID())
	for len(protos) > 0 {
		proto := protos[len(protos)-1]
		protos = protos[:len(protos)-1]
		if proto == kind {
			return true
		}
		for _, p := range proto.protos {
			if set.Add(p.UniqueID()) {
				protos = append(protos, p)
			}
		}
	}
	return false
}

// SlotNames returns the sorted names of the object's local slots.
func (o *Object) SlotNames() []string {
	names := make([]string, 0, len(o.slots))
	for name := range o.slots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// objcounter is the global counter for object IDs. All accesses to this must
// be atomic.
var objcounter uintptr

// nextObject increments the object counter and returns its value as a unique
// ID for a new object.
func nextObject() uintptr {
	return atomic.AddUintptr(&objcounter, 1)
}

// ObjectWith creates a new object with the given slots, protos, value, and
// tag.
func (vm *VM) ObjectWith(slots Slots, protos []*Object, value interface{}, tag Tag) *Object {
	r := &Object{
		slots:  make(Slots, len(slots)),
		protos: append([]*Object(nil), protos...),
		Value:  value,
		tag:    tag,
		id:     nextObject(),
	}
	for name, v := range slots {
		r.slots[name] = v
	}
	return r
}

// NewObject creates a new object holding value with the given tag and with
// the VM's base Object as its proto.
func (vm *VM) NewObject(value interface{}, tag Tag) *Object {
	return vm.ObjectWith(nil, []*Object{vm.BaseObject}, value, tag)
}

// SetSlot sets the value of a slot on an object. Slots are only set while an
// object is being constructed.
func (vm *VM) SetSlot(o *Object, slot string, value *Object) {
	if o.slots == nil {
		o.slots = Slots{}
	}
	o.slots[slot] = value
}

// GetLocalSlot finds a slot on the object itself, without checking protos.
func (vm *VM) GetLocalSlot(o *Object, slot string) (value *Object, ok bool) {
	if o == nil {
		return nil, false
	}
	value, ok = o.slots[slot]
	return value, ok
}

// GetSlot finds a slot on the object or its protos, checking protos in
// depth-first order without duplicates. The proto is the object which actually
// had the slot. If the slot is not found, both returned values are nil; a
// missing slot is an ordinary outcome, not an error.
func (vm *VM) GetSlot(o *Object, slot string) (value, proto *Object) {
	if o == nil {
		return nil, nil
	}
	if v, ok := o.slots[slot]; ok {
		return v, o
	}
	vm.protoSet.Reset()
	vm.protoSet.Add(o.UniqueID())
	vm.protoStack = vm.protoStack[:0]
	for i := len(o.protos) - 1; i >= 0; i-- {
		vm.protoStack = append(vm.protoStack, o.protos[i])
	}
	for len(vm.protoStack) > 0 {
		p := vm.protoStack[len(vm.protoStack)-1]
		vm.protoStack = vm.protoStack[:len(vm.protoStack)-1]
		if !vm.protoSet.Add(p.UniqueID()) {
			continue
		}
		if v, ok := p.slots[slot]; ok {
			return v, p
		}
		for i := len(p.protos) - 1; i >= 0; i-- {
			vm.protoStack = append(vm.protoStack, p.protos[i])
		}
	}
	return nil, nil
}

// ClassMismatchError is the error returned when an object's value is read as
// a type other than the one its class holds.
type ClassMismatchError struct {
	// Class is the tag of the object that was read.
	Class Tag
	// Have is the Go type of the value the object holds.
	Have string
	// Want is the Go type the caller asked for.
	Want string
}

func (err *ClassMismatchError) Error() string {
	return fmt.Sprintf("%v object holds %s, not %s", err.Class, err.Have, err.Want)
}

// ValueAs returns the object's value as a T. If the value is not a T, the
// error is a *ClassMismatchError and the object is unaffected.
func ValueAs[T any](o *Object) (T, error) {
	v, ok := o.Value.(T)
	if !ok {
		var zero T
		return zero, &ClassMismatchError{
			Class: o.Tag(),
			Have:  fmt.Sprintf("%T", o.Value),
			Want:  reflect.TypeOf((*T)(nil)).Elem().String(),
		}
	}
	return v, nil
}

// ContractError describes an internal invariant violation. It is only ever
// raised with panic.
type ContractError struct {
	What string
}

func (err *ContractError) Error() string {
	return "minitalk: contract violation: " + err.What
}
