// Package testutils provides utilities for testing minitalk code in Go.
package testutils

import (
	"io"
	"sync"
	"testing"

	"github.com/zephyrtronium/minitalk"
)

// testVM is the VM used for all tests.
var testVM *minitalk.VM

var testVMInit sync.Once

// VM returns a VM for testing minitalk. The VM is shared by all tests that use
// this package. Its diagnostics are discarded.
func VM() *minitalk.VM {
	testVMInit.Do(ResetVM)
	return testVM
}

// ResetVM reinitializes the VM returned by VM. It is not safe to call this in
// parallel tests.
func ResetVM() {
	testVM = minitalk.NewVM()
	testVM.Reporter = minitalk.NewWriterReporter(io.Discard)
}

// RecordingVM returns a new VM, not shared with other tests, along with the
// recorder receiving its diagnostics.
func RecordingVM() (*minitalk.VM, *minitalk.DiagnosticRecorder) {
	vm := minitalk.NewVM()
	rec := new(minitalk.DiagnosticRecorder)
	vm.Reporter = rec
	return vm, rec
}

// BenchDummy is a dummy variable to prevent dead code elimination in
// benchmarks.
var BenchDummy *minitalk.Object

// A SourceTestCase is a test case containing minitalk source code and a
// predicate to check the result.
type SourceTestCase struct {
	// Source is the line of minitalk source to evaluate.
	Source string
	// Pass is a predicate taking the result of evaluating Source. If Pass
	// returns false, then the test fails.
	Pass func(result *minitalk.Object) bool
}

// TestFunc returns a test function for the test case. This uses VM to
// evaluate the code.
func (c SourceTestCase) TestFunc(name string) func(*testing.T) {
	return func(t *testing.T) {
		vm := VM()
		if r := vm.DoString(c.Source); !c.Pass(r) {
			t.Errorf("%q produced wrong result; got %s@%p", c.Source, vm.AsString(r), r)
		}
	}
}

// PassInteger returns a Pass function for a SourceTestCase that predicates on
// the result being an integer with the given value.
func PassInteger(want int64) func(*minitalk.Object) bool {
	return func(result *minitalk.Object) bool {
		if result == nil || result.Tag() != minitalk.IntegerTag {
			return false
		}
		v, err := minitalk.ValueAs[int64](result)
		return err == nil && v == want
	}
}

// PassFloat returns a Pass function for a SourceTestCase that predicates on
// the result being a float with exactly the given value.
func PassFloat(want float64) func(*minitalk.Object) bool {
	return func(result *minitalk.Object) bool {
		if result == nil || result.Tag() != minitalk.FloatTag {
			return false
		}
		v, err := minitalk.ValueAs[float64](result)
		return err == nil && v == want
	}
}

// PassString returns a Pass function for a SourceTestCase that predicates on
// the rendering of the result.
func PassString(want string) func(*minitalk.Object) bool {
	return func(result *minitalk.Object) bool {
		return VM().AsString(result) == want
	}
}

// PassNil returns a Pass function for a SourceTestCase that returns true iff
// the evaluation produced no value.
func PassNil() func(*minitalk.Object) bool {
	return func(result *minitalk.Object) bool {
		return result == nil
	}
}

// PassTag returns a Pass function for a SourceTestCase that predicates on
// equality of the Tag of the result.
func PassTag(want minitalk.Tag) func(*minitalk.Object) bool {
	return func(result *minitalk.Object) bool {
		return result != nil && result.Tag() == want
	}
}

// CheckSlots is a testing helper to check whether an object has exactly the
// local slots we expect.
func CheckSlots(t *testing.T, obj *minitalk.Object, slots []string) {
	t.Helper()
	vm := VM()
	checked := make(map[string]bool, len(slots))
	for _, name := range slots {
		checked[name] = true
		t.Run("Have_"+name, func(t *testing.T) {
			slot, ok := vm.GetLocalSlot(obj, name)
			if !ok {
				t.Fatal("no slot", name)
			}
			if slot == nil {
				t.Fatal("slot", name, "is nil")
			}
		})
	}
	for _, name := range obj.SlotNames() {
		t.Run("Want_"+name, func(t *testing.T) {
			if !checked[name] {
				t.Fatal("unexpected slot", name)
			}
		})
	}
}

// CheckDiagnostics is a testing helper to check that a recorder received
// exactly the diagnostic codes we expect, in order.
func CheckDiagnostics(t *testing.T, rec *minitalk.DiagnosticRecorder, want ...minitalk.Code) {
	t.Helper()
	have := rec.Codes()
	if len(have) != len(want) {
		t.Fatalf("wrong diagnostics: have %v, want %v", have, want)
	}
	for i := range want {
		if have[i] != want[i] {
			t.Errorf("wrong diagnostic %d: have %s, want %s", i, have[i], want[i])
		}
	}
}
