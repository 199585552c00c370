package testx

import (
	"errors"
	"reflect"
	"testing"

	"golang.org/x/exp/constraints"
)

func AssertEqual(t *testing.T, want, have any) {
	t.Helper()
	if reflect.DeepEqual(want, have) {
		return
	}
	t.Fatalf("want %v, have %v", want, have)
}

func AssertInRange[T constraints.Ordered](t *testing.T, val, lower, upper T) {
	t.Helper()
	if val >= lower && val <= upper {
		return
	}
	t.Fatalf("%v not in range [%v, %v]", val, lower, upper)
}

func AssertNoErr(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		return
	}
	t.Fatalf("error is not-nil but: %v", err)
}

func AssertErrIs(t *testing.T, err error, target error) {
	t.Helper()
	if errors.Is(err, target) {
		return
	}
	t.Fatalf("expect err %v; got %v", target, err)
}

// AssertPanics calls fn and fails unless it panics. It returns the recovered value.
func AssertPanics(t *testing.T, fn func()) (rec any) {
	t.Helper()
	panicked := true
	func() {
		defer func() {
			rec = recover()
		}()
		fn()
		panicked = false
	}()
	if !panicked {
		t.Fatalf("expect panic; got none")
	}
	return rec
}
