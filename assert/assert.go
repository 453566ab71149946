// Package assert holds small generic test assertions. Every failure
// is fatal and stops the test at the failing line; use the check
// package to record a failure and keep going.
package assert

import (
	"errors"
	"strings"
	"testing"
)

// True stops the test unless cond holds.
func True(t testing.TB, cond bool) {
	t.Helper()
	if !cond {
		t.Fatal("assertion failure")
	}
}

// Equal stops the test unless the values compare equal with ==.
// Pointers are compared by address, not by what they point to.
func Equal[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne != valTwo {
		t.Fatalf("values unequal: <%v> != <%v>", valOne, valTwo)
	}
}

// NotEqual stops the test when the values compare equal.
func NotEqual[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne == valTwo {
		t.Fatalf("values equal: <%v>", valOne)
	}
}

// Zero stops the test unless val is the zero value of T.
func Zero[T comparable](t testing.TB, val T) {
	t.Helper()
	var zero T
	if zero != val {
		t.Fatalf("expected zero for value of type %T <%v>", val, val)
	}
}

// NotZero stops the test when val is the zero value of T.
func NotZero[T comparable](t testing.TB, val T) {
	t.Helper()
	var zero T
	if zero == val {
		t.Fatalf("expected non-zero for value of type %T", val)
	}
}

// Error stops the test when err is nil.
func Error(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected non-nil error")
	}
}

// NotError stops the test when err is not nil.
func NotError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

// ErrorIs stops the test unless errors.Is(err, target).
func ErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error <%v>, is not <%v>", err, target)
	}
}

// Panic stops the test unless fn panics.
func Panic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r == nil {
			t.Fatal("expected a panic but got none")
		}
	}()
	fn()
}

// NotPanic stops the test if fn panics.
func NotPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r != nil {
			t.Fatal("panic: ", r)
		}
	}()
	fn()
}

// PanicValue stops the test unless fn panics with a value equal to
// value.
func PanicValue[T comparable](t testing.TB, fn func(), value T) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatal("expected a panic but got none")
		}
		pval, ok := r.(T)
		if !ok {
			t.Fatalf("panic [%v], not of expected type %T", r, value)
		}
		Equal(t, pval, value)
	}()

	fn()
}

// EqualItems stops the test unless both slices hold the same items
// in the same order.
func EqualItems[T comparable](t testing.TB, one, two []T) {
	t.Helper()
	if len(one) != len(two) {
		t.Fatalf("slices are of different lengths [%d vs %d]", len(one), len(two))
	}

	for idx := range one {
		if one[idx] != two[idx] {
			t.Fatalf("items at index %d [%v vs %v] are not equal", idx, one[idx], two[idx])
		}
	}
}

// Substring stops the test unless str contains substr.
func Substring(t testing.TB, str, substr string) {
	t.Helper()
	if !strings.Contains(str, substr) {
		t.Fatalf("expected %q to contain substring %q", str, substr)
	}
}

// Yields calls the pull function once and fails the test unless it
// produces the expected value.
func Yields[T comparable](t testing.TB, next func() (T, bool), expected T) {
	t.Helper()
	val, ok := next()
	if !ok {
		t.Fatalf("expected <%v> but the source was exhausted", expected)
	}
	if val != expected {
		t.Fatalf("pulled <%v>, expected <%v>", val, expected)
	}
}

// Exhausted calls the pull function once and fails the test if it
// produces a value.
func Exhausted[T any](t testing.TB, next func() (T, bool)) {
	t.Helper()
	if val, ok := next(); ok {
		t.Fatalf("expected exhaustion but pulled <%v>", val)
	}
}
