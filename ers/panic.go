package ers

import (
	"fmt"
)

// ParsePanic turns a value returned by recover() into an error that
// wraps ErrRecoveredPanic. A nil value yields a nil error.
func ParsePanic(r any) error {
	if r == nil {
		return nil
	}

	switch err := r.(type) {
	case error:
		return Join(err, ErrRecoveredPanic)
	case string:
		return Join(New(err), ErrRecoveredPanic)
	default:
		return Join(fmt.Errorf("[%T]: %v", err, err), ErrRecoveredPanic)
	}
}

// NewInvariantViolation joins ErrInvariantViolation, root and the
// formatted message into one error.
func NewInvariantViolation(root error, tmpl string, args ...any) error {
	return Join(ErrInvariantViolation, root, fmt.Errorf(tmpl, args...))
}

// WithRecoverCall calls fn and returns any panic as an error.
func WithRecoverCall(fn func()) (err error) {
	defer func() { err = ParsePanic(recover()) }()
	fn()
	return
}

// WithRecoverDo returns fn's result, or the zero value and an error
// when fn panics.
func WithRecoverDo[T any](fn func() T) (out T, err error) {
	defer func() {
		if err = ParsePanic(recover()); err != nil {
			var zero T
			out = zero
		}
	}()
	out = fn()
	return
}
