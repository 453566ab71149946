package ers

// ErrInvalidInput indicates malformed input, such as a negative
// count. These errors are not generally retriable.
const ErrInvalidInput Error = Error("invalid input")

// ErrRecoveredPanic is at the root of any error returned by a
// function in the lazy package that recovers from a panic.
const ErrRecoveredPanic Error = Error("recovered panic")

// ErrInvariantViolation is the root error of the error object that is
// the content of all panics produced for misuse of a sequence.
const ErrInvariantViolation Error = Error("invariant violation")

// ErrMalformedConfiguration indicates a configuration object that has
// failed validation.
const ErrMalformedConfiguration Error = Error("malformed configuration")

// IsInvariantViolation returns true if the argument is or resolves to
// ErrInvariantViolation.
func IsInvariantViolation(r any) bool {
	err, ok := r.(error)
	if !ok || err == nil {
		return false
	}

	return Is(err, ErrInvariantViolation)
}
