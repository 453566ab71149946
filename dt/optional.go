package dt

import "fmt"

// Optional is a wrapper type for values that may or may not be
// present. A defined Optional holding the zero value of T is distinct
// from an undefined Optional: use Ok() or Get() to tell them apart,
// never the value itself.
type Optional[T any] struct {
	v       T
	defined bool
}

// NewOptional constructs a defined Optional holding the value.
func NewOptional[T any](in T) Optional[T] { return Optional[T]{v: in, defined: true} }

// None constructs an undefined Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

func (o Optional[T]) Ok() bool       { return o.defined }
func (o Optional[T]) Get() (T, bool) { return o.v, o.defined }
func (o Optional[T]) Resolve() T     { return o.v }

// String renders defined values with the default fmt formatting, and
// "<none>" for undefined values.
func (o Optional[T]) String() string {
	if !o.defined {
		return "<none>"
	}
	return fmt.Sprint(o.v)
}
