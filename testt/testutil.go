// Package testt (for test tools) holds instrumented sources for
// tests that need to count how much of an input a pipeline consumed.
// It is a companion of the assert/check library.
package testt

import "iter"

// Counter is a pull source for tests that records every call made to
// it. Use it to verify how many elements a pipeline actually drew from
// its input.
type Counter[T any] struct {
	vals    []T
	gen     func(int) T
	pulls   int
	yielded int
}

// NewCounter constructs a finite counter that produces the values in
// order and then reports exhaustion.
func NewCounter[T any](vals ...T) *Counter[T] { return &Counter[T]{vals: vals} }

// Infinite constructs a counter that never reports exhaustion; the
// function is called with the zero-based position of each value.
func Infinite[T any](gen func(int) T) *Counter[T] { return &Counter[T]{gen: gen} }

// Next produces the next value, and has the same signature as the
// pull functions used throughout the lazy package.
func (c *Counter[T]) Next() (out T, ok bool) {
	c.pulls++
	switch {
	case c.gen != nil:
		out = c.gen(c.yielded)
	case c.yielded < len(c.vals):
		out = c.vals[c.yielded]
	default:
		return out, false
	}
	c.yielded++
	return out, true
}

// Seq exposes the counter as a native iterator. Every value the
// iterator hands to the loop body counts as a pull.
func (c *Counter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			val, ok := c.Next()
			if !ok || !yield(val) {
				return
			}
		}
	}
}

// Pulls reports the number of times Next was called, including calls
// that reported exhaustion.
func (c *Counter[T]) Pulls() int { return c.pulls }

// Yielded reports the number of values produced.
func (c *Counter[T]) Yielded() int { return c.yielded }
