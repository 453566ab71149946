package lazy

import "github.com/tychoish/lazy/dt"

// Map returns a sequence that applies the function to every element
// of the input sequence. Each pull of the output pulls exactly one
// element from the input. Constructing the sequence pulls nothing.
//
// Map is a function rather than a method because the output element
// type may differ from the input's; use Transform to chain a
// same-typed mapping as a method.
func Map[I, O any](s *Sequence[I], fn func(I) O) *Sequence[O] {
	invariant(fn != nil, "map function must not be nil")
	return makeSequence[O](&mapAdapter[I, O]{up: s, fn: fn})
}

// Transform is the method form of Map for functions that do not
// change the element type.
func (s *Sequence[T]) Transform(fn func(T) T) *Sequence[T] { return Map(s, fn) }

// Filter returns a sequence of the elements for which the predicate
// returns true, in their original order. Each pull of the output
// pulls and discards input elements until one matches or the input
// is exhausted.
func (s *Sequence[T]) Filter(pred func(T) bool) *Sequence[T] {
	invariant(pred != nil, "filter predicate must not be nil")
	return makeSequence[T](&filterAdapter[T]{up: s, pred: pred})
}

// FilterMap combines Filter and Map: the function either accepts an
// input element, returning the output value and true, or declines it
// by returning false. Declined elements are skipped. Only the boolean
// decides; a zero output value with true is produced like any other.
func FilterMap[I, O any](s *Sequence[I], fn func(I) (O, bool)) *Sequence[O] {
	invariant(fn != nil, "filter-map function must not be nil")
	return makeSequence[O](&filterMapAdapter[I, O]{up: s, fn: fn})
}

// Enumerate pairs every element with its position in the output of
// the enumerated sequence: the first pair has key 0 and the key
// increases by one per produced pair, no matter how many elements
// adapters further upstream skipped.
func Enumerate[T any](s *Sequence[T]) *Sequence[dt.Pair[int, T]] {
	return makeSequence[dt.Pair[int, T]](&enumerateAdapter[T]{up: s})
}

// Take returns a sequence of at most n elements. Once n elements have
// been produced the output is exhausted and never pulls from its
// input again. Take(0) is immediately exhausted.
//
// Take consumes its input: the input is closed as soon as the last
// element is produced, so elements after the first n are not
// available from it afterwards. To keep reading past a prefix, pull
// from the input directly with Next or Find instead.
//
// Take panics with an error that wraps ers.ErrInvalidInput when n is
// negative.
func (s *Sequence[T]) Take(n int) *Sequence[T] {
	invariant(n >= 0, "take count must be non-negative, got %d", n)
	return makeSequence[T](&takeAdapter[T]{up: s, remaining: n})
}

type mapAdapter[I, O any] struct {
	up *Sequence[I]
	fn func(I) O
}

func (a *mapAdapter[I, O]) close() { a.up.Close() }
func (a *mapAdapter[I, O]) pull() (out O, _ bool) {
	val, ok := a.up.Next()
	if !ok {
		return out, false
	}
	return a.fn(val), true
}

type filterAdapter[T any] struct {
	up   *Sequence[T]
	pred func(T) bool
}

func (a *filterAdapter[T]) close() { a.up.Close() }
func (a *filterAdapter[T]) pull() (T, bool) {
	for {
		val, ok := a.up.Next()
		if !ok || a.pred(val) {
			return val, ok
		}
	}
}

type filterMapAdapter[I, O any] struct {
	up *Sequence[I]
	fn func(I) (O, bool)
}

func (a *filterMapAdapter[I, O]) close() { a.up.Close() }
func (a *filterMapAdapter[I, O]) pull() (out O, _ bool) {
	for {
		val, ok := a.up.Next()
		if !ok {
			return out, false
		}
		if out, ok = a.fn(val); ok {
			return out, true
		}
	}
}

type enumerateAdapter[T any] struct {
	up    *Sequence[T]
	count int
}

func (a *enumerateAdapter[T]) close() { a.up.Close() }
func (a *enumerateAdapter[T]) pull() (out dt.Pair[int, T], _ bool) {
	val, ok := a.up.Next()
	if !ok {
		return out, false
	}
	out = dt.MakePair(a.count, val)
	a.count++
	return out, true
}

type takeAdapter[T any] struct {
	up        *Sequence[T]
	remaining int
}

func (a *takeAdapter[T]) close() { a.up.Close() }
func (a *takeAdapter[T]) pull() (out T, _ bool) {
	if a.remaining <= 0 {
		return out, false
	}
	a.remaining--
	out, ok := a.up.Next()
	if a.remaining == 0 {
		a.up.Close()
	}
	return out, ok
}
