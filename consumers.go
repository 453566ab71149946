package lazy

import (
	"slices"

	"github.com/tychoish/lazy/dt"
	"github.com/tychoish/lazy/ers"
)

// Collect drains the sequence into a slice, in pull order. The result
// is never nil. Collect does not return if the sequence is infinite.
func (s *Sequence[T]) Collect() []T { return slices.AppendSeq(make([]T, 0), s.Iterator()) }

// Find returns the first element for which the predicate is true, or
// an undefined Optional if the sequence is exhausted first. Find
// stops pulling as soon as it finds a match; the rest of the sequence
// remains available.
func (s *Sequence[T]) Find(pred func(T) bool) dt.Optional[T] {
	invariant(pred != nil, "find predicate must not be nil")
	for val := range s.Iterator() {
		if pred(val) {
			return dt.NewOptional(val)
		}
	}
	return dt.None[T]()
}

// FindMap applies the function to elements in order and returns the
// first value that the function accepts (returns true for). FindMap
// stops pulling after the first accepted value.
func FindMap[I, O any](s *Sequence[I], fn func(I) (O, bool)) dt.Optional[O] {
	invariant(fn != nil, "find-map function must not be nil")
	for val := range s.Iterator() {
		if out, ok := fn(val); ok {
			return dt.NewOptional(out)
		}
	}
	return dt.None[O]()
}

// Fold drains the sequence, threading an accumulator through the
// function from left to right, and returns the final accumulator. On
// an empty sequence Fold returns the initial value without calling
// the function.
func Fold[T, A any](s *Sequence[T], init A, fn func(A, T) A) A {
	invariant(fn != nil, "fold function must not be nil")
	acc := init
	for val := range s.Iterator() {
		acc = fn(acc, val)
	}
	return acc
}

// Reduce is a Fold that uses the first element as the initial value
// of the accumulator. When the sequence is empty, Reduce returns an
// undefined Optional and never calls the function.
func (s *Sequence[T]) Reduce(fn func(T, T) T) dt.Optional[T] {
	invariant(fn != nil, "reduce function must not be nil")
	first, ok := s.Next()
	if !ok {
		return dt.None[T]()
	}
	return dt.NewOptional(Fold(s, first, fn))
}

// Count drains the sequence and returns the number of elements it
// produced.
func (s *Sequence[T]) Count() int {
	return Fold(s, 0, func(count int, _ T) int { return count + 1 })
}

// ForEach drains the sequence, calling the function for every
// element.
func (s *Sequence[T]) ForEach(fn func(T)) {
	invariant(fn != nil, "for-each function must not be nil")
	for val := range s.Iterator() {
		fn(val)
	}
}

// CollectSafe is Collect for pipelines whose callbacks may panic. A
// panic anywhere in the chain is returned as an error wrapping
// ers.ErrRecoveredPanic, the elements collected before the panic are
// discarded, and the sequence is closed.
func (s *Sequence[T]) CollectSafe() ([]T, error) {
	out, err := ers.WithRecoverDo(s.Collect)
	if err != nil {
		s.Close()
	}
	return out, err
}

// FoldSafe is Fold for pipelines whose callbacks may panic. On a
// panic it closes the sequence and returns the zero value of the
// accumulator and an error wrapping ers.ErrRecoveredPanic.
func FoldSafe[T, A any](s *Sequence[T], init A, fn func(A, T) A) (A, error) {
	out, err := ers.WithRecoverDo(func() A { return Fold(s, init, fn) })
	if err != nil {
		s.Close()
	}
	return out, err
}

// ForEachSafe is ForEach for pipelines whose callbacks may panic. On
// a panic it closes the sequence and returns an error wrapping
// ers.ErrRecoveredPanic; the elements before the panic have already
// been passed to the function.
func (s *Sequence[T]) ForEachSafe(fn func(T)) error {
	invariant(fn != nil, "for-each function must not be nil")
	err := ers.WithRecoverCall(func() { s.ForEach(fn) })
	if err != nil {
		s.Close()
	}
	return err
}
