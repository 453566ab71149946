// Package lazy provides Sequence, a pull-based wrapper that turns any
// slice, Go iterator, or generator function into a chain of lazy
// adapters (Map, Filter, FilterMap, Enumerate, Take) and terminal
// consumers (Collect, Find, FindMap, Fold, Reduce).
//
// Adapters never allocate intermediate containers: each call to Next
// on the outermost Sequence pulls exactly as many elements from its
// upstream as it needs to produce one value, or to discover that
// there are none left.
//
// Sequences are not safe for concurrent use. Each chain owns its
// cursor exclusively, and handing a Sequence to an adapter transfers
// ownership of it to that adapter.
package lazy

import (
	"iter"

	"github.com/tychoish/lazy/dt"
	"github.com/tychoish/lazy/ers"
)

// source is the pull capability shared by every producer and adapter
// in a chain. The set of implementations is closed: all of them live
// in this package.
type source[T any] interface {
	pull() (T, bool)
	close()
}

// Sequence is the lazy pipeline type. Construct sequences with Slice,
// Args, From, Generate, or Naturals, and extend them with the adapter
// methods and functions.
//
// The zero value, and a nil *Sequence, are empty sequences.
//
// A Sequence is either active or exhausted. The first time a pull
// finds no more elements the sequence becomes exhausted, releases its
// source, and every subsequent call to Next reports exhaustion
// without consulting the source again.
type Sequence[T any] struct {
	src  source[T]
	done bool
}

func makeSequence[T any](src source[T]) *Sequence[T] { return &Sequence[T]{src: src} }

// Next pulls one element from the sequence. The boolean is false when
// the sequence is exhausted; a true result with a zero value is a
// produced zero value and not exhaustion.
func (s *Sequence[T]) Next() (out T, ok bool) {
	if s == nil || s.done || s.src == nil {
		return out, false
	}

	if out, ok = s.src.pull(); !ok {
		s.Close()
	}

	return out, ok
}

// Close marks the sequence exhausted and releases the resources held
// by it and every sequence upstream of it. Sequences built with From
// hold a coroutine until they are exhausted or closed, so close
// sequences that you abandon before draining.
//
// Close is safe to call more than once.
func (s *Sequence[T]) Close() {
	if s == nil || s.done {
		return
	}
	s.done = true
	if s.src != nil {
		s.src.close()
	}
}

// Iterator returns a native Go iterator that drives this sequence's
// own cursor, for use with range:
//
//	for item := range seq.Iterator() {
//		// ...
//	}
//
// Breaking out of the loop leaves the remaining elements in the
// sequence. Calling Iterator more than once does not restart the
// sequence.
func (s *Sequence[T]) Iterator() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			val, ok := s.Next()
			if !ok || !yield(val) {
				return
			}
		}
	}
}

// Indexed exposes an enumerated sequence as a native two-value
// iterator so that it can be used as `for idx, item := range`.
func Indexed[T any](s *Sequence[dt.Pair[int, T]]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for pair := range s.Iterator() {
			if !yield(pair.Split()) {
				return
			}
		}
	}
}

func invariant(cond bool, tmpl string, args ...any) {
	if !cond {
		panic(ers.NewInvariantViolation(ers.ErrInvalidInput, tmpl, args...))
	}
}
