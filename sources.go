package lazy

import "iter"

// Slice provides a Sequence over the elements of a slice. The slice
// is not copied: mutating it while the sequence is active changes
// the elements the sequence produces.
func Slice[T any](in []T) *Sequence[T] { return makeSequence[T](&sliceSource[T]{vals: in}) }

// Args produces a sequence from an arbitrary collection of objects,
// passed into the constructor.
func Args[T any](in ...T) *Sequence[T] { return Slice(in) }

// From wraps a native Go iterator. The iterator runs as a coroutine
// (iter.Pull) which is released when the sequence is exhausted or
// closed.
func From[T any](seq iter.Seq[T]) *Sequence[T] {
	next, stop := iter.Pull(seq)
	return makeSequence[T](&pullSource[T]{next: next, stop: stop})
}

// Generate builds a sequence that calls the function once per pull
// until it returns false. Generators that never return false produce
// infinite sequences: bound them with Take or a short-circuiting
// consumer.
func Generate[T any](op func() (T, bool)) *Sequence[T] {
	invariant(op != nil, "generator function must not be nil")
	return makeSequence[T](generatorSource[T](op))
}

// Naturals produces the infinite sequence 0, 1, 2, ...
func Naturals() *Sequence[int] {
	next := 0
	return Generate(func() (int, bool) { next++; return next - 1, true })
}

type sliceSource[T any] struct {
	vals []T
	idx  int
}

func (s *sliceSource[T]) pull() (out T, _ bool) {
	if s.idx >= len(s.vals) {
		return out, false
	}
	s.idx++
	return s.vals[s.idx-1], true
}

func (s *sliceSource[T]) close() { s.vals = nil }

type pullSource[T any] struct {
	next func() (T, bool)
	stop func()
}

func (s *pullSource[T]) pull() (T, bool) { return s.next() }
func (s *pullSource[T]) close()          { s.stop() }

type generatorSource[T any] func() (T, bool)

func (g generatorSource[T]) pull() (T, bool) { return g() }
func (generatorSource[T]) close()            {}
