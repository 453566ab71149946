package lazy

import (
	"github.com/tychoish/lazy/dt"
	"github.com/tychoish/lazy/intish"
)

// Sum drains a numeric sequence and returns the total. The sum of an
// empty sequence is zero.
func Sum[T intish.Number](s *Sequence[T]) T {
	var zero T
	return Fold(s, zero, intish.Add[T])
}

// Min drains a numeric sequence and returns its smallest element, or
// an undefined Optional for an empty sequence.
func Min[T intish.Number](s *Sequence[T]) dt.Optional[T] { return s.Reduce(intish.Min[T]) }

// Max drains a numeric sequence and returns its largest element, or
// an undefined Optional for an empty sequence.
func Max[T intish.Number](s *Sequence[T]) dt.Optional[T] { return s.Reduce(intish.Max[T]) }
