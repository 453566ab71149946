// Package intish provides the numeric type constraints used by the
// sequence reducers, along with a few strongly typed arithmetic
// helpers.
package intish

import "golang.org/x/exp/constraints"

// Number is the set of integer and floating point types that the
// numeric reducers (Sum, Min, Max) operate on.
type Number interface {
	constraints.Integer | constraints.Float
}

// Add returns the sum of the two values. It has the shape of a fold
// or reduce combiner.
func Add[T Number](a, b T) T { return a + b }

// Min returns the lowest value.
func Min[T Number](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the highest value.
func Max[T Number](a, b T) T {
	if a > b {
		return a
	}
	return b
}
