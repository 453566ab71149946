package main

import (
	"fmt"
	"slices"

	"github.com/tychoish/lazy"
	"github.com/tychoish/lazy/dt"
	"github.com/tychoish/lazy/ers"
	"github.com/tychoish/lazy/internal/bench"
)

type scenario struct {
	name        string
	description string
	build       func(data []int) bench.Suite
}

// results are stored in package variables so that the compiler cannot
// discard the work being timed.
var (
	sinkInt   int
	sinkInts  []int
	sinkPairs []dt.Pair[int, int]
)

func isEven(in int) bool { return in%2 == 0 }
func double(in int) int  { return in * 2 }
func add(a, b int) int   { return a + b }

var registry = []scenario{
	{
		name:        "find",
		description: "find the last element",
		build: func(data []int) bench.Suite {
			last := func(in int) bool { return in == len(data)-1 }
			return bench.Suite{
				Candidate: bench.Case{Name: "Sequence.Find", Op: func() { sinkInt = lazy.Slice(data).Find(last).Resolve() }},
				Baselines: []bench.Case{
					{Name: "slices.IndexFunc", Op: func() { sinkInt = slices.IndexFunc(data, last) }},
				},
			}
		},
	},
	{
		name:        "filter",
		description: "collect the even elements",
		build: func(data []int) bench.Suite {
			return bench.Suite{
				Candidate: bench.Case{Name: "Sequence.Filter", Op: func() { sinkInts = lazy.Slice(data).Filter(isEven).Collect() }},
				Baselines: []bench.Case{
					{Name: "loop", Op: func() { sinkInts = eagerFilter(data, isEven) }},
					{Name: "slices.DeleteFunc", Op: func() {
						sinkInts = slices.DeleteFunc(slices.Clone(data), func(in int) bool { return !isEven(in) })
					}},
				},
			}
		},
	},
	{
		name:        "fold",
		description: "sum the elements from an initial value",
		build: func(data []int) bench.Suite {
			return bench.Suite{
				Candidate: bench.Case{Name: "lazy.Fold", Op: func() { sinkInt = lazy.Fold(lazy.Slice(data), 0, add) }},
				Baselines: []bench.Case{
					{Name: "loop", Op: func() { sinkInt = eagerFold(data, 0, add) }},
				},
			}
		},
	},
	{
		name:        "reduce",
		description: "sum the elements seeded by the first",
		build: func(data []int) bench.Suite {
			return bench.Suite{
				Candidate: bench.Case{Name: "Sequence.Reduce", Op: func() { sinkInt = lazy.Slice(data).Reduce(add).Resolve() }},
				Baselines: []bench.Case{
					{Name: "loop", Op: func() {
						if len(data) > 0 {
							sinkInt = eagerFold(data[1:], data[0], add)
						}
					}},
				},
			}
		},
	},
	{
		name:        "map",
		description: "double every element",
		build: func(data []int) bench.Suite {
			return bench.Suite{
				Candidate: bench.Case{Name: "lazy.Map", Op: func() { sinkInts = lazy.Map(lazy.Slice(data), double).Collect() }},
				Baselines: []bench.Case{
					{Name: "loop", Op: func() { sinkInts = eagerMap(data, double) }},
				},
			}
		},
	},
	{
		name:        "filtermap",
		description: "double the even elements",
		build: func(data []int) bench.Suite {
			doubleEvens := func(in int) (int, bool) { return double(in), isEven(in) }
			return bench.Suite{
				Candidate: bench.Case{Name: "lazy.FilterMap", Op: func() { sinkInts = lazy.FilterMap(lazy.Slice(data), doubleEvens).Collect() }},
				Baselines: []bench.Case{
					{Name: "single loop", Op: func() {
						sinkInts = eagerFold(data, []int{}, func(acc []int, in int) []int {
							if isEven(in) {
								acc = append(acc, double(in))
							}
							return acc
						})
					}},
					{Name: "filter then map", Op: func() { sinkInts = eagerMap(eagerFilter(data, isEven), double) }},
				},
			}
		},
	},
	{
		name:        "enumerate",
		description: "pair every element with its index",
		build: func(data []int) bench.Suite {
			return bench.Suite{
				Candidate: bench.Case{Name: "lazy.Enumerate", Op: func() { sinkPairs = lazy.Enumerate(lazy.Slice(data)).Collect() }},
				Baselines: []bench.Case{
					{Name: "loop", Op: func() {
						out := make([]dt.Pair[int, int], 0, len(data))
						for idx, val := range data {
							out = append(out, dt.MakePair(idx, val))
						}
						sinkPairs = out
					}},
				},
			}
		},
	},
	{
		name:        "take",
		description: "double the first ten elements",
		build: func(data []int) bench.Suite {
			return bench.Suite{
				Candidate: bench.Case{Name: "Sequence.Take", Op: func() { sinkInts = lazy.Map(lazy.Slice(data), double).Take(10).Collect() }},
				Baselines: []bench.Case{
					{Name: "map then slice", Op: func() { sinkInts = eagerMap(data, double)[:min(10, len(data))] }},
				},
			}
		},
	},
}

func selectScenarios(names []string) ([]scenario, error) {
	if len(names) == 0 {
		return registry, nil
	}

	out := make([]scenario, 0, len(names))
	for _, name := range names {
		sc, ok := lazy.Slice(registry).Find(func(s scenario) bool { return s.name == name }).Get()
		if !ok {
			return nil, fmt.Errorf("%w: unknown scenario %q", ers.ErrInvalidInput, name)
		}
		out = append(out, sc)
	}
	return out, nil
}

func (s scenario) suite(data []int) bench.Suite {
	suite := s.build(data)
	suite.Name = s.name
	suite.Description = s.description
	return suite
}

func eagerFilter(in []int, pred func(int) bool) []int {
	out := []int{}
	for _, v := range in {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

func eagerMap(in []int, fn func(int) int) []int {
	out := make([]int, len(in))
	for idx, v := range in {
		out[idx] = fn(v)
	}
	return out
}

func eagerFold[A any](in []int, init A, fn func(A, int) A) A {
	acc := init
	for _, v := range in {
		acc = fn(acc, v)
	}
	return acc
}
