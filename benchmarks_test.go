package lazy

import (
	"fmt"
	"slices"
	"testing"
)

var sinkInt int
var sinkInts []int

// BenchmarkPipelines compares each lazy pipeline against the eager
// slice code that produces the same result. Every iteration builds a
// fresh sequence: sequences are single-use.
func BenchmarkPipelines(b *testing.B) {
	for _, size := range []int{10, 1000, 100000} {
		data := make([]int, size)
		for i := range data {
			data[i] = i
		}
		last := func(in int) bool { return in == size-1 }

		b.Run(fmt.Sprintf("Size-%d", size), func(b *testing.B) {
			b.Run("Find/Lazy", func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					sinkInt = Slice(data).Find(last).Resolve()
				}
			})
			b.Run("Find/Eager", func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					sinkInt = data[slices.IndexFunc(data, last)]
				}
			})
			b.Run("Filter/Lazy", func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					sinkInts = Slice(data).Filter(isEven).Collect()
				}
			})
			b.Run("Filter/Eager", func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					sinkInts = eagerFilter(data, isEven)
				}
			})
			b.Run("Fold/Lazy", func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					sinkInt = Fold(Slice(data), 0, add)
				}
			})
			b.Run("Fold/Eager", func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					acc := 0
					for _, v := range data {
						acc = add(acc, v)
					}
					sinkInt = acc
				}
			})
			b.Run("FilterMap/Lazy", func(b *testing.B) {
				op := func(in int) (int, bool) { return double(in), isEven(in) }
				for i := 0; i < b.N; i++ {
					sinkInts = FilterMap(Slice(data), op).Collect()
				}
			})
			b.Run("FilterMap/Eager", func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					sinkInts = eagerMap(eagerFilter(data, isEven), double)
				}
			})
			b.Run("Take/Lazy", func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					sinkInts = Slice(data).Transform(double).Take(10).Collect()
				}
			})
			b.Run("Take/Eager", func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					sinkInts = eagerMap(data, double)[:min(10, size)]
				}
			})
		})
	}
}
