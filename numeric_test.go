package lazy

import (
	"testing"

	"github.com/tychoish/lazy/assert"
	"github.com/tychoish/lazy/assert/check"
	"github.com/tychoish/lazy/dt"
)

func TestNumeric(t *testing.T) {
	t.Run("Sum", func(t *testing.T) {
		check.Equal(t, Sum(Args(1, 2, 3, 4, 5)), 15)
		check.Equal(t, Sum(Args[int]()), 0)
		check.Equal(t, Sum(Args(0.5, 0.25)), 0.75)
		check.Equal(t, Sum(Naturals().Take(101)), 5050)
	})
	t.Run("SumMatchesFold", func(t *testing.T) {
		for i := 0; i < 8; i++ {
			input := randomInts(i * 16)
			check.Equal(t, Sum(Slice(input)), Fold(Slice(input), 0, add))
		}
	})
	t.Run("Min", func(t *testing.T) {
		check.Equal(t, Min(Args(4, -2, 9)), dt.NewOptional(-2))
		check.Equal(t, Min(Args(0, 3)), dt.NewOptional(0))
		check.True(t, !Min(Args[uint8]()).Ok())
	})
	t.Run("Max", func(t *testing.T) {
		check.Equal(t, Max(Args(4, -2, 9)), dt.NewOptional(9))
		check.Equal(t, Max(Args(-3, 0, -1)), dt.NewOptional(0))
		check.True(t, !Max(Args[float64]()).Ok())
	})
	t.Run("Pipeline", func(t *testing.T) {
		out := Max(Map(Args("merlin", "buddy", "kip"), func(in string) int { return len(in) }))
		assert.True(t, out.Ok())
		check.Equal(t, out.Resolve(), 6)
	})
}
