package intish

import (
	"math"
	"testing"
)

func TestMath(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		if v := Add(40, 2); v != 42 {
			t.Error(v)
		}
		if v := Add(0.5, 0.25); v != 0.75 {
			t.Error(v)
		}
		if v := Add[uint8](math.MaxUint8, 1); v != 0 {
			t.Error("unsigned addition should wrap", v)
		}
	})
	t.Run("Max", func(t *testing.T) {
		if v := Max(0, 100); v != 100 {
			t.Error(v)
		}
		if v := Max(-10, 100); v != 100 {
			t.Error(v)
		}
		if v := Max(100, -10); v != 100 {
			t.Error(v)
		}
		if v := Max(1.5, 1.25); v != 1.5 {
			t.Error(v)
		}
	})
	t.Run("Min", func(t *testing.T) {
		if v := Min(-100, -10); v != -100 {
			t.Error(v)
		}
		if v := Min(-100, 100); v != -100 {
			t.Error(v)
		}
		if v := Min(uint(3), 7); v != 3 {
			t.Error(v)
		}
	})
}
