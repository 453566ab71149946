package assert_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/tychoish/lazy/assert"
)

type recorder struct {
	testing.TB
	failed int
}

func (r *recorder) Helper()               {}
func (r *recorder) Fatal(...any)          { r.failed++ }
func (r *recorder) Fatalf(string, ...any) { r.failed++ }

func (r *recorder) expectFailure(t *testing.T) { t.Helper(); assert.True(t, r.failed > 0) }

func pulls[T any](vals ...T) func() (T, bool) {
	idx := 0
	return func() (out T, _ bool) {
		if idx >= len(vals) {
			return out, false
		}
		idx++
		return vals[idx-1], true
	}
}

func TestAssertion(t *testing.T) {
	var strVal = "merlin"
	var err error

	t.Run("Passing", func(t *testing.T) {
		assert.True(t, true)
		assert.Equal(t, 1, 1)
		assert.NotEqual(t, 10, 1)
		assert.Zero(t, "")
		assert.NotZero(t, strVal)
		assert.Error(t, errors.New(strVal))
		assert.NotError(t, err)
		assert.ErrorIs(t, fmt.Errorf("end: %w", io.EOF), io.EOF)
		assert.Panic(t, func() { panic(strVal) })
		assert.PanicValue(t, func() { panic(strVal) }, strVal)
		assert.NotPanic(t, func() {})
		assert.EqualItems(t, []int{12, 34, 56}, []int{12, 34, 56})
		assert.Substring(t, "merlin the cat", strVal)

		next := pulls(0, 1)
		assert.Yields(t, next, 0)
		assert.Yields(t, next, 1)
		assert.Exhausted(t, next)
		assert.Exhausted(t, next)
	})
	t.Run("Failing", func(t *testing.T) {
		for name, op := range map[string]func(testing.TB){
			"True":          func(t testing.TB) { assert.True(t, false) },
			"Equal":         func(t testing.TB) { assert.Equal(t, 1, 2) },
			"NotEqual":      func(t testing.TB) { assert.NotEqual(t, 1, 1) },
			"Zero":          func(t testing.TB) { assert.Zero(t, 1) },
			"NotZero":       func(t testing.TB) { assert.NotZero(t, "") },
			"Error":         func(t testing.TB) { assert.Error(t, nil) },
			"NotError":      func(t testing.TB) { assert.NotError(t, io.EOF) },
			"ErrorIs":       func(t testing.TB) { assert.ErrorIs(t, io.EOF, io.ErrUnexpectedEOF) },
			"Panic":         func(t testing.TB) { assert.Panic(t, func() {}) },
			"NotPanic":      func(t testing.TB) { assert.NotPanic(t, func() { panic("eep") }) },
			"PanicValue":    func(t testing.TB) { assert.PanicValue(t, func() { panic(42) }, "42") },
			"ItemsLength":   func(t testing.TB) { assert.EqualItems(t, []int{1}, []int{1, 2}) },
			"ItemsValues":   func(t testing.TB) { assert.EqualItems(t, []int{1, 3}, []int{1, 2}) },
			"Substring":     func(t testing.TB) { assert.Substring(t, "merlin", "buddy") },
			"YieldsEmpty":   func(t testing.TB) { assert.Yields(t, pulls[int](), 1) },
			"YieldsWrong":   func(t testing.TB) { assert.Yields(t, pulls(2), 1) },
			"ExhaustedMore": func(t testing.TB) { assert.Exhausted(t, pulls(false)) },
		} {
			t.Run(name, func(t *testing.T) {
				r := &recorder{}
				op(r)
				r.expectFailure(t)
			})
		}
	})
}
