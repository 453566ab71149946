package ers

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/tychoish/lazy/assert"
	"github.com/tychoish/lazy/assert/check"
)

func TestError(t *testing.T) {
	t.Run("Constant", func(t *testing.T) {
		const errSentinel Error = "sentinel"
		check.Equal(t, errSentinel.Error(), "sentinel")
		check.True(t, errors.Is(fmt.Errorf("wrapped: %w", errSentinel), errSentinel))
		check.True(t, !errors.Is(Error("other"), errSentinel))
		check.True(t, !errSentinel.Is(io.EOF))
	})
	t.Run("EmptyMatchesNil", func(t *testing.T) {
		check.True(t, Error("").Is(nil))
		check.True(t, !Error("").Is(io.EOF))
		check.True(t, !Error("x").Is(nil))
	})
	t.Run("Is", func(t *testing.T) {
		err := fmt.Errorf("take: %w", ErrInvalidInput)
		check.True(t, Is(err, io.EOF, ErrInvalidInput))
		check.True(t, !Is(err, io.EOF))
		check.True(t, !Is(nil, ErrInvalidInput))
		check.True(t, Is(nil, nil))
	})
	t.Run("Join", func(t *testing.T) {
		assert.True(t, Join() == nil)
		assert.True(t, Join(nil, nil) == nil)
		check.Equal(t, Join(nil, io.EOF), io.EOF)

		err := Join(io.EOF, ErrInvalidInput, nil)
		check.ErrorIs(t, err, io.EOF)
		check.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestPanics(t *testing.T) {
	t.Run("ParsePanic", func(t *testing.T) {
		check.NotError(t, ParsePanic(nil))

		err := ParsePanic("eep")
		check.ErrorIs(t, err, ErrRecoveredPanic)
		check.Substring(t, err.Error(), "eep")

		err = ParsePanic(io.EOF)
		check.ErrorIs(t, err, ErrRecoveredPanic)
		check.ErrorIs(t, err, io.EOF)

		err = ParsePanic(42)
		check.ErrorIs(t, err, ErrRecoveredPanic)
		check.Substring(t, err.Error(), "[int]: 42")
	})
	t.Run("WithRecoverCall", func(t *testing.T) {
		check.NotError(t, WithRecoverCall(func() {}))
		check.ErrorIs(t, WithRecoverCall(func() { panic("oops") }), ErrRecoveredPanic)
	})
	t.Run("WithRecoverDo", func(t *testing.T) {
		out, err := WithRecoverDo(func() []int { return []int{1, 2} })
		check.NotError(t, err)
		check.Equal(t, len(out), 2)

		out, err = WithRecoverDo(func() []int {
			partial := []int{1}
			panic(fmt.Sprint(partial))
		})
		check.ErrorIs(t, err, ErrRecoveredPanic)
		check.True(t, out == nil)
	})
	t.Run("InvariantViolation", func(t *testing.T) {
		err := NewInvariantViolation(ErrInvalidInput, "take(%d)", -3)
		check.ErrorIs(t, err, ErrInvariantViolation)
		check.ErrorIs(t, err, ErrInvalidInput)
		check.Substring(t, err.Error(), "take(-3)")
		check.True(t, IsInvariantViolation(err))
		check.True(t, !IsInvariantViolation("string"))
		check.True(t, !IsInvariantViolation(nil))
		check.True(t, !IsInvariantViolation(io.EOF))
	})
}
