package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatErrorForDisplay(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Empty(t, formatErrorForDisplay(nil, 80))
	})

	t.Run("short message", func(t *testing.T) {
		assert.Equal(t, "Error: boom", formatErrorForDisplay(errors.New("boom"), 80))
	})

	t.Run("empty message", func(t *testing.T) {
		assert.Equal(t, "Error: unknown error", formatErrorForDisplay(errors.New(""), 80))
	})

	t.Run("long message is cut to two lines", func(t *testing.T) {
		long := strings.Repeat("settings file could not be written ", 10)

		got := formatErrorForDisplay(errors.New(long), 40)

		lines := strings.Split(got, "\n")
		assert.Len(t, lines, maxErrorLines)
		assert.True(t, strings.HasPrefix(lines[0], errorPrefix))
		assert.True(t, strings.HasSuffix(lines[1], truncationMark))
		for _, line := range lines {
			assert.LessOrEqual(t, len([]rune(line)), 40)
		}
	})
}

func TestErrorManager_ClearOnlyCurrent(t *testing.T) {
	em := NewErrorManager(0)

	em.SetError(errors.New("first"))
	stale := clearErrorMsg{id: em.id}
	em.SetError(errors.New("second"))

	em.handleClear(stale)
	assert.True(t, em.HasError())

	em.handleClear(clearErrorMsg{id: em.id})
	assert.False(t, em.HasError())
}
