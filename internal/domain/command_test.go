package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCommandByID(t *testing.T) {
	cmd := GetCommandByID("start-pause")
	require.NotNil(t, cmd)
	assert.Equal(t, "P", cmd.Shortcut)

	assert.Nil(t, GetCommandByID("nope"))
}

func TestGetCommandByID_Alias(t *testing.T) {
	cmd := GetCommandByID("toggle-auto")
	require.NotNil(t, cmd)
	assert.Equal(t, CmdToggleAutoBreak, cmd.ID)
}

func TestClockCommands_ExcludesUIOnly(t *testing.T) {
	for _, c := range ClockCommands() {
		assert.NotEqual(t, CmdOpenStats, c.ID)
	}
	assert.Len(t, ClockCommands(), len(Commands)-1)
}

func TestParseMode(t *testing.T) {
	m, ok := ParseMode("short")
	assert.True(t, ok)
	assert.Equal(t, ModeShortBreak, m)

	m, ok = ParseMode("long_break")
	assert.True(t, ok)
	assert.Equal(t, ModeLongBreak, m)

	_, ok = ParseMode("lunch")
	assert.False(t, ok)
}
