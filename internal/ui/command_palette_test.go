package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomate-timer/tomate/internal/domain"
	"github.com/tomate-timer/tomate/internal/teatest"
)

func titles(commands []domain.Command) []string {
	result := make([]string, len(commands))
	for i, c := range commands {
		result[i] = c.Title
	}
	return result
}

func newPaletteDriver(t *testing.T) (*teatest.Driver, *CommandPalette) {
	t.Helper()
	palette := NewCommandPalette(domain.Commands, NewKeyMap(nil))
	d := teatest.New(t, palette, teatest.WithSize(100, 30))
	d.DrainInit()
	return d, palette
}

func TestScoreTitle(t *testing.T) {
	tests := []struct {
		name  string
		query string
		title string
		want  int
	}{
		{"empty query", "", "Reset timer", 100},
		{"blank query", "   ", "Reset timer", 100},
		{"exact", "statistics", "Statistics", 100},
		{"exact with padding", "  Statistics ", "Statistics", 100},
		{"prefix", "start", "Start / Pause timer", 90},
		{"substring", "pause", "Start / Pause timer", 75},
		{"subsequence", "sp", "Start / Pause timer", 50},
		{"subsequence across words", "tgl", "Toggle Auto-break", 50},
		{"no match", "xyz", "Reset timer", 0},
		{"out of order", "remit", "Reset timer", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreTitle(tt.query, tt.title))
		})
	}
}

func TestRankCommands_EmptyQueryOrdersByTitle(t *testing.T) {
	ranked := rankCommands(domain.Commands, "")

	assert.Equal(t, []string{
		"Reset timer",
		"Start / Pause timer",
		"Start Long Break",
		"Start Short Break",
		"Statistics",
		"Switch to Work",
		"Toggle Auto-break",
	}, titles(ranked))
}

func TestRankCommands_HigherScoresFirst(t *testing.T) {
	// "break" is a substring of three titles and matches nothing else
	assert.Equal(t, []string{
		"Start Long Break",
		"Start Short Break",
		"Toggle Auto-break",
	}, titles(rankCommands(domain.Commands, "break")))

	// exact beats prefix
	ranked := rankCommands(domain.Commands, "start short break")
	require.NotEmpty(t, ranked)
	assert.Equal(t, "Start Short Break", ranked[0].Title)
}

func TestRankCommands_NoMatch(t *testing.T) {
	assert.Empty(t, rankCommands(domain.Commands, "qqq"))
}

func TestCommandPalette_ShortcutRunsWhenQueryEmpty(t *testing.T) {
	d, palette := newPaletteDriver(t)

	d.PressKey('l')

	require.True(t, palette.Completed)
	require.NotNil(t, palette.Result.Command)
	assert.Equal(t, domain.CmdLong, palette.Result.Command.ID)
}

func TestCommandPalette_ShortcutIgnoredWhileSearching(t *testing.T) {
	d, palette := newPaletteDriver(t)

	d.Type("tim")
	d.PressKey('r')

	assert.False(t, palette.Completed)
	assert.Equal(t, "timr", palette.Query())
}

func TestCommandPalette_ShortcutIgnoredWithModifier(t *testing.T) {
	d, palette := newPaletteDriver(t)

	d.PressAltKey('p')

	assert.False(t, palette.Completed)
}

func TestCommandPalette_EnterRunsSelected(t *testing.T) {
	d, palette := newPaletteDriver(t)

	d.Type("go")
	require.NotEmpty(t, palette.Matches())
	d.PressDown()
	d.PressUp()
	d.PressEnter()

	require.True(t, palette.Completed)
	require.NotNil(t, palette.Result.Command)
	assert.Equal(t, palette.Matches()[0].ID, palette.Result.Command.ID)
}

func TestCommandPalette_DownMovesSelection(t *testing.T) {
	d, palette := newPaletteDriver(t)

	d.PressDown()
	d.PressEnter()

	require.NotNil(t, palette.Result.Command)
	assert.Equal(t, "Start / Pause timer", palette.Result.Command.Title)
}

func TestCommandPalette_EscCancels(t *testing.T) {
	d, palette := newPaletteDriver(t)

	d.PressEsc()

	assert.True(t, palette.Completed)
	assert.True(t, palette.Result.Cancelled)
	assert.Nil(t, palette.Result.Command)
}

func TestCommandPalette_ViewShowsEmptyState(t *testing.T) {
	d, _ := newPaletteDriver(t)

	d.Type("zzz")

	assert.Contains(t, d.View(), "No commands found.")
}
