package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/tomate-timer/tomate/internal/domain"
	"github.com/tomate-timer/tomate/internal/theme"
)

// Palette match scores. Zero means the command is filtered out.
const (
	scoreExact       = 100
	scorePrefix      = 90
	scoreSubstring   = 75
	scoreSubsequence = 50
)

// CommandPalette is a searchable command overlay.
type CommandPalette struct {
	Completed     bool
	Result        CommandPaletteResult
	all           []domain.Command
	filterInput   textinput.Model
	height        int
	keys          KeyMap
	lastQuery     string
	matches       []domain.Command
	selectedIndex int
	width         int
}

// CommandPaletteResult contains the result of the command palette interaction.
type CommandPaletteResult struct {
	Command   *domain.Command
	Cancelled bool
}

// NewCommandPalette creates a palette over the given commands
func NewCommandPalette(commands []domain.Command, keys KeyMap) *CommandPalette {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = theme.FilterPromptStyle
	ti.Cursor.Style = theme.FilterCursorStyle
	ti.Placeholder = "Search commands..."
	ti.PlaceholderStyle = theme.DimmedStyle
	ti.Focus()
	ti.CharLimit = 50
	ti.Width = 40

	return &CommandPalette{
		all:         commands,
		filterInput: ti,
		keys:        keys,
		matches:     rankCommands(commands, ""),
	}
}

// Init initializes the command palette.
func (cp *CommandPalette) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the command palette.
func (cp *CommandPalette) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cp.width = msg.Width
		cp.height = msg.Height
		return cp, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, cp.keys.Navigation.Close.Binding) ||
			key.Matches(msg, cp.keys.Application.ForceQuit.Binding):
			cp.Completed = true
			cp.Result.Cancelled = true
			return cp, nil

		case key.Matches(msg, cp.keys.Navigation.Select.Binding):
			if cp.selectedIndex < len(cp.matches) {
				cp.choose(cp.matches[cp.selectedIndex])
			}
			return cp, nil

		case key.Matches(msg, cp.keys.Navigation.Up.Binding):
			if cp.selectedIndex > 0 {
				cp.selectedIndex--
			}
			return cp, nil

		case key.Matches(msg, cp.keys.Navigation.Down.Binding):
			if cp.selectedIndex < len(cp.matches)-1 {
				cp.selectedIndex++
			}
			return cp, nil
		}

		if c, ok := cp.shortcutCommand(msg); ok {
			cp.choose(c)
			return cp, nil
		}
	}

	var cmd tea.Cmd
	cp.filterInput, cmd = cp.filterInput.Update(msg)
	cp.refilter()

	return cp, cmd
}

// View renders the palette box
func (cp *CommandPalette) View() string {
	var items []string
	titleWidth := cp.maxTitleLen()
	start, end := cp.visibleRange()
	hasMoreAbove := start > 0
	hasMoreBelow := end < len(cp.matches)

	for i := start; i < end; i++ {
		c := cp.matches[i]

		var prefix string
		switch {
		case i == cp.selectedIndex:
			prefix = "> "
		case i == start && hasMoreAbove:
			prefix = theme.ScrollIndicatorStyle.Render("↑ ")
		case i == end-1 && hasMoreBelow:
			prefix = theme.ScrollIndicatorStyle.Render("↓ ")
		default:
			prefix = "  "
		}

		itemStyle := theme.PaletteItemStyle
		if i == cp.selectedIndex {
			itemStyle = theme.PaletteItemSelectedStyle
		}
		items = append(items, prefix+
			itemStyle.Render(padRight(c.Title, titleWidth))+
			theme.PaletteShortcutStyle.Render("  "+c.Shortcut))
	}

	if len(items) == 0 {
		items = append(items, theme.PaletteDescStyle.Render("  No commands found."))
	}
	for len(items) < maxVisibleItems {
		items = append(items, "")
	}

	inner := theme.PaletteTitleStyle.Render("Commands") + "\n\n" +
		cp.filterInput.View() + "\n\n" +
		strings.Join(items, "\n")

	return theme.PaletteBorderStyle.Width(cp.paletteWidth()).Render(inner)
}

// Query returns the current filter text
func (cp *CommandPalette) Query() string {
	return cp.filterInput.Value()
}

// Matches returns the ranked commands matching the current query
func (cp *CommandPalette) Matches() []domain.Command {
	return cp.matches
}

func (cp *CommandPalette) choose(c domain.Command) {
	cp.Completed = true
	cp.Result.Command = &c
}

// shortcutCommand resolves a single unmodified key to a command. Shortcuts
// only fire while the query is empty so typing still filters.
func (cp *CommandPalette) shortcutCommand(msg tea.KeyMsg) (domain.Command, bool) {
	if msg.Type != tea.KeyRunes || msg.Alt || len(msg.Runes) != 1 {
		return domain.Command{}, false
	}
	if strings.TrimSpace(cp.filterInput.Value()) != "" {
		return domain.Command{}, false
	}

	pressed := strings.ToUpper(string(msg.Runes))
	for _, c := range cp.all {
		if c.Shortcut != "" && strings.ToUpper(c.Shortcut) == pressed {
			return c, true
		}
	}
	return domain.Command{}, false
}

func (cp *CommandPalette) refilter() {
	query := cp.filterInput.Value()
	if query == cp.lastQuery {
		return
	}
	cp.lastQuery = query
	cp.matches = rankCommands(cp.all, query)
	cp.selectedIndex = 0
}

// rankCommands scores every command title against query, drops the ones
// that do not match and orders the rest by score, then title
func rankCommands(commands []domain.Command, query string) []domain.Command {
	type scored struct {
		cmd   domain.Command
		score int
	}

	var ranked []scored
	for _, c := range commands {
		if s := scoreTitle(query, c.Title); s > 0 {
			ranked = append(ranked, scored{cmd: c, score: s})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return strings.ToLower(ranked[i].cmd.Title) < strings.ToLower(ranked[j].cmd.Title)
	})

	result := make([]domain.Command, len(ranked))
	for i, r := range ranked {
		result[i] = r.cmd
	}
	return result
}

// scoreTitle rates how well title matches query: exact 100, prefix 90,
// substring 75, in-order subsequence 50, otherwise 0. An empty query
// matches everything at 100.
func scoreTitle(query, title string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return scoreExact
	}

	t := strings.ToLower(title)
	switch {
	case t == q:
		return scoreExact
	case strings.HasPrefix(t, q):
		return scorePrefix
	case strings.Contains(t, q):
		return scoreSubstring
	case len(fuzzy.Find(q, []string{t})) > 0:
		return scoreSubsequence
	}
	return 0
}

func (cp *CommandPalette) maxTitleLen() int {
	maxLen := 0
	for _, c := range cp.all {
		maxLen = max(maxLen, len(c.Title))
	}
	return maxLen
}

func (cp *CommandPalette) paletteWidth() int {
	if cp.width > 0 {
		return min(cp.width-2, 60)
	}
	return 60
}

// maxVisibleItems is the number of rows the list shows at once
const maxVisibleItems = 7

// visibleRange returns the start and end indices for visible items.
func (cp *CommandPalette) visibleRange() (int, int) {
	total := len(cp.matches)
	if total <= maxVisibleItems {
		return 0, total
	}

	start := max(cp.selectedIndex-maxVisibleItems/2, 0)
	end := start + maxVisibleItems
	if end > total {
		end = total
		start = end - maxVisibleItems
	}
	return start, end
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
