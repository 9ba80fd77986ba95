package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/tomate-timer/tomate/internal/config"
	"github.com/tomate-timer/tomate/internal/domain"
	"github.com/tomate-timer/tomate/internal/logging"
	"github.com/tomate-timer/tomate/internal/services"
	"github.com/tomate-timer/tomate/internal/theme"
)

const (
	errorClearDelay = 5 * time.Second
	tipRotateTicks  = 30
)

type uiState int

const (
	stateTimer uiState = iota
	stateCommandPalette
	stateConfirmingStatsReset
	stateEditingSettings
	stateHelp
)

// StatsProvider is the statistics surface the UI reads and resets
type StatsProvider interface {
	Reset()
	Stats() domain.Stats
}

// SettingsSaver persists settings edited in the UI
type SettingsSaver interface {
	SaveTimer(cfg config.Config) error
}

// Model is the interactive timer. It owns the clock and drives it with
// one-second tick messages while it is running.
type Model struct {
	appliedSession      domain.SessionConfig // last session config taken from settings
	clock               *services.SessionClock
	commandPalette      *CommandPalette
	config              config.Config
	devMode             bool
	dispatcher          *ActionDispatcher
	errorManager        *ErrorManager
	height              int
	help                help.Model
	helpScreen          *Dialog
	keys                KeyMap
	lastTitle           string
	onConfigApplied     func(config.Config)
	quitting            bool
	resetStatsConfirmed *bool // pointer so huh keeps writing to it across updates
	resetStatsForm      *Dialog
	settings            SettingsSaver
	settingsForm        *Dialog
	showStats           bool
	state               uiState
	stats               StatsProvider
	tickGeneration      int
	tickInterval        time.Duration
	ticksSinceTip       int
	timerView           *TimerView
	tipIndex            int
	width               int
}

// NewModel creates the timer model. onConfigApplied, when set, is called
// every time a new configuration takes effect.
func NewModel(
	clock *services.SessionClock,
	stats StatsProvider,
	settings SettingsSaver,
	cfg config.Config,
	devMode bool,
	onConfigApplied func(config.Config),
) *Model {
	errorManager := NewErrorManager(errorClearDelay)

	if err := cfg.Keys.Validate(GetValidKeyNames()); err != nil {
		logging.Logger.Warn("Ignoring invalid key bindings", "error", err)
		errorManager.SetError(fmt.Errorf("invalid key bindings: %w", err))
		cfg.Keys = nil
	}

	return &Model{
		appliedSession:  cfg.SessionConfig(),
		clock:           clock,
		config:          cfg,
		devMode:         devMode,
		dispatcher:      NewActionDispatcher(),
		errorManager:    errorManager,
		help:            help.New(),
		keys:            NewKeyMap(cfg.Keys),
		onConfigApplied: onConfigApplied,
		settings:        settings,
		state:           stateTimer,
		stats:           stats,
		tickInterval:    services.TickInterval,
		timerView:       NewTimerView(),
	}
}

// SetTickInterval overrides the countdown interval (tests use a long one)
func (m *Model) SetTickInterval(d time.Duration) {
	m.tickInterval = d
}

// Quitting reports whether the model has asked the program to exit
func (m *Model) Quitting() bool {
	return m.quitting
}

func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.errorManager.HasError() {
		cmds = append(cmds, m.errorManager.ClearAfterDelay())
	}
	if m.clock.Running() {
		cmds = append(cmds, m.scheduleTick())
	}
	return m.withTitle(tea.Batch(cmds...))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.timerView.SetWidth(msg.Width)
		m.help.Width = msg.Width

	case tickMsg:
		return m, m.withTitle(m.handleTick(msg))

	case ConfigChangedMsg:
		return m, m.withTitle(m.applyConfig(msg.Config, false))

	case clearErrorMsg:
		m.errorManager.handleClear(msg)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case stateTimer:
		cmd = m.updateTimer(msg)
	case stateCommandPalette:
		cmd = m.updateCommandPalette(msg)
	case stateConfirmingStatsReset:
		cmd = m.updateConfirmingStatsReset(msg)
	case stateEditingSettings:
		cmd = m.updateEditingSettings(msg)
	case stateHelp:
		cmd = m.updateHelp(msg)
	}
	return m, m.withTitle(cmd)
}

func (m *Model) updateTimer(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case QuitMsg:
		m.quitting = true
		// Clear the countdown from the terminal title before exiting
		return tea.Sequence(tea.SetWindowTitle(""), tea.Quit)

	case RunCommandMsg:
		return m.runClockCommand(msg.ID)

	case ToggleStatsMsg:
		m.showStats = !m.showStats
		return nil

	case ShowHelpMsg:
		m.helpScreen = NewDialog("Help", NewHelpScreen(&m.keys), m.devMode)
		m.state = stateHelp
		return m.openDialog(m.helpScreen)

	case ShowSettingsMsg:
		base := m.config
		base.AutoStartBreak = m.clock.Config().AutoStartBreak
		m.settingsForm = NewDialog("Settings", NewSettingsForm(base), m.devMode)
		m.state = stateEditingSettings
		return m.openDialog(m.settingsForm)

	case ConfirmResetStatsMsg:
		if m.stats == nil {
			return nil
		}
		m.resetStatsConfirmed = new(bool)
		m.resetStatsForm = NewDialog("Reset Statistics", m.newResetStatsForm(), m.devMode)
		m.state = stateConfirmingStatsReset
		return m.resetStatsForm.Init()

	case ShowCommandPaletteMsg:
		m.commandPalette = NewCommandPalette(domain.Commands, m.keys)
		m.state = stateCommandPalette
		initCmd := m.commandPalette.Init()
		_, sizeCmd := m.commandPalette.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return tea.Batch(initCmd, sizeCmd)

	case tea.KeyMsg:
		if action := m.keyAction(msg); action != nil {
			return m.updateTimer(action)
		}
	}

	return nil
}

// keyAction translates a key press on the timer screen to an action message
func (m *Model) keyAction(msg tea.KeyMsg) tea.Msg {
	switch {
	case key.Matches(msg, m.keys.Application.ForceQuit.Binding, m.keys.Application.Quit.Binding):
		return QuitMsg{}
	case key.Matches(msg, m.keys.Application.Help.Binding):
		return ShowHelpMsg{}
	case key.Matches(msg, m.keys.Application.Settings.Binding):
		return ShowSettingsMsg{}
	case key.Matches(msg, m.keys.Application.CommandPalette.Binding):
		return ShowCommandPaletteMsg{}
	case key.Matches(msg, m.keys.Statistics.Reset.Binding):
		return ConfirmResetStatsMsg{}
	}

	for _, cb := range m.keys.commandBindings() {
		if key.Matches(msg, cb.binding) {
			if c := domain.GetCommandByID(string(cb.id)); c != nil {
				return m.dispatcher.Dispatch(*c)
			}
		}
	}
	return nil
}

func (m *Model) updateCommandPalette(msg tea.Msg) tea.Cmd {
	updated, cmd := m.commandPalette.Update(msg)
	m.commandPalette = updated.(*CommandPalette)

	if !m.commandPalette.Completed {
		return cmd
	}

	// Close the palette before running the command
	result := m.commandPalette.Result
	m.state = stateTimer
	m.commandPalette = nil

	if result.Cancelled || result.Command == nil {
		return nil
	}
	if action := m.dispatcher.Dispatch(*result.Command); action != nil {
		return m.updateTimer(action)
	}
	return nil
}

func (m *Model) updateHelp(msg tea.Msg) tea.Cmd {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.state = stateTimer
		m.helpScreen = nil
		return nil
	}
	return cmd
}

func (m *Model) updateEditingSettings(msg tea.Msg) tea.Cmd {
	updated, cmd := m.settingsForm.Update(msg)
	m.settingsForm = updated.(*Dialog)

	content, ok := m.settingsForm.Content().(*SettingsForm)
	if !ok || !content.Completed {
		return cmd
	}

	m.state = stateTimer
	m.settingsForm = nil
	if content.Cancelled {
		return nil
	}

	cfg := content.Result()
	applyCmd := m.applyConfig(cfg, true)
	if m.settings != nil {
		if err := m.settings.SaveTimer(cfg); err != nil {
			m.errorManager.SetError(fmt.Errorf("failed to save settings: %w", err))
			return tea.Batch(applyCmd, m.errorManager.ClearAfterDelay())
		}
	}
	return applyCmd
}

func (m *Model) updateConfirmingStatsReset(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && (keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c") {
		m.closeResetStats()
		return nil
	}

	updated, cmd := m.resetStatsForm.Update(msg)
	m.resetStatsForm = updated.(*Dialog)

	form, ok := m.resetStatsForm.Content().(*huh.Form)
	if !ok {
		return cmd
	}

	switch form.State {
	case huh.StateCompleted:
		if *m.resetStatsConfirmed {
			logging.Logger.Info("Resetting statistics from UI")
			m.stats.Reset()
		}
		m.closeResetStats()
		return nil
	case huh.StateAborted:
		m.closeResetStats()
		return nil
	}
	return cmd
}

func (m *Model) closeResetStats() {
	m.state = stateTimer
	m.resetStatsForm = nil
	m.resetStatsConfirmed = nil
}

func (m *Model) newResetStatsForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reset all statistics?").
				Description("Work sessions, breaks and focus time go back to zero.").
				Value(m.resetStatsConfirmed).
				Affirmative("Reset").
				Negative("Keep"),
		),
	)
}

// openDialog initializes a dialog and sends it the current window size
func (m *Model) openDialog(d *Dialog) tea.Cmd {
	initCmd := d.Init()
	_, sizeCmd := d.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	return tea.Batch(initCmd, sizeCmd)
}

// runClockCommand dispatches id to the clock and keeps the ticker in step
func (m *Model) runClockCommand(id domain.CommandID) tea.Cmd {
	before := m.clock.Snapshot().State
	if !m.clock.Dispatch(string(id)) {
		m.errorManager.SetError(fmt.Errorf("%w: %s", domain.ErrUnknownCommand, id))
		return m.errorManager.ClearAfterDelay()
	}
	return m.syncTicker(before)
}

// applyConfig makes cfg the effective configuration. The clock only sees
// the change when the session part differs from what was last applied.
// Unless explicit (the settings form), an auto-break value the settings did
// not change leaves the runtime toggle alone.
func (m *Model) applyConfig(cfg config.Config, explicit bool) tea.Cmd {
	var cmds []tea.Cmd

	if err := cfg.Keys.Validate(GetValidKeyNames()); err != nil {
		logging.Logger.Warn("Keeping previous key bindings", "error", err)
		m.errorManager.SetError(fmt.Errorf("invalid key bindings: %w", err))
		cmds = append(cmds, m.errorManager.ClearAfterDelay())
		cfg.Keys = m.config.Keys
	} else {
		m.keys = NewKeyMap(cfg.Keys)
	}
	m.config = cfg

	sessionCfg := cfg.SessionConfig()
	if explicit || sessionCfg != m.appliedSession {
		next := sessionCfg
		if !explicit && next.AutoStartBreak == m.appliedSession.AutoStartBreak {
			next.AutoStartBreak = m.clock.Config().AutoStartBreak
		}
		m.appliedSession = sessionCfg

		if next != m.clock.Config() {
			before := m.clock.Snapshot().State
			m.clock.UpdateConfig(next)
			cmds = append(cmds, m.syncTicker(before))
		}
	}

	if m.onConfigApplied != nil {
		m.onConfigApplied(cfg)
	}
	return tea.Batch(cmds...)
}

// syncTicker restarts the tick loop when a command changed the countdown.
// Bumping the generation turns any tick already in flight into a no-op.
func (m *Model) syncTicker(before domain.SessionState) tea.Cmd {
	after := m.clock.Snapshot().State
	if after.Running == before.Running &&
		after.Mode == before.Mode &&
		after.RemainingSeconds == before.RemainingSeconds {
		return nil
	}

	m.tickGeneration++
	if !after.Running {
		return nil
	}
	return m.scheduleTick()
}

func (m *Model) scheduleTick() tea.Cmd {
	generation := m.tickGeneration
	return tea.Tick(m.tickInterval, func(time.Time) tea.Msg {
		return tickMsg{generation: generation}
	})
}

func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if msg.generation != m.tickGeneration || !m.clock.Running() {
		return nil
	}

	m.clock.Tick()
	m.rotateTip()

	if !m.clock.Running() {
		m.tickGeneration++
		return nil
	}
	return m.scheduleTick()
}

func (m *Model) rotateTip() {
	m.ticksSinceTip++
	if m.ticksSinceTip >= tipRotateTicks {
		m.ticksSinceTip = 0
		m.tipIndex++
	}
}

// withTitle appends a window title update when the title text changed
func (m *Model) withTitle(cmd tea.Cmd) tea.Cmd {
	if m.quitting {
		return cmd
	}
	title := domain.WindowTitle(m.clock.Snapshot())
	if title == m.lastTitle {
		return cmd
	}
	m.lastTitle = title
	return tea.Batch(cmd, tea.SetWindowTitle(title))
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateCommandPalette:
		if m.commandPalette != nil {
			return compositeOverlay(m.timerScreen(), m.commandPalette.View(), m.width, m.height)
		}
	case stateConfirmingStatsReset:
		if m.resetStatsForm != nil {
			return m.resetStatsForm.View()
		}
	case stateEditingSettings:
		if m.settingsForm != nil {
			return m.settingsForm.View()
		}
	case stateHelp:
		if m.helpScreen != nil {
			return m.helpScreen.View()
		}
	}
	return m.timerScreen()
}

// timerScreen renders the header, the timer, the optional statistics panel
// and the footer
func (m *Model) timerScreen() string {
	view := renderHeader(m.devMode, "") + "\n"
	view += m.timerView.View(m.clock.Snapshot()) + "\n"

	if m.showStats && m.stats != nil {
		panel := renderStatsPanel(m.stats.Stats(), &m.keys)
		if m.width > 0 {
			panel = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, panel)
		}
		view += "\n" + panel + "\n"
	}

	// Footer: error takes priority over the rotating tip
	view += "\n"
	if m.errorManager.HasError() {
		view += theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width))
	} else if tips := m.keys.Tips(); len(tips) > 0 {
		view += RenderTip(tips[m.tipIndex%len(tips)])
	}

	return view + "\n" + m.help.View(m.keys)
}
