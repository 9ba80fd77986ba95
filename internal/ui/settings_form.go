package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/tomate-timer/tomate/internal/config"
	"github.com/tomate-timer/tomate/internal/logging"
)

// SettingsForm edits the timer settings. Result is only meaningful once
// Completed is set and Cancelled is not.
type SettingsForm struct {
	Cancelled bool
	Completed bool
	base      config.Config
	form      *huh.Form
	values    *settingsFormValues
}

// settingsFormValues holds the form fields; huh edits numbers as text
type settingsFormValues struct {
	AutoStartBreak    bool
	CreditInterrupted bool
	Cycles            string
	LongBreak         string
	Notifications     bool
	ShortBreak        string
	Sound             bool
	Work              string
}

func newSettingsFormValues(cfg config.Config) *settingsFormValues {
	return &settingsFormValues{
		AutoStartBreak:    cfg.AutoStartBreak,
		CreditInterrupted: cfg.CreditInterrupted,
		Cycles:            strconv.Itoa(cfg.CyclesBeforeLongBreak),
		LongBreak:         strconv.Itoa(cfg.LongBreakMinutes),
		Notifications:     cfg.Notifications,
		ShortBreak:        strconv.Itoa(cfg.ShortBreakMinutes),
		Sound:             cfg.Sound,
		Work:              strconv.Itoa(cfg.WorkMinutes),
	}
}

// apply returns base with the edited fields replaced
func (v *settingsFormValues) apply(base config.Config) (config.Config, error) {
	cfg := base
	cfg.AutoStartBreak = v.AutoStartBreak
	cfg.CreditInterrupted = v.CreditInterrupted
	cfg.Notifications = v.Notifications
	cfg.Sound = v.Sound

	fields := []struct {
		dst   *int
		name  string
		value string
	}{
		{&cfg.WorkMinutes, "work minutes", v.Work},
		{&cfg.ShortBreakMinutes, "short break minutes", v.ShortBreak},
		{&cfg.LongBreakMinutes, "long break minutes", v.LongBreak},
		{&cfg.CyclesBeforeLongBreak, "cycles before long break", v.Cycles},
	}
	for _, f := range fields {
		n, err := parsePositive(f.value)
		if err != nil {
			return base, fmt.Errorf("invalid %s: %w", f.name, err)
		}
		*f.dst = n
	}
	return cfg, nil
}

func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.New("must be a whole number")
	}
	if n < 1 {
		return 0, errors.New("must be at least 1")
	}
	return n, nil
}

func validatePositive(s string) error {
	_, err := parsePositive(s)
	return err
}

// NewSettingsForm creates a settings form prefilled from cfg
func NewSettingsForm(cfg config.Config) *SettingsForm {
	sf := &SettingsForm{
		base:   cfg,
		values: newSettingsFormValues(cfg),
	}

	onOff := func(title string, value *bool) *huh.Confirm {
		return huh.NewConfirm().Title(title).Value(value).Affirmative("On").Negative("Off")
	}

	sf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Work (minutes)").Value(&sf.values.Work).Validate(validatePositive).CharLimit(4),
			huh.NewInput().Title("Short break (minutes)").Value(&sf.values.ShortBreak).Validate(validatePositive).CharLimit(4),
			huh.NewInput().Title("Long break (minutes)").Value(&sf.values.LongBreak).Validate(validatePositive).CharLimit(4),
			huh.NewInput().Title("Rounds before a long break").Value(&sf.values.Cycles).Validate(validatePositive).CharLimit(3),
		),
		huh.NewGroup(
			onOff("Start breaks automatically", &sf.values.AutoStartBreak),
			onOff("Count interrupted sessions", &sf.values.CreditInterrupted),
			onOff("Desktop notifications", &sf.values.Notifications),
			onOff("Sound", &sf.values.Sound),
		),
	)

	return sf
}

func (sf *SettingsForm) Init() tea.Cmd {
	return sf.form.Init()
}

func (sf *SettingsForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sf.Completed {
		return sf, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			sf.Cancelled = true
			sf.Completed = true
			return sf, nil
		}
	}

	form, cmd := sf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		sf.form = f
	}

	switch sf.form.State {
	case huh.StateCompleted:
		sf.Completed = true
		return sf, nil
	case huh.StateAborted:
		sf.Cancelled = true
		sf.Completed = true
		return sf, nil
	}

	return sf, cmd
}

func (sf *SettingsForm) View() string {
	if sf.form != nil {
		return sf.form.View()
	}
	return ""
}

// Result returns the edited configuration. Fields that fail to parse keep
// their previous value.
func (sf *SettingsForm) Result() config.Config {
	cfg, err := sf.values.apply(sf.base)
	if err != nil {
		logging.Logger.Warn("Discarding settings form edits", "error", err)
	}
	return cfg
}
