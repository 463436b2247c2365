package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/pomo/internal/session"
	"github.com/sadopc/pomo/internal/store"
)

var settingLabels = map[string]string{
	session.KeyFocus:       "Focus",
	session.KeyShortBreak:  "Short break",
	session.KeyLongBreak:   "Long break",
	session.KeyRepetitions: "Focus sessions per cycle",
}

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	settings   []store.Setting
	formActive bool
	form       *huh.Form
	err        error

	// Form values as pointers (survive value copies)
	focus       *string
	shortBreak  *string
	longBreak   *string
	repetitions *string
}

func newSettingsModel(s *store.Store) settingsModel {
	f, sb, lb, r := "", "", "", ""
	return settingsModel{
		store:       s,
		focus:       &f,
		shortBreak:  &sb,
		longBreak:   &lb,
		repetitions: &r,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	settings []store.Setting
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, _ := s.store.GetAllSettings()
		return settingsDataMsg{settings: settings}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Enter) {
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	cfg := session.LoadConfig(s.store)
	*s.focus = strconv.Itoa(cfg.Focus / 60)
	*s.shortBreak = strconv.Itoa(cfg.ShortBreak / 60)
	*s.longBreak = strconv.Itoa(cfg.LongBreak / 60)
	*s.repetitions = strconv.Itoa(cfg.Repetitions)

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Focus (min)").Value(s.focus).Validate(validatePositive("focus duration")),
			huh.NewInput().Title("Short break (min)").Value(s.shortBreak).Validate(validatePositive("short break")),
			huh.NewInput().Title("Long break (min)").Value(s.longBreak).Validate(validatePositive("long break")),
			huh.NewInput().Title("Focus sessions before long break").Value(s.repetitions).Validate(validatePositive("count")),
		).Title("Pomodoro"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	s.err = nil
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		if err := s.saveSettings(); err != nil {
			s.err = err
			return s, func() tea.Msg {
				return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
			}
		}
		return s, tea.Batch(s.refresh(), func() tea.Msg { return settingsSavedMsg{} })
	}

	return s, cmd
}

func (s settingsModel) saveSettings() error {
	cfg := session.Config{
		Focus:       minToSecs(*s.focus),
		ShortBreak:  minToSecs(*s.shortBreak),
		LongBreak:   minToSecs(*s.longBreak),
		Repetitions: atoiOrZero(*s.repetitions),
	}
	return session.SaveConfig(s.store, cfg)
}

func (s settingsModel) view() string {
	w := s.width - 4
	title := titleStyle.Render("Settings")

	if s.formActive && s.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for _, setting := range s.settings {
		name, ok := settingLabels[setting.Key]
		if !ok {
			name = setting.Key
		}
		label := lipgloss.NewStyle().Width(26).Render(name)
		value := highlightStyle.Render(formatSettingValue(setting.Key, setting.Value))
		rows = append(rows, fmt.Sprintf("  %s %s", label, value))
	}

	if s.err != nil {
		rows = append(rows, "", errorStyle.Render(s.err.Error()))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("Press enter to edit settings. Saving restarts the cycle."))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func formatSettingValue(k, v string) string {
	switch k {
	case session.KeyFocus, session.KeyShortBreak, session.KeyLongBreak:
		if secs, err := strconv.Atoi(v); err == nil {
			if secs%60 == 0 {
				return fmt.Sprintf("%d min", secs/60)
			}
			return session.FormatRemaining(secs)
		}
	}
	return v
}

func validatePositive(label string) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n <= 0 {
			return fmt.Errorf("enter a valid %s (positive number)", label)
		}
		return nil
	}
}

func minToSecs(s string) int {
	return atoiOrZero(s) * 60
}

// atoiOrZero yields 0 for unparsable input, which Config.Normalize replaces
// with the default.
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
