package tui

import (
	"fmt"
	"time"

	"github.com/sadopc/pomo/internal/session"
)

// viewState represents the currently active view.
type viewState int

const (
	viewTimer viewState = iota
	viewHistory
	viewSettings
)

var viewNames = []string{"Timer", "History", "Settings"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

// settingsSavedMsg is sent after the settings form wrote new timer values.
type settingsSavedMsg struct{}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

var kindLabels = map[session.Kind]string{
	session.Focus:      "FOCUS",
	session.ShortBreak: "SHORT BREAK",
	session.LongBreak:  "LONG BREAK",
}

func kindLabel(k session.Kind) string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return k.String()
}

// kindNameLabel maps a stored kind name to its display label.
func kindNameLabel(name string) string {
	if k, ok := session.ParseKind(name); ok {
		return kindLabel(k)
	}
	return name
}

func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func formatSeconds(secs int64) string {
	return formatDuration(time.Duration(secs) * time.Second)
}

func formatMinutes(secs int64) string {
	return fmt.Sprintf("%dm", secs/60)
}
