package session

import "fmt"

// Settings keys for the timer preferences.
const (
	KeyFocus       = "pomodoro_focus"
	KeyShortBreak  = "pomodoro_short_break"
	KeyLongBreak   = "pomodoro_long_break"
	KeyRepetitions = "pomodoro_repetitions"
)

const (
	DefaultFocus       = 1500
	DefaultShortBreak  = 300
	DefaultLongBreak   = 900
	DefaultRepetitions = 4
)

// Config holds the session durations in seconds and the number of focus
// sessions before a long break.
type Config struct {
	Focus       int
	ShortBreak  int
	LongBreak   int
	Repetitions int
}

func DefaultConfig() Config {
	return Config{
		Focus:       DefaultFocus,
		ShortBreak:  DefaultShortBreak,
		LongBreak:   DefaultLongBreak,
		Repetitions: DefaultRepetitions,
	}
}

// Normalize replaces every non-positive field with its default.
func (c Config) Normalize() Config {
	if c.Focus <= 0 {
		c.Focus = DefaultFocus
	}
	if c.ShortBreak <= 0 {
		c.ShortBreak = DefaultShortBreak
	}
	if c.LongBreak <= 0 {
		c.LongBreak = DefaultLongBreak
	}
	if c.Repetitions <= 0 {
		c.Repetitions = DefaultRepetitions
	}
	return c
}

// Duration returns the configured length of a session kind in seconds.
func (c Config) Duration(k Kind) int {
	switch k {
	case ShortBreak:
		return c.ShortBreak
	case LongBreak:
		return c.LongBreak
	default:
		return c.Focus
	}
}

// Preferences is the key/value store the timer settings live in.
// GetInt returns fallback when the key is missing or not a number.
type Preferences interface {
	GetInt(key string, fallback int) int
	SetInt(key string, value int) error
}

// LoadConfig reads the timer settings from p and normalizes them.
func LoadConfig(p Preferences) Config {
	return Config{
		Focus:       p.GetInt(KeyFocus, DefaultFocus),
		ShortBreak:  p.GetInt(KeyShortBreak, DefaultShortBreak),
		LongBreak:   p.GetInt(KeyLongBreak, DefaultLongBreak),
		Repetitions: p.GetInt(KeyRepetitions, DefaultRepetitions),
	}.Normalize()
}

// SaveConfig writes cfg to p after normalizing it.
func SaveConfig(p Preferences, cfg Config) error {
	cfg = cfg.Normalize()
	values := []struct {
		key   string
		value int
	}{
		{KeyFocus, cfg.Focus},
		{KeyShortBreak, cfg.ShortBreak},
		{KeyLongBreak, cfg.LongBreak},
		{KeyRepetitions, cfg.Repetitions},
	}
	for _, v := range values {
		if err := p.SetInt(v.key, v.value); err != nil {
			return fmt.Errorf("save setting %q: %w", v.key, err)
		}
	}
	return nil
}
