package session

import (
	"errors"
	"testing"
)

// memPrefs is an in-memory Preferences for tests.
type memPrefs struct {
	values map[string]int
	err    error
}

func (m *memPrefs) GetInt(key string, fallback int) int {
	if v, ok := m.values[key]; ok {
		return v
	}
	return fallback
}

func (m *memPrefs) SetInt(key string, value int) error {
	if m.err != nil {
		return m.err
	}
	if m.values == nil {
		m.values = make(map[string]int)
	}
	m.values[key] = value
	return nil
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	want := Config{Focus: 1500, ShortBreak: 300, LongBreak: 900, Repetitions: 4}
	if cfg != want {
		t.Fatalf("DefaultConfig() = %+v, want %+v", cfg, want)
	}
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{"zero", Config{}, DefaultConfig()},
		{"negative", Config{-1, -2, -3, -4}, DefaultConfig()},
		{"valid", Config{5, 3, 10, 2}, Config{5, 3, 10, 2}},
		{"mixed", Config{600, 0, 1200, -1}, Config{600, 300, 1200, 4}},
	}
	for _, tt := range tests {
		if got := tt.in.Normalize(); got != tt.want {
			t.Errorf("%s: Normalize() = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestConfigDuration(t *testing.T) {
	cfg := Config{Focus: 5, ShortBreak: 3, LongBreak: 10, Repetitions: 2}
	if cfg.Duration(Focus) != 5 || cfg.Duration(ShortBreak) != 3 || cfg.Duration(LongBreak) != 10 {
		t.Fatalf("unexpected durations for %+v", cfg)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig(&memPrefs{})
	if cfg != DefaultConfig() {
		t.Fatalf("LoadConfig on empty prefs = %+v", cfg)
	}
}

func TestLoadConfigReplacesInvalid(t *testing.T) {
	p := &memPrefs{values: map[string]int{
		KeyFocus:       600,
		KeyShortBreak:  0,
		KeyLongBreak:   -5,
		KeyRepetitions: 2,
	}}
	cfg := LoadConfig(p)
	want := Config{Focus: 600, ShortBreak: 300, LongBreak: 900, Repetitions: 2}
	if cfg != want {
		t.Fatalf("LoadConfig() = %+v, want %+v", cfg, want)
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	p := &memPrefs{}
	in := Config{Focus: 5, ShortBreak: 3, LongBreak: 10, Repetitions: 2}
	if err := SaveConfig(p, in); err != nil {
		t.Fatal(err)
	}
	if got := LoadConfig(p); got != in {
		t.Fatalf("round trip = %+v, want %+v", got, in)
	}
}

func TestSaveConfigNormalizes(t *testing.T) {
	p := &memPrefs{}
	if err := SaveConfig(p, Config{Focus: -1, ShortBreak: 3, LongBreak: 10, Repetitions: 0}); err != nil {
		t.Fatal(err)
	}
	if p.values[KeyFocus] != DefaultFocus || p.values[KeyRepetitions] != DefaultRepetitions {
		t.Fatalf("stored invalid values: %v", p.values)
	}
}

func TestSaveConfigError(t *testing.T) {
	boom := errors.New("boom")
	err := SaveConfig(&memPrefs{err: boom}, DefaultConfig())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestKindString(t *testing.T) {
	for _, k := range []Kind{Focus, ShortBreak, LongBreak} {
		parsed, ok := ParseKind(k.String())
		if !ok || parsed != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k.String(), parsed, ok)
		}
	}
	if Kind(42).String() != "unknown" {
		t.Fatal("out of range kind should be unknown")
	}
	if _, ok := ParseKind("nap"); ok {
		t.Fatal("ParseKind should reject unknown names")
	}
}
