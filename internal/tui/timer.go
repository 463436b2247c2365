package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/sadopc/pomo/internal/session"
	"github.com/sadopc/pomo/internal/store"
)

// transitionSink observes the controller. bubbletea copies models by value,
// so the sink lives behind a pointer and collects transitions for the
// timer model to pick up after each mutating call.
type transitionSink struct {
	store   *store.Store
	log     *zap.Logger
	runID   string
	pending []session.Transition
}

func (t *transitionSink) observe(e session.Event) {
	if e.Type != session.EventTransitioned {
		return
	}
	tr := e.Transition
	t.log.Info("session transition",
		zap.String("from", tr.From.String()),
		zap.String("to", tr.To.String()),
		zap.Int("cycle_index", tr.CycleIndex),
		zap.Int("elapsed", tr.Elapsed),
		zap.Bool("skipped", tr.Skipped),
	)
	if t.store != nil {
		_, err := t.store.RecordSession(store.SessionRecord{
			RunID:      t.runID,
			Kind:       tr.From.String(),
			NextKind:   tr.To.String(),
			CycleIndex: tr.CycleIndex,
			Duration:   int64(tr.Elapsed),
			Skipped:    tr.Skipped,
		})
		if err != nil {
			t.log.Error("record session", zap.Error(err))
		}
	}
	t.pending = append(t.pending, tr)
}

func (t *transitionSink) drain() []session.Transition {
	out := t.pending
	t.pending = nil
	return out
}

type timerModel struct {
	store  *store.Store
	ctrl   *session.Controller
	sink   *transitionSink
	log    *zap.Logger
	width  int
	height int

	autoStart  bool
	notice     string
	todayCount int
}

func newTimerModel(s *store.Store, log *zap.Logger, runID string, autoStart bool) timerModel {
	if log == nil {
		log = zap.NewNop()
	}
	ctrl := session.NewController(session.LoadConfig(s))
	sink := &transitionSink{store: s, log: log, runID: runID}
	ctrl.Subscribe(sink.observe)

	m := timerModel{
		store:     s,
		ctrl:      ctrl,
		sink:      sink,
		log:       log,
		autoStart: autoStart,
	}
	if n, err := s.GetTodayFocusCount(); err == nil {
		m.todayCount = n
	}
	return m
}

func (t *timerModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t timerModel) update(msg tea.Msg) (timerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		t.ctrl.Tick()
		return t.afterTransitions()

	case settingsSavedMsg:
		cfg := session.LoadConfig(t.store)
		t.ctrl.ReloadConfiguration(cfg)
		t.notice = ""
		t.log.Info("configuration reloaded",
			zap.Int("focus", cfg.Focus),
			zap.Int("short_break", cfg.ShortBreak),
			zap.Int("long_break", cfg.LongBreak),
			zap.Int("repetitions", cfg.Repetitions),
		)
		return t, func() tea.Msg {
			return statusMsg{text: "Timer settings applied"}
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Start):
			t.notice = ""
			t.ctrl.Start()
		case key.Matches(msg, keys.Pause):
			t.notice = ""
			if t.ctrl.State().Running {
				t.ctrl.Pause()
			} else {
				t.ctrl.Start()
			}
		case key.Matches(msg, keys.Reset):
			t.notice = ""
			t.ctrl.Reset()
		case key.Matches(msg, keys.Skip):
			t.ctrl.Skip()
			return t.afterTransitions()
		case key.Matches(msg, keys.Enter):
			t.notice = ""
		}
	}
	return t, nil
}

// afterTransitions turns recorded transitions into a notice and a bell.
func (t timerModel) afterTransitions() (timerModel, tea.Cmd) {
	transitions := t.sink.drain()
	if len(transitions) == 0 {
		return t, nil
	}
	last := transitions[len(transitions)-1]
	for _, tr := range transitions {
		if tr.From == session.Focus && !tr.Skipped {
			t.todayCount++
		}
	}
	t.notice = transitionNotice(last)
	if t.autoStart {
		t.ctrl.Start()
	}
	text := t.notice
	if !last.Skipped {
		text += " \a"
	}
	return t, func() tea.Msg {
		return statusMsg{text: text}
	}
}

func transitionNotice(tr session.Transition) string {
	switch tr.To {
	case session.ShortBreak:
		return "Focus complete! Time for a short break."
	case session.LongBreak:
		return "Focus complete! Time for a long break."
	default:
		return "Break over! Time to focus."
	}
}

func (t timerModel) view() string {
	w := t.width - 4
	st := t.ctrl.State()

	title := titleStyle.Render("Pomodoro Timer")

	style := kindStyle(st.Kind).Bold(true)
	timeDisplay := style.Width(w - 6).Align(lipgloss.Center).Render(t.ctrl.RemainingDisplay())
	if !st.Running {
		timeDisplay = timerPausedStyle.Width(w - 6).Render(t.ctrl.RemainingDisplay())
	}
	kindLine := style.Render(kindLabel(st.Kind))
	if !st.Running {
		kindLine += mutedStyle.Render("  (paused)")
	}

	rows := []string{
		title,
		"",
		timeDisplay,
		kindLine,
		"",
		t.renderProgress(st),
		mutedStyle.Render(fmt.Sprintf("Focus sessions today: %d", t.todayCount)),
	}
	if t.notice != "" {
		rows = append(rows, "", noticeStyle.Render(t.notice))
	}

	var controls string
	if st.Running {
		controls = mutedStyle.Render("space: pause  r: reset  n: skip")
	} else {
		controls = mutedStyle.Render("s: start  r: reset  n: skip  q: quit")
	}
	if t.notice != "" {
		controls = mutedStyle.Render("enter: dismiss  ") + controls
	}

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Center, lipgloss.JoinVertical(lipgloss.Center, rows...), "", controls),
	)
}

// renderProgress draws one dot per focus session of the current cycle.
func (t timerModel) renderProgress(st session.State) string {
	reps := t.ctrl.Config().Repetitions
	var parts []string
	for i := 0; i < reps; i++ {
		switch {
		case st.Kind == session.LongBreak:
			parts = append(parts, successStyle.Render("●"))
		case i < st.CycleIndex:
			parts = append(parts, successStyle.Render("●"))
		case i == st.CycleIndex && st.Kind == session.Focus:
			parts = append(parts, accentStyle.Render("◐"))
		default:
			parts = append(parts, mutedStyle.Render("○"))
		}
	}
	done := st.CycleIndex
	if st.Kind == session.LongBreak {
		done = reps
	}
	counter := mutedStyle.Render(fmt.Sprintf("  %d/%d", done, reps))
	return strings.Join(parts, " ") + counter
}

// miniView is the compact indicator shown in the footer of other views.
func (t timerModel) miniView() string {
	st := t.ctrl.State()
	if !st.Running {
		return ""
	}
	return kindStyle(st.Kind).Render(fmt.Sprintf("● %s %s", kindLabel(st.Kind), t.ctrl.RemainingDisplay()))
}
