package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/pomo/internal/session"
	"github.com/sadopc/pomo/internal/store"
)

const recentSessionLimit = 10

type historyModel struct {
	store  *store.Store
	width  int
	height int

	summaries []store.DailySummary
	recent    []store.SessionRecord
	offset    int // 7-day blocks back from today (0 = current)

	chart barchart.Model
}

func newHistoryModel(s *store.Store) historyModel {
	return historyModel{
		store: s,
		chart: barchart.New(60, 12),
	}
}

func (h *historyModel) setSize(w, hgt int) {
	h.width = w
	h.height = hgt
}

type historyDataMsg struct {
	summaries []store.DailySummary
	recent    []store.SessionRecord
}

func (h historyModel) refresh() tea.Cmd {
	return func() tea.Msg {
		from, to := h.dateRange()
		summaries, _ := h.store.GetDailySummary(from, to)
		recent, _ := h.store.ListSessions(store.HistoryFilter{From: &from, To: &to, Limit: recentSessionLimit})
		return historyDataMsg{summaries: summaries, recent: recent}
	}
}

// dateRange returns the 7-day window [from, to) selected by offset.
func (h historyModel) dateRange() (time.Time, time.Time) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := today.AddDate(0, 0, 1-7*h.offset)
	return end.AddDate(0, 0, -7), end
}

func (h historyModel) update(msg tea.Msg) (historyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case historyDataMsg:
		h.summaries = msg.summaries
		h.recent = msg.recent
		h.buildChart()
		return h, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			h.offset++
			return h, h.refresh()
		case key.Matches(msg, keys.Right):
			if h.offset > 0 {
				h.offset--
			}
			return h, h.refresh()
		}
	}
	return h, nil
}

func (h *historyModel) buildChart() {
	chartWidth := h.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if h.height > 30 {
		chartHeight = 14
	}

	h.chart = barchart.New(chartWidth, chartHeight)

	byDate := make(map[string]store.DailySummary, len(h.summaries))
	for _, s := range h.summaries {
		byDate[s.Date] = s
	}

	from, to := h.dateRange()
	var bars []barchart.BarData
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		s := byDate[d.Format("2006-01-02")]
		bars = append(bars, barchart.BarData{
			Label: d.Format("Mon 02"),
			Values: []barchart.BarValue{
				{Name: "focus", Value: float64(s.FocusSeconds) / 60.0, Style: accentStyle},
			},
		})
	}

	h.chart.PushAll(bars)
	h.chart.Draw()
}

func (h historyModel) totals() (count int, focus, breaks int64) {
	for _, s := range h.summaries {
		count += s.FocusCount
		focus += s.FocusSeconds
		breaks += s.BreakSeconds
	}
	return count, focus, breaks
}

func (h historyModel) view() string {
	w := h.width - 4

	from, to := h.dateRange()
	dateLabel := mutedStyle.Render(fmt.Sprintf("%s - %s", from.Format("Jan 02"), to.Add(-24*time.Hour).Format("Jan 02, 2006")))
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("History"), "  ", dateLabel,
	)

	count, focus, breaks := h.totals()
	summary := fmt.Sprintf("  %s focus sessions  %s focused  %s on break",
		accentStyle.Render(fmt.Sprintf("%d", count)),
		accentStyle.Render(formatMinutes(focus)),
		successStyle.Render(formatMinutes(breaks)),
	)

	nav := mutedStyle.Render("  ←/→: navigate  e: export")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", h.chart.View(), mutedStyle.Render("  focus minutes per day"), "",
			summary, "", h.renderRecent(w), "", nav,
		),
	)
}

func (h historyModel) renderRecent(w int) string {
	if len(h.recent) == 0 {
		return mutedStyle.Render("  No sessions in this period")
	}

	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-17s %-12s %-12s %10s", "Completed", "Session", "Next", "Duration")))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", max(0, min(w-6, 54)))))

	for _, r := range h.recent {
		label := kindNameLabel(r.Kind)
		if k, ok := session.ParseKind(r.Kind); ok {
			label = kindStyle(k).Render(fmt.Sprintf("%-12s", label))
		} else {
			label = fmt.Sprintf("%-12s", label)
		}
		line := fmt.Sprintf("  %-17s %s %-12s %10s",
			r.CompletedAt.Local().Format("Jan 02 15:04"), label, kindNameLabel(r.NextKind), formatSeconds(r.Duration),
		)
		if r.Skipped {
			line += warningStyle.Render("  skipped")
		}
		rows = append(rows, line)
	}
	return strings.Join(rows, "\n")
}
