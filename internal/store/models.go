package store

import "time"

// SessionRecord is one finished session in the history log.
type SessionRecord struct {
	ID          int64
	RunID       string
	Kind        string // focus, short_break, long_break
	NextKind    string
	CycleIndex  int
	Duration    int64 // seconds
	Skipped     bool
	CompletedAt time.Time
}

type Setting struct {
	Key   string
	Value string
}

// HistoryFilter is used to filter session records in queries.
type HistoryFilter struct {
	Kind  string
	RunID string
	From  *time.Time
	To    *time.Time
	Limit int
}

// DailySummary represents aggregated session time per day.
type DailySummary struct {
	Date         string
	FocusCount   int
	FocusSeconds int64
	BreakSeconds int64
}
