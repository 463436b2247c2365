package store

import (
	"fmt"
	"time"
)

const sessionColumns = `id, run_id, kind, next_kind, cycle_index, duration, skipped, completed_at`

// RecordSession appends a finished session to the history log. A zero
// CompletedAt is stamped with the current time.
func (s *Store) RecordSession(rec SessionRecord) (*SessionRecord, error) {
	if rec.CompletedAt.IsZero() {
		rec.CompletedAt = time.Now()
	}
	skipped := 0
	if rec.Skipped {
		skipped = 1
	}
	res, err := s.db.Exec(
		`INSERT INTO session_log (run_id, kind, next_kind, cycle_index, duration, skipped, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.Kind, rec.NextKind, rec.CycleIndex, rec.Duration, skipped,
		rec.CompletedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("record session: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.GetSession(id)
}

func (s *Store) GetSession(id int64) (*SessionRecord, error) {
	row := s.db.QueryRow(`SELECT `+sessionColumns+` FROM session_log WHERE id = ?`, id)
	rec, err := scanSession(row)
	if err != nil {
		return nil, fmt.Errorf("get session %d: %w", id, err)
	}
	return rec, nil
}

// ListSessions returns history records, newest first.
func (s *Store) ListSessions(f HistoryFilter) ([]SessionRecord, error) {
	query := `SELECT ` + sessionColumns + ` FROM session_log WHERE 1=1`
	var args []any

	if f.Kind != "" {
		query += ` AND kind = ?`
		args = append(args, f.Kind)
	}
	if f.RunID != "" {
		query += ` AND run_id = ?`
		args = append(args, f.RunID)
	}
	if f.From != nil {
		query += ` AND completed_at >= ?`
		args = append(args, f.From.UTC().Format(time.RFC3339))
	}
	if f.To != nil {
		query += ` AND completed_at < ?`
		args = append(args, f.To.UTC().Format(time.RFC3339))
	}
	query += ` ORDER BY completed_at DESC, id DESC`
	if f.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// GetDailySummary aggregates focus and break time per UTC day in [from, to).
func (s *Store) GetDailySummary(from, to time.Time) ([]DailySummary, error) {
	rows, err := s.db.Query(`
		SELECT date(completed_at) AS day,
		       COALESCE(SUM(CASE WHEN kind = 'focus' AND skipped = 0 THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN kind = 'focus' THEN duration ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN kind <> 'focus' THEN duration ELSE 0 END), 0)
		FROM session_log
		WHERE completed_at >= ? AND completed_at < ?
		GROUP BY day
		ORDER BY day`,
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("daily summary: %w", err)
	}
	defer rows.Close()

	var summaries []DailySummary
	for rows.Next() {
		var ds DailySummary
		if err := rows.Scan(&ds.Date, &ds.FocusCount, &ds.FocusSeconds, &ds.BreakSeconds); err != nil {
			return nil, err
		}
		summaries = append(summaries, ds)
	}
	return summaries, rows.Err()
}

// GetTodayFocusCount counts the focus sessions completed (not skipped) today.
func (s *Store) GetTodayFocusCount() (int, error) {
	today := time.Now().UTC().Format("2006-01-02")
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*)
		FROM session_log
		WHERE date(completed_at) = ? AND kind = 'focus' AND skipped = 0`, today,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("today focus count: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(r rowScanner) (*SessionRecord, error) {
	rec := &SessionRecord{}
	var completedAt string
	var skipped int
	if err := r.Scan(&rec.ID, &rec.RunID, &rec.Kind, &rec.NextKind, &rec.CycleIndex, &rec.Duration, &skipped, &completedAt); err != nil {
		return nil, err
	}
	rec.Skipped = skipped == 1
	rec.CompletedAt, _ = time.Parse(time.RFC3339, completedAt)
	return rec, nil
}
