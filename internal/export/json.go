package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/pomo/internal/store"
)

type jsonExport struct {
	ExportedAt string        `json:"exported_at"`
	Count      int           `json:"count"`
	FocusCount int           `json:"focus_count"`
	Sessions   []jsonSession `json:"sessions"`
}

type jsonSession struct {
	ID          int64  `json:"id"`
	RunID       string `json:"run_id"`
	Kind        string `json:"kind"`
	NextKind    string `json:"next_kind"`
	CycleIndex  int    `json:"cycle_index"`
	CompletedAt string `json:"completed_at"`
	DurationSec int64  `json:"duration_seconds"`
	Duration    string `json:"duration"`
	Skipped     bool   `json:"skipped,omitempty"`
}

func ToJSON(records []store.SessionRecord, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(records),
	}

	for _, r := range records {
		if r.Kind == "focus" && !r.Skipped {
			export.FocusCount++
		}
		export.Sessions = append(export.Sessions, jsonSession{
			ID:          r.ID,
			RunID:       r.RunID,
			Kind:        r.Kind,
			NextKind:    r.NextKind,
			CycleIndex:  r.CycleIndex,
			CompletedAt: r.CompletedAt.Local().Format(time.RFC3339),
			DurationSec: r.Duration,
			Duration:    formatDuration(r.Duration),
			Skipped:     r.Skipped,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
