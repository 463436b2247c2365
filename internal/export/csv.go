package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sadopc/pomo/internal/store"
)

var csvHeader = []string{"ID", "Run", "Session", "Next", "Cycle", "Completed", "Duration (s)", "Duration", "Skipped"}

func ToCSV(records []store.SessionRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			strconv.FormatInt(r.ID, 10),
			r.RunID,
			r.Kind,
			r.NextKind,
			strconv.Itoa(r.CycleIndex),
			r.CompletedAt.Local().Format(time.RFC3339),
			strconv.FormatInt(r.Duration, 10),
			formatDuration(r.Duration),
			strconv.FormatBool(r.Skipped),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func formatDuration(secs int64) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
