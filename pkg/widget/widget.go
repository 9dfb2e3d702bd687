// Package widget mirrors the current totals to a small JSON file so external
// surfaces (status bars, desktop widgets) can display them without talking to
// the store.
package widget

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/luxtra-app/luxtra/pkg/subscription"
)

// Snapshot is the document written for widget consumers.
type Snapshot struct {
	MonthlyTotal  float64               `json:"monthlyTotal"`
	Currency      subscription.Currency `json:"currency"`
	UpcomingCount int                   `json:"upcomingCount"`
	GeneratedAt   time.Time             `json:"generatedAt"`
}

// Writer pushes snapshots to a fixed path. A zero path disables the widget.
type Writer struct {
	Path string
}

// Push writes the snapshot. Best effort: callers are expected to ignore the
// returned error beyond logging.
func (w *Writer) Push(s Snapshot) error {
	if w == nil || w.Path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(w.Path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	tmp := w.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, w.Path)
}
