package view

import (
	"fmt"
	"time"

	"github.com/luxtra-app/luxtra/pkg/timeutil"
)

// DueLabel maps a due date to a short human label relative to now. The day
// count uses ceiling division, so anything under a full day ahead reads
// "tomorrow" rather than "today".
func DueLabel(date, now time.Time) string {
	days := timeutil.DaysUntil(date, now)
	switch {
	case days < 0:
		return "overdue"
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	}
	return fmt.Sprintf("in %d days", days)
}
