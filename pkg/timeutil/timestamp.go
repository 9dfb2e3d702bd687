package timeutil

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// ParseTime parses an RFC3339 timestamp string.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp wraps time.Time with RFC3339 JSON round-tripping and the
// calendar-day comparisons the timeline bucketer relies on.
type Timestamp struct {
	time.Time
}

func (t Timestamp) SameDay(then time.Time) bool {
	if t.Local().Day() == then.Local().Day() &&
		t.Local().Month() == then.Local().Month() &&
		t.Local().Year() == then.Local().Year() {
		return true
	}
	return false
}

func (t Timestamp) SameMonth(then time.Time) bool {
	if t.Local().Month() == then.Local().Month() &&
		t.Local().Year() == then.Local().Year() {
		return true
	}
	return false
}

func (t *Timestamp) MarshalJSON() ([]byte, error) {
	if t == nil || t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t)), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}

// SameDay reports whether two instants fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	return Timestamp{Time: a}.SameDay(b)
}

// DaysUntil returns the number of whole or partial days between now and the
// given date, rounding up. A date later today (or earlier today) yields 0,
// anything up to 24h ahead yields 1, and past days go negative. The ceiling
// matters: 23.9 hours away is still "tomorrow", never "today".
func DaysUntil(date, now time.Time) int {
	ms := float64(date.Sub(now).Milliseconds())
	return int(math.Ceil(ms / 86400000.0))
}

func FormatTime(v time.Time) string {
	return v.UTC().Format(time.RFC3339Nano)
}
