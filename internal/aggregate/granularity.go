package aggregate

import (
	"fmt"
	"time"
)

// Granularity selects the time-bucket width for trend aggregation.
type Granularity string

const (
	Daily   Granularity = "day"
	Weekly  Granularity = "week"
	Monthly Granularity = "month"
)

func (g Granularity) valid() bool {
	switch g {
	case Daily, Weekly, Monthly:
		return true
	}
	return false
}

// BucketKey truncates t to the bucket containing it and formats the bucket
// identifier. All formats sort lexicographically in chronological order:
// day "2026-02-06", week "2026-W06" (ISO week), month "2026-02".
func (g Granularity) BucketKey(t time.Time) string {
	switch g {
	case Daily:
		return t.Format("2006-01-02")
	case Weekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	default:
		return t.Format("2006-01")
	}
}
