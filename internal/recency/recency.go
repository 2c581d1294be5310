// Package recency turns the age of a transfer into the coarse labels shown in
// the inbox. The output strings are a compatibility contract with existing
// users of the tool; do not reword them.
package recency

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// Format labels an elapsed duration. Anything of one day or more is reported
// in whole days; shorter spans fall into seconds, minutes or hours buckets.
// Negative input (clock skew between sender and reader) is treated as zero.
func Format(elapsed time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}

	if elapsed >= day {
		return fmt.Sprintf("%d day(s)", int64(elapsed/day))
	}

	seconds := int64(elapsed / time.Second)
	switch {
	case seconds < 60:
		return "A few seconds ago"
	case seconds < 3600:
		return fmt.Sprintf("%d minute(s) ago", seconds/60)
	default:
		return fmt.Sprintf("%d hour(s) ago", seconds/3600)
	}
}

// Since labels the time elapsed between then and now.
func Since(now, then time.Time) string {
	return Format(now.Sub(then))
}
