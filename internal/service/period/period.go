// Package period holds the calendar derivations used by commissions and the
// shift workflow: the week-of-month bucket and the previous-shift key.
package period

import (
	"fmt"
	"time"
)

// Buckets label the week of the month a commission falls into. A month always
// maps onto W1..W5; a partial fifth week still counts as W5.
const (
	W1 = "W1"
	W2 = "W2"
	W3 = "W3"
	W4 = "W4"
	W5 = "W5"
)

// WeekBucket returns the week-of-month label for t: ceil(day/7), clamped to 5.
func WeekBucket(t time.Time) string {
	week := (t.Day() + 6) / 7
	if week > 5 {
		week = 5
	}
	return fmt.Sprintf("W%d", week)
}

// PreviousShift maps a shift to the one that precedes it: shift 1 on day D
// follows shift 3 on day D-1, shifts 2 and 3 follow their predecessor on the
// same day.
func PreviousShift(date time.Time, shift int) (time.Time, int) {
	if shift == 1 {
		return date.AddDate(0, 0, -1), 3
	}
	return date, shift - 1
}

// ValidShift reports whether n is one of the three daily shifts.
func ValidShift(n int) bool {
	return n >= 1 && n <= 3
}

// MonthBounds returns the first and last day of the month containing t.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, -1)
	return start, end
}
