package period

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekBucket(t *testing.T) {
	cases := []struct {
		date time.Time
		want string
	}{
		{day(2024, time.January, 1), W1},
		{day(2024, time.January, 7), W1},
		{day(2024, time.January, 8), W2},
		{day(2024, time.January, 14), W2},
		{day(2024, time.January, 15), W3},
		{day(2024, time.January, 21), W3},
		{day(2024, time.January, 22), W4},
		{day(2024, time.January, 28), W4},
		{day(2024, time.January, 29), W5},
		{day(2024, time.January, 31), W5},
		{day(2024, time.February, 29), W5},
	}

	for _, tc := range cases {
		if got := WeekBucket(tc.date); got != tc.want {
			t.Fatalf("WeekBucket(%s) = %s, want %s", tc.date.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestWeekBucketMonotonicWithinMonth(t *testing.T) {
	valid := map[string]int{W1: 1, W2: 2, W3: 3, W4: 4, W5: 5}

	for month := time.January; month <= time.December; month++ {
		prev := 0
		for d := day(2024, month, 1); d.Month() == month; d = d.AddDate(0, 0, 1) {
			bucket := WeekBucket(d)
			n, ok := valid[bucket]
			if !ok {
				t.Fatalf("WeekBucket(%s) = %q outside W1..W5", d.Format("2006-01-02"), bucket)
			}
			if n < prev {
				t.Fatalf("bucket decreased within %s: day %d got %s", month, d.Day(), bucket)
			}
			prev = n
		}
	}
}

func TestPreviousShift(t *testing.T) {
	d := day(2024, time.March, 10)

	prevDate, prevShift := PreviousShift(d, 1)
	if prevShift != 3 || !prevDate.Equal(day(2024, time.March, 9)) {
		t.Fatalf("shift 1 should map to shift 3 of the day before, got shift %d on %s", prevShift, prevDate.Format("2006-01-02"))
	}

	prevDate, prevShift = PreviousShift(d, 2)
	if prevShift != 1 || !prevDate.Equal(d) {
		t.Fatalf("shift 2 should map to shift 1 of the same day, got shift %d on %s", prevShift, prevDate.Format("2006-01-02"))
	}

	prevDate, prevShift = PreviousShift(d, 3)
	if prevShift != 2 || !prevDate.Equal(d) {
		t.Fatalf("shift 3 should map to shift 2 of the same day, got shift %d on %s", prevShift, prevDate.Format("2006-01-02"))
	}
}

func TestPreviousShiftAcrossMonthBoundary(t *testing.T) {
	prevDate, prevShift := PreviousShift(day(2024, time.March, 1), 1)
	if prevShift != 3 || !prevDate.Equal(day(2024, time.February, 29)) {
		t.Fatalf("expected shift 3 on 2024-02-29, got shift %d on %s", prevShift, prevDate.Format("2006-01-02"))
	}
}

func TestValidShift(t *testing.T) {
	for _, n := range []int{1, 2, 3} {
		if !ValidShift(n) {
			t.Fatalf("shift %d should be valid", n)
		}
	}
	for _, n := range []int{0, 4, -1} {
		if ValidShift(n) {
			t.Fatalf("shift %d should be invalid", n)
		}
	}
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(day(2024, time.February, 15))
	if !start.Equal(day(2024, time.February, 1)) || !end.Equal(day(2024, time.February, 29)) {
		t.Fatalf("got %s..%s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
}
