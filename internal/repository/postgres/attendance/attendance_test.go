package attendance

import (
	"testing"
	"time"
)

func TestDurationMinutes(t *testing.T) {
	in := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		out  time.Time
		want int
	}{
		{"full work day", in.Add(8 * time.Hour), 480},
		{"rounds down under half a minute", in.Add(29 * time.Second), 0},
		{"rounds up over half a minute", in.Add(31 * time.Second), 1},
		{"clock skew never goes negative", in.Add(-5 * time.Minute), 0},
		{"zero duration", in, 0},
	}

	for _, tc := range cases {
		if got := DurationMinutes(in, tc.out); got != tc.want {
			t.Fatalf("%s: DurationMinutes = %d, want %d", tc.name, got, tc.want)
		}
	}
}
