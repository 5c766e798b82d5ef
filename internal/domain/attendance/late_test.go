package attendance

import (
	"testing"
	"time"
)

func TestIsLate(t *testing.T) {
	day := func(h, m, s, ns int) time.Time {
		return time.Date(2024, 1, 10, h, m, s, ns, time.Local)
	}
	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"before start", day(8, 59, 0, 0), false},
		{"at start", day(9, 0, 0, 0), false},
		{"inside grace", day(9, 0, 59, 0), false},
		{"exactly at cutoff", day(9, 1, 0, 0), false},
		{"just past cutoff", day(9, 1, 0, 1), true},
		{"two minutes past", day(9, 2, 0, 0), true},
		{"late evening", day(23, 0, 0, 0), true},
	}
	for _, c := range cases {
		if got := IsLate(c.now, 9*time.Hour, time.Minute); got != c.want {
			t.Errorf("%s: IsLate(%s) = %v, want %v", c.name, c.now.Format(time.TimeOnly), got, c.want)
		}
	}
}

func TestWorkHours_IsLate(t *testing.T) {
	w := WorkHours{Start: 8*time.Hour + 30*time.Minute, Grace: 0}
	if !w.IsLate(time.Date(2024, 1, 10, 8, 30, 1, 0, time.UTC)) {
		t.Errorf("08:30:01 should be late with zero grace")
	}
	if DefaultWorkHours.IsLate(time.Date(2024, 1, 10, 8, 59, 0, 0, time.UTC)) {
		t.Errorf("08:59 should not be late with default hours")
	}
}
