package planning_test

import (
	"errors"
	"testing"
	"time"

	"github.com/berlines/route-planner/planning"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		clock string
		want  int
	}{
		{"00:00", 0},
		{"07:30", 450},
		{"08:15", 495},
		{"23:59", 1439},
	}
	for _, c := range cases {
		got, err := planning.ToMinutes(c.clock)
		if err != nil {
			t.Fatalf("ToMinutes(%q) returned error: %v", c.clock, err)
		}
		if got != c.want {
			t.Errorf("ToMinutes(%q) = %d, want %d", c.clock, got, c.want)
		}
	}
}

func TestToMinutes_Invalid(t *testing.T) {
	for _, clock := range []string{"", "abc", "7h30"} {
		_, err := planning.ToMinutes(clock)
		if !errors.Is(err, planning.ErrInvalidTime) {
			t.Errorf("ToMinutes(%q): expected ErrInvalidTime, got %v", clock, err)
		}
	}
}

func TestMinutesOf_LenientOnBadInput(t *testing.T) {
	if got := planning.MinutesOf(""); got != 0 {
		t.Errorf("MinutesOf(\"\") = %d, want 0", got)
	}
	if got := planning.MinutesOf("bogus"); got != 0 {
		t.Errorf("MinutesOf(\"bogus\") = %d, want 0", got)
	}
	if got := planning.MinutesOf("07:30"); got != 450 {
		t.Errorf("MinutesOf(\"07:30\") = %d, want 450", got)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{60, "01:00"},
		{90, "01:30"},
		{495, "08:15"},
		{2400, "40:00"}, // weekly totals exceed one day
	}
	for _, c := range cases {
		if got := planning.FormatDuration(c.minutes); got != c.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", c.minutes, got, c.want)
		}
	}
}

func TestDayLetter(t *testing.T) {
	// 2025-12-15 is a Monday.
	cases := []struct {
		date string
		want string
	}{
		{"2025-12-15", "L"},
		{"2025-12-16", "Ma"},
		{"2025-12-17", "Me"},
		{"2025-12-18", "J"},
		{"2025-12-19", "V"},
	}
	for _, c := range cases {
		d, err := time.Parse("2006-01-02", c.date)
		if err != nil {
			t.Fatal(err)
		}
		if got := planning.DayLetter(d); got != c.want {
			t.Errorf("DayLetter(%s) = %q, want %q", c.date, got, c.want)
		}
	}
}
