package planning

import (
	"fmt"
	"time"
)

// =============================================================================
// TIME ARITHMETIC - HH:MM <-> minutes from midnight
// =============================================================================

// ToMinutes parses an HH:MM clock time into minutes since midnight.
// Malformed input is an error; use MinutesOf where optional fields make
// an empty string acceptable.
func ToMinutes(clock string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, clock)
	}
	return h*60 + m, nil
}

// MinutesOf is the lenient form of ToMinutes used inside the day
// resolver: an empty or unparsable string counts as 0. Optional time
// fields on loosely-typed records arrive empty and must not abort a
// whole schedule computation.
func MinutesOf(clock string) int {
	if clock == "" {
		return 0
	}
	m, err := ToMinutes(clock)
	if err != nil {
		return 0
	}
	return m
}

// ToTimeString formats minutes since midnight as zero-padded HH:MM.
// Values outside a single day are formatted as-is, no wraparound.
func ToTimeString(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatDuration formats a duration in minutes as HH:MM via integer
// division. 90 -> "01:30".
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// =============================================================================
// BUSINESS DATES
// =============================================================================

const isoDate = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(isoDate, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return t, nil
}

// DayLetter returns the French weekday letter for a date: Mon->L,
// Tue->Ma, Wed->Me, Thu->J, Fri->V. Weekend letters exist only so the
// value is never empty; blocks never list them.
func DayLetter(t time.Time) string {
	switch t.Weekday() {
	case time.Monday:
		return DayMonday
	case time.Tuesday:
		return DayTuesday
	case time.Wednesday:
		return DayWednesday
	case time.Thursday:
		return DayThursday
	case time.Friday:
		return DayFriday
	case time.Saturday:
		return "S"
	default:
		return "D"
	}
}
