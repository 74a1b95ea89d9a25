package planning

import "time"

// =============================================================================
// BUSINESS WEEK - Monday-anchored 5-day windows
// =============================================================================

// MondayOf returns the Monday of the week containing the date.
func MondayOf(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return mondayOf(t).Format(isoDate), nil
}

func mondayOf(t time.Time) time.Time {
	// time.Weekday is Sunday=0; a Sunday belongs to the week it ends.
	offset := int(t.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return t.AddDate(0, 0, -offset)
}

// WeekDates returns the 5 business dates (Monday through Friday) of the
// week containing weekStart. An empty weekStart means the current week.
func WeekDates(weekStart string) ([]string, error) {
	var anchor time.Time
	if weekStart == "" {
		now := time.Now()
		anchor = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		t, err := ParseDate(weekStart)
		if err != nil {
			return nil, err
		}
		anchor = t
	}

	monday := mondayOf(anchor)
	dates := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		dates = append(dates, monday.AddDate(0, 0, i).Format(isoDate))
	}
	return dates, nil
}

// BusinessDates returns every Monday-Friday date in [startDate, endDate]
// inclusive. Used by the hours report for arbitrary ranges.
func BusinessDates(startDate, endDate string) ([]string, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return nil, err
	}

	var dates []string
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		if wd := cur.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		dates = append(dates, cur.Format(isoDate))
	}
	return dates, nil
}
