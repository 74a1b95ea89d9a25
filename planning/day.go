/*
day.go - Per-employee, per-date resolution of effective worked minutes

PURPOSE:
  Answers "how many minutes does this employee work on this date, and
  in which windows?" honoring, in order:
    1. which assignments cover the date and who effectively drives each
       occurrence after the reassignment overlay,
    2. weekday applicability of each block,
    3. absence exemptions (whole-day or per shift type),
    4. holiday zeroing (admin shifts exempt),
    5. interval merging so overlapping commitments count once.

ADMIN SHIFTS:
  An admin shift contributes a fixed 480 minutes. That duration is
  summed outside the interval merge: folding a synthetic 06:00-14:00
  window into the merge could swallow a real block in the same range
  and undercount the day. The synthetic window is still emitted in the
  day's interval list for display.

CONFLICTS:
  Overlaps between two real commitments are not an error here; they are
  merged and counted once. Proactive conflict detection lives in
  conflict.go and runs before a commitment is persisted.
*/
package planning

// DayResult is the outcome of resolving one employee on one date.
type DayResult struct {
	// Minutes is the day's total effective worked minutes.
	Minutes int
	// Intervals are the merged effective windows, including the
	// synthetic admin window when an admin shift is present.
	Intervals []Interval
	// AdminPresent reports whether an effective admin occurrence
	// survived absence filtering.
	AdminPresent bool
	// FullyAbsent reports whether a whole-day absence (empty shift-type
	// filter) covers the date.
	FullyAbsent bool
	// Holiday reports whether the date is a holiday.
	Holiday bool
}

// DayResolver resolves effective commitments against one snapshot.
// Construct it once per computation; per-employee calls are independent
// and may run concurrently.
type DayResolver struct {
	Assignments []Assignment
	Tasks       []TemporaryTask
	Absences    []Absence
	Holidays    map[string]Holiday
	Overlay     OverlayIndex
}

// NewDayResolver builds a resolver over the snapshot, indexing holidays
// and reassignments once.
func NewDayResolver(snap *Snapshot) *DayResolver {
	return &DayResolver{
		Assignments: snap.Assignments,
		Tasks:       snap.TemporaryTasks,
		Absences:    snap.Absences,
		Holidays:    snap.HolidayByDate(),
		Overlay:     BuildOverlayIndex(snap.Reassignments),
	}
}

// Resolve computes the effective commitments of employeeID on date.
func (r *DayResolver) Resolve(employeeID, date string) DayResult {
	var res DayResult

	t, err := ParseDate(date)
	if err != nil {
		return res
	}
	letter := DayLetter(t)

	_, res.Holiday = r.Holidays[date]
	res.FullyAbsent = r.fullyAbsent(employeeID, date)

	var intervals []Interval

	// Baseline assignments, post-overlay. Every assignment is scanned,
	// not only the employee's own: an overlay can hand an occurrence
	// from any assignment to this employee for the day.
	for _, a := range r.Assignments {
		if !a.Covers(date) {
			continue
		}
		for _, s := range a.Shifts {
			if r.exempted(employeeID, date, s.Name) {
				continue
			}
			if s.IsAdmin {
				if eff, _ := r.Overlay.EffectiveEmployee(date, a, s.ID, ""); eff == employeeID && employeeID != "" {
					res.AdminPresent = true
				}
				continue
			}
			if res.Holiday {
				// Non-admin work is zeroed on holidays.
				continue
			}
			for _, b := range s.Blocks {
				if !b.AppliesOn(letter) {
					continue
				}
				eff, _ := r.Overlay.EffectiveEmployee(date, a, s.ID, b.ID)
				if eff != employeeID || employeeID == "" {
					continue
				}
				intervals = append(intervals, Interval{
					Start: MinutesOf(b.StartTime) - b.HLPBefore,
					End:   MinutesOf(b.EndTime) + b.HLPAfter,
				})
			}
		}
	}

	// Temporary tasks: single date, no buffer, dropped on holidays and
	// under a whole-day absence.
	if !res.Holiday && !res.FullyAbsent {
		for _, task := range r.Tasks {
			if task.Date != date || task.EmployeeID != employeeID || employeeID == "" {
				continue
			}
			intervals = append(intervals, Interval{
				Start: MinutesOf(task.StartTime),
				End:   MinutesOf(task.EndTime),
			})
		}
	}

	res.Intervals = MergeIntervals(intervals)
	for _, iv := range res.Intervals {
		res.Minutes += iv.Duration()
	}
	if res.AdminPresent {
		// Fixed duration, summed independently of the merge.
		res.Minutes += AdminShiftMinutes
		res.Intervals = append(res.Intervals, Interval{Start: adminSyntheticStart, End: adminSyntheticEnd})
	}
	if res.Holiday {
		// Admin overrides holiday zeroing; nothing else survives.
		if res.AdminPresent {
			res.Minutes = AdminShiftMinutes
		} else {
			res.Minutes = 0
		}
	}
	return res
}

// fullyAbsent reports a whole-day absence: any covering absence whose
// shift-type filter is empty.
func (r *DayResolver) fullyAbsent(employeeID, date string) bool {
	for _, a := range r.Absences {
		if a.EmployeeID == employeeID && a.Covers(date) && len(a.ShiftTypes) == 0 {
			return true
		}
	}
	return false
}

// exempted reports whether any absence exempts the employee from the
// named shift on the date.
func (r *DayResolver) exempted(employeeID, date, shiftName string) bool {
	for _, a := range r.Absences {
		if a.EmployeeID == employeeID && a.Exempts(date, shiftName) {
			return true
		}
	}
	return false
}

// =============================================================================
// LEGACY CALCULATOR - compatibility mode for historical reports
// =============================================================================

// LegacyDailyMinutes reproduces the original flat formula: every shift
// of every covering assignment is summed block by block with its HLP,
// plus same-date tasks. No interval merging, no weekday filtering, no
// overlay: overlapping windows are double-counted exactly as old
// reports did. Kept only for byte-for-byte parity with those reports;
// new code uses DayResolver.
func LegacyDailyMinutes(assignments []Assignment, tasks []TemporaryTask, date string) int {
	total := 0
	for _, a := range assignments {
		if !a.Covers(date) {
			continue
		}
		for _, s := range a.Shifts {
			for _, b := range s.Blocks {
				total += MinutesOf(b.EndTime) - MinutesOf(b.StartTime) + b.HLPBefore + b.HLPAfter
			}
		}
	}
	for _, task := range tasks {
		if task.Date == date {
			total += MinutesOf(task.EndTime) - MinutesOf(task.StartTime)
		}
	}
	return total
}
