/*
schedule.go - Weekly schedule aggregation and the replacements pool

PURPOSE:
  Assembles the board the dispatcher actually looks at: for one business
  week (Monday through Friday), every active employee's commitments and
  per-day effective minutes, plus the replacements pool of work that
  currently has nobody driving it.

REPLACEMENTS POOL:
  Three kinds of uncovered work feed the pool:
    - assignments and tasks created without an employee,
    - occurrences vacated by a reassignment to nobody,
    - occurrences whose effective employee is absent that day.
  Pool items carry the original employee's name so the dispatcher knows
  who is being replaced.

ORDERING:
  Rows sort by the lowest numeric circuit the employee holds, then by
  name. Employees without any circuit sort last.
*/
package planning

import (
	"sort"
	"strconv"
)

// EmployeeSchedule is one row of the weekly board.
type EmployeeSchedule struct {
	Employee             Employee        `json:"employee"`
	Assignments          []Assignment    `json:"assignments"`
	CircuitNumbers       []string        `json:"circuit_numbers"`
	TemporaryTasks       []TemporaryTask `json:"temporary_tasks"`
	Absences             []Absence       `json:"absences"`
	DailyHours           map[string]int  `json:"daily_hours"` // date -> minutes
	WeeklyTotal          int             `json:"weekly_total"`
	WeeklyTotalFormatted string          `json:"weekly_total_formatted"`
}

// ReplacementItem is one entry in the replacements pool.
type ReplacementItem struct {
	Type             string `json:"type"` // "shift", "block" or "temporary_task"
	Date             string `json:"date"`
	AssignmentID     string `json:"assignment_id,omitempty"`
	CircuitNumber    string `json:"circuit_number,omitempty"`
	ShiftID          string `json:"shift_id,omitempty"`
	ShiftName        string `json:"shift_name,omitempty"`
	BlockID          string `json:"block_id,omitempty"`
	TaskID           string `json:"task_id,omitempty"`
	TaskName         string `json:"task_name,omitempty"`
	OriginalEmployee string `json:"original_employee,omitempty"`
}

// Replacements is the pool of uncovered work for the week.
type Replacements struct {
	UnassignedAssignments []Assignment      `json:"unassigned_assignments"`
	UnassignedTasks       []TemporaryTask   `json:"unassigned_tasks"`
	AbsentItems           []ReplacementItem `json:"absent_items"`
}

// ScheduleResult is the full weekly computation.
type ScheduleResult struct {
	Schedule          []EmployeeSchedule `json:"schedule"`
	Replacements      Replacements       `json:"replacements"`
	WeekDates         []string           `json:"week_dates"`
	Holidays          map[string]Holiday `json:"holidays"`
	ReassignmentIndex OverlayIndex       `json:"reassignment_index"`
}

// ComputeSchedule builds the weekly board from a snapshot. weekStart is
// any date inside the wanted week, or empty for the current week; it is
// normalized to that week's Monday.
func ComputeSchedule(snap *Snapshot, weekStart string) (*ScheduleResult, error) {
	dates, err := WeekDates(weekStart)
	if err != nil {
		return nil, err
	}

	resolver := NewDayResolver(snap)
	nameByID := employeeNames(snap.Employees)

	result := &ScheduleResult{
		Schedule:          []EmployeeSchedule{},
		WeekDates:         dates,
		Holidays:          weekHolidays(resolver.Holidays, dates),
		ReassignmentIndex: resolver.Overlay,
		Replacements: Replacements{
			UnassignedAssignments: []Assignment{},
			UnassignedTasks:       []TemporaryTask{},
			AbsentItems:           []ReplacementItem{},
		},
	}

	for _, emp := range snap.Employees {
		if emp.IsInactive {
			continue
		}
		result.Schedule = append(result.Schedule, buildRow(emp, snap, resolver, dates))
	}
	sortSchedule(result.Schedule)

	result.Replacements = collectReplacements(snap, resolver, nameByID, dates)
	return result, nil
}

// buildRow assembles one employee's board row.
func buildRow(emp Employee, snap *Snapshot, resolver *DayResolver, dates []string) EmployeeSchedule {
	row := EmployeeSchedule{
		Employee:       emp,
		Assignments:    []Assignment{},
		CircuitNumbers: []string{},
		TemporaryTasks: []TemporaryTask{},
		Absences:       []Absence{},
		DailyHours:     make(map[string]int, len(dates)),
	}

	for _, a := range snap.Assignments {
		if a.EmployeeID == emp.ID && coversAny(a.StartDate, a.EndDate, dates) {
			row.Assignments = append(row.Assignments, a)
			row.CircuitNumbers = append(row.CircuitNumbers, a.CircuitNumber)
		}
	}
	sort.Strings(row.CircuitNumbers)

	for _, t := range snap.TemporaryTasks {
		if t.EmployeeID == emp.ID && containsDate(dates, t.Date) {
			row.TemporaryTasks = append(row.TemporaryTasks, t)
		}
	}
	for _, ab := range snap.Absences {
		if ab.EmployeeID == emp.ID && coversAny(ab.StartDate, ab.EndDate, dates) {
			row.Absences = append(row.Absences, ab)
		}
	}

	for _, date := range dates {
		day := resolver.Resolve(emp.ID, date)
		row.DailyHours[date] = day.Minutes
		row.WeeklyTotal += day.Minutes
	}
	row.WeeklyTotalFormatted = FormatDuration(row.WeeklyTotal)
	return row
}

// collectReplacements gathers the week's uncovered work.
func collectReplacements(snap *Snapshot, resolver *DayResolver, nameByID map[string]string, dates []string) Replacements {
	pool := Replacements{
		UnassignedAssignments: []Assignment{},
		UnassignedTasks:       []TemporaryTask{},
		AbsentItems:           []ReplacementItem{},
	}

	for _, a := range snap.Assignments {
		if a.EmployeeID == "" && coversAny(a.StartDate, a.EndDate, dates) {
			pool.UnassignedAssignments = append(pool.UnassignedAssignments, a)
		}
	}
	for _, t := range snap.TemporaryTasks {
		if t.EmployeeID == "" && containsDate(dates, t.Date) {
			pool.UnassignedTasks = append(pool.UnassignedTasks, t)
		}
	}

	for _, date := range dates {
		if _, holiday := resolver.Holidays[date]; holiday {
			continue
		}
		for _, a := range snap.Assignments {
			// Unassigned assignments are already pooled whole above;
			// their occurrences never produce per-date absent items,
			// even when an overlay hands one to an absent driver.
			if a.EmployeeID == "" || !a.Covers(date) {
				continue
			}
			for _, s := range a.Shifts {
				pool.AbsentItems = append(pool.AbsentItems,
					shiftPoolItems(resolver, nameByID, a, s, date)...)
			}
		}
		for _, t := range snap.TemporaryTasks {
			if t.Date != date || t.EmployeeID == "" {
				continue
			}
			if resolver.fullyAbsent(t.EmployeeID, date) {
				pool.AbsentItems = append(pool.AbsentItems, ReplacementItem{
					Type:             "temporary_task",
					Date:             date,
					TaskID:           t.ID,
					TaskName:         t.Name,
					OriginalEmployee: nameByID[t.EmployeeID],
				})
			}
		}
	}
	return pool
}

// shiftPoolItems returns the pool entries one shift contributes on one
// date: the whole shift when it is vacated or its effective employee is
// absent, otherwise any individually vacated or absent-covered blocks.
func shiftPoolItems(resolver *DayResolver, nameByID map[string]string, a Assignment, s Shift, date string) []ReplacementItem {
	shiftEff, _ := resolver.Overlay.EffectiveEmployee(date, a, s.ID, "")
	if shiftEff == "" || resolver.exempted(shiftEff, date, s.Name) {
		return []ReplacementItem{{
			Type:             "shift",
			Date:             date,
			AssignmentID:     a.ID,
			CircuitNumber:    a.CircuitNumber,
			ShiftID:          s.ID,
			ShiftName:        s.Name,
			OriginalEmployee: nameByID[originalFor(resolver, date, a, s.ID, "")],
		}}
	}

	var items []ReplacementItem
	for _, b := range s.Blocks {
		eff, overridden := resolver.Overlay.EffectiveEmployee(date, a, s.ID, b.ID)
		if eff == shiftEff && !overridden {
			continue
		}
		if eff == "" || resolver.exempted(eff, date, s.Name) {
			items = append(items, ReplacementItem{
				Type:             "block",
				Date:             date,
				AssignmentID:     a.ID,
				CircuitNumber:    a.CircuitNumber,
				ShiftID:          s.ID,
				ShiftName:        s.Name,
				BlockID:          b.ID,
				OriginalEmployee: nameByID[originalFor(resolver, date, a, s.ID, b.ID)],
			})
		}
	}
	return items
}

// originalFor names the employee being replaced for a vacated
// occurrence: the override's recorded original when one applies,
// otherwise the assignment's own employee.
func originalFor(resolver *DayResolver, date string, a Assignment, shiftID, blockID string) string {
	if r, ok := resolver.Overlay.Lookup(date, a.ID, shiftID, blockID); ok && r.OriginalEmployeeID != "" {
		return r.OriginalEmployeeID
	}
	return a.EmployeeID
}

// sortSchedule orders rows by lowest numeric circuit, then name.
// Non-numeric and missing circuits sort last.
func sortSchedule(rows []EmployeeSchedule) {
	sort.SliceStable(rows, func(i, j int) bool {
		ci, cj := lowestCircuit(rows[i].CircuitNumbers), lowestCircuit(rows[j].CircuitNumbers)
		if ci != cj {
			return ci < cj
		}
		return rows[i].Employee.Name < rows[j].Employee.Name
	})
}

const noCircuit = 1 << 30

func lowestCircuit(circuits []string) int {
	lowest := noCircuit
	for _, c := range circuits {
		if n, err := strconv.Atoi(c); err == nil && n < lowest {
			lowest = n
		}
	}
	return lowest
}

// weekHolidays restricts the holiday index to the board's dates.
func weekHolidays(holidays map[string]Holiday, dates []string) map[string]Holiday {
	out := make(map[string]Holiday)
	for _, d := range dates {
		if h, ok := holidays[d]; ok {
			out[d] = h
		}
	}
	return out
}

func employeeNames(employees []Employee) map[string]string {
	m := make(map[string]string, len(employees))
	for _, e := range employees {
		m[e.ID] = e.Name
	}
	return m
}

func coversAny(startDate, endDate string, dates []string) bool {
	for _, d := range dates {
		if startDate <= d && d <= endDate {
			return true
		}
	}
	return false
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}
