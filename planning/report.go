/*
report.go - Worked-hours report over an arbitrary business date range

PURPOSE:
  Payroll exports a grid of employees x business dates. Each cell is
  either a marker (F for a paid ferie holiday, C for an unpaid conge,
  A for a whole-day absence) or the day's effective time as HH:MM.
  Admin shifts survive holiday zeroing, so a cell keeps its time
  instead of the holiday marker when admin minutes remain.

TOTALS:
  Per-employee totals are carried three ways: raw minutes, HH:MM, and
  decimal hours (payroll systems ingest 7.75, not 07:45). Decimal
  conversion goes through shopspring/decimal to avoid float drift on
  long ranges.
*/
package planning

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Cell markers used in place of a time value.
const (
	CellFerie  = "F"
	CellConge  = "C"
	CellAbsent = "A"
)

// EmployeeReport is one employee's row in the hours report.
type EmployeeReport struct {
	EmployeeID     string            `json:"employee_id"`
	EmployeeName   string            `json:"employee_name"`
	Cells          map[string]string `json:"cells"` // date -> marker or HH:MM
	TotalMinutes   int               `json:"total_minutes"`
	TotalFormatted string            `json:"total_formatted"`
	TotalHours     decimal.Decimal   `json:"total_hours"`
}

// HoursReport is the full payroll grid.
type HoursReport struct {
	StartDate string           `json:"start_date"`
	EndDate   string           `json:"end_date"`
	Dates     []string         `json:"dates"`
	Employees []EmployeeReport `json:"employees"`
}

var minutesPerHour = decimal.NewFromInt(60)

// ComputeHoursReport builds the grid over every business date in
// [startDate, endDate]. Inactive employees are excluded. When legacy is
// true, daily minutes use the historical flat formula instead of the
// merging resolver, for parity with reports issued before the merge.
func ComputeHoursReport(snap *Snapshot, startDate, endDate string, legacy bool) (*HoursReport, error) {
	dates, err := BusinessDates(startDate, endDate)
	if err != nil {
		return nil, err
	}

	resolver := NewDayResolver(snap)
	report := &HoursReport{
		StartDate: startDate,
		EndDate:   endDate,
		Dates:     dates,
		Employees: []EmployeeReport{},
	}

	for _, emp := range snap.Employees {
		if emp.IsInactive {
			continue
		}
		report.Employees = append(report.Employees, reportRow(emp, snap, resolver, dates, legacy))
	}
	sortReport(report.Employees)
	return report, nil
}

func reportRow(emp Employee, snap *Snapshot, resolver *DayResolver, dates []string, legacy bool) EmployeeReport {
	row := EmployeeReport{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Cells:        make(map[string]string, len(dates)),
	}

	for _, date := range dates {
		minutes, cell := dayCell(emp.ID, snap, resolver, date, legacy)
		row.Cells[date] = cell
		row.TotalMinutes += minutes
	}

	row.TotalFormatted = FormatDuration(row.TotalMinutes)
	row.TotalHours = decimal.NewFromInt(int64(row.TotalMinutes)).Div(minutesPerHour).Round(2)
	return row
}

// dayCell resolves one grid cell and the minutes it contributes.
func dayCell(employeeID string, snap *Snapshot, resolver *DayResolver, date string, legacy bool) (int, string) {
	day := resolver.Resolve(employeeID, date)

	if day.Holiday && !day.AdminPresent {
		if h, ok := resolver.Holidays[date]; ok && h.Type == HolidayConge {
			return 0, CellConge
		}
		return 0, CellFerie
	}
	if day.FullyAbsent && day.Minutes == 0 {
		return 0, CellAbsent
	}

	minutes := day.Minutes
	if legacy && !day.Holiday && !day.FullyAbsent {
		minutes = legacyMinutesFor(employeeID, snap, date)
	}
	return minutes, FormatDuration(minutes)
}

// legacyMinutesFor applies the flat formula to the employee's own
// records only, as the historical report did.
func legacyMinutesFor(employeeID string, snap *Snapshot, date string) int {
	var assignments []Assignment
	for _, a := range snap.Assignments {
		if a.EmployeeID == employeeID {
			assignments = append(assignments, a)
		}
	}
	var tasks []TemporaryTask
	for _, t := range snap.TemporaryTasks {
		if t.EmployeeID == employeeID {
			tasks = append(tasks, t)
		}
	}
	return LegacyDailyMinutes(assignments, tasks, date)
}

// sortReport orders rows by employee name.
func sortReport(rows []EmployeeReport) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].EmployeeName < rows[j].EmployeeName
	})
}
