package planning_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berlines/route-planner/planning"
)

func reportRowFor(t *testing.T, report *planning.HoursReport, employeeID string) planning.EmployeeReport {
	t.Helper()
	for _, row := range report.Employees {
		if row.EmployeeID == employeeID {
			return row
		}
	}
	t.Fatalf("employee %s not in report", employeeID)
	return planning.EmployeeReport{}
}

func TestComputeHoursReport_TimesAndTotals(t *testing.T) {
	// GIVEN: circuit 204 (60 min/day) over one business week
	// WHEN: the report covers Monday through Friday
	// THEN: five 01:00 cells, total 05:00 = 5.00 hours

	report, err := planning.ComputeHoursReport(weekSnapshot(), monday, "2025-12-19", false)
	require.NoError(t, err)
	require.Len(t, report.Dates, 5)

	row := reportRowFor(t, report, "emp-e")
	for _, date := range report.Dates {
		assert.Equal(t, "01:00", row.Cells[date], "date %s", date)
	}
	assert.Equal(t, 300, row.TotalMinutes)
	assert.Equal(t, "05:00", row.TotalFormatted)
	assert.True(t, row.TotalHours.Equal(decimal.RequireFromString("5")),
		"expected 5 hours, got %s", row.TotalHours)
}

func TestComputeHoursReport_HolidayMarkers(t *testing.T) {
	snap := weekSnapshot()
	snap.Holidays = []planning.Holiday{
		{ID: "h1", Name: "Noël", Date: monday, Type: planning.HolidayFerie},
		{ID: "h2", Name: "Congé mobile", Date: "2025-12-16", Type: planning.HolidayConge},
	}

	report, err := planning.ComputeHoursReport(snap, monday, "2025-12-19", false)
	require.NoError(t, err)

	row := reportRowFor(t, report, "emp-e")
	assert.Equal(t, "F", row.Cells[monday])
	assert.Equal(t, "C", row.Cells["2025-12-16"])
	assert.Equal(t, "01:00", row.Cells["2025-12-17"])
	assert.Equal(t, 180, row.TotalMinutes, "holiday cells contribute nothing")
}

func TestComputeHoursReport_AdminKeepsTimeOnHoliday(t *testing.T) {
	a := circuit204("emp-e")
	a.Shifts = append(a.Shifts, planning.Shift{ID: "s-adm", Name: "ADMIN", IsAdmin: true})
	snap := weekSnapshot()
	snap.Assignments = []planning.Assignment{a}
	snap.Holidays = []planning.Holiday{{ID: "h1", Name: "Noël", Date: monday}}

	report, err := planning.ComputeHoursReport(snap, monday, monday, false)
	require.NoError(t, err)

	row := reportRowFor(t, report, "emp-e")
	assert.Equal(t, "08:00", row.Cells[monday], "admin minutes survive, so no F marker")
	assert.Equal(t, 480, row.TotalMinutes)
}

func TestComputeHoursReport_AbsenceMarker(t *testing.T) {
	snap := weekSnapshot()
	snap.Absences = []planning.Absence{
		{ID: "ab1", EmployeeID: "emp-e", StartDate: monday, EndDate: monday},
	}

	report, err := planning.ComputeHoursReport(snap, monday, "2025-12-16", false)
	require.NoError(t, err)

	row := reportRowFor(t, report, "emp-e")
	assert.Equal(t, "A", row.Cells[monday])
	assert.Equal(t, "01:00", row.Cells["2025-12-16"])
	assert.Equal(t, 60, row.TotalMinutes)
}

func TestComputeHoursReport_LegacyModeDoubleCounts(t *testing.T) {
	// Two identical blocks: merged mode counts 60, legacy counts 120.
	a := circuit204("emp-e")
	a.Shifts[0].Blocks = append(a.Shifts[0].Blocks,
		planning.Block{ID: "b-dup", StartTime: "07:30", EndTime: "08:15", HLPBefore: 10, HLPAfter: 5})
	snap := weekSnapshot()
	snap.Assignments = []planning.Assignment{a}

	merged, err := planning.ComputeHoursReport(snap, monday, monday, false)
	require.NoError(t, err)
	legacy, err := planning.ComputeHoursReport(snap, monday, monday, true)
	require.NoError(t, err)

	assert.Equal(t, 60, reportRowFor(t, merged, "emp-e").TotalMinutes)
	assert.Equal(t, 120, reportRowFor(t, legacy, "emp-e").TotalMinutes)
}

func TestComputeHoursReport_DecimalRounding(t *testing.T) {
	// 50 minutes is 0.83 hours after rounding to two decimals.
	a := circuit204("emp-e")
	a.Shifts[0].Blocks = []planning.Block{{ID: "b-1", StartTime: "08:00", EndTime: "08:50"}}
	snap := weekSnapshot()
	snap.Assignments = []planning.Assignment{a}

	report, err := planning.ComputeHoursReport(snap, monday, monday, false)
	require.NoError(t, err)

	row := reportRowFor(t, report, "emp-e")
	assert.Equal(t, "0.83", row.TotalHours.StringFixed(2))
}
