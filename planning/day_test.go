package planning_test

import (
	"testing"

	"github.com/berlines/route-planner/planning"
)

// Monday of the reference week used across these tests.
const monday = "2025-12-15"

func circuit204(employeeID string) planning.Assignment {
	return planning.Assignment{
		ID:            "a-204",
		CircuitNumber: "204",
		EmployeeID:    employeeID,
		StartDate:     "2025-08-25",
		EndDate:       "2026-06-19",
		Shifts: []planning.Shift{
			{
				ID:   "s-am",
				Name: "AM",
				Blocks: []planning.Block{
					{ID: "b-1", StartTime: "07:30", EndTime: "08:15", HLPBefore: 10, HLPAfter: 5},
				},
			},
		},
	}
}

func snapshotWith(assignments ...planning.Assignment) *planning.Snapshot {
	return &planning.Snapshot{Assignments: assignments}
}

func TestResolve_BlockWithBuffers(t *testing.T) {
	// GIVEN: circuit 204, one block 07:30-08:15 with HLP 10 before / 5 after
	// WHEN: Monday is resolved for its driver
	// THEN: 45 + 10 + 5 = 60 effective minutes in window [07:20, 08:20]

	resolver := planning.NewDayResolver(snapshotWith(circuit204("emp-e")))
	day := resolver.Resolve("emp-e", monday)

	if day.Minutes != 60 {
		t.Errorf("expected 60 minutes, got %d", day.Minutes)
	}
	if len(day.Intervals) != 1 || day.Intervals[0].Start != 440 || day.Intervals[0].End != 500 {
		t.Errorf("expected [440,500], got %v", day.Intervals)
	}
}

func TestResolve_WeekdayFilter(t *testing.T) {
	a := circuit204("emp-e")
	a.Shifts[0].Blocks[0].Days = []string{planning.DayMonday}
	resolver := planning.NewDayResolver(snapshotWith(a))

	if day := resolver.Resolve("emp-e", monday); day.Minutes != 60 {
		t.Errorf("Monday block should apply on Monday, got %d", day.Minutes)
	}
	if day := resolver.Resolve("emp-e", "2025-12-16"); day.Minutes != 0 {
		t.Errorf("Monday-only block must not count on Tuesday, got %d", day.Minutes)
	}
}

func TestResolve_OverlappingCommitmentsCountOnce(t *testing.T) {
	// A temporary task inside the buffered block window adds nothing.
	snap := snapshotWith(circuit204("emp-e"))
	snap.TemporaryTasks = []planning.TemporaryTask{
		{ID: "t1", Date: monday, StartTime: "07:30", EndTime: "08:00", EmployeeID: "emp-e"},
	}
	resolver := planning.NewDayResolver(snap)

	if day := resolver.Resolve("emp-e", monday); day.Minutes != 60 {
		t.Errorf("contained task must not add minutes, got %d", day.Minutes)
	}
}

func TestResolve_AdminShiftFixedMinutes(t *testing.T) {
	// GIVEN: an admin shift plus a real block overlapping the synthetic
	// admin window
	// WHEN: the day is resolved
	// THEN: the block counts fully and the admin 480 is added on top

	a := circuit204("emp-e")
	a.Shifts = append(a.Shifts, planning.Shift{ID: "s-adm", Name: "ADMIN", IsAdmin: true})
	resolver := planning.NewDayResolver(snapshotWith(a))

	day := resolver.Resolve("emp-e", monday)
	if day.Minutes != 60+planning.AdminShiftMinutes {
		t.Errorf("expected %d minutes, got %d", 60+planning.AdminShiftMinutes, day.Minutes)
	}
	if !day.AdminPresent {
		t.Error("AdminPresent should be set")
	}
}

func TestResolve_HolidayZeroesBlocks(t *testing.T) {
	snap := snapshotWith(circuit204("emp-e"))
	snap.TemporaryTasks = []planning.TemporaryTask{
		{ID: "t1", Date: monday, StartTime: "12:00", EndTime: "13:00", EmployeeID: "emp-e"},
	}
	snap.Holidays = []planning.Holiday{{ID: "h1", Name: "Noël", Date: monday}}
	resolver := planning.NewDayResolver(snap)

	day := resolver.Resolve("emp-e", monday)
	if day.Minutes != 0 {
		t.Errorf("holiday must zero blocks and tasks, got %d", day.Minutes)
	}
	if !day.Holiday {
		t.Error("Holiday flag should be set")
	}
}

func TestResolve_AdminSurvivesHoliday(t *testing.T) {
	a := circuit204("emp-e")
	a.Shifts = append(a.Shifts, planning.Shift{ID: "s-adm", Name: "ADMIN", IsAdmin: true})
	snap := snapshotWith(a)
	snap.Holidays = []planning.Holiday{{ID: "h1", Name: "Noël", Date: monday}}
	resolver := planning.NewDayResolver(snap)

	if day := resolver.Resolve("emp-e", monday); day.Minutes != planning.AdminShiftMinutes {
		t.Errorf("holiday with admin shift must yield exactly %d, got %d",
			planning.AdminShiftMinutes, day.Minutes)
	}
}

func TestResolve_FullDayAbsence(t *testing.T) {
	// Empty shift-type filter exempts every shift and drops tasks.
	snap := snapshotWith(circuit204("emp-e"))
	snap.TemporaryTasks = []planning.TemporaryTask{
		{ID: "t1", Date: monday, StartTime: "12:00", EndTime: "13:00", EmployeeID: "emp-e"},
	}
	snap.Absences = []planning.Absence{
		{ID: "ab1", EmployeeID: "emp-e", StartDate: monday, EndDate: monday},
	}
	resolver := planning.NewDayResolver(snap)

	day := resolver.Resolve("emp-e", monday)
	if day.Minutes != 0 {
		t.Errorf("whole-day absence must zero the day, got %d", day.Minutes)
	}
	if !day.FullyAbsent {
		t.Error("FullyAbsent flag should be set")
	}
}

func TestResolve_ShiftScopedAbsence(t *testing.T) {
	// GIVEN: AM and PM shifts, absence scoped to AM only
	// WHEN: the day is resolved
	// THEN: PM minutes survive; temporary tasks survive too

	a := circuit204("emp-e")
	a.Shifts = append(a.Shifts, planning.Shift{
		ID:   "s-pm",
		Name: "PM",
		Blocks: []planning.Block{
			{ID: "b-2", StartTime: "15:00", EndTime: "16:00"},
		},
	})
	snap := snapshotWith(a)
	snap.TemporaryTasks = []planning.TemporaryTask{
		{ID: "t1", Date: monday, StartTime: "12:00", EndTime: "12:30", EmployeeID: "emp-e"},
	}
	snap.Absences = []planning.Absence{
		{ID: "ab1", EmployeeID: "emp-e", StartDate: monday, EndDate: monday, ShiftTypes: []string{"AM"}},
	}
	resolver := planning.NewDayResolver(snap)

	day := resolver.Resolve("emp-e", monday)
	if day.Minutes != 60+30 {
		t.Errorf("expected PM block (60) plus task (30), got %d", day.Minutes)
	}
	if day.FullyAbsent {
		t.Error("shift-scoped absence is not a full-day absence")
	}
}

func TestResolve_ReassignmentMovesMinutes(t *testing.T) {
	// GIVEN: circuit 204 on E, its AM shift handed to F for Monday
	// WHEN: both are resolved
	// THEN: E loses the 60 minutes, F gains them; Tuesday is untouched

	snap := snapshotWith(circuit204("emp-e"))
	snap.Reassignments = []planning.TemporaryReassignment{
		{ID: "r1", Date: monday, AssignmentID: "a-204", ShiftID: "s-am",
			OriginalEmployeeID: "emp-e", NewEmployeeID: strPtr("emp-f")},
	}
	resolver := planning.NewDayResolver(snap)

	if day := resolver.Resolve("emp-e", monday); day.Minutes != 0 {
		t.Errorf("original driver should have 0 on the moved date, got %d", day.Minutes)
	}
	if day := resolver.Resolve("emp-f", monday); day.Minutes != 60 {
		t.Errorf("substitute should have 60 on the moved date, got %d", day.Minutes)
	}
	if day := resolver.Resolve("emp-e", "2025-12-16"); day.Minutes != 60 {
		t.Errorf("baseline must be intact on other dates, got %d", day.Minutes)
	}
}

func TestResolve_ReassignmentReversible(t *testing.T) {
	// Deleting the override restores the baseline exactly.
	withOverlay := snapshotWith(circuit204("emp-e"))
	withOverlay.Reassignments = []planning.TemporaryReassignment{
		{ID: "r1", Date: monday, AssignmentID: "a-204", ShiftID: "s-am",
			OriginalEmployeeID: "emp-e", NewEmployeeID: strPtr("emp-f")},
	}
	baseline := snapshotWith(circuit204("emp-e"))

	before := planning.NewDayResolver(baseline).Resolve("emp-e", monday)
	after := planning.NewDayResolver(&planning.Snapshot{
		Assignments: withOverlay.Assignments,
	}).Resolve("emp-e", monday)

	if before.Minutes != after.Minutes {
		t.Errorf("removing the override must restore %d, got %d", before.Minutes, after.Minutes)
	}
}

func TestLegacyDailyMinutes_DoubleCountsOverlaps(t *testing.T) {
	// The historical formula sums raw block durations with no merge.
	a := circuit204("emp-e")
	a.Shifts[0].Blocks = append(a.Shifts[0].Blocks,
		planning.Block{ID: "b-dup", StartTime: "07:30", EndTime: "08:15", HLPBefore: 10, HLPAfter: 5})

	got := planning.LegacyDailyMinutes([]planning.Assignment{a}, nil, monday)
	if got != 120 {
		t.Errorf("legacy formula must double-count, expected 120, got %d", got)
	}
}
