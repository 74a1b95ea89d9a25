package planning_test

import (
	"testing"

	"github.com/berlines/route-planner/planning"
)

func TestCheckConflict_ToleranceBoundary(t *testing.T) {
	// GIVEN: an existing block 08:00-09:00 (no buffers)
	// WHEN: a candidate overlaps it by exactly 5, then by 6 minutes
	// THEN: 5 is tolerated, 6 is reported

	assignments := []planning.Assignment{{
		ID: "a1", CircuitNumber: "204", EmployeeID: "emp-e",
		StartDate: "2025-01-01", EndDate: "2025-12-31",
		Shifts: []planning.Shift{{
			ID: "s1", Name: "AM",
			Blocks: []planning.Block{{ID: "b1", StartTime: "08:00", EndTime: "09:00"}},
		}},
	}}

	in := planning.ConflictInput{
		EmployeeID: "emp-e", Date: monday, StartTime: "08:55", EndTime: "10:00",
	}
	result, err := planning.CheckConflict(in, assignments, nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.Conflict {
		t.Errorf("5-minute overlap must be tolerated, got %+v", result.Conflicts)
	}

	in.StartTime = "08:54"
	result, err = planning.CheckConflict(in, assignments, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Conflict || len(result.Conflicts) != 1 {
		t.Fatalf("6-minute overlap must be reported, got %+v", result)
	}
	c := result.Conflicts[0]
	if c.Type != "assignment" || c.OverlapMinutes != 6 || c.Circuit != "204" {
		t.Errorf("unexpected conflict detail: %+v", c)
	}
}

func TestCheckConflict_BuffersExtendTheBlock(t *testing.T) {
	// HLP minutes are paid presence, so they collide too.
	assignments := []planning.Assignment{{
		ID: "a1", EmployeeID: "emp-e",
		StartDate: "2025-01-01", EndDate: "2025-12-31",
		Shifts: []planning.Shift{{
			ID: "s1", Name: "AM",
			Blocks: []planning.Block{{ID: "b1", StartTime: "08:00", EndTime: "09:00", HLPAfter: 20}},
		}},
	}}

	in := planning.ConflictInput{
		EmployeeID: "emp-e", Date: monday, StartTime: "09:05", EndTime: "10:00",
	}
	result, err := planning.CheckConflict(in, assignments, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Conflict {
		t.Error("candidate inside the HLP buffer must conflict")
	}
}

func TestCheckConflict_TaskOnOtherDateIgnored(t *testing.T) {
	tasks := []planning.TemporaryTask{
		{ID: "t1", Name: "Sortie", Date: "2025-12-16", StartTime: "08:00", EndTime: "09:00", EmployeeID: "emp-e"},
	}

	in := planning.ConflictInput{
		EmployeeID: "emp-e", Date: monday, StartTime: "08:00", EndTime: "09:00",
	}
	result, err := planning.CheckConflict(in, nil, tasks)
	if err != nil {
		t.Fatal(err)
	}
	if result.Conflict {
		t.Errorf("task on another date must not conflict, got %+v", result.Conflicts)
	}
}

func TestCheckConflict_SameDateTask(t *testing.T) {
	tasks := []planning.TemporaryTask{
		{ID: "t1", Name: "Sortie", Date: monday, StartTime: "08:00", EndTime: "09:00", EmployeeID: "emp-e"},
	}

	in := planning.ConflictInput{
		EmployeeID: "emp-e", Date: monday, StartTime: "08:30", EndTime: "09:30",
	}
	result, err := planning.CheckConflict(in, nil, tasks)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Conflict || result.Conflicts[0].Type != "temporary_task" {
		t.Fatalf("expected a temporary_task conflict, got %+v", result)
	}
	if result.Conflicts[0].OverlapMinutes != 30 {
		t.Errorf("expected 30 minutes overlap, got %d", result.Conflicts[0].OverlapMinutes)
	}
}

func TestCheckConflict_ExcludeOwnRecord(t *testing.T) {
	// An in-place update must not collide with its own prior version.
	tasks := []planning.TemporaryTask{
		{ID: "t1", Date: monday, StartTime: "08:00", EndTime: "09:00", EmployeeID: "emp-e"},
	}

	in := planning.ConflictInput{
		EmployeeID: "emp-e", Date: monday, StartTime: "08:00", EndTime: "09:30", ExcludeID: "t1",
	}
	result, err := planning.CheckConflict(in, nil, tasks)
	if err != nil {
		t.Fatal(err)
	}
	if result.Conflict {
		t.Errorf("excluded record must be skipped, got %+v", result.Conflicts)
	}
}

func TestCheckConflict_OtherEmployeeIgnored(t *testing.T) {
	tasks := []planning.TemporaryTask{
		{ID: "t1", Date: monday, StartTime: "08:00", EndTime: "09:00", EmployeeID: "emp-f"},
	}

	in := planning.ConflictInput{
		EmployeeID: "emp-e", Date: monday, StartTime: "08:00", EndTime: "09:00",
	}
	result, err := planning.CheckConflict(in, nil, tasks)
	if err != nil {
		t.Fatal(err)
	}
	if result.Conflict {
		t.Error("another employee's records must not conflict")
	}
}

func TestCheckConflict_InvalidTime(t *testing.T) {
	in := planning.ConflictInput{EmployeeID: "emp-e", Date: monday, StartTime: "bogus", EndTime: "09:00"}
	if _, err := planning.CheckConflict(in, nil, nil); err == nil {
		t.Error("expected an error for a malformed time")
	}
}

func TestCheckConflict_ExpiredAssignmentIgnored(t *testing.T) {
	assignments := []planning.Assignment{{
		ID: "a1", EmployeeID: "emp-e",
		StartDate: "2024-01-01", EndDate: "2024-12-31",
		Shifts: []planning.Shift{{
			ID: "s1", Name: "AM",
			Blocks: []planning.Block{{ID: "b1", StartTime: "08:00", EndTime: "09:00"}},
		}},
	}}

	in := planning.ConflictInput{
		EmployeeID: "emp-e", Date: monday, StartTime: "08:00", EndTime: "09:00",
	}
	result, err := planning.CheckConflict(in, assignments, nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.Conflict {
		t.Error("assignment outside its date range must not conflict")
	}
}
