package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/berlines/route-planner/planning"
	"github.com/berlines/route-planner/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_AssignmentRoundTrip(t *testing.T) {
	// The shift tree goes through a JSON column; every field must survive.
	ctx := context.Background()
	s := newTestStore(t)

	a := planning.Assignment{
		ID:            "a-204",
		CircuitNumber: "204",
		EmployeeID:    "emp-e",
		EmployeeName:  "Eric Tremblay",
		StartDate:     "2025-08-25",
		EndDate:       "2026-06-19",
		IsAdapted:     true,
		CreatedAt:     "2025-08-20T12:00:00Z",
		Shifts: []planning.Shift{
			{
				ID:   "s-am",
				Name: "AM",
				Blocks: []planning.Block{
					{
						ID: "b-1", SchoolID: "sch-1", SchoolName: "École du Parc",
						SchoolColor: "#ff0000", StartTime: "07:30", EndTime: "08:15",
						HLPBefore: 10, HLPAfter: 5, Days: []string{"L", "Me"},
					},
				},
			},
			{ID: "s-adm", Name: "ADMIN", IsAdmin: true},
		},
	}
	if err := s.CreateAssignment(ctx, a); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetAssignment(ctx, "a-204")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Shifts) != 2 {
		t.Fatalf("expected 2 shifts, got %d", len(got.Shifts))
	}
	b := got.Shifts[0].Blocks[0]
	if b.HLPBefore != 10 || b.HLPAfter != 5 || len(b.Days) != 2 {
		t.Errorf("block fields lost in round trip: %+v", b)
	}
	if !got.Shifts[1].IsAdmin {
		t.Error("admin flag lost in round trip")
	}
	if !got.IsAdapted {
		t.Error("is_adapted lost in round trip")
	}
}

func TestStore_UpdateMissingRecord(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.UpdateEmployee(ctx, planning.Employee{ID: "nope", Name: "X"})
	if !errors.Is(err, planning.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_ReassignmentNullNewEmployee(t *testing.T) {
	// A reassignment to nobody stores NULL and must come back as nil.
	ctx := context.Background()
	s := newTestStore(t)

	vacated := planning.TemporaryReassignment{
		ID: "r-1", Date: "2025-12-15", AssignmentID: "a-204", ShiftID: "s-am",
		OriginalEmployeeID: "emp-e", CreatedAt: "2025-12-14T08:00:00Z",
	}
	newEmp := "emp-f"
	moved := planning.TemporaryReassignment{
		ID: "r-2", Date: "2025-12-15", AssignmentID: "a-204", ShiftID: "s-pm",
		OriginalEmployeeID: "emp-e", NewEmployeeID: &newEmp, CreatedAt: "2025-12-14T09:00:00Z",
	}
	if err := s.CreateReassignment(ctx, vacated); err != nil {
		t.Fatal(err)
	}
	if err := s.CreateReassignment(ctx, moved); err != nil {
		t.Fatal(err)
	}

	all, err := s.ListReassignments(ctx, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
	if all[0].NewEmployeeID != nil {
		t.Errorf("vacated record must round-trip as nil, got %v", *all[0].NewEmployeeID)
	}
	if all[1].NewEmployeeID == nil || *all[1].NewEmployeeID != "emp-f" {
		t.Errorf("moved record lost its new employee: %+v", all[1])
	}
}

func TestStore_ReassignmentDateFilterAndBulkDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	dates := []string{"2025-12-08", "2025-12-15", "2025-12-15", "2025-12-22"}
	for i, d := range dates {
		r := planning.TemporaryReassignment{
			ID: "r-" + string(rune('a'+i)), Date: d, AssignmentID: "a-1", ShiftID: "s-1",
			CreatedAt: "2025-12-01T00:00:00Z",
		}
		if err := s.CreateReassignment(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	week, err := s.ListReassignments(ctx, "2025-12-15", "2025-12-19")
	if err != nil {
		t.Fatal(err)
	}
	if len(week) != 2 {
		t.Errorf("expected 2 in-range records, got %d", len(week))
	}

	n, err := s.DeleteReassignmentsByDate(ctx, "2025-12-15")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("expected 2 deleted, got %d", n)
	}
}

func TestStore_AbsenceShiftTypes(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	scoped := planning.Absence{
		ID: "ab-1", EmployeeID: "emp-e", StartDate: "2025-12-15", EndDate: "2025-12-15",
		ShiftTypes: []string{"AM"}, CreatedAt: "2025-12-10T00:00:00Z",
	}
	full := planning.Absence{
		ID: "ab-2", EmployeeID: "emp-e", StartDate: "2025-12-16", EndDate: "2025-12-16",
		CreatedAt: "2025-12-10T00:00:00Z",
	}
	if err := s.CreateAbsence(ctx, scoped); err != nil {
		t.Fatal(err)
	}
	if err := s.CreateAbsence(ctx, full); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetAbsence(ctx, "ab-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.ShiftTypes) != 1 || got.ShiftTypes[0] != "AM" {
		t.Errorf("shift types lost: %+v", got.ShiftTypes)
	}

	got, err = s.GetAbsence(ctx, "ab-2")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.ShiftTypes) != 0 {
		t.Errorf("full-day absence must keep an empty filter, got %+v", got.ShiftTypes)
	}
}

func TestStore_AdminCodeLookup(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	admin := planning.Admin{ID: "ad-1", Code: "1600", Name: "Fernand Alary", CreatedAt: "2025-01-01T00:00:00Z"}
	if err := s.CreateAdmin(ctx, admin); err != nil {
		t.Fatal(err)
	}

	got, err := s.FindAdminByCode(ctx, "1600")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Fernand Alary" {
		t.Errorf("unexpected admin: %+v", got)
	}

	if _, err := s.FindAdminByCode(ctx, "9999"); !errors.Is(err, planning.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// Duplicate codes are rejected by the unique index.
	dup := planning.Admin{ID: "ad-2", Code: "1600", Name: "Autre", CreatedAt: "2025-01-02T00:00:00Z"}
	if err := s.CreateAdmin(ctx, dup); err == nil {
		t.Error("expected an error for a duplicate admin code")
	}
}
