package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/berlines/route-planner/planning"
	"github.com/berlines/route-planner/planning/store"
)

func TestMemory_EmployeeLifecycle(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	emp := planning.Employee{ID: "emp-1", Name: "Eric Tremblay", HireDate: "2020-08-15"}
	if err := m.CreateEmployee(ctx, emp); err != nil {
		t.Fatal(err)
	}

	got, err := m.GetEmployee(ctx, "emp-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Eric Tremblay" {
		t.Errorf("expected stored name, got %q", got.Name)
	}

	got.Name = "Eric T."
	if err := m.UpdateEmployee(ctx, got); err != nil {
		t.Fatal(err)
	}
	updated, _ := m.GetEmployee(ctx, "emp-1")
	if updated.Name != "Eric T." {
		t.Errorf("update not applied, got %q", updated.Name)
	}

	if err := m.DeleteEmployee(ctx, "emp-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.GetEmployee(ctx, "emp-1"); !errors.Is(err, planning.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemory_NotFoundOnUnknownID(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	if err := m.UpdateAssignment(ctx, planning.Assignment{ID: "nope"}); !errors.Is(err, planning.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := m.DeleteHoliday(ctx, "nope"); !errors.Is(err, planning.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemory_ListKeepsCreationOrder(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	for _, id := range []string{"r-1", "r-2", "r-3"} {
		err := m.CreateReassignment(ctx, planning.TemporaryReassignment{ID: id, Date: "2025-12-15"})
		if err != nil {
			t.Fatal(err)
		}
	}

	all, err := m.ListReassignments(ctx, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 || all[0].ID != "r-1" || all[2].ID != "r-3" {
		t.Errorf("creation order lost: %+v", all)
	}
}

func TestMemory_ReassignmentDateFilter(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	m.CreateReassignment(ctx, planning.TemporaryReassignment{ID: "r-1", Date: "2025-12-08"})
	m.CreateReassignment(ctx, planning.TemporaryReassignment{ID: "r-2", Date: "2025-12-15"})
	m.CreateReassignment(ctx, planning.TemporaryReassignment{ID: "r-3", Date: "2025-12-22"})

	week, err := m.ListReassignments(ctx, "2025-12-15", "2025-12-19")
	if err != nil {
		t.Fatal(err)
	}
	if len(week) != 1 || week[0].ID != "r-2" {
		t.Errorf("expected only the in-range record, got %+v", week)
	}
}

func TestMemory_DeleteReassignmentsByDate(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	m.CreateReassignment(ctx, planning.TemporaryReassignment{ID: "r-1", Date: "2025-12-15"})
	m.CreateReassignment(ctx, planning.TemporaryReassignment{ID: "r-2", Date: "2025-12-15"})
	m.CreateReassignment(ctx, planning.TemporaryReassignment{ID: "r-3", Date: "2025-12-16"})

	n, err := m.DeleteReassignmentsByDate(ctx, "2025-12-15")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("expected 2 deleted, got %d", n)
	}

	left, _ := m.ListReassignments(ctx, "", "")
	if len(left) != 1 || left[0].ID != "r-3" {
		t.Errorf("expected only r-3 to remain, got %+v", left)
	}
}

func TestMemory_FindAdminByCode(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	m.CreateAdmin(ctx, planning.Admin{ID: "ad-1", Code: "1600", Name: "Fernand Alary"})

	admin, err := m.FindAdminByCode(ctx, "1600")
	if err != nil {
		t.Fatal(err)
	}
	if admin.Name != "Fernand Alary" {
		t.Errorf("unexpected admin: %+v", admin)
	}

	if _, err := m.FindAdminByCode(ctx, "0000"); !errors.Is(err, planning.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown code, got %v", err)
	}
}
