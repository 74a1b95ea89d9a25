/*
store.go - Persistence interface feeding the schedule engine

PURPOSE:
  Defines the interface between the engine and the database. The engine
  itself is a pure function over a Snapshot; a Repository is how that
  snapshot (and the CRUD surface behind the HTTP API) is produced.

KEY INTERFACES:
  Repository: full CRUD over the six planning collections plus admins.

CONTRACT:
  - Create* assigns nothing: IDs, denormalized names and created_at are
    set by the caller before the write.
  - Get/Update/Delete return ErrNotFound for unknown IDs.
  - List* return empty slices, never nil, in creation order. Creation
    order matters for reassignments: the overlay index applies them in
    that order so a later record supersedes an earlier one per key.

IMPLEMENTATIONS:
  - store/sqlite/sqlite.go: production SQLite
  - planning/store/memory.go: in-memory for tests

SEE ALSO:
  - types.go: the records being persisted
  - schedule.go: the computation a Snapshot feeds
*/
package planning

import "context"

// Repository handles persistence of every planning collection.
type Repository interface {
	// Employees
	CreateEmployee(ctx context.Context, e Employee) error
	GetEmployee(ctx context.Context, id string) (Employee, error)
	ListEmployees(ctx context.Context) ([]Employee, error)
	UpdateEmployee(ctx context.Context, e Employee) error
	DeleteEmployee(ctx context.Context, id string) error

	// Schools
	CreateSchool(ctx context.Context, s School) error
	GetSchool(ctx context.Context, id string) (School, error)
	ListSchools(ctx context.Context) ([]School, error)
	UpdateSchool(ctx context.Context, s School) error
	DeleteSchool(ctx context.Context, id string) error

	// Assignments
	CreateAssignment(ctx context.Context, a Assignment) error
	GetAssignment(ctx context.Context, id string) (Assignment, error)
	ListAssignments(ctx context.Context) ([]Assignment, error)
	UpdateAssignment(ctx context.Context, a Assignment) error
	DeleteAssignment(ctx context.Context, id string) error

	// Temporary tasks
	CreateTemporaryTask(ctx context.Context, t TemporaryTask) error
	GetTemporaryTask(ctx context.Context, id string) (TemporaryTask, error)
	ListTemporaryTasks(ctx context.Context) ([]TemporaryTask, error)
	UpdateTemporaryTask(ctx context.Context, t TemporaryTask) error
	DeleteTemporaryTask(ctx context.Context, id string) error

	// Absences
	CreateAbsence(ctx context.Context, a Absence) error
	GetAbsence(ctx context.Context, id string) (Absence, error)
	ListAbsences(ctx context.Context) ([]Absence, error)
	UpdateAbsence(ctx context.Context, a Absence) error
	DeleteAbsence(ctx context.Context, id string) error

	// Holidays
	CreateHoliday(ctx context.Context, h Holiday) error
	ListHolidays(ctx context.Context) ([]Holiday, error)
	DeleteHoliday(ctx context.Context, id string) error

	// Temporary reassignments. ListReassignments filters to
	// [fromDate, toDate] when both are non-empty; empty bounds list all.
	CreateReassignment(ctx context.Context, r TemporaryReassignment) error
	ListReassignments(ctx context.Context, fromDate, toDate string) ([]TemporaryReassignment, error)
	DeleteReassignment(ctx context.Context, id string) error
	DeleteReassignmentsByDate(ctx context.Context, date string) (int, error)

	// Admin login codes
	CreateAdmin(ctx context.Context, a Admin) error
	ListAdmins(ctx context.Context) ([]Admin, error)
	FindAdminByCode(ctx context.Context, code string) (Admin, error)
	DeleteAdmin(ctx context.Context, id string) error

	// Reset clears every collection. Demo scenario loading only.
	Reset(ctx context.Context) error
}

// LoadSnapshot reads every engine input collection in one pass.
// Reassignments are restricted to [fromDate, toDate] so a weekly
// computation does not index the whole history; pass empty bounds to
// load everything.
func LoadSnapshot(ctx context.Context, repo Repository, fromDate, toDate string) (*Snapshot, error) {
	employees, err := repo.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	assignments, err := repo.ListAssignments(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := repo.ListTemporaryTasks(ctx)
	if err != nil {
		return nil, err
	}
	absences, err := repo.ListAbsences(ctx)
	if err != nil {
		return nil, err
	}
	holidays, err := repo.ListHolidays(ctx)
	if err != nil {
		return nil, err
	}
	reassignments, err := repo.ListReassignments(ctx, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Employees:      employees,
		Assignments:    assignments,
		TemporaryTasks: tasks,
		Absences:       absences,
		Holidays:       holidays,
		Reassignments:  reassignments,
	}, nil
}
