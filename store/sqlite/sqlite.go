/*
Package sqlite provides the SQLite-backed planning.Repository.

PURPOSE:
  Persists every planning collection for the HTTP server. The same
  patterns apply to PostgreSQL - only minor SQL dialect differences.

KEY TABLES:
  employees:                Driver records
  schools:                  Pickup/drop-off sites
  assignments:              Circuits; the shift tree is one JSON column
  temporary_tasks:          One-off dated commitments
  absences:                 Date-ranged exemptions; shift_types is JSON
  holidays:                 Non-working dates
  temporary_reassignments:  Day-scoped occurrence overrides
  admins:                   Dispatcher login codes

SHIFTS AS JSON:
  An assignment's shifts and blocks are written and read as one unit;
  nothing queries inside the tree, so it is stored as a JSON column
  instead of two extra tables. Absence shift_types likewise.

ORDERING:
  List queries order by created_at, id. Creation order is part of the
  Repository contract: the reassignment overlay applies records in that
  order so a later record supersedes an earlier one per occurrence key.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. In production with PostgreSQL,
  database-level concurrency control handles this instead.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  repo, err := sqlite.New("./data/planning.db")
  if err != nil {
      log.Fatal(err)
  }
  defer repo.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - planning/store.go: Interface definition
  - planning/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/berlines/route-planner/planning"
)

// Store implements planning.Repository using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dbPath == ":memory:" {
		// Each pool connection gets its own in-memory database; keep one.
		db.SetMaxOpenConns(1)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		hire_date TEXT NOT NULL,
		phone TEXT,
		email TEXT,
		berline TEXT,
		is_inactive BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS schools (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		color TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS assignments (
		id TEXT PRIMARY KEY,
		circuit_number TEXT NOT NULL,
		shifts_json TEXT NOT NULL,
		employee_id TEXT NOT NULL DEFAULT '',
		employee_name TEXT NOT NULL DEFAULT '',
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		is_adapted BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_assignments_employee
		ON assignments(employee_id);
	CREATE INDEX IF NOT EXISTS idx_assignments_dates
		ON assignments(start_date, end_date);

	CREATE TABLE IF NOT EXISTS temporary_tasks (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		employee_id TEXT NOT NULL DEFAULT '',
		employee_name TEXT NOT NULL DEFAULT '',
		school_id TEXT NOT NULL DEFAULT '',
		school_name TEXT NOT NULL DEFAULT '',
		school_color TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_temporary_tasks_date
		ON temporary_tasks(date);

	CREATE TABLE IF NOT EXISTS absences (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		employee_name TEXT NOT NULL DEFAULT '',
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		reason TEXT,
		shift_types_json TEXT NOT NULL DEFAULT '[]',
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_absences_employee
		ON absences(employee_id);

	CREATE TABLE IF NOT EXISTS holidays (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		date TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT 'ferie',
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_holidays_date
		ON holidays(date);

	CREATE TABLE IF NOT EXISTS temporary_reassignments (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		assignment_id TEXT NOT NULL,
		shift_id TEXT NOT NULL,
		block_id TEXT NOT NULL DEFAULT '',
		original_employee_id TEXT NOT NULL DEFAULT '',
		new_employee_id TEXT,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_reassignments_date
		ON temporary_reassignments(date);

	CREATE TABLE IF NOT EXISTS admins (
		id TEXT PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func (s *Store) CreateEmployee(ctx context.Context, e planning.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO employees (id, name, hire_date, phone, email, berline, is_inactive, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.HireDate, e.Phone, e.Email, e.Berline, e.IsInactive, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

func (s *Store) GetEmployee(ctx context.Context, id string) (planning.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var e planning.Employee
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, hire_date, phone, email, berline, is_inactive, created_at
		FROM employees WHERE id = ?`, id,
	).Scan(&e.ID, &e.Name, &e.HireDate, &e.Phone, &e.Email, &e.Berline, &e.IsInactive, &e.CreatedAt)

	if err == sql.ErrNoRows {
		return planning.Employee{}, planning.ErrNotFound
	}
	return e, err
}

func (s *Store) ListEmployees(ctx context.Context) ([]planning.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, hire_date, phone, email, berline, is_inactive, created_at
		FROM employees ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []planning.Employee{}
	for rows.Next() {
		var e planning.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.HireDate, &e.Phone, &e.Email, &e.Berline, &e.IsInactive, &e.CreatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (s *Store) UpdateEmployee(ctx context.Context, e planning.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `
		UPDATE employees SET name = ?, hire_date = ?, phone = ?, email = ?, berline = ?, is_inactive = ?
		WHERE id = ?`,
		e.Name, e.HireDate, e.Phone, e.Email, e.Berline, e.IsInactive, e.ID,
	)
	return checkAffected(res, err)
}

func (s *Store) DeleteEmployee(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM employees WHERE id = ?", id)
	return checkAffected(res, err)
}

// =============================================================================
// SCHOOLS
// =============================================================================

func (s *Store) CreateSchool(ctx context.Context, sc planning.School) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO schools (id, name, color, created_at) VALUES (?, ?, ?, ?)`,
		sc.ID, sc.Name, sc.Color, sc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create school: %w", err)
	}
	return nil
}

func (s *Store) GetSchool(ctx context.Context, id string) (planning.School, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sc planning.School
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, color, created_at FROM schools WHERE id = ?", id,
	).Scan(&sc.ID, &sc.Name, &sc.Color, &sc.CreatedAt)

	if err == sql.ErrNoRows {
		return planning.School{}, planning.ErrNotFound
	}
	return sc, err
}

func (s *Store) ListSchools(ctx context.Context) ([]planning.School, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, color, created_at FROM schools ORDER BY created_at, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schools := []planning.School{}
	for rows.Next() {
		var sc planning.School
		if err := rows.Scan(&sc.ID, &sc.Name, &sc.Color, &sc.CreatedAt); err != nil {
			return nil, err
		}
		schools = append(schools, sc)
	}
	return schools, rows.Err()
}

func (s *Store) UpdateSchool(ctx context.Context, sc planning.School) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		"UPDATE schools SET name = ?, color = ? WHERE id = ?", sc.Name, sc.Color, sc.ID)
	return checkAffected(res, err)
}

func (s *Store) DeleteSchool(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM schools WHERE id = ?", id)
	return checkAffected(res, err)
}

// =============================================================================
// ASSIGNMENTS
// =============================================================================

func (s *Store) CreateAssignment(ctx context.Context, a planning.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	shiftsJSON, err := json.Marshal(a.Shifts)
	if err != nil {
		return fmt.Errorf("failed to encode shifts: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO assignments
		(id, circuit_number, shifts_json, employee_id, employee_name, start_date, end_date, is_adapted, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.CircuitNumber, string(shiftsJSON), a.EmployeeID, a.EmployeeName,
		a.StartDate, a.EndDate, a.IsAdapted, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	return nil
}

func (s *Store) GetAssignment(ctx context.Context, id string) (planning.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, circuit_number, shifts_json, employee_id, employee_name, start_date, end_date, is_adapted, created_at
		FROM assignments WHERE id = ?`, id)

	a, err := scanAssignment(row)
	if err == sql.ErrNoRows {
		return planning.Assignment{}, planning.ErrNotFound
	}
	return a, err
}

func (s *Store) ListAssignments(ctx context.Context) ([]planning.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, circuit_number, shifts_json, employee_id, employee_name, start_date, end_date, is_adapted, created_at
		FROM assignments ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := []planning.Assignment{}
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (s *Store) UpdateAssignment(ctx context.Context, a planning.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	shiftsJSON, err := json.Marshal(a.Shifts)
	if err != nil {
		return fmt.Errorf("failed to encode shifts: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE assignments SET circuit_number = ?, shifts_json = ?, employee_id = ?, employee_name = ?,
			start_date = ?, end_date = ?, is_adapted = ?
		WHERE id = ?`,
		a.CircuitNumber, string(shiftsJSON), a.EmployeeID, a.EmployeeName,
		a.StartDate, a.EndDate, a.IsAdapted, a.ID,
	)
	return checkAffected(res, err)
}

func (s *Store) DeleteAssignment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM assignments WHERE id = ?", id)
	return checkAffected(res, err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssignment(row rowScanner) (planning.Assignment, error) {
	var a planning.Assignment
	var shiftsJSON string

	err := row.Scan(&a.ID, &a.CircuitNumber, &shiftsJSON, &a.EmployeeID, &a.EmployeeName,
		&a.StartDate, &a.EndDate, &a.IsAdapted, &a.CreatedAt)
	if err != nil {
		return a, err
	}
	if err := json.Unmarshal([]byte(shiftsJSON), &a.Shifts); err != nil {
		return a, fmt.Errorf("failed to decode shifts for assignment %s: %w", a.ID, err)
	}
	return a, nil
}

// =============================================================================
// TEMPORARY TASKS
// =============================================================================

func (s *Store) CreateTemporaryTask(ctx context.Context, t planning.TemporaryTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO temporary_tasks
		(id, name, date, start_time, end_time, employee_id, employee_name, school_id, school_name, school_color, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.Date, t.StartTime, t.EndTime, t.EmployeeID, t.EmployeeName,
		t.SchoolID, t.SchoolName, t.SchoolColor, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create temporary task: %w", err)
	}
	return nil
}

func (s *Store) GetTemporaryTask(ctx context.Context, id string) (planning.TemporaryTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var t planning.TemporaryTask
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, date, start_time, end_time, employee_id, employee_name, school_id, school_name, school_color, created_at
		FROM temporary_tasks WHERE id = ?`, id,
	).Scan(&t.ID, &t.Name, &t.Date, &t.StartTime, &t.EndTime, &t.EmployeeID, &t.EmployeeName,
		&t.SchoolID, &t.SchoolName, &t.SchoolColor, &t.CreatedAt)

	if err == sql.ErrNoRows {
		return planning.TemporaryTask{}, planning.ErrNotFound
	}
	return t, err
}

func (s *Store) ListTemporaryTasks(ctx context.Context) ([]planning.TemporaryTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, date, start_time, end_time, employee_id, employee_name, school_id, school_name, school_color, created_at
		FROM temporary_tasks ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []planning.TemporaryTask{}
	for rows.Next() {
		var t planning.TemporaryTask
		if err := rows.Scan(&t.ID, &t.Name, &t.Date, &t.StartTime, &t.EndTime, &t.EmployeeID, &t.EmployeeName,
			&t.SchoolID, &t.SchoolName, &t.SchoolColor, &t.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) UpdateTemporaryTask(ctx context.Context, t planning.TemporaryTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `
		UPDATE temporary_tasks SET name = ?, date = ?, start_time = ?, end_time = ?,
			employee_id = ?, employee_name = ?, school_id = ?, school_name = ?, school_color = ?
		WHERE id = ?`,
		t.Name, t.Date, t.StartTime, t.EndTime, t.EmployeeID, t.EmployeeName,
		t.SchoolID, t.SchoolName, t.SchoolColor, t.ID,
	)
	return checkAffected(res, err)
}

func (s *Store) DeleteTemporaryTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM temporary_tasks WHERE id = ?", id)
	return checkAffected(res, err)
}

// =============================================================================
// ABSENCES
// =============================================================================

func (s *Store) CreateAbsence(ctx context.Context, a planning.Absence) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	shiftTypes, err := json.Marshal(emptyIfNil(a.ShiftTypes))
	if err != nil {
		return fmt.Errorf("failed to encode shift types: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO absences (id, employee_id, employee_name, start_date, end_date, reason, shift_types_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.EmployeeID, a.EmployeeName, a.StartDate, a.EndDate, a.Reason, string(shiftTypes), a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create absence: %w", err)
	}
	return nil
}

func (s *Store) GetAbsence(ctx context.Context, id string) (planning.Absence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, employee_id, employee_name, start_date, end_date, reason, shift_types_json, created_at
		FROM absences WHERE id = ?`, id)

	a, err := scanAbsence(row)
	if err == sql.ErrNoRows {
		return planning.Absence{}, planning.ErrNotFound
	}
	return a, err
}

func (s *Store) ListAbsences(ctx context.Context) ([]planning.Absence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, employee_id, employee_name, start_date, end_date, reason, shift_types_json, created_at
		FROM absences ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	absences := []planning.Absence{}
	for rows.Next() {
		a, err := scanAbsence(rows)
		if err != nil {
			return nil, err
		}
		absences = append(absences, a)
	}
	return absences, rows.Err()
}

func (s *Store) UpdateAbsence(ctx context.Context, a planning.Absence) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	shiftTypes, err := json.Marshal(emptyIfNil(a.ShiftTypes))
	if err != nil {
		return fmt.Errorf("failed to encode shift types: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE absences SET employee_id = ?, employee_name = ?, start_date = ?, end_date = ?, reason = ?, shift_types_json = ?
		WHERE id = ?`,
		a.EmployeeID, a.EmployeeName, a.StartDate, a.EndDate, a.Reason, string(shiftTypes), a.ID,
	)
	return checkAffected(res, err)
}

func (s *Store) DeleteAbsence(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM absences WHERE id = ?", id)
	return checkAffected(res, err)
}

func scanAbsence(row rowScanner) (planning.Absence, error) {
	var a planning.Absence
	var reason sql.NullString
	var shiftTypesJSON string

	err := row.Scan(&a.ID, &a.EmployeeID, &a.EmployeeName, &a.StartDate, &a.EndDate, &reason, &shiftTypesJSON, &a.CreatedAt)
	if err != nil {
		return a, err
	}
	a.Reason = reason.String
	if err := json.Unmarshal([]byte(shiftTypesJSON), &a.ShiftTypes); err != nil {
		return a, fmt.Errorf("failed to decode shift types for absence %s: %w", a.ID, err)
	}
	return a, nil
}

// =============================================================================
// HOLIDAYS
// =============================================================================

func (s *Store) CreateHoliday(ctx context.Context, h planning.Holiday) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h.Type == "" {
		h.Type = planning.HolidayFerie
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO holidays (id, name, date, type, created_at) VALUES (?, ?, ?, ?, ?)`,
		h.ID, h.Name, h.Date, h.Type, h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create holiday: %w", err)
	}
	return nil
}

func (s *Store) ListHolidays(ctx context.Context) ([]planning.Holiday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, date, type, created_at FROM holidays ORDER BY date, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holidays := []planning.Holiday{}
	for rows.Next() {
		var h planning.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.Date, &h.Type, &h.CreatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

func (s *Store) DeleteHoliday(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM holidays WHERE id = ?", id)
	return checkAffected(res, err)
}

// =============================================================================
// TEMPORARY REASSIGNMENTS
// =============================================================================

func (s *Store) CreateReassignment(ctx context.Context, r planning.TemporaryReassignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var newEmployee sql.NullString
	if r.NewEmployeeID != nil {
		newEmployee = sql.NullString{String: *r.NewEmployeeID, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO temporary_reassignments
		(id, date, assignment_id, shift_id, block_id, original_employee_id, new_employee_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Date, r.AssignmentID, r.ShiftID, r.BlockID, r.OriginalEmployeeID, newEmployee, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create reassignment: %w", err)
	}
	return nil
}

func (s *Store) ListReassignments(ctx context.Context, fromDate, toDate string) ([]planning.TemporaryReassignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, date, assignment_id, shift_id, block_id, original_employee_id, new_employee_id, created_at
		FROM temporary_reassignments`
	var where []string
	var args []any
	if fromDate != "" {
		where = append(where, "date >= ?")
		args = append(args, fromDate)
	}
	if toDate != "" {
		where = append(where, "date <= ?")
		args = append(args, toDate)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reassignments := []planning.TemporaryReassignment{}
	for rows.Next() {
		var r planning.TemporaryReassignment
		var newEmployee sql.NullString
		if err := rows.Scan(&r.ID, &r.Date, &r.AssignmentID, &r.ShiftID, &r.BlockID,
			&r.OriginalEmployeeID, &newEmployee, &r.CreatedAt); err != nil {
			return nil, err
		}
		if newEmployee.Valid {
			v := newEmployee.String
			r.NewEmployeeID = &v
		}
		reassignments = append(reassignments, r)
	}
	return reassignments, rows.Err()
}

func (s *Store) DeleteReassignment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM temporary_reassignments WHERE id = ?", id)
	return checkAffected(res, err)
}

func (s *Store) DeleteReassignmentsByDate(ctx context.Context, date string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM temporary_reassignments WHERE date = ?", date)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// =============================================================================
// ADMINS
// =============================================================================

func (s *Store) CreateAdmin(ctx context.Context, a planning.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO admins (id, code, name, created_at) VALUES (?, ?, ?, ?)",
		a.ID, a.Code, a.Name, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (s *Store) ListAdmins(ctx context.Context) ([]planning.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, code, name, created_at FROM admins ORDER BY created_at, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	admins := []planning.Admin{}
	for rows.Next() {
		var a planning.Admin
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &a.CreatedAt); err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

func (s *Store) FindAdminByCode(ctx context.Context, code string) (planning.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var a planning.Admin
	err := s.db.QueryRowContext(ctx,
		"SELECT id, code, name, created_at FROM admins WHERE code = ? COLLATE NOCASE", code,
	).Scan(&a.ID, &a.Code, &a.Name, &a.CreatedAt)

	if err == sql.ErrNoRows {
		return planning.Admin{}, planning.ErrNotFound
	}
	return a, err
}

func (s *Store) DeleteAdmin(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM admins WHERE id = ?", id)
	return checkAffected(res, err)
}

// =============================================================================
// UTILITIES
// =============================================================================

// Reset clears all data (for testing/demo).
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := []string{
		"employees", "schools", "assignments", "temporary_tasks",
		"absences", "holidays", "temporary_reassignments", "admins",
	}
	for _, table := range tables {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}

// checkAffected maps a zero-row write to ErrNotFound.
func checkAffected(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return planning.ErrNotFound
	}
	return nil
}

func emptyIfNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
