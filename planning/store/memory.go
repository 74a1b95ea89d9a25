// Package store provides Repository implementations.
package store

import (
	"context"
	"strings"
	"sync"

	"github.com/berlines/route-planner/planning"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

// Memory is an in-memory planning.Repository. All collections keep
// creation order; reads return copies so callers never alias internal
// state.
type Memory struct {
	mu            sync.RWMutex
	employees     collection[planning.Employee]
	schools       collection[planning.School]
	assignments   collection[planning.Assignment]
	tasks         collection[planning.TemporaryTask]
	absences      collection[planning.Absence]
	holidays      collection[planning.Holiday]
	reassignments collection[planning.TemporaryReassignment]
	admins        collection[planning.Admin]
}

func NewMemory() *Memory {
	return &Memory{
		employees:     collection[planning.Employee]{id: func(e planning.Employee) string { return e.ID }},
		schools:       collection[planning.School]{id: func(s planning.School) string { return s.ID }},
		assignments:   collection[planning.Assignment]{id: func(a planning.Assignment) string { return a.ID }},
		tasks:         collection[planning.TemporaryTask]{id: func(t planning.TemporaryTask) string { return t.ID }},
		absences:      collection[planning.Absence]{id: func(a planning.Absence) string { return a.ID }},
		holidays:      collection[planning.Holiday]{id: func(h planning.Holiday) string { return h.ID }},
		reassignments: collection[planning.TemporaryReassignment]{id: func(r planning.TemporaryReassignment) string { return r.ID }},
		admins:        collection[planning.Admin]{id: func(a planning.Admin) string { return a.ID }},
	}
}

// collection is an ordered slice of records addressed by ID.
// Not safe on its own; Memory's mutex guards every access.
type collection[T any] struct {
	items []T
	id    func(T) string
}

func (c *collection[T]) insert(item T) {
	c.items = append(c.items, item)
}

func (c *collection[T]) index(id string) int {
	for i, item := range c.items {
		if c.id(item) == id {
			return i
		}
	}
	return -1
}

func (c *collection[T]) get(id string) (T, error) {
	if i := c.index(id); i >= 0 {
		return c.items[i], nil
	}
	var zero T
	return zero, planning.ErrNotFound
}

func (c *collection[T]) update(item T) error {
	i := c.index(c.id(item))
	if i < 0 {
		return planning.ErrNotFound
	}
	c.items[i] = item
	return nil
}

func (c *collection[T]) delete(id string) error {
	i := c.index(id)
	if i < 0 {
		return planning.ErrNotFound
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return nil
}

func (c *collection[T]) list() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func (m *Memory) CreateEmployee(_ context.Context, e planning.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.employees.insert(e)
	return nil
}

func (m *Memory) GetEmployee(_ context.Context, id string) (planning.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.employees.get(id)
}

func (m *Memory) ListEmployees(_ context.Context) ([]planning.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.employees.list(), nil
}

func (m *Memory) UpdateEmployee(_ context.Context, e planning.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.employees.update(e)
}

func (m *Memory) DeleteEmployee(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.employees.delete(id)
}

// =============================================================================
// SCHOOLS
// =============================================================================

func (m *Memory) CreateSchool(_ context.Context, s planning.School) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schools.insert(s)
	return nil
}

func (m *Memory) GetSchool(_ context.Context, id string) (planning.School, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.schools.get(id)
}

func (m *Memory) ListSchools(_ context.Context) ([]planning.School, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.schools.list(), nil
}

func (m *Memory) UpdateSchool(_ context.Context, s planning.School) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.schools.update(s)
}

func (m *Memory) DeleteSchool(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.schools.delete(id)
}

// =============================================================================
// ASSIGNMENTS
// =============================================================================

func (m *Memory) CreateAssignment(_ context.Context, a planning.Assignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assignments.insert(a)
	return nil
}

func (m *Memory) GetAssignment(_ context.Context, id string) (planning.Assignment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.assignments.get(id)
}

func (m *Memory) ListAssignments(_ context.Context) ([]planning.Assignment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.assignments.list(), nil
}

func (m *Memory) UpdateAssignment(_ context.Context, a planning.Assignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.assignments.update(a)
}

func (m *Memory) DeleteAssignment(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.assignments.delete(id)
}

// =============================================================================
// TEMPORARY TASKS
// =============================================================================

func (m *Memory) CreateTemporaryTask(_ context.Context, t planning.TemporaryTask) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks.insert(t)
	return nil
}

func (m *Memory) GetTemporaryTask(_ context.Context, id string) (planning.TemporaryTask, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tasks.get(id)
}

func (m *Memory) ListTemporaryTasks(_ context.Context) ([]planning.TemporaryTask, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tasks.list(), nil
}

func (m *Memory) UpdateTemporaryTask(_ context.Context, t planning.TemporaryTask) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tasks.update(t)
}

func (m *Memory) DeleteTemporaryTask(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tasks.delete(id)
}

// =============================================================================
// ABSENCES
// =============================================================================

func (m *Memory) CreateAbsence(_ context.Context, a planning.Absence) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.absences.insert(a)
	return nil
}

func (m *Memory) GetAbsence(_ context.Context, id string) (planning.Absence, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.absences.get(id)
}

func (m *Memory) ListAbsences(_ context.Context) ([]planning.Absence, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.absences.list(), nil
}

func (m *Memory) UpdateAbsence(_ context.Context, a planning.Absence) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.absences.update(a)
}

func (m *Memory) DeleteAbsence(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.absences.delete(id)
}

// =============================================================================
// HOLIDAYS
// =============================================================================

func (m *Memory) CreateHoliday(_ context.Context, h planning.Holiday) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.holidays.insert(h)
	return nil
}

func (m *Memory) ListHolidays(_ context.Context) ([]planning.Holiday, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.holidays.list(), nil
}

func (m *Memory) DeleteHoliday(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.holidays.delete(id)
}

// =============================================================================
// TEMPORARY REASSIGNMENTS
// =============================================================================

func (m *Memory) CreateReassignment(_ context.Context, r planning.TemporaryReassignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reassignments.insert(r)
	return nil
}

func (m *Memory) ListReassignments(_ context.Context, fromDate, toDate string) ([]planning.TemporaryReassignment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.reassignments.list()
	if fromDate == "" && toDate == "" {
		return all, nil
	}
	filtered := make([]planning.TemporaryReassignment, 0, len(all))
	for _, r := range all {
		if (fromDate == "" || fromDate <= r.Date) && (toDate == "" || r.Date <= toDate) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (m *Memory) DeleteReassignment(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reassignments.delete(id)
}

func (m *Memory) DeleteReassignmentsByDate(_ context.Context, date string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.reassignments.items[:0]
	deleted := 0
	for _, r := range m.reassignments.items {
		if r.Date == date {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	m.reassignments.items = kept
	return deleted, nil
}

// =============================================================================
// ADMINS
// =============================================================================

func (m *Memory) CreateAdmin(_ context.Context, a planning.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.admins.insert(a)
	return nil
}

func (m *Memory) ListAdmins(_ context.Context) ([]planning.Admin, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.admins.list(), nil
}

func (m *Memory) FindAdminByCode(_ context.Context, code string) (planning.Admin, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, a := range m.admins.items {
		if strings.EqualFold(a.Code, code) {
			return a, nil
		}
	}
	return planning.Admin{}, planning.ErrNotFound
}

func (m *Memory) DeleteAdmin(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.admins.delete(id)
}

// Reset clears every collection.
func (m *Memory) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.employees.items = nil
	m.schools.items = nil
	m.assignments.items = nil
	m.tasks.items = nil
	m.absences.items = nil
	m.holidays.items = nil
	m.reassignments.items = nil
	m.admins.items = nil
	return nil
}
