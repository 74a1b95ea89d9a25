/*
handlers.go - HTTP API handlers for the route planning system

PURPOSE:
  Exposes the planning engine and its collections via REST API. Handles
  HTTP request/response, JSON serialization, and delegates computation
  to the planning package.

ENDPOINTS:
  Collections:
    /api/employees, /api/schools, /api/assignments,
    /api/temporary-tasks, /api/absences, /api/holidays,
    /api/temporary-reassignments, /api/admins - standard CRUD

  Computation:
    GET  /api/schedule?week_start=  Weekly board + replacements pool
    POST /api/check-conflict        Validate a candidate commitment
    GET  /api/reports/hours         Payroll grid (JSON or CSV)

  Auth:
    POST /api/auth/login            Dispatcher code login
    POST /api/init-data             Seed default dispatcher codes

DENORMALIZATION:
  Employee and school names are copied onto records at creation time,
  so list responses render without joins. Renaming an employee does not
  rewrite history; that is intentional.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 401: Bad login code
  - 404: Record not found
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - planning/schedule.go: the computation behind /api/schedule
*/
package api

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/berlines/route-planner/planning"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Repo planning.Repository

	currentScenario string
}

// NewHandler creates a new handler over the given repository.
func NewHandler(repo planning.Repository) *Handler {
	return &Handler{Repo: repo}
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// ListEmployees returns all employees.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Repo.ListEmployees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

// GetEmployee returns a single employee.
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Repo.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, "employee", err)
		return
	}
	writeJSON(w, http.StatusOK, emp)
}

// CreateEmployee creates a new employee.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required", nil)
		return
	}

	emp := planning.Employee{
		ID:         uuid.NewString(),
		Name:       req.Name,
		HireDate:   req.HireDate,
		Phone:      req.Phone,
		Email:      req.Email,
		Berline:    req.Berline,
		IsInactive: req.IsInactive,
		CreatedAt:  now(),
	}
	if err := h.Repo.CreateEmployee(r.Context(), emp); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create employee", err)
		return
	}
	writeJSON(w, http.StatusCreated, emp)
}

// UpdateEmployee replaces an employee's mutable fields.
func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	id := chi.URLParam(r, "id")
	existing, err := h.Repo.GetEmployee(r.Context(), id)
	if err != nil {
		writeRepoError(w, "employee", err)
		return
	}

	existing.Name = req.Name
	existing.HireDate = req.HireDate
	existing.Phone = req.Phone
	existing.Email = req.Email
	existing.Berline = req.Berline
	existing.IsInactive = req.IsInactive

	if err := h.Repo.UpdateEmployee(r.Context(), existing); err != nil {
		writeRepoError(w, "employee", err)
		return
	}
	writeJSON(w, http.StatusOK, existing)
}

// DeleteEmployee removes an employee.
func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteEmployee(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeRepoError(w, "employee", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// =============================================================================
// SCHOOL HANDLERS
// =============================================================================

func (h *Handler) ListSchools(w http.ResponseWriter, r *http.Request) {
	schools, err := h.Repo.ListSchools(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list schools", err)
		return
	}
	writeJSON(w, http.StatusOK, schools)
}

func (h *Handler) CreateSchool(w http.ResponseWriter, r *http.Request) {
	var req CreateSchoolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required", nil)
		return
	}

	school := planning.School{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Color:     req.Color,
		CreatedAt: now(),
	}
	if err := h.Repo.CreateSchool(r.Context(), school); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create school", err)
		return
	}
	writeJSON(w, http.StatusCreated, school)
}

func (h *Handler) UpdateSchool(w http.ResponseWriter, r *http.Request) {
	var req CreateSchoolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	school, err := h.Repo.GetSchool(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, "school", err)
		return
	}
	school.Name = req.Name
	school.Color = req.Color

	if err := h.Repo.UpdateSchool(r.Context(), school); err != nil {
		writeRepoError(w, "school", err)
		return
	}
	writeJSON(w, http.StatusOK, school)
}

func (h *Handler) DeleteSchool(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteSchool(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeRepoError(w, "school", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// =============================================================================
// ASSIGNMENT HANDLERS
// =============================================================================

func (h *Handler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.Repo.ListAssignments(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list assignments", err)
		return
	}
	writeJSON(w, http.StatusOK, assignments)
}

func (h *Handler) GetAssignment(w http.ResponseWriter, r *http.Request) {
	a, err := h.Repo.GetAssignment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, "assignment", err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *Handler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	a, err := h.buildAssignment(r.Context(), uuid.NewString(), req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid assignment", err)
		return
	}
	a.CreatedAt = now()

	if err := h.Repo.CreateAssignment(r.Context(), a); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create assignment", err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (h *Handler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	var req CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	id := chi.URLParam(r, "id")
	existing, err := h.Repo.GetAssignment(r.Context(), id)
	if err != nil {
		writeRepoError(w, "assignment", err)
		return
	}

	a, err := h.buildAssignment(r.Context(), id, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid assignment", err)
		return
	}
	a.CreatedAt = existing.CreatedAt

	if err := h.Repo.UpdateAssignment(r.Context(), a); err != nil {
		writeRepoError(w, "assignment", err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *Handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteAssignment(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeRepoError(w, "assignment", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// buildAssignment hydrates a request into a full record: mints missing
// shift and block IDs and denormalizes employee and school names.
func (h *Handler) buildAssignment(ctx context.Context, id string, req CreateAssignmentRequest) (planning.Assignment, error) {
	a := planning.Assignment{
		ID:            id,
		CircuitNumber: req.CircuitNumber,
		EmployeeID:    req.EmployeeID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		IsAdapted:     req.IsAdapted,
	}
	if _, err := planning.ParseDate(req.StartDate); err != nil {
		return a, err
	}
	if _, err := planning.ParseDate(req.EndDate); err != nil {
		return a, err
	}

	if req.EmployeeID != "" {
		emp, err := h.Repo.GetEmployee(ctx, req.EmployeeID)
		if err != nil {
			return a, fmt.Errorf("employee %s: %w", req.EmployeeID, err)
		}
		a.EmployeeName = emp.Name
	}

	for _, sr := range req.Shifts {
		shift := planning.Shift{
			ID:      orNewID(sr.ID),
			Name:    sr.Name,
			IsAdmin: sr.IsAdmin,
			Blocks:  []planning.Block{},
		}
		for _, br := range sr.Blocks {
			block := planning.Block{
				ID:        orNewID(br.ID),
				SchoolID:  br.SchoolID,
				StartTime: br.StartTime,
				EndTime:   br.EndTime,
				HLPBefore: br.HLPBefore,
				HLPAfter:  br.HLPAfter,
				Days:      br.Days,
			}
			if br.SchoolID != "" {
				school, err := h.Repo.GetSchool(ctx, br.SchoolID)
				if err != nil {
					return a, fmt.Errorf("school %s: %w", br.SchoolID, err)
				}
				block.SchoolName = school.Name
				block.SchoolColor = school.Color
			}
			shift.Blocks = append(shift.Blocks, block)
		}
		a.Shifts = append(a.Shifts, shift)
	}
	return a, nil
}

// =============================================================================
// TEMPORARY TASK HANDLERS
// =============================================================================

func (h *Handler) ListTemporaryTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.Repo.ListTemporaryTasks(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list temporary tasks", err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *Handler) CreateTemporaryTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTemporaryTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	task, err := h.buildTask(r.Context(), uuid.NewString(), req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid temporary task", err)
		return
	}
	task.CreatedAt = now()

	if err := h.Repo.CreateTemporaryTask(r.Context(), task); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create temporary task", err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (h *Handler) UpdateTemporaryTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTemporaryTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	id := chi.URLParam(r, "id")
	existing, err := h.Repo.GetTemporaryTask(r.Context(), id)
	if err != nil {
		writeRepoError(w, "temporary task", err)
		return
	}

	task, err := h.buildTask(r.Context(), id, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid temporary task", err)
		return
	}
	task.CreatedAt = existing.CreatedAt

	if err := h.Repo.UpdateTemporaryTask(r.Context(), task); err != nil {
		writeRepoError(w, "temporary task", err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *Handler) DeleteTemporaryTask(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteTemporaryTask(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeRepoError(w, "temporary task", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) buildTask(ctx context.Context, id string, req CreateTemporaryTaskRequest) (planning.TemporaryTask, error) {
	task := planning.TemporaryTask{
		ID:         id,
		Name:       req.Name,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		EmployeeID: req.EmployeeID,
		SchoolID:   req.SchoolID,
	}
	if _, err := planning.ParseDate(req.Date); err != nil {
		return task, err
	}
	if _, err := planning.ToMinutes(req.StartTime); err != nil {
		return task, err
	}
	if _, err := planning.ToMinutes(req.EndTime); err != nil {
		return task, err
	}

	if req.EmployeeID != "" {
		emp, err := h.Repo.GetEmployee(ctx, req.EmployeeID)
		if err != nil {
			return task, fmt.Errorf("employee %s: %w", req.EmployeeID, err)
		}
		task.EmployeeName = emp.Name
	}
	if req.SchoolID != "" {
		school, err := h.Repo.GetSchool(ctx, req.SchoolID)
		if err != nil {
			return task, fmt.Errorf("school %s: %w", req.SchoolID, err)
		}
		task.SchoolName = school.Name
		task.SchoolColor = school.Color
	}
	return task, nil
}

// =============================================================================
// ABSENCE HANDLERS
// =============================================================================

func (h *Handler) ListAbsences(w http.ResponseWriter, r *http.Request) {
	absences, err := h.Repo.ListAbsences(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list absences", err)
		return
	}
	writeJSON(w, http.StatusOK, absences)
}

func (h *Handler) CreateAbsence(w http.ResponseWriter, r *http.Request) {
	var req CreateAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	emp, err := h.Repo.GetEmployee(r.Context(), req.EmployeeID)
	if err != nil {
		writeRepoError(w, "employee", err)
		return
	}

	absence := planning.Absence{
		ID:           uuid.NewString(),
		EmployeeID:   req.EmployeeID,
		EmployeeName: emp.Name,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Reason:       req.Reason,
		ShiftTypes:   req.ShiftTypes,
		CreatedAt:    now(),
	}
	if err := h.Repo.CreateAbsence(r.Context(), absence); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create absence", err)
		return
	}
	writeJSON(w, http.StatusCreated, absence)
}

func (h *Handler) UpdateAbsence(w http.ResponseWriter, r *http.Request) {
	var req CreateAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	absence, err := h.Repo.GetAbsence(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, "absence", err)
		return
	}

	if req.EmployeeID != absence.EmployeeID {
		emp, err := h.Repo.GetEmployee(r.Context(), req.EmployeeID)
		if err != nil {
			writeRepoError(w, "employee", err)
			return
		}
		absence.EmployeeID = req.EmployeeID
		absence.EmployeeName = emp.Name
	}
	absence.StartDate = req.StartDate
	absence.EndDate = req.EndDate
	absence.Reason = req.Reason
	absence.ShiftTypes = req.ShiftTypes

	if err := h.Repo.UpdateAbsence(r.Context(), absence); err != nil {
		writeRepoError(w, "absence", err)
		return
	}
	writeJSON(w, http.StatusOK, absence)
}

func (h *Handler) DeleteAbsence(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteAbsence(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeRepoError(w, "absence", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// =============================================================================
// HOLIDAY HANDLERS
// =============================================================================

func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.Repo.ListHolidays(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list holidays", err)
		return
	}
	writeJSON(w, http.StatusOK, holidays)
}

func (h *Handler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if _, err := planning.ParseDate(req.Date); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}
	if req.Type == "" {
		req.Type = planning.HolidayFerie
	}
	if req.Type != planning.HolidayFerie && req.Type != planning.HolidayConge {
		writeError(w, http.StatusBadRequest, "type must be ferie or conge", nil)
		return
	}

	holiday := planning.Holiday{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Date:      req.Date,
		Type:      req.Type,
		CreatedAt: now(),
	}
	if err := h.Repo.CreateHoliday(r.Context(), holiday); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create holiday", err)
		return
	}
	writeJSON(w, http.StatusCreated, holiday)
}

func (h *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteHoliday(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeRepoError(w, "holiday", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// =============================================================================
// REASSIGNMENT HANDLERS
// =============================================================================

// ListReassignments accepts ?date= for a single day or ?from=&to= for a
// range; with neither it lists everything.
func (h *Handler) ListReassignments(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if date := r.URL.Query().Get("date"); date != "" {
		from, to = date, date
	}

	reassignments, err := h.Repo.ListReassignments(r.Context(), from, to)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list reassignments", err)
		return
	}
	writeJSON(w, http.StatusOK, reassignments)
}

func (h *Handler) CreateReassignment(w http.ResponseWriter, r *http.Request) {
	var req CreateReassignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if _, err := planning.ParseDate(req.Date); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}

	a, err := h.Repo.GetAssignment(r.Context(), req.AssignmentID)
	if err != nil {
		writeRepoError(w, "assignment", err)
		return
	}
	if req.NewEmployeeID != nil && *req.NewEmployeeID != "" {
		if _, err := h.Repo.GetEmployee(r.Context(), *req.NewEmployeeID); err != nil {
			writeRepoError(w, "employee", err)
			return
		}
	}

	reassignment := planning.TemporaryReassignment{
		ID:                 uuid.NewString(),
		Date:               req.Date,
		AssignmentID:       req.AssignmentID,
		ShiftID:            req.ShiftID,
		BlockID:            req.BlockID,
		OriginalEmployeeID: a.EmployeeID,
		NewEmployeeID:      req.NewEmployeeID,
		CreatedAt:          now(),
	}
	if err := h.Repo.CreateReassignment(r.Context(), reassignment); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create reassignment", err)
		return
	}
	writeJSON(w, http.StatusCreated, reassignment)
}

func (h *Handler) DeleteReassignment(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteReassignment(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeRepoError(w, "reassignment", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// DeleteReassignmentsByDate clears every override on one date,
// restoring the baseline board for that day.
func (h *Handler) DeleteReassignmentsByDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, err := planning.ParseDate(date); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}

	n, err := h.Repo.DeleteReassignmentsByDate(r.Context(), date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete reassignments", err)
		return
	}
	writeJSON(w, http.StatusOK, DeletedResponse{Deleted: n})
}

// =============================================================================
// SCHEDULE & CONFLICT HANDLERS
// =============================================================================

// GetSchedule computes the weekly board.
// GET /api/schedule?week_start=YYYY-MM-DD
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	weekStart := r.URL.Query().Get("week_start")

	dates, err := planning.WeekDates(weekStart)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid week_start (use YYYY-MM-DD)", err)
		return
	}

	snap, err := planning.LoadSnapshot(r.Context(), h.Repo, dates[0], dates[len(dates)-1])
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load planning data", err)
		return
	}

	result, err := planning.ComputeSchedule(snap, weekStart)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to compute schedule", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// CheckConflict validates a candidate commitment.
// POST /api/check-conflict
func (h *Handler) CheckConflict(w http.ResponseWriter, r *http.Request) {
	var in planning.ConflictInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if _, err := planning.ParseDate(in.Date); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}

	assignments, err := h.Repo.ListAssignments(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load assignments", err)
		return
	}
	tasks, err := h.Repo.ListTemporaryTasks(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load temporary tasks", err)
		return
	}

	result, err := planning.CheckConflict(in, assignments, tasks)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid time format (use HH:MM)", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// =============================================================================
// REPORT HANDLERS
// =============================================================================

// GetHoursReport builds the payroll grid.
// GET /api/reports/hours?start_date=&end_date=
//
//	[&employee_ids=id1,id2][&format=csv][&legacy=true]
func (h *Handler) GetHoursReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	startDate, endDate := q.Get("start_date"), q.Get("end_date")
	if startDate == "" || endDate == "" {
		writeError(w, http.StatusBadRequest, "start_date and end_date are required", nil)
		return
	}
	legacy := q.Get("legacy") == "true"

	snap, err := planning.LoadSnapshot(r.Context(), h.Repo, startDate, endDate)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load planning data", err)
		return
	}
	if ids := q.Get("employee_ids"); ids != "" {
		snap.Employees = filterEmployees(snap.Employees, strings.Split(ids, ","))
	}

	report, err := planning.ComputeHoursReport(snap, startDate, endDate, legacy)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date range", err)
		return
	}

	if q.Get("format") == "csv" {
		writeReportCSV(w, report)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// filterEmployees keeps only the requested IDs, preserving order.
func filterEmployees(employees []planning.Employee, ids []string) []planning.Employee {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	kept := employees[:0]
	for _, e := range employees {
		if wanted[e.ID] {
			kept = append(kept, e)
		}
	}
	return kept
}

func writeReportCSV(w http.ResponseWriter, report *planning.HoursReport) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=rapport_heures_%s_%s.csv", report.StartDate, report.EndDate))

	cw := csv.NewWriter(w)
	header := append([]string{"Employe"}, report.Dates...)
	header = append(header, "Total", "Heures")
	cw.Write(header)

	for _, row := range report.Employees {
		record := []string{row.EmployeeName}
		for _, date := range report.Dates {
			record = append(record, row.Cells[date])
		}
		record = append(record, row.TotalFormatted, row.TotalHours.String())
		cw.Write(record)
	}
	cw.Flush()
}

// =============================================================================
// AUTH & ADMIN HANDLERS
// =============================================================================

// Login authenticates a dispatcher by personal code.
// POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	admin, err := h.Repo.FindAdminByCode(r.Context(), req.Password)
	if errors.Is(err, planning.ErrNotFound) {
		writeError(w, http.StatusUnauthorized, "Code invalide", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to check code", err)
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{Success: true, Admin: admin})
}

func (h *Handler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.Repo.ListAdmins(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list admins", err)
		return
	}
	writeJSON(w, http.StatusOK, admins)
}

func (h *Handler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Code == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "code and name are required", nil)
		return
	}

	admin := planning.Admin{
		ID:        uuid.NewString(),
		Code:      req.Code,
		Name:      req.Name,
		CreatedAt: now(),
	}
	if err := h.Repo.CreateAdmin(r.Context(), admin); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create admin", err)
		return
	}
	writeJSON(w, http.StatusCreated, admin)
}

func (h *Handler) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteAdmin(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeRepoError(w, "admin", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// defaultAdmins are the dispatcher codes seeded by /api/init-data.
var defaultAdmins = []planning.Admin{
	{Code: "1600", Name: "Fernand Alary"},
	{Code: "2201", Name: "Chantal Lachapelle"},
	{Code: "2202", Name: "Mélissa Aubuchon"},
	{Code: "2203", Name: "Benoit Dallaire"},
	{Code: "2204", Name: "Maxime Labelle"},
}

// InitData seeds the default dispatcher codes when none exist yet.
// POST /api/init-data
func (h *Handler) InitData(w http.ResponseWriter, r *http.Request) {
	existing, err := h.Repo.ListAdmins(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to check admins", err)
		return
	}
	if len(existing) > 0 {
		writeJSON(w, http.StatusOK, InitDataResponse{Status: "ok", AdminsCreated: 0})
		return
	}

	created := 0
	for _, a := range defaultAdmins {
		a.ID = uuid.NewString()
		a.CreatedAt = now()
		if err := h.Repo.CreateAdmin(r.Context(), a); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to seed admins", err)
			return
		}
		created++
	}
	writeJSON(w, http.StatusOK, InitDataResponse{Status: "ok", AdminsCreated: created})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeRepoError maps ErrNotFound to 404, everything else to 500.
func writeRepoError(w http.ResponseWriter, what string, err error) {
	if errors.Is(err, planning.ErrNotFound) {
		writeError(w, http.StatusNotFound, what+" not found", nil)
		return
	}
	writeError(w, http.StatusInternalServerError, "Failed to access "+what, err)
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func orNewID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}
