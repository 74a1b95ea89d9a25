/*
dto.go - Request/response payloads for the HTTP API

PURPOSE:
  Defines the wire shapes that differ from the domain records. Most
  responses serialize planning types directly (their json tags are the
  API contract); what lives here are the create/update request bodies,
  where server-assigned fields (id, denormalized names, created_at)
  must not be accepted from the client.

NAMING CONVENTION:
  - *Request: Request body types from clients
  - *Response: Response wrappers

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - planning/types.go: the domain records these map onto
*/
package api

import "github.com/berlines/route-planner/planning"

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// CreateEmployeeRequest creates or updates a driver.
type CreateEmployeeRequest struct {
	Name       string `json:"name"`
	HireDate   string `json:"hire_date"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Berline    string `json:"berline"`
	IsInactive bool   `json:"is_inactive"`
}

// CreateSchoolRequest creates or updates a school.
type CreateSchoolRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// BlockRequest is one block inside an assignment request. IDs are
// minted server-side when absent so updates keep stable block IDs.
type BlockRequest struct {
	ID        string   `json:"id"`
	SchoolID  string   `json:"school_id"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	HLPBefore int      `json:"hlp_before"`
	HLPAfter  int      `json:"hlp_after"`
	Days      []string `json:"days"`
}

// ShiftRequest is one shift inside an assignment request.
type ShiftRequest struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Blocks  []BlockRequest `json:"blocks"`
	IsAdmin bool           `json:"is_admin"`
}

// CreateAssignmentRequest creates or updates a circuit assignment.
type CreateAssignmentRequest struct {
	CircuitNumber string         `json:"circuit_number"`
	Shifts        []ShiftRequest `json:"shifts"`
	EmployeeID    string         `json:"employee_id"`
	StartDate     string         `json:"start_date"`
	EndDate       string         `json:"end_date"`
	IsAdapted     bool           `json:"is_adapted"`
}

// CreateTemporaryTaskRequest creates or updates a one-off task.
type CreateTemporaryTaskRequest struct {
	Name       string `json:"name"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	EmployeeID string `json:"employee_id"`
	SchoolID   string `json:"school_id"`
}

// CreateAbsenceRequest creates or updates an absence.
type CreateAbsenceRequest struct {
	EmployeeID string   `json:"employee_id"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	Reason     string   `json:"reason"`
	ShiftTypes []string `json:"shift_types"`
}

// CreateHolidayRequest creates a holiday. Type defaults to ferie.
type CreateHolidayRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Type string `json:"type"`
}

// CreateReassignmentRequest moves one occurrence for one date.
// NewEmployeeID null sends the occurrence to the replacements pool.
type CreateReassignmentRequest struct {
	Date          string  `json:"date"`
	AssignmentID  string  `json:"assignment_id"`
	ShiftID       string  `json:"shift_id"`
	BlockID       string  `json:"block_id"`
	NewEmployeeID *string `json:"new_employee_id"`
}

// CreateAdminRequest creates a dispatcher login code.
type CreateAdminRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// LoginRequest authenticates a dispatcher. The field is named password
// on the wire but carries the dispatcher's personal code.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse is the successful login payload.
type LoginResponse struct {
	Success bool           `json:"success"`
	Admin   planning.Admin `json:"admin"`
}

// DeletedResponse reports a bulk delete.
type DeletedResponse struct {
	Deleted int `json:"deleted"`
}

// InitDataResponse reports what the seed endpoint created.
type InitDataResponse struct {
	Status        string `json:"status"`
	AdminsCreated int    `json:"admins_created"`
}
