/*
Package planning provides the schedule computation engine for a school
bus operation.

PURPOSE:
  This package turns the raw planning records (employees, circuit
  assignments, temporary tasks, absences, holidays, reassignments) into
  accurate daily and weekly worked minutes. Overlapping commitments are
  merged so minutes are never double-counted, day-scoped reassignment
  overlays are applied on top of the read-only assignment baseline, and
  scheduling conflicts can be detected before a commitment is persisted.

KEY CONCEPTS IN THIS FILE (types.go):
  - Employee/School: identity records; names are denormalized onto
    other records at creation time
  - Block: one committed window inside a Shift, with paid HLP buffers
    and the weekday subset it applies to
  - Shift: AM/PM/MIDI grouping of Blocks, or a fixed-duration admin shift
  - Assignment: a circuit bound to at most one employee over a date range
  - TemporaryTask/Absence/Holiday/TemporaryReassignment: day-scoped inputs

DESIGN PRINCIPLES:
  1. The engine is a pure function over a Snapshot of these collections;
     it holds no state and never mutates its inputs.
  2. Dates are ISO YYYY-MM-DD strings compared lexicographically; times
     are HH:MM converted to minutes from midnight.
  3. Reassignments overlay the baseline per date; the Assignment record
     itself is never modified.

SEE ALSO:
  - day.go: per-employee, per-date resolution
  - schedule.go: week aggregation and the replacements pool
  - store.go: the Repository interface feeding the engine
*/
package planning

// =============================================================================
// IDENTITY RECORDS
// =============================================================================

// Employee is a driver. Name is cached onto assignments, tasks and
// absences when those records are created.
type Employee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	HireDate   string `json:"hire_date"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	Berline    string `json:"berline,omitempty"`
	IsInactive bool   `json:"is_inactive"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// School is a pickup/drop-off site. Its name and display color are
// denormalized onto blocks and temporary tasks.
type School struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	CreatedAt string `json:"created_at,omitempty"`
}

// =============================================================================
// ASSIGNMENT BASELINE - circuits, shifts, blocks
// =============================================================================

// Weekday letters used in Block.Days (Monday through Friday).
const (
	DayMonday    = "L"
	DayTuesday   = "Ma"
	DayWednesday = "Me"
	DayThursday  = "J"
	DayFriday    = "V"
)

// Block is one committed time window inside a shift. HLPBefore and
// HLPAfter are paid non-driving buffer minutes attached around the
// window. Days holds the weekday letters the block applies to; an empty
// set means every business day (records created before the weekday
// feature omit it).
type Block struct {
	ID          string   `json:"id"`
	SchoolID    string   `json:"school_id"`
	SchoolName  string   `json:"school_name,omitempty"`
	SchoolColor string   `json:"school_color,omitempty"`
	StartTime   string   `json:"start_time"` // HH:MM
	EndTime     string   `json:"end_time"`   // HH:MM
	HLPBefore   int      `json:"hlp_before"` // minutes
	HLPAfter    int      `json:"hlp_after"`  // minutes
	Days        []string `json:"days,omitempty"`
}

// AppliesOn reports whether the block is scheduled on the given weekday
// letter. An empty Days set applies every day.
func (b Block) AppliesOn(dayLetter string) bool {
	if len(b.Days) == 0 {
		return true
	}
	for _, d := range b.Days {
		if d == dayLetter {
			return true
		}
	}
	return false
}

// AdminShiftMinutes is the fixed daily contribution of an admin shift.
const AdminShiftMinutes = 480

// Admin shifts use a synthetic placement when one is needed for
// display; only the 480-minute duration is meaningful.
const (
	adminSyntheticStart = 6 * 60  // 06:00
	adminSyntheticEnd   = 14 * 60 // 14:00
)

// Shift groups blocks under a name (AM, PM, MIDI). An admin shift is
// not block-based: it contributes a fixed 480 minutes per day, ignores
// weekday filtering, and survives holiday zeroing.
type Shift struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Blocks  []Block `json:"blocks"`
	IsAdmin bool    `json:"is_admin"`
}

// Assignment binds a circuit to at most one employee over an inclusive
// date range. Overlapping ranges per employee are not prevented here;
// conflicts are surfaced by CheckConflict before persisting.
type Assignment struct {
	ID            string  `json:"id"`
	CircuitNumber string  `json:"circuit_number"`
	Shifts        []Shift `json:"shifts"`
	EmployeeID    string  `json:"employee_id,omitempty"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	StartDate     string  `json:"start_date"` // YYYY-MM-DD inclusive
	EndDate       string  `json:"end_date"`   // YYYY-MM-DD inclusive
	IsAdapted     bool    `json:"is_adapted"`
	CreatedAt     string  `json:"created_at,omitempty"`
}

// Covers reports whether the assignment's date range contains the date.
// ISO dates compare lexicographically.
func (a Assignment) Covers(date string) bool {
	return a.StartDate <= date && date <= a.EndDate
}

// =============================================================================
// DAY-SCOPED RECORDS
// =============================================================================

// TemporaryTask is a one-off commitment on a single date, independent
// of any assignment. Its interval carries no HLP buffer.
type TemporaryTask struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	EmployeeID   string `json:"employee_id,omitempty"`
	EmployeeName string `json:"employee_name,omitempty"`
	SchoolID     string `json:"school_id,omitempty"`
	SchoolName   string `json:"school_name,omitempty"`
	SchoolColor  string `json:"school_color,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// Absence exempts an employee from work over an inclusive date range.
// ShiftTypes narrows the exemption to the named shift types; empty
// exempts every shift that day (and temporary tasks with it).
type Absence struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name,omitempty"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Reason       string   `json:"reason,omitempty"`
	ShiftTypes   []string `json:"shift_types,omitempty"`
	CreatedAt    string   `json:"created_at,omitempty"`
}

// Covers reports whether the absence applies on the date.
func (a Absence) Covers(date string) bool {
	return a.StartDate <= date && date <= a.EndDate
}

// Exempts reports whether the absence exempts a shift of the given name
// on the date. An empty ShiftTypes filter exempts all shifts.
func (a Absence) Exempts(date, shiftName string) bool {
	if !a.Covers(date) {
		return false
	}
	if len(a.ShiftTypes) == 0 {
		return true
	}
	for _, st := range a.ShiftTypes {
		if st == shiftName {
			return true
		}
	}
	return false
}

// Holiday types. Both zero normal shifts; they differ only in display
// ("F" vs "C" in reports) because ferie days are paid and conge days
// are not.
const (
	HolidayFerie = "ferie"
	HolidayConge = "conge"
)

// Holiday flags a date as non-working for block-based shifts. Admin
// shifts are exempt and still contribute their fixed duration.
type Holiday struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	Type      string `json:"type,omitempty"` // ferie or conge, default ferie
	CreatedAt string `json:"created_at,omitempty"`
}

// TemporaryReassignment redirects one shift or block occurrence on one
// date to a different employee, or to nobody (NewEmployeeID nil, the
// occurrence lands in the replacements pool). The baseline assignment
// is never mutated; deleting the record restores it exactly. A later
// record for the same (date, assignment, shift, block) key supersedes
// the earlier one.
type TemporaryReassignment struct {
	ID                 string  `json:"id"`
	Date               string  `json:"date"`
	AssignmentID       string  `json:"assignment_id"`
	ShiftID            string  `json:"shift_id"`
	BlockID            string  `json:"block_id,omitempty"` // empty = whole shift
	OriginalEmployeeID string  `json:"original_employee_id,omitempty"`
	NewEmployeeID      *string `json:"new_employee_id"` // nil = unassigned
	CreatedAt          string  `json:"created_at,omitempty"`
}

// Admin is a dispatcher login code.
type Admin struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at,omitempty"`
}

// =============================================================================
// SNAPSHOT - one computation's view of the world
// =============================================================================

// Snapshot is the read-only input to a schedule computation: the state
// of every collection at request start. The engine never writes to it,
// so concurrent computations over a shared store are safe.
type Snapshot struct {
	Employees      []Employee
	Assignments    []Assignment
	TemporaryTasks []TemporaryTask
	Absences       []Absence
	Holidays       []Holiday
	Reassignments  []TemporaryReassignment
}

// HolidayByDate indexes the snapshot's holidays by date. When the same
// date is flagged twice the first record wins.
func (s *Snapshot) HolidayByDate() map[string]Holiday {
	idx := make(map[string]Holiday, len(s.Holidays))
	for _, h := range s.Holidays {
		if _, ok := idx[h.Date]; !ok {
			idx[h.Date] = h
		}
	}
	return idx
}
