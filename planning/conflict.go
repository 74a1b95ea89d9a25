/*
conflict.go - Proactive overlap detection for candidate commitments

PURPOSE:
  Before a new block or temporary task is persisted for an employee,
  the dispatcher checks it against everything the employee already has
  on that date. The check returns every offending record with its
  overlap, not just a boolean, so the UI can show what exactly clashes.

TOLERANCE:
  Back-to-back runs routinely touch by a few minutes, so an overlap of
  up to 5 minutes is deliberate slack and not reported. 6 minutes is.
*/
package planning

// ConflictTolerance is the maximum overlap, in minutes, that is not
// reported as a conflict.
const ConflictTolerance = 5

// ConflictInput is a candidate commitment to validate.
type ConflictInput struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	// ExcludeID skips a record's own prior version during an in-place
	// update.
	ExcludeID string `json:"exclude_id,omitempty"`
}

// Conflict names one offending record and the overlap in minutes.
type Conflict struct {
	Type           string `json:"type"` // "assignment" or "temporary_task"
	AssignmentID   string `json:"assignment_id,omitempty"`
	Circuit        string `json:"circuit,omitempty"`
	Shift          string `json:"shift,omitempty"`
	BlockTime      string `json:"block_time,omitempty"`
	TaskID         string `json:"task_id,omitempty"`
	TaskName       string `json:"task_name,omitempty"`
	TaskTime       string `json:"task_time,omitempty"`
	OverlapMinutes int    `json:"overlap_minutes"`
}

// ConflictResult is the full outcome of a conflict check.
type ConflictResult struct {
	Conflict  bool       `json:"conflict"`
	Conflicts []Conflict `json:"conflicts"`
}

// CheckConflict tests the candidate against the employee's active
// assignment blocks (HLP-buffered) and same-date temporary tasks
// (unbuffered). Assignments and tasks are the employee's own records;
// callers pass the snapshot collections and filtering happens here.
func CheckConflict(in ConflictInput, assignments []Assignment, tasks []TemporaryTask) (ConflictResult, error) {
	newStart, err := ToMinutes(in.StartTime)
	if err != nil {
		return ConflictResult{}, err
	}
	newEnd, err := ToMinutes(in.EndTime)
	if err != nil {
		return ConflictResult{}, err
	}

	result := ConflictResult{Conflicts: []Conflict{}}

	for _, a := range assignments {
		if a.EmployeeID != in.EmployeeID || a.ID == in.ExcludeID || !a.Covers(in.Date) {
			continue
		}
		for _, s := range a.Shifts {
			for _, b := range s.Blocks {
				blockStart := MinutesOf(b.StartTime) - b.HLPBefore
				blockEnd := MinutesOf(b.EndTime) + b.HLPAfter

				if overlap := overlapMinutes(newStart, newEnd, blockStart, blockEnd); overlap > ConflictTolerance {
					result.Conflicts = append(result.Conflicts, Conflict{
						Type:           "assignment",
						AssignmentID:   a.ID,
						Circuit:        a.CircuitNumber,
						Shift:          s.Name,
						BlockTime:      b.StartTime + "-" + b.EndTime,
						OverlapMinutes: overlap,
					})
				}
			}
		}
	}

	for _, task := range tasks {
		if task.EmployeeID != in.EmployeeID || task.ID == in.ExcludeID || task.Date != in.Date {
			continue
		}
		taskStart := MinutesOf(task.StartTime)
		taskEnd := MinutesOf(task.EndTime)

		if overlap := overlapMinutes(newStart, newEnd, taskStart, taskEnd); overlap > ConflictTolerance {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:           "temporary_task",
				TaskID:         task.ID,
				TaskName:       task.Name,
				TaskTime:       task.StartTime + "-" + task.EndTime,
				OverlapMinutes: overlap,
			})
		}
	}

	result.Conflict = len(result.Conflicts) > 0
	return result, nil
}

func overlapMinutes(aStart, aEnd, bStart, bEnd int) int {
	end := aEnd
	if bEnd < end {
		end = bEnd
	}
	start := aStart
	if bStart > start {
		start = bStart
	}
	return end - start
}
