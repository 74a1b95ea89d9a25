/*
overlay.go - Per-date reassignment overlay index

PURPOSE:
  The drag-and-drop board moves one shift or block occurrence to a
  different driver for a single date without touching the underlying
  assignment. Those moves are stored as TemporaryReassignment records;
  this file indexes them by occurrence key so the day resolver can ask
  "who actually drives this occurrence today?" in O(1).

KEY SHAPE:
  date + "-" + assignmentID + "-" + shiftID + "-" + blockID
  with blockID empty for a whole-shift move. A block-level override
  beats a shift-level one for the same occurrence.

SUPERSESSION:
  Records are applied in creation order, so a later record for the same
  key replaces the earlier one (last-write-wins per key). Deleting the
  record restores the baseline computation exactly.
*/
package planning

// OverlayKey builds the index key for one occurrence. BlockID is empty
// for shift-level overrides.
func OverlayKey(date, assignmentID, shiftID, blockID string) string {
	return date + "-" + assignmentID + "-" + shiftID + "-" + blockID
}

// OverlayIndex maps occurrence keys to their override. It is built once
// per computation request and also exposed to callers so an optimistic
// UI can reconcile its local state.
type OverlayIndex map[string]TemporaryReassignment

// BuildOverlayIndex indexes reassignments by occurrence key. Input is
// expected in creation order; a later record for an already-indexed key
// supersedes the earlier one.
func BuildOverlayIndex(reassignments []TemporaryReassignment) OverlayIndex {
	idx := make(OverlayIndex, len(reassignments))
	for _, r := range reassignments {
		idx[OverlayKey(r.Date, r.AssignmentID, r.ShiftID, r.BlockID)] = r
	}
	return idx
}

// Lookup returns the override covering the given occurrence, if any.
// The block-level key is consulted first, then the shift-level key.
func (idx OverlayIndex) Lookup(date, assignmentID, shiftID, blockID string) (TemporaryReassignment, bool) {
	if blockID != "" {
		if r, ok := idx[OverlayKey(date, assignmentID, shiftID, blockID)]; ok {
			return r, true
		}
	}
	r, ok := idx[OverlayKey(date, assignmentID, shiftID, "")]
	return r, ok
}

// EffectiveEmployee resolves who works the occurrence on the date:
// the override's new employee when one exists (empty when redirected to
// nobody), otherwise the assignment's own employee. The second return
// reports whether an override applied.
func (idx OverlayIndex) EffectiveEmployee(date string, a Assignment, shiftID, blockID string) (string, bool) {
	r, ok := idx.Lookup(date, a.ID, shiftID, blockID)
	if !ok {
		return a.EmployeeID, false
	}
	if r.NewEmployeeID == nil {
		return "", true
	}
	return *r.NewEmployeeID, true
}
