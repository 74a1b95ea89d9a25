package planning

import "errors"

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidTime is returned when an HH:MM clock string cannot be parsed.
	ErrInvalidTime = errors.New("invalid time, expected HH:MM")

	// ErrInvalidDate is returned when a YYYY-MM-DD date cannot be parsed.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrNotFound is returned by repositories when a record does not exist.
	ErrNotFound = errors.New("record not found")
)
