package attendance

import "context"

// Source provides read access to attendance records owned by the external backend.
type Source interface {
	// GetAttendance returns the records of one employee, optionally bounded by a date range.
	GetAttendance(ctx context.Context, employeeID string, dateRange *DateRange) ([]Record, error)
	// ListAttendance returns the records of every employee, optionally bounded by a date range.
	ListAttendance(ctx context.Context, dateRange *DateRange) ([]Record, error)
}
