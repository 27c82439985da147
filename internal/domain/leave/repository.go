package leave

import "context"

// Filter narrows a leave query. Nil fields mean "all".
type Filter struct {
	EmployeeID *string
	Status     *Status
}

// Matches reports whether the interval satisfies the filter.
func (f Filter) Matches(i Interval) bool {
	if f.EmployeeID != nil && i.EmployeeID != *f.EmployeeID {
		return false
	}
	if f.Status != nil && i.Status != *f.Status {
		return false
	}
	return true
}

// Source provides read access to leave requests owned by the external backend.
type Source interface {
	GetLeaveIntervals(ctx context.Context, filter Filter) ([]Interval, error)
}
