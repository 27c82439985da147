package leave

import "fmt"

type LeaveType string

const (
	TypePaid      LeaveType = "PAID_LEAVE"
	TypeSick      LeaveType = "SICK_LEAVE"
	TypeUnpaid    LeaveType = "UNPAID_LEAVE"
	TypeMaternity LeaveType = "MATERNITY_LEAVE"
	TypePaternity LeaveType = "PATERNITY_LEAVE"
	TypeOther     LeaveType = "OTHER"
)

var shortLabels = map[LeaveType]string{
	TypePaid:      "CP",
	TypeSick:      "Maladie",
	TypeUnpaid:    "Sans solde",
	TypeMaternity: "Maternité",
	TypePaternity: "Paternité",
	TypeOther:     "Autre",
}

// ShortLabel returns the compact code shown in planning cells.
// Unknown types fall back to their raw value.
func (t LeaveType) ShortLabel() string {
	if label, ok := shortLabels[t]; ok {
		return label
	}
	return string(t)
}

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

// transitions lists the statuses reachable from each status.
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved: {StatusCancelled},
	StatusRejected: {StatusCancelled},
}

// IsValid reports whether s is a known leave status.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next when the move is allowed.
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return s, fmt.Errorf("%w: %s to %s", ErrInvalidStatusTransition, s, next)
	}
	return next, nil
}

// Interval is a leave request spanning StartDate..EndDate inclusive.
// Dates are canonical YYYY-MM-DD, or empty when the source value was malformed.
type Interval struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	StartDate    string
	EndDate      string
	LeaveType    LeaveType
	Status       Status
	Reason       *string
}

// IsApproved reports whether the interval participates in reconciliation.
func (i Interval) IsApproved() bool {
	return i.Status == StatusApproved
}

// Covers reports whether the canonical date lies inside the interval.
func (i Interval) Covers(date string) bool {
	if i.StartDate == "" || i.EndDate == "" || date == "" {
		return false
	}
	return i.StartDate <= date && date <= i.EndDate
}
