package attendance

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusLate    Status = "LATE"
	StatusHalfDay Status = "HALF_DAY"
	StatusRemote  Status = "REMOTE"
)

// IsValid reports whether s is one of the known attendance statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusHalfDay, StatusRemote:
		return true
	}
	return false
}

// Record is a single attendance entry for one employee on one day.
// Date is canonical YYYY-MM-DD, or empty when the source value was malformed.
// Times are canonical HH:MM. Status may be empty for legacy rows.
type Record struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Date         string
	CheckInTime  *string
	CheckOutTime *string
	Status       Status
	Notes        *string
}

// HasBothTimes reports whether the record carries a check-in and a check-out.
func (r Record) HasBothTimes() bool {
	return r.CheckInTime != nil && r.CheckOutTime != nil
}
