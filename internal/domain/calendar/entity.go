package calendar

import "github.com/cmlabs-hris/hris-calendar-go/internal/domain/leave"

// ResolvedStatus is the single display status of one employee on one day.
type ResolvedStatus string

const (
	StatusFuture  ResolvedStatus = "FUTURE"
	StatusWeekend ResolvedStatus = "WEEKEND"
	StatusOnLeave ResolvedStatus = "ON_LEAVE"
	StatusPresent ResolvedStatus = "PRESENT"
	StatusLate    ResolvedStatus = "LATE"
	StatusHalfDay ResolvedStatus = "HALF_DAY"
	StatusRemote  ResolvedStatus = "REMOTE"
	StatusAbsent  ResolvedStatus = "ABSENT"
	StatusNoData  ResolvedStatus = "NO_DATA"
)

// Day is a derived calendar cell. LeaveType is set only for ON_LEAVE.
type Day struct {
	Date         string           `json:"date"`
	IsWeekend    bool             `json:"is_weekend"`
	IsFuture     bool             `json:"is_future"`
	IsToday      bool             `json:"is_today"`
	Status       ResolvedStatus   `json:"status"`
	LeaveType    *leave.LeaveType `json:"leave_type,omitempty"`
	CheckInTime  *string          `json:"check_in_time,omitempty"`
	CheckOutTime *string          `json:"check_out_time,omitempty"`
	WorkedHours  *float64         `json:"worked_hours,omitempty"`
}

// MonthlyStats aggregates one employee's month.
type MonthlyStats struct {
	TotalDays          int     `json:"total_days"`
	PresentDays        int     `json:"present_days"`
	AbsentDays         int     `json:"absent_days"`
	LeaveDays          int     `json:"leave_days"`
	AverageHoursPerDay float64 `json:"average_hours_per_day"`
}

// LeaveCell is one (employee, day) slot of the leave planning grid.
// Leave fields are empty when the employee is not on approved leave that day.
type LeaveCell struct {
	Date       string           `json:"date"`
	IsWeekend  bool             `json:"is_weekend"`
	IsToday    bool             `json:"is_today"`
	LeaveID    string           `json:"leave_id,omitempty"`
	LeaveType  *leave.LeaveType `json:"leave_type,omitempty"`
	ShortLabel string           `json:"short_label,omitempty"`
	StartDate  string           `json:"start_date,omitempty"`
	EndDate    string           `json:"end_date,omitempty"`
}

// OnLeave reports whether the cell is tagged with a leave.
func (c LeaveCell) OnLeave() bool {
	return c.LeaveType != nil
}

// EmployeeRef identifies the employee a planning row belongs to.
type EmployeeRef struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Position   string `json:"position,omitempty"`
	Department string `json:"department,omitempty"`
}

type LeaveRow struct {
	Employee EmployeeRef `json:"employee"`
	Cells    []LeaveCell `json:"cells"`
}

type LeaveSummary struct {
	ActiveEmployees int `json:"active_employees"`
	OnLeaveToday    int `json:"on_leave_today"`
	AvailableToday  int `json:"available_today"`
	ApprovedLeaves  int `json:"approved_leaves"`
}

// LeaveGrid is the day by employee leave planning for one month.
type LeaveGrid struct {
	Year        int          `json:"year"`
	Month       int          `json:"month"`
	Today       string       `json:"today"`
	Days        []string     `json:"days"`
	Rows        []LeaveRow   `json:"rows"`
	Summary     LeaveSummary `json:"summary"`
	Departments []string     `json:"departments"`
}

// OnLeaveEntry lists an employee covered by an approved leave on a given day.
type OnLeaveEntry struct {
	Employee   EmployeeRef     `json:"employee"`
	LeaveID    string          `json:"leave_id"`
	LeaveType  leave.LeaveType `json:"leave_type"`
	ShortLabel string          `json:"short_label"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
}

type AttendanceRow struct {
	Employee EmployeeRef `json:"employee"`
	Cells    []Day       `json:"cells"`
}

type AttendanceSummary struct {
	TotalEmployees      int `json:"total_employees"`
	PresentToday        int `json:"present_today"`
	AbsentToday         int `json:"absent_today"`
	TotalPresencesMonth int `json:"total_presences_month"`
}

// AttendanceGrid is the day by employee attendance planning for one month.
type AttendanceGrid struct {
	Year        int               `json:"year"`
	Month       int               `json:"month"`
	Today       string            `json:"today"`
	Days        []string          `json:"days"`
	Rows        []AttendanceRow   `json:"rows"`
	Summary     AttendanceSummary `json:"summary"`
	Departments []string          `json:"departments"`
}
