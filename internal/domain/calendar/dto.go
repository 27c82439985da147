package calendar

import (
	"strings"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/validator"
)

const (
	minYear = 2000
	maxYear = 2100
)

// MonthRequest selects one employee's month.
type MonthRequest struct {
	EmployeeID string
	Year       int
	Month      int
}

func (r *MonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	errs = append(errs, validateMonth(r.Year, r.Month)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PlanningRequest selects one month of a filtered roster.
type PlanningRequest struct {
	Year   int
	Month  int
	Filter employee.RosterFilter
}

func (r *PlanningRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateMonth(r.Year, r.Month)...)
	if len(strings.TrimSpace(r.Filter.Search)) > 100 {
		errs = append(errs, validator.ValidationError{Field: "search", Message: "search must not exceed 100 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MonthlyCalendarResponse is one employee's resolved month.
type MonthlyCalendarResponse struct {
	Employee EmployeeRef  `json:"employee"`
	Year     int          `json:"year"`
	Month    int          `json:"month"`
	Today    string       `json:"today"`
	Days     []Day        `json:"days"`
	Stats    MonthlyStats `json:"stats"`
}

// MonthlyStatsResponse carries stats without the day list.
type MonthlyStatsResponse struct {
	EmployeeID string       `json:"employee_id"`
	Year       int          `json:"year"`
	Month      int          `json:"month"`
	Stats      MonthlyStats `json:"stats"`
}

// OnLeaveTodayResponse lists who is away on the current day.
type OnLeaveTodayResponse struct {
	Date    string         `json:"date"`
	Entries []OnLeaveEntry `json:"entries"`
}

// RefreshResult summarizes a batch stats recomputation.
type RefreshResult struct {
	Year      int `json:"year"`
	Month     int `json:"month"`
	Employees int `json:"employees"`
	Failed    int `json:"failed"`
}

func validateMonth(year, month int) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if year < minYear || year > maxYear {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be between 2000 and 2100"})
	}
	if month < 1 || month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	return errs
}
