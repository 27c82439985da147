package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/validator"
)

// monthParams reads year and month from the query string, defaulting each to
// the current month in loc.
func monthParams(r *http.Request, now time.Time, loc *time.Location) (int, int, error) {
	current := now.In(loc)
	query := r.URL.Query()

	var errs validator.ValidationErrors
	year, err := validator.ParseIntOr(query.Get("year"), current.Year())
	if err != nil {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be an integer"})
	}
	month, err := validator.ParseIntOr(query.Get("month"), int(current.Month()))
	if err != nil {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be an integer"})
	}
	if len(errs) > 0 {
		return 0, 0, errs
	}
	return year, month, nil
}

// rosterFilter reads search, department and active_only. activeOnly is used
// when active_only is absent.
func rosterFilter(r *http.Request, activeOnly bool) (employee.RosterFilter, error) {
	query := r.URL.Query()
	filter := employee.RosterFilter{
		Search:     strings.TrimSpace(query.Get("search")),
		Department: strings.TrimSpace(query.Get("department")),
		ActiveOnly: activeOnly,
	}

	if raw := query.Get("active_only"); raw != "" {
		activeOnly, err := strconv.ParseBool(raw)
		if err != nil {
			return employee.RosterFilter{}, validator.ValidationErrors{{Field: "active_only", Message: "must be a boolean"}}
		}
		filter.ActiveOnly = activeOnly
	}
	return filter, nil
}
