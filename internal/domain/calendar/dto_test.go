package calendar

import (
	"strings"
	"testing"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthRequestValidate(t *testing.T) {
	req := MonthRequest{EmployeeID: "u-1", Year: 2026, Month: 3}
	assert.NoError(t, req.Validate())

	req = MonthRequest{Year: 1990, Month: 13}
	err := req.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "employee_id")
	assert.Contains(t, fields, "year")
	assert.Contains(t, fields, "month")
}

func TestPlanningRequestValidate(t *testing.T) {
	req := PlanningRequest{Year: 2026, Month: 1}
	assert.NoError(t, req.Validate())

	req = PlanningRequest{Year: 2026, Month: 0, Filter: employee.RosterFilter{Search: strings.Repeat("a", 101)}}
	var verrs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &verrs)
	assert.Len(t, verrs, 2)
}
