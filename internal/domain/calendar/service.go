package calendar

import (
	"bytes"
	"context"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/employee"
)

type CalendarService interface {
	// GetMyCalendar resolves the month of the employee identified by the request token.
	GetMyCalendar(ctx context.Context, year, month int) (MonthlyCalendarResponse, error)
	GetMonthlyCalendar(ctx context.Context, req MonthRequest) (MonthlyCalendarResponse, error)
	GetMonthlyStats(ctx context.Context, req MonthRequest) (MonthlyStatsResponse, error)

	GetLeavePlanning(ctx context.Context, req PlanningRequest) (LeaveGrid, error)
	GetOnLeaveToday(ctx context.Context, filter employee.RosterFilter) (OnLeaveTodayResponse, error)
	GetAttendancePlanning(ctx context.Context, req PlanningRequest) (AttendanceGrid, error)

	ExportLeavePlanning(ctx context.Context, req PlanningRequest) (*bytes.Buffer, string, error)
	ExportAttendancePlanning(ctx context.Context, req PlanningRequest) (*bytes.Buffer, string, error)

	// RefreshMonthlyStats recomputes and caches the stats of every active employee.
	RefreshMonthlyStats(ctx context.Context, year, month int) (RefreshResult, error)
}
