package calendar

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/cache"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/datetime"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/jwt"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
)

const defaultWorkers = 4

type CalendarServiceImpl struct {
	attendanceSource attendance.Source
	leaveSource      leave.Source
	employeeSource   employee.Source
	cache            *cache.Cache
	location         *time.Location
	now              func() time.Time
	workers          int
}

type Option func(*CalendarServiceImpl)

// WithClock overrides the time source used to determine "today".
func WithClock(now func() time.Time) Option {
	return func(s *CalendarServiceImpl) { s.now = now }
}

// WithWorkers bounds the parallelism of RefreshMonthlyStats.
func WithWorkers(n int) Option {
	return func(s *CalendarServiceImpl) {
		if n > 0 {
			s.workers = n
		}
	}
}

func NewCalendarService(
	attendanceSource attendance.Source,
	leaveSource leave.Source,
	employeeSource employee.Source,
	cache *cache.Cache,
	location *time.Location,
	opts ...Option,
) calendar.CalendarService {
	if location == nil {
		location = time.UTC
	}
	s := &CalendarServiceImpl{
		attendanceSource: attendanceSource,
		leaveSource:      leaveSource,
		employeeSource:   employeeSource,
		cache:            cache,
		location:         location,
		now:              time.Now,
		workers:          defaultWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *CalendarServiceImpl) today() string {
	return datetime.Today(s.now(), s.location)
}

// GetMyCalendar implements calendar.CalendarService.
func (s *CalendarServiceImpl) GetMyCalendar(ctx context.Context, year, month int) (calendar.MonthlyCalendarResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return calendar.MonthlyCalendarResponse{}, err
	}
	return s.GetMonthlyCalendar(ctx, calendar.MonthRequest{EmployeeID: claims.UserID, Year: year, Month: month})
}

// GetMonthlyCalendar implements calendar.CalendarService.
func (s *CalendarServiceImpl) GetMonthlyCalendar(ctx context.Context, req calendar.MonthRequest) (calendar.MonthlyCalendarResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.MonthlyCalendarResponse{}, err
	}

	today := s.today()
	key := s.cache.Key(ctx, "calendar", "month", req.EmployeeID, monthKey(req.Year, req.Month), today)

	var resp calendar.MonthlyCalendarResponse
	err := s.cache.FetchJSON(ctx, key, &resp, func(ctx context.Context) (any, error) {
		data, err := s.loadEmployeeMonth(ctx, req.EmployeeID, req.Year, req.Month, true)
		if err != nil {
			return nil, err
		}
		return calendar.MonthlyCalendarResponse{
			Employee: employeeRef(data.employee),
			Year:     req.Year,
			Month:    req.Month,
			Today:    today,
			Days:     BuildMonth(req.EmployeeID, req.Year, req.Month, today, data.records, data.leaves),
			Stats:    ComputeMonthlyStats(req.EmployeeID, req.Year, req.Month, data.records, data.leaves),
		}, nil
	})
	if err != nil {
		return calendar.MonthlyCalendarResponse{}, err
	}
	return resp, nil
}

// GetMonthlyStats implements calendar.CalendarService.
func (s *CalendarServiceImpl) GetMonthlyStats(ctx context.Context, req calendar.MonthRequest) (calendar.MonthlyStatsResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.MonthlyStatsResponse{}, err
	}

	var resp calendar.MonthlyStatsResponse
	err := s.cache.FetchJSON(ctx, s.statsKey(ctx, req.EmployeeID, req.Year, req.Month), &resp, func(ctx context.Context) (any, error) {
		data, err := s.loadEmployeeMonth(ctx, req.EmployeeID, req.Year, req.Month, true)
		if err != nil {
			return nil, err
		}
		return statsResponse(req.EmployeeID, req.Year, req.Month, data), nil
	})
	if err != nil {
		return calendar.MonthlyStatsResponse{}, err
	}
	return resp, nil
}

// GetLeavePlanning implements calendar.CalendarService.
func (s *CalendarServiceImpl) GetLeavePlanning(ctx context.Context, req calendar.PlanningRequest) (calendar.LeaveGrid, error) {
	if err := req.Validate(); err != nil {
		return calendar.LeaveGrid{}, err
	}

	today := s.today()
	key := s.cache.Key(ctx, "planning", "leaves", monthKey(req.Year, req.Month), today, filterKey(req.Filter))

	var grid calendar.LeaveGrid
	err := s.cache.FetchJSON(ctx, key, &grid, func(ctx context.Context) (any, error) {
		data, err := s.loadTeam(ctx, nil)
		if err != nil {
			return nil, err
		}
		filtered := req.Filter.Apply(data.roster)
		return BuildLeaveGrid(req.Year, req.Month, today, data.roster, filtered, data.leaves), nil
	})
	if err != nil {
		return calendar.LeaveGrid{}, err
	}
	return grid, nil
}

// GetOnLeaveToday implements calendar.CalendarService.
func (s *CalendarServiceImpl) GetOnLeaveToday(ctx context.Context, filter employee.RosterFilter) (calendar.OnLeaveTodayResponse, error) {
	today := s.today()
	data, err := s.loadTeam(ctx, nil)
	if err != nil {
		return calendar.OnLeaveTodayResponse{}, err
	}
	return calendar.OnLeaveTodayResponse{
		Date:    today,
		Entries: OnLeaveOn(today, filter.Apply(data.roster), data.leaves),
	}, nil
}

// GetAttendancePlanning implements calendar.CalendarService.
func (s *CalendarServiceImpl) GetAttendancePlanning(ctx context.Context, req calendar.PlanningRequest) (calendar.AttendanceGrid, error) {
	if err := req.Validate(); err != nil {
		return calendar.AttendanceGrid{}, err
	}

	today := s.today()
	key := s.cache.Key(ctx, "planning", "attendance", monthKey(req.Year, req.Month), today, filterKey(req.Filter))

	var grid calendar.AttendanceGrid
	err := s.cache.FetchJSON(ctx, key, &grid, func(ctx context.Context) (any, error) {
		first, last := datetime.MonthBounds(req.Year, timeMonth(req.Month))
		data, err := s.loadTeam(ctx, &attendance.DateRange{Start: first, End: last})
		if err != nil {
			return nil, err
		}
		filtered := req.Filter.Apply(data.roster)
		return BuildAttendanceGrid(req.Year, req.Month, today, data.roster, filtered, data.records, data.leaves), nil
	})
	if err != nil {
		return calendar.AttendanceGrid{}, err
	}
	return grid, nil
}

// ExportLeavePlanning implements calendar.CalendarService.
func (s *CalendarServiceImpl) ExportLeavePlanning(ctx context.Context, req calendar.PlanningRequest) (*bytes.Buffer, string, error) {
	grid, err := s.GetLeavePlanning(ctx, req)
	if err != nil {
		return nil, "", err
	}
	buf, err := leaveGridWorkbook(grid)
	if err != nil {
		slog.Error("Failed to build leave planning workbook", "error", err)
		return nil, "", err
	}
	return buf, exportFilename("leave", req.Year, req.Month), nil
}

// ExportAttendancePlanning implements calendar.CalendarService.
func (s *CalendarServiceImpl) ExportAttendancePlanning(ctx context.Context, req calendar.PlanningRequest) (*bytes.Buffer, string, error) {
	grid, err := s.GetAttendancePlanning(ctx, req)
	if err != nil {
		return nil, "", err
	}
	buf, err := attendanceGridWorkbook(grid)
	if err != nil {
		slog.Error("Failed to build attendance planning workbook", "error", err)
		return nil, "", err
	}
	return buf, exportFilename("attendance", req.Year, req.Month), nil
}

// RefreshMonthlyStats implements calendar.CalendarService. Each active
// employee is loaded and aggregated independently; one failure does not stop
// the others.
func (s *CalendarServiceImpl) RefreshMonthlyStats(ctx context.Context, year, month int) (calendar.RefreshResult, error) {
	result := calendar.RefreshResult{Year: year, Month: month}
	if errs := (&calendar.PlanningRequest{Year: year, Month: month}).Validate(); errs != nil {
		return result, errs
	}

	roster, err := s.employeeSource.ListEmployees(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to list employees: %w", err)
	}
	active := employee.RosterFilter{ActiveOnly: true}.Apply(roster)
	result.Employees = len(active)

	var failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(s.workers)
	for _, e := range active {
		g.Go(func() error {
			if ctx.Err() != nil {
				failed.Add(1)
				return nil
			}
			data, err := s.loadEmployeeMonth(ctx, e.ID, year, month, false)
			if err != nil {
				failed.Add(1)
				slog.Warn("Failed to load monthly stats", "employee_id", e.ID, "error", err)
				return nil
			}
			data.employee = e
			if err := s.cache.Store(ctx, s.statsKey(ctx, e.ID, year, month), statsResponse(e.ID, year, month, data)); err != nil {
				failed.Add(1)
				slog.Warn("Failed to store monthly stats", "employee_id", e.ID, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()

	result.Failed = int(failed.Load())
	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

type employeeMonth struct {
	employee employee.Employee
	records  []attendance.Record
	leaves   []leave.Interval
}

// loadEmployeeMonth fetches attendance and approved leave for one employee
// concurrently, plus the employee itself when withEmployee is set.
func (s *CalendarServiceImpl) loadEmployeeMonth(ctx context.Context, employeeID string, year, month int, withEmployee bool) (employeeMonth, error) {
	first, last := datetime.MonthBounds(year, timeMonth(month))
	approved := leave.StatusApproved

	var data employeeMonth
	g, gctx := errgroup.WithContext(ctx)
	if withEmployee {
		g.Go(func() error {
			e, err := s.employeeSource.GetEmployee(gctx, employeeID)
			if err != nil {
				return fmt.Errorf("failed to get employee: %w", err)
			}
			data.employee = e
			return nil
		})
	}
	g.Go(func() error {
		records, err := s.attendanceSource.GetAttendance(gctx, employeeID, &attendance.DateRange{Start: first, End: last})
		if err != nil {
			return fmt.Errorf("failed to get attendance: %w", err)
		}
		data.records = records
		return nil
	})
	g.Go(func() error {
		leaves, err := s.leaveSource.GetLeaveIntervals(gctx, leave.Filter{EmployeeID: &employeeID, Status: &approved})
		if err != nil {
			return fmt.Errorf("failed to get leave intervals: %w", err)
		}
		data.leaves = leaves
		return nil
	})
	if err := g.Wait(); err != nil {
		return employeeMonth{}, err
	}
	return data, nil
}

type teamData struct {
	roster  []employee.Employee
	records []attendance.Record
	leaves  []leave.Interval
}

// loadTeam fetches the roster and every approved leave concurrently, plus the
// attendance of everyone within dateRange when it is set.
func (s *CalendarServiceImpl) loadTeam(ctx context.Context, dateRange *attendance.DateRange) (teamData, error) {
	approved := leave.StatusApproved

	var data teamData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		roster, err := s.employeeSource.ListEmployees(gctx)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		data.roster = roster
		return nil
	})
	g.Go(func() error {
		leaves, err := s.leaveSource.GetLeaveIntervals(gctx, leave.Filter{Status: &approved})
		if err != nil {
			return fmt.Errorf("failed to get leave intervals: %w", err)
		}
		data.leaves = leaves
		return nil
	})
	if dateRange != nil {
		g.Go(func() error {
			records, err := s.attendanceSource.ListAttendance(gctx, dateRange)
			if err != nil {
				return fmt.Errorf("failed to list attendance: %w", err)
			}
			data.records = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return teamData{}, err
	}
	return data, nil
}

func (s *CalendarServiceImpl) statsKey(ctx context.Context, employeeID string, year, month int) string {
	return s.cache.Key(ctx, "calendar", "stats", employeeID, monthKey(year, month))
}

func statsResponse(employeeID string, year, month int, data employeeMonth) calendar.MonthlyStatsResponse {
	return calendar.MonthlyStatsResponse{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
		Stats:      ComputeMonthlyStats(employeeID, year, month, data.records, data.leaves),
	}
}

func monthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

func filterKey(f employee.RosterFilter) string {
	return strings.Join([]string{
		cases.Fold().String(strings.TrimSpace(f.Search)),
		f.Department,
		strconv.FormatBool(f.ActiveOnly),
	}, "|")
}
