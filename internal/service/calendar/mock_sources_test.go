package calendar

import (
	"context"
	"sync"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/leave"
)

// ── in-memory sources ──

type mockAttendanceSource struct {
	mu      sync.Mutex
	records []attendance.Record
	err     error
	calls   int
}

func (m *mockAttendanceSource) GetAttendance(ctx context.Context, employeeID string, dateRange *attendance.DateRange) ([]attendance.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	var out []attendance.Record
	for _, r := range m.records {
		if r.EmployeeID == employeeID && dateRange.Contains(r.Date) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockAttendanceSource) ListAttendance(ctx context.Context, dateRange *attendance.DateRange) ([]attendance.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	var out []attendance.Record
	for _, r := range m.records {
		if dateRange.Contains(r.Date) {
			out = append(out, r)
		}
	}
	return out, nil
}

type mockLeaveSource struct {
	mu        sync.Mutex
	intervals []leave.Interval
	err       error
	calls     int
}

func (m *mockLeaveSource) GetLeaveIntervals(ctx context.Context, filter leave.Filter) ([]leave.Interval, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	var out []leave.Interval
	for _, i := range m.intervals {
		if filter.Matches(i) {
			out = append(out, i)
		}
	}
	return out, nil
}

type mockEmployeeSource struct {
	mu        sync.Mutex
	employees []employee.Employee
	err       error
	failFor   map[string]error
}

func (m *mockEmployeeSource) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]employee.Employee(nil), m.employees...), nil
}

func (m *mockEmployeeSource) GetEmployee(ctx context.Context, id string) (employee.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.failFor[id]; ok {
		return employee.Employee{}, err
	}
	for _, e := range m.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// ── fixtures ──

func strPtr(s string) *string { return &s }

func record(employeeID, date string, status attendance.Status, in, out string) attendance.Record {
	r := attendance.Record{ID: employeeID + "-" + date, EmployeeID: employeeID, Date: date, Status: status}
	if in != "" {
		r.CheckInTime = strPtr(in)
	}
	if out != "" {
		r.CheckOutTime = strPtr(out)
	}
	return r
}

func approvedLeave(id, employeeID, start, end string, t leave.LeaveType) leave.Interval {
	return leave.Interval{ID: id, EmployeeID: employeeID, StartDate: start, EndDate: end, LeaveType: t, Status: leave.StatusApproved}
}
