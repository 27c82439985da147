package calendar

import (
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/datetime"
)

func employeeRef(e employee.Employee) calendar.EmployeeRef {
	return calendar.EmployeeRef{
		ID:         e.ID,
		Name:       e.FullName(),
		Position:   e.Position,
		Department: e.Department,
	}
}

func groupRecords(records []attendance.Record) map[string][]attendance.Record {
	out := make(map[string][]attendance.Record)
	for _, r := range records {
		out[r.EmployeeID] = append(out[r.EmployeeID], r)
	}
	return out
}

func groupLeaves(leaves []leave.Interval) map[string][]leave.Interval {
	out := make(map[string][]leave.Interval)
	for _, l := range leaves {
		if l.IsApproved() {
			out[l.EmployeeID] = append(out[l.EmployeeID], l)
		}
	}
	return out
}

func countApproved(leaves []leave.Interval) int {
	n := 0
	for _, l := range leaves {
		if l.IsApproved() {
			n++
		}
	}
	return n
}

func countActive(roster []employee.Employee) int {
	n := 0
	for _, e := range roster {
		if e.Active {
			n++
		}
	}
	return n
}

// BuildLeaveGrid tags each (employee, day) of the month with the approved
// leave covering it. roster is the full roster, filtered the rows to render.
func BuildLeaveGrid(year, month int, today string, roster, filtered []employee.Employee, leaves []leave.Interval) calendar.LeaveGrid {
	dates := datetime.MonthDays(year, timeMonth(month))
	leavesBy := groupLeaves(leaves)

	grid := calendar.LeaveGrid{
		Year:        year,
		Month:       month,
		Today:       today,
		Days:        dates,
		Rows:        make([]calendar.LeaveRow, 0, len(filtered)),
		Departments: employee.Departments(roster),
	}

	onLeaveToday := 0
	for _, e := range filtered {
		idx := employeeDays{leaves: leavesBy[e.ID]}
		row := calendar.LeaveRow{
			Employee: employeeRef(e),
			Cells:    make([]calendar.LeaveCell, 0, len(dates)),
		}
		for _, date := range dates {
			cell := calendar.LeaveCell{
				Date:      date,
				IsWeekend: datetime.IsWeekend(date),
				IsToday:   date == today,
			}
			if l, ok := idx.leaveOn(date); ok {
				lt := l.LeaveType
				cell.LeaveID = l.ID
				cell.LeaveType = &lt
				cell.ShortLabel = lt.ShortLabel()
				cell.StartDate = l.StartDate
				cell.EndDate = l.EndDate
			}
			row.Cells = append(row.Cells, cell)
		}
		if _, ok := idx.leaveOn(today); ok {
			onLeaveToday++
		}
		grid.Rows = append(grid.Rows, row)
	}

	grid.Summary = calendar.LeaveSummary{
		ActiveEmployees: countActive(roster),
		OnLeaveToday:    onLeaveToday,
		AvailableToday:  len(filtered) - onLeaveToday,
		ApprovedLeaves:  countApproved(leaves),
	}
	return grid
}

// OnLeaveOn lists the employees covered by an approved leave on date, in
// roster order.
func OnLeaveOn(date string, employees []employee.Employee, leaves []leave.Interval) []calendar.OnLeaveEntry {
	leavesBy := groupLeaves(leaves)
	entries := make([]calendar.OnLeaveEntry, 0)
	for _, e := range employees {
		idx := employeeDays{leaves: leavesBy[e.ID]}
		l, ok := idx.leaveOn(date)
		if !ok {
			continue
		}
		entries = append(entries, calendar.OnLeaveEntry{
			Employee:   employeeRef(e),
			LeaveID:    l.ID,
			LeaveType:  l.LeaveType,
			ShortLabel: l.LeaveType.ShortLabel(),
			StartDate:  l.StartDate,
			EndDate:    l.EndDate,
		})
	}
	return entries
}

// BuildAttendanceGrid resolves every (employee, day) of the month with the
// same precedence as the individual calendar.
func BuildAttendanceGrid(year, month int, today string, roster, filtered []employee.Employee, records []attendance.Record, leaves []leave.Interval) calendar.AttendanceGrid {
	dates := datetime.MonthDays(year, timeMonth(month))
	first, last := datetime.MonthBounds(year, timeMonth(month))
	recordsBy := groupRecords(records)
	leavesBy := groupLeaves(leaves)

	grid := calendar.AttendanceGrid{
		Year:        year,
		Month:       month,
		Today:       today,
		Days:        dates,
		Rows:        make([]calendar.AttendanceRow, 0, len(filtered)),
		Departments: employee.Departments(roster),
	}
	summary := calendar.AttendanceSummary{TotalEmployees: len(filtered)}

	for _, e := range filtered {
		idx := indexEmployee(e.ID, recordsBy[e.ID], leavesBy[e.ID])
		row := calendar.AttendanceRow{
			Employee: employeeRef(e),
			Cells:    make([]calendar.Day, 0, len(dates)),
		}
		for _, date := range dates {
			row.Cells = append(row.Cells, idx.resolve(date, today))
		}
		grid.Rows = append(grid.Rows, row)

		for date, rec := range idx.records {
			if date == today {
				switch rec.Status {
				case attendance.StatusPresent:
					summary.PresentToday++
				case attendance.StatusAbsent:
					summary.AbsentToday++
				}
			}
			if date >= first && date <= last && rec.Status == attendance.StatusPresent {
				summary.TotalPresencesMonth++
			}
		}
	}

	grid.Summary = summary
	return grid
}
