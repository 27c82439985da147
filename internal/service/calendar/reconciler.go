package calendar

import (
	"math"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/datetime"
)

// employeeDays is one employee's attendance and approved leave, indexed for
// per-day lookup.
type employeeDays struct {
	records map[string]attendance.Record
	leaves  []leave.Interval
}

// indexEmployee keeps the records and approved intervals belonging to
// employeeID. Records without a date are dropped and the first record of a
// day wins.
func indexEmployee(employeeID string, records []attendance.Record, leaves []leave.Interval) employeeDays {
	idx := employeeDays{records: make(map[string]attendance.Record)}
	for _, r := range records {
		if r.EmployeeID != employeeID || r.Date == "" {
			continue
		}
		if _, seen := idx.records[r.Date]; seen {
			continue
		}
		idx.records[r.Date] = r
	}
	for _, l := range leaves {
		if l.EmployeeID != employeeID || !l.IsApproved() {
			continue
		}
		idx.leaves = append(idx.leaves, l)
	}
	return idx
}

// leaveOn returns the first approved interval covering date.
func (d employeeDays) leaveOn(date string) (leave.Interval, bool) {
	for _, l := range d.leaves {
		if l.Covers(date) {
			return l, true
		}
	}
	return leave.Interval{}, false
}

func (d employeeDays) resolve(date, today string) calendar.Day {
	day := calendar.Day{
		Date:      date,
		IsToday:   date == today,
		IsFuture:  date > today,
		IsWeekend: datetime.IsWeekend(date),
	}
	if day.IsFuture {
		day.Status = calendar.StatusFuture
		return day
	}

	rec, hasRecord := d.records[date]
	if hasRecord {
		day.CheckInTime = rec.CheckInTime
		day.CheckOutTime = rec.CheckOutTime
		if hours, ok := WorkedHours(rec); ok {
			rounded := roundOneDecimal(hours)
			day.WorkedHours = &rounded
		}
	}

	if day.IsWeekend {
		day.Status = calendar.StatusWeekend
		return day
	}
	if l, ok := d.leaveOn(date); ok {
		lt := l.LeaveType
		day.Status = calendar.StatusOnLeave
		day.LeaveType = &lt
		return day
	}
	if hasRecord {
		day.Status = attendanceStatus(rec)
		return day
	}
	day.Status = calendar.StatusNoData
	return day
}

func attendanceStatus(rec attendance.Record) calendar.ResolvedStatus {
	switch rec.Status {
	case attendance.StatusRemote:
		return calendar.StatusRemote
	case attendance.StatusHalfDay:
		return calendar.StatusHalfDay
	case attendance.StatusLate:
		return calendar.StatusLate
	case attendance.StatusPresent:
		return calendar.StatusPresent
	case attendance.StatusAbsent:
		return calendar.StatusAbsent
	}
	if rec.CheckInTime != nil {
		return calendar.StatusPresent
	}
	return calendar.StatusNoData
}

// ResolveDay resolves the status of employeeID on date. today is the current
// canonical date; records and leaves may contain other employees' data.
func ResolveDay(employeeID, date, today string, records []attendance.Record, leaves []leave.Interval) calendar.Day {
	return indexEmployee(employeeID, records, leaves).resolve(date, today)
}

// BuildMonth resolves every day of the month for employeeID.
func BuildMonth(employeeID string, year, month int, today string, records []attendance.Record, leaves []leave.Interval) []calendar.Day {
	idx := indexEmployee(employeeID, records, leaves)
	dates := datetime.MonthDays(year, timeMonth(month))
	days := make([]calendar.Day, 0, len(dates))
	for _, date := range dates {
		days = append(days, idx.resolve(date, today))
	}
	return days
}

// WorkedHours returns checkOut minus checkIn in fractional hours. It reports
// false when a time is missing or the difference is negative.
func WorkedHours(rec attendance.Record) (float64, bool) {
	if !rec.HasBothTimes() {
		return 0, false
	}
	in, ok := datetime.Minutes(*rec.CheckInTime)
	if !ok {
		return 0, false
	}
	out, ok := datetime.Minutes(*rec.CheckOutTime)
	if !ok {
		return 0, false
	}
	diff := out - in
	if diff < 0 {
		return 0, false
	}
	return float64(diff) / 60, true
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
