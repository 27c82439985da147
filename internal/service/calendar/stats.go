package calendar

import (
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/datetime"
)

// ComputeMonthlyStats aggregates employeeID's records and approved leaves for
// the month. absentDays counts every in-month record that is not PRESENT, so
// days without a record never count as absences. Overlapping leaves are
// counted once per interval.
func ComputeMonthlyStats(employeeID string, year, month int, records []attendance.Record, leaves []leave.Interval) calendar.MonthlyStats {
	first, last := datetime.MonthBounds(year, timeMonth(month))
	idx := indexEmployee(employeeID, records, leaves)

	var stats calendar.MonthlyStats
	var totalHours float64
	var hourSamples int

	for date, rec := range idx.records {
		if date < first || date > last {
			continue
		}
		stats.TotalDays++
		if rec.Status == attendance.StatusPresent {
			stats.PresentDays++
		}
		if hours, ok := WorkedHours(rec); ok {
			totalHours += hours
			hourSamples++
		}
	}
	stats.AbsentDays = stats.TotalDays - stats.PresentDays

	for _, l := range idx.leaves {
		stats.LeaveDays += weekdaysInOverlap(l, first, last)
	}

	if hourSamples > 0 {
		stats.AverageHoursPerDay = roundOneDecimal(totalHours / float64(hourSamples))
	}
	return stats
}

// weekdaysInOverlap counts Monday to Friday dates shared by the interval and
// [first, last].
func weekdaysInOverlap(l leave.Interval, first, last string) int {
	if l.StartDate == "" || l.EndDate == "" {
		return 0
	}
	start, end := l.StartDate, l.EndDate
	if start < first {
		start = first
	}
	if end > last {
		end = last
	}
	from, ok := datetime.Parse(start)
	if !ok {
		return 0
	}
	to, ok := datetime.Parse(end)
	if !ok {
		return 0
	}

	count := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

func timeMonth(m int) time.Month {
	return time.Month(m)
}
