package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/calendar"
)

// CalendarJobs keeps the monthly statistics cache warm.
type CalendarJobs struct {
	calendarService calendar.CalendarService
	location        *time.Location
	now             func() time.Time
}

func NewCalendarJobs(calendarService calendar.CalendarService, location *time.Location) *CalendarJobs {
	if location == nil {
		location = time.UTC
	}
	return &CalendarJobs{
		calendarService: calendarService,
		location:        location,
		now:             time.Now,
	}
}

func (j *CalendarJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("refresh_monthly_stats", interval, j.RefreshMonthlyStats)
}

// RefreshMonthlyStats recomputes the current month for every active employee.
// Within the first three days of a month the previous month is refreshed too,
// so late punches are picked up.
func (j *CalendarJobs) RefreshMonthlyStats(ctx context.Context) error {
	now := j.now().In(j.location)

	months := []time.Time{now}
	if now.Day() <= 3 {
		months = append(months, now.AddDate(0, 0, -now.Day()))
	}

	for _, m := range months {
		result, err := j.calendarService.RefreshMonthlyStats(ctx, m.Year(), int(m.Month()))
		if err != nil {
			return err
		}
		slog.Info("Cron: monthly stats refreshed",
			"year", result.Year,
			"month", result.Month,
			"employees", result.Employees,
			"failed", result.Failed,
		)
	}
	return nil
}
