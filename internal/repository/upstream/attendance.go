package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/attendance"
)

func (c *Client) GetAttendance(ctx context.Context, employeeID string, dateRange *attendance.DateRange) ([]attendance.Record, error) {
	path := "/attendances/user/" + url.PathEscape(employeeID)
	var query url.Values
	if dateRange != nil {
		path += "/range"
		query = url.Values{
			"startDate": {dateRange.Start},
			"endDate":   {dateRange.End},
		}
	}

	records, err := c.fetchAttendance(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance for employee %s: %w", employeeID, err)
	}

	result := make([]attendance.Record, 0, len(records))
	for _, r := range records {
		if r.EmployeeID != "" && r.EmployeeID != employeeID {
			continue
		}
		if r.EmployeeID == "" {
			r.EmployeeID = employeeID
		}
		if dateRange.Contains(r.Date) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (c *Client) ListAttendance(ctx context.Context, dateRange *attendance.DateRange) ([]attendance.Record, error) {
	records, err := c.fetchAttendance(ctx, "/attendances", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	result := make([]attendance.Record, 0, len(records))
	for _, r := range records {
		if dateRange.Contains(r.Date) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (c *Client) fetchAttendance(ctx context.Context, path string, query url.Values) ([]attendance.Record, error) {
	var payload []attendanceDTO
	if err := c.getJSON(ctx, path, query, &payload); err != nil {
		if errors.Is(err, errNotFound) {
			return []attendance.Record{}, nil
		}
		return nil, err
	}

	records := make([]attendance.Record, 0, len(payload))
	for _, p := range payload {
		records = append(records, p.toRecord())
	}
	return records, nil
}
