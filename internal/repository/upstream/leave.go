package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/leave"
)

func (c *Client) GetLeaveIntervals(ctx context.Context, filter leave.Filter) ([]leave.Interval, error) {
	path := "/leave-requests"
	switch {
	case filter.EmployeeID != nil:
		path = "/leave-requests/user/" + url.PathEscape(*filter.EmployeeID)
	case filter.Status != nil && *filter.Status == leave.StatusPending:
		path = "/leave-requests/pending"
	}

	var payload []leaveDTO
	if err := c.getJSON(ctx, path, nil, &payload); err != nil {
		if errors.Is(err, errNotFound) {
			return []leave.Interval{}, nil
		}
		return nil, fmt.Errorf("failed to get leave requests: %w", err)
	}

	intervals := make([]leave.Interval, 0, len(payload))
	for _, p := range payload {
		interval := p.toInterval()
		if interval.EmployeeID == "" && filter.EmployeeID != nil {
			interval.EmployeeID = *filter.EmployeeID
		}
		if filter.Matches(interval) {
			intervals = append(intervals, interval)
		}
	}
	return intervals, nil
}
