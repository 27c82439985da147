package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgtype"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

// GetLeaveIntervals implements leave.Source.
func (r *leaveRequestRepositoryImpl) GetLeaveIntervals(ctx context.Context, filter leave.Filter) ([]leave.Interval, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []any
	)
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("lr.user_id::text = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conditions = append(conditions, fmt.Sprintf("UPPER(lr.status) = $%d", len(args)))
	}

	query := `
		SELECT lr.id::text, lr.user_id::text, COALESCE(u.first_name || ' ' || u.last_name, ''),
			   lr.start_date, lr.end_date, UPPER(COALESCE(lr.leave_type, '')), UPPER(COALESCE(lr.status, '')), lr.reason
		FROM leave_requests lr
		LEFT JOIN users u ON u.id = lr.user_id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY lr.start_date, lr.id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	intervals := []leave.Interval{}
	for rows.Next() {
		var (
			in         leave.Interval
			start, end pgtype.Date
			leaveType  string
			status     string
			reason     pgtype.Text
		)
		if err := rows.Scan(&in.ID, &in.EmployeeID, &in.EmployeeName, &start, &end, &leaveType, &status, &reason); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		in.StartDate = dateString(start)
		in.EndDate = dateString(end)
		in.LeaveType = leave.LeaveType(leaveType)
		in.Status = leave.Status(status)
		in.Reason = textPtr(reason)
		intervals = append(intervals, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}
	return intervals, nil
}

func NewLeaveRequestRepository(db *database.DB) leave.Source {
	return &leaveRequestRepositoryImpl{db: db}
}
