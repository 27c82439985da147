package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

const attendanceSelect = `
	SELECT a.id::text, a.user_id::text, COALESCE(u.first_name || ' ' || u.last_name, ''),
		   a.date, a.check_in, a.check_out, UPPER(COALESCE(a.status, '')), a.notes
	FROM attendances a
	LEFT JOIN users u ON u.id = a.user_id
`

// GetAttendance implements attendance.Source.
func (r *attendanceRepositoryImpl) GetAttendance(ctx context.Context, employeeID string, dateRange *attendance.DateRange) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + ` WHERE a.user_id::text = $1`
	args := []any{employeeID}
	if dateRange != nil {
		query += ` AND a.date BETWEEN $2::date AND $3::date`
		args = append(args, dateRange.Start, dateRange.End)
	}
	query += ` ORDER BY a.date, a.id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance for employee %s: %w", employeeID, err)
	}
	return scanAttendance(rows)
}

// ListAttendance implements attendance.Source.
func (r *attendanceRepositoryImpl) ListAttendance(ctx context.Context, dateRange *attendance.DateRange) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect
	var args []any
	if dateRange != nil {
		query += ` WHERE a.date BETWEEN $1::date AND $2::date`
		args = append(args, dateRange.Start, dateRange.End)
	}
	query += ` ORDER BY a.date, a.id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return scanAttendance(rows)
}

func scanAttendance(rows pgx.Rows) ([]attendance.Record, error) {
	defer rows.Close()

	records := []attendance.Record{}
	for rows.Next() {
		var (
			rec      attendance.Record
			date     pgtype.Date
			checkIn  pgtype.Time
			checkOut pgtype.Time
			status   string
			notes    pgtype.Text
		)
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &date, &checkIn, &checkOut, &status, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		rec.Date = dateString(date)
		rec.CheckInTime = clockPtr(checkIn)
		rec.CheckOutTime = clockPtr(checkOut)
		rec.Status = attendance.Status(status)
		rec.Notes = textPtr(notes)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}
	return records, nil
}

func NewAttendanceRepository(db *database.DB) attendance.Source {
	return &attendanceRepositoryImpl{db: db}
}
