package postgresql

import (
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/datetime"
	"github.com/jackc/pgx/v5/pgtype"
)

func dateString(d pgtype.Date) string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(datetime.DateLayout)
}

// clockPtr converts a TIME column into HH:MM, nil when NULL.
func clockPtr(t pgtype.Time) *string {
	if !t.Valid {
		return nil
	}
	minutes := t.Microseconds / 60_000_000
	s, ok := datetime.NormalizeTime([]int{int(minutes / 60), int(minutes % 60)})
	if !ok {
		return nil
	}
	return &s
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}
