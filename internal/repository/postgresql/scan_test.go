package postgresql

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateString(t *testing.T) {
	assert.Equal(t, "", dateString(pgtype.Date{}))
	assert.Equal(t, "2026-03-02", dateString(pgtype.Date{Time: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), Valid: true}))
}

func TestClockPtr(t *testing.T) {
	assert.Nil(t, clockPtr(pgtype.Time{}))

	got := clockPtr(pgtype.Time{Microseconds: int64((9*time.Hour + 5*time.Minute + 30*time.Second) / time.Microsecond), Valid: true})
	require.NotNil(t, got)
	assert.Equal(t, "09:05", *got)
}

func TestTextPtr(t *testing.T) {
	assert.Nil(t, textPtr(pgtype.Text{}))
	got := textPtr(pgtype.Text{String: "late train", Valid: true})
	require.NotNil(t, got)
	assert.Equal(t, "late train", *got)
}
