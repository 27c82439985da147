package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateRange(t *testing.T) {
	r := &DateRange{Start: "2026-03-01", End: "2026-03-31"}

	assert.NoError(t, r.Validate())
	assert.True(t, r.Contains("2026-03-01"))
	assert.True(t, r.Contains("2026-03-31"))
	assert.False(t, r.Contains("2026-04-01"))
	assert.False(t, r.Contains(""))

	var open *DateRange
	assert.True(t, open.Contains("1999-01-01"))
	assert.NoError(t, open.Validate())

	assert.ErrorIs(t, (&DateRange{Start: "2026-03-31", End: "2026-03-01"}).Validate(), ErrInvalidDateRange)
	assert.ErrorIs(t, (&DateRange{Start: "2026-03-01"}).Validate(), ErrInvalidDateRange)
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, StatusHalfDay.IsValid())
	assert.False(t, Status("").IsValid())
	assert.False(t, Status("present").IsValid())
}
