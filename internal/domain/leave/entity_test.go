package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to Status
		allowed  bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCancelled, true},
		{StatusApproved, StatusCancelled, true},
		{StatusRejected, StatusCancelled, true},
		{StatusApproved, StatusRejected, false},
		{StatusRejected, StatusApproved, false},
		{StatusApproved, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusApproved, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.allowed, c.from.CanTransitionTo(c.to), "%s -> %s", c.from, c.to)
	}

	next, err := StatusPending.TransitionTo(StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, next)

	_, err = StatusRejected.TransitionTo(StatusApproved)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestIntervalCovers(t *testing.T) {
	i := Interval{StartDate: "2026-03-10", EndDate: "2026-03-14", Status: StatusApproved}

	assert.True(t, i.Covers("2026-03-10"))
	assert.True(t, i.Covers("2026-03-14"))
	assert.False(t, i.Covers("2026-03-09"))
	assert.False(t, i.Covers("2026-03-15"))
	assert.False(t, Interval{EndDate: "2026-03-14"}.Covers("2026-03-12"))
}

func TestShortLabel(t *testing.T) {
	assert.Equal(t, "CP", TypePaid.ShortLabel())
	assert.Equal(t, "Maladie", TypeSick.ShortLabel())
	assert.Equal(t, "CUSTOM", LeaveType("CUSTOM").ShortLabel())
}

func TestFilterMatches(t *testing.T) {
	emp := "u-1"
	approved := StatusApproved
	i := Interval{EmployeeID: "u-1", Status: StatusPending}

	assert.True(t, Filter{}.Matches(i))
	assert.True(t, Filter{EmployeeID: &emp}.Matches(i))
	assert.False(t, Filter{Status: &approved}.Matches(i))
}
