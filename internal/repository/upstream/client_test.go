package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestServer(t *testing.T, routes map[string]string) (*Client, *[]*http.Request) {
	t.Helper()
	var seen []*http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r)
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/api/", oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "svc-token", TokenType: "Bearer"}), 2*time.Second), &seen
}

func TestGetAttendanceDecodesBothEncodings(t *testing.T) {
	client, seen := newTestServer(t, map[string]string{
		"/api/attendances/user/7/range": `[
			{"id": 1, "userId": 7, "userName": "Alice Martin", "date": [2026, 3, 2], "checkIn": [9, 5, 0], "checkOut": "17:30:00", "status": "PRESENT"},
			{"id": "2", "userId": "7", "date": "2026-03-03T00:00:00", "checkInTime": "08:45", "status": "late"},
			{"id": 3, "userId": 7, "date": "2026-04-01", "status": "PRESENT"},
			{"id": 4, "userId": 8, "date": "2026-03-02", "status": "PRESENT"}
		]`,
	})

	records, err := client.GetAttendance(context.Background(), "7", &attendance.DateRange{Start: "2026-03-01", End: "2026-03-31"})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "1", records[0].ID)
	assert.Equal(t, "2026-03-02", records[0].Date)
	require.NotNil(t, records[0].CheckInTime)
	assert.Equal(t, "09:05", *records[0].CheckInTime)
	require.NotNil(t, records[0].CheckOutTime)
	assert.Equal(t, "17:30", *records[0].CheckOutTime)

	assert.Equal(t, "2026-03-03", records[1].Date)
	assert.Equal(t, attendance.StatusLate, records[1].Status)
	require.NotNil(t, records[1].CheckInTime)
	assert.Equal(t, "08:45", *records[1].CheckInTime)
	assert.Nil(t, records[1].CheckOutTime)

	require.Len(t, *seen, 1)
	req := (*seen)[0]
	assert.Equal(t, "Bearer svc-token", req.Header.Get("Authorization"))
	assert.Equal(t, "2026-03-01", req.URL.Query().Get("startDate"))
	assert.Equal(t, "2026-03-31", req.URL.Query().Get("endDate"))
}

func TestGetAttendanceDecodesLocalTimeWithNanos(t *testing.T) {
	client, _ := newTestServer(t, map[string]string{
		"/api/attendances/user/7/range": `[
			{"id": 5, "userId": 7, "date": [2026, 3, 4], "checkIn": [9, 0, 12, 345000000], "checkOut": [17, 30, 1, 5000], "status": "PRESENT"}
		]`,
	})

	records, err := client.GetAttendance(context.Background(), "7", &attendance.DateRange{Start: "2026-03-01", End: "2026-03-31"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].CheckInTime)
	assert.Equal(t, "09:00", *records[0].CheckInTime)
	require.NotNil(t, records[0].CheckOutTime)
	assert.Equal(t, "17:30", *records[0].CheckOutTime)
}

func TestListAttendanceFiltersRange(t *testing.T) {
	client, _ := newTestServer(t, map[string]string{
		"/api/attendances": `[
			{"id": 1, "userId": 7, "date": "2026-03-02", "status": "PRESENT"},
			{"id": 2, "userId": 8, "date": "2026-02-27", "status": "PRESENT"},
			{"id": 3, "userId": 8, "date": null, "status": "PRESENT"}
		]`,
	})

	records, err := client.ListAttendance(context.Background(), &attendance.DateRange{Start: "2026-03-01", End: "2026-03-31"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "7", records[0].EmployeeID)
}

func TestGetLeaveIntervalsRoutesByFilter(t *testing.T) {
	client, seen := newTestServer(t, map[string]string{
		"/api/leave-requests/user/7": `[
			{"id": 10, "userId": 7, "startDate": [2026, 3, 10], "endDate": [2026, 3, 14], "leaveType": "SICK_LEAVE", "status": "APPROVED"},
			{"id": 11, "userId": 7, "startDate": "2026-03-20", "endDate": "2026-03-21", "leaveType": "PAID_LEAVE", "status": "PENDING"}
		]`,
		"/api/leave-requests/pending": `[{"id": 11, "userId": 7, "startDate": "2026-03-20", "endDate": "2026-03-21", "leaveType": "PAID_LEAVE", "status": "PENDING"}]`,
	})
	ctx := context.Background()

	id := "7"
	approved := leave.StatusApproved
	intervals, err := client.GetLeaveIntervals(ctx, leave.Filter{EmployeeID: &id, Status: &approved})
	require.NoError(t, err)
	require.Len(t, intervals, 1)
	assert.Equal(t, "2026-03-10", intervals[0].StartDate)
	assert.Equal(t, leave.TypeSick, intervals[0].LeaveType)

	pending := leave.StatusPending
	intervals, err = client.GetLeaveIntervals(ctx, leave.Filter{Status: &pending})
	require.NoError(t, err)
	require.Len(t, intervals, 1)
	assert.Equal(t, "/api/leave-requests/pending", (*seen)[1].URL.Path)
}

func TestEmployees(t *testing.T) {
	client, _ := newTestServer(t, map[string]string{
		"/api/users":   `[{"id": 7, "firstName": "Alice", "lastName": "Martin", "department": "Sales", "role": "employee", "active": true}, {"id": 8, "firstName": "Bruno", "active": false}]`,
		"/api/users/7": `{"id": 7, "firstName": "Alice", "lastName": "Martin", "email": "alice@x.test"}`,
	})
	ctx := context.Background()

	list, err := client.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "EMPLOYEE", list[0].Role)
	assert.False(t, list[1].Active)

	emp, err := client.GetEmployee(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, "Alice Martin", emp.FullName())
	assert.True(t, emp.Active)

	_, err = client.GetEmployee(ctx, "99")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpstreamErrorMapping(t *testing.T) {
	statuses := map[string]int{
		"/users/unauthorized": http.StatusUnauthorized,
		"/users/forbidden":    http.StatusForbidden,
		"/users/broken":       http.StatusInternalServerError,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(statuses[r.URL.Path])
	}))
	defer srv.Close()
	client := NewClient(srv.URL, nil, time.Second)
	ctx := context.Background()

	_, err := client.GetEmployee(ctx, "unauthorized")
	assert.ErrorIs(t, err, calendar.ErrUpstreamUnauthorized)
	_, err = client.GetEmployee(ctx, "forbidden")
	assert.ErrorIs(t, err, calendar.ErrUpstreamUnauthorized)
	_, err = client.GetEmployee(ctx, "broken")
	assert.ErrorIs(t, err, calendar.ErrUpstreamUnavailable)

	down := NewClient("http://127.0.0.1:1", nil, time.Second)
	_, err = down.ListEmployees(ctx)
	assert.ErrorIs(t, err, calendar.ErrUpstreamUnavailable)
}
