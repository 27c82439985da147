package http

import (
	"net/http"
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-calendar-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CalendarHandler interface {
	GetMyCalendar(w http.ResponseWriter, r *http.Request)
	GetEmployeeCalendar(w http.ResponseWriter, r *http.Request)
	GetEmployeeStats(w http.ResponseWriter, r *http.Request)

	// RefreshStats recomputes the cached monthly stats of every active employee.
	RefreshStats(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService calendar.CalendarService
	location        *time.Location
	now             func() time.Time
}

func NewCalendarHandler(calendarService calendar.CalendarService, location *time.Location) CalendarHandler {
	if location == nil {
		location = time.UTC
	}
	return &calendarHandlerImpl{
		calendarService: calendarService,
		location:        location,
		now:             time.Now,
	}
}

// GetMyCalendar handles GET /calendar/me
func (h *calendarHandlerImpl) GetMyCalendar(w http.ResponseWriter, r *http.Request) {
	year, month, err := monthParams(r, h.now(), h.location)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.calendarService.GetMyCalendar(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{Year: year, Month: month, Today: result.Today})
}

// GetEmployeeCalendar handles GET /calendar/employees/{id}
func (h *calendarHandlerImpl) GetEmployeeCalendar(w http.ResponseWriter, r *http.Request) {
	req, ok := h.monthRequest(w, r)
	if !ok {
		return
	}

	result, err := h.calendarService.GetMonthlyCalendar(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{Year: req.Year, Month: req.Month, Today: result.Today})
}

// GetEmployeeStats handles GET /calendar/employees/{id}/stats
func (h *calendarHandlerImpl) GetEmployeeStats(w http.ResponseWriter, r *http.Request) {
	req, ok := h.monthRequest(w, r)
	if !ok {
		return
	}

	result, err := h.calendarService.GetMonthlyStats(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{Year: req.Year, Month: req.Month})
}

// RefreshStats handles POST /admin/stats/refresh
func (h *calendarHandlerImpl) RefreshStats(w http.ResponseWriter, r *http.Request) {
	year, month, err := monthParams(r, h.now(), h.location)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.calendarService.RefreshMonthlyStats(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Monthly stats refreshed", result)
}

func (h *calendarHandlerImpl) monthRequest(w http.ResponseWriter, r *http.Request) (calendar.MonthRequest, bool) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return calendar.MonthRequest{}, false
	}

	year, month, err := monthParams(r, h.now(), h.location)
	if err != nil {
		response.HandleError(w, err)
		return calendar.MonthRequest{}, false
	}

	return calendar.MonthRequest{EmployeeID: employeeID, Year: year, Month: month}, true
}
