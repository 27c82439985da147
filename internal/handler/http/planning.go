package http

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-calendar-go/internal/handler/http/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PlanningHandler interface {
	GetLeavePlanning(w http.ResponseWriter, r *http.Request)
	GetOnLeaveToday(w http.ResponseWriter, r *http.Request)
	GetAttendancePlanning(w http.ResponseWriter, r *http.Request)

	ExportLeavePlanning(w http.ResponseWriter, r *http.Request)
	ExportAttendancePlanning(w http.ResponseWriter, r *http.Request)
}

type planningHandlerImpl struct {
	calendarService calendar.CalendarService
	location        *time.Location
	now             func() time.Time
}

func NewPlanningHandler(calendarService calendar.CalendarService, location *time.Location) PlanningHandler {
	if location == nil {
		location = time.UTC
	}
	return &planningHandlerImpl{
		calendarService: calendarService,
		location:        location,
		now:             time.Now,
	}
}

// GetLeavePlanning handles GET /planning/leaves
func (h *planningHandlerImpl) GetLeavePlanning(w http.ResponseWriter, r *http.Request) {
	req, err := h.planningRequest(r, false)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	grid, err := h.calendarService.GetLeavePlanning(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, grid, &response.Meta{Year: req.Year, Month: req.Month, Today: grid.Today})
}

// GetOnLeaveToday handles GET /planning/leaves/today
func (h *planningHandlerImpl) GetOnLeaveToday(w http.ResponseWriter, r *http.Request) {
	filter, err := rosterFilter(r, false)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.calendarService.GetOnLeaveToday(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAttendancePlanning handles GET /planning/attendance
func (h *planningHandlerImpl) GetAttendancePlanning(w http.ResponseWriter, r *http.Request) {
	req, err := h.planningRequest(r, true)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	grid, err := h.calendarService.GetAttendancePlanning(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, grid, &response.Meta{Year: req.Year, Month: req.Month, Today: grid.Today})
}

// ExportLeavePlanning handles GET /planning/leaves/export
func (h *planningHandlerImpl) ExportLeavePlanning(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, false, h.calendarService.ExportLeavePlanning)
}

// ExportAttendancePlanning handles GET /planning/attendance/export
func (h *planningHandlerImpl) ExportAttendancePlanning(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, true, h.calendarService.ExportAttendancePlanning)
}

type exportFunc func(ctx context.Context, req calendar.PlanningRequest) (*bytes.Buffer, string, error)

func (h *planningHandlerImpl) export(w http.ResponseWriter, r *http.Request, activeOnly bool, fn exportFunc) {
	req, err := h.planningRequest(r, activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	buf, filename, err := fn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, buf, filename, xlsxContentType)
}

// planningRequest builds the month and roster filter. Attendance grids pass
// activeOnly=true so inactive employees are hidden unless active_only=false.
func (h *planningHandlerImpl) planningRequest(r *http.Request, activeOnly bool) (calendar.PlanningRequest, error) {
	year, month, err := monthParams(r, h.now(), h.location)
	if err != nil {
		return calendar.PlanningRequest{}, err
	}
	filter, err := rosterFilter(r, activeOnly)
	if err != nil {
		return calendar.PlanningRequest{}, err
	}
	return calendar.PlanningRequest{Year: year, Month: month, Filter: filter}, nil
}
