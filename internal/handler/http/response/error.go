package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")

	// User domain errors
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, "Invalid date range", nil)

	// Calendar domain errors
	case errors.Is(err, calendar.ErrUpstreamUnauthorized):
		slog.Error("upstream rejected credentials", "error", err)
		BadGateway(w, "Attendance backend rejected the service credentials")
	case errors.Is(err, calendar.ErrUpstreamUnavailable):
		slog.Warn("upstream unavailable", "error", err)
		ServiceUnavailable(w, "Attendance backend unavailable")
	case errors.Is(err, calendar.ErrExportFailed):
		InternalServerError(w, "Failed to generate spreadsheet")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
