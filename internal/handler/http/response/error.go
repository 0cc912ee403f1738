package response

import (
	"errors"
	"net/http"

	"github.com/fieldteam/attendance-backend-go/internal/domain/attendance"
	"github.com/fieldteam/attendance-backend-go/internal/domain/auth"
	"github.com/fieldteam/attendance-backend-go/internal/domain/leave"
	"github.com/fieldteam/attendance-backend-go/internal/domain/report"
	"github.com/fieldteam/attendance-backend-go/internal/domain/user"
	"github.com/fieldteam/attendance-backend-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrManagerNotFound):
		BadRequest(w, "Manager not found", nil)
	case errors.Is(err, user.ErrManagerAccessDenied):
		Forbidden(w, err.Error())

	// Report domain errors
	case errors.Is(err, report.ErrNoHourlyReports):
		NotFound(w, "No hourly reports found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidMonth):
		BadRequest(w, "Month must be in YYYY-MM format", nil)
	case errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
	case errors.Is(err, attendance.ErrReportAccessDenied):
		Forbidden(w, err.Error())

	// Leave domain errors
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrInvalidLeaveType):
		BadRequest(w, "Leave type must be casual, sick, or paid", nil)
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Start date must not be after end date", nil)
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrApplicationNotFound):
		NotFound(w, "No pending leave application with that id")
	case errors.Is(err, leave.ErrInvalidDecision):
		BadRequest(w, "Status must be approved or rejected", nil)
	case errors.Is(err, leave.ErrApprovalForbidden):
		Forbidden(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
