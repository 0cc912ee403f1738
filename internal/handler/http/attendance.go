package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/fieldteam/attendance-backend-go/internal/domain/attendance"
	"github.com/fieldteam/attendance-backend-go/internal/handler/http/middleware"
	"github.com/fieldteam/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
	EmployeeReport(w http.ResponseWriter, r *http.Request)
	Absentees(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Overview implements AttendanceHandler. Month defaults to the current
// month when the query parameter is absent.
func (a *AttendanceHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	overview, err := a.attendanceService.Overview(r.Context(), month)
	if err != nil {
		slog.Error("Overview service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}

// EmployeeReport implements AttendanceHandler.
func (a *AttendanceHandlerImpl) EmployeeReport(w http.ResponseWriter, r *http.Request) {
	ident, err := middleware.IdentityFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID := chi.URLParam(r, "employeeID")

	report, err := a.attendanceService.EmployeeReport(r.Context(), ident, employeeID)
	if err != nil {
		slog.Error("EmployeeReport service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// Absentees implements AttendanceHandler. Date defaults to today when
// the query parameter is absent.
func (a *AttendanceHandlerImpl) Absentees(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	absentees, err := a.attendanceService.Absentees(r.Context(), date)
	if err != nil {
		slog.Error("Absentees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, absentees)
}
