package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fieldteam/attendance-backend-go/internal/domain/leave"
	"github.com/fieldteam/attendance-backend-go/internal/handler/http/middleware"
	"github.com/fieldteam/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Balance(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	ApprovalsQueue(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Balance implements LeaveHandler.
func (l *LeaveHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	ident, err := middleware.IdentityFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	balance, err := l.leaveService.Balance(r.Context(), ident.UserID)
	if err != nil {
		slog.Error("Balance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}

// Apply implements LeaveHandler.
func (l *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	ident, err := middleware.IdentityFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var applyReq leave.ApplyRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&applyReq); err != nil {
		slog.Error("Apply decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := applyReq.Validate(); err != nil {
		slog.Error("Apply validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	application, err := l.leaveService.Apply(r.Context(), ident.UserID, applyReq)
	if err != nil {
		slog.Error("Apply service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave application submitted", application)
}

// History implements LeaveHandler.
func (l *LeaveHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	ident, err := middleware.IdentityFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	history, err := l.leaveService.History(r.Context(), ident.UserID)
	if err != nil {
		slog.Error("History service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}

// ApprovalsQueue implements LeaveHandler.
func (l *LeaveHandlerImpl) ApprovalsQueue(w http.ResponseWriter, r *http.Request) {
	queue, err := l.leaveService.ApprovalsQueue(r.Context())
	if err != nil {
		slog.Error("ApprovalsQueue service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, queue)
}

// Decide implements LeaveHandler.
func (l *LeaveHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	ident, err := middleware.IdentityFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	applicationID := chi.URLParam(r, "applicationID")

	var decideReq leave.DecideRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&decideReq); err != nil {
		slog.Error("Decide decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := decideReq.Validate(); err != nil {
		slog.Error("Decide validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	decided, err := l.leaveService.Decide(r.Context(), applicationID, ident.UserID, decideReq.Status)
	if err != nil {
		slog.Error("Decide service error", "error", err, "application_id", applicationID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave application "+string(decided.Status), decided)
}
