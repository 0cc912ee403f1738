package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fieldteam/attendance-backend-go/internal/domain/report"
	"github.com/fieldteam/attendance-backend-go/internal/handler/http/middleware"
	"github.com/fieldteam/attendance-backend-go/internal/handler/http/response"
)

type ActivityHandler interface {
	ListActivities(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	CreateMinutes(w http.ResponseWriter, r *http.Request)
	ListMinutes(w http.ResponseWriter, r *http.Request)
	PrefillMinutes(w http.ResponseWriter, r *http.Request)
}

type ActivityHandlerImpl struct {
	activityService report.ActivityService
}

func NewActivityHandler(activityService report.ActivityService) ActivityHandler {
	return &ActivityHandlerImpl{
		activityService: activityService,
	}
}

// ListActivities implements ActivityHandler.
func (a *ActivityHandlerImpl) ListActivities(w http.ResponseWriter, r *http.Request) {
	ident, err := middleware.IdentityFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	page := r.URL.Query().Get("page")
	limit := r.URL.Query().Get("limit")

	feed, err := a.activityService.ListActivities(r.Context(), ident, page, limit)
	if err != nil {
		slog.Error("ListActivities service error", "error", err)
		response.HandleError(w, err)
		return
	}

	totalPages := feed.TotalItems / feed.Limit
	if feed.TotalItems%feed.Limit > 0 {
		totalPages++
	}
	response.SuccessWithMeta(w, feed.Items, &response.Meta{
		Page:       feed.Page,
		Limit:      feed.Limit,
		TotalItems: feed.TotalItems,
		TotalPages: totalPages,
	})
}

// Summary implements ActivityHandler.
func (a *ActivityHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	ident, err := middleware.IdentityFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := a.activityService.Summary(r.Context(), ident)
	if err != nil {
		slog.Error("Summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// CreateMinutes implements ActivityHandler.
func (a *ActivityHandlerImpl) CreateMinutes(w http.ResponseWriter, r *http.Request) {
	ident, err := middleware.IdentityFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var minutesReq report.CreateMinutesRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&minutesReq); err != nil {
		slog.Error("CreateMinutes decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := minutesReq.Validate(); err != nil {
		slog.Error("CreateMinutes validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	minutes, err := a.activityService.CreateMinutes(r.Context(), ident, minutesReq)
	if err != nil {
		slog.Error("CreateMinutes service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Meeting minutes saved", minutes)
}

// ListMinutes implements ActivityHandler.
func (a *ActivityHandlerImpl) ListMinutes(w http.ResponseWriter, r *http.Request) {
	ident, err := middleware.IdentityFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	minutes, err := a.activityService.ListMinutes(r.Context(), ident)
	if err != nil {
		slog.Error("ListMinutes service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, minutes)
}

// PrefillMinutes implements ActivityHandler.
func (a *ActivityHandlerImpl) PrefillMinutes(w http.ResponseWriter, r *http.Request) {
	ident, err := middleware.IdentityFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	latest, err := a.activityService.PrefillMinutes(r.Context(), ident)
	if err != nil {
		slog.Error("PrefillMinutes service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, latest)
}
