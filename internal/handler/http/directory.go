package http

import (
	"log/slog"
	"net/http"

	"github.com/fieldteam/attendance-backend-go/internal/domain/user"
	"github.com/fieldteam/attendance-backend-go/internal/handler/http/middleware"
	"github.com/fieldteam/attendance-backend-go/internal/handler/http/response"
)

type DirectoryHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	ListSubordinates(w http.ResponseWriter, r *http.Request)
}

type DirectoryHandlerImpl struct {
	directoryService user.DirectoryService
}

func NewDirectoryHandler(directoryService user.DirectoryService) DirectoryHandler {
	return &DirectoryHandlerImpl{
		directoryService: directoryService,
	}
}

// ListEmployees implements DirectoryHandler.
func (d *DirectoryHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	ident, err := middleware.IdentityFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employees, err := d.directoryService.ListEmployees(r.Context(), ident.UserID, ident.Role)
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// ListSubordinates implements DirectoryHandler.
func (d *DirectoryHandlerImpl) ListSubordinates(w http.ResponseWriter, r *http.Request) {
	ident, err := middleware.IdentityFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	subordinates, err := d.directoryService.ListSubordinates(r.Context(), ident.UserID, ident.Role)
	if err != nil {
		slog.Error("ListSubordinates service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, subordinates)
}
