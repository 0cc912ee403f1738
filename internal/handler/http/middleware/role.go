package middleware

import (
	"net/http"

	"github.com/fieldteam/attendance-backend-go/internal/domain/leave"
	"github.com/fieldteam/attendance-backend-go/internal/domain/user"
	"github.com/fieldteam/attendance-backend-go/internal/handler/http/response"
)

// RequireApprover requires manager or team leader role
func RequireApprover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, err := IdentityFromContext(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !user.RoleCanApproveLeave(ident.Role) {
			response.HandleError(w, leave.ErrApprovalForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
