package middleware

import (
	"errors"
	"net/http"

	"github.com/fieldteam/attendance-backend-go/internal/domain/auth"
	"github.com/fieldteam/attendance-backend-go/internal/domain/user"
	"github.com/fieldteam/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests whose bearer token is absent, expired or
// unverifiable. Run it after jwtauth.Verifier.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			// An absent header and a token that fails verification are
			// reported separately.
			if errors.Is(err, jwtauth.ErrNoTokenFound) {
				response.HandleError(w, auth.ErrMissingToken)
				return
			}
			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if _, err := IdentityFromContext(r); err != nil {
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// IdentityFromContext rebuilds the caller identity from the verified
// token claims.
func IdentityFromContext(r *http.Request) (auth.Identity, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return auth.Identity{}, auth.ErrMissingToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.Identity{}, auth.ErrInvalidToken
	}
	username, ok := claims["username"].(string)
	if !ok {
		return auth.Identity{}, auth.ErrInvalidToken
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return auth.Identity{}, auth.ErrInvalidToken
	}
	role := user.Role(roleStr)
	if !role.Valid() {
		return auth.Identity{}, auth.ErrInvalidToken
	}

	return auth.Identity{
		UserID:   userID,
		Username: username,
		Role:     role,
	}, nil
}
