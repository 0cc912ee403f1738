package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fieldteam/attendance-backend-go/internal/domain/user"
	"github.com/fieldteam/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter(jwtService jwt.Service) *chi.Mux {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(AuthRequired(jwtService.JWTAuth()))

		r.Get("/me", func(w http.ResponseWriter, r *http.Request) {
			ident, err := IdentityFromContext(r)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]string{
				"user_id": ident.UserID,
				"role":    string(ident.Role),
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(RequireApprover)
			r.Get("/approvals", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		})
	})
	return r
}

func doRequest(t *testing.T, router *chi.Mux, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestAuthRequiredMissingToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret")
	router := protectedRouter(jwtService)

	rec := doRequest(t, router, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "missing or invalid token", errorMessage(t, rec))
}

func TestAuthRequiredGarbageToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret")
	router := protectedRouter(jwtService)

	rec := doRequest(t, router, "/me", "not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid token", errorMessage(t, rec))
}

func TestAuthRequiredWrongSecret(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret")
	other := jwt.NewJWTService("other-secret")
	token, _, err := other.GenerateToken("user-1", "alice", user.RoleEmployee)
	require.NoError(t, err)

	router := protectedRouter(jwtService)
	rec := doRequest(t, router, "/me", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// A token that fails verification is not reported as missing.
	assert.Equal(t, "invalid token", errorMessage(t, rec))
}

func TestAuthRequiredValidToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret")
	token, _, err := jwtService.GenerateToken("user-1", "alice", user.RoleEmployee)
	require.NoError(t, err)

	router := protectedRouter(jwtService)
	rec := doRequest(t, router, "/me", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "user-1", body["user_id"])
	assert.Equal(t, "employee", body["role"])
}

func TestRequireApprover(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret")
	router := protectedRouter(jwtService)

	cases := []struct {
		role user.Role
		want int
	}{
		{user.RoleManager, http.StatusOK},
		{user.RoleTeamLeader, http.StatusOK},
		{user.RoleGroupLeader, http.StatusForbidden},
		{user.RoleEmployee, http.StatusForbidden},
	}
	for _, c := range cases {
		token, _, err := jwtService.GenerateToken("user-1", "alice", c.role)
		require.NoError(t, err)

		rec := doRequest(t, router, "/approvals", token)
		assert.Equal(t, c.want, rec.Code, "role %q", c.role)
	}
}
