package auth

import (
	"context"

	"github.com/fieldteam/attendance-backend-go/internal/domain/user"
)

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
}

// Identity is the decoded token identity attached to request contexts by
// the verification middleware.
type Identity struct {
	UserID   string
	Username string
	Role     user.Role
}
