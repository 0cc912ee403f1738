package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fieldteam/attendance-backend-go/internal/domain/auth"
	"github.com/fieldteam/attendance-backend-go/internal/domain/user"
	"github.com/fieldteam/attendance-backend-go/internal/pkg/jwt"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
	}
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	usernameTaken, err := a.UserRepository.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to check username: %w", err)
	}
	if usernameTaken {
		return auth.TokenResponse{}, user.ErrUsernameExists
	}

	emailTaken, err := a.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if emailTaken {
		return auth.TokenResponse{}, user.ErrEmailExists
	}

	if req.ManagerID != nil && *req.ManagerID != "" {
		if _, err := uuid.Parse(*req.ManagerID); err != nil {
			return auth.TokenResponse{}, user.ErrManagerNotFound
		}
		if _, err := a.UserRepository.GetByID(ctx, *req.ManagerID); err != nil {
			if err == pgx.ErrNoRows {
				return auth.TokenResponse{}, user.ErrManagerNotFound
			}
			return auth.TokenResponse{}, fmt.Errorf("failed to resolve manager: %w", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	// Validate() already guarantees these parse.
	dob, _ := time.Parse("2006-01-02", req.DOB)
	joining, _ := time.Parse("2006-01-02", req.JoiningDate)

	employeeID := generateEmployeeID()
	if req.EmployeeID != nil && *req.EmployeeID != "" {
		employeeID = *req.EmployeeID
	}

	var managerID *string
	if req.ManagerID != nil && *req.ManagerID != "" {
		managerID = req.ManagerID
	}

	newUser := user.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		DOB:          dob,
		Mobile:       req.Mobile,
		JoiningDate:  joining,
		Role:         user.ParseRole(req.Role),
		ManagerID:    managerID,
		EmployeeID:   employeeID,
	}

	created, err := a.UserRepository.Create(ctx, newUser)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return a.tokenResponse(created)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	// Unknown username and wrong password produce the same error so the
	// response leaks no account existence.
	userData, err := a.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.tokenResponse(userData)
}

func (a *AuthServiceImpl) tokenResponse(u user.User) (auth.TokenResponse, error) {
	token, expiresAt, err := a.Service.GenerateToken(u.ID, u.Username, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create token: %w", err)
	}

	return auth.TokenResponse{
		Token:          token,
		TokenExpiresAt: expiresAt,
		ID:             u.ID,
		Username:       u.Username,
		Role:           u.Role,
		EmployeeID:     u.EmployeeID,
	}, nil
}

// generateEmployeeID derives a code from the last six digits of the
// current unix timestamp, e.g. EMP483921.
func generateEmployeeID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return "EMP" + ts[len(ts)-6:]
}
