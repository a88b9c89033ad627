package service

import (
	"context"
	"time"

	"blog-backend/internal/domains/auth/model"
	usermodel "blog-backend/internal/domains/user/model"
)

type ServiceInterface interface {
	Register(ctx context.Context, req model.RegisterRequest) (*usermodel.UserResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	GetMe(ctx context.Context, userID int) (*usermodel.UserResponse, error)
}

// TokenIssuer is satisfied by *jwt.Manager.
type TokenIssuer interface {
	GenerateAccessToken(userID int) (string, time.Time, error)
}

// PasswordHasher is satisfied by *hashing.Hasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// ThrottleConfig bounds failed logins per email. MaxAttempts <= 0 turns the
// throttle off.
type ThrottleConfig struct {
	MaxAttempts int
	Window      time.Duration
}
