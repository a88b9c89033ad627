package service

import (
	"context"
	"errors"
	"fmt"

	"blog-backend/internal/domains/auth/model"
	usermodel "blog-backend/internal/domains/user/model"
	userrepo "blog-backend/internal/domains/user/repository"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/logger"
)

const failedLoginKeyPrefix = "login:failed:"

// timingPassword is hashed once so an unknown email still costs one
// password comparison.
const timingPassword = "login-timing-placeholder"

type authService struct {
	users    userrepo.RepositoryInterface
	hasher   PasswordHasher
	tokens   TokenIssuer
	cache    cache.Cache
	throttle ThrottleConfig

	dummyDigest string
}

// NewAuthService wires the auth flows. A nil cache disables the failed-login
// throttle.
func NewAuthService(
	users userrepo.RepositoryInterface,
	hasher PasswordHasher,
	tokens TokenIssuer,
	c cache.Cache,
	throttle ThrottleConfig,
) ServiceInterface {
	dummy, err := hasher.Hash(timingPassword)
	if err != nil {
		logger.Error("failed to prepare login timing digest", err)
	}

	return &authService{
		users:       users,
		hasher:      hasher,
		tokens:      tokens,
		cache:       c,
		throttle:    throttle,
		dummyDigest: dummy,
	}
}

// ========================================
// REGISTER
// ========================================

func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*usermodel.UserResponse, error) {
	req.Email = usermodel.NormalizeEmail(req.Email)
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return nil, model.ErrEmailAlreadyExists
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	// A concurrent register can still pass the check above; the unique
	// constraint turns it into ErrEmailAlreadyExists inside Create.
	u, err := s.users.Create(ctx, &usermodel.User{
		Firstname:    req.Firstname,
		Lastname:     req.Lastname,
		Email:        req.Email,
		PasswordHash: digest,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("user registered", map[string]interface{}{"user_id": u.ID})
	return usermodel.ToResponse(u), nil
}

// ========================================
// LOGIN
// ========================================

func (s *authService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	req.Email = usermodel.NormalizeEmail(req.Email)
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	if s.isLocked(ctx, req.Email) {
		return nil, model.ErrTooManyAttempts
	}

	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, usermodel.ErrUserNotFound) {
			return nil, err
		}
		s.hasher.Verify(req.Password, s.dummyDigest)
		s.recordFailure(ctx, req.Email)
		return nil, model.ErrInvalidCredentials
	}

	if !s.hasher.Verify(req.Password, u.PasswordHash) {
		s.recordFailure(ctx, req.Email)
		return nil, model.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.GenerateAccessToken(u.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	s.clearFailures(ctx, req.Email)

	return &model.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      usermodel.ToResponse(u),
	}, nil
}

func (s *authService) GetMe(ctx context.Context, userID int) (*usermodel.UserResponse, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return usermodel.ToResponse(u), nil
}

// ========================================
// FAILED LOGIN THROTTLE
// ========================================

func (s *authService) throttleEnabled() bool {
	return s.cache != nil && s.throttle.MaxAttempts > 0
}

func failedLoginKey(email string) string {
	return failedLoginKeyPrefix + email
}

// isLocked fails open: a cache error never blocks a login.
func (s *authService) isLocked(ctx context.Context, email string) bool {
	if !s.throttleEnabled() {
		return false
	}

	var attempts int64
	found, err := s.cache.Get(ctx, failedLoginKey(email), &attempts)
	if err != nil {
		logger.Warn("login throttle unavailable", map[string]interface{}{"error": err.Error()})
		return false
	}
	return found && attempts >= int64(s.throttle.MaxAttempts)
}

func (s *authService) recordFailure(ctx context.Context, email string) {
	if !s.throttleEnabled() {
		return
	}

	// The window starts at the first failure.
	attempts, err := s.cache.IncrementWindow(ctx, failedLoginKey(email), s.throttle.Window)
	if err != nil {
		logger.Warn("failed to record login attempt", map[string]interface{}{"error": err.Error()})
		return
	}

	if attempts >= int64(s.throttle.MaxAttempts) {
		logger.Warn("login locked after repeated failures", map[string]interface{}{
			"attempts": attempts,
			"window":   s.throttle.Window.String(),
		})
	}
}

func (s *authService) clearFailures(ctx context.Context, email string) {
	if !s.throttleEnabled() {
		return
	}
	if err := s.cache.Delete(ctx, failedLoginKey(email)); err != nil {
		logger.Warn("failed to clear login attempts", map[string]interface{}{"error": err.Error()})
	}
}
