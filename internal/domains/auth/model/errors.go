package model

import (
	"errors"

	usermodel "blog-backend/internal/domains/user/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTooManyAttempts    = errors.New("too many failed login attempts, try again later")
	ErrInvalidInput       = errors.New("invalid auth input")

	// Shared with the user domain so errors.Is works across both.
	ErrEmailAlreadyExists = usermodel.ErrEmailAlreadyExists
	ErrUserNotFound       = usermodel.ErrUserNotFound
)
