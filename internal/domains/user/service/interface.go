package service

import (
	"context"

	"blog-backend/internal/domains/user/model"
)

type ServiceInterface interface {
	CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.UserResponse, error)
	GetUserByEmail(ctx context.Context, email string) (*model.UserResponse, error)
	UpdateUser(ctx context.Context, req model.UpdateUserRequest) (*model.UserResponse, error)
	DeleteUserByEmail(ctx context.Context, email string) error
}
