package service

import (
	"context"
	"fmt"

	"blog-backend/internal/domains/user/model"
	"blog-backend/internal/domains/user/repository"
	"blog-backend/pkg/hashing"
)

type userService struct {
	repo   repository.RepositoryInterface
	hasher *hashing.Hasher
}

func NewUserService(repo repository.RepositoryInterface, hasher *hashing.Hasher) ServiceInterface {
	return &userService{repo: repo, hasher: hasher}
}

func (s *userService) CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.UserResponse, error) {
	req.Email = model.NormalizeEmail(req.Email)
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.Create(ctx, &model.User{
		Firstname:    req.Firstname,
		Lastname:     req.Lastname,
		Email:        req.Email,
		PasswordHash: digest,
	})
	if err != nil {
		return nil, err
	}
	return model.ToResponse(u), nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*model.UserResponse, error) {
	u, err := s.repo.FindByEmail(ctx, model.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	return model.ToResponse(u), nil
}

// UpdateUser applies only the non-nil fields. req.ID is mandatory.
func (s *userService) UpdateUser(ctx context.Context, req model.UpdateUserRequest) (*model.UserResponse, error) {
	if req.Email != nil {
		normalized := model.NormalizeEmail(*req.Email)
		req.Email = &normalized
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	u, err := s.repo.Update(ctx, *req.ID, model.UserChanges{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
	})
	if err != nil {
		return nil, err
	}
	return model.ToResponse(u), nil
}

func (s *userService) DeleteUserByEmail(ctx context.Context, email string) error {
	return s.repo.DeleteByEmail(ctx, model.NormalizeEmail(email))
}
