package repository

import (
	"context"

	"blog-backend/internal/domains/comment/model"
)

type RepositoryInterface interface {
	FindAll(ctx context.Context) ([]model.Comment, error)
	FindByID(ctx context.Context, id int) (*model.Comment, error)
	Create(ctx context.Context, c *model.Comment) (*model.Comment, error)
	Update(ctx context.Context, c *model.Comment) (*model.Comment, error)
	Delete(ctx context.Context, id int) error
}
