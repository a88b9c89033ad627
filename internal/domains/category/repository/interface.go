package repository

import (
	"context"

	"blog-backend/internal/domains/category/model"
)

// RepositoryInterface is the categories table gateway. Lookups and writes
// against a missing id return model.ErrCategoryNotFound.
type RepositoryInterface interface {
	FindAll(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id int) (*model.Category, error)
	Create(ctx context.Context, name string) (*model.Category, error)
	// Update leaves the column untouched when name is nil.
	Update(ctx context.Context, id int, name *string) (*model.Category, error)
	Delete(ctx context.Context, id int) error
}
