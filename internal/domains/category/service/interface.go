package service

import (
	"context"

	"blog-backend/internal/domains/category/model"
)

type ServiceInterface interface {
	GetCategories(ctx context.Context) ([]*model.CategoryResponse, error)
	GetCategory(ctx context.Context, id int) (*model.CategoryResponse, error)
	CreateCategory(ctx context.Context, req model.CreateCategoryRequest) (*model.CategoryResponse, error)
	UpdateCategory(ctx context.Context, req model.UpdateCategoryRequest) (*model.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id int) error
}
