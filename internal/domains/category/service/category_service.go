package service

import (
	"context"
	"fmt"

	"blog-backend/internal/domains/category/model"
	"blog-backend/internal/domains/category/repository"
)

type categoryService struct {
	repo repository.RepositoryInterface
}

func NewCategoryService(repo repository.RepositoryInterface) ServiceInterface {
	return &categoryService{repo: repo}
}

func (s *categoryService) GetCategories(ctx context.Context) ([]*model.CategoryResponse, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*model.CategoryResponse, 0, len(categories))
	for i := range categories {
		result = append(result, model.ToResponse(&categories[i]))
	}
	return result, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id int) (*model.CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return model.ToResponse(c), nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req model.CreateCategoryRequest) (*model.CategoryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	c, err := s.repo.Create(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	return model.ToResponse(c), nil
}

// UpdateCategory requires req.ID. A request without it is rejected rather
// than treated as a no-op.
func (s *categoryService) UpdateCategory(ctx context.Context, req model.UpdateCategoryRequest) (*model.CategoryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	c, err := s.repo.Update(ctx, *req.ID, req.Name)
	if err != nil {
		return nil, err
	}
	return model.ToResponse(c), nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
