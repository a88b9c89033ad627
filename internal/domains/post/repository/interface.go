package repository

import (
	"context"

	"blog-backend/internal/domains/post/model"
)

type RepositoryInterface interface {
	FindAll(ctx context.Context) ([]model.Post, error)
	FindByID(ctx context.Context, id int) (*model.Post, error)
	// FindWithComments returns one row per comment, in comment id order.
	// A post without comments yields an empty slice; a missing post yields
	// model.ErrPostNotFound.
	FindWithComments(ctx context.Context, id int) ([]model.PostComment, error)
	Create(ctx context.Context, p *model.Post) (*model.Post, error)
	Update(ctx context.Context, p *model.Post) (*model.Post, error)
	Delete(ctx context.Context, id int) error
}
