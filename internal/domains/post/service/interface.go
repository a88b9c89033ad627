package service

import (
	"context"

	"blog-backend/internal/domains/post/model"
)

type ServiceInterface interface {
	GetPosts(ctx context.Context) ([]*model.PostResponse, error)
	GetPost(ctx context.Context, id int) (*model.PostResponse, error)
	// GetPostRelation lists every (post, comment) pair of the post.
	GetPostRelation(ctx context.Context, id int) ([]*model.PostRelationResponse, error)
	CreatePost(ctx context.Context, req model.PostRequest) (*model.PostResponse, error)
	UpdatePost(ctx context.Context, id int, req model.PostRequest) (*model.PostResponse, error)
	DeletePost(ctx context.Context, id int) error
}
