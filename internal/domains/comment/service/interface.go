package service

import (
	"context"

	"blog-backend/internal/domains/comment/model"
)

type ServiceInterface interface {
	GetComments(ctx context.Context) ([]*model.CommentResponse, error)
	GetComment(ctx context.Context, id int) (*model.CommentResponse, error)
	CreateComment(ctx context.Context, req model.CommentRequest) (*model.CommentResponse, error)
	UpdateComment(ctx context.Context, id int, req model.CommentRequest) (*model.CommentResponse, error)
	DeleteComment(ctx context.Context, id int) error
}
