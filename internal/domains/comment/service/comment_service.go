package service

import (
	"context"
	"fmt"

	"blog-backend/internal/domains/comment/model"
	"blog-backend/internal/domains/comment/repository"
)

type commentService struct {
	repo repository.RepositoryInterface
}

func NewCommentService(repo repository.RepositoryInterface) ServiceInterface {
	return &commentService{repo: repo}
}

func (s *commentService) GetComments(ctx context.Context) ([]*model.CommentResponse, error) {
	comments, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*model.CommentResponse, 0, len(comments))
	for i := range comments {
		result = append(result, model.ToResponse(&comments[i]))
	}
	return result, nil
}

func (s *commentService) GetComment(ctx context.Context, id int) (*model.CommentResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return model.ToResponse(c), nil
}

func (s *commentService) CreateComment(ctx context.Context, req model.CommentRequest) (*model.CommentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	c, err := s.repo.Create(ctx, &model.Comment{
		PostID:        req.PostID,
		CommenterName: req.CommenterName,
		Body:          req.Body,
	})
	if err != nil {
		return nil, err
	}
	return model.ToResponse(c), nil
}

// UpdateComment targets the comment with the given id, never the post id
// carried in the body.
func (s *commentService) UpdateComment(ctx context.Context, id int, req model.CommentRequest) (*model.CommentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	c, err := s.repo.Update(ctx, &model.Comment{
		ID:            id,
		PostID:        req.PostID,
		CommenterName: req.CommenterName,
		Body:          req.Body,
	})
	if err != nil {
		return nil, err
	}
	return model.ToResponse(c), nil
}

func (s *commentService) DeleteComment(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
