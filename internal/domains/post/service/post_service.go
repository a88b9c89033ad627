package service

import (
	"context"
	"fmt"

	"blog-backend/internal/domains/post/model"
	"blog-backend/internal/domains/post/repository"
	"blog-backend/internal/shared/utils"
)

type postService struct {
	repo repository.RepositoryInterface
}

func NewPostService(repo repository.RepositoryInterface) ServiceInterface {
	return &postService{repo: repo}
}

func (s *postService) GetPosts(ctx context.Context) ([]*model.PostResponse, error) {
	posts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*model.PostResponse, 0, len(posts))
	for i := range posts {
		result = append(result, model.ToResponse(&posts[i]))
	}
	return result, nil
}

func (s *postService) GetPost(ctx context.Context, id int) (*model.PostResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return model.ToResponse(p), nil
}

func (s *postService) GetPostRelation(ctx context.Context, id int) ([]*model.PostRelationResponse, error) {
	rows, err := s.repo.FindWithComments(ctx, id)
	if err != nil {
		return nil, err
	}

	result := make([]*model.PostRelationResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, &model.PostRelationResponse{
			PostID:        r.PostID,
			Title:         r.Title,
			CommentID:     r.CommentID,
			CommentPostID: r.CommentPostID,
			CommenterName: r.CommenterName,
			Comment:       r.Comment,
		})
	}
	return result, nil
}

func (s *postService) CreatePost(ctx context.Context, req model.PostRequest) (*model.PostResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	p, err := s.repo.Create(ctx, fromRequest(0, req))
	if err != nil {
		return nil, err
	}
	return model.ToResponse(p), nil
}

// UpdatePost replaces every mutable field and regenerates the slug.
func (s *postService) UpdatePost(ctx context.Context, id int, req model.PostRequest) (*model.PostResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	p, err := s.repo.Update(ctx, fromRequest(id, req))
	if err != nil {
		return nil, err
	}
	return model.ToResponse(p), nil
}

func (s *postService) DeletePost(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func fromRequest(id int, req model.PostRequest) *model.Post {
	return &model.Post{
		ID:         id,
		Title:      req.Title,
		Slug:       utils.GenerateSlug(req.Title),
		Image:      req.Image,
		Body:       req.Body,
		CategoryID: req.CategoryID,
		AuthorID:   req.AuthorID,
		AuthorName: req.AuthorName,
	}
}
