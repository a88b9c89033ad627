package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Post.AuthorName is a copy of the author's name taken at write time.
type Post struct {
	ID         int
	Title      string
	Slug       string
	Image      string
	Body       string
	CategoryID int
	AuthorID   int
	AuthorName string
}

// PostComment is one row of the post/comment join.
type PostComment struct {
	PostID        int
	Title         string
	CommentID     int
	CommentPostID int
	CommenterName string
	Comment       string
}

// ========================================
// DTOs
// ========================================

// PostRequest is used for both create and full-replacement update.
type PostRequest struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	Image      string `json:"img"`
	CategoryID int    `json:"category_id"`
	AuthorID   int    `json:"user_id"`
	AuthorName string `json:"user_name"`
}

func (r PostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Body, validation.Required),
		validation.Field(&r.Image, validation.Length(0, 255)),
		validation.Field(&r.CategoryID, validation.Required, validation.Min(1)),
		validation.Field(&r.AuthorID, validation.Required, validation.Min(1)),
		validation.Field(&r.AuthorName, validation.Required, validation.Length(1, 255)),
	)
}

type PostResponse struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Image      string `json:"img"`
	Body       string `json:"body"`
	CategoryID int    `json:"category_id"`
	AuthorID   int    `json:"user_id"`
	AuthorName string `json:"user_name"`
}

type PostRelationResponse struct {
	PostID        int    `json:"post_id"`
	Title         string `json:"title"`
	CommentID     int    `json:"comment_id"`
	CommentPostID int    `json:"id_post_comment"`
	CommenterName string `json:"user_name_comment"`
	Comment       string `json:"comment"`
}

func ToResponse(p *Post) *PostResponse {
	return &PostResponse{
		ID:         p.ID,
		Title:      p.Title,
		Slug:       p.Slug,
		Image:      p.Image,
		Body:       p.Body,
		CategoryID: p.CategoryID,
		AuthorID:   p.AuthorID,
		AuthorName: p.AuthorName,
	}
}
