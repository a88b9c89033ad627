package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Comment struct {
	ID            int
	PostID        int
	CommenterName string
	Body          string
}

// CommentRequest serves create and full-replacement update. On update the
// comment id always comes from the path.
type CommentRequest struct {
	PostID        int    `json:"id_post_comment"`
	CommenterName string `json:"user_name_comment"`
	Body          string `json:"comment"`
}

func (r CommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PostID, validation.Required, validation.Min(1)),
		validation.Field(&r.CommenterName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Body, validation.Required, validation.Length(1, 255)),
	)
}

type CommentResponse struct {
	ID            int    `json:"id"`
	PostID        int    `json:"id_post_comment"`
	CommenterName string `json:"user_name_comment"`
	Body          string `json:"comment"`
}

func ToResponse(c *Comment) *CommentResponse {
	return &CommentResponse{
		ID:            c.ID,
		PostID:        c.PostID,
		CommenterName: c.CommenterName,
		Body:          c.Body,
	}
}
