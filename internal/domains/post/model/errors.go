package model

import "errors"

var (
	ErrPostNotFound = errors.New("post not found")
	ErrInvalidInput = errors.New("invalid post input")
	// ErrInvalidReference means category_id or user_id points at nothing.
	ErrInvalidReference = errors.New("category or user does not exist")
)
