package model

import "errors"

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrInvalidInput    = errors.New("invalid comment input")
	ErrPostNotFound    = errors.New("post does not exist")
)
