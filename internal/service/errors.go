package service

import "errors"

var (
	ErrInternal        = errors.New("internal server error")
	ErrPostNotFound    = errors.New("post not found")
	ErrClusterNotFound = errors.New("comment cluster not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrEmptyPost       = errors.New("post must contain text or media")
	ErrInvalidPostType = errors.New("invalid post type")
	ErrInvalidTag      = errors.New("invalid tag")
)
