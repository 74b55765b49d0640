package service

import "errors"

var (
	ErrInternal           = errors.New("internal server error")
	ErrBlogNotFound       = errors.New("blog not found")
	ErrAccessDenied       = errors.New("not authorized")
	ErrFailedToFetchUser  = errors.New("failed to fetch user")
	ErrBlogFieldsAreEmpty = errors.New("title, summary and content must not be empty")
)
