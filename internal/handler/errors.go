package handler

import "errors"

var (
	errNotAuthorized = errors.New("user is not authorized")
	errInvalidBlogID = errors.New("invalid blog ID")
	errNoAccess      = errors.New("no access")
)
