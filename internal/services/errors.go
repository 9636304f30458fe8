package services

import "errors"

var (
	ErrNotFound      = errors.New("resource not found")
	ErrConflict      = errors.New("username already exists")
	ErrUnauthorized  = errors.New("incorrect username or password")
	ErrForbidden     = errors.New("account is inactive or deleted")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidStatus = errors.New("invalid user status")
	ErrInvalidToken  = errors.New("invalid or expired token")
)
