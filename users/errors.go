package users

import "errors"

// Sentinel errors for registry operations.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrEmptyUsername = errors.New("username is empty")
	ErrEmptyEmail    = errors.New("email is empty")
)
