package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when creating a user with an email
	// that is already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")
)
