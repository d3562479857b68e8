package service

import "errors"

var (
	// ErrEmptyField signals a missing or blank required field.
	ErrEmptyField = errors.New("required field is empty")

	// ErrUsernameTaken signals a signup with an already-registered username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
