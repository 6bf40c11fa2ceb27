package account

import "errors"

var (
	// ErrLoginNil LoginFunc arg is nil
	ErrLoginNil = errors.New("login func is nil")

	// ErrInvalidUser username is not accepted
	ErrInvalidUser = errors.New("invalid user")

	// ErrInvalidPassword password does not match the user
	ErrInvalidPassword = errors.New("invalid password")
)
