package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingToken       = errors.New("missing or invalid token")
	ErrInvalidToken       = errors.New("invalid token")
)
