package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotVerified  = errors.New("email not verified")
	ErrNotFound     = errors.New("account not found")
	ErrConflict     = errors.New("already taken")
	ErrInvalidInput = errors.New("invalid input")
	ErrExpired      = errors.New("expired")
	ErrNotLoggedIn  = errors.New("not logged in")
)
