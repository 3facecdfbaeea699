package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingField       = errors.New("required field missing")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidBuyOrder    = errors.New("invalid buy order")
)
