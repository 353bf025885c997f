package serverutils

import "errors"

var (
	ErrNotFound           = errors.New("the requested resource was not found")
	ErrUnauthorized       = errors.New("token invalid")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username must be unique")
	ErrInternal           = errors.New("something went wrong on our end, please try again later")
)
