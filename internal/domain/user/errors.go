package user

import "errors"

var (
	ErrAccountNotFound       = errors.New("account not found")
	ErrEmailExists           = errors.New("email already registered")
	ErrInvalidEmailFormat    = errors.New("invalid email format")
	ErrInvalidPasswordLength = errors.New("password must be at least 8 characters")
	ErrInvalidRole           = errors.New("invalid role")
	ErrAdminAccessRequired   = errors.New("admin access required")
)
