package user

import "errors"

var (
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrUserIDRequired          = errors.New("user ID is required")
)
