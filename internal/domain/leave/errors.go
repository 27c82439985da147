package leave

import "errors"

var (
	ErrInvalidStatusTransition = errors.New("invalid leave status transition")
)
