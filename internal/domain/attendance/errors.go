package attendance

import "errors"

var (
	ErrInvalidDateRange = errors.New("invalid attendance date range")
)
