package calendar

import "errors"

var (
	ErrUpstreamUnavailable  = errors.New("calendar data source unavailable")
	ErrUpstreamUnauthorized = errors.New("calendar data source rejected credentials")
	ErrExportFailed         = errors.New("failed to generate spreadsheet")
)
