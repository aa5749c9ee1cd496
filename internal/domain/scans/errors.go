package scans

import "errors"

var (
	// validation errors — fixable by the caller, nothing is appended
	ErrEmptyText     = errors.New("no text provided")
	ErrInvalidReport = errors.New("scam type and description are required")

	// ErrArchiveDisabled is returned when export is requested but no
	// archive backend is configured.
	ErrArchiveDisabled = errors.New("archive store not configured")
)
