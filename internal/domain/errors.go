package domain

import "errors"

var (
	// Provider errors
	ErrMissingCredentials = errors.New("provider credentials are not configured")
	ErrUpstream           = errors.New("provider request failed")

	// Statistics errors
	ErrInvalidTimeframe = errors.New("unknown timeframe")
)
