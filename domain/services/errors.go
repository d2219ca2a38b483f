package services

import "errors"

var (
	ErrStaleResponse        = errors.New("search response superseded by a newer request")
	ErrNavigationOutOfRange = errors.New("requested page is outside the result range")
	ErrNoResults            = errors.New("no search has completed yet")
	ErrInvalidMerge         = errors.New("cannot merge a person into itself")
	ErrInvalidDateRange     = errors.New("invalid date range")
	ErrSessionNotFound      = errors.New("session not found")
	ErrJobNotFound          = errors.New("dataset job not found")
)
