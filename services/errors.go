package services

import "errors"

// Common service-level errors
var (
	ErrInvalidEpicKey = errors.New("epic key is required")
	ErrInvalidUserID  = errors.New("user id is required")
	ErrNoEpicKeys     = errors.New("at least one epic key is required")
)
