package application

import "errors"

var (
	ErrNotFound         = errors.New("application not found")
	ErrAlreadySubmitted = errors.New("application already submitted for this email")
	ErrHashPassword     = errors.New("failed to hash password")
	ErrStoreFailed      = errors.New("failed to store application")
)
