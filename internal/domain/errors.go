package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrReferenceNotFound  = errors.New("referenced user or job does not exist")
	ErrInvalidStatus      = errors.New("invalid application status")
)
