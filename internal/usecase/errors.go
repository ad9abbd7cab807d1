package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyProfile = errors.New("candidate profile empty")
	ErrJobNotFound  = errors.New("job not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")
)
