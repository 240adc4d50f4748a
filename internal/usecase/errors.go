package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrNoData                = errors.New("provider returned no rows")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
