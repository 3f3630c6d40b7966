package constraints

import "errors"

var (
	ErrNotConfigured   = errors.New("constraints: business hours are not configured")
	ErrServiceNotFound = errors.New("constraints: service not found")
	ErrInternal        = errors.New("constraints: internal error")
)
