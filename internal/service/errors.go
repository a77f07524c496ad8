package service

import "errors"

// Error taxonomy shared by all services. Handlers map these to HTTP statuses.
var (
	// ErrInvalidInput covers malformed ids, emails, bodies and amounts
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when an update target matched no document
	ErrNotFound = errors.New("not found")
	// ErrUpstream wraps failures of the payment gateway
	ErrUpstream = errors.New("upstream dependency failure")
)

func IsInvalidInput(err error) bool { return errors.Is(err, ErrInvalidInput) }
func IsNotFound(err error) bool     { return errors.Is(err, ErrNotFound) }
func IsUpstream(err error) bool     { return errors.Is(err, ErrUpstream) }
