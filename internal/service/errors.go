package service

import "errors"

// Sentinel errors the handlers map to HTTP status codes. Everything
// else is treated as an internal error.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)
