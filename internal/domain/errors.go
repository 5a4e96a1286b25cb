package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrNotFound indicates the requested todo, user or owner does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork indicates the backend is unreachable
	ErrNetwork = errors.New("backend is unreachable")

	// ErrServer indicates the backend answered with an unexpected status
	ErrServer = errors.New("backend error")

	// ErrAuthFailed indicates the configured token was rejected
	ErrAuthFailed = errors.New("authentication token is invalid")
)
