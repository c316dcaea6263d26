package domain

import "errors"

var (
	// ErrProviderUnavailable signals the upstream generation call failed
	ErrProviderUnavailable = errors.New("generation provider unavailable")

	// ErrProviderNotConfigured signals missing provider credentials
	ErrProviderNotConfigured = errors.New("generation provider not configured")

	// ErrInvalidOutput signals the provider returned unusable content
	ErrInvalidOutput = errors.New("invalid output from generation provider")

	// ErrVectorizationFailed signals the tracer produced no usable paths
	ErrVectorizationFailed = errors.New("vectorization failed")

	// ErrStoreNotConfigured is returned by the null store adapters
	ErrStoreNotConfigured = errors.New("store not configured")

	// ErrAuthRequired signals an operation that needs an authenticated user
	ErrAuthRequired = errors.New("authentication required")

	// ErrNotFound signals a missing record
	ErrNotFound = errors.New("not found")
)
