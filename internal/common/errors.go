// Package common defines shared constants and sentinel errors used across
// the layers of CareerNet. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")

	// Signup validation errors. The messages double as API responses,
	// so they match the wording the web client expects.
	ErrMissingFields      = errors.New("all fields are required")
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrWeakPassword       = errors.New("password must be at least 6 characters long")

	// Uniqueness conflicts surfaced by signup.
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")

	// Login failure. Unknown username and wrong password intentionally
	// collapse into this single value so the API cannot be used to
	// enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// Connection-specific errors.
	ErrSelfConnection      = errors.New("cannot connect to yourself")
	ErrConnectionExists    = errors.New("connection request already exists")
	ErrConnectionNotPending = errors.New("connection request is not pending")
)
