// Package common defines shared constants and sentinel errors used across
// client and server layers of the password manager. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal         = errors.New("internal error")
	ErrStoreUnavailable = errors.New("credential store unavailable")

	// Authentication errors. ErrInvalidCredentials is deliberately the
	// same value for an unknown user and a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("unauthenticated")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// ErrPartialFailure marks an operation that reported failure after a
	// prior side effect already committed (user row exists, 2FA did not).
	ErrPartialFailure = errors.New("partial failure")
)
