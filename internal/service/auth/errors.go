package auth

import "errors"

// Token validation errors. ValidateToken collapses the jwt library's error
// taxonomy into these sentinels so callers can map them to responses without
// importing the library themselves.
var (
	// ErrInvalidToken covers malformed tokens and bad signatures.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken is returned when the token's exp claim is in the past.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid is returned when the nbf claim is in the future.
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken is returned when a protected operation was called
	// without any token at all.
	ErrMissingToken = errors.New("authentication token is missing")
)
