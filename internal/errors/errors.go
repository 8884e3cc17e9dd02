package errors

import (
	"errors"
	"fmt"
)

// Common error types for the seller console client
var (
	// Session errors
	ErrLoggedOut      = errors.New("not logged in")
	ErrNoRefreshToken = errors.New("no refresh token")
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")

	// Remote API errors
	ErrServerDown   = errors.New("server is down")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")

	// Storage errors
	ErrSealedEntry  = errors.New("entry is sealed and no passphrase is configured")
	ErrCorruptEntry = errors.New("stored entry is corrupt")

	// General errors
	ErrUnsupported = errors.New("unsupported operation")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
