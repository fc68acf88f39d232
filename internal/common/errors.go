// Package common defines shared constants and sentinel errors used across
// client and server layers of dailylog. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Domain error kinds returned by the credential lifecycle.
	ErrValidation        = errors.New("validation error")
	ErrConflict          = errors.New("already exists")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrExpired           = errors.New("expired")
	ErrNotVerified       = errors.New("account not verified")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// ErrInfrastructure marks failures raised by collaborators (store,
	// notification channel, signer). It is never returned bare; see InfraError.
	ErrInfrastructure = errors.New("infrastructure failure")
)

// InfraError tags a collaborator failure so callers can tell it apart from
// the domain error kinds above. The original error stays reachable through
// errors.Is / errors.As.
type InfraError struct {
	Op  string
	Err error
}

func (e *InfraError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InfraError) Unwrap() error { return e.Err }

// Is reports ErrInfrastructure as a match in addition to the wrapped chain.
func (e *InfraError) Is(target error) bool {
	return target == ErrInfrastructure
}

// Infra wraps err as an infrastructure failure of op. Nil stays nil and
// errors already carrying a domain kind are returned untouched.
func Infra(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsDomain(err) || errors.Is(err, ErrInfrastructure) {
		return err
	}
	return &InfraError{Op: op, Err: err}
}

// IsDomain reports whether err carries one of the domain error kinds.
func IsDomain(err error) bool {
	for _, kind := range []error{
		ErrValidation, ErrConflict, ErrorNotFound,
		ErrInvalidCredential, ErrExpired, ErrNotVerified,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
