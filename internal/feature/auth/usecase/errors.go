// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register an email
	// that is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is the generic login failure. It deliberately
	// does not distinguish unknown email, password-less account, and wrong
	// password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidGoogleToken is returned when the external ID token fails
	// verification.
	ErrInvalidGoogleToken = errors.New("invalid google id token")
)
