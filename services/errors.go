package services

import "errors"

// Sentinel errors translated by the handlers into response statuses.
var (
	ErrNotFound = errors.New("record not found")

	// ErrDoctorHasCredentials and ErrUsernameTaken are both conflicts but
	// keep their own messages for the response body.
	ErrDoctorHasCredentials = errors.New("credentials already exist for this doctor")
	ErrUsernameTaken        = errors.New("username already exists")

	ErrInvalidInput = errors.New("missing required fields")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. Callers must not be able to tell which one happened.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoDoctors: credential seeding ran before the doctor roster exists.
	ErrNoDoctors = errors.New("no doctors found, seed doctors first")
)

// IsConflict reports whether err is one of the uniqueness violations.
func IsConflict(err error) bool {
	return errors.Is(err, ErrDoctorHasCredentials) || errors.Is(err, ErrUsernameTaken)
}
