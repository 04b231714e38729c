package todoauth

import "errors"

var (
	// ErrMemberNotFound is returned by [CredentialStore] implementations when
	// no record matches the given id or email.
	ErrMemberNotFound = errors.New("member not found")
	// ErrEngineNotReady is returned when an Engine method is invoked on a nil
	// or incompletely built engine.
	ErrEngineNotReady = errors.New("engine not initialized")
)

// ValidationError reports malformed or missing caller input. Its message is
// safe to show verbatim to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AlreadyExistsError reports a uniqueness conflict on member id or email.
type AlreadyExistsError struct {
	Message string
}

func (e *AlreadyExistsError) Error() string { return e.Message }

// NotFoundError reports an authentication failure caused by an unknown
// member id. The message is deliberately generic to avoid account
// enumeration.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// LoginError reports a rejected login attempt: wrong password, an active
// lockout (the message then names the unlock time), or an unexpected
// failure inside the login sequence.
type LoginError struct {
	Message string
	Err     error
}

func (e *LoginError) Error() string { return e.Message }

func (e *LoginError) Unwrap() error { return e.Err }

// SaveError wraps an unexpected failure during registration after all
// validation, uniqueness, and verification checks passed. Typed errors from
// those checks are never wrapped into a SaveError.
type SaveError struct {
	Message string
	Err     error
}

func (e *SaveError) Error() string { return e.Message }

func (e *SaveError) Unwrap() error { return e.Err }

// EmailAuthError wraps a failure in the email verification pipeline:
// code generation, verification-store access, or message delivery.
type EmailAuthError struct {
	Message string
	Err     error
}

func (e *EmailAuthError) Error() string { return e.Message }

func (e *EmailAuthError) Unwrap() error { return e.Err }
