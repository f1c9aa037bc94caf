package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the forum core wraps exactly one of
// these so the boundary layer can classify it with errors.Is.
var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("not found")
	ErrAuthorization = errors.New("authorization error")
	ErrConflict      = errors.New("conflict")
	ErrDependency    = errors.New("dependency error")

	// ErrUnauthenticated is the authorization failure for a missing actor.
	ErrUnauthenticated = fmt.Errorf("%w: authentication required", ErrAuthorization)
)

var (
	ErrUsernameTooShort = fmt.Errorf("%w: username must be at least %d characters", ErrValidation, MinUsernameLength)
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	ErrTitleTooShort    = fmt.Errorf("%w: title must be at least %d characters", ErrValidation, MinTitleLength)
	ErrThreadBodyShort  = fmt.Errorf("%w: thread body must be at least %d characters", ErrValidation, MinThreadBodyLength)
	ErrPostBodyShort    = fmt.Errorf("%w: post body must be at least %d characters", ErrValidation, MinPostBodyLength)
	ErrInvalidRole      = fmt.Errorf("%w: role must be one of member, moderator, super", ErrValidation)
	ErrInvalidID        = fmt.Errorf("%w: malformed identifier", ErrValidation)
	ErrThreadLocked     = fmt.Errorf("%w: thread is locked", ErrValidation)
	ErrThreadMissing    = fmt.Errorf("%w: thread does not exist", ErrValidation)

	ErrUserNotFound   = fmt.Errorf("%w: user does not exist", ErrNotFound)
	ErrThreadNotFound = fmt.Errorf("%w: thread does not exist", ErrNotFound)
	ErrPostNotFound   = fmt.Errorf("%w: post does not exist", ErrNotFound)

	ErrSelfDemotion       = fmt.Errorf("%w: you cannot remove your own super role", ErrAuthorization)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", ErrUnauthenticated)
	ErrInvalidSession     = fmt.Errorf("%w: session is invalid or expired", ErrUnauthenticated)

	ErrUsernameTaken = fmt.Errorf("%w: username is already taken", ErrConflict)
)

// Dependency wraps a datastore or collaborator failure. The original error
// stays reachable through errors.Is/As.
func Dependency(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrDependency, op, err)
}
