package identity

import (
	"context"
	"errors"
)

// Errors mapped from identity-provider responses. Handlers translate these
// into user-facing messages; the substring matching that produces them lives
// in one place inside the provider client.
var (
	ErrEmailExists        = errors.New("email is already registered")
	ErrWeakPassword       = errors.New("password should be at least 6 characters")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTooManyAttempts    = errors.New("too many failed attempts, try again later")
)

// Account is the identity established by the external provider.
type Account struct {
	UserID string
	Email  string
}

// Gateway verifies email/password credentials against an external identity
// service. Implementations issue a single request per call; a failure is
// terminal for that attempt.
type Gateway interface {
	SignUp(ctx context.Context, email, password string) (Account, error)
	SignIn(ctx context.Context, email, password string) (Account, error)
}
