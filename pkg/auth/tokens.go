package auth

import (
	"context"

	"github.com/skillmentor/backend/pkg/identity"
)

// TokenGenerator abstracts token creation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenGenerator interface {
	Generate(ctx context.Context, account identity.Account) (string, error)
}
