package ports

import (
	"context"

	"github.com/paws/shelter-backend/internal/core/domain"
)

// AccessGuard authorizes a raw Authorization header against a required role.
type AccessGuard interface {
	// Resolve checks the header scheme, validates the token, and looks up the
	// account. Fails with ErrMissingAuth, ErrInvalidToken, or
	// ErrUnknownAccount, in that order.
	Resolve(ctx context.Context, headerValue string) (*domain.User, error)
	// Authorize runs Resolve and then enforces the required role
	// (ErrForbidden on mismatch).
	Authorize(ctx context.Context, headerValue string, required domain.Role) (*domain.User, error)
}
