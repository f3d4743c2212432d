package service

import (
	"context"
	"strings"

	"github.com/paws/shelter-backend/internal/core/domain"
	"github.com/paws/shelter-backend/internal/core/ports"
)

// Guard resolves and authorizes the caller behind an Authorization header.
// The four checks run in a fixed order because their failures map to
// different HTTP statuses: missing header, bad token syntax, and unknown
// account are 401; a role mismatch on a real account is 403.
type Guard struct {
	users  ports.UserRepository
	tokens ports.TokenService
}

func NewGuard(users ports.UserRepository, tokens ports.TokenService) *Guard {
	return &Guard{users: users, tokens: tokens}
}

func (g *Guard) Resolve(ctx context.Context, headerValue string) (*domain.User, error) {
	parts := strings.SplitN(headerValue, " ", 2)
	if headerValue == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, domain.ErrMissingAuth
	}

	accountID, err := g.tokens.Validate(parts[1])
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	user, err := g.users.FindByID(ctx, accountID)
	if err != nil {
		// A syntactically valid token pointing at no account is rejected
		// here, distinct from the syntax failure above.
		return nil, domain.ErrUnknownAccount
	}
	return user, nil
}

func (g *Guard) Authorize(ctx context.Context, headerValue string, required domain.Role) (*domain.User, error) {
	user, err := g.Resolve(ctx, headerValue)
	if err != nil {
		return nil, err
	}
	if user.Role != required {
		return nil, domain.ErrForbidden
	}
	return user, nil
}
