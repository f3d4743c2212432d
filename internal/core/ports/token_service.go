package ports

import "github.com/paws/shelter-backend/internal/core/domain"

// TokenService mints and validates bearer tokens. Validate only checks token
// syntax and returns the embedded account id; whether that account exists is
// the access guard's concern.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Validate(token string) (string, error)
}
