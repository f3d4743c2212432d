package ports

import (
	"context"

	"github.com/paws/shelter-backend/internal/core/domain"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Phone    string
}

// VolunteerApplicationInput carries a volunteer application. UserID and Email
// are both optional; resolution tries UserID first, then falls back to Email.
type VolunteerApplicationInput struct {
	UserID       string
	Email        string
	Role         string
	Experience   string
	Availability string
	Phone        string
}

// UserService defines account registration, authentication, and the
// volunteer-application merge.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns a bearer token and the authenticated account. Unknown
	// email and wrong password return the same error.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	ApplyForVolunteer(ctx context.Context, input VolunteerApplicationInput) (*domain.User, error)
}
