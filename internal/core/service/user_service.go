package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/paws/shelter-backend/internal/core/domain"
	"github.com/paws/shelter-backend/internal/core/ports"
)

// UserService implements registration, login, and the volunteer-application
// merge.
type UserService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, tokens ports.TokenService, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, tokens: tokens, logger: logger}
}

func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	// Best-effort pre-check; the unique index on email is the authoritative
	// enforcement point and Create maps its violation to the same error.
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FullName:        input.FullName,
		Email:           input.Email,
		PasswordHash:    string(hash),
		Phone:           input.Phone,
		Role:            domain.RoleUser,
		IsVolunteer:     false,
		ApplicationDate: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	return created, nil
}

// Login authenticates by email and mints a bearer token. Unknown email,
// wrong password, and a malformed stored digest all surface as the same
// ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

// ApplyForVolunteer merges a volunteer application into an existing account.
// Applications never create accounts: the applicant must register first.
func (s *UserService) ApplyForVolunteer(ctx context.Context, input ports.VolunteerApplicationInput) (*domain.User, error) {
	var user *domain.User

	if input.UserID != "" {
		user, _ = s.repo.FindByID(ctx, input.UserID)
	}
	if user == nil && input.Email != "" {
		user, _ = s.repo.FindByEmail(ctx, input.Email)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	user.IsVolunteer = true
	user.VolunteerRole = input.Role
	user.Experience = input.Experience
	user.Availability = input.Availability
	user.ApplicationDate = time.Now().UTC()

	// Fill-empty-only merge: a phone the user already entered is never
	// clobbered by the application.
	if user.Phone == "" && input.Phone != "" {
		user.Phone = input.Phone
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", updated.ID).Str("volunteer_role", updated.VolunteerRole).Msg("volunteer application merged")
	return updated, nil
}
