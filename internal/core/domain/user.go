package domain

import (
	"errors"
	"time"
)

// Role is the access tier of an account. It is deliberately a closed type:
// the only values the system ever produces are RoleUser and RoleAdmin.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")

	ErrMissingAuth    = errors.New("authentication required")
	ErrInvalidToken   = errors.New("invalid token")
	ErrUnknownAccount = errors.New("account not found")
	ErrForbidden      = errors.New("admin access required")
)

// User models a registrant account, including the embedded volunteer
// sub-profile. Admin accounts are provisioned out of band (seed data);
// the public API never changes a role.
type User struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Phone        string `json:"phone,omitempty"`
	Role         Role   `json:"role"`

	IsVolunteer     bool      `json:"isVolunteer"`
	VolunteerRole   string    `json:"volunteerRole,omitempty"`
	Experience      string    `json:"experience,omitempty"`
	Availability    string    `json:"availability,omitempty"`
	ApplicationDate time.Time `json:"applicationDate"`
}
