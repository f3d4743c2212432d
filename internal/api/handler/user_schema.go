package handler

import "github.com/paws/shelter-backend/internal/core/domain"

// messageResponse is the standard envelope for confirmation and error bodies.
type messageResponse struct {
	Message string `json:"message"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone"`
}

// loginRequest is deliberately unvalidated: empty credentials fail
// authentication with the same 401 as wrong ones.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

type volunteerApplicationRequest struct {
	UserID       string `json:"userId"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Experience   string `json:"experience"`
	Availability string `json:"availability"`
	Phone        string `json:"phone"`
}

// legacyLoginUser restores the original login payload shape, which exposed
// the stored digest under "password". Only used behind LEGACY_LOGIN_PAYLOAD.
type legacyLoginUser struct {
	domain.User
	Password string `json:"password"`
}
