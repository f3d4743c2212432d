package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paws/shelter-backend/internal/api/metrics"
	"github.com/paws/shelter-backend/internal/core/domain"
	"github.com/paws/shelter-backend/internal/core/ports"
)

// UserHandler handles registration, login, and volunteer applications.
type UserHandler struct {
	userService ports.UserService
	// legacyLoginPayload switches the login response back to the original
	// shape that included the password digest.
	legacyLoginPayload bool
}

func NewUserHandler(userService ports.UserService, legacyLoginPayload bool) *UserHandler {
	return &UserHandler{userService: userService, legacyLoginPayload: legacyLoginPayload}
}

// Register creates a new account.
//
// @Summary      Register a new account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := h.userService.Register(c.Request().Context(), ports.RegisterInput{
		FullName: req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate_email").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "User registered successfully"})
}

// Login authenticates an account and returns a bearer token.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  messageResponse
// @Router       /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, user, err := h.userService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	var payload any = user
	if h.legacyLoginPayload {
		payload = legacyLoginUser{User: *user, Password: user.PasswordHash}
	}
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: payload})
}

// ApplyForVolunteer merges a volunteer application into an existing account.
//
// @Summary      Submit a volunteer application
// @Tags         volunteers
// @Accept       json
// @Produce      json
// @Param        body  body      volunteerApplicationRequest  true  "Volunteer application"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Router       /volunteers/apply [post]
func (h *UserHandler) ApplyForVolunteer(c echo.Context) error {
	var req volunteerApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	_, err := h.userService.ApplyForVolunteer(c.Request().Context(), ports.VolunteerApplicationInput{
		UserID:       req.UserID,
		Email:        req.Email,
		Role:         req.Role,
		Experience:   req.Experience,
		Availability: req.Availability,
		Phone:        req.Phone,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Applications require a pre-existing account; this is a caller
			// mistake, not a missing resource.
			return echo.NewHTTPError(http.StatusBadRequest, "User not found. Please register first.")
		}
		return err
	}

	metrics.VolunteerApplicationsTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Application submitted successfully"})
}
