package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/paws/shelter-backend/internal/core/domain"
	"github.com/paws/shelter-backend/internal/core/ports"
)

// accountKey is the context key under which Auth stores the resolved account.
const accountKey = "account"

// Auth resolves the caller from the Authorization header and injects the
// account into context. Missing header, bad token syntax, and a token bound
// to no account all fail here with 401-mapped errors, before any role check.
func Auth(guard ports.AccessGuard) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := guard.Resolve(c.Request().Context(), c.Request().Header.Get("Authorization"))
			if err != nil {
				return err
			}

			c.Set(accountKey, user)
			return next(c)
		}
	}
}

// RequireRole enforces role-based access control on an already-resolved
// account. Must run after Auth.
func RequireRole(role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get(accountKey).(*domain.User)
			if user == nil || user.Role != role {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// AccountFromContext returns the account stored by Auth, or nil.
func AccountFromContext(c echo.Context) *domain.User {
	user, _ := c.Get(accountKey).(*domain.User)
	return user
}
