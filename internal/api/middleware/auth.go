package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/saluimoveis/admin-api/internal/core/domain"
	"github.com/saluimoveis/admin-api/internal/core/ports"
)

// AdminUserKey is the context key under which RequireAdmin stores the
// resolved admin account.
const AdminUserKey = "admin_user"

// RequireAdmin resolves the bearer token to an admin account and stores
// it in the request context. Requests without valid admin credentials
// never reach the wrapped handler.
func RequireAdmin(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return domain.ErrUnauthenticated
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return domain.ErrUnauthenticated
			}

			admin, err := auth.CurrentAdmin(c.Request().Context(), parts[1])
			if err != nil {
				return err
			}

			c.Set(AdminUserKey, admin)
			return next(c)
		}
	}
}
