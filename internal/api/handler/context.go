package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saluimoveis/admin-api/internal/api/middleware"
	"github.com/saluimoveis/admin-api/internal/core/domain"
)

// ctxAdmin extracts the admin account injected by the RequireAdmin
// middleware. Its absence means the route was registered outside the
// protected group, which is a wiring bug, not a client error.
func ctxAdmin(c echo.Context) (*domain.User, error) {
	admin, ok := c.Get(middleware.AdminUserKey).(*domain.User)
	if !ok || admin == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return admin, nil
}
