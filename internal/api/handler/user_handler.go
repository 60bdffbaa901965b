package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saluimoveis/admin-api/internal/core/domain"
	"github.com/saluimoveis/admin-api/internal/core/ports"
)

// UserHandler exposes the admin user-management endpoints.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles GET /api/admin/users.
func (h *UserHandler) List(c echo.Context) error {
	p, err := parsePagination(c)
	if err != nil {
		return err
	}

	filter := ports.UserFilter{
		Role:  domain.UserRole(c.QueryParam("role")),
		Skip:  p.Skip,
		Limit: p.Limit,
	}

	users, total, err := h.userService.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	items := make([]userResponse, 0, len(users))
	for i := range users {
		items = append(items, toUserResponse(&users[i]))
	}

	return c.JSON(http.StatusOK, listUsersResponse{Total: total, Users: items})
}

// Get handles GET /api/admin/users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete handles DELETE /api/admin/users/:id. Admins cannot delete
// their own account.
func (h *UserHandler) Delete(c echo.Context) error {
	admin, err := ctxAdmin(c)
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.Request().Context(), admin.ID, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully"})
}
