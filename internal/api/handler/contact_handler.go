package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saluimoveis/admin-api/internal/core/domain"
	"github.com/saluimoveis/admin-api/internal/core/ports"
)

// ContactHandler exposes the admin lead-management endpoints.
type ContactHandler struct {
	contactService ports.ContactService
}

func NewContactHandler(contactService ports.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// List handles GET /api/admin/contacts. An unknown status filter is
// rejected rather than returning an empty page.
func (h *ContactHandler) List(c echo.Context) error {
	p, err := parsePagination(c)
	if err != nil {
		return err
	}

	filter := ports.ContactFilter{
		Status: domain.ContactStatus(c.QueryParam("status")),
		Skip:   p.Skip,
		Limit:  p.Limit,
	}

	contacts, total, err := h.contactService.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listContactsResponse{Total: total, Contacts: contacts})
}

// UpdateStatus handles PATCH /api/admin/contacts/:id/status.
func (h *ContactHandler) UpdateStatus(c echo.Context) error {
	var req updateContactStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	status := domain.ContactStatus(req.Status)
	if err := h.contactService.UpdateStatus(c.Request().Context(), c.Param("id"), status); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusUpdateResponse{
		Message: "Contact status updated",
		Status:  string(status),
	})
}
