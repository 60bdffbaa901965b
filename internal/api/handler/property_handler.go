package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/saluimoveis/admin-api/internal/core/ports"
)

// PropertyHandler exposes the admin property endpoints.
type PropertyHandler struct {
	propertyService ports.PropertyService
}

func NewPropertyHandler(propertyService ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// List handles GET /api/admin/properties. is_active is tri-state:
// absent means no filter.
func (h *PropertyHandler) List(c echo.Context) error {
	p, err := parsePagination(c)
	if err != nil {
		return err
	}

	filter := ports.PropertyFilter{Skip: p.Skip, Limit: p.Limit}
	if raw := c.QueryParam("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "is_active must be a boolean")
		}
		filter.IsActive = &active
	}

	properties, total, err := h.propertyService.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listPropertiesResponse{Total: total, Properties: properties})
}

// ToggleActive handles PATCH /api/admin/properties/:id/toggle-active.
func (h *PropertyHandler) ToggleActive(c echo.Context) error {
	active, err := h.propertyService.ToggleActive(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	msg := "Property deactivated"
	if active {
		msg = "Property activated"
	}
	return c.JSON(http.StatusOK, toggleActiveResponse{Message: msg, IsActive: active})
}

// ToggleFeatured handles PATCH /api/admin/properties/:id/toggle-featured.
func (h *PropertyHandler) ToggleFeatured(c echo.Context) error {
	featured, err := h.propertyService.ToggleFeatured(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	msg := "Property unfeatured"
	if featured {
		msg = "Property featured"
	}
	return c.JSON(http.StatusOK, toggleFeaturedResponse{Message: msg, IsFeatured: featured})
}
