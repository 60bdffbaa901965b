package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saluimoveis/admin-api/internal/core/ports"
)

// BrokerHandler exposes the admin broker endpoints.
type BrokerHandler struct {
	brokerService ports.BrokerService
}

func NewBrokerHandler(brokerService ports.BrokerService) *BrokerHandler {
	return &BrokerHandler{brokerService: brokerService}
}

// List handles GET /api/admin/brokers.
func (h *BrokerHandler) List(c echo.Context) error {
	p, err := parsePagination(c)
	if err != nil {
		return err
	}

	brokers, total, err := h.brokerService.List(c.Request().Context(), ports.BrokerFilter{
		Skip:  p.Skip,
		Limit: p.Limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listBrokersResponse{Total: total, Brokers: brokers})
}

// ToggleActive handles PATCH /api/admin/brokers/:id/toggle-active.
func (h *BrokerHandler) ToggleActive(c echo.Context) error {
	active, err := h.brokerService.ToggleActive(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	msg := "Broker deactivated"
	if active {
		msg = "Broker activated"
	}
	return c.JSON(http.StatusOK, toggleActiveResponse{Message: msg, IsActive: active})
}
