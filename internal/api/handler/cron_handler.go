package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saluimoveis/admin-api/internal/core/domain"
	"github.com/saluimoveis/admin-api/internal/core/ports"
)

// CronHandler exposes the import history and the probe consumed by the
// external scheduler. The probe authenticates with a shared secret
// header instead of a bearer token.
type CronHandler struct {
	importLogService ports.ImportLogService
	cronSecret       string
}

func NewCronHandler(importLogService ports.ImportLogService, cronSecret string) *CronHandler {
	return &CronHandler{importLogService: importLogService, cronSecret: cronSecret}
}

// ImportLogs handles GET /api/admin/import-logs.
func (h *CronHandler) ImportLogs(c echo.Context) error {
	logs, err := h.importLogService.Recent(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listImportLogsResponse{Logs: logs})
}

// Status handles GET /api/admin/cron/status. A missing or empty
// configured secret rejects every caller; the probe must never be
// accidentally open.
func (h *CronHandler) Status(c echo.Context) error {
	provided := c.Request().Header.Get("X-Cron-Secret")
	if h.cronSecret == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(h.cronSecret)) != 1 {
		return domain.ErrInvalidCronSecret
	}

	status, err := h.importLogService.CronStatus(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, status)
}
