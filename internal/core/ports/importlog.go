package ports

import (
	"context"

	"github.com/saluimoveis/admin-api/internal/core/domain"
)

// ImportLogRepository reads the trail left by the external XML import
// job. This API never writes import logs.
type ImportLogRepository interface {
	Recent(ctx context.Context, limit int64) ([]domain.ImportLog, error)
	// Latest returns (nil, nil) when no import has ever run.
	Latest(ctx context.Context) (*domain.ImportLog, error)
}

// CronStatus is the probe payload consumed by the external scheduler.
type CronStatus struct {
	Status          string `json:"status"`
	Message         string `json:"message,omitempty"`
	StartedAt       string `json:"started_at,omitempty"`
	CompletedAt     string `json:"completed_at,omitempty"`
	PropertiesCount int    `json:"properties_count,omitempty"`
	ErrorMessage    string `json:"error_message,omitempty"`
}

// ImportLogService exposes import history and the cron probe.
type ImportLogService interface {
	Recent(ctx context.Context) ([]domain.ImportLog, error)
	CronStatus(ctx context.Context) (*CronStatus, error)
}
