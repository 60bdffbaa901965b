package service

import (
	"context"
	"time"

	"github.com/saluimoveis/admin-api/internal/core/domain"
	"github.com/saluimoveis/admin-api/internal/core/ports"
)

const importLogHistoryLimit = 20

// ImportLogService reads the XML import trail for the admin UI and the
// external scheduler's status probe.
type ImportLogService struct {
	logs ports.ImportLogRepository
}

func NewImportLogService(logs ports.ImportLogRepository) *ImportLogService {
	return &ImportLogService{logs: logs}
}

func (s *ImportLogService) Recent(ctx context.Context) ([]domain.ImportLog, error) {
	return s.logs.Recent(ctx, importLogHistoryLimit)
}

func (s *ImportLogService) CronStatus(ctx context.Context) (*ports.CronStatus, error) {
	last, err := s.logs.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if last == nil {
		return &ports.CronStatus{
			Status:  "no_imports",
			Message: "no import has run yet",
		}, nil
	}

	status := &ports.CronStatus{
		Status:          last.Status,
		StartedAt:       last.StartedAt.UTC().Format(time.RFC3339),
		PropertiesCount: last.PropertiesCount,
		ErrorMessage:    last.ErrorMessage,
	}
	if last.CompletedAt != nil {
		status.CompletedAt = last.CompletedAt.UTC().Format(time.RFC3339)
	}
	return status, nil
}
