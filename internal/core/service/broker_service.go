package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/saluimoveis/admin-api/internal/core/domain"
	"github.com/saluimoveis/admin-api/internal/core/ports"
)

// BrokerService implements admin broker management.
type BrokerService struct {
	brokers ports.BrokerRepository
	logger  zerolog.Logger
}

func NewBrokerService(brokers ports.BrokerRepository, logger zerolog.Logger) *BrokerService {
	return &BrokerService{brokers: brokers, logger: logger}
}

func (s *BrokerService) List(ctx context.Context, filter ports.BrokerFilter) ([]domain.Broker, int64, error) {
	return s.brokers.List(ctx, filter)
}

func (s *BrokerService) ToggleActive(ctx context.Context, id string) (bool, error) {
	broker, err := s.brokers.FindByID(ctx, id)
	if err != nil {
		return false, err
	}

	active := !broker.IsActive
	if err := s.brokers.SetActive(ctx, id, active); err != nil {
		return false, err
	}

	s.logger.Info().Str("broker_id", id).Bool("is_active", active).Msg("broker toggled")
	return active, nil
}
