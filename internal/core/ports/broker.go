package ports

import (
	"context"

	"github.com/saluimoveis/admin-api/internal/core/domain"
)

// BrokerFilter narrows broker listings.
type BrokerFilter struct {
	Skip  int64
	Limit int64
}

// BrokerRepository persists broker profiles.
type BrokerRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Broker, error)
	List(ctx context.Context, filter BrokerFilter) ([]domain.Broker, int64, error)
	SetActive(ctx context.Context, id string, active bool) error
	Count(ctx context.Context) (int64, error)
}

// BrokerService exposes the admin broker operations.
type BrokerService interface {
	List(ctx context.Context, filter BrokerFilter) ([]domain.Broker, int64, error)
	ToggleActive(ctx context.Context, id string) (bool, error)
}
