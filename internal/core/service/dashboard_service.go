package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/saluimoveis/admin-api/internal/metrics"
	"github.com/saluimoveis/admin-api/internal/core/ports"
)

const (
	recentContactsLimit = 10
	topPropertiesLimit  = 5
)

// DashboardService aggregates the admin dashboard from the listing
// repositories, fronted by a short-lived cache. Cache failures degrade
// to a direct rebuild; they never fail the request.
type DashboardService struct {
	users      ports.UserRepository
	properties ports.PropertyRepository
	contacts   ports.ContactRepository
	brokers    ports.BrokerRepository
	cache      ports.DashboardCache
	logger     zerolog.Logger
}

func NewDashboardService(
	users ports.UserRepository,
	properties ports.PropertyRepository,
	contacts ports.ContactRepository,
	brokers ports.BrokerRepository,
	cache ports.DashboardCache,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		users:      users,
		properties: properties,
		contacts:   contacts,
		brokers:    brokers,
		cache:      cache,
		logger:     logger,
	}
}

func (s *DashboardService) Snapshot(ctx context.Context) (*ports.DashboardSnapshot, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("dashboard cache read failed")
		} else if cached != nil {
			metrics.DashboardCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
		metrics.DashboardCacheTotal.WithLabelValues("miss").Inc()
	}

	snapshot, err := s.build(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, snapshot); err != nil {
			s.logger.Warn().Err(err).Msg("dashboard cache write failed")
		}
	}

	return snapshot, nil
}

func (s *DashboardService) build(ctx context.Context) (*ports.DashboardSnapshot, error) {
	totalProperties, err := s.properties.Count(ctx, false)
	if err != nil {
		return nil, err
	}
	activeProperties, err := s.properties.Count(ctx, true)
	if err != nil {
		return nil, err
	}
	totalContacts, err := s.contacts.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalBrokers, err := s.brokers.Count(ctx)
	if err != nil {
		return nil, err
	}

	byType, err := s.properties.CountByType(ctx)
	if err != nil {
		return nil, err
	}
	byPurpose, err := s.properties.CountByPurpose(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.contacts.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	recentContacts, err := s.contacts.Recent(ctx, recentContactsLimit)
	if err != nil {
		return nil, err
	}
	topProperties, err := s.properties.TopViewed(ctx, topPropertiesLimit)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardSnapshot{
		Overview: ports.DashboardOverview{
			TotalProperties:  totalProperties,
			ActiveProperties: activeProperties,
			TotalContacts:    totalContacts,
			TotalUsers:       totalUsers,
			TotalBrokers:     totalBrokers,
		},
		PropertiesByType:    byType,
		PropertiesByPurpose: byPurpose,
		ContactsByStatus:    byStatus,
		RecentContacts:      recentContacts,
		TopProperties:       topProperties,
	}, nil
}
