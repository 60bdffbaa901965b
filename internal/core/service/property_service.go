package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/saluimoveis/admin-api/internal/metrics"
	"github.com/saluimoveis/admin-api/internal/core/domain"
	"github.com/saluimoveis/admin-api/internal/core/ports"
)

// PropertyService implements admin property management.
type PropertyService struct {
	properties    ports.PropertyRepository
	favorites     ports.FavoriteRepository
	notifications ports.NotificationRepository
	logger        zerolog.Logger
}

func NewPropertyService(properties ports.PropertyRepository, favorites ports.FavoriteRepository, notifications ports.NotificationRepository, logger zerolog.Logger) *PropertyService {
	return &PropertyService{
		properties:    properties,
		favorites:     favorites,
		notifications: notifications,
		logger:        logger,
	}
}

func (s *PropertyService) List(ctx context.Context, filter ports.PropertyFilter) ([]domain.Property, int64, error) {
	return s.properties.List(ctx, filter)
}

func (s *PropertyService) ToggleActive(ctx context.Context, id string) (bool, error) {
	property, err := s.properties.FindByID(ctx, id)
	if err != nil {
		return false, err
	}

	active := !property.IsActive
	if err := s.properties.SetActive(ctx, id, active); err != nil {
		return false, err
	}

	s.logger.Info().Str("property_id", id).Bool("is_active", active).Msg("property toggled")

	// Deactivation notifies users who saved the listing. Best effort:
	// a fan-out failure must not undo the toggle.
	if !active {
		if err := s.notifyFavorites(ctx, property); err != nil {
			s.logger.Error().Err(err).Str("property_id", id).Msg("favorite notification fan-out failed")
		}
	}

	return active, nil
}

func (s *PropertyService) ToggleFeatured(ctx context.Context, id string) (bool, error) {
	property, err := s.properties.FindByID(ctx, id)
	if err != nil {
		return false, err
	}

	featured := !property.IsFeatured
	if err := s.properties.SetFeatured(ctx, id, featured); err != nil {
		return false, err
	}

	s.logger.Info().Str("property_id", id).Bool("is_featured", featured).Msg("property featured flag toggled")
	return featured, nil
}

func (s *PropertyService) notifyFavorites(ctx context.Context, property *domain.Property) error {
	userIDs, err := s.favorites.UserIDsByProperty(ctx, property.ID)
	if err != nil {
		return err
	}
	if len(userIDs) == 0 {
		return nil
	}

	label := property.Title
	if label == "" {
		label = property.PropertyType
	}

	now := time.Now().UTC()
	notifications := make([]domain.Notification, 0, len(userIDs))
	for _, userID := range userIDs {
		notifications = append(notifications, domain.Notification{
			ID:     uuid.NewString(),
			UserID: userID,
			Title:  "Imóvel não está mais disponível",
			Message: fmt.Sprintf("O imóvel '%s' em %s, %s que você favoritou não está mais disponível.",
				label, property.Neighborhood, property.City),
			Type:       domain.NotificationPropertyRemoved,
			Link:       fmt.Sprintf("/buscar?city=%s&type=%s", property.City, property.PropertyType),
			PropertyID: property.ID,
			CreatedAt:  now,
		})
	}

	if err := s.notifications.CreateMany(ctx, notifications); err != nil {
		return err
	}

	metrics.NotificationsCreatedTotal.Add(float64(len(notifications)))
	s.logger.Info().Str("property_id", property.ID).Int("count", len(notifications)).Msg("favorite users notified")
	return nil
}
