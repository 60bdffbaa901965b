package ports

import (
	"context"

	"github.com/saluimoveis/admin-api/internal/core/domain"
)

// FavoriteRepository reads saved-property relations.
type FavoriteRepository interface {
	// UserIDsByProperty returns the users who favorited the property.
	UserIDsByProperty(ctx context.Context, propertyID string) ([]string, error)
}

// NotificationRepository persists in-app notifications.
type NotificationRepository interface {
	CreateMany(ctx context.Context, notifications []domain.Notification) error
}
