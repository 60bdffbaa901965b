package ports

import (
	"context"

	"github.com/saluimoveis/admin-api/internal/core/domain"
)

// PropertyFilter narrows property listings. IsActive is a tri-state:
// nil means "any".
type PropertyFilter struct {
	IsActive *bool
	Skip     int64
	Limit    int64
}

// GroupCount is one bucket of a grouped count aggregation.
type GroupCount struct {
	Key   string `json:"key" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}

// PropertyRepository persists listings imported from the XML feed.
type PropertyRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	List(ctx context.Context, filter PropertyFilter) ([]domain.Property, int64, error)
	SetActive(ctx context.Context, id string, active bool) error
	SetFeatured(ctx context.Context, id string, featured bool) error
	Count(ctx context.Context, onlyActive bool) (int64, error)
	CountByType(ctx context.Context) ([]GroupCount, error)
	CountByPurpose(ctx context.Context) ([]GroupCount, error)
	TopViewed(ctx context.Context, limit int64) ([]domain.Property, error)
}

// PropertyService exposes the admin property operations.
type PropertyService interface {
	List(ctx context.Context, filter PropertyFilter) ([]domain.Property, int64, error)
	// ToggleActive flips is_active and returns the new value. When a
	// property goes inactive, users who favorited it are notified.
	ToggleActive(ctx context.Context, id string) (bool, error)
	// ToggleFeatured flips is_featured and returns the new value.
	ToggleFeatured(ctx context.Context, id string) (bool, error)
}
