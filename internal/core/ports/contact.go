package ports

import (
	"context"

	"github.com/saluimoveis/admin-api/internal/core/domain"
)

// ContactFilter narrows contact listings. Status is matched exactly
// when set.
type ContactFilter struct {
	Status domain.ContactStatus
	Skip   int64
	Limit  int64
}

// ContactRepository persists leads left on listings.
type ContactRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Contact, error)
	List(ctx context.Context, filter ContactFilter) ([]domain.Contact, int64, error)
	UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) ([]GroupCount, error)
	Recent(ctx context.Context, limit int64) ([]domain.Contact, error)
}

// ContactService exposes the admin contact operations.
type ContactService interface {
	List(ctx context.Context, filter ContactFilter) ([]domain.Contact, int64, error)
	UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) error
}
