package ports

import (
	"context"

	"github.com/saluimoveis/admin-api/internal/core/domain"
)

// UserFilter narrows user listings. Role is matched exactly when set.
type UserFilter struct {
	Role  domain.UserRole
	Skip  int64
	Limit int64
}

// UserRepository is the credential and account store.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]domain.User, int64, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// UserService exposes the admin user-management operations.
type UserService interface {
	List(ctx context.Context, filter UserFilter) ([]domain.User, int64, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	// Delete removes a user. actorID is the acting admin; deleting
	// one's own account is rejected with domain.ErrSelfDelete.
	Delete(ctx context.Context, actorID, targetID string) error
}
