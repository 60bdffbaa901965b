package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/saluimoveis/admin-api/internal/core/domain"
	"github.com/saluimoveis/admin-api/internal/core/ports"
)

// UserService implements admin user management.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) List(ctx context.Context, filter ports.UserFilter) ([]domain.User, int64, error) {
	if filter.Role != "" && !filter.Role.Valid() {
		return nil, 0, domain.ErrInvalidRole
	}
	return s.users.List(ctx, filter)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// Delete removes a user. Admins cannot delete their own account; the
// guard compares acting and target identity, not roles.
func (s *UserService) Delete(ctx context.Context, actorID, targetID string) error {
	user, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return err
	}

	if user.ID == actorID {
		return domain.ErrSelfDelete
	}

	if err := s.users.Delete(ctx, targetID); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", targetID).Str("deleted_by", actorID).Msg("user deleted")
	return nil
}
