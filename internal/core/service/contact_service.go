package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/saluimoveis/admin-api/internal/core/domain"
	"github.com/saluimoveis/admin-api/internal/core/ports"
)

// ContactService implements admin lead management.
type ContactService struct {
	contacts ports.ContactRepository
	logger   zerolog.Logger
}

func NewContactService(contacts ports.ContactRepository, logger zerolog.Logger) *ContactService {
	return &ContactService{contacts: contacts, logger: logger}
}

func (s *ContactService) List(ctx context.Context, filter ports.ContactFilter) ([]domain.Contact, int64, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, domain.ErrInvalidContactStatus
	}
	return s.contacts.List(ctx, filter)
}

func (s *ContactService) UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) error {
	if !status.Valid() {
		return domain.ErrInvalidContactStatus
	}

	if _, err := s.contacts.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.contacts.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.logger.Info().Str("contact_id", id).Str("status", string(status)).Msg("contact status updated")
	return nil
}
