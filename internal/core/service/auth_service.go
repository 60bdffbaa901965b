package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/saluimoveis/admin-api/internal/metrics"
	"github.com/saluimoveis/admin-api/internal/core/domain"
	"github.com/saluimoveis/admin-api/internal/core/ports"
	"github.com/saluimoveis/admin-api/internal/core/token"
)

// AuthService implements the admin login gate. The first failing check
// wins: rate limit, then credentials, then role.
type AuthService struct {
	users   ports.UserRepository
	limiter ports.LoginLimiter
	tokens  *token.Manager
	logger  zerolog.Logger
}

func NewAuthService(users ports.UserRepository, limiter ports.LoginLimiter, tokens *token.Manager, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, limiter: limiter, tokens: tokens, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, email, password, clientID string) (string, *domain.User, error) {
	if !s.limiter.Allow(clientID) {
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.OutcomeRateLimited).Inc()
		s.logger.Warn().Str("client_id", clientID).Msg("login rate limited")
		return "", nil, domain.ErrRateLimited
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues(metrics.OutcomeBadPassword).Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return "", nil, err
	}

	// Accounts without a local password (social sign-in) cannot use
	// this path. Indistinguishable from a wrong password on purpose.
	if user.PasswordHash == "" {
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.OutcomeBadPassword).Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.OutcomeBadPassword).Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	if user.Role != domain.RoleAdmin {
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.OutcomeForbidden).Inc()
		s.logger.Warn().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("non-admin login rejected")
		return "", nil, domain.ErrAdminOnly
	}

	tkn, err := s.tokens.Issue(user.ID)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return "", nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("admin logged in")
	return tkn, user, nil
}

func (s *AuthService) CurrentAdmin(ctx context.Context, rawToken string) (*domain.User, error) {
	claims, err := s.tokens.Verify(rawToken)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	if user.Role != domain.RoleAdmin {
		return nil, domain.ErrAdminOnly
	}

	return user, nil
}
