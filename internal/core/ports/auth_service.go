package ports

import (
	"context"

	"github.com/saluimoveis/admin-api/internal/core/domain"
)

// AuthService is the login gate for the back office.
type AuthService interface {
	// Login runs the full flow: rate check, credential lookup, password
	// verify, role check, token issuance. clientID identifies the
	// caller for rate limiting (normally the source IP).
	Login(ctx context.Context, email, password, clientID string) (string, *domain.User, error)

	// CurrentAdmin resolves a bearer token to the acting admin:
	// domain.ErrUnauthenticated for invalid tokens or unknown subjects,
	// domain.ErrAdminOnly when the subject exists but is not an admin.
	CurrentAdmin(ctx context.Context, rawToken string) (*domain.User, error)
}

// LoginLimiter caps repeated login attempts per client identifier.
// Allow records the attempt when it is admitted; a rejected attempt
// leaves the window untouched.
type LoginLimiter interface {
	Allow(clientID string) bool
}
