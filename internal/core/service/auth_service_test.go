package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/saluimoveis/admin-api/internal/core/domain"
	"github.com/saluimoveis/admin-api/internal/core/ports"
	"github.com/saluimoveis/admin-api/internal/core/token"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by ID
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		clone := *u
		r.users[u.ID] = &clone
	}
	return r
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) List(_ context.Context, filter ports.UserFilter) ([]domain.User, int64, error) {
	var out []domain.User
	for _, u := range r.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

// stubLimiter allows everything unless blocked is set.
type stubLimiter struct {
	blocked bool
	calls   int
}

func (l *stubLimiter) Allow(string) bool {
	l.calls++
	return !l.blocked
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hash)
}

func adminUser(t *testing.T) *domain.User {
	t.Helper()
	return &domain.User{
		ID:           "admin-1",
		Name:         "Admin Test",
		Email:        "admin@test.com",
		PasswordHash: mustHash(t, "admin123"),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}
}

func newAuthService(repo ports.UserRepository, limiter ports.LoginLimiter) (*AuthService, *token.Manager) {
	tokens := token.NewManager("test-secret", time.Hour)
	return NewAuthService(repo, limiter, tokens, zerolog.Nop()), tokens
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo(adminUser(t))
	svc, tokens := newAuthService(repo, &stubLimiter{})

	raw, user, err := svc.Login(context.Background(), "admin@test.com", "admin123", "10.0.0.1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if raw == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Email != "admin@test.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := tokens.Verify(raw)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Subject != "admin-1" {
		t.Fatalf("expected subject admin-1, got %q", claims.Subject)
	}
}

func TestAuthService_Login_RateLimited(t *testing.T) {
	repo := newStubUserRepo(adminUser(t))
	svc, _ := newAuthService(repo, &stubLimiter{blocked: true})

	// Rate limiting wins even with correct credentials.
	if _, _, err := svc.Login(context.Background(), "admin@test.com", "admin123", "10.0.0.1"); err != domain.ErrRateLimited {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestAuthService_Login_NonEnumeration(t *testing.T) {
	repo := newStubUserRepo(adminUser(t), &domain.User{
		ID:    "social-1",
		Email: "social@test.com",
		Role:  domain.RoleAdmin, // admin but no local password
	})
	svc, _ := newAuthService(repo, &stubLimiter{})

	cases := []struct{ name, email, password string }{
		{"unknown email", "nobody@test.com", "whatever"},
		{"wrong password", "admin@test.com", "wrong"},
		{"no password hash", "social@test.com", "whatever"},
	}
	for _, tc := range cases {
		_, _, err := svc.Login(context.Background(), tc.email, tc.password, "10.0.0.1")
		if err != domain.ErrInvalidCredentials {
			t.Fatalf("%s: expected ErrInvalidCredentials, got %v", tc.name, err)
		}
	}
}

func TestAuthService_Login_NonAdminRejected(t *testing.T) {
	for _, role := range []domain.UserRole{domain.RoleUser, domain.RoleOwner, domain.RoleBroker} {
		repo := newStubUserRepo(&domain.User{
			ID:           "u-1",
			Email:        "user@test.com",
			PasswordHash: mustHash(t, "user123"),
			Role:         role,
		})
		svc, _ := newAuthService(repo, &stubLimiter{})

		// Correct password, wrong role: distinguishable rejection.
		if _, _, err := svc.Login(context.Background(), "user@test.com", "user123", "10.0.0.1"); err != domain.ErrAdminOnly {
			t.Fatalf("role %s: expected ErrAdminOnly, got %v", role, err)
		}
	}
}

func TestAuthService_CurrentAdmin(t *testing.T) {
	admin := adminUser(t)
	repo := newStubUserRepo(admin, &domain.User{
		ID:           "u-1",
		Email:        "user@test.com",
		PasswordHash: mustHash(t, "x"),
		Role:         domain.RoleUser,
	})
	svc, tokens := newAuthService(repo, &stubLimiter{})

	raw, err := tokens.Issue(admin.ID)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	got, err := svc.CurrentAdmin(context.Background(), raw)
	if err != nil {
		t.Fatalf("CurrentAdmin: %v", err)
	}
	if got.ID != admin.ID {
		t.Fatalf("expected %s, got %s", admin.ID, got.ID)
	}

	// Garbage token.
	if _, err := svc.CurrentAdmin(context.Background(), "garbage"); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated for bad token, got %v", err)
	}

	// Valid token whose subject no longer exists.
	ghost, _ := tokens.Issue("deleted-user")
	if _, err := svc.CurrentAdmin(context.Background(), ghost); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated for unknown subject, got %v", err)
	}

	// Valid token for a non-admin subject.
	nonAdmin, _ := tokens.Issue("u-1")
	if _, err := svc.CurrentAdmin(context.Background(), nonAdmin); err != domain.ErrAdminOnly {
		t.Fatalf("expected ErrAdminOnly, got %v", err)
	}
}
