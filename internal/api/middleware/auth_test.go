package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/saluimoveis/admin-api/internal/core/domain"
)

type stubAuthService struct {
	currentAdminFn func(ctx context.Context, rawToken string) (*domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password, clientID string) (string, *domain.User, error) {
	return "", nil, domain.ErrInvalidCredentials
}

func (s *stubAuthService) CurrentAdmin(ctx context.Context, rawToken string) (*domain.User, error) {
	return s.currentAdminFn(ctx, rawToken)
}

func invoke(t *testing.T, header string, svc *stubAuthService) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := RequireAdmin(svc)(next)(c)
	return c, err
}

func TestRequireAdmin_MissingHeader(t *testing.T) {
	svc := &stubAuthService{
		currentAdminFn: func(ctx context.Context, rawToken string) (*domain.User, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	_, err := invoke(t, "", svc)
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestRequireAdmin_BadScheme(t *testing.T) {
	svc := &stubAuthService{
		currentAdminFn: func(ctx context.Context, rawToken string) (*domain.User, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	_, err := invoke(t, "Basic dXNlcjpwYXNz", svc)
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestRequireAdmin_CaseInsensitiveBearer(t *testing.T) {
	svc := &stubAuthService{
		currentAdminFn: func(ctx context.Context, rawToken string) (*domain.User, error) {
			if rawToken != "tok" {
				t.Fatalf("unexpected token: %q", rawToken)
			}
			return &domain.User{ID: "admin-1", Role: domain.RoleAdmin}, nil
		},
	}
	c, err := invoke(t, "bearer tok", svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	admin, ok := c.Get(AdminUserKey).(*domain.User)
	if !ok || admin.ID != "admin-1" {
		t.Fatalf("admin not stored in context: %+v", admin)
	}
}

func TestRequireAdmin_ServiceErrorsPassThrough(t *testing.T) {
	for _, want := range []error{domain.ErrUnauthenticated, domain.ErrAdminOnly} {
		svc := &stubAuthService{
			currentAdminFn: func(ctx context.Context, rawToken string) (*domain.User, error) {
				return nil, want
			},
		}
		_, err := invoke(t, "Bearer tok", svc)
		if !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, err)
		}
	}
}
