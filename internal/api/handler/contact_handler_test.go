package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/saluimoveis/admin-api/internal/core/domain"
	"github.com/saluimoveis/admin-api/internal/core/ports"
)

type stubContactService struct {
	listFn         func(ctx context.Context, filter ports.ContactFilter) ([]domain.Contact, int64, error)
	updateStatusFn func(ctx context.Context, id string, status domain.ContactStatus) error
}

func (s *stubContactService) List(ctx context.Context, filter ports.ContactFilter) ([]domain.Contact, int64, error) {
	return s.listFn(ctx, filter)
}

func (s *stubContactService) UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) error {
	return s.updateStatusFn(ctx, id, status)
}

func TestContactHandler_UpdateStatus(t *testing.T) {
	e := newTestEcho()
	svc := &stubContactService{
		updateStatusFn: func(ctx context.Context, id string, status domain.ContactStatus) error {
			if id != "contact-1" || status != domain.ContactConverted {
				t.Fatalf("unexpected args: %s %s", id, status)
			}
			return nil
		},
	}
	h := NewContactHandler(svc)

	body := strings.NewReader(`{"status":"CONVERTED"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/contacts/contact-1/status", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("contact-1")

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "CONVERTED" || resp["message"] != "Contact status updated" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestContactHandler_UpdateStatus_InvalidStatusPassesThrough(t *testing.T) {
	e := newTestEcho()
	svc := &stubContactService{
		updateStatusFn: func(ctx context.Context, id string, status domain.ContactStatus) error {
			return domain.ErrInvalidContactStatus
		},
	}
	h := NewContactHandler(svc)

	body := strings.NewReader(`{"status":"BOGUS"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/contacts/contact-1/status", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("contact-1")

	if err := h.UpdateStatus(c); !errors.Is(err, domain.ErrInvalidContactStatus) {
		t.Fatalf("expected ErrInvalidContactStatus, got %v", err)
	}
}

func TestContactHandler_UpdateStatus_MissingBody(t *testing.T) {
	e := newTestEcho()
	svc := &stubContactService{
		updateStatusFn: func(ctx context.Context, id string, status domain.ContactStatus) error {
			t.Fatal("should not be called")
			return nil
		},
	}
	h := NewContactHandler(svc)

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/contacts/contact-1/status", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.UpdateStatus(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestContactHandler_List_StatusFilter(t *testing.T) {
	e := newTestEcho()
	svc := &stubContactService{
		listFn: func(ctx context.Context, filter ports.ContactFilter) ([]domain.Contact, int64, error) {
			if filter.Status != domain.ContactNew {
				t.Fatalf("unexpected filter: %+v", filter)
			}
			return []domain.Contact{{ID: "contact-1", Status: domain.ContactNew}}, 1, nil
		},
	}
	h := NewContactHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/contacts?status=NEW", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
