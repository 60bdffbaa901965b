package handler

import (
	"strings"
	"testing"
)

func TestValidator_LoginRequest(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&loginRequest{Email: "admin@salu.com", Password: "secret"}); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	err := v.Validate(&loginRequest{})
	if err == nil {
		t.Fatal("empty request accepted")
	}
	msg := err.Error()
	if !strings.Contains(msg, "email is required") || !strings.Contains(msg, "password is required") {
		t.Fatalf("expected both fields reported, got %q", msg)
	}

	err = v.Validate(&loginRequest{Email: "not-an-email", Password: "secret"})
	if err == nil || !strings.Contains(err.Error(), "email must be a valid email address") {
		t.Fatalf("expected email format rejection, got %v", err)
	}
}

func TestValidator_StatusRequest(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&updateContactStatusRequest{Status: "NEW"}); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	if err := v.Validate(&updateContactStatusRequest{}); err == nil {
		t.Fatal("missing status accepted")
	}
}
