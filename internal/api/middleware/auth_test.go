package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/microblog/platform/internal/core/domain"
	"github.com/microblog/platform/internal/security"
)

func newTestAuthority(t *testing.T) *security.TokenAuthority {
	t.Helper()
	return security.NewTokenAuthority("secret", "HS256", time.Hour)
}

func TestLocalVerifier_ValidToken(t *testing.T) {
	tokens := newTestAuthority(t)
	token, err := tokens.Mint("user-1", "a@x.com")
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	v := NewLocalVerifier(tokens)
	identity, err := v.Authenticate(context.Background(), "Bearer "+token)
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if identity.UserID != "user-1" {
		t.Fatalf("expected user-1, got %q", identity.UserID)
	}
	if identity.Email != "a@x.com" {
		t.Fatalf("expected a@x.com, got %q", identity.Email)
	}
}

func TestLocalVerifier_SchemeCaseInsensitive(t *testing.T) {
	tokens := newTestAuthority(t)
	token, err := tokens.Mint("user-1", "")
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	v := NewLocalVerifier(tokens)
	if _, err := v.Authenticate(context.Background(), "bearer "+token); err != nil {
		t.Fatalf("lowercase scheme rejected: %v", err)
	}
	if _, err := v.Authenticate(context.Background(), "BEARER "+token); err != nil {
		t.Fatalf("uppercase scheme rejected: %v", err)
	}
}

func TestLocalVerifier_HeaderContract(t *testing.T) {
	v := NewLocalVerifier(newTestAuthority(t))

	for _, header := range []string{"", "Token abc", "Bearer", "Bearer "} {
		if _, err := v.Authenticate(context.Background(), header); err != domain.ErrUnauthorized {
			t.Fatalf("header %q: expected ErrUnauthorized, got %v", header, err)
		}
	}
}

func TestLocalVerifier_InvalidToken(t *testing.T) {
	v := NewLocalVerifier(newTestAuthority(t))

	if _, err := v.Authenticate(context.Background(), "Bearer not-a-token"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthMiddleware_InjectsIdentity(t *testing.T) {
	e := echo.New()
	tokens := newTestAuthority(t)
	token, err := tokens.Mint("user-1", "a@x.com")
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(NewLocalVerifier(tokens))
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get("user_id") != "user-1" {
			t.Fatalf("user_id not set")
		}
		if c.Get("email") != "a@x.com" {
			t.Fatalf("email not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(NewLocalVerifier(newTestAuthority(t)))
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
