package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/microblog/platform/internal/api/metrics"
	"github.com/microblog/platform/internal/core/domain"
	"github.com/microblog/platform/internal/core/ports"
	"github.com/microblog/platform/internal/security"
)

// bearerToken extracts the raw token from an Authorization header value.
// The scheme match is case-insensitive. A missing or malformed header is
// domain.ErrUnauthorized and must never trigger a network call.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", domain.ErrUnauthorized
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", domain.ErrUnauthorized
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", domain.ErrUnauthorized
	}
	return token, nil
}

// LocalVerifier validates tokens in-process against the shared secret.
// Zero network dependency; fails closed on any cryptographic error.
type LocalVerifier struct {
	tokens *security.TokenAuthority
}

func NewLocalVerifier(tokens *security.TokenAuthority) *LocalVerifier {
	return &LocalVerifier{tokens: tokens}
}

func (v *LocalVerifier) Authenticate(_ context.Context, header string) (*domain.Identity, error) {
	raw, err := bearerToken(header)
	if err != nil {
		metrics.TokenVerificationsTotal.WithLabelValues("local", "unauthorized").Inc()
		return nil, err
	}

	claims, err := v.tokens.Verify(raw)
	if err != nil {
		metrics.TokenVerificationsTotal.WithLabelValues("local", "invalid").Inc()
		return nil, err
	}

	metrics.TokenVerificationsTotal.WithLabelValues("local", "ok").Inc()
	return &domain.Identity{UserID: claims.Subject, Email: claims.Email}, nil
}

// Auth validates the bearer token via the given verifier and injects the
// resulting identity into the echo context under "user_id" and "email".
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := verifier.Authenticate(
				c.Request().Context(),
				c.Request().Header.Get("Authorization"),
			)
			if err != nil {
				return err
			}

			c.Set("user_id", identity.UserID)
			c.Set("email", identity.Email)

			return next(c)
		}
	}
}
