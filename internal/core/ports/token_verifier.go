package ports

import (
	"context"

	"github.com/microblog/platform/internal/core/domain"
)

// TokenVerifier authenticates an Authorization header value. Local and
// delegated implementations are interchangeable: same return shape, same
// error taxonomy.
//
// Errors:
//   - domain.ErrUnauthorized: header missing or not a bearer scheme; no
//     verification is attempted.
//   - domain.ErrInvalidToken: the token itself was rejected.
//   - domain.ErrDependencyUnavailable: a delegated verification call
//     failed at the transport level, so the token's validity is unknown.
type TokenVerifier interface {
	Authenticate(ctx context.Context, authorizationHeader string) (*domain.Identity, error)
}
