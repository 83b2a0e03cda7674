package ports

import (
	"context"

	"github.com/microblog/platform/internal/core/domain"
)

// AuthService implements signup, login, and server-side token verification.
type AuthService interface {
	Signup(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (token string, err error)
	VerifyToken(ctx context.Context, token string) (*domain.Identity, error)
}
