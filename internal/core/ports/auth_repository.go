package ports

import (
	"context"

	"github.com/microblog/platform/internal/core/domain"
)

// AuthRepository persists auth-service accounts.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
