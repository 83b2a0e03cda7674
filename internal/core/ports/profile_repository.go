package ports

import (
	"context"

	"github.com/microblog/platform/internal/core/domain"
)

// ProfileRepository persists user-service profiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
	FindByAuthUserID(ctx context.Context, authUserID string) (*domain.Profile, error)
	List(ctx context.Context, limit, offset int64) ([]*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	Delete(ctx context.Context, id string) error
}
