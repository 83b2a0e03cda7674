package ports

import (
	"context"

	"github.com/microblog/platform/internal/core/domain"
)

// ProfileService implements profile CRUD with ownership enforcement.
// Mutations require the caller's verified identity; updating or deleting
// someone else's profile fails with domain.ErrForbidden.
type ProfileService interface {
	Create(ctx context.Context, caller *domain.Identity, displayName, bio string) (*domain.Profile, error)
	Get(ctx context.Context, id string) (*domain.Profile, error)
	List(ctx context.Context, limit, offset int64) ([]*domain.Profile, error)
	Update(ctx context.Context, caller *domain.Identity, id string, displayName, bio *string) (*domain.Profile, error)
	Delete(ctx context.Context, caller *domain.Identity, id string) error
}
