package ports

import (
	"context"

	"github.com/microblog/platform/internal/core/domain"
)

// PostService implements post CRUD with ownership enforcement and a
// cache-aside read path.
type PostService interface {
	Create(ctx context.Context, caller *domain.Identity, title, body string) (*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context, limit, offset int64) ([]*domain.Post, error)
	Update(ctx context.Context, caller *domain.Identity, id string, patch domain.PostPatch) (*domain.Post, error)
	Delete(ctx context.Context, caller *domain.Identity, id string) error
}
