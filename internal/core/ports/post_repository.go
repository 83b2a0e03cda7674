package ports

import (
	"context"

	"github.com/microblog/platform/internal/core/domain"
)

// PostRepository persists post-service posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context, limit, offset int64) ([]*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
}
