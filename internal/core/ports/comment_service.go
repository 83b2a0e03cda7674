package ports

import (
	"context"

	"github.com/microblog/platform/internal/core/domain"
)

// CommentService implements comment CRUD with ownership enforcement.
type CommentService interface {
	Create(ctx context.Context, caller *domain.Identity, postID, body string) (*domain.Comment, error)
	Get(ctx context.Context, id string) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID string, limit, offset int64) ([]*domain.Comment, error)
	Update(ctx context.Context, caller *domain.Identity, id, body string) (*domain.Comment, error)
	Delete(ctx context.Context, caller *domain.Identity, id string) error
}
