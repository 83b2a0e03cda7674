package ports

import (
	"context"

	"github.com/microblog/platform/internal/core/domain"
)

// CommentRepository persists comment-service comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID string, limit, offset int64) ([]*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	Delete(ctx context.Context, id string) error
}
