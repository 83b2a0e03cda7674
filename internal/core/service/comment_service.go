package service

import (
	"context"
	"time"

	"github.com/microblog/platform/internal/core/domain"
	"github.com/microblog/platform/internal/core/ports"
)

// CommentService implements comment CRUD for the comment façade.
type CommentService struct {
	repo ports.CommentRepository
}

func NewCommentService(repo ports.CommentRepository) *CommentService {
	return &CommentService{repo: repo}
}

func (s *CommentService) Create(ctx context.Context, caller *domain.Identity, postID, body string) (*domain.Comment, error) {
	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Comment{
		PostID:    postID,
		AuthorID:  caller.UserID,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *CommentService) Get(ctx context.Context, id string) (*domain.Comment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CommentService) ListByPost(ctx context.Context, postID string, limit, offset int64) ([]*domain.Comment, error) {
	return s.repo.ListByPost(ctx, postID, normalizeLimit(limit), max64(offset, 0))
}

func (s *CommentService) Update(ctx context.Context, caller *domain.Identity, id, body string) (*domain.Comment, error) {
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != caller.UserID {
		return nil, domain.ErrForbidden
	}

	comment.Body = body
	comment.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, comment)
}

func (s *CommentService) Delete(ctx context.Context, caller *domain.Identity, id string) error {
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if comment.AuthorID != caller.UserID {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
