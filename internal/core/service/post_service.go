package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/microblog/platform/internal/core/domain"
	"github.com/microblog/platform/internal/core/ports"
)

// PostService implements post CRUD for the post façade. Reads by id go
// cache-aside through a TTL cache; any write to a post invalidates its
// cache entry before hitting storage responses.
type PostService struct {
	repo     ports.PostRepository
	cache    ports.Cache
	cacheTTL time.Duration
	log      zerolog.Logger
}

// NewPostService builds a PostService. cache may be nil, which disables
// the cache-aside path entirely.
func NewPostService(repo ports.PostRepository, cache ports.Cache, cacheTTL time.Duration, log zerolog.Logger) *PostService {
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	return &PostService{repo: repo, cache: cache, cacheTTL: cacheTTL, log: log}
}

func (s *PostService) Create(ctx context.Context, caller *domain.Identity, title, body string) (*domain.Post, error) {
	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Post{
		AuthorID:  caller.UserID,
		Title:     title,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// Get serves a post cache-aside: cache hit returns immediately, a miss
// reads storage and populates the cache. Cache failures are logged and
// treated as misses — the cache is never load-bearing.
func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	if s.cache != nil {
		var cached domain.Post
		found, err := s.cache.GetJSON(ctx, s.cacheKey(id), &cached)
		if err != nil {
			s.log.Warn().Err(err).Str("post_id", id).Msg("post cache read failed")
		} else if found {
			return &cached, nil
		}
	}

	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, s.cacheKey(id), post, s.cacheTTL); err != nil {
			s.log.Warn().Err(err).Str("post_id", id).Msg("post cache write failed")
		}
	}
	return post, nil
}

func (s *PostService) List(ctx context.Context, limit, offset int64) ([]*domain.Post, error) {
	return s.repo.List(ctx, normalizeLimit(limit), max64(offset, 0))
}

func (s *PostService) Update(ctx context.Context, caller *domain.Identity, id string, patch domain.PostPatch) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != caller.UserID {
		return nil, domain.ErrForbidden
	}

	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Body != nil {
		post.Body = *patch.Body
	}
	post.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return updated, nil
}

func (s *PostService) Delete(ctx context.Context, caller *domain.Identity, id string) error {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if post.AuthorID != caller.UserID {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *PostService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, s.cacheKey(id)); err != nil {
		s.log.Warn().Err(err).Str("post_id", id).Msg("post cache invalidation failed")
	}
}

func (s *PostService) cacheKey(id string) string {
	return fmt.Sprintf("post:%s", id)
}
