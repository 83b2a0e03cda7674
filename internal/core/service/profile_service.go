package service

import (
	"context"
	"time"

	"github.com/microblog/platform/internal/core/domain"
	"github.com/microblog/platform/internal/core/ports"
)

// ProfileService implements profile CRUD for the user façade. Ownership
// is checked here against the verified token subject, not in storage.
type ProfileService struct {
	repo ports.ProfileRepository
}

func NewProfileService(repo ports.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) Create(ctx context.Context, caller *domain.Identity, displayName, bio string) (*domain.Profile, error) {
	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Profile{
		AuthUserID:  caller.UserID,
		DisplayName: displayName,
		Bio:         bio,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *ProfileService) Get(ctx context.Context, id string) (*domain.Profile, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProfileService) List(ctx context.Context, limit, offset int64) ([]*domain.Profile, error) {
	return s.repo.List(ctx, normalizeLimit(limit), max64(offset, 0))
}

func (s *ProfileService) Update(ctx context.Context, caller *domain.Identity, id string, displayName, bio *string) (*domain.Profile, error) {
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile.AuthUserID != caller.UserID {
		return nil, domain.ErrForbidden
	}

	if displayName != nil {
		profile.DisplayName = *displayName
	}
	if bio != nil {
		profile.Bio = *bio
	}
	profile.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, profile)
}

func (s *ProfileService) Delete(ctx context.Context, caller *domain.Identity, id string) error {
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if profile.AuthUserID != caller.UserID {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

const defaultListLimit = 50

func normalizeLimit(limit int64) int64 {
	if limit <= 0 || limit > 200 {
		return defaultListLimit
	}
	return limit
}

func max64(v, floor int64) int64 {
	if v < floor {
		return floor
	}
	return v
}
