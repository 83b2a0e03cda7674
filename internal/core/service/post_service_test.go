package service

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/microblog/platform/internal/core/domain"
)

type stubPostRepo struct {
	posts  map[string]*domain.Post
	nextID int
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.Post)}
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	r.nextID++
	clone := *post
	clone.ID = strconv.Itoa(r.nextID)
	r.posts[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	if p, ok := r.posts[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrPostNotFound
}

func (r *stubPostRepo) List(_ context.Context, limit, offset int64) ([]*domain.Post, error) {
	var out []*domain.Post
	for _, p := range r.posts {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubPostRepo) Update(_ context.Context, post *domain.Post) (*domain.Post, error) {
	if _, ok := r.posts[post.ID]; !ok {
		return nil, domain.ErrPostNotFound
	}
	clone := *post
	r.posts[post.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

type stubCache struct {
	entries map[string][]byte
	sets    int
	deletes int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]byte)}
}

func (c *stubCache) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *stubCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	c.sets++
	return nil
}

func (c *stubCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	c.deletes++
	return nil
}

func author(id string) *domain.Identity {
	return &domain.Identity{UserID: id}
}

func TestPostService_CreateSetsAuthor(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), nil, time.Minute, zerolog.Nop())

	post, err := svc.Create(context.Background(), author("user-1"), "title", "body")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if post.AuthorID != "user-1" {
		t.Fatalf("expected author user-1, got %q", post.AuthorID)
	}
}

// Updating or deleting someone else's post must fail with ErrForbidden
// regardless of payload validity.
func TestPostService_OwnershipEnforced(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), nil, time.Minute, zerolog.Nop())

	post, err := svc.Create(context.Background(), author("user-1"), "title", "body")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	title := "new title"
	if _, err := svc.Update(context.Background(), author("user-2"), post.ID, domain.PostPatch{Title: &title}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden on update, got %v", err)
	}
	if err := svc.Delete(context.Background(), author("user-2"), post.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden on delete, got %v", err)
	}

	// The owner still succeeds.
	if _, err := svc.Update(context.Background(), author("user-1"), post.ID, domain.PostPatch{Title: &title}); err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if err := svc.Delete(context.Background(), author("user-1"), post.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
}

func TestPostService_CacheAside(t *testing.T) {
	repo := newStubPostRepo()
	cache := newStubCache()
	svc := NewPostService(repo, cache, time.Minute, zerolog.Nop())

	post, err := svc.Create(context.Background(), author("user-1"), "title", "body")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// First read misses and populates the cache.
	if _, err := svc.Get(context.Background(), post.ID); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected 1 cache set, got %d", cache.sets)
	}

	// Second read is served from the cache even if storage loses the row.
	delete(repo.posts, post.ID)
	got, err := svc.Get(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("cached Get returned error: %v", err)
	}
	if got.ID != post.ID || got.Title != "title" {
		t.Fatalf("unexpected cached post: %+v", got)
	}
}

func TestPostService_WriteInvalidatesCache(t *testing.T) {
	repo := newStubPostRepo()
	cache := newStubCache()
	svc := NewPostService(repo, cache, time.Minute, zerolog.Nop())

	post, err := svc.Create(context.Background(), author("user-1"), "title", "body")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Get(context.Background(), post.ID); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	newBody := "updated body"
	if _, err := svc.Update(context.Background(), author("user-1"), post.ID, domain.PostPatch{Body: &newBody}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if cache.deletes != 1 {
		t.Fatalf("expected cache invalidation on update, got %d deletes", cache.deletes)
	}

	got, err := svc.Get(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("Get after update returned error: %v", err)
	}
	if got.Body != newBody {
		t.Fatalf("stale body %q after invalidation", got.Body)
	}
}

func TestPostService_GetNotFound(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), nil, time.Minute, zerolog.Nop())

	if _, err := svc.Get(context.Background(), "missing"); err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}
