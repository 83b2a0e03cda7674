package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/microblog/platform/internal/core/domain"
)

type stubCommentRepo struct {
	comments map[string]*domain.Comment
	nextID   int
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[string]*domain.Comment)}
}

func (r *stubCommentRepo) Create(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	r.nextID++
	clone := *comment
	clone.ID = strconv.Itoa(r.nextID)
	r.comments[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCommentRepo) FindByID(_ context.Context, id string) (*domain.Comment, error) {
	if c, ok := r.comments[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrCommentNotFound
}

func (r *stubCommentRepo) ListByPost(_ context.Context, postID string, limit, offset int64) ([]*domain.Comment, error) {
	var out []*domain.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubCommentRepo) Update(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	if _, ok := r.comments[comment.ID]; !ok {
		return nil, domain.ErrCommentNotFound
	}
	clone := *comment
	r.comments[comment.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.comments[id]; !ok {
		return domain.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

func TestCommentService_CreateAndListByPost(t *testing.T) {
	svc := NewCommentService(newStubCommentRepo())

	if _, err := svc.Create(context.Background(), author("user-1"), "post-1", "first"); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Create(context.Background(), author("user-2"), "post-1", "second"); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Create(context.Background(), author("user-1"), "post-2", "elsewhere"); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	comments, err := svc.ListByPost(context.Background(), "post-1", 0, 0)
	if err != nil {
		t.Fatalf("ListByPost returned error: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments on post-1, got %d", len(comments))
	}
}

func TestCommentService_OwnershipEnforced(t *testing.T) {
	svc := NewCommentService(newStubCommentRepo())

	comment, err := svc.Create(context.Background(), author("user-1"), "post-1", "body")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.Update(context.Background(), author("user-2"), comment.ID, "edited"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden on update, got %v", err)
	}
	if err := svc.Delete(context.Background(), author("user-2"), comment.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden on delete, got %v", err)
	}

	updated, err := svc.Update(context.Background(), author("user-1"), comment.ID, "edited")
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Body != "edited" {
		t.Fatalf("expected edited body, got %q", updated.Body)
	}
}

func TestCommentService_NotFound(t *testing.T) {
	svc := NewCommentService(newStubCommentRepo())

	if _, err := svc.Get(context.Background(), "missing"); err != domain.ErrCommentNotFound {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
	if _, err := svc.Update(context.Background(), author("user-1"), "missing", "body"); err != domain.ErrCommentNotFound {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}
