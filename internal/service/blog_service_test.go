package service

import (
	"context"
	"errors"
	"testing"

	"github.com/isaacaji/portfolio/internal/model"
)

type mockBlogPostRepository struct {
	listFunc func(ctx context.Context) ([]*model.BlogPost, error)
}

func (m *mockBlogPostRepository) List(ctx context.Context) ([]*model.BlogPost, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func postsRepo(posts ...*model.BlogPost) *mockBlogPostRepository {
	return &mockBlogPostRepository{
		listFunc: func(ctx context.Context) ([]*model.BlogPost, error) {
			return posts, nil
		},
	}
}

func TestBlogService_Published_HidesDrafts(t *testing.T) {
	svc := NewBlogService(postsRepo(
		&model.BlogPost{ID: "1", Slug: "one", Published: true},
		&model.BlogPost{ID: "2", Slug: "two", Published: false},
		&model.BlogPost{ID: "3", Slug: "three", Published: true},
	))

	posts, err := svc.Published(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 published posts, got %d", len(posts))
	}
	for _, p := range posts {
		if !p.Published {
			t.Errorf("unpublished post %s leaked", p.ID)
		}
	}
}

func TestBlogService_Published_FailureDegradesToEmpty(t *testing.T) {
	svc := NewBlogService(&mockBlogPostRepository{
		listFunc: func(ctx context.Context) ([]*model.BlogPost, error) {
			return nil, errors.New("read failed")
		},
	})

	posts, err := svc.Published(context.Background())
	if !errors.Is(err, ErrDataLoad) {
		t.Errorf("expected ErrDataLoad, got %v", err)
	}
	if posts == nil || len(posts) != 0 {
		t.Errorf("expected empty non-nil slice, got %+v", posts)
	}
}

func TestBlogService_Recent(t *testing.T) {
	svc := NewBlogService(postsRepo(
		&model.BlogPost{ID: "1", Published: false},
		&model.BlogPost{ID: "2", Published: true},
		&model.BlogPost{ID: "3", Published: true},
		&model.BlogPost{ID: "4", Published: true},
	))

	posts, err := svc.Recent(context.Background(), RecentPostCount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 2 || posts[0].ID != "2" || posts[1].ID != "3" {
		t.Errorf("unexpected recent posts: %+v", posts)
	}

	all, _ := svc.Recent(context.Background(), 10)
	if len(all) != 3 {
		t.Errorf("expected all 3 published posts, got %d", len(all))
	}
}

func TestBlogService_BySlug(t *testing.T) {
	svc := NewBlogService(postsRepo(
		&model.BlogPost{ID: "1", Slug: "live-post", Published: true},
		&model.BlogPost{ID: "2", Slug: "draft-post", Published: false},
	))

	post, err := svc.BySlug(context.Background(), "live-post")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.ID != "1" {
		t.Errorf("expected post 1, got %s", post.ID)
	}

	if _, err := svc.BySlug(context.Background(), "draft-post"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for draft, got %v", err)
	}
	if _, err := svc.BySlug(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing slug, got %v", err)
	}
}

func TestBlogService_BySlug_LoadFailure(t *testing.T) {
	svc := NewBlogService(&mockBlogPostRepository{
		listFunc: func(ctx context.Context) ([]*model.BlogPost, error) {
			return nil, errors.New("read failed")
		},
	})
	if _, err := svc.BySlug(context.Background(), "x"); !errors.Is(err, ErrDataLoad) {
		t.Errorf("expected ErrDataLoad, got %v", err)
	}
}
