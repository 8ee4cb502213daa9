package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/isaacaji/portfolio/internal/filter"
	"github.com/isaacaji/portfolio/internal/model"
	"github.com/isaacaji/portfolio/internal/repository"
)

// RecentPostCount is how many posts the home page shows.
const RecentPostCount = 2

// BlogService serves published blog posts. Unpublished posts never leave it.
type BlogService interface {
	// Published returns published posts in display order. Failure behaves
	// like ProjectService.List.
	Published(ctx context.Context) ([]*model.BlogPost, error)

	// Recent returns the first n published posts.
	Recent(ctx context.Context, n int) ([]*model.BlogPost, error)

	// BySlug returns the published post with the given slug, or ErrNotFound.
	BySlug(ctx context.Context, slug string) (*model.BlogPost, error)
}

type blogServiceImpl struct {
	postRepo repository.BlogPostRepository
}

func NewBlogService(postRepo repository.BlogPostRepository) BlogService {
	return &blogServiceImpl{postRepo: postRepo}
}

func (s *blogServiceImpl) Published(ctx context.Context) ([]*model.BlogPost, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		slog.Error("error loading blog posts", "error", err)
		return []*model.BlogPost{}, fmt.Errorf("%w: blog posts: %v", ErrDataLoad, err)
	}
	return filter.Published(posts), nil
}

func (s *blogServiceImpl) Recent(ctx context.Context, n int) ([]*model.BlogPost, error) {
	posts, err := s.Published(ctx)
	if n >= 0 && len(posts) > n {
		posts = posts[:n]
	}
	return posts, err
}

func (s *blogServiceImpl) BySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	posts, err := s.Published(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, ErrNotFound
}
