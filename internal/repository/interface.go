package repository

import (
	"context"

	"github.com/isaacaji/portfolio/internal/model"
)

// DB checks that the database connection is alive.
type DB interface {
	Ping(ctx context.Context) error
}

// ProjectRepository lists portfolio projects in display order.
type ProjectRepository interface {
	List(ctx context.Context) ([]*model.Project, error)
}

// BlogPostRepository lists blog posts in display order, published or not.
// Filtering to published posts happens in the service layer.
type BlogPostRepository interface {
	List(ctx context.Context) ([]*model.BlogPost, error)
}

// ContactRepository keeps a copy of contact form submissions.
type ContactRepository interface {
	Save(ctx context.Context, msg *model.ContactMessage) error
}
