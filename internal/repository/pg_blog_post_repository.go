package repository

import (
	"context"

	"github.com/isaacaji/portfolio/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgBlogPostRepository is the PostgreSQL implementation of BlogPostRepository.
type PgBlogPostRepository struct {
	pool *pgxpool.Pool
}

func NewPgBlogPostRepository(pool *pgxpool.Pool) *PgBlogPostRepository {
	return &PgBlogPostRepository{pool: pool}
}

var _ BlogPostRepository = (*PgBlogPostRepository)(nil)

// List returns every post, drafts included, newest first within position.
func (r *PgBlogPostRepository) List(ctx context.Context) ([]*model.BlogPost, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, slug, excerpt, content, tags, reading_time, published, featured,
		        to_char(created_date, 'YYYY-MM-DD'), external_url, platform
		 FROM blog_posts
		 ORDER BY position, created_date DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*model.BlogPost
	for rows.Next() {
		var p model.BlogPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.Tags, &p.ReadingTime,
			&p.Published, &p.Featured, &p.CreatedDate, &p.ExternalURL, &p.Platform); err != nil {
			return nil, err
		}
		if p.Tags == nil {
			p.Tags = []string{}
		}
		posts = append(posts, &p)
	}
	return posts, rows.Err()
}
