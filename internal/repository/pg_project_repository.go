package repository

import (
	"context"

	"github.com/isaacaji/portfolio/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

// List returns all projects ordered by position, then creation date.
func (r *PgProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, detailed_description, status, tags,
		        live_url, github_url, image_url, featured, to_char(created_date, 'YYYY-MM-DD')
		 FROM projects
		 ORDER BY position, created_date DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		var p model.Project
		var status string
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.DetailedDescription, &status, &p.Tags,
			&p.LiveURL, &p.GitHubURL, &p.ImageURL, &p.Featured, &p.CreatedDate); err != nil {
			return nil, err
		}
		p.Status = model.ProjectStatus(status)
		if p.Tags == nil {
			p.Tags = []string{}
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}
