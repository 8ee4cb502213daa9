package service

import (
	"context"

	"github.com/isaacaji/portfolio/internal/model"
)

// ProjectService serves the portfolio projects to pages.
type ProjectService interface {
	// List returns every project in display order. On a provider failure it
	// logs, returns an empty slice and an error wrapping ErrDataLoad.
	List(ctx context.Context) ([]*model.Project, error)

	// Featured returns the projects promoted on the home page.
	Featured(ctx context.Context) ([]*model.Project, error)
}
