package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/isaacaji/portfolio/internal/filter"
	"github.com/isaacaji/portfolio/internal/model"
	"github.com/isaacaji/portfolio/internal/repository"
)

// ProjectServiceImpl is the ProjectService implementation.
type ProjectServiceImpl struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a ProjectService backed by the given repository.
func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &ProjectServiceImpl{projectRepo: projectRepo}
}

func (s *ProjectServiceImpl) List(ctx context.Context) ([]*model.Project, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		slog.Error("error loading projects", "error", err)
		return []*model.Project{}, fmt.Errorf("%w: projects: %v", ErrDataLoad, err)
	}
	if projects == nil {
		projects = []*model.Project{}
	}
	return projects, nil
}

func (s *ProjectServiceImpl) Featured(ctx context.Context) ([]*model.Project, error) {
	projects, err := s.List(ctx)
	return filter.Featured(projects), err
}
