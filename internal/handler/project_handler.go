package handler

import (
	"encoding/json"
	"net/http"

	"github.com/isaacaji/portfolio/internal/filter"
	"github.com/isaacaji/portfolio/internal/model"
	"github.com/isaacaji/portfolio/internal/service"
)

// ProjectHandler serves the projects JSON API.
type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

type projectListResponse struct {
	Projects []*model.Project     `json:"projects"`
	Filters  []model.FilterOption `json:"filters"`
	Selected string               `json:"selected"`
}

// List handles GET /api/projects?status=. A failed load is logged by the
// service and answered with an empty list.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, _ := h.projectService.List(r.Context())

	s := filter.Reduce(filter.NewStatusState(), filter.Load(projects))
	s = filter.Reduce(s, filter.Select[*model.Project](r.URL.Query().Get("status")))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(projectListResponse{
		Projects: s.View,
		Filters:  model.ProjectStatusOptions,
		Selected: s.Selected,
	})
}
