package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/isaacaji/portfolio/internal/filter"
	"github.com/isaacaji/portfolio/internal/model"
	"github.com/isaacaji/portfolio/internal/service"
)

// BlogHandler serves the blog JSON API.
type BlogHandler struct {
	blogService service.BlogService
}

func NewBlogHandler(blogService service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

type blogListResponse struct {
	Posts    []*model.BlogPost `json:"posts"`
	Tags     []string          `json:"tags"`
	Selected string            `json:"selected"`
}

// List handles GET /api/blog?tag=. Tags always come from every published
// post, not just the filtered ones.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, _ := h.blogService.Published(r.Context())

	s := filter.Reduce(filter.NewTagState(), filter.Load(posts))
	s = filter.Reduce(s, filter.Select[*model.BlogPost](r.URL.Query().Get("tag")))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(blogListResponse{
		Posts:    s.View,
		Tags:     filter.Tags(posts),
		Selected: s.Selected,
	})
}

// Get handles GET /api/blog/{slug}.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.blogService.BySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		status, code := http.StatusInternalServerError, "internal_error"
		if errors.Is(err, service.ErrNotFound) {
			status, code = http.StatusNotFound, "not_found"
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(post)
}
