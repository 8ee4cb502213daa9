package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/isaacaji/portfolio/internal/model"
	"github.com/isaacaji/portfolio/internal/service"
)

func projectTitles(ps []*model.Project) []string {
	out := []string{}
	for _, p := range ps {
		out = append(out, p.Title)
	}
	return out
}

func postSlugs(ps []*model.BlogPost) []string {
	out := []string{}
	for _, p := range ps {
		out = append(out, p.Slug)
	}
	return out
}

func TestProjectHandler_List(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{
		listFunc: func(ctx context.Context) ([]*model.Project, error) { return testProjects(), nil },
	})

	tests := []struct {
		query    string
		selected string
		want     []string
	}{
		{"", "all", []string{"Live App", "Done App"}},
		{"?status=all", "all", []string{"Live App", "Done App"}},
		{"?status=completed", "completed", []string{"Done App"}},
		{"?status=planned", "planned", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/projects"+tt.query, nil)
			rec := httptest.NewRecorder()
			h.List(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			var resp projectListResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if diff := cmp.Diff(tt.want, projectTitles(resp.Projects)); diff != "" {
				t.Errorf("projects mismatch (-want +got):\n%s", diff)
			}
			if resp.Selected != tt.selected {
				t.Errorf("selected = %q, want %q", resp.Selected, tt.selected)
			}
			if len(resp.Filters) != len(model.ProjectStatusOptions) {
				t.Errorf("expected %d filters, got %d", len(model.ProjectStatusOptions), len(resp.Filters))
			}
		})
	}
}

func TestProjectHandler_List_LoadFailureIsEmpty(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{
		listFunc: func(ctx context.Context) ([]*model.Project, error) {
			return []*model.Project{}, fmt.Errorf("%w: db down", service.ErrDataLoad)
		},
	})

	req := httptest.NewRequest("GET", "/api/projects", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(rec.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(raw["projects"]) != "[]" {
		t.Errorf("expected empty array, got %s", raw["projects"])
	}
}

func TestBlogHandler_List_FiltersByTagAndReturnsAllTags(t *testing.T) {
	h := NewBlogHandler(&mockBlogService{
		publishedFunc: func(ctx context.Context) ([]*model.BlogPost, error) { return testPosts(), nil },
	})

	req := httptest.NewRequest("GET", "/api/blog?tag=Technical", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	var resp blogListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff([]string{"tech-post"}, postSlugs(resp.Posts)); diff != "" {
		t.Errorf("posts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"AI", "Business", "Technical"}, resp.Tags); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
	if resp.Selected != "Technical" {
		t.Errorf("selected = %q", resp.Selected)
	}
}

func TestBlogHandler_Get(t *testing.T) {
	h := NewBlogHandler(&mockBlogService{
		bySlugFunc: func(ctx context.Context, slug string) (*model.BlogPost, error) {
			if slug == "ai-post" {
				return testPosts()[0], nil
			}
			return nil, service.ErrNotFound
		},
	})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/blog/{slug}", h.Get)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/api/blog/ai-post", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var post model.BlogPost
	if err := json.NewDecoder(rec.Body).Decode(&post); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if post.Title != "AI Post" {
		t.Errorf("unexpected post %+v", post)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/api/blog/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "not_found" {
		t.Errorf("expected not_found, got %q", code)
	}
}
