package repository

import (
	"context"
	"testing"

	"github.com/isaacaji/portfolio/internal/model"
)

func TestSeedProjectRepository_ListDefaultOrder(t *testing.T) {
	repo := NewSeedProjectRepository()
	projects, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].Title != "SonusShare" || projects[1].Title != "Where is the Green?" {
		t.Errorf("unexpected order: %q, %q", projects[0].Title, projects[1].Title)
	}
	for _, p := range projects {
		if !p.Status.Known() {
			t.Errorf("project %s has unknown status %q", p.ID, p.Status)
		}
	}
}

func TestSeedProjectRepository_ListReturnsCopies(t *testing.T) {
	repo := NewSeedProjectRepository()
	first, _ := repo.List(context.Background())
	first[0].Title = "mutated"
	first[0].Tags[0] = "mutated"
	*first[0].LiveURL = "mutated"

	second, _ := repo.List(context.Background())
	if second[0].Title != "SonusShare" {
		t.Errorf("title leaked between calls: %q", second[0].Title)
	}
	if second[0].Tags[0] != "Music Tech" {
		t.Errorf("tags leaked between calls: %q", second[0].Tags[0])
	}
	if *second[0].LiveURL != "https://sonusshare.com" {
		t.Errorf("live_url leaked between calls: %q", *second[0].LiveURL)
	}
}

func TestSeedProjectRepository_CustomProjects(t *testing.T) {
	repo := NewSeedProjectRepository(&model.Project{ID: "x", Status: model.StatusCompleted})
	projects, _ := repo.List(context.Background())
	if len(projects) != 1 || projects[0].ID != "x" {
		t.Fatalf("expected the custom project only, got %+v", projects)
	}
}

func TestSeedBlogPostRepository_List(t *testing.T) {
	repo := NewSeedBlogPostRepository()
	posts, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	for _, p := range posts {
		if !p.Published {
			t.Errorf("seed post %s should be published", p.ID)
		}
		if p.Platform == nil || *p.Platform != "Medium" {
			t.Errorf("seed post %s should link to Medium", p.ID)
		}
	}

	posts[0].Tags = append(posts[0].Tags[:0], "changed")
	again, _ := repo.List(context.Background())
	if again[0].Tags[0] != "Technical" {
		t.Errorf("tags leaked between calls: %v", again[0].Tags)
	}
}
