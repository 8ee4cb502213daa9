package repository

import (
	"context"

	"github.com/isaacaji/portfolio/internal/model"
)

// SeedProjectRepository serves the built-in project list. It never fails.
type SeedProjectRepository struct {
	projects []*model.Project
}

// NewSeedProjectRepository returns a repository over the given projects,
// or over the default portfolio when none are given.
func NewSeedProjectRepository(projects ...*model.Project) *SeedProjectRepository {
	if len(projects) == 0 {
		projects = seedProjects()
	}
	return &SeedProjectRepository{projects: projects}
}

var _ ProjectRepository = (*SeedProjectRepository)(nil)

// List returns copies of the seed projects in insertion order.
func (r *SeedProjectRepository) List(_ context.Context) ([]*model.Project, error) {
	out := make([]*model.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, p.Clone())
	}
	return out, nil
}

// SeedBlogPostRepository serves the built-in blog post list. It never fails.
type SeedBlogPostRepository struct {
	posts []*model.BlogPost
}

func NewSeedBlogPostRepository(posts ...*model.BlogPost) *SeedBlogPostRepository {
	if len(posts) == 0 {
		posts = seedBlogPosts()
	}
	return &SeedBlogPostRepository{posts: posts}
}

var _ BlogPostRepository = (*SeedBlogPostRepository)(nil)

func (r *SeedBlogPostRepository) List(_ context.Context) ([]*model.BlogPost, error) {
	out := make([]*model.BlogPost, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, p.Clone())
	}
	return out, nil
}

func seedProjects() []*model.Project {
	return []*model.Project{
		{
			ID:                  "1",
			Title:               "SonusShare",
			Description:         "Playlist conversion tool enabling seamless music sharing across platforms. Convert playlists between Spotify, Apple Music, YouTube Music, and more.",
			DetailedDescription: "A full-stack web application that bridges the gap between music streaming platforms, allowing users to seamlessly convert their playlists across different services. Built with modern web technologies and API integrations.",
			Status:              model.StatusLive,
			Tags:                []string{"Music Tech", "Web App", "API Integration", "Product"},
			LiveURL:             model.StringPtr("https://sonusshare.com"),
			Featured:            true,
			CreatedDate:         "2024-12-01",
		},
		{
			ID:                  "2",
			Title:               "Where is the Green?",
			Description:         "Interactive emissions dashboard for sustainability tracking and environmental impact analysis.",
			DetailedDescription: "A comprehensive sustainability tracking platform that helps organizations monitor their environmental impact through data visualization and analytics.",
			Status:              model.StatusPlanned,
			Tags:                []string{"Sustainability", "Data Viz", "Analytics", "Dashboard"},
			Featured:            false,
			CreatedDate:         "2024-11-15",
		},
	}
}

func seedBlogPosts() []*model.BlogPost {
	return []*model.BlogPost{
		{
			ID:          "1",
			Title:       "SonusShare: Breaking Down the Walls of Music Streaming Platforms",
			Slug:        "sonusshare-breaking-down-the-walls-of-music-streaming-platforms",
			Excerpt:     "Exploring how SonusShare is revolutionizing music streaming by breaking down traditional platform barriers and creating a more open ecosystem for artists and listeners.",
			Content:     "...",
			Tags:        []string{"Technical", "Business"},
			ReadingTime: intPtr(8),
			Published:   true,
			Featured:    true,
			CreatedDate: "2024-12-15",
			ExternalURL: model.StringPtr("https://medium.com/@ajifowobajeisaac/sonusshare-breaking-down-the-walls-of-music-streaming-platforms-5a50d3560453"),
			Platform:    model.StringPtr("Medium"),
		},
		{
			ID:          "2",
			Title:       "What Happens When You Type google.com in Your Browser",
			Slug:        "what-happens-when-you-type-google-com-in-your-browser",
			Excerpt:     "A deep dive into the technical journey from typing a URL to seeing a webpage, covering DNS resolution, HTTP requests, and browser rendering.",
			Content:     "...",
			Tags:        []string{"Technical"},
			ReadingTime: intPtr(12),
			Published:   true,
			Featured:    true,
			CreatedDate: "2024-11-20",
			ExternalURL: model.StringPtr("https://medium.com/@ajifowobajeisaac/what-happens-when-you-type-google-com-in-your-browser-8afb9397ed8b"),
			Platform:    model.StringPtr("Medium"),
		},
	}
}

func intPtr(n int) *int { return &n }
