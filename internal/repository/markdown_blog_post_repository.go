package repository

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/isaacaji/portfolio/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const wordsPerMinute = 200

// postFrontmatter is the YAML (or TOML) header of a Markdown post file.
type postFrontmatter struct {
	ID          string   `yaml:"id" toml:"id"`
	Title       string   `yaml:"title" toml:"title"`
	Slug        string   `yaml:"slug" toml:"slug"`
	Excerpt     string   `yaml:"excerpt" toml:"excerpt"`
	Tags        []string `yaml:"tags" toml:"tags"`
	ReadingTime *int     `yaml:"reading_time" toml:"reading_time"`
	Published   bool     `yaml:"published" toml:"published"`
	Featured    bool     `yaml:"featured" toml:"featured"`
	Date        string   `yaml:"date" toml:"date"`
	ExternalURL string   `yaml:"external_url" toml:"external_url"`
	Platform    string   `yaml:"platform" toml:"platform"`
}

// MarkdownBlogPostRepository reads posts from *.md files with a frontmatter
// header. Files are re-read on every List so edits show up without a restart.
type MarkdownBlogPostRepository struct {
	fsys fs.FS
}

// NewMarkdownBlogPostRepository reads posts from the root of fsys
// (typically os.DirFS(contentDir)).
func NewMarkdownBlogPostRepository(fsys fs.FS) *MarkdownBlogPostRepository {
	return &MarkdownBlogPostRepository{fsys: fsys}
}

var _ BlogPostRepository = (*MarkdownBlogPostRepository)(nil)

// List returns posts newest first; posts with the same date keep file name order.
func (r *MarkdownBlogPostRepository) List(ctx context.Context) ([]*model.BlogPost, error) {
	names, err := fs.Glob(r.fsys, "*.md")
	if err != nil {
		return nil, fmt.Errorf("markdown: glob: %w", err)
	}
	sort.Strings(names)

	posts := make([]*model.BlogPost, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		raw, err := fs.ReadFile(r.fsys, name)
		if err != nil {
			return nil, fmt.Errorf("markdown: read %s: %w", name, err)
		}
		post, err := parsePost(name, raw)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	// YYYY-MM-DD sorts lexically.
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedDate > posts[j].CreatedDate
	})
	return posts, nil
}

func parsePost(name string, raw []byte) (*model.BlogPost, error) {
	var fm postFrontmatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return nil, fmt.Errorf("markdown: frontmatter %s: %w", name, err)
	}

	base := strings.TrimSuffix(path.Base(name), path.Ext(name))
	post := &model.BlogPost{
		ID:          fm.ID,
		Title:       fm.Title,
		Slug:        fm.Slug,
		Excerpt:     fm.Excerpt,
		Content:     strings.TrimSpace(string(body)),
		Tags:        fm.Tags,
		ReadingTime: fm.ReadingTime,
		Published:   fm.Published,
		Featured:    fm.Featured,
		CreatedDate: fm.Date,
	}
	if post.ID == "" {
		post.ID = base
	}
	if post.Slug == "" {
		post.Slug = base
	}
	if post.Title == "" {
		post.Title = titleFromFileName(base)
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if post.ReadingTime == nil && post.Content != "" {
		minutes := (len(strings.Fields(post.Content)) + wordsPerMinute - 1) / wordsPerMinute
		post.ReadingTime = &minutes
	}
	if fm.ExternalURL != "" {
		post.ExternalURL = model.StringPtr(fm.ExternalURL)
	}
	if fm.Platform != "" {
		post.Platform = model.StringPtr(fm.Platform)
	}
	return post, nil
}

// titleFromFileName turns "my-first_post" into "My First Post".
func titleFromFileName(base string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return cases.Title(language.English).String(s)
}
