// Package filter derives the visible list on a listing page from the full
// collection and the visitor's current selection (a tag, a status, or "all").
package filter

import "github.com/isaacaji/portfolio/internal/model"

// All is the selection that lets every item through.
const All = "all"

// IsAll reports whether sel selects everything. An unset selection counts.
func IsAll(sel string) bool {
	return sel == "" || sel == All
}

// Matcher reports whether item matches the selected discriminator.
type Matcher[T any] func(item T, sel string) bool

// Apply returns the items that match sel, in their original order.
// The result is never nil and never shares a backing array with items.
func Apply[T any](items []T, sel string, match Matcher[T]) []T {
	if IsAll(sel) {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if match(item, sel) {
			out = append(out, item)
		}
	}
	return out
}

// MatchTag matches posts carrying the selected tag.
func MatchTag(p *model.BlogPost, tag string) bool {
	return p.HasTag(tag)
}

// MatchStatus matches projects whose status equals the selection exactly.
func MatchStatus(p *model.Project, status string) bool {
	return string(p.Status) == status
}

// ByTag keeps posts tagged with tag.
func ByTag(posts []*model.BlogPost, tag string) []*model.BlogPost {
	return Apply(posts, tag, MatchTag)
}

// ByStatus keeps projects in the given status.
func ByStatus(projects []*model.Project, status string) []*model.Project {
	return Apply(projects, status, MatchStatus)
}

// Tags returns every tag used by posts, each once, in first-seen order.
func Tags(posts []*model.BlogPost) []string {
	seen := make(map[string]struct{})
	tags := []string{}
	for _, p := range posts {
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	return tags
}

// Featured keeps projects flagged for the home page.
func Featured(projects []*model.Project) []*model.Project {
	out := make([]*model.Project, 0, len(projects))
	for _, p := range projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Published keeps posts that may be shown to visitors.
func Published(posts []*model.BlogPost) []*model.BlogPost {
	out := make([]*model.BlogPost, 0, len(posts))
	for _, p := range posts {
		if p.Published {
			out = append(out, p)
		}
	}
	return out
}
