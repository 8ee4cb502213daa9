// Package view renders the site's HTML pages. Pages are templ components;
// the .templ sources sit next to their generated _templ.go files.
package view

import (
	"net/url"
	"strconv"

	"github.com/isaacaji/portfolio/internal/filter"
	"github.com/isaacaji/portfolio/internal/model"
	"github.com/isaacaji/portfolio/internal/nav"
)

//go:generate templ generate

const (
	siteName     = "Isaac Ajifowobaje"
	siteBrand    = "Isaac Aji."
	siteTagline  = "Business Analyst | Data Analytics | SQL & Power BI | Bridging strategy, technology, and sustainable solutions."
	contactEmail = "isaac@isaacaji.com"
	linkedInURL  = "https://linkedin.com/in/isaac-ajifowobaje"
	gitHubURL    = "https://github.com/isaacaji"
)

// Page is the per-request chrome around a page body.
type Page struct {
	Title string
	// Path is the request path; it decides the active menu entry.
	Path string
	// Query is the raw query string, kept on the menu toggle link.
	Query string
	Menu  nav.Menu
}

func (p Page) documentTitle() string {
	if p.Title == "" {
		return siteName
	}
	return p.Title + " | " + siteName
}

func (p Page) menuToggleHref() string {
	return p.Menu.ToggleHref(p.Path, p.Query)
}

// HomeData is what the home page shows below the hero.
type HomeData struct {
	Featured []*model.Project
	Recent   []*model.BlogPost
}

// ContactData is the contact page as one request left it.
type ContactData struct {
	Form model.ContactFormInput
	// Submitted shows the success view instead of the form.
	Submitted bool
	// Failed shows the retry notice above the preserved form.
	Failed bool
	// RateLimited shows the slow-down notice above the preserved form.
	RateLimited bool
	// Missing lists required fields that were left blank.
	Missing []model.ContactField
	// MessageTooLong marks a message over the length limit.
	MessageTooLong bool
}

// MaxMessageLength is the longest message, in characters, the form accepts.
const MaxMessageLength = 5000

func (d ContactData) isMissing(f model.ContactField) bool {
	for _, m := range d.Missing {
		if m == f {
			return true
		}
	}
	return false
}

func fieldID(f model.ContactField) string {
	return "contact-" + string(f)
}

func inputType(f model.ContactField) string {
	if f == model.FieldEmail {
		return "email"
	}
	return "text"
}

var maxMessageLength = strconv.Itoa(MaxMessageLength)

// filterHref links to a listing page with one filter applied. "all" drops
// the parameter.
func filterHref(path, param, value string) string {
	if filter.IsAll(value) {
		return path
	}
	return path + "?" + url.Values{param: {value}}.Encode()
}

func projectsEmptyMessage(selected string) string {
	if filter.IsAll(selected) {
		return "Projects will appear here once they're added."
	}
	return "No projects with " + selected + " status found."
}

func postsEmptyMessage(selected string) string {
	if filter.IsAll(selected) {
		return "Blog posts will appear here once they're published."
	}
	return `No posts tagged with "` + selected + `" found.`
}

func hasText(s *string) bool {
	return s != nil && *s != ""
}

func readingTime(p *model.BlogPost) string {
	if p.ReadingTime == nil || *p.ReadingTime <= 0 {
		return ""
	}
	return strconv.Itoa(*p.ReadingTime) + " min read"
}
