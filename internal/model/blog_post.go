package model

import "time"

// BlogPost is either a local article or a link to one published elsewhere
// (ExternalURL + Platform).
type BlogPost struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"` // Markdown
	Tags        []string `json:"tags"`
	ReadingTime *int     `json:"reading_time,omitempty"` // minutes
	Published   bool     `json:"published"`
	Featured    bool     `json:"featured"`
	CreatedDate string   `json:"created_date"`
	ExternalURL *string  `json:"external_url,omitempty"`
	Platform    *string  `json:"platform,omitempty"`
}

// HasTag reports whether tag is one of the post's tags.
func (p *BlogPost) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ReadLabel is the call-to-action text for the post card.
func (p *BlogPost) ReadLabel() string {
	if p.Platform != nil && *p.Platform != "" {
		return "Read on " + *p.Platform
	}
	return "Read Full Post"
}

// Href is where the post card links to: the external article when there is
// one, otherwise the local post page.
func (p *BlogPost) Href() string {
	if p.ExternalURL != nil && *p.ExternalURL != "" {
		return *p.ExternalURL
	}
	return "/blog/" + p.Slug
}

func (p *BlogPost) Clone() *BlogPost {
	c := *p
	c.Tags = append([]string(nil), p.Tags...)
	if p.ReadingTime != nil {
		v := *p.ReadingTime
		c.ReadingTime = &v
	}
	c.ExternalURL = cloneString(p.ExternalURL)
	c.Platform = cloneString(p.Platform)
	return &c
}

const dateLayout = "2006-01-02"

// DisplayDate formats a YYYY-MM-DD date as "December 15, 2024".
// Anything it can't parse is returned unchanged.
func DisplayDate(s string) string {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("January 2, 2006")
}
