package model

// ProjectStatus is the lifecycle stage shown on a project card.
type ProjectStatus string

const (
	StatusLive          ProjectStatus = "live"
	StatusCompleted     ProjectStatus = "completed"
	StatusInDevelopment ProjectStatus = "in_development"
	StatusPlanned       ProjectStatus = "planned"
)

// Known reports whether s is one of the enumerated statuses.
func (s ProjectStatus) Known() bool {
	switch s {
	case StatusLive, StatusCompleted, StatusInDevelopment, StatusPlanned:
		return true
	}
	return false
}

// Label returns the display label. Unknown values are shown as-is so that
// rows written by a newer schema still render.
func (s ProjectStatus) Label() string {
	switch s {
	case StatusInDevelopment:
		return "In Development"
	case StatusCompleted:
		return "Completed"
	case StatusLive:
		return "Live"
	case StatusPlanned:
		return "Planned"
	default:
		return string(s)
	}
}

// FilterOption is one button in a filter bar.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ProjectStatusOptions is the status filter bar in display order.
var ProjectStatusOptions = []FilterOption{
	{Value: "all", Label: "All Projects"},
	{Value: string(StatusLive), Label: StatusLive.Label()},
	{Value: string(StatusCompleted), Label: StatusCompleted.Label()},
	{Value: string(StatusInDevelopment), Label: StatusInDevelopment.Label()},
	{Value: string(StatusPlanned), Label: StatusPlanned.Label()},
}

type Project struct {
	ID                  string        `json:"id"`
	Title               string        `json:"title"`
	Description         string        `json:"description"`
	DetailedDescription string        `json:"detailed_description"`
	Status              ProjectStatus `json:"status"`
	Tags                []string      `json:"tags"`
	LiveURL             *string       `json:"live_url"`
	GitHubURL           *string       `json:"github_url"`
	ImageURL            *string       `json:"image_url"`
	Featured            bool          `json:"featured"`
	CreatedDate         string        `json:"created_date"` // YYYY-MM-DD
}

// Clone returns a deep copy so callers can't mutate shared seed data.
func (p *Project) Clone() *Project {
	c := *p
	c.Tags = append([]string(nil), p.Tags...)
	c.LiveURL = cloneString(p.LiveURL)
	c.GitHubURL = cloneString(p.GitHubURL)
	c.ImageURL = cloneString(p.ImageURL)
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// StringPtr is a helper for optional URL fields.
func StringPtr(s string) *string {
	return &s
}
