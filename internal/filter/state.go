package filter

import "github.com/isaacaji/portfolio/internal/model"

// State is the filter state owned by one listing page.
// View is always Apply(Source, Selected); Reduce is the only way to change it.
type State[T any] struct {
	Source   []T
	Selected string
	View     []T

	match Matcher[T]
}

// NewState returns an empty state with "all" selected.
func NewState[T any](match Matcher[T]) State[T] {
	return State[T]{Selected: All, View: []T{}, match: match}
}

// NewTagState is the blog page state.
func NewTagState() State[*model.BlogPost] {
	return NewState(MatchTag)
}

// NewStatusState is the projects page state.
func NewStatusState() State[*model.Project] {
	return NewState(MatchStatus)
}

type actionKind int

const (
	actionLoad actionKind = iota
	actionSelect
)

// Action is a state transition: a new source collection or a new selection.
type Action[T any] struct {
	kind   actionKind
	source []T
	value  string
}

// Load replaces the source collection.
func Load[T any](source []T) Action[T] {
	return Action[T]{kind: actionLoad, source: source}
}

// Select changes the selected discriminator. "" is treated as "all".
func Select[T any](value string) Action[T] {
	return Action[T]{kind: actionSelect, value: value}
}

// Reduce applies a to s and returns the new state with View recomputed.
// s is not modified.
func Reduce[T any](s State[T], a Action[T]) State[T] {
	switch a.kind {
	case actionLoad:
		s.Source = a.source
	case actionSelect:
		s.Selected = a.value
		if s.Selected == "" {
			s.Selected = All
		}
	}
	s.View = Apply(s.Source, s.Selected, s.match)
	return s
}

// Empty reports whether the "no results" branch should be shown.
func (s State[T]) Empty() bool {
	return len(s.View) == 0
}

// IsSelected reports whether value is the active filter button.
func (s State[T]) IsSelected(value string) bool {
	if IsAll(value) {
		return IsAll(s.Selected)
	}
	return s.Selected == value
}
