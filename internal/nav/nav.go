// Package nav holds the site's route table and the header menu state.
package nav

import "net/url"

// Page is a logical page name.
type Page string

const (
	Home     Page = "Home"
	About    Page = "About"
	Projects Page = "Projects"
	Blog     Page = "Blog"
	Contact  Page = "Contact"
)

// Route maps a page to its path.
type Route struct {
	Page Page
	Path string
}

var routes = []Route{
	{Page: Home, Path: "/"},
	{Page: About, Path: "/about"},
	{Page: Projects, Path: "/projects"},
	{Page: Blog, Path: "/blog"},
	{Page: Contact, Path: "/contact"},
}

// Routes returns the route table in menu order.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// PathFor returns the path of a page. The table is closed, so an unknown
// page resolves to the home page.
func PathFor(p Page) string {
	for _, r := range routes {
		if r.Page == p {
			return r.Path
		}
	}
	return "/"
}

// Entry is a menu item as rendered for the current request.
type Entry struct {
	Route
	Active bool
}

// Entries returns the menu with the entry whose path equals currentPath
// marked active. Matching is exact: "/blog/some-post" activates nothing.
func Entries(currentPath string) []Entry {
	out := make([]Entry, 0, len(routes))
	for _, r := range routes {
		out = append(out, Entry{Route: r, Active: r.Path == currentPath})
	}
	return out
}

// QuickLinks is the footer menu: everything except Home.
func QuickLinks(currentPath string) []Entry {
	return Entries(currentPath)[1:]
}

// Menu is the mobile menu toggle. It lives only as long as one page view.
type Menu struct {
	Open bool
}

// MenuParam is the query parameter that carries the open menu across the
// toggle link.
const MenuParam = "menu"

// MenuFromQuery reads the menu state from the "menu" query value.
func MenuFromQuery(v string) Menu {
	return Menu{Open: v == "open"}
}

func (m *Menu) Toggle() { m.Open = !m.Open }

func (m *Menu) Close() { m.Open = false }

// ToggleHref is the link that flips the menu for the current page. Other
// query parameters, such as an active filter, are kept.
func (m Menu) ToggleHref(currentPath, rawQuery string) string {
	q, _ := url.ParseQuery(rawQuery)
	if m.Open {
		q.Del(MenuParam)
	} else {
		q.Set(MenuParam, "open")
	}
	if len(q) == 0 {
		return currentPath
	}
	return currentPath + "?" + q.Encode()
}
