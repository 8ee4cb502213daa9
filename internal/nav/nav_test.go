package nav

import "testing"

func TestEntries_ExactlyOneActive(t *testing.T) {
	for _, r := range Routes() {
		t.Run(string(r.Page), func(t *testing.T) {
			active := 0
			for _, e := range Entries(r.Path) {
				if e.Active {
					active++
					if e.Path != r.Path {
						t.Errorf("entry %s active for path %s", e.Page, r.Path)
					}
				}
			}
			if active != 1 {
				t.Errorf("expected exactly one active entry, got %d", active)
			}
		})
	}
}

func TestEntries_Projects(t *testing.T) {
	for _, e := range Entries("/projects") {
		if e.Active != (e.Page == Projects) {
			t.Errorf("entry %s active=%v for /projects", e.Page, e.Active)
		}
	}
}

func TestEntries_NoPrefixMatching(t *testing.T) {
	for _, path := range []string{"/blog/some-post", "/projects/", "/unknown", ""} {
		for _, e := range Entries(path) {
			if e.Active {
				t.Errorf("path %q should not activate %s", path, e.Page)
			}
		}
	}
}

func TestRoutes_Order(t *testing.T) {
	want := []Page{Home, About, Projects, Blog, Contact}
	got := Routes()
	if len(got) != len(want) {
		t.Fatalf("expected %d routes, got %d", len(want), len(got))
	}
	for i, p := range want {
		if got[i].Page != p {
			t.Errorf("route %d: expected %s, got %s", i, p, got[i].Page)
		}
	}

	got[0].Path = "/changed"
	if PathFor(Home) != "/" {
		t.Error("Routes should return a copy of the table")
	}
}

func TestPathFor(t *testing.T) {
	tests := map[Page]string{
		Home:           "/",
		About:          "/about",
		Projects:       "/projects",
		Blog:           "/blog",
		Contact:        "/contact",
		Page("Resume"): "/",
	}
	for page, want := range tests {
		if got := PathFor(page); got != want {
			t.Errorf("PathFor(%s) = %q, want %q", page, got, want)
		}
	}
}

func TestQuickLinks_SkipsHome(t *testing.T) {
	links := QuickLinks("/")
	if len(links) != 4 {
		t.Fatalf("expected 4 quick links, got %d", len(links))
	}
	for _, l := range links {
		if l.Page == Home {
			t.Error("quick links should not include Home")
		}
	}
}

func TestMenu_Toggle(t *testing.T) {
	m := MenuFromQuery("")
	if m.Open {
		t.Fatal("menu should start closed")
	}
	if got := m.ToggleHref("/blog", ""); got != "/blog?menu=open" {
		t.Errorf("unexpected toggle href %q", got)
	}

	m.Toggle()
	if !m.Open {
		t.Error("expected menu open after toggle")
	}
	if got := m.ToggleHref("/blog", ""); got != "/blog" {
		t.Errorf("unexpected toggle href %q", got)
	}

	m.Close()
	if m.Open {
		t.Error("expected menu closed after Close")
	}

	if !MenuFromQuery("open").Open {
		t.Error("expected menu=open to open the menu")
	}
}

func TestMenu_ToggleHrefKeepsOtherParams(t *testing.T) {
	tests := []struct {
		name  string
		open  bool
		path  string
		query string
		want  string
	}{
		{"open keeps status filter", false, "/projects", "status=live", "/projects?menu=open&status=live"},
		{"open keeps tag filter", false, "/blog", "tag=AI", "/blog?menu=open&tag=AI"},
		{"close keeps tag filter", true, "/blog", "menu=open&tag=AI", "/blog?tag=AI"},
		{"close drops bare menu param", true, "/about", "menu=open", "/about"},
		{"malformed query", false, "/about", "%zz", "/about?menu=open"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Menu{Open: tt.open}
			if got := m.ToggleHref(tt.path, tt.query); got != tt.want {
				t.Errorf("ToggleHref(%q, %q) = %q, want %q", tt.path, tt.query, got, tt.want)
			}
		})
	}
}
