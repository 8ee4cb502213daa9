package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/isaacaji/portfolio/internal/model"
)

func testPosts() []*model.BlogPost {
	return []*model.BlogPost{
		{ID: "1", Tags: []string{"Technical", "Business"}, Published: true},
		{ID: "2", Tags: []string{"Technical"}, Published: true},
		{ID: "3", Tags: []string{"AI"}, Published: false},
		{ID: "4", Tags: []string{}, Published: true},
		{ID: "5", Tags: []string{"Business", "AI"}, Published: true},
	}
}

func testProjects() []*model.Project {
	return []*model.Project{
		{ID: "1", Status: model.StatusLive, Featured: true},
		{ID: "2", Status: model.StatusPlanned},
		{ID: "3", Status: model.StatusLive},
		{ID: "4", Status: model.ProjectStatus("archived"), Featured: true},
	}
}

func postIDs(posts []*model.BlogPost) []string {
	ids := []string{}
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}

func projectIDs(projects []*model.Project) []string {
	ids := []string{}
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestApply_AllIsIdentity(t *testing.T) {
	posts := testPosts()
	for _, sel := range []string{All, ""} {
		got := ByTag(posts, sel)
		if diff := cmp.Diff(postIDs(posts), postIDs(got)); diff != "" {
			t.Errorf("ByTag(%q) mismatch (-want +got):\n%s", sel, diff)
		}
	}

	projects := testProjects()
	got := ByStatus(projects, All)
	if diff := cmp.Diff(projectIDs(projects), projectIDs(got)); diff != "" {
		t.Errorf("ByStatus(all) mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_AllDoesNotAliasInput(t *testing.T) {
	posts := testPosts()
	got := ByTag(posts, All)
	got[0] = &model.BlogPost{ID: "x"}
	if posts[0].ID != "1" {
		t.Error("result of an all-filter should not share storage with the input")
	}
}

func TestByTag_Membership(t *testing.T) {
	tests := []struct {
		tag  string
		want []string
	}{
		{"Technical", []string{"1", "2"}},
		{"Business", []string{"1", "5"}},
		{"AI", []string{"3", "5"}},
		{"Missing", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got := ByTag(testPosts(), tt.tag)
			if diff := cmp.Diff(tt.want, postIDs(got)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
			for _, p := range got {
				if !p.HasTag(tt.tag) {
					t.Errorf("post %s returned without tag %q", p.ID, tt.tag)
				}
			}
		})
	}
}

func TestByStatus_Equality(t *testing.T) {
	tests := []struct {
		status string
		want   []string
	}{
		{"live", []string{"1", "3"}},
		{"planned", []string{"2"}},
		{"archived", []string{"4"}},
		{"completed", []string{}},
		{"Live", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			got := ByStatus(testProjects(), tt.status)
			if diff := cmp.Diff(tt.want, projectIDs(got)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApply_Idempotent(t *testing.T) {
	posts := testPosts()
	for _, tag := range []string{All, "Technical", "AI", "none"} {
		once := ByTag(posts, tag)
		twice := ByTag(once, tag)
		if diff := cmp.Diff(postIDs(once), postIDs(twice)); diff != "" {
			t.Errorf("ByTag(%q) not idempotent (-once +twice):\n%s", tag, diff)
		}
	}
	projects := testProjects()
	for _, status := range []string{All, "live", "planned", "completed"} {
		once := ByStatus(projects, status)
		twice := ByStatus(once, status)
		if diff := cmp.Diff(projectIDs(once), projectIDs(twice)); diff != "" {
			t.Errorf("ByStatus(%q) not idempotent (-once +twice):\n%s", status, diff)
		}
	}
}

func TestTags_FirstSeenOrderWithoutDuplicates(t *testing.T) {
	got := Tags(testPosts())
	want := []string{"Technical", "Business", "AI"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if got := Tags(nil); len(got) != 0 {
		t.Errorf("expected no tags for nil input, got %v", got)
	}
}

func TestFeatured(t *testing.T) {
	got := Featured(testProjects())
	if diff := cmp.Diff([]string{"1", "4"}, projectIDs(got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPublished(t *testing.T) {
	got := Published(testPosts())
	if diff := cmp.Diff([]string{"1", "2", "4", "5"}, postIDs(got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
