package main

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestUpFiles_SortedAndFiltered(t *testing.T) {
	fsys := fstest.MapFS{
		"002_b.up.sql":         {Data: []byte("SELECT 2")},
		"001_a.up.sql":         {Data: []byte("SELECT 1")},
		"000_drop_all.sql":     {Data: []byte("DROP")},
		"001_a.down.sql":       {Data: []byte("DROP")},
		"nested/003.up.sql":    {Data: []byte("SELECT 3")},
		"000_consolidated.sql": {Data: []byte("CREATE")},
	}

	got, err := upFiles(fsys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"001_a.up.sql", "002_b.up.sql"}, got); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
}

func TestMigrationName(t *testing.T) {
	if got := migrationName("001_create_portfolio_tables.up.sql"); got != "001_create_portfolio_tables" {
		t.Errorf("unexpected name %q", got)
	}
}

func TestUpFiles_Empty(t *testing.T) {
	got, err := upFiles(fstest.MapFS{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no files, got %v", got)
	}
}
