package repository

import (
	"context"
	"testing"
	"testing/fstest"
)

func TestMarkdownBlogPostRepository_List(t *testing.T) {
	fsys := fstest.MapFS{
		"older.md": {Data: []byte(`---
title: Older Post
tags: [Productivity]
published: true
date: "2024-01-10"
reading_time: 3
---
# Hello

Body text.
`)},
		"newer-notes_draft.md": {Data: []byte(`---
tags: [AI, Technical]
published: false
date: "2024-06-01"
external_url: https://example.com/post
platform: Substack
---
Draft body.
`)},
		"README.txt": {Data: []byte("ignored")},
	}

	repo := NewMarkdownBlogPostRepository(fsys)
	posts, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}

	newer := posts[0]
	if newer.Slug != "newer-notes_draft" {
		t.Errorf("expected newest post first, got slug %q", newer.Slug)
	}
	if newer.Title != "Newer Notes Draft" {
		t.Errorf("expected title from file name, got %q", newer.Title)
	}
	if newer.Published {
		t.Error("expected draft to stay unpublished")
	}
	if newer.ExternalURL == nil || *newer.ExternalURL != "https://example.com/post" {
		t.Errorf("unexpected external_url: %v", newer.ExternalURL)
	}
	if newer.ReadingTime == nil || *newer.ReadingTime != 1 {
		t.Errorf("expected computed reading time 1, got %v", newer.ReadingTime)
	}

	older := posts[1]
	if older.Title != "Older Post" {
		t.Errorf("expected frontmatter title, got %q", older.Title)
	}
	if older.ID != "older" {
		t.Errorf("expected id from file name, got %q", older.ID)
	}
	if older.Content != "# Hello\n\nBody text." {
		t.Errorf("unexpected content %q", older.Content)
	}
	if older.ReadingTime == nil || *older.ReadingTime != 3 {
		t.Errorf("expected frontmatter reading time 3, got %v", older.ReadingTime)
	}
	if older.CreatedDate != "2024-01-10" {
		t.Errorf("unexpected date %q", older.CreatedDate)
	}
}

func TestMarkdownBlogPostRepository_Empty(t *testing.T) {
	repo := NewMarkdownBlogPostRepository(fstest.MapFS{})
	posts, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("expected no posts, got %d", len(posts))
	}
}

func TestMarkdownBlogPostRepository_CancelledContext(t *testing.T) {
	fsys := fstest.MapFS{"a.md": {Data: []byte("body")}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMarkdownBlogPostRepository(fsys).List(ctx)
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
