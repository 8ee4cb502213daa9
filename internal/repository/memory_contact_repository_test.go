package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/isaacaji/portfolio/internal/model"
)

func TestMemoryContactRepository_SaveAssignsID(t *testing.T) {
	repo := NewMemoryContactRepository(0)
	msg := &model.ContactMessage{Name: "Ada", Email: "ada@x.com", Subject: "Hi", Message: "Hello"}

	if err := repo.Save(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.ID == "" {
		t.Error("expected ID to be set after Save")
	}
	if msg.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set after Save")
	}

	stored := repo.Messages()
	if len(stored) != 1 || stored[0].ID != msg.ID {
		t.Fatalf("expected stored message with id %q, got %+v", msg.ID, stored)
	}

	msg.Name = "changed"
	if repo.Messages()[0].Name != "Ada" {
		t.Error("stored message should not alias the caller's struct")
	}
}

func TestMemoryContactRepository_DropsOldest(t *testing.T) {
	repo := NewMemoryContactRepository(2)
	for i := 0; i < 3; i++ {
		msg := &model.ContactMessage{Subject: fmt.Sprintf("s%d", i)}
		if err := repo.Save(context.Background(), msg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	stored := repo.Messages()
	if len(stored) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(stored))
	}
	if stored[0].Subject != "s1" || stored[1].Subject != "s2" {
		t.Errorf("expected s1, s2; got %q, %q", stored[0].Subject, stored[1].Subject)
	}
}
