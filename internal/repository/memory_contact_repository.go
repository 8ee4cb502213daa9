package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/isaacaji/portfolio/internal/model"
)

// MemoryContactRepository keeps submissions in process memory. Used when no
// database is configured; contents are lost on restart.
type MemoryContactRepository struct {
	mu       sync.Mutex
	messages []*model.ContactMessage
	limit    int
}

// NewMemoryContactRepository keeps at most limit messages, dropping the
// oldest first. limit <= 0 means 100.
func NewMemoryContactRepository(limit int) *MemoryContactRepository {
	if limit <= 0 {
		limit = 100
	}
	return &MemoryContactRepository{limit: limit}
}

var _ ContactRepository = (*MemoryContactRepository)(nil)

func (r *MemoryContactRepository) Save(_ context.Context, msg *model.ContactMessage) error {
	msg.ID = uuid.NewString()
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	stored := *msg

	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, &stored)
	if over := len(r.messages) - r.limit; over > 0 {
		r.messages = append([]*model.ContactMessage(nil), r.messages[over:]...)
	}
	return nil
}

// Messages returns a snapshot of the stored messages, oldest first.
func (r *MemoryContactRepository) Messages() []model.ContactMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.ContactMessage, 0, len(r.messages))
	for _, m := range r.messages {
		out = append(out, *m)
	}
	return out
}
