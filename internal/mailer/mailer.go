// Package mailer delivers contact form emails.
package mailer

import (
	"context"
	"log/slog"
	"time"

	"github.com/isaacaji/portfolio/internal/model"
)

// Mailer sends one email. A nil error with OK=false is still a failed send.
type Mailer interface {
	Send(ctx context.Context, email model.Email) (model.SendResult, error)
}

// Func adapts a plain function to Mailer.
type Func func(ctx context.Context, email model.Email) (model.SendResult, error)

func (f Func) Send(ctx context.Context, email model.Email) (model.SendResult, error) {
	return f(ctx, email)
}

// DefaultLogDelay is how long LogMailer pretends delivery takes.
const DefaultLogDelay = 300 * time.Millisecond

// LogMailer logs the email instead of sending it and always succeeds after
// a fixed delay. It stands in for a real transport in development.
type LogMailer struct {
	delay time.Duration
}

// NewLogMailer returns a LogMailer; a negative delay means DefaultLogDelay.
func NewLogMailer(delay time.Duration) *LogMailer {
	if delay < 0 {
		delay = DefaultLogDelay
	}
	return &LogMailer{delay: delay}
}

var _ Mailer = (*LogMailer)(nil)

func (m *LogMailer) Send(ctx context.Context, email model.Email) (model.SendResult, error) {
	slog.Info("email send stub called",
		"recipient", email.Recipient,
		"subject", email.Subject,
		"sender_name", email.SenderName,
		"body_bytes", len(email.Body),
	)
	if m.delay > 0 {
		t := time.NewTimer(m.delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return model.SendResult{}, ctx.Err()
		}
	}
	return model.SendResult{OK: true}, nil
}
