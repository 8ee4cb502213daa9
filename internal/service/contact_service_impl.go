package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/isaacaji/portfolio/internal/mailer"
	"github.com/isaacaji/portfolio/internal/model"
	"github.com/isaacaji/portfolio/internal/repository"
)

// contactSubjectPrefix marks portfolio mail in the owner's inbox.
const contactSubjectPrefix = "Portfolio Contact: "

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	mailer    mailer.Mailer
	recipient string
	repo      repository.ContactRepository // optional
	now       func() time.Time
}

// NewContactService creates a ContactService that mails recipient. repo may
// be nil; when set, every delivered submission is also stored there.
func NewContactService(m mailer.Mailer, recipient string, repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{mailer: m, recipient: recipient, repo: repo, now: time.Now}
}

func (s *contactServiceImpl) Send(ctx context.Context, input model.ContactFormInput) error {
	email := BuildContactEmail(s.recipient, input)

	res, err := s.mailer.Send(ctx, email)
	if err != nil {
		slog.Error("error sending email", "error", err, "subject", email.Subject)
		return fmt.Errorf("%w: %v", ErrSend, err)
	}
	if !res.OK {
		slog.Error("email transport rejected message", "subject", email.Subject)
		return fmt.Errorf("%w: transport returned not ok", ErrSend)
	}

	if s.repo != nil {
		msg := &model.ContactMessage{
			Name:      input.Name,
			Email:     input.Email,
			Subject:   input.Subject,
			Message:   input.Message,
			CreatedAt: s.now().UTC(),
		}
		// The email already went out; a storage failure is only logged.
		if err := s.repo.Save(ctx, msg); err != nil {
			slog.Warn("failed to store contact message", "error", err)
		} else {
			slog.Info("contact message stored", "id", msg.ID)
		}
	}
	return nil
}

// BuildContactEmail lays out a submission as a plain-text email.
func BuildContactEmail(recipient string, input model.ContactFormInput) model.Email {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", input.Name)
	fmt.Fprintf(&b, "Email: %s\n", input.Email)
	fmt.Fprintf(&b, "Subject: %s\n", input.Subject)
	b.WriteString("\nMessage:\n")
	b.WriteString(input.Message)
	b.WriteString("\n")

	return model.Email{
		Recipient:  recipient,
		Subject:    contactSubjectPrefix + input.Subject,
		Body:       b.String(),
		SenderName: input.Name,
	}
}
