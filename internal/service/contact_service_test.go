package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/isaacaji/portfolio/internal/contactflow"
	"github.com/isaacaji/portfolio/internal/mailer"
	"github.com/isaacaji/portfolio/internal/model"
)

// ---------------------------------------------------------------------------
// mockContactRepository records saved messages.
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	saveFunc func(ctx context.Context, msg *model.ContactMessage) error
}

func (m *mockContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, msg)
	}
	return nil
}

var adaInput = model.ContactFormInput{Name: "Ada", Email: "ada@x.com", Subject: "Hi", Message: "Hello"}

func okMailer(captured *model.Email) mailer.Mailer {
	return mailer.Func(func(ctx context.Context, e model.Email) (model.SendResult, error) {
		if captured != nil {
			*captured = e
		}
		return model.SendResult{OK: true}, nil
	})
}

// ---------------------------------------------------------------------------
// Send tests
// ---------------------------------------------------------------------------

func TestContactService_Send_BuildsEmail(t *testing.T) {
	var sent model.Email
	svc := NewContactService(okMailer(&sent), "owner@example.com", nil)

	if err := svc.Send(context.Background(), adaInput); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sent.Recipient != "owner@example.com" {
		t.Errorf("expected recipient owner@example.com, got %q", sent.Recipient)
	}
	if sent.Subject != "Portfolio Contact: Hi" {
		t.Errorf("unexpected subject %q", sent.Subject)
	}
	if sent.SenderName != "Ada" {
		t.Errorf("expected sender_name Ada, got %q", sent.SenderName)
	}
	for _, want := range []string{"Name: Ada", "Email: ada@x.com", "Subject: Hi", "Message:\nHello"} {
		if !strings.Contains(sent.Body, want) {
			t.Errorf("body missing %q:\n%s", want, sent.Body)
		}
	}
}

func TestContactService_Send_StoresDeliveredMessage(t *testing.T) {
	var saved *model.ContactMessage
	repo := &mockContactRepository{
		saveFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			saved = msg
			return nil
		},
	}
	svc := NewContactService(okMailer(nil), "owner@example.com", repo)

	if err := svc.Send(context.Background(), adaInput); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil {
		t.Fatal("expected Save to be called")
	}
	if saved.Name != "Ada" || saved.Email != "ada@x.com" || saved.Subject != "Hi" || saved.Message != "Hello" {
		t.Errorf("unexpected stored message %+v", saved)
	}
	if saved.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestContactService_Send_StoreFailureIsNotFatal(t *testing.T) {
	repo := &mockContactRepository{
		saveFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			return errors.New("db write failed")
		},
	}
	svc := NewContactService(okMailer(nil), "owner@example.com", repo)

	if err := svc.Send(context.Background(), adaInput); err != nil {
		t.Errorf("expected nil error when only storage fails, got %v", err)
	}
}

func TestContactService_Send_MailerError(t *testing.T) {
	saveCalled := false
	repo := &mockContactRepository{
		saveFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			saveCalled = true
			return nil
		},
	}
	m := mailer.Func(func(ctx context.Context, e model.Email) (model.SendResult, error) {
		return model.SendResult{}, errors.New("smtp down")
	})
	svc := NewContactService(m, "owner@example.com", repo)

	err := svc.Send(context.Background(), adaInput)
	if !errors.Is(err, ErrSend) {
		t.Errorf("expected ErrSend, got %v", err)
	}
	if saveCalled {
		t.Error("undelivered message should not be stored")
	}
}

func TestContactService_Send_NotOK(t *testing.T) {
	m := mailer.Func(func(ctx context.Context, e model.Email) (model.SendResult, error) {
		return model.SendResult{OK: false}, nil
	})
	svc := NewContactService(m, "owner@example.com", nil)

	if err := svc.Send(context.Background(), adaInput); !errors.Is(err, ErrSend) {
		t.Errorf("expected ErrSend, got %v", err)
	}
}

func TestContactService_FailedSubmitLogsOnce(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	m := mailer.Func(func(ctx context.Context, e model.Email) (model.SendResult, error) {
		return model.SendResult{}, errors.New("smtp down")
	})
	svc := NewContactService(m, "owner@example.com", nil)

	flow := contactflow.NewWithForm(adaInput)
	if err := flow.Submit(context.Background(), svc); !errors.Is(err, ErrSend) {
		t.Fatalf("expected ErrSend, got %v", err)
	}
	if n := strings.Count(buf.String(), `"level":"ERROR"`); n != 1 {
		t.Errorf("expected one ERROR record for one failed send, got %d:\n%s", n, buf.String())
	}
}
