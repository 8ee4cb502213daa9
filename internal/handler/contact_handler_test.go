package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/isaacaji/portfolio/internal/model"
	"github.com/isaacaji/portfolio/internal/service"
)

func postContact(h *ContactHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp["error"]
}

func TestContactHandler_Submit_Success(t *testing.T) {
	var captured model.ContactFormInput
	mock := &mockContactService{
		sendFunc: func(ctx context.Context, input model.ContactFormInput) error {
			captured = input
			return nil
		},
	}
	h := NewContactHandler(mock, time.Second)

	rec := postContact(h, `{"name":"Alice","email":"alice@example.com","subject":"Hi","message":"Hello!"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d, body: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]bool
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp["ok"] {
		t.Errorf("expected ok=true, got %v", resp)
	}
	want := model.ContactFormInput{Name: "Alice", Email: "alice@example.com", Subject: "Hi", Message: "Hello!"}
	if captured != want {
		t.Errorf("service got %+v, want %+v", captured, want)
	}
}

func TestContactHandler_Submit_InvalidJSON(t *testing.T) {
	h := NewContactHandler(&mockContactService{}, 0)

	rec := postContact(h, `{not json`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "invalid_json" {
		t.Errorf("expected invalid_json, got %q", code)
	}
}

func TestContactHandler_Submit_RequiredFields(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"email":"a@b.c","subject":"s","message":"m"}`, "name_required"},
		{`{"name":"n","subject":"s","message":"m"}`, "email_required"},
		{`{"name":"n","email":"a@b.c","message":"m"}`, "subject_required"},
		{`{"name":"n","email":"a@b.c","subject":"s","message":"   "}`, "message_required"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			called := false
			h := NewContactHandler(&mockContactService{
				sendFunc: func(ctx context.Context, input model.ContactFormInput) error {
					called = true
					return nil
				},
			}, 0)

			rec := postContact(h, tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
			if code := errorCode(t, rec); code != tt.want {
				t.Errorf("expected %s, got %q", tt.want, code)
			}
			if called {
				t.Error("service should not be called when a field is missing")
			}
		})
	}
}

func TestContactHandler_Submit_MessageTooLong(t *testing.T) {
	h := NewContactHandler(&mockContactService{}, 0)

	long := strings.Repeat("あ", maxMessageLength+1)
	rec := postContact(h, fmt.Sprintf(`{"name":"n","email":"a@b.c","subject":"s","message":%q}`, long))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "message_too_long" {
		t.Errorf("expected message_too_long, got %q", code)
	}
}

func TestContactHandler_Submit_MessageAtLimit(t *testing.T) {
	h := NewContactHandler(&mockContactService{}, 0)

	exact := strings.Repeat("あ", maxMessageLength)
	rec := postContact(h, fmt.Sprintf(`{"name":"n","email":"a@b.c","subject":"s","message":%q}`, exact))

	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201 for a message of exactly %d chars, got %d", maxMessageLength, rec.Code)
	}
}

func TestContactHandler_Submit_SendFailure(t *testing.T) {
	h := NewContactHandler(&mockContactService{
		sendFunc: func(ctx context.Context, input model.ContactFormInput) error {
			return fmt.Errorf("%w: smtp down", service.ErrSend)
		},
	}, 0)

	rec := postContact(h, `{"name":"n","email":"a@b.c","subject":"s","message":"m"}`)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "send_failed" {
		t.Errorf("expected send_failed, got %q", code)
	}
}

func TestContactHandler_Submit_UnexpectedError(t *testing.T) {
	h := NewContactHandler(&mockContactService{
		sendFunc: func(ctx context.Context, input model.ContactFormInput) error {
			return errors.New("boom")
		},
	}, 0)

	rec := postContact(h, `{"name":"n","email":"a@b.c","subject":"s","message":"m"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestContactHandler_Submit_AppliesTimeout(t *testing.T) {
	var deadline time.Time
	var hasDeadline bool
	h := NewContactHandler(&mockContactService{
		sendFunc: func(ctx context.Context, input model.ContactFormInput) error {
			deadline, hasDeadline = ctx.Deadline()
			return nil
		},
	}, 5*time.Second)

	postContact(h, `{"name":"n","email":"a@b.c","subject":"s","message":"m"}`)

	if !hasDeadline {
		t.Fatal("expected the send context to carry a deadline")
	}
	if time.Until(deadline) > 5*time.Second {
		t.Errorf("deadline too far in the future: %v", deadline)
	}
}
