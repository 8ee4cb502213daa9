package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/isaacaji/portfolio/internal/contactflow"
	"github.com/isaacaji/portfolio/internal/model"
	"github.com/isaacaji/portfolio/internal/service"
	"github.com/isaacaji/portfolio/internal/view"
)

const (
	maxMessageLength = view.MaxMessageLength
	maxContactBody   = 64 << 10
)

var errMessageTooLong = errors.New("message too long")

// submitContact runs one submission through a fresh contact flow. The
// returned flow tells the caller which view to show.
func submitContact(ctx context.Context, svc service.ContactService, timeout time.Duration, form model.ContactFormInput) (*contactflow.Flow, error) {
	flow := contactflow.NewWithForm(form)
	if len([]rune(form.Message)) > maxMessageLength {
		return flow, errMessageTooLong
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return flow, flow.Submit(ctx, svc)
}

// ContactHandler handles POST /api/contact.
type ContactHandler struct {
	contactService service.ContactService
	sendTimeout    time.Duration
}

// NewContactHandler creates a ContactHandler. sendTimeout bounds the mail
// call; zero means no limit beyond the request context.
func NewContactHandler(contactService service.ContactService, sendTimeout time.Duration) *ContactHandler {
	return &ContactHandler{contactService: contactService, sendTimeout: sendTimeout}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
// All four fields are required; message max 5000 chars.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactBody)).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	form := model.ContactFormInput{Name: req.Name, Email: req.Email, Subject: req.Subject, Message: req.Message}
	_, err := submitContact(r.Context(), h.contactService, h.sendTimeout, form)

	var missing *contactflow.MissingFieldsError
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	case errors.As(err, &missing):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": string(missing.Fields[0]) + "_required"})
	case errors.Is(err, errMessageTooLong):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "message_too_long"})
	case errors.Is(err, service.ErrSend):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "send_failed"})
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal_error"})
	}
}
