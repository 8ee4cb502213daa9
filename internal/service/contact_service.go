package service

import (
	"context"

	"github.com/isaacaji/portfolio/internal/model"
)

// ContactService delivers contact form submissions to the site owner.
type ContactService interface {
	// Send emails the submission to the configured recipient. Any transport
	// failure is returned wrapped in ErrSend.
	Send(ctx context.Context, input model.ContactFormInput) error
}
