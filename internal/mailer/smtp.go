package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/isaacaji/portfolio/internal/model"
)

// SMTPConfig holds the settings for SMTPMailer.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // envelope sender, e.g. "noreply@example.com"
	// Timeout bounds the dial and every SMTP command.
	Timeout time.Duration
}

// DefaultSMTPTimeout is used when SMTPConfig.Timeout is zero.
const DefaultSMTPTimeout = 10 * time.Second

type sendMailFunc func(ctx context.Context, msg *mail.Msg) error

// SMTPMailer delivers email through an SMTP relay.
type SMTPMailer struct {
	cfg      SMTPConfig
	sendMail sendMailFunc
}

// NewSMTPMailer builds the relay client. Authentication is PLAIN and only
// used when a username is set; STARTTLS is used when the relay offers it.
func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultSMTPTimeout
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(cfg.Timeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp: new client: %w", err)
	}

	send := func(ctx context.Context, msg *mail.Msg) error {
		return client.DialAndSendWithContext(ctx, msg)
	}
	return &SMTPMailer{cfg: cfg, sendMail: send}, nil
}

var _ Mailer = (*SMTPMailer)(nil)

// Send delivers email. The dial and the SMTP exchange both stop when ctx is
// done.
func (m *SMTPMailer) Send(ctx context.Context, email model.Email) (model.SendResult, error) {
	if email.Recipient == "" {
		return model.SendResult{}, fmt.Errorf("smtp: recipient required")
	}

	msg, err := m.message(email)
	if err != nil {
		return model.SendResult{}, err
	}
	if err := m.sendMail(ctx, msg); err != nil {
		return model.SendResult{}, fmt.Errorf("smtp: send: %w", err)
	}
	return model.SendResult{OK: true}, nil
}

// message lays out email as plain text. The sender's name shows in From;
// the address is always the configured one.
func (m *SMTPMailer) message(email model.Email) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if email.SenderName != "" {
		if err := msg.FromFormat(email.SenderName, m.cfg.From); err != nil {
			return nil, fmt.Errorf("smtp: from: %w", err)
		}
	} else if err := msg.From(m.cfg.From); err != nil {
		return nil, fmt.Errorf("smtp: from: %w", err)
	}
	if err := msg.To(email.Recipient); err != nil {
		return nil, fmt.Errorf("smtp: to: %w", err)
	}
	msg.Subject(email.Subject)
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextPlain, email.Body)
	return msg, nil
}
