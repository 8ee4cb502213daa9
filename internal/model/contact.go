package model

import (
	"strings"
	"time"
)

// ContactFormInput is the contact form as the visitor filled it in.
type ContactFormInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactField names one field of ContactFormInput.
type ContactField string

const (
	FieldName    ContactField = "name"
	FieldEmail   ContactField = "email"
	FieldSubject ContactField = "subject"
	FieldMessage ContactField = "message"
)

// ContactFields lists the form fields in display order.
var ContactFields = []ContactField{FieldName, FieldEmail, FieldSubject, FieldMessage}

// With returns a copy of f with a single field replaced.
// Unknown fields leave the input unchanged.
func (f ContactFormInput) With(field ContactField, value string) ContactFormInput {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldSubject:
		f.Subject = value
	case FieldMessage:
		f.Message = value
	}
	return f
}

// Get returns the value of a single field.
func (f ContactFormInput) Get(field ContactField) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldSubject:
		return f.Subject
	case FieldMessage:
		return f.Message
	}
	return ""
}

// Missing returns the required fields that are blank. Only presence is
// checked; the email address format is left to the browser.
func (f ContactFormInput) Missing() []ContactField {
	var missing []ContactField
	for _, field := range ContactFields {
		if strings.TrimSpace(f.Get(field)) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// IsZero reports whether every field is empty.
func (f ContactFormInput) IsZero() bool {
	return f == ContactFormInput{}
}

// Email is what gets handed to the mail transport.
type Email struct {
	Recipient  string `json:"recipient"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	SenderName string `json:"sender_name"`
}

// SendResult is the transport's answer for one Email.
type SendResult struct {
	OK bool `json:"ok"`
}

// ContactMessage is a stored copy of a contact form submission.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
