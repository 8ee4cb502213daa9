// Package contactflow is the contact form's submission state machine:
//
//	idle --submit--> submitting --ok--> submitted --reset--> idle
//	                 submitting --fail--> idle (fields kept)
package contactflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/isaacaji/portfolio/internal/model"
)

// State is where the form is in its lifecycle.
type State int

const (
	Idle State = iota
	Submitting
	Submitted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Submitted:
		return "submitted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Event drives a transition.
type Event int

const (
	EventSubmit Event = iota
	EventSucceeded
	EventFailed
	EventReset
)

func (e Event) String() string {
	switch e {
	case EventSubmit:
		return "submit"
	case EventSucceeded:
		return "succeeded"
	case EventFailed:
		return "failed"
	case EventReset:
		return "reset"
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

var (
	// ErrInvalidTransition is returned for an event the current state doesn't accept.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrNotIdle is returned when the form is edited or submitted outside idle.
	ErrNotIdle = errors.New("contact form is not idle")
	// ErrMissingFields is returned when a required field is blank.
	ErrMissingFields = errors.New("required fields missing")
)

// Transition is the state table. It has no side effects.
func Transition(from State, ev Event) (State, error) {
	switch {
	case from == Idle && ev == EventSubmit:
		return Submitting, nil
	case from == Submitting && ev == EventSucceeded:
		return Submitted, nil
	case from == Submitting && ev == EventFailed:
		return Idle, nil
	case from == Submitted && ev == EventReset:
		return Idle, nil
	}
	return from, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, ev, from)
}

// Sender is the external call made on submit.
type Sender interface {
	Send(ctx context.Context, input model.ContactFormInput) error
}

// MissingFieldsError lists the blank required fields.
type MissingFieldsError struct {
	Fields []model.ContactField
}

func (e *MissingFieldsError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f)
	}
	return ErrMissingFields.Error() + ": " + strings.Join(names, ", ")
}

func (e *MissingFieldsError) Unwrap() error { return ErrMissingFields }

// Flow is one visitor's contact form. It is not safe for concurrent use;
// each page view owns its own Flow.
type Flow struct {
	state   State
	form    model.ContactFormInput
	lastErr error
	observe func(from, to State)
}

// New returns an idle flow with a blank form.
func New() *Flow {
	return &Flow{}
}

// NewWithForm returns an idle flow holding form, as posted by the browser.
func NewWithForm(form model.ContactFormInput) *Flow {
	return &Flow{form: form}
}

// Observe registers fn to be called on every state change.
func (f *Flow) Observe(fn func(from, to State)) {
	f.observe = fn
}

func (f *Flow) State() State { return f.state }

func (f *Flow) Form() model.ContactFormInput { return f.form }

// Failed reports whether the last submit attempt failed.
func (f *Flow) Failed() bool { return f.lastErr != nil }

// Err returns the error of the last failed submit, if any.
func (f *Flow) Err() error { return f.lastErr }

// Update replaces one field. Only allowed while idle.
func (f *Flow) Update(field model.ContactField, value string) error {
	if f.state != Idle {
		return ErrNotIdle
	}
	f.form = f.form.With(field, value)
	return nil
}

// Submit sends the form through sender. On success the form is cleared and
// the flow ends in Submitted; on failure it returns to Idle with the fields
// intact and the error recorded.
func (f *Flow) Submit(ctx context.Context, sender Sender) error {
	if f.state != Idle {
		return ErrNotIdle
	}
	if missing := f.form.Missing(); len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}

	if err := f.fire(EventSubmit); err != nil {
		return err
	}
	if err := sender.Send(ctx, f.form); err != nil {
		f.lastErr = err
		return errors.Join(err, f.fire(EventFailed))
	}

	f.form = model.ContactFormInput{}
	f.lastErr = nil
	return f.fire(EventSucceeded)
}

// Reset returns a submitted flow to a blank idle form.
func (f *Flow) Reset() error {
	if err := f.fire(EventReset); err != nil {
		return err
	}
	f.form = model.ContactFormInput{}
	f.lastErr = nil
	return nil
}

func (f *Flow) fire(ev Event) error {
	next, err := Transition(f.state, ev)
	if err != nil {
		return err
	}
	prev := f.state
	f.state = next
	if f.observe != nil {
		f.observe(prev, next)
	}
	return nil
}
