package contactflow

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/isaacaji/portfolio/internal/model"
)

type senderFunc func(ctx context.Context, input model.ContactFormInput) error

func (f senderFunc) Send(ctx context.Context, input model.ContactFormInput) error {
	return f(ctx, input)
}

var ada = model.ContactFormInput{Name: "Ada", Email: "ada@x.com", Subject: "Hi", Message: "Hello"}

type step struct{ From, To State }

func recordSteps(f *Flow) *[]step {
	var steps []step
	f.Observe(func(from, to State) { steps = append(steps, step{from, to}) })
	return &steps
}

func TestFlow_SubmitSuccess(t *testing.T) {
	f := New()
	steps := recordSteps(f)
	for _, field := range model.ContactFields {
		if err := f.Update(field, ada.Get(field)); err != nil {
			t.Fatalf("Update(%s): %v", field, err)
		}
	}

	var sent model.ContactFormInput
	var stateDuringSend State
	err := f.Submit(context.Background(), senderFunc(func(_ context.Context, in model.ContactFormInput) error {
		sent = in
		stateDuringSend = f.State()
		return nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sent != ada {
		t.Errorf("sender got %+v, want %+v", sent, ada)
	}
	if stateDuringSend != Submitting {
		t.Errorf("expected submitting during send, got %s", stateDuringSend)
	}
	if f.State() != Submitted {
		t.Errorf("expected submitted, got %s", f.State())
	}
	if !f.Form().IsZero() {
		t.Errorf("expected form reset to empty, got %+v", f.Form())
	}
	if f.Failed() {
		t.Error("expected no failure recorded")
	}
	want := []step{{Idle, Submitting}, {Submitting, Submitted}}
	if diff := cmp.Diff(want, *steps); diff != "" {
		t.Errorf("transitions mismatch (-want +got):\n%s", diff)
	}
}

func TestFlow_SubmitFailureKeepsFields(t *testing.T) {
	f := NewWithForm(ada)
	steps := recordSteps(f)
	sendErr := errors.New("smtp down")

	err := f.Submit(context.Background(), senderFunc(func(context.Context, model.ContactFormInput) error {
		return sendErr
	}))
	if !errors.Is(err, sendErr) {
		t.Errorf("expected send error, got %v", err)
	}
	if f.State() != Idle {
		t.Errorf("expected idle after failure, got %s", f.State())
	}
	if f.Form() != ada {
		t.Errorf("expected fields intact, got %+v", f.Form())
	}
	if !f.Failed() || !errors.Is(f.Err(), sendErr) {
		t.Errorf("expected failure recorded, got %v", f.Err())
	}
	want := []step{{Idle, Submitting}, {Submitting, Idle}}
	if diff := cmp.Diff(want, *steps); diff != "" {
		t.Errorf("transitions mismatch (-want +got):\n%s", diff)
	}

	// A retry that succeeds clears the failure.
	if err := f.Submit(context.Background(), senderFunc(func(context.Context, model.ContactFormInput) error { return nil })); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if f.Failed() {
		t.Error("expected failure cleared after successful retry")
	}
}

func TestFlow_SubmitMissingFields(t *testing.T) {
	f := NewWithForm(model.ContactFormInput{Name: "Ada", Message: "  "})
	called := false

	err := f.Submit(context.Background(), senderFunc(func(context.Context, model.ContactFormInput) error {
		called = true
		return nil
	}))
	if !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	var mfe *MissingFieldsError
	if !errors.As(err, &mfe) {
		t.Fatalf("expected *MissingFieldsError, got %T", err)
	}
	want := []model.ContactField{model.FieldEmail, model.FieldSubject, model.FieldMessage}
	if diff := cmp.Diff(want, mfe.Fields); diff != "" {
		t.Errorf("missing fields mismatch (-want +got):\n%s", diff)
	}
	if called {
		t.Error("sender should not be called")
	}
	if f.State() != Idle {
		t.Errorf("expected idle, got %s", f.State())
	}
}

func TestFlow_ResetAfterSubmit(t *testing.T) {
	f := NewWithForm(ada)
	if err := f.Submit(context.Background(), senderFunc(func(context.Context, model.ContactFormInput) error { return nil })); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := f.Update(model.FieldName, "x"); !errors.Is(err, ErrNotIdle) {
		t.Errorf("expected ErrNotIdle when editing a submitted form, got %v", err)
	}
	if err := f.Submit(context.Background(), nil); !errors.Is(err, ErrNotIdle) {
		t.Errorf("expected ErrNotIdle on double submit, got %v", err)
	}

	if err := f.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if f.State() != Idle || !f.Form().IsZero() {
		t.Errorf("expected blank idle form, got %s %+v", f.State(), f.Form())
	}
}

func TestFlow_ResetFromIdleRejected(t *testing.T) {
	f := NewWithForm(ada)
	if err := f.Reset(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
	if f.Form() != ada {
		t.Error("rejected reset should keep the form")
	}
}

func TestTransition_Table(t *testing.T) {
	tests := []struct {
		from    State
		ev      Event
		want    State
		wantErr bool
	}{
		{Idle, EventSubmit, Submitting, false},
		{Submitting, EventSucceeded, Submitted, false},
		{Submitting, EventFailed, Idle, false},
		{Submitted, EventReset, Idle, false},
		{Idle, EventSucceeded, Idle, true},
		{Idle, EventReset, Idle, true},
		{Submitting, EventSubmit, Submitting, true},
		{Submitted, EventSubmit, Submitted, true},
		{Submitted, EventFailed, Submitted, true},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.ev.String(), func(t *testing.T) {
			got, err := Transition(tt.from, tt.ev)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}
