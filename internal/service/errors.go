package service

import "errors"

var (
	// ErrDataLoad means a content provider failed. Callers still get an
	// empty list alongside it.
	ErrDataLoad = errors.New("data load failed")

	// ErrSend means the contact email could not be delivered.
	ErrSend = errors.New("send failed")

	// ErrNotFound is returned when a requested item does not exist or is not published.
	ErrNotFound = errors.New("not found")
)
