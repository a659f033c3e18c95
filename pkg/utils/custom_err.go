package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrMissingChatFields = errors.New("missing question or itinerary text")
	ErrUpstreamTransport = errors.New("upstream transport failure")
	ErrDatabaseError     = errors.New("database error")
	ErrNotFound          = errors.New("not found")
)

// UpstreamError is an application-level failure reported by a remote
// generation service.
type UpstreamError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream error (status %d)", e.StatusCode)
	}
	return "upstream error: " + e.Message
}

func (e *UpstreamError) Unwrap() error { return e.Err }
