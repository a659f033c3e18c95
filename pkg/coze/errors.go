package coze

import (
	"errors"
	"fmt"
)

// ErrTransport marks failures to reach the Coze API or to read its response.
var ErrTransport = errors.New("coze: transport failure")

// APIError is an application-level error reported by the Coze API, either as
// a JSON envelope, a non-2xx status, or an error event inside a stream.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("coze: api error (status %d, code %d)", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("coze: api error (code %d): %s", e.Code, e.Message)
}

func transportError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrTransport, op, err)
}
