package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	MsgTransportFailure = "Network error: unable to reach the upstream service. Please check the connection and try again."
	MsgUpstreamFailure  = "Upstream API call failed."
	MsgInternalError    = "Internal server error"
)

type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

// ChatResponse is the body of a successful /api/chat reply.
// ConversationID is null when the upstream never reported one.
type ChatResponse struct {
	Success        bool    `json:"success"`
	Reply          string  `json:"reply"`
	ConversationID *string `json:"conversation_id"`
}

// ChatErrorResponse carries the failure text in reply, where the chat page
// displays it.
type ChatErrorResponse struct {
	Success bool   `json:"success"`
	Reply   string `json:"reply"`
	TraceID string `json:"trace_id,omitempty"`
}

// TraceID returns the request trace id set by the trace middleware.
func TraceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Success: false,
		Message: message,
		TraceID: TraceID(c),
	})
}

// ErrorStatus maps a service error onto the HTTP status and the message shown
// to the caller.
func ErrorStatus(err error) (int, string) {
	var upstream *UpstreamError
	switch {
	case errors.Is(err, ErrMissingChatFields):
		return http.StatusBadRequest, "Please provide both a question and the itinerary text."
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest, validationMessage(err)
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, ErrUpstreamTransport):
		return http.StatusInternalServerError, MsgTransportFailure
	case errors.As(err, &upstream):
		if upstream.Message == "" {
			return http.StatusInternalServerError, MsgUpstreamFailure
		}
		return http.StatusInternalServerError, upstream.Message
	case errors.Is(err, ErrDatabaseError):
		return http.StatusInternalServerError, MsgInternalError
	default:
		return http.StatusInternalServerError, MsgInternalError
	}
}

// HandleServiceError logs err and writes the matching error envelope.
// fallback, when set, replaces the message of 500 responses.
func HandleServiceError(c *gin.Context, err error, fallback string) {
	code, message := ErrorStatus(err)
	LogError(c, code, err)
	if code == http.StatusInternalServerError && fallback != "" {
		message = fallback
	}
	RespondError(c, code, message)
}

// LogError logs err for the current request without writing a response.
func LogError(c *gin.Context, code int, err error) {
	fields := []zap.Field{
		zap.String("trace_id", TraceID(c)),
		zap.String("path", c.FullPath()),
		zap.Int("status", code),
		zap.Error(err),
	}
	if code >= http.StatusInternalServerError {
		zap.L().Error("request failed", fields...)
		return
	}
	zap.L().Warn("request rejected", fields...)
}

type validationMessager interface {
	ValidationMessage() string
}

func validationMessage(err error) string {
	var vm validationMessager
	if errors.As(err, &vm) {
		return vm.ValidationMessage()
	}
	return err.Error()
}

// ValidationError is a caller mistake that should be reported verbatim.
type ValidationError struct {
	Message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string             { return e.Message }
func (e *ValidationError) ValidationMessage() string { return e.Message }
func (e *ValidationError) Unwrap() error             { return ErrInvalidInput }
