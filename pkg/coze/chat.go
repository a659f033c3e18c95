package coze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/yifan996/Itinerary/internal/chatstream"
)

type chatMessage struct {
	Role        string `json:"role"`
	Content     string `json:"content"`
	ContentType string `json:"content_type"`
}

type chatRequest struct {
	BotID              string        `json:"bot_id"`
	UserID             string        `json:"user_id"`
	Stream             bool          `json:"stream"`
	AutoSaveHistory    bool          `json:"auto_save_history"`
	AdditionalMessages []chatMessage `json:"additional_messages"`
}

// eventData covers the payloads of every chat event kind; unused fields stay
// empty.
type eventData struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversation_id"`
	Role           string `json:"role"`
	Type           string `json:"type"`
	Content        string `json:"content"`
	Status         string `json:"status"`
	LastError      *struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	} `json:"last_error,omitempty"`
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// StreamChat opens a streamed chat turn against the configured bot.
func (c *Client) StreamChat(ctx context.Context, req chatstream.Request) (chatstream.Stream, error) {
	var query url.Values
	if req.ConversationID != "" {
		query = url.Values{"conversation_id": {req.ConversationID}}
	}

	httpReq, err := c.newRequest(ctx, "/v3/chat", query, chatRequest{
		BotID:           c.botID,
		UserID:          req.UserID,
		Stream:          true,
		AutoSaveHistory: true,
		AdditionalMessages: []chatMessage{
			{Role: "user", Content: req.Prompt, ContentType: "text"},
		},
	})
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "text/event-stream")

	resp, err := c.do(httpReq)
	if err != nil {
		return nil, err
	}

	// A rejected request comes back as a plain JSON envelope.
	if isJSON(resp) {
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, transportError("read response", err)
		}
		if _, err := decodeEnvelope(resp.StatusCode, body); err != nil {
			return nil, err
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "unexpected non-stream response"}
	}

	return &ChatStream{body: resp.Body, sse: newSSEReader(resp.Body)}, nil
}

// ChatStream decodes the SSE body of a streamed chat turn.
type ChatStream struct {
	body io.ReadCloser
	sse  *sseReader
	done bool
}

func (s *ChatStream) Recv() (chatstream.Event, error) {
	if s.done {
		return chatstream.Event{}, io.EOF
	}

	frame, err := s.sse.Next()
	if errors.Is(err, io.EOF) {
		s.done = true
		return chatstream.Event{}, io.EOF
	}
	if err != nil {
		return chatstream.Event{}, transportError("read stream", err)
	}

	kind := chatstream.EventKind(frame.Event)
	if kind == chatstream.EventDone {
		s.done = true
		return chatstream.Event{}, io.EOF
	}
	if frame.Data == "" {
		return chatstream.Event{Kind: kind}, nil
	}

	var data eventData
	if err := json.Unmarshal([]byte(frame.Data), &data); err != nil {
		if !strictKind(kind) {
			return chatstream.Event{Kind: kind}, nil
		}
		return chatstream.Event{}, fmt.Errorf("coze: decode %q event: %w", frame.Event, err)
	}

	switch kind {
	case chatstream.EventError:
		s.done = true
		return chatstream.Event{}, &APIError{StatusCode: http.StatusOK, Code: data.Code, Message: data.Msg}
	case chatstream.EventChatFailed:
		s.done = true
		apiErr := &APIError{StatusCode: http.StatusOK, Message: "chat failed"}
		if data.LastError != nil {
			apiErr.Code = data.LastError.Code
			apiErr.Message = data.LastError.Msg
		}
		return chatstream.Event{}, apiErr
	}

	return chatstream.Event{
		Kind:           kind,
		Role:           data.Role,
		Type:           data.Type,
		Content:        data.Content,
		ConversationID: data.ConversationID,
	}, nil
}

// strictKind reports whether kind must carry a JSON payload. Other kinds,
// such as keepalives, are passed on without data.
func strictKind(kind chatstream.EventKind) bool {
	return kind == chatstream.EventError || strings.HasPrefix(string(kind), "conversation.")
}

func (s *ChatStream) Close() error {
	s.done = true
	return s.body.Close()
}
