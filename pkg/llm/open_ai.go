// Package llm adapts hosted model SDKs to the chat event stream.
package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/yifan996/Itinerary/internal/chatstream"
	"github.com/yifan996/Itinerary/pkg/utils"
)

// OpenAIChatClient streams chat turns from an OpenAI-compatible endpoint and
// presents them as chat events.
type OpenAIChatClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIChatClient creates a client. baseURL may be empty for the public
// endpoint.
func NewOpenAIChatClient(apiKey, model, baseURL string) *OpenAIChatClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIChatClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *OpenAIChatClient) StreamChat(ctx context.Context, req chatstream.Request) (chatstream.Stream, error) {
	stream, err := c.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:  c.model,
		Stream: true,
		User:   req.UserID,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
	})
	if err != nil {
		return nil, classifyProviderError("openai", err)
	}
	return &openAIStream{stream: stream}, nil
}

// openAIStream turns content deltas into message.delta events and emits one
// message.completed event with the whole answer when the upstream finishes.
type openAIStream struct {
	stream    *openai.ChatCompletionStream
	text      strings.Builder
	completed bool
}

func (s *openAIStream) Recv() (chatstream.Event, error) {
	if s.completed {
		return chatstream.Event{}, io.EOF
	}
	for {
		resp, err := s.stream.Recv()
		if errors.Is(err, io.EOF) {
			s.completed = true
			return chatstream.Event{
				Kind:    chatstream.EventMessageCompleted,
				Role:    chatstream.RoleAssistant,
				Type:    "answer",
				Content: s.text.String(),
			}, nil
		}
		if err != nil {
			return chatstream.Event{}, classifyProviderError("openai", err)
		}
		if len(resp.Choices) == 0 || resp.Choices[0].Delta.Content == "" {
			continue
		}
		delta := resp.Choices[0].Delta.Content
		s.text.WriteString(delta)
		return chatstream.Event{
			Kind:    chatstream.EventMessageDelta,
			Role:    chatstream.RoleAssistant,
			Type:    "answer",
			Content: delta,
		}, nil
	}
}

func (s *openAIStream) Close() error {
	return s.stream.Close()
}

// classifyProviderError maps SDK errors onto the upstream error kinds used by
// the API layer.
func classifyProviderError(provider string, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &utils.UpstreamError{StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message, Err: err}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &utils.UpstreamError{StatusCode: reqErr.HTTPStatusCode, Message: reqErr.Error(), Err: err}
	}
	return fmt.Errorf("%w: %s: %w", utils.ErrUpstreamTransport, provider, err)
}
