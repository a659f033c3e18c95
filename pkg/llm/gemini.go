package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/yifan996/Itinerary/internal/chatstream"
	"github.com/yifan996/Itinerary/pkg/utils"
)

// GeminiChatClient streams chat turns from Google's Gemini models.
type GeminiChatClient struct {
	client *genai.Client
	model  string
}

func NewGeminiChatClient(ctx context.Context, apiKey, model string) (*GeminiChatClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiChatClient{client: client, model: model}, nil
}

func (c *GeminiChatClient) StreamChat(ctx context.Context, req chatstream.Request) (chatstream.Stream, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.4)
	return &geminiStream{iter: m.GenerateContentStream(ctx, genai.Text(req.Prompt))}, nil
}

func (c *GeminiChatClient) Close() error {
	return c.client.Close()
}

type geminiStream struct {
	iter      *genai.GenerateContentResponseIterator
	text      strings.Builder
	completed bool
}

func (s *geminiStream) Recv() (chatstream.Event, error) {
	if s.completed {
		return chatstream.Event{}, io.EOF
	}
	for {
		resp, err := s.iter.Next()
		if errors.Is(err, iterator.Done) {
			s.completed = true
			return chatstream.Event{
				Kind:    chatstream.EventMessageCompleted,
				Role:    chatstream.RoleAssistant,
				Type:    "answer",
				Content: s.text.String(),
			}, nil
		}
		if err != nil {
			return chatstream.Event{}, classifyGeminiError(err)
		}
		delta := responseText(resp)
		if delta == "" {
			continue
		}
		s.text.WriteString(delta)
		return chatstream.Event{
			Kind:    chatstream.EventMessageDelta,
			Role:    chatstream.RoleAssistant,
			Type:    "answer",
			Content: delta,
		}, nil
	}
}

func (s *geminiStream) Close() error {
	s.completed = true
	return nil
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}

func classifyGeminiError(err error) error {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return &utils.UpstreamError{StatusCode: gErr.Code, Message: gErr.Message, Err: err}
	}
	return fmt.Errorf("%w: gemini: %w", utils.ErrUpstreamTransport, err)
}
