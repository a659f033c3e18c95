package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yifan996/Itinerary/internal/chatstream"
	"github.com/yifan996/Itinerary/pkg/utils"
)

func collect(t *testing.T, s chatstream.Stream) []chatstream.Event {
	t.Helper()
	defer s.Close()
	var events []chatstream.Event
	for {
		e, err := s.Recv()
		if errors.Is(err, io.EOF) {
			return events
		}
		require.NoError(t, err)
		events = append(events, e)
	}
}

func TestOpenAIChatClient_StreamsDeltasThenCompleted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, true, body["stream"])
		assert.Equal(t, "test-model", body["model"])

		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = io.WriteString(w, `data: {"id":"1","object":"chat.completion.chunk","choices":[{"index":0,"delta":{"role":"assistant"}}]}`+"\n\n")
		_, _ = io.WriteString(w, `data: {"id":"1","object":"chat.completion.chunk","choices":[{"index":0,"delta":{"content":"Visit "}}]}`+"\n\n")
		_, _ = io.WriteString(w, `data: {"id":"1","object":"chat.completion.chunk","choices":[{"index":0,"delta":{"content":"the lake."}}]}`+"\n\n")
		_, _ = io.WriteString(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	client := NewOpenAIChatClient("sk-test", "test-model", srv.URL+"/v1")
	stream, err := client.StreamChat(context.Background(), chatstream.Request{UserID: "u1", Prompt: "where?"})
	require.NoError(t, err)

	events := collect(t, stream)
	require.Len(t, events, 3)
	assert.Equal(t, chatstream.EventMessageDelta, events[0].Kind)
	assert.Equal(t, "Visit ", events[0].Content)
	assert.Equal(t, chatstream.EventMessageCompleted, events[2].Kind)
	assert.Equal(t, chatstream.RoleAssistant, events[2].Role)
	assert.Equal(t, "Visit the lake.", events[2].Content)
	assert.Empty(t, events[2].ConversationID)
}

func TestOpenAIChatClient_APIErrorIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`)
	}))
	defer srv.Close()

	client := NewOpenAIChatClient("bad", "test-model", srv.URL+"/v1")
	_, err := client.StreamChat(context.Background(), chatstream.Request{Prompt: "hi"})

	var upstream *utils.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusUnauthorized, upstream.StatusCode)
	assert.Equal(t, "Incorrect API key provided", upstream.Message)
}

func TestOpenAIChatClient_UnreachableIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewOpenAIChatClient("sk", "m", url+"/v1")
	_, err := client.StreamChat(context.Background(), chatstream.Request{Prompt: "hi"})
	require.ErrorIs(t, err, utils.ErrUpstreamTransport)
}
