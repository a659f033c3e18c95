package coze

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWorkflow_EventStream(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/workflow/stream_run", r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "wf-1", body["workflow_id"])
		params, _ := body["parameters"].(map[string]any)
		assert.Equal(t, float64(3), params["days"])

		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = io.WriteString(w, "id: 0\nevent: PING\ndata: {}\n\n")
		_, _ = io.WriteString(w, "id: 1\nevent: Message\ndata: {\"content\":\"Day 1: lake walk\",\"node_title\":\"End\",\"node_is_finish\":true}\n\n")
		_, _ = io.WriteString(w, "id: 2\nevent: Done\ndata: {}\n\n")
	})

	result, err := client.RunWorkflow(context.Background(), map[string]any{"days": 3})
	require.NoError(t, err)
	require.Len(t, result.Events, 3)
	assert.Equal(t, WorkflowPing, result.Events[0].Kind)
	assert.Equal(t, WorkflowEvent{
		Kind:         WorkflowMessage,
		Content:      "Day 1: lake walk",
		NodeTitle:    "End",
		NodeIsFinish: true,
	}, result.Events[1])
	assert.Equal(t, WorkflowDone, result.Events[2].Kind)
	assert.Contains(t, result.Raw, "lake walk")
}

func TestRunWorkflow_ErrorEvent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = io.WriteString(w, "event: Error\ndata: {\"error_code\":720701013,\"error_message\":\"node timeout\"}\n\n")
	})

	_, err := client.RunWorkflow(context.Background(), nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 720701013, apiErr.Code)
	assert.Equal(t, "node timeout", apiErr.Message)
}

func TestRunWorkflow_JSONEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"code":0,"msg":"","data":"{\"final_itinerary\":\"Day 1\"}"}`)
	})

	result, err := client.RunWorkflow(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, result.Events, 1)
	assert.Equal(t, WorkflowMessage, result.Events[0].Kind)
	assert.Equal(t, `{"final_itinerary":"Day 1"}`, result.Events[0].Content)
}

func TestRunWorkflow_JSONEnvelopeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"code":4200,"msg":"workflow not found"}`)
	})

	_, err := client.RunWorkflow(context.Background(), nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 4200, apiErr.Code)
	assert.Equal(t, "workflow not found", apiErr.Message)
}

func TestEnvelopeText(t *testing.T) {
	assert.Equal(t, "plain", envelopeText(json.RawMessage(`"plain"`)))
	assert.Equal(t, `{"a":1}`, envelopeText(json.RawMessage(`{"a":1}`)))
}
