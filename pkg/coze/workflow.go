package coze

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type WorkflowEventKind string

const (
	WorkflowMessage   WorkflowEventKind = "Message"
	WorkflowError     WorkflowEventKind = "Error"
	WorkflowDone      WorkflowEventKind = "Done"
	WorkflowInterrupt WorkflowEventKind = "Interrupt"
	WorkflowPing      WorkflowEventKind = "PING"
)

// WorkflowEvent is one event of a workflow run. Only Message events carry
// content.
type WorkflowEvent struct {
	Kind         WorkflowEventKind
	Content      string
	NodeTitle    string
	NodeIsFinish bool
}

// WorkflowResult holds the decoded events of a run along with the raw body.
type WorkflowResult struct {
	Events []WorkflowEvent
	Raw    string
}

type workflowRequest struct {
	WorkflowID string `json:"workflow_id"`
	Parameters any    `json:"parameters"`
}

type workflowEventData struct {
	Content      string `json:"content"`
	NodeTitle    string `json:"node_title"`
	NodeIsFinish bool   `json:"node_is_finish"`
	ErrorCode    int    `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

// RunWorkflow executes the configured workflow and reads the whole response.
// The body is either an event stream or a JSON envelope whose data is the
// workflow output.
func (c *Client) RunWorkflow(ctx context.Context, parameters any) (*WorkflowResult, error) {
	req, err := c.newRequest(ctx, "/v1/workflow/stream_run", nil, workflowRequest{
		WorkflowID: c.workflowID,
		Parameters: parameters,
	})
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError("read response", err)
	}
	result := &WorkflowResult{Raw: string(body)}

	if isJSON(resp) {
		env, err := decodeEnvelope(resp.StatusCode, body)
		if err != nil {
			return nil, err
		}
		result.Events = []WorkflowEvent{{Kind: WorkflowMessage, Content: envelopeText(env.Data), NodeIsFinish: true}}
		return result, nil
	}

	frames, err := readAllFrames(result.Raw)
	if err != nil {
		return nil, fmt.Errorf("coze: parse workflow stream: %w", err)
	}
	for _, f := range frames {
		event := WorkflowEvent{Kind: WorkflowEventKind(f.Event)}
		switch event.Kind {
		case WorkflowMessage, WorkflowError:
			var data workflowEventData
			if err := json.Unmarshal([]byte(f.Data), &data); err != nil {
				return nil, fmt.Errorf("coze: decode workflow %s event: %w", f.Event, err)
			}
			if event.Kind == WorkflowError {
				return nil, &APIError{StatusCode: http.StatusOK, Code: data.ErrorCode, Message: data.ErrorMessage}
			}
			event.Content = data.Content
			event.NodeTitle = data.NodeTitle
			event.NodeIsFinish = data.NodeIsFinish
		}
		result.Events = append(result.Events, event)
	}
	return result, nil
}

// envelopeText unwraps the data field of a JSON envelope, which the API sends
// as a JSON-encoded string.
func envelopeText(data json.RawMessage) string {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s
	}
	return string(data)
}
