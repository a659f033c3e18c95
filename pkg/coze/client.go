// Package coze is a minimal client for the Coze chat and workflow APIs.
package coze

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultBaseURL = "https://api.coze.cn"

type Config struct {
	BaseURL    string
	BotID      string
	WorkflowID string
	// Timeout bounds a whole HTTP exchange, including reading a stream.
	Timeout time.Duration
	Auth    TokenSource
}

type Client struct {
	baseURL    string
	botID      string
	workflowID string
	auth       TokenSource
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Minute
	}
	return &Client{
		baseURL:    baseURL,
		botID:      cfg.BotID,
		workflowID: cfg.WorkflowID,
		auth:       cfg.Auth,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// envelope is the JSON shape of non-streamed Coze responses.
type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data,omitempty"`
}

func (c *Client) newRequest(ctx context.Context, path string, query url.Values, body any) (*http.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("coze: marshal request: %w", err)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("coze: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if c.auth != nil {
		token, err := c.auth.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("coze: access token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// do sends req and turns non-2xx responses into *APIError. The caller owns
// the returned body.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError("do request", err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, transportError("read error response", err)
	}
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var env envelope
	if json.Unmarshal(body, &env) == nil {
		apiErr.Code = env.Code
		apiErr.Message = env.Msg
	}
	return nil, apiErr
}

func isJSON(resp *http.Response) bool {
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

// decodeEnvelope reads a JSON envelope body and reports a non-zero code as an
// *APIError.
func decodeEnvelope(statusCode int, body []byte) (*envelope, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("coze: decode response: %w", err)
	}
	if env.Code != 0 {
		return nil, &APIError{StatusCode: statusCode, Code: env.Code, Message: env.Msg}
	}
	return &env, nil
}
