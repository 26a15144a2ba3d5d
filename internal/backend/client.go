package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Client wraps every call to the external REST backend. All persistence and
// business rules (plan limits, billing, ad serving) live behind it; this
// service only reads and issues mutation requests.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *zap.SugaredLogger
}

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// APIError is a non-2xx backend response, carrying the server-provided
// message so handlers can surface it to the UI.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

func New(cfg Config, logger *zap.SugaredLogger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Do issues a JSON request against the backend and returns the raw response
// body. Non-2xx responses become an *APIError with the server message.
func (c *Client) Do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req)
}

// DoMultipart forwards an already-encoded multipart body (file uploads).
func (c *Client) DoMultipart(ctx context.Context, path string, body io.Reader, contentType string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", contentType)

	return c.send(req)
}

func (c *Client) send(req *http.Request) (json.RawMessage, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read backend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw, resp.StatusCode),
		}
	}

	return raw, nil
}

// errorMessage pulls the server-provided message out of an error body. The
// backend is inconsistent here too: "error", "message", or nothing.
func errorMessage(raw []byte, status int) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}

	return fmt.Sprintf("backend returned status %d", status)
}
