package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client talks to the remote booking API. One instance is shared by all
// handlers; it holds no state beyond the base URL and the HTTP client.
// Calls are never retried and never cached.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *zap.Logger
}

// NewClient builds a backend client for the given base URL, e.g.
// "http://localhost:8080/api/v1".
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// errorBody is the shape of backend failure payloads we care about. Only the
// message field is ever surfaced; everything else is treated as opaque.
type errorBody struct {
	Message string `json:"message"`
}

// do issues one request and decodes the response into out (when non-nil).
// token, when set, is attached as a bearer credential. Failures come back as
// *Error with transport/status classification.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: marshal request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("backend call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("requestId", requestID),
			zap.Error(err))
		return &Error{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		data, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(data, &eb)
		c.logger.Warn("backend call returned error status",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("requestId", requestID),
			zap.Int("status", resp.StatusCode))
		return &Error{Kind: KindStatus, StatusCode: resp.StatusCode, Message: eb.Message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("api: decode response: %w", err)
		}
	}
	return nil
}
