// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chatapi is the HTTP client of the activity recommendation backend.
package chatapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/wkdwlgus/kids-chatbot-service/internal/model"
)

// Configuration constants for the chat backend.
const (
	// DefaultBaseURL is where the development backend listens.
	DefaultBaseURL = "http://localhost:8080"

	// DefaultPath is the chat endpoint.
	DefaultPath = "/api/chat"

	// MaxResponseSize is the maximum allowed response body size.
	// SECURITY: Response size limit prevents memory exhaustion attacks.
	MaxResponseSize = 1 << 20 // 1MB limit
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrStatus matches any *StatusError.
	ErrStatus = errors.New("unexpected HTTP status")

	// ErrMalformedReply indicates a body that does not decode into a reply.
	ErrMalformedReply = errors.New("malformed reply")
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Status int
	Body   string // First bytes of the body, for logs
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("chat backend returned HTTP %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("chat backend returned HTTP %d", e.Status)
}

// Is implements errors.Is support so callers can match ErrStatus.
func (e *StatusError) Is(target error) bool {
	return target == ErrStatus
}

// =============================================================================
// CLIENT
// =============================================================================

// Client sends chat messages to the backend. It is safe for concurrent use.
type Client struct {
	baseURL    string
	path       string
	httpClient *http.Client
	timeout    *time.Duration
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithPath overrides the chat endpoint path.
func WithPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.path = "/" + strings.TrimPrefix(path, "/")
		}
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds each request. Zero means no client-side timeout. It
// applies to the HTTP client in effect after all options have run.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = &timeout
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		path:       DefaultPath,
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout != nil {
		hc := *c.httpClient
		hc.Timeout = *c.timeout
		c.httpClient = &hc
	}
	return c
}

// Endpoint returns the full chat URL.
func (c *Client) Endpoint() string {
	return c.baseURL + c.path
}

// Send posts text with the current conversation identifier and decodes the
// reply. There are no retries.
func (c *Client) Send(ctx context.Context, text, conversationID string) (model.Reply, error) {
	body, err := json.Marshal(ChatRequest{Message: text, ConversationID: conversationID})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logRequest(req)
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("chat request failed", "error", err, "duration", time.Since(start))
		return nil, fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()
	c.logResponse(resp, time.Since(start))

	// SECURITY: Limit response size to prevent memory exhaustion
	limited := io.LimitReader(resp.Body, MaxResponseSize+1)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(limited, 256))
		return nil, &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if len(data) > MaxResponseSize {
		return nil, fmt.Errorf("%w: response exceeds %d bytes", ErrMalformedReply, MaxResponseSize)
	}

	var wire *ChatResponse
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	return wire.Reply()
}

// =============================================================================
// Request/Response Logging (without message bodies)
// =============================================================================

// logRequest logs a request without its body.
func (c *Client) logRequest(req *http.Request) {
	c.logger.Debug("chat request", "method", req.Method, "path", req.URL.Path)
}

// logResponse logs the status and duration of a response.
func (c *Client) logResponse(resp *http.Response, duration time.Duration) {
	c.logger.Info("chat response", "status", resp.StatusCode, "duration", duration)
}
