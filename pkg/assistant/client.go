package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"

	"github.com/goliatone/go-compareui/pkg/component"
	"github.com/goliatone/go-compareui/pkg/patch"
	"github.com/goliatone/go-compareui/pkg/schema"
	"github.com/goliatone/go-compareui/pkg/widget"
)

// DefaultTimeout bounds a request when no timeout option is given.
const DefaultTimeout = 30 * time.Second

// RequestIDHeader carries a fresh identifier per request unless a header
// option already set one.
const RequestIDHeader = "X-Request-Id"

// maxResponseBytes caps the decoded response body.
const maxResponseBytes = 1 << 20

// Request is the body posted to the assistant endpoint.
type Request struct {
	ComponentName string           `json:"componentName"`
	Prompt        string           `json:"prompt"`
	CurrentConfig component.Config `json:"currentConfig"`
	Schema        *openapi3.Schema `json:"schema,omitempty"`
}

// Response is the body answered by the assistant endpoint.
type Response struct {
	Success   bool        `json:"success"`
	Config    patch.Patch `json:"config"`
	Error     string      `json:"error,omitempty"`
	LastError string      `json:"lastError,omitempty"`
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithTimeout bounds each request. Zero or negative disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHeader adds a header to every request, e.g. an authorization token.
func WithHeader(name, value string) Option {
	return func(c *Client) {
		c.headers.Set(name, value)
	}
}

// WithSchema controls whether the widget's config schema is sent along with
// the request. It is sent by default.
func WithSchema(enabled bool) Option {
	return func(c *Client) {
		c.sendSchema = enabled
	}
}

// Client posts prompts to an HTTP assistant service.
type Client struct {
	endpoint   string
	http       *http.Client
	timeout    time.Duration
	headers    http.Header
	sendSchema bool
}

var _ Assistant = (*Client)(nil)

// NewClient builds a client for the given endpoint URL.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, ErrNoEndpoint
	}
	c := &Client{
		endpoint:   endpoint,
		http:       http.DefaultClient,
		timeout:    DefaultTimeout,
		headers:    http.Header{},
		sendSchema: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// Endpoint returns the configured URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Suggest posts the prompt and the current config and decodes the patch.
func (c *Client) Suggest(ctx context.Context, w widget.Type, prompt string, current component.Config) (patch.Patch, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}
	req := Request{
		ComponentName: w.DisplayName(),
		Prompt:        prompt,
		CurrentConfig: current,
	}
	if c.sendSchema {
		s, err := schema.ForWidget(w)
		if err != nil {
			return nil, fmt.Errorf("assistant: %w", err)
		}
		req.Schema = s
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("assistant: encode request: %w", err)
	}

	reqCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("assistant: build request: %w", err)
	}
	for name, values := range c.headers {
		for _, value := range values {
			httpReq.Header.Add(name, value)
		}
	}
	if httpReq.Header.Get(RequestIDHeader) == "" {
		httpReq.Header.Set(RequestIDHeader, uuid.NewString())
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("assistant: post %s: %w", c.endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var out Response
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ResponseError{Status: resp.StatusCode, Message: out.message()}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("assistant: decode response: %w", decodeErr)
	}
	if !out.Success || out.Config == nil {
		return nil, &ResponseError{Status: resp.StatusCode, Message: out.message()}
	}
	return out.Config, nil
}

func (r Response) message() string {
	if r.Error != "" {
		return r.Error
	}
	return r.LastError
}
