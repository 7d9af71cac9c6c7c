// Package client invokes LLM chat-completion HTTP endpoints and normalizes
// their heterogeneous response shapes into one uniform Result carrying
// timing and token-usage metadata alongside the prompt and generated text.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/probeworks/llmprobe/pkg/llm"
)

const (
	// DefaultRole is used when neither the config nor the call names one.
	DefaultRole = "user"

	// DefaultTimeout bounds a single completion request. LLM backends can
	// be slow on cold model loads, so this is generous.
	DefaultTimeout = 30 * time.Second

	// bodySnippetLen caps how much of an error body ends up in a RequestError.
	bodySnippetLen = 512
)

// Config identifies one backend endpoint. Immutable after New.
type Config struct {
	// Service selects the response shape: KeywordOllama or a member of
	// CompatibleServices.
	Service string

	// URL is the full chat-completion endpoint URL.
	URL string

	// Model is sent with every request.
	Model string

	// Role defaults to DefaultRole when empty.
	Role string

	// Timeout bounds each request; DefaultTimeout when zero. Ignored when
	// a custom HTTP client is injected.
	Timeout time.Duration

	// CompatibleServices is the set of identifiers whose backends speak
	// the OpenAI response shape. Supplied by the configuration provider.
	CompatibleServices []string
}

// Client issues chat-completion requests against a single configured
// backend. It holds no mutable state across calls and is safe for
// concurrent use.
type Client struct {
	cfg        Config
	backend    backend
	httpClient *http.Client
	logger     *zap.Logger
}

// Option customizes a Client at construction.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. The caller then owns
// timeout behavior.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger attaches a logger; the client is silent without one.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New builds a Client for the configured service. The service identifier
// is validated here: an identifier outside the recognized set fails with
// *UnsupportedServiceError before any request can be made.
func New(cfg Config, opts ...Option) (*Client, error) {
	b, err := resolveBackend(cfg.Service, cfg.CompatibleServices)
	if err != nil {
		return nil, err
	}

	if cfg.Role == "" {
		cfg.Role = DefaultRole
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	c := &Client{
		cfg:     cfg,
		backend: b,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return c, nil
}

// callSettings carries per-call overrides.
type callSettings struct {
	role    string
	stream  bool
	options *llm.Options
}

// CallOption adjusts a single Complete call.
type CallOption func(*callSettings)

// WithRole overrides the configured role for one call.
func WithRole(role string) CallOption {
	return func(s *callSettings) {
		if role != "" {
			s.role = role
		}
	}
}

// WithStream sets the stream flag on the request body. The response is
// still consumed as a single JSON document.
func WithStream(stream bool) CallOption {
	return func(s *callSettings) { s.stream = stream }
}

// WithOptions attaches generation options to the request body.
func WithOptions(options *llm.Options) CallOption {
	return func(s *callSettings) { s.options = options }
}

// Complete sends one chat-completion request and returns the normalized
// record. Failures are typed: *RequestError for transport and status
// problems, *ResponseParseError for non-JSON bodies, *ResponseShapeError
// for recognized services returning unexpected shapes. There is no retry
// and no partial result.
func (c *Client) Complete(ctx context.Context, prompt string, opts ...CallOption) (*Result, error) {
	settings := callSettings{role: c.cfg.Role}
	for _, opt := range opts {
		opt(&settings)
	}

	reqBody, err := json.Marshal(llm.ChatRequest{
		Model:    c.cfg.Model,
		Messages: []llm.Message{{Role: settings.role, Content: prompt}},
		Stream:   settings.stream,
		Options:  settings.options,
	})
	if err != nil {
		return nil, &RequestError{URL: c.cfg.URL, Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, &RequestError{URL: c.cfg.URL, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.logger.Debug("sending completion request",
		zap.String("service", c.cfg.Service),
		zap.String("url", c.cfg.URL),
		zap.String("model", c.cfg.Model),
		zap.String("role", settings.role),
		zap.Bool("stream", settings.stream),
	)

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &RequestError{URL: c.cfg.URL, Timeout: isTimeout(err), Err: err}
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &RequestError{URL: c.cfg.URL, StatusCode: httpResp.StatusCode, Timeout: isTimeout(err), Err: err}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		// Backends that speak the error envelope get their message through
		// verbatim; anything else is reported as a body snippet.
		var envelope llm.ErrorResponse
		diagnostic := snippet(body)
		if json.Unmarshal(body, &envelope) == nil && envelope.Error != "" {
			diagnostic = envelope.Error
		}
		return nil, &RequestError{
			URL:        c.cfg.URL,
			StatusCode: httpResp.StatusCode,
			Body:       diagnostic,
		}
	}

	result, err := c.backend.decode(body, prompt, c.cfg.Model)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("completion normalized",
		zap.String("service", c.cfg.Service),
		zap.String("model", result.Model),
		zap.Duration("round_trip", time.Since(start)),
	)
	return result, nil
}

// isTimeout reports whether err was a deadline or network timeout.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func snippet(body []byte) string {
	if len(body) > bodySnippetLen {
		return string(body[:bodySnippetLen]) + "..."
	}
	return string(body)
}
