package httpclient

import (
	"bytes"
	"context"
	"io"
	nethttp "net/http"
	"sync/atomic"
	"time"

	"github.com/universemc/universeapi/logger"
	"github.com/universemc/universeapi/trace"
)

const (
	// DefaultTimeout is the default per-attempt request timeout
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies this client on outbound requests
	DefaultUserAgent = "UniverseAPI/1.0.0"

	// DefaultMaxAttempts is the default total number of attempts per call
	DefaultMaxAttempts = 3

	// DefaultBackoffBase is the default linear backoff unit between attempts
	DefaultBackoffBase = 2 * time.Second

	defaultMaxPayloadLogBytes = 1024

	headerContentType = "Content-Type"
	headerAccept      = "Accept"
	headerUserAgent   = "User-Agent"
	contentTypeJSON   = "application/json"
)

// client implements the Client interface
type client struct {
	httpClient *nethttp.Client
	logger     logger.Logger
	config     *Config
	sleep      sleepFunc
	callCount  int64
}

// NewClient creates a new REST client with default configuration
func NewClient(log logger.Logger) Client {
	return NewBuilder(log).Build()
}

// Builder provides a fluent interface for configuring the REST client
type Builder struct {
	config     *Config
	logger     logger.Logger
	httpClient *nethttp.Client
	transport  nethttp.RoundTripper
}

// NewBuilder creates a new client builder
func NewBuilder(log logger.Logger) *Builder {
	return &Builder{
		config: &Config{
			Timeout:            DefaultTimeout,
			UserAgent:          DefaultUserAgent,
			MaxAttempts:        DefaultMaxAttempts,
			BackoffBase:        DefaultBackoffBase,
			DefaultHeaders:     make(map[string]string),
			MaxPayloadLogBytes: defaultMaxPayloadLogBytes,
		},
		logger: log,
	}
}

// WithTimeout sets the per-attempt request timeout
func (b *Builder) WithTimeout(timeout time.Duration) *Builder {
	if timeout > 0 {
		b.config.Timeout = timeout
	}
	return b
}

// WithUserAgent sets the client identifier sent as the User-Agent header
func (b *Builder) WithUserAgent(userAgent string) *Builder {
	if userAgent != "" {
		b.config.UserAgent = userAgent
	}
	return b
}

// WithMaxAttempts sets the total number of attempts per call
func (b *Builder) WithMaxAttempts(maxAttempts int) *Builder {
	if maxAttempts > 0 {
		b.config.MaxAttempts = maxAttempts
	}
	return b
}

// WithBackoffBase sets the linear backoff unit between attempts
func (b *Builder) WithBackoffBase(base time.Duration) *Builder {
	if base > 0 {
		b.config.BackoffBase = base
	}
	return b
}

// WithDefaultHeader adds a default header that will be sent with all requests
func (b *Builder) WithDefaultHeader(key, value string) *Builder {
	b.config.DefaultHeaders[key] = value
	return b
}

// WithHTTPClient supplies a pre-configured *http.Client
func (b *Builder) WithHTTPClient(httpClient *nethttp.Client) *Builder {
	b.httpClient = httpClient
	return b
}

// WithTransport supplies a custom RoundTripper, e.g. a fake for tests
func (b *Builder) WithTransport(transport nethttp.RoundTripper) *Builder {
	b.transport = transport
	return b
}

// WithPayloadLogging enables debug-level logging of headers and bodies,
// capped at maxBytes per body.
func (b *Builder) WithPayloadLogging(maxBytes int) *Builder {
	b.config.LogPayloads = true
	if maxBytes > 0 {
		b.config.MaxPayloadLogBytes = maxBytes
	}
	return b
}

// Build creates the REST client with the configured options
func (b *Builder) Build() Client {
	httpClient := b.httpClient
	if httpClient == nil {
		httpClient = &nethttp.Client{}
	}
	if b.transport != nil {
		httpClient.Transport = b.transport
	}
	return &client{
		httpClient: httpClient,
		logger:     b.logger,
		config:     b.config,
		sleep:      time.Sleep,
	}
}

// Get performs a GET request
func (c *client) Get(ctx context.Context, req *Request) (*Response, error) {
	return c.Do(ctx, nethttp.MethodGet, req)
}

// Post performs a POST request
func (c *client) Post(ctx context.Context, req *Request) (*Response, error) {
	return c.Do(ctx, nethttp.MethodPost, req)
}

// Put performs a PUT request
func (c *client) Put(ctx context.Context, req *Request) (*Response, error) {
	return c.Do(ctx, nethttp.MethodPut, req)
}

// Patch performs a PATCH request
func (c *client) Patch(ctx context.Context, req *Request) (*Response, error) {
	return c.Do(ctx, nethttp.MethodPatch, req)
}

// Delete performs a DELETE request
func (c *client) Delete(ctx context.Context, req *Request) (*Response, error) {
	return c.Do(ctx, nethttp.MethodDelete, req)
}

// Do performs an HTTP request with the specified method, retrying
// transport-level failures up to the configured number of attempts.
func (c *client) Do(ctx context.Context, method string, req *Request) (*Response, error) {
	if err := c.validateRequest(req); err != nil {
		c.logger.Error().Err(err).Str("method", method).Msg("API request rejected")
		return nil, err
	}

	url := req.URL()
	requestID := trace.EnsureRequestID(ctx)
	start := time.Now()
	callCount := atomic.AddInt64(&c.callCount, 1)

	resp, err := runWithRetry(c.config.MaxAttempts, linearBackoff(c.config.BackoffBase), c.sleepAndLog(method, url, requestID), func(attempt int) (*Response, error) {
		return c.attempt(ctx, method, url, req, requestID, attempt)
	})
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("method", method).
			Str("url", url).
			Str("request_id", requestID).
			Msg("API request failed")
		return resp, err
	}

	resp.Stats.ElapsedTime = time.Since(start)
	resp.Stats.CallCount = callCount
	c.logResponse(resp, requestID)
	return resp, nil
}

// attempt executes one HTTP round trip. Transport-level failures are wrapped
// so the retry loop can tell them apart from completed responses.
func (c *client) attempt(ctx context.Context, method, url string, req *Request, requestID string, attempt int) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, method, url, req, requestID)
	if err != nil {
		return nil, err
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.config.Timeout
	}
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	httpReq = httpReq.WithContext(attemptCtx)

	c.logRequest(httpReq, req.Body, requestID, attempt)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &transportFailure{wrapped: err}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &transportFailure{wrapped: err}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Body:       respBody,
		Headers:    httpResp.Header,
		Stats:      Stats{Attempts: attempt},
	}

	if !IsSuccessStatus(resp.StatusCode) {
		return resp, NewBadStatusError("request completed with failing status", resp.StatusCode, resp.Body)
	}
	return resp, nil
}

// sleepAndLog wraps the configured sleep so each retry emits a warning
// before the backoff pause.
func (c *client) sleepAndLog(method, url, requestID string) sleepFunc {
	return func(d time.Duration) {
		c.logger.Warn().
			Str("method", method).
			Str("url", url).
			Str("request_id", requestID).
			Dur("backoff", d).
			Msg("retrying API request")
		c.sleep(d)
	}
}

// validateRequest validates the request before sending
func (c *client) validateRequest(req *Request) error {
	if req == nil {
		return NewValidationError("request cannot be nil", "request")
	}
	if req.BaseURL == "" {
		return NewValidationError("base URL cannot be empty", "base_url")
	}
	return nil
}

// buildRequest constructs an *http.Request with merged headers.
func (c *client) buildRequest(ctx context.Context, method, url string, req *Request, requestID string) (*nethttp.Request, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := nethttp.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, NewValidationError("failed to create HTTP request: "+err.Error(), "url")
	}

	c.applyHeaders(httpReq, req, requestID)
	return httpReq, nil
}

// applyHeaders merges the fixed pair, client defaults, and request headers
// in ascending priority, then injects Content-Type for bodied requests.
func (c *client) applyHeaders(httpReq *nethttp.Request, req *Request, requestID string) {
	httpReq.Header.Set(headerUserAgent, c.config.UserAgent)
	httpReq.Header.Set(headerAccept, contentTypeJSON)

	for key, value := range c.config.DefaultHeaders {
		httpReq.Header.Set(key, value)
	}

	// Request-specific headers override defaults
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	// Set Content-Type if not already set and body is present
	if httpReq.Header.Get(headerContentType) == "" && req.Body != nil {
		httpReq.Header.Set(headerContentType, contentTypeJSON)
	}

	if httpReq.Header.Get(HeaderXRequestID) == "" {
		httpReq.Header.Set(HeaderXRequestID, requestID)
	}
}

// logRequest logs the outgoing request attempt
func (c *client) logRequest(httpReq *nethttp.Request, body []byte, requestID string, attempt int) {
	logEvent := c.logger.Info().
		Str("direction", "outbound").
		Str("method", httpReq.Method).
		Str("url", httpReq.URL.String()).
		Str("request_id", requestID).
		Int("attempt", attempt)

	if len(httpReq.Header) > 0 {
		logEvent = logEvent.Int("header_count", len(httpReq.Header))
	}
	if len(body) > 0 {
		logEvent = logEvent.Int("body_size", len(body))
	}
	logEvent.Msg("API request")

	if c.config.LogPayloads {
		c.logPayload(c.logger.Debug().
			Str("direction", "outbound").
			Str("method", httpReq.Method).
			Str("url", httpReq.URL.String()).
			Str("request_id", requestID).
			Interface("headers", flattenHeaders(httpReq.Header)), body, "API request")
	}
}

// logResponse logs the incoming response
func (c *client) logResponse(resp *Response, requestID string) {
	logEvent := c.logger.Info().
		Str("direction", "inbound").
		Int("status", resp.StatusCode).
		Dur("elapsed", resp.Stats.ElapsedTime).
		Int64("call_count", resp.Stats.CallCount).
		Int("attempt", resp.Stats.Attempts).
		Str("request_id", requestID)

	if len(resp.Body) > 0 {
		logEvent = logEvent.Int("body_size", len(resp.Body))
	}
	logEvent.Msg("API response")

	if c.config.LogPayloads {
		c.logPayload(c.logger.Debug().
			Str("direction", "inbound").
			Int("status", resp.StatusCode).
			Str("request_id", requestID).
			Interface("headers", flattenHeaders(resp.Headers)), resp.Body, "API response")
	}
}

// logPayload attaches a size-capped body preview to a debug event.
func (c *client) logPayload(logEvent logger.LogEvent, body []byte, msg string) {
	maxBytes := c.config.MaxPayloadLogBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxPayloadLogBytes
	}

	if len(body) > 0 {
		truncated := len(body) > maxBytes
		preview := body
		if truncated {
			preview = body[:maxBytes]
		}
		logEvent = logEvent.
			Int("body_size", len(body)).
			Str("body_truncated", boolString(truncated)).
			Bytes("body_preview", preview)
	}
	logEvent.Msg(msg)
}

func flattenHeaders(h nethttp.Header) map[string]string {
	flat := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			flat[k] = v[0]
		}
	}
	return flat
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
