// Package api is the boundary to the mall backend: a single request
// pipeline that injects the session credential, unwraps the business
// envelope, classifies failures, and hosts the defensive normalizers for
// the endpoints known to return malformed payloads.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hqh-mall/mallclient/internal/domain/apierr"
	"github.com/hqh-mall/mallclient/pkg/envelope"
)

// maxResponseBodySize caps how much of a response is read. Prevents OOM
// from a misbehaving backend sending an unbounded body.
const maxResponseBodySize = 10 * 1024 * 1024 // 10MB

// DefaultTimeout is the single global request timeout. No per-request
// override is exposed; callers needing one must shorten the context.
const DefaultTimeout = 10 * time.Second

// TokenSource yields the current bearer token. Empty string means the
// session is unauthenticated and no Authorization header is attached.
type TokenSource interface {
	Token() string
}

// Config configures the client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Tokens  TokenSource
	Logger  *slog.Logger
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithMetrics attaches a metrics bundle to the pipeline.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithUnauthenticatedHook installs the callback fired on a transport 401,
// after classification and before the error is returned to the caller.
// The hook must not issue further requests through this client.
func WithUnauthenticatedHook(hook func()) Option {
	return func(c *Client) { c.onUnauthenticated = hook }
}

// WithRouteCompensation toggles the escape hatch that synthesizes success
// results for write routes the backend is known to be missing. Enabled by
// default; disable once the backend ships the routes.
func WithRouteCompensation(enabled bool) Option {
	return func(c *Client) { c.compensateRoutes = enabled }
}

// Client is the single chokepoint every backend call passes through.
// It performs no retries and mutates no stores; the only side effect
// beyond the HTTP call is the unauthenticated hook.
type Client struct {
	baseURL           string
	httpClient        *http.Client
	tokens            TokenSource
	logger            *slog.Logger
	metrics           *Metrics
	onUnauthenticated func()
	compensateRoutes  bool
}

// New creates a client for the given backend.
func New(cfg Config, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		baseURL:          strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient:       &http.Client{Timeout: timeout},
		tokens:           cfg.Tokens,
		logger:           logger,
		compensateRoutes: true,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// do executes one request through the pipeline and returns the unwrapped
// business payload: the enveloped object itself on success, or the raw
// decoded value for endpoints that skip the envelope.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (any, error) {
	op := method + " " + path

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, &apierr.TransportError{Op: op, Err: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if tok := c.tokens.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.metrics != nil {
		c.metrics.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		c.observe(method, "transport_error")
		c.logger.Warn("request failed", "op", op, "error", err)
		return nil, &apierr.TransportError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		c.observe(method, "transport_error")
		return nil, &apierr.TransportError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		c.observe(method, "unauthenticated")
		if c.onUnauthenticated != nil {
			c.onUnauthenticated()
		}
		return nil, &apierr.TransportError{Op: op, Status: resp.StatusCode, Err: apierr.ErrUnauthenticated}
	case http.StatusNotFound:
		c.observe(method, "transport_error")
		return nil, &apierr.TransportError{Op: op, Status: resp.StatusCode, Err: apierr.ErrRouteNotFound}
	}

	v := envelope.Decode(raw)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// The backend sometimes pairs a 4xx/5xx with a proper business
		// envelope; surface its message rather than the bare status.
		if envelope.IsEnveloped(v) {
			code, _ := envelope.Code(v)
			c.observe(method, "business_error")
			return nil, &apierr.BusinessError{Code: code, Message: envelope.Message(v)}
		}
		c.observe(method, "transport_error")
		return nil, &apierr.TransportError{Op: op, Status: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}

	if envelope.IsEnveloped(v) {
		code, ok := envelope.Code(v)
		if !ok || !envelope.IsSuccess(code) {
			c.observe(method, "business_error")
			c.logger.Warn("business failure", "op", op, "code", code, "msg", envelope.Message(v))
			return nil, &apierr.BusinessError{Code: code, Message: envelope.Message(v)}
		}
	}

	c.observe(method, "ok")
	return v, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (any, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, "")
}

// send issues a request with an optional JSON body.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any) (any, error) {
	var reader io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &apierr.TransportError{Op: method + " " + path, Err: fmt.Errorf("marshal body: %w", err)}
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, query, reader, contentType)
}

// sendForm issues a POST with a multipart form body. The content type
// carries the multipart boundary; it is never hand-set JSON.
func (c *Client) sendForm(ctx context.Context, path string, query url.Values, form *Form) (any, error) {
	reader, contentType, err := form.encode()
	if err != nil {
		return nil, &apierr.TransportError{Op: http.MethodPost + " " + path, Err: err}
	}
	return c.do(ctx, http.MethodPost, path, query, reader, contentType)
}

// observe records a request outcome.
func (c *Client) observe(method, outcome string) {
	if c.metrics != nil {
		c.metrics.RequestsTotal.WithLabelValues(method, outcome).Inc()
	}
}

// fallback records a read normalizer degrading to an empty result.
func (c *Client) fallback(endpoint string, err error) {
	if c.metrics != nil {
		c.metrics.NormalizerFallbacks.WithLabelValues(endpoint).Inc()
	}
	c.logger.Warn("degrading to empty result", "endpoint", endpoint, "error", err)
}

// Form is a multipart form payload for the upload endpoints. Field names
// are endpoint-specific and fixed by the backend.
type Form struct {
	fields [][2]string
	files  []formFile
}

type formFile struct {
	field    string
	filename string
	reader   io.Reader
}

// NewForm creates an empty multipart form.
func NewForm() *Form {
	return &Form{}
}

// AddField appends a plain text field.
func (f *Form) AddField(name, value string) {
	f.fields = append(f.fields, [2]string{name, value})
}

// AddFile appends a file part read from r.
func (f *Form) AddFile(field, filename string, r io.Reader) {
	f.files = append(f.files, formFile{field: field, filename: filename, reader: r})
}

// encode renders the form and returns the body with its content type.
func (f *Form) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := w.WriteField(field[0], field[1]); err != nil {
			return nil, "", fmt.Errorf("write form field %q: %w", field[0], err)
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.field, file.filename)
		if err != nil {
			return nil, "", fmt.Errorf("create form file %q: %w", file.field, err)
		}
		if _, err := io.Copy(part, file.reader); err != nil {
			return nil, "", fmt.Errorf("copy form file %q: %w", file.field, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close form: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}
