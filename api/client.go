package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xy-planning-network/hackathons"
	"github.com/xy-planning-network/hackathons/auth"
	"github.com/xy-planning-network/hackathons/logger"
	"golang.org/x/oauth2"
)

const (
	DefaultTimeout = 30 * time.Second

	maxErrBody = 1 << 20
)

// Client is an HTTP client for the hackathons backend.
type Client struct {
	base       http.RoundTripper
	baseURL    *url.URL
	httpClient *http.Client
	logger     logger.Logger
	token      auth.Token
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client.
// Its Transport is kept as the base the bearer token is added on top of.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc == nil {
			return
		}

		cp := *hc
		c.httpClient = &cp
		c.base = hc.Transport
	}
}

// WithLogger logs each request at the debug level.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithTimeout sets the HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithToken authenticates requests with token.
func WithToken(token auth.Token) Option {
	return func(c *Client) { c.token = token }
}

// New creates a new backend client rooted at baseURL.
// Request paths are resolved relative to it.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: base url %q: %s", hackathons.ErrNotValid, baseURL, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: base url %q must be absolute", hackathons.ErrNotValid, baseURL)
	}

	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.authorize()
	return c, nil
}

// WithToken returns a copy of c that authenticates requests with token.
// An empty token yields an unauthenticated copy.
func (c *Client) WithToken(token auth.Token) *Client {
	cp := *c
	hc := *c.httpClient
	cp.httpClient = &hc
	cp.token = token
	cp.authorize()
	return &cp
}

// BaseURL returns the URL request paths are resolved against.
func (c *Client) BaseURL() string { return c.baseURL.String() }

// authorize sets the transport of c.httpClient according to c.token.
func (c *Client) authorize() {
	if c.token == "" {
		c.httpClient.Transport = c.base
		return
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.token.String(), TokenType: "Bearer"})
	c.httpClient.Transport = &oauth2.Transport{Source: src, Base: c.base}
}

// doJSON sends in, if not nil, as a JSON body and decodes the response into out, if not nil.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: failed encoding request: %s", hackathons.ErrNotValid, err)
		}
		body = bytes.NewReader(b)
	}

	ct := ""
	if body != nil {
		ct = "application/json"
	}

	return c.do(ctx, method, path, body, ct, out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	u := c.baseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return &NetworkError{Op: method, URL: u.String(), Err: err}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID(ctx))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log(req, 0, start, err)
		return &NetworkError{Op: method, URL: u.String(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	c.log(req, resp.StatusCode, start, nil)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		return &ServerError{StatusCode: resp.StatusCode, Body: bytes.TrimSpace(b)}
	}

	if out == nil {
		return nil
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: method, URL: u.String(), Err: err}
	}

	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}

	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%w: %s %s: %s", ErrDecode, method, u, err)
	}

	return nil
}

func (c *Client) log(req *http.Request, status int, start time.Time, err error) {
	if c.logger == nil {
		return
	}

	c.logger.Debug("backend request", &logger.LogContext{
		Data: map[string]any{
			"duration_ms": time.Since(start).Milliseconds(),
			"method":      req.Method,
			"request_id":  req.Header.Get("X-Request-ID"),
			"status":      status,
			"url":         req.URL.String(),
		},
		Error: err,
	})
}

// requestID forwards the ID of the request being handled, if any, or mints a new one.
func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(hackathons.RequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}
