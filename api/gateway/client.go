package gateway

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Config carries the settings the gateway needs; it mirrors
// config.APIConfig without importing the config package here.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	Name           string
}

// Client is a thin typed wrapper over the remote to-do API. It issues
// requests and hands back raw responses: no retries, no caching, and no
// interpretation of HTTP status codes. Callers inspect Response.
type Client struct {
	http    *fasthttp.Client
	baseURL string
	timeout time.Duration
	logger  *zap.Logger
}

// New builds a gateway client for the given base URL.
func New(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	name := cfg.Name
	if name == "" {
		name = "todoclient"
	}
	return &Client{
		http: &fasthttp.Client{
			Name:         name,
			ReadTimeout:  cfg.RequestTimeout,
			WriteTimeout: cfg.RequestTimeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.RequestTimeout,
		logger:  logger,
	}
}

// Response is the raw outcome of an HTTP exchange. Success and failure
// interpretation is left entirely to the caller.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the status code is in the 2xx range. It is a
// convenience for callers; the gateway itself never branches on it.
func (r *Response) OK() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v interface{}) error {
	if r == nil {
		return json.Unmarshal(nil, v)
	}
	return json.Unmarshal(r.Body, v)
}

// do performs a single HTTP exchange. A context deadline is honored via
// the request deadline; cancellation of an in-flight request is not
// supported, the exchange runs to completion.
func (c *Client) do(ctx context.Context, method, path, token string, body []byte) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	requestID := uuid.NewString()
	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(method)
	req.Header.SetContentType("application/json")
	req.Header.Set("X-Request-ID", requestID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.SetBody(body)
	}

	deadline, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		deadline = time.Now().Add(c.timeout)
	}

	start := time.Now()
	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		c.logger.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, err
	}

	out := &Response{
		StatusCode: resp.StatusCode(),
		Body:       append([]byte(nil), resp.Body()...),
	}
	c.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.Int("status", out.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, method, path, token string, payload interface{}) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, method, path, token, body)
}
