package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/campus-hq/uni-admin-gateway/pkg/config"
	appErrors "github.com/campus-hq/uni-admin-gateway/pkg/errors"
)

// TokenSource supplies the bearer token for outgoing requests. It is
// consulted on every request so a login or logout is picked up immediately.
type TokenSource interface {
	Access() string
}

// RequestObserver records upstream request timings.
type RequestObserver interface {
	ObserveUpstreamRequest(method, path string, status int, duration time.Duration)
}

// Client is the single HTTP client for the university REST API. The base
// URL and JSON content type are fixed at construction; the bearer token is
// attached iff the token source currently holds one. Requests without a
// token go out unauthenticated and surface the upstream's rejection.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
	observer   RequestObserver
	logger     *zap.Logger
}

// NewClient constructs the upstream client. cfg.Timeout of zero means no
// client-side timeout. observer may be nil.
func NewClient(cfg config.UpstreamConfig, tokens TokenSource, observer RequestObserver, logger *zap.Logger) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = "http://127.0.0.1:8000/api/"
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    base,
		tokens:     tokens,
		observer:   observer,
		logger:     logger,
	}
}

// Get issues a GET and decodes the whole response body into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.decode(path, body, out)
}

// GetList issues a GET against a collection endpoint and normalizes the
// response shape into dest, which must be a pointer to a slice.
func (c *Client) GetList(ctx context.Context, path string, dest any) error {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := decodeList(body, dest); err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, fmt.Sprintf("decode %s list response", path))
	}
	return nil
}

// Post issues a POST with a JSON payload, decoding the response into out
// when out is non-nil.
func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	body, err := c.do(ctx, http.MethodPost, path, in)
	if err != nil {
		return err
	}
	return c.decode(path, body, out)
}

// Put issues a PUT with a JSON payload, decoding the response into out
// when out is non-nil.
func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	body, err := c.do(ctx, http.MethodPut, path, in)
	if err != nil {
		return err
	}
	return c.decode(path, body, out)
}

// Delete issues a DELETE and discards any response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, in any) ([]byte, error) {
	var reqBody io.Reader
	if in != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode upstream payload")
		}
		reqBody = buf
	}

	url := c.baseURL + strings.TrimPrefix(path, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build upstream request")
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens.Access(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.observer != nil {
			c.observer.ObserveUpstreamRequest(method, path, 0, time.Since(start))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "upstream request failed")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if c.observer != nil {
		c.observer.ObserveUpstreamRequest(method, path, resp.StatusCode, time.Since(start))
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "read upstream response")
	}

	if resp.StatusCode >= 400 {
		return nil, c.statusError(method, path, resp.StatusCode, body)
	}
	return body, nil
}

func (c *Client) decode(path string, body []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, fmt.Sprintf("decode %s response", path))
	}
	return nil
}

func (c *Client) statusError(method, path string, status int, body []byte) error {
	snippet := strings.TrimSpace(string(body))
	if len(snippet) > 512 {
		snippet = snippet[:512]
	}
	c.logger.Warn("upstream rejected request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
	)

	switch status {
	case http.StatusUnauthorized:
		return appErrors.Clone(appErrors.ErrUnauthorized, "upstream rejected the session token")
	case http.StatusForbidden:
		return appErrors.Clone(appErrors.ErrForbidden, "upstream denied access")
	case http.StatusNotFound:
		return appErrors.Clone(appErrors.ErrNotFound, "upstream resource not found")
	case http.StatusBadRequest:
		return appErrors.Wrap(fmt.Errorf("%s", snippet), appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "upstream rejected the payload")
	default:
		return appErrors.Wrap(fmt.Errorf("status %d: %s", status, snippet), appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "upstream request failed")
	}
}
