package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenSource supplies the current access token, or "" when logged out.
// The session manager is the usual implementation.
type TokenSource interface {
	AccessToken() string
}

// TokenSourceFunc adapts a plain function to a TokenSource.
type TokenSourceFunc func() string

func (f TokenSourceFunc) AccessToken() string { return f() }

// Client is the single transport for every domain client. It attaches the
// bearer token, normalizes responses into Result envelopes and converts
// network failures into connectivity messages instead of errors.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
	}
}

// NewWithHTTPClient is used by tests to inject a httptest client.
func NewWithHTTPClient(baseURL string, tokens TokenSource, hc *http.Client) *Client {
	c := New(baseURL, tokens)
	c.http = hc
	return c
}

type reqOptions struct {
	// noCache forces no-cache headers, used on list GETs so dashboards
	// always see the server's current counters.
	noCache bool
	// okOnNotFound downgrades a 404 to success for idempotent deletes:
	// the desired end state (absence) already holds.
	okOnNotFound bool
}

// rawResponse is what the wire gave us, before typed decoding.
type rawResponse struct {
	status int
	body   []byte
	isJSON bool
}

func (c *Client) send(ctx context.Context, method, path string, body any, opts reqOptions) (*rawResponse, error) {
	var reader io.Reader
	hasBody := body != nil
	if hasBody {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if opts.noCache {
		req.Header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
		req.Header.Set("Pragma", "no-cache")
		req.Header.Set("Expires", "0")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		zap.L().Debug("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &rawResponse{
		status: resp.StatusCode,
		body:   raw,
		isJSON: strings.Contains(resp.Header.Get("Content-Type"), "application/json"),
	}, nil
}

// call performs a request and normalizes the outcome into a Result.
// defaultMsg is the per-operation fallback when the error body carries no message.
func call[T any](ctx context.Context, c *Client, method, path string, body any, defaultMsg string, opts reqOptions) Result[T] {
	resp, err := c.send(ctx, method, path, body, opts)
	if err != nil {
		return Result[T]{Success: false, Message: MsgConnectivity}
	}

	return decode[T](resp, defaultMsg, opts)
}
