package likeclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"like-service/internal/infrastructure/httpx"
)

const likePath = "/api/like"

// StatusError is a non-200 answer from the like endpoint.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("likeclient: status %d", e.Code)
	}
	return fmt.Sprintf("likeclient: status %d: %s", e.Code, e.Message)
}

type Client struct {
	baseURL string
	http    *httpx.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.http.HTTP = hc } }
func WithLogger(l httpx.Logger) Option      { return func(c *Client) { c.http.Log = l } }
func WithMaxElapsed(d time.Duration) Option {
	return func(c *Client) { c.http.MaxElapsed = d }
}

// New builds a client for the site at baseURL, e.g. "https://example.com".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &httpx.Client{HTTP: &http.Client{Timeout: 5 * time.Second}},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type countResponse struct {
	Count int64 `json:"count"`
}

// Count reads the current like count. Reads are retried on transient failures.
func (c *Client) Count(ctx context.Context) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+likePath, nil)
	if err != nil {
		return 0, err
	}
	var out countResponse
	if err := c.http.DoJSON(ctx, req, &out); err != nil {
		return 0, mapErr(err)
	}
	return out.Count, nil
}

// Like increments the counter once. It is never retried: a lost response
// does not mean the increment was lost.
func (c *Client) Like(ctx context.Context) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+likePath, nil)
	if err != nil {
		return 0, err
	}
	var out countResponse
	if err := c.http.DoJSONOnce(ctx, req, &out); err != nil {
		return 0, mapErr(err)
	}
	return out.Count, nil
}

func mapErr(err error) error {
	var serr *httpx.StatusError
	if !errors.As(err, &serr) {
		return err
	}
	var body struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(serr.Body, &body)
	return &StatusError{Code: serr.Code, Message: body.Message}
}
