package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Logger is satisfied by *zap.SugaredLogger.
type Logger interface {
	Warnw(msg string, keysAndValues ...any)
}

// StatusError reports a non-200 response. Body holds at most the first 4KiB.
type StatusError struct {
	Code int
	Body []byte
}

func (e *StatusError) Error() string { return fmt.Sprintf("status %d", e.Code) }

type Client struct {
	HTTP       *http.Client
	Token      string
	Log        Logger
	MaxElapsed time.Duration
}

// DoJSON sends req, retrying transport errors and 5xx with exponential backoff,
// and decodes a 200 body into out. Only use it for requests that are safe to repeat.
func (c *Client) DoJSON(ctx context.Context, req *http.Request, out any) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 200 * time.Millisecond
	exp.MaxInterval = 1 * time.Second
	exp.MaxElapsedTime = 3 * time.Second
	if c.MaxElapsed > 0 {
		exp.MaxElapsedTime = c.MaxElapsed
	}
	return c.do(ctx, req, out, exp)
}

// DoJSONOnce is DoJSON without retries.
func (c *Client) DoJSONOnce(ctx context.Context, req *http.Request, out any) error {
	return c.do(ctx, req, out, &backoff.StopBackOff{})
}

func (c *Client) do(ctx context.Context, req *http.Request, out any, b backoff.BackOff) error {
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	req.Header.Set("Accept", "application/json")
	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}

	op := func() error {
		resp, err := hc.Do(req.WithContext(ctx))
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
			serr := &StatusError{Code: resp.StatusCode, Body: body}
			if resp.StatusCode >= 500 {
				return serr
			}
			return backoff.Permanent(serr)
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(fmt.Errorf("decode: %w", err))
		}
		return nil
	}
	notify := func(err error, d time.Duration) {
		if c.Log != nil {
			c.Log.Warnw("http retry", "method", req.Method, "url", req.URL.String(), "error", err, "backoff", d)
		}
	}
	return backoff.RetryNotify(op, backoff.WithContext(b, ctx), notify)
}
