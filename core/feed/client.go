package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"catalog-sync/core/metrics"

	"go.uber.org/zap"
)

// maxBodyBytes caps how much of a feed response is read.
const maxBodyBytes = 64 << 20

// Client fetches feed documents over HTTP GET.
type Client struct {
	http    *http.Client
	archive *Archive
	logger  *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithArchive uploads every fetched body through a.
func WithArchive(a *Archive) Option {
	return func(c *Client) { c.archive = a }
}

// NewClient creates a feed client whose requests time out after cfg.Timeout().
func NewClient(cfg Config, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		http:   &http.Client{Timeout: cfg.Timeout()},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch GETs url and decodes the JSON body into out.
// Transport failures and non-200 answers are returned as *FetchError,
// malformed bodies as *DecodeError.
func (c *Client) Fetch(ctx context.Context, name, url string, out any) error {
	start := time.Now()
	body, err := c.get(ctx, name, url)
	if err != nil {
		metrics.ObserveFetch(name, "fetch_error", time.Since(start))
		return err
	}

	if c.archive != nil {
		if key, err := c.archive.Store(ctx, name, body); err != nil {
			c.logger.Warn("Feed archive upload failed", zap.String("feed", name), zap.Error(err))
		} else {
			c.logger.Debug("Feed body archived", zap.String("feed", name), zap.String("object", key))
		}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(out); err != nil {
		metrics.ObserveFetch(name, "decode_error", time.Since(start))
		return &DecodeError{Feed: name, Err: err}
	}

	metrics.ObserveFetch(name, "ok", time.Since(start))
	return nil
}

func (c *Client) get(ctx context.Context, name, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Feed: name, URL: url, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return nil, &FetchError{Feed: name, URL: url, Err: fmt.Errorf("request was cancelled: %w", ctxErr)}
		}
		return nil, &FetchError{Feed: name, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &FetchError{Feed: name, URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &FetchError{Feed: name, URL: url, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	return body, nil
}
