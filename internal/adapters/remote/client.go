// Package remote implements the RemoteStore port against a plain HTTP object
// store: GET downloads, PUT uploads, keyed by URL path.
package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.trai.ch/webassets/internal/core/domain"
	"go.trai.ch/webassets/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RemoteStore = (*Client)(nil)

// Client talks to a peer store over HTTP.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a Client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Connect verifies the peer is reachable and returns a connection.
func (c *Client) Connect(ctx context.Context) (ports.RemoteConn, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/", nil)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRemoteUnavailable.Error())
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, zerr.Wrap(zerr.Wrap(err, domain.ErrRemoteUnavailable.Error()), "failed to reach remote store")
	}
	_ = resp.Body.Close()

	return &conn{client: c}, nil
}

// conn is one logical connection. The plain HTTP backend has no staging
// area, so uploads take effect immediately and Commit has nothing to do.
type conn struct {
	client *Client
}

func (c *conn) objectURL(key string) string {
	parts := strings.Split(key, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return c.client.baseURL + "/" + strings.Join(parts, "/")
}

// Download streams the object at key into sink.
func (c *conn) Download(ctx context.Context, key string, sink io.Writer) (time.Time, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.objectURL(key), nil)
	if err != nil {
		return time.Time{}, zerr.Wrap(err, "failed to build download request")
	}

	resp, err := c.client.httpc.Do(req)
	if err != nil {
		return time.Time{}, zerr.With(zerr.Wrap(err, domain.ErrRemoteUnavailable.Error()), "key", key)
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return time.Time{}, zerr.With(domain.ErrRemoteObjectMissing, "key", key)
	case resp.StatusCode != http.StatusOK:
		return time.Time{}, zerr.With(zerr.New(fmt.Sprintf("unexpected status %d from remote store", resp.StatusCode)), "key", key)
	}

	if _, err := io.Copy(sink, resp.Body); err != nil {
		return time.Time{}, zerr.With(zerr.Wrap(err, "failed to stream remote object"), "key", key)
	}

	mtime := time.Now()
	if lm := resp.Header.Get("Last-Modified"); lm != "" {
		if t, err := http.ParseTime(lm); err == nil {
			mtime = t
		}
	}
	return mtime, nil
}

// Upload publishes the object at key.
func (c *conn) Upload(ctx context.Context, key string, source io.Reader) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.objectURL(key), source)
	if err != nil {
		return zerr.Wrap(err, "failed to build upload request")
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.client.httpc.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to upload to remote store"), "key", key)
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusNoContent {
		return zerr.With(zerr.New(fmt.Sprintf("unexpected status %d from remote store", resp.StatusCode)), "key", key)
	}
	return nil
}

// Commit is a no-op for the HTTP backend.
func (c *conn) Commit(_ context.Context) error {
	return nil
}

// Close releases the connection.
func (c *conn) Close() error {
	return nil
}
