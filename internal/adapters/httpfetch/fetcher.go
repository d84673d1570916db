// Package httpfetch implements the remote artifact fetcher over HTTP.
package httpfetch

import (
	"context"
	"io"
	"net/http"
	"time"

	"go.trai.ch/zerr"
)

// DefaultTimeout bounds a single artifact download end to end.
const DefaultTimeout = 2 * time.Minute

// Fetcher implements ports.Fetcher using net/http.
type Fetcher struct {
	client *http.Client
}

// New creates a Fetcher with a shared HTTP client. The shared client keeps
// connection pooling across the many small downloads of a sync run.
func New() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: DefaultTimeout},
	}
}

// NewWithClient creates a Fetcher using the given HTTP client.
func NewWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch downloads the resource at url in full and returns its bytes. A
// non-2xx response is an error; partial or resumable downloads are not
// supported.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create request"), "url", url)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "request failed"), "url", url)
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, zerr.With(zerr.With(zerr.New("unexpected status"), "status", resp.Status), "url", url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read response body"), "url", url)
	}

	return body, nil
}
