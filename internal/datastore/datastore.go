// Package datastore resolves public URLs to model-ready content through the
// backend data-store proxy. PDFs come back base64-encoded; web pages come
// back as cleaned plain text. The package performs no retries and no
// caching; a failure propagates with the backend status and body.
package datastore

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

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/permit-navigator/internal/llm"
)

// Media types the proxy returns.
const (
	MimePDF  = "application/pdf"
	MimeText = "text/plain"
)

// DefaultTimeout bounds one proxy call.
const DefaultTimeout = 60 * time.Second

// Response is the proxy's answer for one URL.
type Response struct {
	SourceURL string `json:"sourceUrl"`
	MimeType  string `json:"mimeType"`
	Content   string `json:"content"`
}

// Part converts resolved content into a model input part: inline binary for
// PDFs, inline text otherwise.
func (r *Response) Part() llm.Part {
	if r.MimeType == MimePDF {
		return llm.DataPart(MimePDF, r.Content)
	}
	return llm.TextPart(r.Content)
}

// Resolver resolves one URL to content. Implemented by Client and by the
// direct fetcher used when no proxy is configured.
type Resolver interface {
	Resolve(ctx context.Context, rawURL string) (*Response, error)
}

// Error represents a failed proxy exchange for one URL.
type Error struct {
	URL    string
	Status int
	Body   string
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("data store error for %s: %v", e.URL, e.Cause)
	}
	return fmt.Sprintf("data store error for %s (%d): %s", e.URL, e.Status, e.Body)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// InvalidURLError lists malformed URLs caught before any network call.
type InvalidURLError struct {
	URLs []string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid URL(s): %s", strings.Join(e.URLs, ", "))
}

// Client calls the data-store proxy endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a proxy client. The endpoint must be configured; an
// empty value fails here, at startup, not on first use.
func NewClient(endpoint string) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("data store proxy endpoint is not configured")
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}, nil
}

// Resolve posts one URL to the proxy and returns its content.
func (c *Client) Resolve(ctx context.Context, rawURL string) (*Response, error) {
	if !IsValidURL(rawURL) {
		return nil, &InvalidURLError{URLs: []string{rawURL}}
	}

	payload, err := json.Marshal(map[string]string{"url": rawURL})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{URL: rawURL, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: rawURL, Cause: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{URL: rawURL, Status: resp.StatusCode, Body: string(body)}
	}

	var decoded Response
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &Error{URL: rawURL, Cause: fmt.Errorf("failed to decode response: %w", err)}
	}
	return &decoded, nil
}

// IsValidURL reports whether a raw URL has a scheme and host.
func IsValidURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	return err == nil && parsed.Scheme != "" && parsed.Host != ""
}

// ResolveAll resolves every URL concurrently and returns the results in
// input order regardless of completion order. Malformed URLs are rejected
// together, before any network call; one failed resolution fails the whole
// batch.
func ResolveAll(ctx context.Context, resolver Resolver, urls []string) ([]*Response, error) {
	var invalid []string
	for _, u := range urls {
		if !IsValidURL(u) {
			invalid = append(invalid, u)
		}
	}
	if len(invalid) > 0 {
		return nil, &InvalidURLError{URLs: invalid}
	}

	results := make([]*Response, len(urls))
	g, gCtx := errgroup.WithContext(ctx)
	for i, u := range urls {
		g.Go(func() error {
			resolved, err := resolver.Resolve(gCtx, u)
			if err != nil {
				return err
			}
			results[i] = resolved
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Parts converts an ordered resolution batch into content parts, keeping
// the index correlation.
func Parts(responses []*Response) []llm.Part {
	parts := make([]llm.Part, 0, len(responses))
	for _, r := range responses {
		parts = append(parts, r.Part())
	}
	return parts
}
