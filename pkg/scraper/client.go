package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"schgen/pkg/logging"
	"schgen/pkg/pagereader"
)

// DefaultBaseURL is the faculty's course catalogue.
const DefaultBaseURL = "https://www.fit.vut.cz/study/courses/"

// DefaultListPath is the catalogue page listing every course.
const DefaultListPath = ".cs"

// Client handles HTTP requests to the faculty website
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	cache      *Cache
	logger     *slog.Logger
}

// NewClient creates a new scraper client. A nil cache disables caching.
func NewClient(baseURL string, cache *Cache, logger *slog.Logger) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: base,
		cache:   cache,
		logger:  logger,
	}, nil
}

// Resolve turns a link found on a page into an absolute URL.
func (c *Client) Resolve(ref string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("invalid link %q: %w", ref, err)
	}
	return c.baseURL.ResolveReference(u).String(), nil
}

// Get fetches the given URL, relative to the base URL, and returns the
// response body.
func (c *Client) Get(ctx context.Context, ref string) ([]byte, error) {
	target, err := c.Resolve(ref)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	// Add expected headers
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0")
	req.Header.Set("Accept-Language", "cs")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, target)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", target, err)
	}
	return body, nil
}

// FetchPage returns the parsed page at ref, from the cache when a fresh
// copy exists.
func (c *Client) FetchPage(ctx context.Context, ref string) (*pagereader.Document, error) {
	target, err := c.Resolve(ref)
	if err != nil {
		return nil, err
	}

	body, ok := c.cache.Read(target)
	if ok {
		c.logger.Debug("page cache hit", logging.FieldURL, target)
	} else {
		body, err = c.Get(ctx, target)
		if err != nil {
			return nil, err
		}
		if err := c.cache.Write(target, body); err != nil {
			c.logger.Warn("failed to cache page", logging.FieldURL, target, "error", err)
		}
	}

	doc, err := pagereader.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", target, err)
	}
	return doc, nil
}
