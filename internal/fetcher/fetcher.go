// Package fetcher retrieves raw HTML for a single page over HTTP.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"seoKeywordAnalyzerGO/internal/config"
	"seoKeywordAnalyzerGO/internal/models"
)

// Fetcher issues a single GET with browser-like headers. No retries, no
// caching; redirects follow the http.Client defaults.
type Fetcher struct {
	client *http.Client
	config config.FetcherConfig
	logger *slog.Logger
}

// New creates a new Fetcher
func New(cfg config.FetcherConfig, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		config: cfg,
		logger: logger,
	}
}

// Fetch retrieves the page body for the given URL. Connection failures,
// timeouts and non-2xx statuses all come back as *models.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, urlStr string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &models.FetchError{URL: urlStr, Err: err}
	}

	f.setHeaders(req)

	f.logger.Info("Fetching page", "url", urlStr)
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &models.FetchError{URL: urlStr, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &models.FetchError{
			URL: urlStr,
			Err: fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &models.FetchError{URL: urlStr, Err: err}
	}

	return body, nil
}

// setHeaders mimics a real browser session so ordinary pages respond with
// the markup a human visitor would get.
func (f *Fetcher) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", f.config.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Referer", "https://www.google.com/")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("DNT", "1")
	req.Header.Set("Cookie", "testcookie=1")
}
