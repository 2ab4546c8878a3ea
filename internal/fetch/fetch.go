// Package fetch acquires the raw upstream capability document. It owns the
// network concerns the extraction pipeline deliberately excludes: URL
// fallback, redirect limits, and timeouts.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/cfugett/ai-model-info-viewer/internal/config"
	"github.com/cfugett/ai-model-info-viewer/internal/core"
	"github.com/cfugett/ai-model-info-viewer/internal/util"
)

// MaxDocumentSize caps the upstream document read (8MB); the real source is
// well under 1MB.
const MaxDocumentSize = 8 << 20

const userAgent = "ai-model-info-viewer/1.0"

// Fetcher downloads the upstream document, trying each configured URL in
// order until one succeeds.
type Fetcher struct {
	client *http.Client
	urls   []string
	logger core.Logger
}

// NewFetcher creates a Fetcher with a tuned HTTP client.
func NewFetcher(settings config.HTTPClientSettings, urls []string, logger core.Logger) *Fetcher {
	if logger == nil {
		logger = &core.NopLogger{}
	}

	transport := &http.Transport{
		MaxIdleConns:          settings.MaxIdleConns,
		MaxIdleConnsPerHost:   settings.MaxIdleConnsPerHost,
		MaxConnsPerHost:       settings.MaxConnsPerHost,
		IdleConnTimeout:       settings.IdleConnTimeout,
		TLSHandshakeTimeout:   settings.TLSHandshakeTimeout,
		ExpectContinueTimeout: core.HTTPExpectContinueTimeout,
		ResponseHeaderTimeout: core.HTTPResponseHeaderTimeout,
		ForceAttemptHTTP2:     true,
	}

	maxRedirects := settings.MaxRedirects
	if maxRedirects <= 0 {
		maxRedirects = core.HTTPMaxRedirects
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   settings.RequestTimeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}

	return &Fetcher{client: client, urls: urls, logger: logger}
}

// Fetch downloads the document from the first URL that answers with a 2xx
// response, returning the body text and the winning URL. When every URL
// fails the joined per-URL errors are returned.
func (f *Fetcher) Fetch(ctx context.Context) (string, string, error) {
	if len(f.urls) == 0 {
		return "", "", errors.New("no source URLs configured")
	}

	var errs []error
	for _, url := range f.urls {
		text, err := f.fetchOne(ctx, url)
		if err != nil {
			f.logger.Warn("fetch %s failed: %v", url, err)
			errs = append(errs, fmt.Errorf("%s: %w", url, err))
			continue
		}
		f.logger.Info("fetched %d bytes from %s", len(text), url)
		f.logger.Debug("document: %s", util.TruncateString(text, 160, 40, " ... "))
		return text, url, nil
	}

	return "", "", errors.Join(errs...)
}

func (f *Fetcher) fetchOne(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxDocumentSize))
	if err != nil {
		return "", err
	}
	if len(body) == 0 {
		return "", errors.New("empty response body")
	}

	return string(body), nil
}
