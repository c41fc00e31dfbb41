package scraper

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"newsbrief/internal/resilience/circuitbreaker"
)

// Page is a fetched article document.
type Page struct {
	// URL is the final URL after redirects.
	URL  *url.URL
	HTML []byte
}

// PageFetcher downloads article pages.
//
// Features:
//   - SSRF prevention on the URL and on every redirect target
//   - Browser User-Agent
//   - Size limiting while reading the body
//   - Per-fetch timeout
//   - Circuit breaker that only fails fast, never retries. It counts
//     transport failures only: a status from the host or a per-page limit
//     describes that one article, not the scraper.
//
// Thread safety: PageFetcher is safe for concurrent use.
type PageFetcher struct {
	client         *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	config         Config
}

// NewPageFetcher creates a fetcher with its own HTTP client. Each redirect
// target is validated the same way as the requested URL.
func NewPageFetcher(config Config) *PageFetcher {
	cbConfig := circuitbreaker.ArticleScrapeConfig()
	cbConfig.IsSuccessful = countsAsSuccess
	f := &PageFetcher{
		circuitBreaker: circuitbreaker.New(cbConfig),
		config:         config,
	}

	f.client = &http.Client{
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) > f.config.MaxRedirects {
				return fmt.Errorf("%w: %d redirects", ErrTooManyRedirects, len(via))
			}
			if err := validateURL(req.Context(), req.URL, f.config.DenyPrivateIPs); err != nil {
				return fmt.Errorf("redirect target validation failed: %w", err)
			}
			return nil
		},
	}

	return f
}

// countsAsSuccess reports whether err leaves the breaker's failure count
// untouched: the host answered, the page broke a per-page limit, or the
// host name does not exist.
func countsAsSuccess(err error) bool {
	if err == nil {
		return true
	}
	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		return true
	}
	if errors.Is(err, ErrBodyTooLarge) ||
		errors.Is(err, ErrTooManyRedirects) ||
		errors.Is(err, ErrPrivateIP) ||
		errors.Is(err, ErrInvalidURL) {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr) && dnsErr.IsNotFound
}

// CircuitBreaker exposes the breaker for health reporting.
func (f *PageFetcher) CircuitBreaker() *circuitbreaker.CircuitBreaker {
	return f.circuitBreaker
}

// Fetch validates rawURL and downloads the page through the circuit breaker.
// Invalid or private URLs are rejected before the breaker and do not count
// as dependency failures.
func (f *PageFetcher) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	u, err := parseArticleURL(ctx, rawURL, f.config.DenyPrivateIPs)
	if err != nil {
		return nil, err
	}

	result, err := f.circuitBreaker.Execute(func() (interface{}, error) {
		return f.doFetch(ctx, u)
	})
	if err != nil {
		return nil, err
	}

	return result.(*Page), nil
}

func (f *PageFetcher) doFetch(ctx context.Context, u *url.URL) (*Page, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", f.config.userAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: request exceeded %v", ErrTimeout, f.config.Timeout)
		}
		// リダイレクト検証エラーはそのまま返す
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Err != nil {
			return nil, urlErr.Err
		}
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPStatusError{StatusCode: resp.StatusCode}
	}

	htmlBytes, err := io.ReadAll(io.LimitReader(resp.Body, f.config.MaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(htmlBytes)) > f.config.MaxBodySize {
		return nil, fmt.Errorf("%w: response size exceeds limit %d bytes", ErrBodyTooLarge, f.config.MaxBodySize)
	}

	finalURL := u
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL
	}

	return &Page{URL: finalURL, HTML: htmlBytes}, nil
}
