// Package edgar implements access to the SEC EDGAR REST APIs: a resilient
// HTTP client, ticker-to-CIK resolution, and the wire shapes of the
// endpoints this module consumes.
//
// The SEC requires a User-Agent identifying the caller on every request and
// allows at most 10 requests per second per user agent.
// Docs: https://www.sec.gov/edgar/sec-api-documentation
package edgar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultDataBaseURL serves the JSON data APIs (submissions, XBRL,
	// ticker directory).
	DefaultDataBaseURL = "https://data.sec.gov"

	// DefaultArchiveBaseURL serves the actual filing documents.
	DefaultArchiveBaseURL = "https://www.sec.gov/Archives/edgar/data"

	// DefaultUserAgent identifies this module per SEC access policy.
	// Deployments should override it with their own contact address.
	DefaultUserAgent = "EdgarAI/1.0 (github.com/seenimoa/edgarai)"
)

// ErrRateLimited is returned when the upstream answered 429 twice in a row.
var ErrRateLimited = errors.New("rate limited by SEC EDGAR")

// ErrHTTP wraps a non-success HTTP status.
type ErrHTTP struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *ErrHTTP) Error() string {
	return fmt.Sprintf("HTTP %d %s: %s", e.StatusCode, e.Status, e.Body)
}

// RetryPolicy controls how the client retries transient failures.
// Network errors are retried with exponential backoff; a 429 gets exactly
// one extra attempt after RateLimitCooldown, regardless of the backoff
// counter. Other non-success statuses are never retried.
type RetryPolicy struct {
	MaxAttempts       int
	BaseWait          time.Duration
	MaxWait           time.Duration
	RateLimitCooldown time.Duration
}

// DefaultRetryPolicy returns the policy used when none is configured.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:       3,
		BaseWait:          time.Second,
		MaxWait:           10 * time.Second,
		RateLimitCooldown: time.Second,
	}
}

func (p RetryPolicy) normalize() RetryPolicy {
	def := DefaultRetryPolicy()
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = def.MaxAttempts
	}
	if p.BaseWait <= 0 {
		p.BaseWait = def.BaseWait
	}
	if p.MaxWait < p.BaseWait {
		p.MaxWait = p.BaseWait
	}
	if p.RateLimitCooldown <= 0 {
		p.RateLimitCooldown = def.RateLimitCooldown
	}
	return p
}

// backoff returns the wait before the given zero-based retry attempt.
func (p RetryPolicy) backoff(attempt int) time.Duration {
	wait := p.BaseWait << attempt
	if wait > p.MaxWait || wait <= 0 {
		wait = p.MaxWait
	}
	return wait
}

// Doer performs HTTP requests. *http.Client implements it; tests substitute
// a recording fake.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the resilient EDGAR HTTP client. It paces outbound requests,
// attaches the required identification header, and applies the retry
// policy. Safe for concurrent use; pacing is shared across callers.
type Client struct {
	httpClient     Doer
	limiter        *rate.Limiter
	userAgent      string
	policy         RetryPolicy
	dataBaseURL    string
	archiveBaseURL string
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithHTTPClient substitutes the underlying HTTP transport.
func WithHTTPClient(d Doer) ClientOption {
	return func(c *Client) { c.httpClient = d }
}

// WithUserAgent sets the SEC identification header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithRetryPolicy sets the retry policy.
func WithRetryPolicy(p RetryPolicy) ClientOption {
	return func(c *Client) { c.policy = p.normalize() }
}

// WithRateLimit sets the request pacing. SEC guidance caps access at
// 10 requests per second.
func WithRateLimit(perSec, burst int) ClientOption {
	return func(c *Client) {
		if perSec > 0 && burst > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(perSec), burst)
		}
	}
}

// WithBaseURLs overrides the upstream endpoints, used by tests and mirrors.
func WithBaseURLs(data, archive string) ClientOption {
	return func(c *Client) {
		if data != "" {
			c.dataBaseURL = strings.TrimRight(data, "/")
		}
		if archive != "" {
			c.archiveBaseURL = strings.TrimRight(archive, "/")
		}
	}
}

// NewClient creates an EDGAR client with defaults suitable for production.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient:     &http.Client{Timeout: 30 * time.Second},
		limiter:        rate.NewLimiter(rate.Limit(10), 10),
		userAgent:      DefaultUserAgent,
		policy:         DefaultRetryPolicy(),
		dataBaseURL:    DefaultDataBaseURL,
		archiveBaseURL: DefaultArchiveBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// --- Endpoint URL builders ---

// TickerDirectoryURL is the full ticker→CIK directory.
func (c *Client) TickerDirectoryURL() string {
	return c.dataBaseURL + "/files/company_tickers.json"
}

// SubmissionsURL is the filing index for a 10-digit CIK.
func (c *Client) SubmissionsURL(cik string) string {
	return fmt.Sprintf("%s/submissions/CIK%s.json", c.dataBaseURL, cik)
}

// CompanyFactsURL is the XBRL facts feed for a 10-digit CIK.
func (c *Client) CompanyFactsURL(cik string) string {
	return fmt.Sprintf("%s/api/xbrl/companyfacts/CIK%s.json", c.dataBaseURL, cik)
}

// ConceptURL is the per-concept XBRL history for a 10-digit CIK.
func (c *Client) ConceptURL(cik, concept string) string {
	return fmt.Sprintf("%s/api/xbrl/companyconcept/CIK%s/us-gaap/%s.json", c.dataBaseURL, cik, concept)
}

// ArchiveDocumentURL is the stable URL of one filing document.
func (c *Client) ArchiveDocumentURL(cik, accessionNumber, primaryDocument string) string {
	accClean := strings.ReplaceAll(accessionNumber, "-", "")
	return fmt.Sprintf("%s/%s/%s/%s", c.archiveBaseURL, cik, accClean, primaryDocument)
}

// --- Fetching ---

// Get fetches url and returns the response body. It waits on the pacer
// before every attempt, retries network errors with exponential backoff up
// to the policy's attempt budget, and grants a 429 one cool-down retry.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	attempt := 0
	cooledDown := false

	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		body, status, err := c.do(ctx, url)
		switch {
		case err == nil && status < http.StatusMultipleChoices:
			return body, nil

		case err == nil && status == http.StatusTooManyRequests:
			if cooledDown {
				return nil, fmt.Errorf("%w: GET %s", ErrRateLimited, url)
			}
			cooledDown = true
			slog.Warn("edgar rate limited, cooling down",
				"url", url, "cooldown", c.policy.RateLimitCooldown)
			if err := sleepCtx(ctx, c.policy.RateLimitCooldown); err != nil {
				return nil, err
			}

		case err == nil:
			// Non-success, non-429: never retried.
			return nil, &ErrHTTP{StatusCode: status, Status: http.StatusText(status), Body: truncate(string(body), 1024)}

		default:
			lastErr = err
			attempt++
			if attempt >= c.policy.MaxAttempts {
				return nil, fmt.Errorf("GET %s failed after %d attempts: %w", url, attempt, lastErr)
			}
			wait := c.policy.backoff(attempt - 1)
			slog.Warn("edgar retry",
				"url", url, "attempt", attempt, "max_attempts", c.policy.MaxAttempts,
				"wait", wait, "error", err)
			if err := sleepCtx(ctx, wait); err != nil {
				return nil, lastErr
			}
		}
	}
}

// GetJSON fetches url and decodes the JSON body into dest.
func (c *Client) GetJSON(ctx context.Context, url string, dest any) error {
	data, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("parse SEC JSON from %s: %w", url, err)
	}
	return nil
}

// do issues a single GET. err is non-nil only for transport failures;
// HTTP-level outcomes come back as (body, status, nil).
func (c *Client) do(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json, text/html, */*")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("HTTP GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read response from %s: %w", url, err)
	}
	return body, resp.StatusCode, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
