package edgar

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

// scriptedDoer returns canned outcomes in order and counts attempts.
type scriptedDoer struct {
	outcomes []outcome
	calls    int
}

type outcome struct {
	status int
	body   string
	err    error
}

func (d *scriptedDoer) Do(req *http.Request) (*http.Response, error) {
	idx := d.calls
	if idx >= len(d.outcomes) {
		idx = len(d.outcomes) - 1
	}
	d.calls++
	o := d.outcomes[idx]
	if o.err != nil {
		return nil, o.err
	}
	return &http.Response{
		StatusCode: o.status,
		Status:     http.StatusText(o.status),
		Body:       io.NopCloser(strings.NewReader(o.body)),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

func fastPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:       3,
		BaseWait:          time.Millisecond,
		MaxWait:           4 * time.Millisecond,
		RateLimitCooldown: time.Millisecond,
	}
}

func newTestClient(d *scriptedDoer) *Client {
	return NewClient(
		WithHTTPClient(d),
		WithRetryPolicy(fastPolicy()),
		WithRateLimit(1000, 1000),
	)
}

func TestGetSuccess(t *testing.T) {
	d := &scriptedDoer{outcomes: []outcome{{status: 200, body: `{"ok":true}`}}}
	c := newTestClient(d)

	body, err := c.Get(context.Background(), "https://example.test/x.json")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if string(body) != `{"ok":true}` {
		t.Errorf("unexpected body: %s", body)
	}
	if d.calls != 1 {
		t.Errorf("expected 1 attempt, got %d", d.calls)
	}
}

func TestGetRetriesTransientThenSucceeds(t *testing.T) {
	netErr := errors.New("connection reset")
	d := &scriptedDoer{outcomes: []outcome{
		{err: netErr},
		{err: netErr},
		{status: 200, body: "ok"},
	}}
	c := newTestClient(d)

	body, err := c.Get(context.Background(), "https://example.test/x")
	if err != nil {
		t.Fatalf("Get should succeed on third attempt: %v", err)
	}
	if string(body) != "ok" {
		t.Errorf("unexpected body: %s", body)
	}
	if d.calls != 3 {
		t.Errorf("expected exactly 3 attempts, got %d", d.calls)
	}
}

func TestGetExhaustsAttempts(t *testing.T) {
	netErr := errors.New("dial timeout")
	d := &scriptedDoer{outcomes: []outcome{{err: netErr}}}
	c := newTestClient(d)

	_, err := c.Get(context.Background(), "https://example.test/x")
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if !strings.Contains(err.Error(), "dial timeout") {
		t.Errorf("last error not surfaced: %v", err)
	}
	if d.calls != 3 {
		t.Errorf("expected 3 attempts, got %d", d.calls)
	}
}

func TestGetRateLimitSingleRetry(t *testing.T) {
	d := &scriptedDoer{outcomes: []outcome{
		{status: http.StatusTooManyRequests, body: "slow down"},
		{status: 200, body: "ok"},
	}}
	c := newTestClient(d)

	body, err := c.Get(context.Background(), "https://example.test/x")
	if err != nil {
		t.Fatalf("Get should succeed after one cooldown retry: %v", err)
	}
	if string(body) != "ok" {
		t.Errorf("unexpected body: %s", body)
	}
	if d.calls != 2 {
		t.Errorf("expected 2 attempts, got %d", d.calls)
	}
}

func TestGetDoubleRateLimitSurfaces(t *testing.T) {
	d := &scriptedDoer{outcomes: []outcome{
		{status: http.StatusTooManyRequests, body: "slow down"},
		{status: http.StatusTooManyRequests, body: "slow down"},
	}}
	c := newTestClient(d)

	_, err := c.Get(context.Background(), "https://example.test/x")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
	if d.calls != 2 {
		t.Errorf("expected no third attempt, got %d", d.calls)
	}
}

func TestGetNonSuccessNotRetried(t *testing.T) {
	d := &scriptedDoer{outcomes: []outcome{{status: 404, body: "no such company"}}}
	c := newTestClient(d)

	_, err := c.Get(context.Background(), "https://example.test/x")
	var httpErr *ErrHTTP
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *ErrHTTP, got %v", err)
	}
	if httpErr.StatusCode != 404 {
		t.Errorf("StatusCode: got %d, want 404", httpErr.StatusCode)
	}
	if d.calls != 1 {
		t.Errorf("4xx must not be retried, got %d attempts", d.calls)
	}
}

func TestGetJSON(t *testing.T) {
	d := &scriptedDoer{outcomes: []outcome{{status: 200, body: `{"name":"Apple Inc."}`}}}
	c := newTestClient(d)

	var dest struct {
		Name string `json:"name"`
	}
	if err := c.GetJSON(context.Background(), "https://example.test/x.json", &dest); err != nil {
		t.Fatalf("GetJSON error: %v", err)
	}
	if dest.Name != "Apple Inc." {
		t.Errorf("decoded name: %q", dest.Name)
	}
}

func TestGetJSONMalformed(t *testing.T) {
	d := &scriptedDoer{outcomes: []outcome{{status: 200, body: `{"name":`}}}
	c := newTestClient(d)

	var dest map[string]any
	if err := c.GetJSON(context.Background(), "https://example.test/x.json", &dest); err == nil {
		t.Error("expected parse error for malformed JSON")
	}
}

func TestGetContextCancelled(t *testing.T) {
	netErr := errors.New("unreachable")
	d := &scriptedDoer{outcomes: []outcome{{err: netErr}}}
	c := NewClient(
		WithHTTPClient(d),
		WithRetryPolicy(RetryPolicy{MaxAttempts: 5, BaseWait: time.Hour, MaxWait: time.Hour, RateLimitCooldown: time.Hour}),
		WithRateLimit(1000, 1000),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.Get(ctx, "https://example.test/x")
	if err == nil {
		t.Fatal("expected error")
	}
	if time.Since(start) > 5*time.Second {
		t.Error("cancellation did not interrupt backoff sleep")
	}
}

func TestURLBuilders(t *testing.T) {
	c := NewClient()

	if got := c.SubmissionsURL("0000320193"); got != "https://data.sec.gov/submissions/CIK0000320193.json" {
		t.Errorf("SubmissionsURL: %s", got)
	}
	if got := c.CompanyFactsURL("0000320193"); got != "https://data.sec.gov/api/xbrl/companyfacts/CIK0000320193.json" {
		t.Errorf("CompanyFactsURL: %s", got)
	}
	if got := c.ConceptURL("0000320193", "Revenues"); got != "https://data.sec.gov/api/xbrl/companyconcept/CIK0000320193/us-gaap/Revenues.json" {
		t.Errorf("ConceptURL: %s", got)
	}
	if got := c.TickerDirectoryURL(); got != "https://data.sec.gov/files/company_tickers.json" {
		t.Errorf("TickerDirectoryURL: %s", got)
	}

	want := "https://www.sec.gov/Archives/edgar/data/0001326380/000132638024000012/gme-20240203.htm"
	if got := c.ArchiveDocumentURL("0001326380", "0001326380-24-000012", "gme-20240203.htm"); got != want {
		t.Errorf("ArchiveDocumentURL:\n got %s\nwant %s", got, want)
	}
}

func TestRetryPolicyBackoffCapped(t *testing.T) {
	p := RetryPolicy{BaseWait: time.Second, MaxWait: 4 * time.Second}.normalize()
	if got := p.backoff(0); got != time.Second {
		t.Errorf("backoff(0) = %v", got)
	}
	if got := p.backoff(1); got != 2*time.Second {
		t.Errorf("backoff(1) = %v", got)
	}
	if got := p.backoff(10); got != 4*time.Second {
		t.Errorf("backoff(10) should cap at MaxWait, got %v", got)
	}
}
