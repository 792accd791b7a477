package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/seenimoa/edgarai/internal/config"
	"github.com/seenimoa/edgarai/internal/edgar"
	"github.com/seenimoa/edgarai/internal/tools"
)

const testSubmissions = `{
	"cik": "320193",
	"name": "Apple Inc.",
	"filings": {
		"recent": {
			"accessionNumber": ["0000320193-24-000123"],
			"filingDate": ["2024-11-01"],
			"reportDate": ["2024-09-28"],
			"form": ["10-K"],
			"primaryDocument": ["aapl-20240928.htm"],
			"primaryDocDescription": ["10-K"]
		}
	}
}`

const testDirectory = `{
	"0": {"cik_str": 320193, "ticker": "AAPL", "title": "Apple Inc."}
}`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/submissions/CIK0000320193"):
			w.Write([]byte(testSubmissions))
		case r.URL.Path == "/files/company_tickers.json":
			w.Write([]byte(testDirectory))
		case strings.HasPrefix(r.URL.Path, "/archives/"):
			w.Write([]byte("<html><body>Annual report text.</body></html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(upstream.Close)

	client := edgar.NewClient(
		edgar.WithBaseURLs(upstream.URL, upstream.URL+"/archives"),
		edgar.WithRetryPolicy(edgar.RetryPolicy{MaxAttempts: 1, BaseWait: time.Millisecond, MaxWait: time.Millisecond, RateLimitCooldown: time.Millisecond}),
		edgar.WithRateLimit(1000, 1000),
	)
	suite := tools.NewSuite(client, edgar.NewResolver(client, edgar.NewCIKCache()))
	return NewServer(config.Default(), suite)
}

func doRequest(t *testing.T, srv *Server, method, path string) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response from %s: %v (body %q)", path, err, rec.Body.String())
	}
	return rec, resp
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec, resp := doRequest(t, srv, http.MethodGet, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !resp.Success {
		t.Error("expected success envelope")
	}
}

func TestFilingsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec, resp := doRequest(t, srv, http.MethodGet, "/api/v1/filings/AAPL?form_type=10-K&limit=5")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !resp.Success {
		t.Fatalf("error envelope: %s", resp.Error)
	}

	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("Data is %T", resp.Data)
	}
	if data["cik"] != "0000320193" {
		t.Errorf("cik = %v", data["cik"])
	}
	if data["total_filings"] != float64(1) {
		t.Errorf("total_filings = %v", data["total_filings"])
	}
}

func TestFilingsEndpointUnknownTicker(t *testing.T) {
	srv := newTestServer(t)

	rec, resp := doRequest(t, srv, http.MethodGet, "/api/v1/filings/ZZZZT")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	if resp.Success {
		t.Error("expected failure envelope")
	}
	if resp.Error == "" {
		t.Error("expected error message")
	}

	// The tool envelope with message and suggestion rides along as data.
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("Data is %T", resp.Data)
	}
	if data["suggestion"] == "" {
		t.Error("expected suggestion in envelope")
	}
}

func TestSearchEndpointRequiresQuery(t *testing.T) {
	srv := newTestServer(t)

	rec, resp := doRequest(t, srv, http.MethodGet, "/api/v1/search")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if resp.Success {
		t.Error("expected failure envelope")
	}
}

func TestSearchEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec, resp := doRequest(t, srv, http.MethodGet, "/api/v1/search?q=apple")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	data := resp.Data.(map[string]interface{})
	if data["total_matches"] != float64(1) {
		t.Errorf("total_matches = %v", data["total_matches"])
	}
}

func TestToolsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec, resp := doRequest(t, srv, http.MethodGet, "/api/v1/tools")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	defs, ok := resp.Data.([]interface{})
	if !ok {
		t.Fatalf("Data is %T", resp.Data)
	}
	if len(defs) != len(tools.Registry()) {
		t.Errorf("got %d tool definitions", len(defs))
	}
}

func TestStatusEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec, resp := doRequest(t, srv, http.MethodGet, "/api/v1/status")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data := resp.Data.(map[string]interface{})
	if data["status"] != "operational" {
		t.Errorf("status = %v", data["status"])
	}
}

func TestAnnualReportEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec, resp := doRequest(t, srv, http.MethodGet, "/api/v1/filings/AAPL/annual")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	data := resp.Data.(map[string]interface{})
	filings := data["filings"].([]interface{})
	first := filings[0].(map[string]interface{})
	if first["form_type"] != "10-K" {
		t.Errorf("form_type = %v", first["form_type"])
	}
	if preview, _ := first["content_preview"].(string); !strings.Contains(preview, "Annual report") {
		t.Errorf("content_preview = %q", preview)
	}
}
