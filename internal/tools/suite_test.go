package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/seenimoa/edgarai/internal/edgar"
	"github.com/seenimoa/edgarai/pkg/models"
)

const aaplSubmissions = `{
	"cik": "320193",
	"name": "Apple Inc.",
	"tickers": ["AAPL"],
	"filings": {
		"recent": {
			"accessionNumber": ["0000320193-24-000123", "0000320193-24-000081", "0000320193-24-000050"],
			"filingDate": ["2024-11-01", "2024-08-02", "2024-05-03"],
			"reportDate": ["2024-09-28", "2024-06-29", "2024-03-30"],
			"form": ["10-K", "10-Q", "10-Q"],
			"primaryDocument": ["aapl-20240928.htm", "aapl-20240629.htm", "aapl-20240330.htm"],
			"primaryDocDescription": ["10-K", "10-Q", "10-Q"]
		}
	}
}`

const aaplFacts = `{
	"cik": 320193,
	"entityName": "Apple Inc.",
	"facts": {
		"us-gaap": {
			"NetIncomeLoss": {
				"label": "Net Income (Loss)",
				"units": {"USD": [
					{"end":"2023-09-30","val":96995000000,"fy":2023,"fp":"FY","form":"10-K","filed":"2023-11-03"},
					{"end":"2024-09-28","val":93736000000,"fy":2024,"fp":"FY","form":"10-K","filed":"2024-11-01"}
				]}
			},
			"Assets": {
				"label": "Assets",
				"units": {"USD": [
					{"end":"2024-09-28","val":364980000000,"fy":2024,"fp":"FY","form":"10-K","filed":"2024-11-01"}
				]}
			}
		}
	}
}`

const aaplConcept = `{
	"cik": 320193,
	"taxonomy": "us-gaap",
	"tag": "Revenues",
	"label": "Revenues",
	"entityName": "Apple Inc.",
	"units": {"USD": [
		{"end":"2024-09-28","val":391035000000,"fy":2024,"fp":"FY","form":"10-K","filed":"2024-11-01"}
	]}
}`

const tickerDirectory = `{
	"0": {"cik_str": 320193, "ticker": "AAPL", "title": "Apple Inc."},
	"1": {"cik_str": 1326380, "ticker": "GME", "title": "GameStop Corp."},
	"2": {"cik_str": 1018724, "ticker": "AMZN", "title": "AMAZON COM INC"}
}`

func newTestSuite(t *testing.T) *Suite {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path
		switch {
		case strings.HasPrefix(p, "/submissions/CIK0000320193"):
			w.Write([]byte(aaplSubmissions))
		case strings.HasPrefix(p, "/api/xbrl/companyfacts/CIK0000320193"):
			w.Write([]byte(aaplFacts))
		case strings.HasPrefix(p, "/api/xbrl/companyconcept/CIK0000320193"):
			w.Write([]byte(aaplConcept))
		case p == "/files/company_tickers.json":
			w.Write([]byte(tickerDirectory))
		case strings.HasPrefix(p, "/archives/"):
			w.Write([]byte("<html><body>Annual report. Item 2.02 Results of Operations.</body></html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	client := edgar.NewClient(
		edgar.WithBaseURLs(server.URL, server.URL+"/archives"),
		edgar.WithRetryPolicy(edgar.RetryPolicy{MaxAttempts: 1, BaseWait: time.Millisecond, MaxWait: time.Millisecond, RateLimitCooldown: time.Millisecond}),
		edgar.WithRateLimit(1000, 1000),
	)
	return NewSuite(client, edgar.NewResolver(client, edgar.NewCIKCache()))
}

func TestCompanyFilingsEnvelope(t *testing.T) {
	suite := newTestSuite(t)

	result := suite.CompanyFilings(context.Background(), "AAPL", "10-K", 5, "", "")
	if !result.OK() {
		t.Fatalf("unexpected error envelope: %+v", result)
	}
	filings, ok := result.Data.(*models.FilingsResult)
	if !ok {
		t.Fatalf("Data is %T", result.Data)
	}
	if filings.TotalFilings != 1 || filings.Filings[0].FormType != "10-K" {
		t.Errorf("unexpected filings: %+v", filings)
	}
}

func TestEnvelopeTickerNotFound(t *testing.T) {
	suite := newTestSuite(t)

	result := suite.CompanyFilings(context.Background(), "ZZZZT", "", 5, "", "")
	if result.OK() {
		t.Fatal("expected error envelope")
	}
	if result.Ticker != "ZZZZT" {
		t.Errorf("Ticker = %q", result.Ticker)
	}
	if !strings.Contains(result.Message, "Could not find CIK for ticker ZZZZT") {
		t.Errorf("Message = %q", result.Message)
	}
	if !strings.Contains(result.Suggestion, "valid US stock ticker") {
		t.Errorf("Suggestion = %q", result.Suggestion)
	}
}

func TestEnvelopeInvalidForm(t *testing.T) {
	suite := newTestSuite(t)

	result := suite.CompanyFilings(context.Background(), "AAPL", "10K", 5, "", "")
	if result.OK() {
		t.Fatal("expected error envelope")
	}
	if result.Message != "Unsupported SEC form type" {
		t.Errorf("Message = %q", result.Message)
	}
}

func TestEnvelopeInvalidDate(t *testing.T) {
	suite := newTestSuite(t)

	result := suite.CompanyFilings(context.Background(), "AAPL", "", 5, "bad-date", "")
	if result.OK() {
		t.Fatal("expected error envelope")
	}
	if result.Message != "Invalid date filter" {
		t.Errorf("Message = %q", result.Message)
	}
}

func TestFilingContentGenericMode(t *testing.T) {
	suite := newTestSuite(t)

	result := suite.FilingContent(context.Background(), "AAPL", "", nil)
	if !result.OK() {
		t.Fatalf("unexpected error envelope: %+v", result)
	}
	content, ok := result.Data.(*models.FilingContentResult)
	if !ok {
		t.Fatalf("Data is %T", result.Data)
	}
	if content.FilingType != "10-K" {
		t.Errorf("FilingType = %q (default should be 10-K)", content.FilingType)
	}
	if content.Mode != "generic" {
		t.Errorf("Mode = %q", content.Mode)
	}
	if content.MetricsReturned != 2 {
		t.Errorf("MetricsReturned = %d, want 2", content.MetricsReturned)
	}
	if content.FilingDate != "2024-11-01" {
		t.Errorf("FilingDate = %q", content.FilingDate)
	}
}

func TestFilingContentSpecificMode(t *testing.T) {
	suite := newTestSuite(t)

	result := suite.FilingContent(context.Background(), "AAPL", "10-Q", []string{"Assets"})
	if !result.OK() {
		t.Fatalf("unexpected error envelope: %+v", result)
	}
	content := result.Data.(*models.FilingContentResult)
	if content.Mode != "specific" {
		t.Errorf("Mode = %q", content.Mode)
	}
	if content.MetricsReturned != 1 {
		t.Errorf("MetricsReturned = %d", content.MetricsReturned)
	}
	if content.FilingType != "10-Q" || content.FilingDate != "2024-08-02" {
		t.Errorf("filing = %s %s", content.FilingType, content.FilingDate)
	}
}

func TestSearchCompanies(t *testing.T) {
	suite := newTestSuite(t)

	result := suite.SearchCompanies(context.Background(), "apple", 10)
	if !result.OK() {
		t.Fatalf("unexpected error envelope: %+v", result)
	}
	search := result.Data.(*models.SearchResult)
	if search.TotalMatches != 1 {
		t.Fatalf("TotalMatches = %d", search.TotalMatches)
	}
	if search.Matches[0].Ticker != "AAPL" || search.Matches[0].CIK != "0000320193" {
		t.Errorf("match = %+v", search.Matches[0])
	}
}

func TestSearchCompaniesExactTickerFirst(t *testing.T) {
	suite := newTestSuite(t)

	// "GME" matches the GME ticker exactly and no titles.
	result := suite.SearchCompanies(context.Background(), "GME", 10)
	search := result.Data.(*models.SearchResult)
	if len(search.Matches) == 0 || search.Matches[0].Ticker != "GME" {
		t.Errorf("matches = %+v", search.Matches)
	}
}

func TestSearchCompaniesEmptyQuery(t *testing.T) {
	suite := newTestSuite(t)
	if result := suite.SearchCompanies(context.Background(), "  ", 10); result.OK() {
		t.Fatal("expected error envelope for empty query")
	}
}

func TestAPIStatus(t *testing.T) {
	suite := newTestSuite(t)

	result := suite.APIStatus(context.Background())
	if !result.OK() {
		t.Fatalf("unexpected error envelope: %+v", result)
	}
	status := result.Data.(*models.StatusResult)
	if status.Status != "operational" {
		t.Errorf("Status = %q", status.Status)
	}
	if status.TotalCompanies != 3 {
		t.Errorf("TotalCompanies = %d", status.TotalCompanies)
	}
	if status.StatusCode != 200 {
		t.Errorf("StatusCode = %d", status.StatusCode)
	}
}

func TestSelfTest(t *testing.T) {
	suite := newTestSuite(t)

	result := suite.SelfTest(context.Background())
	if result.Ticker != "AAPL" {
		t.Errorf("Ticker = %q", result.Ticker)
	}
	if result.Total != 8 {
		t.Fatalf("Total = %d, want 8 checks", result.Total)
	}
	if result.Failed != 0 {
		for _, c := range result.Checks {
			if c.Status == "FAILED" {
				t.Errorf("check %s failed: %s", c.Name, c.Error)
			}
		}
	}
	if result.SuccessRate != "100%" {
		t.Errorf("SuccessRate = %q", result.SuccessRate)
	}
}

func TestRegistry(t *testing.T) {
	defs := Registry()
	if len(defs) != 15 {
		t.Fatalf("got %d tool definitions", len(defs))
	}

	seen := make(map[string]bool)
	for _, def := range defs {
		if def.Name == "" || def.Description == "" {
			t.Errorf("incomplete definition: %+v", def)
		}
		if seen[def.Name] {
			t.Errorf("duplicate tool name %q", def.Name)
		}
		seen[def.Name] = true
	}
	if !seen["get_company_filings"] || !seen["run_self_test"] {
		t.Error("expected tools missing from registry")
	}
}

func TestSplitMetrics(t *testing.T) {
	if got := SplitMetrics(""); got != nil {
		t.Errorf("SplitMetrics(\"\") = %v", got)
	}
	got := SplitMetrics(" NetIncomeLoss, Assets ,,Revenues ")
	want := []string{"NetIncomeLoss", "Assets", "Revenues"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewMCPServer(t *testing.T) {
	suite := newTestSuite(t)
	if s := NewMCPServer(suite, "test"); s == nil {
		t.Fatal("nil MCP server")
	}
}
