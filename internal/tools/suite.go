// Package tools exposes the EdgarAI operations behind the envelope an AI
// host consumes: every operation returns a well-formed result object, and
// failures are converted into structured error payloads with a message
// and a suggestion instead of propagating as errors.
package tools

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/seenimoa/edgarai/internal/config"
	"github.com/seenimoa/edgarai/internal/edgar"
	"github.com/seenimoa/edgarai/internal/facts"
	"github.com/seenimoa/edgarai/internal/feeds"
	"github.com/seenimoa/edgarai/internal/filings"
	"github.com/seenimoa/edgarai/pkg/models"
)

// Suite bundles the EdgarAI services behind the AI-facing operations.
type Suite struct {
	client   *edgar.Client
	resolver *edgar.Resolver
	filings  *filings.Service
	facts    *facts.Service
	feeds    *feeds.Service
}

// NewSuite creates a suite over an existing client and resolver.
func NewSuite(client *edgar.Client, resolver *edgar.Resolver) *Suite {
	return &Suite{
		client:   client,
		resolver: resolver,
		filings:  filings.NewService(client, resolver),
		facts:    facts.NewService(client, resolver),
		feeds:    feeds.NewService(),
	}
}

// NewSuiteFromConfig wires a suite from application configuration.
func NewSuiteFromConfig(cfg *config.Config) *Suite {
	client := edgar.NewClient(
		edgar.WithUserAgent(cfg.SEC.UserAgent),
		edgar.WithHTTPClient(&http.Client{Timeout: cfg.SEC.Timeout()}),
		edgar.WithRateLimit(cfg.SEC.RatePerSec, cfg.SEC.RateBurst),
		edgar.WithBaseURLs(cfg.SEC.DataBaseURL, cfg.SEC.ArchiveBaseURL),
		edgar.WithRetryPolicy(edgar.RetryPolicy{
			MaxAttempts:       cfg.Retry.MaxAttempts,
			BaseWait:          cfg.Retry.BaseWait(),
			MaxWait:           cfg.Retry.MaxWait(),
			RateLimitCooldown: cfg.Retry.RateLimitCooldown(),
		}),
	)
	return NewSuite(client, edgar.NewResolver(client, edgar.NewCIKCache()))
}

// ok wraps a successful payload.
func ok(data any) *models.ToolResult {
	return &models.ToolResult{Data: data}
}

// fail converts an internal error into the envelope the AI host narrates.
func fail(ticker string, err error) *models.ToolResult {
	result := &models.ToolResult{Error: err.Error(), Ticker: ticker}

	var httpErr *edgar.ErrHTTP
	switch {
	case errors.Is(err, edgar.ErrInvalidTicker):
		result.Message = fmt.Sprintf("Invalid ticker symbol %q", ticker)
		result.Suggestion = "Provide a 1-10 character ticker using letters, digits, dot or dash"

	case errors.Is(err, edgar.ErrTickerNotFound):
		result.Message = fmt.Sprintf("Could not find CIK for ticker %s", ticker)
		result.Suggestion = fmt.Sprintf("Verify %s is a valid US stock ticker symbol", ticker)

	case errors.Is(err, edgar.ErrInvalidFormType):
		result.Message = "Unsupported SEC form type"
		result.Suggestion = "Use one of the supported form codes, e.g. 10-K, 10-Q, 8-K, DEF 14A, 4"

	case errors.Is(err, filings.ErrInvalidDate):
		result.Message = "Invalid date filter"
		result.Suggestion = "Use YYYY-MM-DD dates with start before end"

	case errors.Is(err, edgar.ErrRateLimited):
		result.Message = "SEC EDGAR rate limit reached"
		result.Suggestion = "Wait a few seconds and retry the request"

	case errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound:
		result.Message = fmt.Sprintf("No SEC data found for %s", ticker)
		result.Suggestion = fmt.Sprintf("Verify %s files with the SEC; foreign or private companies may not appear", ticker)

	default:
		result.Message = "SEC EDGAR request failed"
		result.Suggestion = "Retry the request; if the problem persists check SEC EDGAR availability"
	}
	return result
}

// CompanyFilings returns a company's filings filtered by form type and
// date range.
func (s *Suite) CompanyFilings(ctx context.Context, ticker, formType string, limit int, startDate, endDate string) *models.ToolResult {
	result, err := s.filings.Query(ctx, filings.QueryOptions{
		Ticker:    ticker,
		FormType:  formType,
		Limit:     limit,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return fail(ticker, err)
	}
	return ok(result)
}

// LatestAnnualReport returns the most recent 10-K with a content preview.
func (s *Suite) LatestAnnualReport(ctx context.Context, ticker string) *models.ToolResult {
	result, err := s.filings.LatestAnnualReport(ctx, ticker)
	if err != nil {
		return fail(ticker, err)
	}
	return ok(result)
}

// LatestQuarterlyReport returns the most recent 10-Q with a content preview.
func (s *Suite) LatestQuarterlyReport(ctx context.Context, ticker string) *models.ToolResult {
	result, err := s.filings.LatestQuarterlyReport(ctx, ticker)
	if err != nil {
		return fail(ticker, err)
	}
	return ok(result)
}

// RecentCurrentReports returns recent 8-K filings with event summaries.
func (s *Suite) RecentCurrentReports(ctx context.Context, ticker string, limit int) *models.ToolResult {
	result, err := s.filings.RecentCurrentReports(ctx, ticker, limit)
	if err != nil {
		return fail(ticker, err)
	}
	return ok(result)
}

// ProxyStatements returns recent DEF 14A proxy statements.
func (s *Suite) ProxyStatements(ctx context.Context, ticker string, limit int) *models.ToolResult {
	result, err := s.filings.ProxyStatements(ctx, ticker, limit)
	if err != nil {
		return fail(ticker, err)
	}
	return ok(result)
}

// InsiderTransactions returns recent Form 4 filings with parsed
// transactions.
func (s *Suite) InsiderTransactions(ctx context.Context, ticker string, limit int) *models.ToolResult {
	result, err := s.filings.InsiderTransactions(ctx, ticker, limit)
	if err != nil {
		return fail(ticker, err)
	}
	return ok(result)
}

// BeneficialOwnership returns recent Schedule 13D/13G filings.
func (s *Suite) BeneficialOwnership(ctx context.Context, ticker string, limit int) *models.ToolResult {
	result, err := s.filings.BeneficialOwnership(ctx, ticker, limit)
	if err != nil {
		return fail(ticker, err)
	}
	return ok(result)
}

// CompanyFacts returns a company's financial metrics; with no metric
// names it returns the default headline set.
func (s *Suite) CompanyFacts(ctx context.Context, ticker string, metrics []string) *models.ToolResult {
	result, err := s.facts.CompanyFacts(ctx, ticker, metrics)
	if err != nil {
		return fail(ticker, err)
	}
	return ok(result)
}

// Concept returns the annual and quarterly history of one XBRL concept.
func (s *Suite) Concept(ctx context.Context, ticker, concept string) *models.ToolResult {
	result, err := s.facts.Concept(ctx, ticker, concept)
	if err != nil {
		return fail(ticker, err)
	}
	return ok(result)
}

// DiscoverMetrics lists the metrics available for a company.
func (s *Suite) DiscoverMetrics(ctx context.Context, ticker, filter string) *models.ToolResult {
	result, err := s.facts.Discover(ctx, ticker, filter)
	if err != nil {
		return fail(ticker, err)
	}
	return ok(result)
}

// LatestFeed returns recent entries from a named SEC RSS feed.
func (s *Suite) LatestFeed(ctx context.Context, source string, limit int) *models.ToolResult {
	result, err := s.feeds.Latest(ctx, source, limit)
	if err != nil {
		return fail("", err)
	}
	return ok(result)
}
