package tools

import (
	"context"
	"fmt"

	"github.com/seenimoa/edgarai/internal/filings"
	"github.com/seenimoa/edgarai/pkg/models"
)

// FilingContent is the dual-mode content operation: it locates a
// company's latest filing of the given type and pairs it with financial
// metrics. With no metric names it returns the default headline set
// (generic mode); with names it returns exactly those concepts
// (specific mode).
func (s *Suite) FilingContent(ctx context.Context, ticker, filingType string, metrics []string) *models.ToolResult {
	if filingType == "" {
		filingType = "10-K"
	}

	filingResult, err := s.filings.Query(ctx, filings.QueryOptions{
		Ticker:   ticker,
		FormType: filingType,
		Limit:    1,
	})
	if err != nil {
		return fail(ticker, err)
	}
	if len(filingResult.Filings) == 0 {
		return fail(ticker, fmt.Errorf("no %s filings found for %s", filingType, ticker))
	}
	filing := filingResult.Filings[0]

	factsResult, err := s.facts.CompanyFacts(ctx, ticker, metrics)
	if err != nil {
		return fail(ticker, err)
	}

	valuesPerMetric := 0
	for _, series := range factsResult.Metrics {
		if len(series.Observations) > valuesPerMetric {
			valuesPerMetric = len(series.Observations)
		}
	}

	return ok(&models.FilingContentResult{
		Ticker:           ticker,
		CIK:              filingResult.CIK,
		CompanyName:      filingResult.CompanyName,
		FilingType:       filing.FormType,
		FilingDate:       filing.FilingDate,
		FilingURL:        filing.FilingURL,
		Mode:             factsResult.Mode,
		MetricsReturned:  len(factsResult.Metrics),
		ValuesPerMetric:  valuesPerMetric,
		FinancialMetrics: factsResult.Metrics,
	})
}
