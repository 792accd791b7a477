package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/seenimoa/edgarai/pkg/models"
	"github.com/seenimoa/edgarai/pkg/utils"
)

// SelfTestTicker is the reference company the self-test exercises.
// Apple files with the SEC on every supported form and reports every
// headline metric.
const SelfTestTicker = "AAPL"

// SelfTest exercises the suite end to end against the reference ticker
// and reports per-check outcomes. A check passes when its operation
// returns a success envelope.
func (s *Suite) SelfTest(ctx context.Context) *models.SelfTestResult {
	started := time.Now().UTC()
	result := &models.SelfTestResult{
		Ticker:    SelfTestTicker,
		StartedAt: utils.FormatTimestamp(started),
	}

	checks := []struct {
		name string
		run  func(context.Context) *models.ToolResult
	}{
		{"resolve_ticker", func(ctx context.Context) *models.ToolResult {
			cik, err := s.resolver.Resolve(ctx, SelfTestTicker)
			if err != nil {
				return fail(SelfTestTicker, err)
			}
			return ok(map[string]string{"cik": cik})
		}},
		{"company_filings", func(ctx context.Context) *models.ToolResult {
			return s.CompanyFilings(ctx, SelfTestTicker, "10-K", 1, "", "")
		}},
		{"latest_annual_report", func(ctx context.Context) *models.ToolResult {
			return s.LatestAnnualReport(ctx, SelfTestTicker)
		}},
		{"latest_quarterly_report", func(ctx context.Context) *models.ToolResult {
			return s.LatestQuarterlyReport(ctx, SelfTestTicker)
		}},
		{"company_facts", func(ctx context.Context) *models.ToolResult {
			return s.CompanyFacts(ctx, SelfTestTicker, nil)
		}},
		{"concept_history", func(ctx context.Context) *models.ToolResult {
			return s.Concept(ctx, SelfTestTicker, "Revenues")
		}},
		{"discover_metrics", func(ctx context.Context) *models.ToolResult {
			return s.DiscoverMetrics(ctx, SelfTestTicker, "")
		}},
		{"search_companies", func(ctx context.Context) *models.ToolResult {
			return s.SearchCompanies(ctx, "Apple", 5)
		}},
	}

	for _, check := range checks {
		checkStart := time.Now()
		r := check.run(ctx)
		elapsed := time.Since(checkStart)

		c := models.SelfTestCheck{
			Name:       check.name,
			DurationMS: float64(elapsed.Microseconds()) / 1000,
		}
		if r.OK() {
			c.Status = "PASSED"
			result.Passed++
		} else {
			c.Status = "FAILED"
			c.Error = r.Error
			result.Failed++
		}
		result.Checks = append(result.Checks, c)
	}

	result.Total = len(result.Checks)
	result.CompletedAt = utils.FormatTimestamp(time.Now().UTC())
	result.SuccessRate = fmt.Sprintf("%.0f%%", float64(result.Passed)/float64(result.Total)*100)
	return result
}
