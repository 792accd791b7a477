package tools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/seenimoa/edgarai/pkg/models"
)

// NewMCPServer registers every suite operation as an MCP tool and
// returns the server, ready to serve over stdio.
func NewMCPServer(suite *Suite, version string) *server.MCPServer {
	s := server.NewMCPServer("edgarai", version,
		server.WithToolCapabilities(false),
	)

	tickerOpt := mcp.WithString("ticker",
		mcp.Required(),
		mcp.Description("US stock ticker symbol, e.g. AAPL"),
	)
	limitOpt := mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return"),
	)

	s.AddTool(mcp.NewTool("get_company_filings",
		mcp.WithDescription("List a company's SEC filings, optionally filtered by form type and filing date range"),
		tickerOpt,
		mcp.WithString("form_type", mcp.Description("SEC form code, e.g. 10-K, 10-Q, 8-K, DEF 14A, 4")),
		limitOpt,
		mcp.WithString("start_date", mcp.Description("Earliest filing date, YYYY-MM-DD, inclusive")),
		mcp.WithString("end_date", mcp.Description("Latest filing date, YYYY-MM-DD, inclusive")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ticker, err := req.RequireString("ticker")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return envelope(suite.CompanyFilings(ctx,
			ticker,
			req.GetString("form_type", ""),
			req.GetInt("limit", 0),
			req.GetString("start_date", ""),
			req.GetString("end_date", ""),
		))
	})

	s.AddTool(mcp.NewTool("get_latest_annual_report",
		mcp.WithDescription("Get a company's most recent 10-K annual report with a text preview"),
		tickerOpt,
	), tickerTool(suite.LatestAnnualReport))

	s.AddTool(mcp.NewTool("get_latest_quarterly_report",
		mcp.WithDescription("Get a company's most recent 10-Q quarterly report with a text preview"),
		tickerOpt,
	), tickerTool(suite.LatestQuarterlyReport))

	s.AddTool(mcp.NewTool("get_recent_current_reports",
		mcp.WithDescription("Get a company's recent 8-K current reports with summaries of the reported events"),
		tickerOpt, limitOpt,
	), tickerLimitTool(suite.RecentCurrentReports))

	s.AddTool(mcp.NewTool("get_proxy_statements",
		mcp.WithDescription("Get a company's recent DEF 14A proxy statements"),
		tickerOpt, limitOpt,
	), tickerLimitTool(suite.ProxyStatements))

	s.AddTool(mcp.NewTool("get_insider_transactions",
		mcp.WithDescription("Get a company's recent Form 4 insider filings with parsed transactions"),
		tickerOpt, limitOpt,
	), tickerLimitTool(suite.InsiderTransactions))

	s.AddTool(mcp.NewTool("get_beneficial_ownership",
		mcp.WithDescription("Get a company's recent Schedule 13D and 13G beneficial ownership filings"),
		tickerOpt, limitOpt,
	), tickerLimitTool(suite.BeneficialOwnership))

	s.AddTool(mcp.NewTool("get_company_facts",
		mcp.WithDescription("Get a company's financial metrics from SEC XBRL data; without metric names returns the headline set"),
		tickerOpt,
		mcp.WithString("metrics", mcp.Description("Comma-separated XBRL concept names, e.g. NetIncomeLoss,Assets")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ticker, err := req.RequireString("ticker")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return envelope(suite.CompanyFacts(ctx, ticker, SplitMetrics(req.GetString("metrics", ""))))
	})

	s.AddTool(mcp.NewTool("get_concept_history",
		mcp.WithDescription("Get the annual and quarterly history of one XBRL concept for a company"),
		tickerOpt,
		mcp.WithString("concept", mcp.Required(), mcp.Description("XBRL concept name, e.g. Revenues")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ticker, err := req.RequireString("ticker")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		concept, err := req.RequireString("concept")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return envelope(suite.Concept(ctx, ticker, concept))
	})

	s.AddTool(mcp.NewTool("discover_metrics",
		mcp.WithDescription("List the XBRL metrics available for a company, grouped by financial statement"),
		tickerOpt,
		mcp.WithString("filter", mcp.Description("Case-insensitive substring to filter concept names")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ticker, err := req.RequireString("ticker")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return envelope(suite.DiscoverMetrics(ctx, ticker, req.GetString("filter", "")))
	})

	s.AddTool(mcp.NewTool("get_filing_content",
		mcp.WithDescription("Get a company's latest filing of a given type together with its financial metrics"),
		tickerOpt,
		mcp.WithString("filing_type", mcp.Description("SEC form code, default 10-K")),
		mcp.WithString("metrics", mcp.Description("Comma-separated XBRL concept names for specific mode")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ticker, err := req.RequireString("ticker")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return envelope(suite.FilingContent(ctx,
			ticker,
			req.GetString("filing_type", ""),
			SplitMetrics(req.GetString("metrics", "")),
		))
	})

	s.AddTool(mcp.NewTool("search_companies",
		mcp.WithDescription("Search SEC-registered companies by ticker or name"),
		mcp.WithString("query", mcp.Required(), mcp.Description("Ticker or company name fragment")),
		limitOpt,
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := req.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return envelope(suite.SearchCompanies(ctx, query, req.GetInt("limit", 0)))
	})

	s.AddTool(mcp.NewTool("get_sec_feed",
		mcp.WithDescription("Get recent entries from an SEC RSS feed (press-releases, litigation-releases, filings)"),
		mcp.WithString("source", mcp.Required(), mcp.Description("Feed source name")),
		limitOpt,
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		source, err := req.RequireString("source")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return envelope(suite.LatestFeed(ctx, source, req.GetInt("limit", 0)))
	})

	s.AddTool(mcp.NewTool("get_api_status",
		mcp.WithDescription("Check SEC EDGAR API availability and response time"),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return envelope(suite.APIStatus(ctx))
	})

	s.AddTool(mcp.NewTool("run_self_test",
		mcp.WithDescription("Exercise every operation against a reference company and report pass/fail per check"),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		data, err := json.Marshal(suite.SelfTest(ctx))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	})

	return s
}

// ServeStdio runs the MCP server over stdin/stdout until EOF.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

// SplitMetrics parses a comma-separated concept list; empty input means
// generic mode.
func SplitMetrics(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	metrics := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			metrics = append(metrics, p)
		}
	}
	return metrics
}

// envelope marshals a tool result for the MCP transport. Error envelopes
// become MCP tool errors carrying the same JSON payload.
func envelope(r any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func tickerTool(op func(context.Context, string) *models.ToolResult) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ticker, err := req.RequireString("ticker")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return envelope(op(ctx, ticker))
	}
}

func tickerLimitTool(op func(context.Context, string, int) *models.ToolResult) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ticker, err := req.RequireString("ticker")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return envelope(op(ctx, ticker, req.GetInt("limit", 0)))
	}
}
