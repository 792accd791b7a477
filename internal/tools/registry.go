package tools

// Param describes one parameter of a registered tool.
type Param struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // "string" or "number"
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// ToolDef is the metadata of one AI-facing operation.
type ToolDef struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Params      []Param `json:"params"`
}

var tickerParam = Param{
	Name: "ticker", Type: "string", Required: true,
	Description: "US stock ticker symbol, e.g. AAPL",
}

var limitParam = Param{
	Name: "limit", Type: "number",
	Description: "Maximum number of results to return",
}

// Registry returns the metadata of every operation the suite exposes.
// This is the function-list surface handed to AI hosts.
func Registry() []ToolDef {
	return []ToolDef{
		{
			Name:        "get_company_filings",
			Description: "List a company's SEC filings, optionally filtered by form type and filing date range",
			Params: []Param{
				tickerParam,
				{Name: "form_type", Type: "string", Description: "SEC form code, e.g. 10-K, 10-Q, 8-K, DEF 14A, 4"},
				limitParam,
				{Name: "start_date", Type: "string", Description: "Earliest filing date, YYYY-MM-DD, inclusive"},
				{Name: "end_date", Type: "string", Description: "Latest filing date, YYYY-MM-DD, inclusive"},
			},
		},
		{
			Name:        "get_latest_annual_report",
			Description: "Get a company's most recent 10-K annual report with a text preview",
			Params:      []Param{tickerParam},
		},
		{
			Name:        "get_latest_quarterly_report",
			Description: "Get a company's most recent 10-Q quarterly report with a text preview",
			Params:      []Param{tickerParam},
		},
		{
			Name:        "get_recent_current_reports",
			Description: "Get a company's recent 8-K current reports with summaries of the reported events",
			Params:      []Param{tickerParam, limitParam},
		},
		{
			Name:        "get_proxy_statements",
			Description: "Get a company's recent DEF 14A proxy statements",
			Params:      []Param{tickerParam, limitParam},
		},
		{
			Name:        "get_insider_transactions",
			Description: "Get a company's recent Form 4 insider filings with parsed transactions",
			Params:      []Param{tickerParam, limitParam},
		},
		{
			Name:        "get_beneficial_ownership",
			Description: "Get a company's recent Schedule 13D and 13G beneficial ownership filings",
			Params:      []Param{tickerParam, limitParam},
		},
		{
			Name:        "get_company_facts",
			Description: "Get a company's financial metrics from SEC XBRL data; without metric names returns the headline set",
			Params: []Param{
				tickerParam,
				{Name: "metrics", Type: "string", Description: "Comma-separated XBRL concept names, e.g. NetIncomeLoss,Assets"},
			},
		},
		{
			Name:        "get_concept_history",
			Description: "Get the annual and quarterly history of one XBRL concept for a company",
			Params: []Param{
				tickerParam,
				{Name: "concept", Type: "string", Required: true, Description: "XBRL concept name, e.g. Revenues"},
			},
		},
		{
			Name:        "discover_metrics",
			Description: "List the XBRL metrics available for a company, grouped by financial statement",
			Params: []Param{
				tickerParam,
				{Name: "filter", Type: "string", Description: "Case-insensitive substring to filter concept names"},
			},
		},
		{
			Name:        "get_filing_content",
			Description: "Get a company's latest filing of a given type together with its financial metrics",
			Params: []Param{
				tickerParam,
				{Name: "filing_type", Type: "string", Description: "SEC form code, default 10-K"},
				{Name: "metrics", Type: "string", Description: "Comma-separated XBRL concept names for specific mode"},
			},
		},
		{
			Name:        "search_companies",
			Description: "Search SEC-registered companies by ticker or name",
			Params: []Param{
				{Name: "query", Type: "string", Required: true, Description: "Ticker or company name fragment"},
				limitParam,
			},
		},
		{
			Name:        "get_sec_feed",
			Description: "Get recent entries from an SEC RSS feed (press-releases, litigation-releases, filings)",
			Params: []Param{
				{Name: "source", Type: "string", Required: true, Description: "Feed source name"},
				limitParam,
			},
		},
		{
			Name:        "get_api_status",
			Description: "Check SEC EDGAR API availability and response time",
		},
		{
			Name:        "run_self_test",
			Description: "Exercise every operation against a reference company and report pass/fail per check",
		},
	}
}
