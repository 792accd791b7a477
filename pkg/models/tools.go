package models

// ToolResult is the envelope every AI-facing operation returns. Exactly one
// of Data or Error is meaningful; failures carry contextual fields so the
// calling agent can narrate them without exception semantics.
type ToolResult struct {
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
	Ticker     string `json:"ticker,omitempty"`
	Message    string `json:"message,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// OK reports whether the result carries data rather than an error.
func (r *ToolResult) OK() bool { return r != nil && r.Error == "" }

// StatusResult is the response shape for the API health check.
type StatusResult struct {
	Status         string  `json:"status"` // "operational" or "error"
	ResponseTimeMS float64 `json:"response_time_ms"`
	TotalCompanies int     `json:"total_companies,omitempty"`
	StatusCode     int     `json:"status_code,omitempty"`
	LastChecked    string  `json:"last_checked"`
}

// SelfTestCheck is one check result from the suite self-test.
type SelfTestCheck struct {
	Name       string  `json:"name"`
	Status     string  `json:"status"` // "PASSED" or "FAILED"
	Error      string  `json:"error,omitempty"`
	DurationMS float64 `json:"duration_ms"`
}

// SelfTestResult summarizes a self-test run against the reference ticker.
type SelfTestResult struct {
	Ticker      string          `json:"ticker"`
	StartedAt   string          `json:"started_at"`
	CompletedAt string          `json:"completed_at"`
	Checks      []SelfTestCheck `json:"checks"`
	Total       int             `json:"total"`
	Passed      int             `json:"passed"`
	Failed      int             `json:"failed"`
	SuccessRate string          `json:"success_rate"`
}

// FeedItem is one entry from an SEC RSS feed.
type FeedItem struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Summary   string `json:"summary,omitempty"`
	Published string `json:"published,omitempty"`
}

// FeedResult is the response shape for feed queries.
type FeedResult struct {
	Source string     `json:"source"`
	Items  []FeedItem `json:"items"`
}
