package models

// MetricObservation is one reported value of a financial concept.
// Observations preserve the upstream ordering (most recent last).
type MetricObservation struct {
	Value        float64 `json:"value"`
	Start        string  `json:"start,omitempty"` // period start, YYYY-MM-DD
	End          string  `json:"end"`             // period end, YYYY-MM-DD
	FiscalYear   int     `json:"fiscal_year,omitempty"`
	FiscalPeriod string  `json:"fiscal_period,omitempty"` // "Q1".."Q3", "FY"
	Form         string  `json:"form"`                    // originating form type
	Filed        string  `json:"filed"`                   // filing date
}

// MetricSeries is a named financial concept with its trailing observations.
type MetricSeries struct {
	Concept      string              `json:"concept"`
	Label        string              `json:"label,omitempty"`
	Unit         string              `json:"unit"` // "USD", "USD/shares", "shares"
	Observations []MetricObservation `json:"observations"`
}

// FactsResult is the response shape for company facts extraction.
type FactsResult struct {
	Ticker      string                  `json:"ticker"`
	CIK         string                  `json:"cik"`
	CompanyName string                  `json:"company_name"`
	Mode        string                  `json:"mode"` // "generic" or "specific"
	Metrics     map[string]MetricSeries `json:"metrics"`
}

// ConceptResult is the response shape for a single concept's history,
// with annual and quarterly observations split (newest first).
type ConceptResult struct {
	Ticker      string              `json:"ticker"`
	CIK         string              `json:"cik"`
	Concept     string              `json:"concept"`
	Label       string              `json:"label,omitempty"`
	Description string              `json:"description,omitempty"`
	Unit        string              `json:"unit"`
	Annual      []MetricObservation `json:"annual"`
	Quarterly   []MetricObservation `json:"quarterly"`
}

// MetricInfo describes one concept available in a company's facts feed.
type MetricInfo struct {
	Concept string   `json:"concept"`
	Label   string   `json:"label,omitempty"`
	Units   []string `json:"units"`
}

// MetricCatalog is the response shape for metric discovery. Category
// bucketing is advisory only; it is derived from concept-name keywords.
type MetricCatalog struct {
	Ticker     string                  `json:"ticker"`
	CIK        string                  `json:"cik"`
	Filter     string                  `json:"filter,omitempty"`
	Total      int                     `json:"total"`
	Categories map[string][]MetricInfo `json:"categories"`
}

// FilingContentResult is the response shape for the dual-mode filing
// content operation: one filing's metadata plus a metric slice keyed by
// the requested mode.
type FilingContentResult struct {
	Ticker           string                  `json:"ticker"`
	CIK              string                  `json:"cik"`
	CompanyName      string                  `json:"company_name"`
	FilingType       string                  `json:"filing_type"`
	FilingDate       string                  `json:"filing_date"`
	FilingURL        string                  `json:"filing_url"`
	Mode             string                  `json:"mode"`
	MetricsReturned  int                     `json:"metrics_returned"`
	ValuesPerMetric  int                     `json:"values_per_metric"`
	FinancialMetrics map[string]MetricSeries `json:"financial_metrics"`
	ContentPreview   string                  `json:"content_preview,omitempty"`
}
