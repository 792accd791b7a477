// Package models defines the exported result shapes returned by the
// EdgarAI services and tools. Every struct is JSON-tagged so results can be
// handed to an AI host, the REST API, or the CLI without translation.
package models

// FilingRecord is one disclosure document from a company's filing index.
type FilingRecord struct {
	FormType        string `json:"form_type"`
	FilingDate      string `json:"filing_date"` // YYYY-MM-DD
	AccessionNumber string `json:"accession_number"`
	PrimaryDocument string `json:"primary_document"`
	FilingURL       string `json:"filing_url"`
	Description     string `json:"description"`

	// Optional enrichment, populated by derived operations.
	ContentPreview string               `json:"content_preview,omitempty"`
	Events         []string             `json:"events,omitempty"` // 8-K item summaries
	OwnerName      string               `json:"owner_name,omitempty"`
	Transactions   []InsiderTransaction `json:"transactions,omitempty"`
}

// FilingsResult is the response shape for filing queries.
type FilingsResult struct {
	Ticker       string         `json:"ticker"`
	CIK          string         `json:"cik"`
	CompanyName  string         `json:"company_name"`
	TotalFilings int            `json:"total_filings"`
	Filings      []FilingRecord `json:"filings"`
}

// InsiderTransaction is a single non-derivative transaction parsed from a
// Form 4 ownership document.
type InsiderTransaction struct {
	TransactionDate string  `json:"transaction_date"`
	TransactionCode string  `json:"transaction_code"` // P=Purchase, S=Sale, etc.
	Shares          float64 `json:"shares"`
	PricePerShare   float64 `json:"price_per_share"`
}

// CompanyMatch is one entry from a free-text company search over the
// EDGAR ticker directory.
type CompanyMatch struct {
	CIK         string `json:"cik"`
	Ticker      string `json:"ticker"`
	CompanyName string `json:"company_name"`
}

// SearchResult is the response shape for free-text company search.
type SearchResult struct {
	Query        string         `json:"query"`
	TotalMatches int            `json:"total_matches"`
	Matches      []CompanyMatch `json:"matches"`
	Filings      []FilingRecord `json:"filings,omitempty"`
}
