package edgar

import (
	"encoding/json"
	"strconv"
	"strings"
)

// --- Ticker directory (data.sec.gov/files/company_tickers.json) ---
// The directory is a JSON object keyed by an opaque index:
//   {"0": {"cik_str": 320193, "ticker": "AAPL", "title": "Apple Inc."}, ...}

// TickerDirectoryEntry is one record of the ticker→CIK directory.
type TickerDirectoryEntry struct {
	CIK    FlexibleCIK `json:"cik_str"`
	Ticker string      `json:"ticker"`
	Title  string      `json:"title"`
}

// FlexibleCIK decodes a CIK that upstream serves either as a JSON number
// or as a string. It keeps only the digits.
type FlexibleCIK string

func (c *FlexibleCIK) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		*c = ""
		return nil
	}
	// Reject anything that is not a plain integer.
	if _, err := strconv.ParseUint(s, 10, 64); err != nil {
		return err
	}
	*c = FlexibleCIK(s)
	return nil
}

// Padded returns the CIK as the canonical 10-digit zero-padded string.
func (c FlexibleCIK) Padded() string { return PadCIK(string(c)) }

// --- Submissions (data.sec.gov/submissions/CIK{10}.json) ---

// SubmissionsResponse is the company filing index.
type SubmissionsResponse struct {
	CIK            string      `json:"cik"`
	EntityType     string      `json:"entityType"`
	SIC            string      `json:"sic"`
	SICDescription string      `json:"sicDescription"`
	Name           string      `json:"name"`
	Tickers        []string    `json:"tickers"`
	Exchanges      []string    `json:"exchanges"`
	Filings        FilingIndex `json:"filings"`
}

// FilingIndex holds the recent filing set.
type FilingIndex struct {
	Recent FilingSet `json:"recent"`
}

// FilingSet is the index's parallel-array representation: position i of
// each slice describes the same filing. Slices may arrive with differing
// lengths; consumers must iterate only the shortest common length.
type FilingSet struct {
	AccessionNumber []string `json:"accessionNumber"`
	FilingDate      []string `json:"filingDate"`
	ReportDate      []string `json:"reportDate"`
	Form            []string `json:"form"`
	PrimaryDocument []string `json:"primaryDocument"`
	Description     []string `json:"primaryDocDescription"`
}

// Len returns the shortest common length of the core parallel arrays.
func (s FilingSet) Len() int {
	n := len(s.Form)
	if len(s.FilingDate) < n {
		n = len(s.FilingDate)
	}
	if len(s.AccessionNumber) < n {
		n = len(s.AccessionNumber)
	}
	return n
}

// --- Company facts (data.sec.gov/api/xbrl/companyfacts/CIK{10}.json) ---

// CompanyFactsResponse is the structured financial-facts feed:
// facts.{taxonomy}.{concept}.units.{unit} → observations.
type CompanyFactsResponse struct {
	CIK        json.Number                       `json:"cik"`
	EntityName string                            `json:"entityName"`
	Facts      map[string]map[string]FactConcept `json:"facts"`
}

// FactConcept is one taxonomy concept with its per-unit observations.
type FactConcept struct {
	Label       string                       `json:"label"`
	Description string                       `json:"description"`
	Units       map[string][]FactObservation `json:"units"`
}

// FactObservation is one reported value. Upstream orders observations
// oldest to newest.
type FactObservation struct {
	Start string  `json:"start"`
	End   string  `json:"end"`
	Val   float64 `json:"val"`
	Accn  string  `json:"accn"`
	FY    int     `json:"fy"`
	FP    string  `json:"fp"` // "Q1".."Q3", "FY"
	Form  string  `json:"form"`
	Filed string  `json:"filed"`
	Frame string  `json:"frame,omitempty"`
}

// --- Company concept (data.sec.gov/api/xbrl/companyconcept/...) ---

// ConceptResponse is the full history of a single concept.
type ConceptResponse struct {
	CIK         json.Number                  `json:"cik"`
	Taxonomy    string                       `json:"taxonomy"`
	Tag         string                       `json:"tag"`
	Label       string                       `json:"label"`
	Description string                       `json:"description"`
	EntityName  string                       `json:"entityName"`
	Units       map[string][]FactObservation `json:"units"`
}

// --- Helpers ---

// PadCIK pads a CIK number to the canonical 10 digits with leading zeros.
func PadCIK(cik string) string {
	for len(cik) < 10 {
		cik = "0" + cik
	}
	return cik
}
