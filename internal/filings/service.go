// Package filings queries a company's SEC filing index and derives
// form-specific views of it: annual and quarterly reports, current
// reports with event summaries, proxy statements, insider transactions
// and beneficial-ownership schedules.
package filings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/seenimoa/edgarai/internal/edgar"
	"github.com/seenimoa/edgarai/pkg/models"
	"github.com/seenimoa/edgarai/pkg/utils"
)

const (
	// DefaultLimit applies when a query does not specify one.
	DefaultLimit = 10

	// MaxLimit caps the number of filings returned per query.
	MaxLimit = 100

	reportPreviewLen  = 10000
	currentPreviewLen = 5000
	maxTransactions   = 3
)

// ErrInvalidDate is returned when a date filter cannot be parsed.
var ErrInvalidDate = errors.New("invalid date")

// QueryOptions filters a company's filing index.
type QueryOptions struct {
	Ticker    string
	FormType  string // optional; empty matches every form
	Limit     int    // 0 means DefaultLimit
	StartDate string // optional, inclusive
	EndDate   string // optional, inclusive
}

// Service runs filing queries against EDGAR.
type Service struct {
	client   *edgar.Client
	resolver *edgar.Resolver
}

// NewService creates a filing query service.
func NewService(client *edgar.Client, resolver *edgar.Resolver) *Service {
	return &Service{client: client, resolver: resolver}
}

// Query returns a company's filings filtered by form type and date range,
// newest first. Validation failures surface before any network call.
func (s *Service) Query(ctx context.Context, opts QueryOptions) (*models.FilingsResult, error) {
	form := ""
	if opts.FormType != "" {
		normalized, err := edgar.ValidateFormType(opts.FormType)
		if err != nil {
			return nil, err
		}
		form = normalized
	}

	start, end, err := normalizeDateRange(opts.StartDate, opts.EndDate)
	if err != nil {
		return nil, err
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	cik, err := s.resolver.Resolve(ctx, opts.Ticker)
	if err != nil {
		return nil, err
	}

	var resp edgar.SubmissionsResponse
	if err := s.client.GetJSON(ctx, s.client.SubmissionsURL(cik), &resp); err != nil {
		return nil, fmt.Errorf("fetch submissions for %s: %w", opts.Ticker, err)
	}

	recent := resp.Filings.Recent
	result := &models.FilingsResult{
		Ticker:      opts.Ticker,
		CIK:         cik,
		CompanyName: resp.Name,
		Filings:     []models.FilingRecord{},
	}

	// The index is ordered newest first; taking the first N matches
	// preserves that ordering.
	for i := 0; i < recent.Len() && len(result.Filings) < limit; i++ {
		if form != "" && recent.Form[i] != form {
			continue
		}
		date := recent.FilingDate[i]
		if start != "" && date < start {
			continue
		}
		if end != "" && date > end {
			continue
		}

		record := models.FilingRecord{
			FormType:        recent.Form[i],
			FilingDate:      date,
			AccessionNumber: recent.AccessionNumber[i],
			Description:     edgar.FormDescription(recent.Form[i]),
		}
		if i < len(recent.PrimaryDocument) && recent.PrimaryDocument[i] != "" {
			record.PrimaryDocument = recent.PrimaryDocument[i]
			record.FilingURL = s.client.ArchiveDocumentURL(cik, record.AccessionNumber, record.PrimaryDocument)
		}
		if i < len(recent.Description) && recent.Description[i] != "" {
			record.Description = recent.Description[i]
		}
		result.Filings = append(result.Filings, record)
	}

	result.TotalFilings = len(result.Filings)
	return result, nil
}

// LatestAnnualReport returns the most recent 10-K with a content preview.
func (s *Service) LatestAnnualReport(ctx context.Context, ticker string) (*models.FilingsResult, error) {
	return s.latestWithPreview(ctx, ticker, "10-K", reportPreviewLen)
}

// LatestQuarterlyReport returns the most recent 10-Q with a content preview.
func (s *Service) LatestQuarterlyReport(ctx context.Context, ticker string) (*models.FilingsResult, error) {
	return s.latestWithPreview(ctx, ticker, "10-Q", reportPreviewLen)
}

func (s *Service) latestWithPreview(ctx context.Context, ticker, form string, previewLen int) (*models.FilingsResult, error) {
	result, err := s.Query(ctx, QueryOptions{Ticker: ticker, FormType: form, Limit: 1})
	if err != nil {
		return nil, err
	}
	for i := range result.Filings {
		s.attachPreview(ctx, &result.Filings[i], previewLen)
	}
	return result, nil
}

// RecentCurrentReports returns recent 8-K filings, each with a content
// preview and a summary of the reported item events.
func (s *Service) RecentCurrentReports(ctx context.Context, ticker string, limit int) (*models.FilingsResult, error) {
	if limit <= 0 {
		limit = 5
	}
	result, err := s.Query(ctx, QueryOptions{Ticker: ticker, FormType: "8-K", Limit: limit})
	if err != nil {
		return nil, err
	}
	for i := range result.Filings {
		f := &result.Filings[i]
		s.attachPreview(ctx, f, currentPreviewLen)
		if f.ContentPreview != "" {
			f.Events = ScanItemEvents(f.ContentPreview)
		}
	}
	return result, nil
}

// ProxyStatements returns recent DEF 14A proxy statements.
func (s *Service) ProxyStatements(ctx context.Context, ticker string, limit int) (*models.FilingsResult, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.Query(ctx, QueryOptions{Ticker: ticker, FormType: "DEF 14A", Limit: limit})
}

// InsiderTransactions returns recent Form 4 filings, enriched best-effort
// with the reporting owner and up to three non-derivative transactions
// parsed from the filing document.
func (s *Service) InsiderTransactions(ctx context.Context, ticker string, limit int) (*models.FilingsResult, error) {
	if limit <= 0 {
		limit = 5
	}
	result, err := s.Query(ctx, QueryOptions{Ticker: ticker, FormType: "4", Limit: limit})
	if err != nil {
		return nil, err
	}
	for i := range result.Filings {
		f := &result.Filings[i]
		if f.FilingURL == "" {
			continue
		}
		raw, err := s.client.Get(ctx, f.FilingURL)
		if err != nil {
			slog.Warn("form 4 document fetch failed",
				"ticker", ticker, "accession", f.AccessionNumber, "error", err)
			continue
		}
		owner, txns, err := ParseForm4(raw, maxTransactions)
		if err != nil {
			slog.Debug("form 4 parse failed",
				"accession", f.AccessionNumber, "error", err)
			continue
		}
		f.OwnerName = owner
		f.Transactions = txns
	}
	return result, nil
}

// BeneficialOwnership returns recent Schedule 13D and 13G filings merged
// into one newest-first list.
func (s *Service) BeneficialOwnership(ctx context.Context, ticker string, limit int) (*models.FilingsResult, error) {
	if limit <= 0 {
		limit = 5
	}

	d, err := s.Query(ctx, QueryOptions{Ticker: ticker, FormType: "SC 13D", Limit: limit})
	if err != nil {
		return nil, err
	}
	g, err := s.Query(ctx, QueryOptions{Ticker: ticker, FormType: "SC 13G", Limit: limit})
	if err != nil {
		return nil, err
	}

	merged := append(d.Filings, g.Filings...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].FilingDate > merged[j].FilingDate
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}

	d.Filings = merged
	d.TotalFilings = len(merged)
	return d, nil
}

// attachPreview fetches the filing document and stores an extracted text
// preview. Fetch or extraction failures degrade to an empty preview.
func (s *Service) attachPreview(ctx context.Context, f *models.FilingRecord, maxLen int) {
	if f.FilingURL == "" {
		return
	}
	raw, err := s.client.Get(ctx, f.FilingURL)
	if err != nil {
		slog.Warn("filing preview fetch failed",
			"accession", f.AccessionNumber, "error", err)
		return
	}
	f.ContentPreview = ExtractText(string(raw), maxLen)
}

func normalizeDateRange(start, end string) (string, string, error) {
	var err error
	if start != "" {
		start, err = utils.NormalizeDate(start)
		if err != nil {
			return "", "", fmt.Errorf("%w: start date: %v", ErrInvalidDate, err)
		}
	}
	if end != "" {
		end, err = utils.NormalizeDate(end)
		if err != nil {
			return "", "", fmt.Errorf("%w: end date: %v", ErrInvalidDate, err)
		}
	}
	if start != "" && end != "" && start > end {
		return "", "", fmt.Errorf("%w: start date %s after end date %s", ErrInvalidDate, start, end)
	}
	return start, end, nil
}
