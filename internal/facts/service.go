// Package facts extracts structured financial data from the SEC XBRL
// company facts and company concept feeds.
package facts

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/seenimoa/edgarai/internal/edgar"
	"github.com/seenimoa/edgarai/pkg/models"
)

// DefaultConcepts is the generic-mode metric set, covering the headline
// income statement, balance sheet and per-share figures.
var DefaultConcepts = []string{
	"NetIncomeLoss",
	"Revenues",
	"RevenueFromContractWithCustomerExcludingAssessedTax",
	"Assets",
	"AssetsCurrent",
	"Liabilities",
	"LiabilitiesCurrent",
	"StockholdersEquity",
	"CashAndCashEquivalentsAtCarryingValue",
	"PropertyPlantAndEquipmentNet",
	"CommonStockSharesOutstanding",
	"EarningsPerShareBasic",
	"EarningsPerShareDiluted",
}

const (
	trailingObservations = 5
	annualObservations   = 5
	quarterlyObservation = 8

	gaapTaxonomy = "us-gaap"
)

// unitPreference orders the units considered per concept. The first unit
// present wins; a series never mixes units.
var unitPreference = []string{"USD", "USD/shares", "shares"}

// Service extracts financial facts for a company.
type Service struct {
	client   *edgar.Client
	resolver *edgar.Resolver
}

// NewService creates a facts extraction service.
func NewService(client *edgar.Client, resolver *edgar.Resolver) *Service {
	return &Service{client: client, resolver: resolver}
}

// CompanyFacts returns the trailing observations of a company's financial
// metrics. With no concept names it runs in generic mode over
// DefaultConcepts; with names it returns exactly those concepts. Concepts
// absent from the company's feed are silently omitted.
func (s *Service) CompanyFacts(ctx context.Context, ticker string, concepts []string) (*models.FactsResult, error) {
	cik, err := s.resolver.Resolve(ctx, ticker)
	if err != nil {
		return nil, err
	}

	var resp edgar.CompanyFactsResponse
	if err := s.client.GetJSON(ctx, s.client.CompanyFactsURL(cik), &resp); err != nil {
		return nil, fmt.Errorf("fetch company facts for %s: %w", ticker, err)
	}

	mode := "specific"
	if len(concepts) == 0 {
		mode = "generic"
		concepts = DefaultConcepts
	}

	result := &models.FactsResult{
		Ticker:      ticker,
		CIK:         cik,
		CompanyName: resp.EntityName,
		Mode:        mode,
		Metrics:     make(map[string]models.MetricSeries, len(concepts)),
	}

	gaap := resp.Facts[gaapTaxonomy]
	for _, name := range concepts {
		concept, ok := gaap[name]
		if !ok {
			continue
		}
		unit, obs := pickUnit(concept.Units)
		if unit == "" {
			continue
		}
		result.Metrics[name] = models.MetricSeries{
			Concept:      name,
			Label:        concept.Label,
			Unit:         unit,
			Observations: trailing(obs, trailingObservations),
		}
	}
	return result, nil
}

// Concept returns the full reported history of one concept, split into
// annual (10-K) and quarterly (10-Q) series, newest first.
func (s *Service) Concept(ctx context.Context, ticker, concept string) (*models.ConceptResult, error) {
	concept = strings.TrimSpace(concept)
	if concept == "" {
		return nil, fmt.Errorf("concept name is required")
	}

	cik, err := s.resolver.Resolve(ctx, ticker)
	if err != nil {
		return nil, err
	}

	var resp edgar.ConceptResponse
	if err := s.client.GetJSON(ctx, s.client.ConceptURL(cik, concept), &resp); err != nil {
		return nil, fmt.Errorf("fetch concept %s for %s: %w", concept, ticker, err)
	}

	unit, obs := pickUnit(resp.Units)
	result := &models.ConceptResult{
		Ticker:      ticker,
		CIK:         cik,
		Concept:     concept,
		Label:       resp.Label,
		Description: resp.Description,
		Unit:        unit,
		Annual:      []models.MetricObservation{},
		Quarterly:   []models.MetricObservation{},
	}

	// Upstream orders observations oldest first; walk backwards so both
	// series come out newest first.
	for i := len(obs) - 1; i >= 0; i-- {
		o := obs[i]
		switch o.Form {
		case "10-K":
			if len(result.Annual) < annualObservations {
				result.Annual = append(result.Annual, toObservation(o))
			}
		case "10-Q":
			if len(result.Quarterly) < quarterlyObservation {
				result.Quarterly = append(result.Quarterly, toObservation(o))
			}
		}
	}
	return result, nil
}

// Discover lists every concept available in a company's facts feed,
// optionally filtered by a case-insensitive substring, bucketed into
// advisory statement categories.
func (s *Service) Discover(ctx context.Context, ticker, filter string) (*models.MetricCatalog, error) {
	cik, err := s.resolver.Resolve(ctx, ticker)
	if err != nil {
		return nil, err
	}

	var resp edgar.CompanyFactsResponse
	if err := s.client.GetJSON(ctx, s.client.CompanyFactsURL(cik), &resp); err != nil {
		return nil, fmt.Errorf("fetch company facts for %s: %w", ticker, err)
	}

	catalog := &models.MetricCatalog{
		Ticker:     ticker,
		CIK:        cik,
		Filter:     filter,
		Categories: make(map[string][]models.MetricInfo),
	}

	needle := strings.ToLower(filter)
	for name, concept := range resp.Facts[gaapTaxonomy] {
		if needle != "" && !strings.Contains(strings.ToLower(name), needle) {
			continue
		}
		units := make([]string, 0, len(concept.Units))
		for u := range concept.Units {
			units = append(units, u)
		}
		sort.Strings(units)

		category := categorize(name)
		catalog.Categories[category] = append(catalog.Categories[category], models.MetricInfo{
			Concept: name,
			Label:   concept.Label,
			Units:   units,
		})
		catalog.Total++
	}

	for _, infos := range catalog.Categories {
		sort.Slice(infos, func(i, j int) bool { return infos[i].Concept < infos[j].Concept })
	}
	return catalog, nil
}

// pickUnit selects the first preferred unit present and returns its
// observations. Concepts reported only in other units are skipped.
func pickUnit(units map[string][]edgar.FactObservation) (string, []edgar.FactObservation) {
	for _, u := range unitPreference {
		if obs, ok := units[u]; ok && len(obs) > 0 {
			return u, obs
		}
	}
	return "", nil
}

// trailing converts the last n upstream observations, preserving their
// oldest-to-newest ordering.
func trailing(obs []edgar.FactObservation, n int) []models.MetricObservation {
	if len(obs) > n {
		obs = obs[len(obs)-n:]
	}
	out := make([]models.MetricObservation, 0, len(obs))
	for _, o := range obs {
		out = append(out, toObservation(o))
	}
	return out
}

func toObservation(o edgar.FactObservation) models.MetricObservation {
	return models.MetricObservation{
		Value:        o.Val,
		Start:        o.Start,
		End:          o.End,
		FiscalYear:   o.FY,
		FiscalPeriod: o.FP,
		Form:         o.Form,
		Filed:        o.Filed,
	}
}

// Category keywords, checked in order. The first match wins.
var categoryRules = []struct {
	category string
	keywords []string
}{
	{"eps", []string{"EarningsPerShare", "PerShare"}},
	{"shares", []string{"Shares", "Stock"}},
	{"income-statement", []string{"Revenue", "Income", "Earnings", "Expense", "Cost", "Profit", "Loss", "Tax"}},
	{"cash-flow", []string{"Cash", "Payments", "Proceeds", "Depreciation", "Amortization"}},
	{"balance-sheet", []string{"Assets", "Liabilities", "Equity", "Debt", "Inventory", "Receivable", "Payable", "Goodwill", "Property"}},
	{"segment", []string{"Segment"}},
}

func categorize(concept string) string {
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(concept, kw) {
				return rule.category
			}
		}
	}
	return "other"
}
