package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/seenimoa/edgarai/internal/edgar"
	"github.com/seenimoa/edgarai/pkg/models"
)

const maxSearchMatches = 20

// SearchCompanies matches a free-text query against the EDGAR ticker
// directory, on ticker symbols and company titles.
func (s *Suite) SearchCompanies(ctx context.Context, query string, limit int) *models.ToolResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return fail("", fmt.Errorf("search query is required"))
	}
	if limit <= 0 || limit > maxSearchMatches {
		limit = maxSearchMatches
	}

	var directory map[string]edgar.TickerDirectoryEntry
	if err := s.client.GetJSON(ctx, s.client.TickerDirectoryURL(), &directory); err != nil {
		return fail("", err)
	}

	needle := strings.ToLower(query)
	var matches []models.CompanyMatch
	for _, entry := range directory {
		ticker := strings.ToLower(entry.Ticker)
		title := strings.ToLower(entry.Title)
		if !strings.Contains(ticker, needle) && !strings.Contains(title, needle) {
			continue
		}
		matches = append(matches, models.CompanyMatch{
			CIK:         entry.CIK.Padded(),
			Ticker:      entry.Ticker,
			CompanyName: entry.Title,
		})
	}

	// Exact ticker matches first, then alphabetical by ticker.
	sort.Slice(matches, func(i, j int) bool {
		ei := strings.EqualFold(matches[i].Ticker, query)
		ej := strings.EqualFold(matches[j].Ticker, query)
		if ei != ej {
			return ei
		}
		return matches[i].Ticker < matches[j].Ticker
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	return ok(&models.SearchResult{
		Query:        query,
		TotalMatches: len(matches),
		Matches:      matches,
	})
}
