package tools

import (
	"context"
	"time"

	"github.com/seenimoa/edgarai/internal/edgar"
	"github.com/seenimoa/edgarai/pkg/models"
	"github.com/seenimoa/edgarai/pkg/utils"
)

// APIStatus probes the EDGAR data API and reports availability, latency
// and the size of the ticker directory.
func (s *Suite) APIStatus(ctx context.Context) *models.ToolResult {
	start := time.Now()

	var directory map[string]edgar.TickerDirectoryEntry
	err := s.client.GetJSON(ctx, s.client.TickerDirectoryURL(), &directory)
	elapsed := time.Since(start)

	status := &models.StatusResult{
		ResponseTimeMS: float64(elapsed.Microseconds()) / 1000,
		LastChecked:    utils.FormatTimestamp(time.Now().UTC()),
	}
	// A down upstream is still a successful status probe; the outcome is
	// carried in the payload.
	if err != nil {
		status.Status = "error"
		if httpErr, ok := err.(*edgar.ErrHTTP); ok {
			status.StatusCode = httpErr.StatusCode
		}
		return ok(status)
	}

	status.Status = "operational"
	status.StatusCode = 200
	status.TotalCompanies = len(directory)
	return ok(status)
}
