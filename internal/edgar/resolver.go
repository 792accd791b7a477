package edgar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// ErrInvalidTicker is returned for ticker symbols that fail validation
// before any lookup is attempted.
var ErrInvalidTicker = errors.New("invalid ticker symbol")

// ErrTickerNotFound is returned when a ticker cannot be resolved to a CIK
// through any tier of the fallback chain. Underlying causes (network
// failures, malformed directory) are logged, not propagated: they all
// collapse to this value.
var ErrTickerNotFound = errors.New("ticker not found")

// CIKCache is a process-lifetime ticker→CIK mapping. Entries are never
// evicted or refreshed: a registrant that changes its CIK upstream is
// served stale until Clear or process restart, by contract. Writes are
// idempotent, so racing resolutions of the same ticker are benign.
type CIKCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewCIKCache creates an empty cache.
func NewCIKCache() *CIKCache {
	return &CIKCache{entries: make(map[string]string)}
}

// Get returns the cached CIK for a normalized ticker.
func (c *CIKCache) Get(ticker string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cik, ok := c.entries[ticker]
	return cik, ok
}

// Put stores a resolution.
func (c *CIKCache) Put(ticker, cik string) {
	c.mu.Lock()
	c.entries[ticker] = cik
	c.mu.Unlock()
}

// Clear drops all entries.
func (c *CIKCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]string)
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *CIKCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Resolver resolves ticker symbols to 10-digit CIKs through a strictly
// ordered fallback chain: cache, static table, EDGAR ticker directory.
type Resolver struct {
	client *Client
	cache  *CIKCache
}

// NewResolver creates a resolver. A nil cache gets a fresh one, so tests
// and embedders can inject their own or rely on the default.
func NewResolver(client *Client, cache *CIKCache) *Resolver {
	if cache == nil {
		cache = NewCIKCache()
	}
	return &Resolver{client: client, cache: cache}
}

// Cache exposes the resolver's cache, mainly for tests and diagnostics.
func (r *Resolver) Cache() *CIKCache { return r.cache }

// NormalizeTicker uppercases and trims a ticker and rejects characters
// outside [A-Z0-9.-].
func NormalizeTicker(ticker string) (string, error) {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	if t == "" || len(t) > 10 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTicker, ticker)
	}
	for _, ch := range t {
		switch {
		case ch >= 'A' && ch <= 'Z':
		case ch >= '0' && ch <= '9':
		case ch == '.' || ch == '-':
		default:
			return "", fmt.Errorf("%w: %q", ErrInvalidTicker, ticker)
		}
	}
	return t, nil
}

// Resolve converts a ticker symbol to its 10-digit CIK. The chain
// short-circuits on the first hit; directory fetch failures and misses
// both surface as ErrTickerNotFound.
func (r *Resolver) Resolve(ctx context.Context, ticker string) (string, error) {
	t, err := NormalizeTicker(ticker)
	if err != nil {
		return "", err
	}

	if cik, ok := r.cache.Get(t); ok {
		return cik, nil
	}

	if cik, ok := StaticCIK(t); ok {
		r.cache.Put(t, cik)
		return cik, nil
	}

	cik, err := r.lookupDirectory(ctx, t)
	if err != nil {
		slog.Warn("ticker directory lookup failed", "ticker", t, "error", err)
		return "", fmt.Errorf("%w: %s", ErrTickerNotFound, t)
	}
	if cik == "" {
		slog.Debug("ticker absent from directory", "ticker", t)
		return "", fmt.Errorf("%w: %s", ErrTickerNotFound, t)
	}

	r.cache.Put(t, cik)
	return cik, nil
}

// lookupDirectory scans the full EDGAR ticker directory for a
// case-insensitive exact ticker match.
func (r *Resolver) lookupDirectory(ctx context.Context, ticker string) (string, error) {
	var directory map[string]TickerDirectoryEntry
	if err := r.client.GetJSON(ctx, r.client.TickerDirectoryURL(), &directory); err != nil {
		return "", err
	}

	for _, entry := range directory {
		if strings.EqualFold(entry.Ticker, ticker) {
			return entry.CIK.Padded(), nil
		}
	}
	return "", nil
}
