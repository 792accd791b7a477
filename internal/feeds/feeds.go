// Package feeds reads the SEC's public RSS feeds.
package feeds

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/seenimoa/edgarai/pkg/models"
	"github.com/seenimoa/edgarai/pkg/utils"
)

// Source is one configured SEC RSS feed.
type Source struct {
	Name string
	URL  string
}

// DefaultSources lists the SEC feeds this module reads.
var DefaultSources = []Source{
	{
		Name: "press-releases",
		URL:  "https://www.sec.gov/news/pressreleases.rss",
	},
	{
		Name: "litigation-releases",
		URL:  "https://www.sec.gov/rss/litigation/litreleases.xml",
	},
	{
		Name: "filings",
		URL:  "https://www.sec.gov/cgi-bin/browse-edgar?action=getcompany&type=8-K&company=&dateb=&owner=include&count=40&output=atom",
	},
}

// Service fetches and decodes SEC RSS feeds.
type Service struct {
	sources []Source
	parser  *gofeed.Parser
}

// NewService creates a feed service over the default SEC sources.
func NewService() *Service {
	return NewServiceWithSources(DefaultSources)
}

// NewServiceWithSources creates a feed service over custom sources.
func NewServiceWithSources(sources []Source) *Service {
	return &Service{sources: sources, parser: gofeed.NewParser()}
}

// Sources returns the configured source names.
func (s *Service) Sources() []string {
	names := make([]string, 0, len(s.sources))
	for _, src := range s.sources {
		names = append(names, src.Name)
	}
	return names
}

// Latest returns up to limit entries from the named source, in feed order.
func (s *Service) Latest(ctx context.Context, source string, limit int) (*models.FeedResult, error) {
	src, err := s.lookup(source)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}

	feed, err := s.parser.ParseURLWithContext(src.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", src.Name, err)
	}

	result := &models.FeedResult{Source: src.Name, Items: []models.FeedItem{}}
	for _, item := range feed.Items {
		if len(result.Items) >= limit {
			break
		}
		if item == nil {
			continue
		}
		entry := models.FeedItem{
			Title:   strings.TrimSpace(item.Title),
			Link:    item.Link,
			Summary: strings.TrimSpace(item.Description),
		}
		if item.PublishedParsed != nil {
			entry.Published = utils.FormatTimestamp(*item.PublishedParsed)
		} else {
			entry.Published = item.Published
		}
		result.Items = append(result.Items, entry)
	}
	return result, nil
}

func (s *Service) lookup(name string) (Source, error) {
	for _, src := range s.sources {
		if strings.EqualFold(src.Name, name) {
			return src, nil
		}
	}
	return Source{}, fmt.Errorf("unknown feed source %q (available: %s)", name, strings.Join(s.Sources(), ", "))
}
