package filings

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractText strips an HTML filing document down to readable text:
// script and style blocks are removed, whitespace is collapsed, and the
// result is truncated to maxLen characters. If the document cannot be
// parsed as HTML the raw input is collapsed and truncated instead.
func ExtractText(html string, maxLen int) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return truncateText(collapseWhitespace(html), maxLen)
	}

	doc.Find("script, style").Remove()
	text := doc.Find("body").Text()
	if text == "" {
		text = doc.Text()
	}
	return truncateText(collapseWhitespace(text), maxLen)
}

// collapseWhitespace reduces every run of whitespace to a single space.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncateText(s string, maxLen int) string {
	if maxLen > 0 && len(s) > maxLen {
		return s[:maxLen]
	}
	return s
}
