package filings

import "regexp"

// itemDescriptions maps 8-K item numbers to their event descriptions.
// Reference: https://www.sec.gov/files/form8-k.pdf
var itemDescriptions = map[string]string{
	"1.01": "Entry into a Material Definitive Agreement",
	"1.02": "Termination of a Material Definitive Agreement",
	"1.03": "Bankruptcy or Receivership",
	"2.01": "Completion of Acquisition or Disposition of Assets",
	"2.02": "Results of Operations and Financial Condition",
	"2.03": "Creation of a Direct Financial Obligation",
	"2.04": "Triggering Events That Accelerate a Financial Obligation",
	"2.05": "Costs Associated with Exit or Disposal Activities",
	"2.06": "Material Impairments",
	"3.01": "Notice of Delisting or Failure to Satisfy a Listing Rule",
	"3.02": "Unregistered Sales of Equity Securities",
	"4.01": "Changes in Registrant's Certifying Accountant",
	"4.02": "Non-Reliance on Previously Issued Financial Statements",
	"5.01": "Changes in Control of Registrant",
	"5.02": "Departure or Election of Directors or Officers",
	"5.03": "Amendments to Articles of Incorporation or Bylaws",
	"5.07": "Submission of Matters to a Vote of Security Holders",
	"7.01": "Regulation FD Disclosure",
	"8.01": "Other Events",
	"9.01": "Financial Statements and Exhibits",
}

var itemPattern = regexp.MustCompile(`(?i)\bItem\s+(\d\.\d{2})\b`)

// ScanItemEvents finds the 8-K item numbers mentioned in a current
// report's text and returns their event descriptions, deduplicated in
// order of first appearance. Item numbers outside the known set are
// reported by number alone.
func ScanItemEvents(text string) []string {
	matches := itemPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	var events []string
	for _, m := range matches {
		item := m[1]
		if seen[item] {
			continue
		}
		seen[item] = true
		if desc, ok := itemDescriptions[item]; ok {
			events = append(events, "Item "+item+": "+desc)
		} else {
			events = append(events, "Item "+item)
		}
	}
	return events
}
