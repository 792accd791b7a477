package edgar

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidFormType is returned for form codes outside the supported set.
var ErrInvalidFormType = errors.New("unsupported form type")

// FormType is an SEC form code from the closed set this module accepts.
type FormType = string

// formDescriptions is the closed set of supported form types with their
// human-readable descriptions. Codes outside this set are rejected at the
// boundary.
var formDescriptions = map[string]string{
	"10-K":    "Annual Report",
	"10-Q":    "Quarterly Report",
	"8-K":     "Current Report",
	"DEF 14A": "Proxy Statement",
	"S-1":     "Registration Statement",
	"S-3":     "Registration Statement",
	"S-4":     "Registration Statement",
	"10-K/A":  "Annual Report Amendment",
	"10-Q/A":  "Quarterly Report Amendment",
	"8-K/A":   "Current Report Amendment",
	"3":       "Initial Statement of Beneficial Ownership",
	"4":       "Statement of Changes in Beneficial Ownership",
	"5":       "Annual Statement of Changes in Beneficial Ownership",
	"13D":     "Schedule 13D",
	"13G":     "Schedule 13G",
	"SC 13D":  "Schedule 13D",
	"SC 13G":  "Schedule 13G",
	"13F-HR":  "Institutional Investment Manager Holdings Report",
	"N-PORT":  "Monthly Portfolio Investments Report",
	"N-Q":     "Quarterly Schedule of Portfolio Holdings",
	"ADV":     "Investment Adviser Registration",
	"PF":      "Private Fund Report",
}

// FormFrequencies groups form types by their filing cadence/purpose.
var FormFrequencies = map[string][]string{
	"annual":        {"10-K", "DEF 14A"},
	"quarterly":     {"10-Q"},
	"current":       {"8-K"},
	"insider":       {"3", "4", "5"},
	"ownership":     {"13D", "13G", "SC 13D", "SC 13G"},
	"institutional": {"13F-HR"},
	"fund":          {"N-PORT", "N-Q"},
	"registration":  {"S-1", "S-3", "S-4"},
}

// ValidateFormType normalizes a form-type code and rejects anything
// outside the supported set.
func ValidateFormType(form string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(form))
	if _, ok := formDescriptions[normalized]; !ok {
		return "", fmt.Errorf("%w %q (supported: %s)", ErrInvalidFormType, form, strings.Join(SupportedFormTypes(), ", "))
	}
	return normalized, nil
}

// FormDescription returns the human-readable description of a form code,
// or a placeholder for codes outside the set (the filing index may carry
// forms this module does not filter on).
func FormDescription(form string) string {
	if desc, ok := formDescriptions[form]; ok {
		return desc
	}
	return "Unknown Form Type"
}

// SupportedFormTypes returns the accepted codes in sorted order.
func SupportedFormTypes() []string {
	forms := make([]string, 0, len(formDescriptions))
	for f := range formDescriptions {
		forms = append(forms, f)
	}
	sort.Strings(forms)
	return forms
}
