package rules

import "strings"

// DefaultExcludeKeywords mark logistics rows in the Organization column.
var DefaultExcludeKeywords = []string{"lunch", "sponsor", "speakers", "storage", "changing room", "activities"}

// SponsorMarker marks sponsor placeholders in the Exhibit Title column.
const SponsorMarker = "SPONSOR"

// Exclusion is a named predicate over organization and exhibit title.
type Exclusion struct {
	Name    string
	Matches func(organization, title string) bool
}

// Exclusions builds the exclusion predicates for the given keywords.
func Exclusions(keywords []string) []Exclusion {
	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}

	return []Exclusion{
		{Name: "blank-organization", Matches: func(org, _ string) bool {
			org = strings.TrimSpace(org)
			return org == "" || strings.EqualFold(org, "nan")
		}},
		{Name: "organization-keyword", Matches: func(org, _ string) bool {
			org = strings.ToLower(strings.TrimSpace(org))
			for _, kw := range lowered {
				if strings.Contains(org, kw) {
					return true
				}
			}
			return false
		}},
		{Name: "sponsor-title", Matches: func(_, title string) bool {
			return strings.Contains(title, SponsorMarker)
		}},
	}
}

// Excluded returns the name of the first matching exclusion, or "".
func Excluded(exclusions []Exclusion, organization, title string) string {
	for _, ex := range exclusions {
		if ex.Matches(organization, title) {
			return ex.Name
		}
	}
	return ""
}
