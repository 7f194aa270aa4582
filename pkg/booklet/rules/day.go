package rules

import "strings"

// Day warnings.
const (
	FridayOnly   = "Friday Only"
	SaturdayOnly = "Saturday Only"
)

// ParseBool reads a sheet checkbox value. "true", "1" and "yes" are true in
// any case; everything else, including blanks, is false.
func ParseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// DayWarning flags exhibits present on only one of the two days.
func DayWarning(friday, saturday string) string {
	fri, sat := ParseBool(friday), ParseBool(saturday)
	switch {
	case fri && !sat:
		return FridayOnly
	case sat && !fri:
		return SaturdayOnly
	}
	return ""
}
