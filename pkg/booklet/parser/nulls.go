// Package parser reads sheet exports (CSV text or XLSX workbooks) into tables.
package parser

// DefaultNullTokens are the cell texts treated as missing values.
// The list matches what spreadsheet-oriented CSV readers conventionally
// recognize, so "N/A" or "nan" in an organization cell reads as blank.
var DefaultNullTokens = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

// NullSet is a set of exact cell texts read as missing.
type NullSet map[string]struct{}

// NewNullSet builds a NullSet. A nil slice yields DefaultNullTokens.
func NewNullSet(tokens []string) NullSet {
	if tokens == nil {
		tokens = DefaultNullTokens
	}
	set := make(NullSet, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// Clean returns "" for null tokens and the value unchanged otherwise.
func (s NullSet) Clean(value string) string {
	if _, ok := s[value]; ok {
		return ""
	}
	return value
}
