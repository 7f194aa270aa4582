package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	input := "\ufeffBuilding,Room #,Organization\n" +
		"E Hall,110,Robotics Club\n" +
		"\n" +
		"ME,Lobby Table 3,NaN\n" +
		"ECB,\"Atrium, north\"\n"

	table, err := ParseCSV(strings.NewReader(input), NewNullSet(nil))
	require.NoError(t, err)

	assert.Equal(t, []string{"Building", "Room #", "Organization"}, table.Columns)
	require.Equal(t, 3, table.Len())
	assert.Equal(t, []string{"E Hall", "110", "Robotics Club"}, table.Rows[0])
	assert.Equal(t, []string{"ME", "Lobby Table 3", ""}, table.Rows[1], "null token should read as empty")
	assert.Equal(t, []string{"ECB", "Atrium, north", ""}, table.Rows[2], "short row should be padded")
}

func TestParseCSVErrors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := ParseCSV(strings.NewReader(""), NewNullSet(nil))
		assert.ErrorIs(t, err, ErrNoColumns)
	})

	t.Run("too many fields", func(t *testing.T) {
		_, err := ParseCSV(strings.NewReader("a,b\n1,2,3\n"), NewNullSet(nil))
		assert.ErrorIs(t, err, ErrMalformedRow)
	})

}

func TestParseCSVStrayQuotes(t *testing.T) {
	input := "Room #,Organization\n" +
		"5\" booth,Robotics Club\n" +
		"\"Hall \"B\" Table 2\",Chem Club\n"

	table, err := ParseCSV(strings.NewReader(input), NewNullSet(nil))
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"5\" booth", "Robotics Club"}, table.Rows[0])
	assert.Equal(t, []string{"Hall \"B\" Table 2", "Chem Club"}, table.Rows[1])
}

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		input    []string
		expected []string
	}{
		{[]string{"a", "b"}, []string{"a", "b"}},
		{[]string{"a", "a", "a"}, []string{"a", "a.1", "a.2"}},
		{[]string{"a", "", "b"}, []string{"a", "Unnamed: 1", "b"}},
		{[]string{"a.1", "a", "a"}, []string{"a.1", "a", "a.2"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, normalizeHeader(tt.input), "normalizeHeader(%q)", tt.input)
	}
}

func TestNullSet(t *testing.T) {
	nulls := NewNullSet(nil)
	for _, tok := range []string{"", "NaN", "nan", "N/A", "NULL", "None"} {
		assert.Equal(t, "", nulls.Clean(tok), "token %q", tok)
	}
	assert.Equal(t, "Nancy", nulls.Clean("Nancy"))
	assert.Equal(t, " nan", nulls.Clean(" nan"), "tokens match exactly")

	custom := NewNullSet([]string{"-"})
	assert.Equal(t, "", custom.Clean("-"))
	assert.Equal(t, "NaN", custom.Clean("NaN"))
}
