package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/expobook-go/pkg/booklet/models"
)

// ErrNoColumns indicates the input has no header row.
var ErrNoColumns = errors.New("no columns to parse")

// ErrMalformedRow indicates a data row has more fields than the header.
var ErrMalformedRow = errors.New("malformed row")

const utf8BOM = "\ufeff"

// ParseCSV parses comma-delimited text with a header row into a Table.
// Blank lines are skipped, stray quotes are kept as text, short rows are padded with empty cells, and
// cells matching nulls are read as empty.
func ParseCSV(r io.Reader, nulls NullSet) (*models.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoColumns
	}
	if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	table := &models.Table{Columns: normalizeHeader(header)}
	width := len(table.Columns)

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) > width {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d: expected %d fields, saw %d", ErrMalformedRow, line, width, len(record))
		}
		table.Rows = append(table.Rows, buildRow(record, width, nulls))
	}

	return table, nil
}

// buildRow pads record to width and clears null tokens.
func buildRow(record []string, width int, nulls NullSet) []string {
	row := make([]string, width)
	for i, v := range record {
		if i >= width {
			break
		}
		row[i] = nulls.Clean(v)
	}
	return row
}

// normalizeHeader names blank headers "Unnamed: N" and suffixes repeated
// names with ".1", ".2", ... so every column is addressable.
func normalizeHeader(header []string) []string {
	cols := make([]string, len(header))
	used := make(map[string]bool, len(header))
	counts := make(map[string]int, len(header))
	for i, name := range header {
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		base := name
		for used[name] {
			counts[base]++
			name = base + "." + strconv.Itoa(counts[base])
		}
		used[name] = true
		cols[i] = name
	}
	return cols
}
