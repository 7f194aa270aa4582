package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ukaji3/expobook-go/pkg/booklet/models"
)

// previewCellWidth caps preview cells; long descriptions are elided.
const previewCellWidth = 48

// Preview prints the first n booklet rows as a table, led by a row index
// column. It prints nothing when n is zero.
func Preview(w io.Writer, b *models.Booklet, n int) error {
	if n <= 0 {
		return nil
	}
	records := b.Records()
	if len(records) > n {
		records = records[:n]
	}

	headers := append([]string{""}, b.Columns()...)
	rows := make([][]string, len(records))
	for i, rec := range records {
		row := make([]string, 0, len(rec)+1)
		row = append(row, strconv.Itoa(i))
		for _, v := range rec {
			row = append(row, elide(v, previewCellWidth))
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// elide shortens s to at most width runes, marking the cut with "...".
func elide(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}
