// Package models defines data structures for booklet assembly.
package models

// Table represents a row-oriented sheet export with a single header row.
type Table struct {
	// Columns holds the header names in sheet order.
	Columns []string `json:"columns"`
	// Rows holds cell text. Parsed tables pad every row to len(Columns);
	// readers treat missing trailing cells as empty.
	Rows [][]string `json:"rows"`
}

// Index returns the position of the named column, or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Has reports whether the named column exists.
func (t *Table) Has(name string) bool {
	return t.Index(name) >= 0
}

// Rename renames column old to name in place. It reports false if old is absent.
func (t *Table) Rename(old, name string) bool {
	i := t.Index(old)
	if i < 0 {
		return false
	}
	t.Columns[i] = name
	return true
}

// Column returns the values of the named column, or nil if it is absent.
func (t *Table) Column(name string) []string {
	i := t.Index(name)
	if i < 0 {
		return nil
	}
	values := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		values[r] = row[i]
	}
	return values
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
