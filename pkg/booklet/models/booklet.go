package models

// Output column names.
const (
	ColumnAward              = "Award"
	ColumnBookletLocation    = "booklet_location"
	ColumnDayWarning         = "day_warning"
	ColumnOrganization       = "Organization"
	ColumnExhibitTitle       = "Exhibit Title"
	ColumnExhibitDescription = "exhibit_description"
)

// BookletRow represents one printed booklet entry.
type BookletRow struct {
	Award              string `json:"award,omitempty"`
	BookletLocation    string `json:"booklet_location"`
	DayWarning         string `json:"day_warning"`
	Organization       string `json:"organization"`
	ExhibitTitle       string `json:"exhibit_title"`
	ExhibitDescription string `json:"exhibit_description"`
}

// Booklet is the final, ordered booklet dataset.
type Booklet struct {
	// HasAward reports whether the Award column is part of the output.
	HasAward bool `json:"has_award"`
	// Rows holds the booklet entries in print order.
	Rows []BookletRow `json:"rows"`
}

// Columns returns the output header in order.
func (b *Booklet) Columns() []string {
	cols := make([]string, 0, 6)
	if b.HasAward {
		cols = append(cols, ColumnAward)
	}
	return append(cols,
		ColumnBookletLocation,
		ColumnDayWarning,
		ColumnOrganization,
		ColumnExhibitTitle,
		ColumnExhibitDescription,
	)
}

// Records returns the rows as string slices aligned with Columns.
func (b *Booklet) Records() [][]string {
	out := make([][]string, len(b.Rows))
	for i, r := range b.Rows {
		rec := make([]string, 0, 6)
		if b.HasAward {
			rec = append(rec, r.Award)
		}
		out[i] = append(rec, r.BookletLocation, r.DayWarning, r.Organization, r.ExhibitTitle, r.ExhibitDescription)
	}
	return out
}
