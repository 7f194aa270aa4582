package booklet

import (
	"cmp"
	"slices"

	"github.com/ukaji3/expobook-go/pkg/booklet/models"
	"github.com/ukaji3/expobook-go/pkg/booklet/rules"
)

// Merge left-joins exhibit descriptions onto room records by exact exhibit
// title. Each room yields one row per matching exhibit, in exhibit order, or
// a single row when nothing matches. Empty titles never match. Empty or
// unmatched descriptions become missing.
func Merge(rooms *models.RoomSet, exhibits []models.ExhibitRecord, missing string) *models.Booklet {
	byTitle := make(map[string][]string, len(exhibits))
	for _, ex := range exhibits {
		if ex.Title == "" {
			continue
		}
		byTitle[ex.Title] = append(byTitle[ex.Title], ex.Description)
	}

	b := &models.Booklet{
		HasAward: rooms.HasAward,
		Rows:     make([]models.BookletRow, 0, len(rooms.Records)),
	}
	for _, rec := range rooms.Records {
		row := models.BookletRow{
			Award:           rec.Award,
			BookletLocation: rec.BookletLocation,
			DayWarning:      rec.DayWarning,
			Organization:    rec.Organization,
			ExhibitTitle:    rec.ExhibitTitle,
		}

		descs := byTitle[rec.ExhibitTitle]
		if rec.ExhibitTitle == "" || len(descs) == 0 {
			descs = []string{""}
		}
		for _, d := range descs {
			if d == "" {
				d = missing
			}
			row.ExhibitDescription = d
			b.Rows = append(b.Rows, row)
		}
	}
	return b
}

// Filter drops excluded rows and returns the kept rows with a count of
// dropped rows per exclusion name.
func Filter(rows []models.BookletRow, exclusions []rules.Exclusion) ([]models.BookletRow, map[string]int) {
	kept := make([]models.BookletRow, 0, len(rows))
	dropped := make(map[string]int)
	for _, row := range rows {
		if name := rules.Excluded(exclusions, row.Organization, row.ExhibitTitle); name != "" {
			dropped[name]++
			continue
		}
		kept = append(kept, row)
	}
	return kept, dropped
}

// Sort orders rows by location rank. Rows with equal rank, including all
// unlisted locations, keep their relative order.
func Sort(rows []models.BookletRow, order rules.LocationOrder) {
	slices.SortStableFunc(rows, func(a, b models.BookletRow) int {
		return cmp.Compare(order.Key(a.BookletLocation), order.Key(b.BookletLocation))
	})
}
