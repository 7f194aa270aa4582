package booklet

import (
	"github.com/ukaji3/expobook-go/pkg/booklet/models"
	"github.com/ukaji3/expobook-go/pkg/booklet/rules"
)

// Room sheet columns.
const (
	ColumnBuilding     = "Building"
	ColumnRoom         = "Room #"
	ColumnFriday       = "Friday"
	ColumnSaturday     = "Saturday"
	ColumnAwardLegacy  = "2025 Award Recipient"
	ColumnAward        = models.ColumnAward
	ColumnOrganization = models.ColumnOrganization
	ColumnExhibitTitle = models.ColumnExhibitTitle
)

var requiredRoomColumns = []string{
	ColumnBuilding,
	ColumnRoom,
	ColumnFriday,
	ColumnSaturday,
	ColumnOrganization,
	ColumnExhibitTitle,
}

// MigrateRoomColumns renames the prior year's award column to Award when
// the sheet has no Award column. It reports whether a rename happened.
func MigrateRoomColumns(t *models.Table) bool {
	if t.Has(ColumnAward) {
		return false
	}
	return t.Rename(ColumnAwardLegacy, ColumnAward)
}

// DecodeRooms migrates and decodes the room sheet, deriving each record's
// booklet location and day warning. Award is optional; every other room
// column is required.
func DecodeRooms(t *models.Table) (*models.RoomSet, error) {
	MigrateRoomColumns(t)

	idx := make(map[string]int, len(requiredRoomColumns))
	for _, name := range requiredRoomColumns {
		i := t.Index(name)
		if i < 0 {
			return nil, missingColumn(name)
		}
		idx[name] = i
	}
	award := t.Index(ColumnAward)

	set := &models.RoomSet{
		HasAward: award >= 0,
		Records:  make([]models.RoomRecord, 0, len(t.Rows)),
	}
	for _, row := range t.Rows {
		rec := models.RoomRecord{
			Building:     cell(row, idx[ColumnBuilding]),
			Room:         cell(row, idx[ColumnRoom]),
			Friday:       cell(row, idx[ColumnFriday]),
			Saturday:     cell(row, idx[ColumnSaturday]),
			Organization: cell(row, idx[ColumnOrganization]),
			ExhibitTitle: cell(row, idx[ColumnExhibitTitle]),
		}
		if award >= 0 {
			rec.Award = cell(row, award)
		}
		rec.BookletLocation = rules.Locate(rec.Building, rec.Room)
		rec.DayWarning = rules.DayWarning(rec.Friday, rec.Saturday)
		set.Records = append(set.Records, rec)
	}
	return set, nil
}

// DecodeExhibits projects the exhibit sheet to its title and description.
func DecodeExhibits(t *models.Table, titleColumn, descriptionColumn string) ([]models.ExhibitRecord, error) {
	title := t.Index(titleColumn)
	if title < 0 {
		return nil, missingColumn(titleColumn)
	}
	desc := t.Index(descriptionColumn)
	if desc < 0 {
		return nil, missingColumn(descriptionColumn)
	}

	exhibits := make([]models.ExhibitRecord, len(t.Rows))
	for i, row := range t.Rows {
		exhibits[i] = models.ExhibitRecord{
			Title:       cell(row, title),
			Description: cell(row, desc),
		}
	}
	return exhibits, nil
}

// cell returns row[i], or "" when row is shorter than the header.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
