package booklet

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/expobook-go/pkg/booklet/loader"
	"github.com/ukaji3/expobook-go/pkg/booklet/models"
	"github.com/ukaji3/expobook-go/pkg/booklet/parser"
	"github.com/ukaji3/expobook-go/pkg/booklet/rules"
)

const roomHeader = "Building,Room #,Friday,Saturday,Organization,Exhibit Title"

func mustParse(t *testing.T, csvText string) *models.Table {
	t.Helper()
	table, err := parser.ParseCSV(strings.NewReader(csvText), parser.NewNullSet(nil))
	require.NoError(t, err)
	return table
}

func exhibitCSV(rows ...[2]string) string {
	var sb strings.Builder
	sb.WriteString(`"` + DefaultExhibitTitleColumn + `","` + DefaultExhibitDescriptionColumn + `",Email` + "\n")
	for _, r := range rows {
		sb.WriteString(`"` + r[0] + `","` + r[1] + `",x@example.com` + "\n")
	}
	return sb.String()
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.Rooms.URL = ""
	opts.Exhibits.URL = ""
	return opts
}

func TestMigrateRoomColumns(t *testing.T) {
	t.Run("renames legacy award column", func(t *testing.T) {
		table := &models.Table{Columns: []string{"Building", "2025 Award Recipient"}}
		assert.True(t, MigrateRoomColumns(table))
		assert.Equal(t, []string{"Building", "Award"}, table.Columns)
	})

	t.Run("keeps existing award column", func(t *testing.T) {
		table := &models.Table{Columns: []string{"Award", "2025 Award Recipient"}}
		assert.False(t, MigrateRoomColumns(table))
		assert.Equal(t, []string{"Award", "2025 Award Recipient"}, table.Columns)
	})

	t.Run("no award column at all", func(t *testing.T) {
		table := &models.Table{Columns: []string{"Building"}}
		assert.False(t, MigrateRoomColumns(table))
	})
}

func TestDecodeRooms(t *testing.T) {
	table := mustParse(t, "2025 Award Recipient,"+roomHeader+",Notes\n"+
		"Best in Show,E Hall,Lobby Table 2,TRUE,FALSE,Robotics Club,Line Follower,n\n"+
		",ME,215,yes,yes,Chem Society,Color Change,\n")

	set, err := DecodeRooms(table)
	require.NoError(t, err)
	require.True(t, set.HasAward)
	require.Len(t, set.Records, 2)

	assert.Equal(t, "Best in Show", set.Records[0].Award)
	assert.Equal(t, "E Hall | Lobby", set.Records[0].BookletLocation)
	assert.Equal(t, rules.FridayOnly, set.Records[0].DayWarning)
	assert.Equal(t, "ME | Floor 2", set.Records[1].BookletLocation)
	assert.Equal(t, "", set.Records[1].DayWarning)
}

func TestDecodeRoomsMissingColumn(t *testing.T) {
	for _, col := range requiredRoomColumns {
		cols := strings.Split(roomHeader, ",")
		header := make([]string, 0, len(cols))
		for _, c := range cols {
			if c != col {
				header = append(header, c)
			}
		}
		_, err := DecodeRooms(&models.Table{Columns: header})
		assert.ErrorIs(t, err, ErrMissingColumn, "without %q", col)
	}

	set, err := DecodeRooms(mustParse(t, roomHeader+"\n"))
	require.NoError(t, err)
	assert.False(t, set.HasAward, "Award is optional")
}

func TestDecodeShortRows(t *testing.T) {
	rooms := &models.Table{
		Columns: append(strings.Split(roomHeader, ","), ColumnAward),
		Rows: [][]string{
			{"ME", "Lobby"},
			{},
		},
	}
	set, err := DecodeRooms(rooms)
	require.NoError(t, err)
	require.Len(t, set.Records, 2)
	assert.Equal(t, "ME | Lobby", set.Records[0].BookletLocation)
	assert.Equal(t, "", set.Records[0].Organization)
	assert.Equal(t, "", set.Records[0].Award)
	assert.Equal(t, " | ", set.Records[1].BookletLocation)

	exhibits := &models.Table{
		Columns: []string{DefaultExhibitTitleColumn, DefaultExhibitDescriptionColumn},
		Rows:    [][]string{{"Robots"}},
	}
	records, err := DecodeExhibits(exhibits, DefaultExhibitTitleColumn, DefaultExhibitDescriptionColumn)
	require.NoError(t, err)
	assert.Equal(t, []models.ExhibitRecord{{Title: "Robots"}}, records)
}

func TestBuildShortRowsFromStaticLoader(t *testing.T) {
	rooms := &models.Table{
		Columns: strings.Split(roomHeader, ","),
		Rows:    [][]string{{"E Hall", "110", "true", "false", "Robotics Club"}},
	}
	exhibits := &models.Table{
		Columns: []string{DefaultExhibitTitleColumn, DefaultExhibitDescriptionColumn},
	}

	b, err := Build(context.Background(), loader.StaticLoader{"rooms": rooms, "exhibits": exhibits}, testOptions(), nil)
	require.NoError(t, err)
	require.Len(t, b.Rows, 1)
	assert.Equal(t, "E Hall | Floor 1", b.Rows[0].BookletLocation)
	assert.Equal(t, DefaultMissingDescription, b.Rows[0].ExhibitDescription)
}

func TestDecodeExhibits(t *testing.T) {
	table := mustParse(t, exhibitCSV([2]string{"Robots", "Beep"}))
	exhibits, err := DecodeExhibits(table, DefaultExhibitTitleColumn, DefaultExhibitDescriptionColumn)
	require.NoError(t, err)
	assert.Equal(t, []models.ExhibitRecord{{Title: "Robots", Description: "Beep"}}, exhibits)

	_, err = DecodeExhibits(table, "Title", DefaultExhibitDescriptionColumn)
	assert.ErrorIs(t, err, ErrMissingColumn)
	_, err = DecodeExhibits(table, DefaultExhibitTitleColumn, "Description")
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestMerge(t *testing.T) {
	rooms := &models.RoomSet{Records: []models.RoomRecord{
		{Organization: "A", ExhibitTitle: "Robots", BookletLocation: "E Hall | Lobby"},
		{Organization: "B", ExhibitTitle: "Volcano", BookletLocation: "ME | Floor 1"},
		{Organization: "C", ExhibitTitle: "Twice", BookletLocation: "ME | Floor 2"},
		{Organization: "D", ExhibitTitle: "Blank", BookletLocation: "ME | Floor 2"},
		{Organization: "E", ExhibitTitle: "", BookletLocation: "ME | Floor 2"},
	}}
	exhibits := []models.ExhibitRecord{
		{Title: "Robots", Description: "Beep"},
		{Title: "Unplaced", Description: "No room"},
		{Title: "Twice", Description: "first"},
		{Title: "Twice", Description: "second"},
		{Title: "Blank", Description: ""},
		{Title: "", Description: "untitled"},
	}

	b := Merge(rooms, exhibits, DefaultMissingDescription)
	require.Len(t, b.Rows, 6)

	descs := make([]string, len(b.Rows))
	for i, r := range b.Rows {
		descs[i] = r.ExhibitDescription
		assert.NotEmpty(t, r.ExhibitDescription)
		assert.NotEmpty(t, r.BookletLocation)
	}
	assert.Equal(t, []string{
		"Beep",
		DefaultMissingDescription,
		"first",
		"second",
		DefaultMissingDescription,
		DefaultMissingDescription,
	}, descs)
	for _, r := range b.Rows {
		assert.NotEqual(t, "Unplaced", r.ExhibitTitle, "unmatched exhibits add no rows")
	}
}

func TestFilter(t *testing.T) {
	rows := []models.BookletRow{
		{Organization: "", ExhibitTitle: "a"},
		{Organization: "  ", ExhibitTitle: "b"},
		{Organization: "NaN", ExhibitTitle: "c"},
		{Organization: "Lunch Break", ExhibitTitle: "d"},
		{Organization: "ACME", ExhibitTitle: "ACME SPONSOR Booth"},
		{Organization: "Robotics Club", ExhibitTitle: "Line Follower"},
		{Organization: "Chem Society", ExhibitTitle: ""},
	}

	kept, dropped := Filter(rows, rules.Exclusions(rules.DefaultExcludeKeywords))
	require.Len(t, kept, 2)
	assert.Equal(t, "Robotics Club", kept[0].Organization)
	assert.Equal(t, "Chem Society", kept[1].Organization)
	assert.Equal(t, map[string]int{
		"blank-organization":   3,
		"organization-keyword": 1,
		"sponsor-title":        1,
	}, dropped)
}

func TestSort(t *testing.T) {
	rows := []models.BookletRow{
		{BookletLocation: "ECB | Floor 1", ExhibitTitle: "unlisted-1"},
		{BookletLocation: "ME | Floor 2", ExhibitTitle: "me2-first"},
		{BookletLocation: "ECB | Atrium", ExhibitTitle: "atrium"},
		{BookletLocation: "E Hall | Lobby", ExhibitTitle: "ehall-lobby"},
		{BookletLocation: "ME | Floor 2", ExhibitTitle: "me2-second"},
		{BookletLocation: "Annex | 9", ExhibitTitle: "unlisted-2"},
	}

	Sort(rows, rules.NewLocationOrder(rules.DefaultLocationOrder))

	titles := make([]string, len(rows))
	for i, r := range rows {
		titles[i] = r.ExhibitTitle
	}
	assert.Equal(t, []string{"ehall-lobby", "me2-first", "me2-second", "atrium", "unlisted-1", "unlisted-2"}, titles)
}

func TestBuild(t *testing.T) {
	rooms := mustParse(t, roomHeader+"\n"+
		"E Hall,Lobby,true,true,Robotics Club,Line Follower\n"+
		"ME,Hallway Table 12,true,false,Lunch Break,Pizza\n")
	exhibits := mustParse(t, exhibitCSV([2]string{"Line Follower", "A robot that follows a line."}))

	opts := testOptions()
	l := loader.StaticLoader{"rooms": rooms, "exhibits": exhibits}

	b, err := Build(context.Background(), l, opts, nil)
	require.NoError(t, err)
	assert.False(t, b.HasAward)
	require.Len(t, b.Rows, 1)
	assert.Equal(t, models.BookletRow{
		BookletLocation:    "E Hall | Lobby",
		Organization:       "Robotics Club",
		ExhibitTitle:       "Line Follower",
		ExhibitDescription: "A robot that follows a line.",
	}, b.Rows[0])
}

func TestBuildOrdersAndFills(t *testing.T) {
	rooms := mustParse(t, "Award,"+roomHeader+"\n"+
		",ECB,101,1,1,Physics Club,Pendulum\n"+
		"Gold,ME,Atrium,0,1,Bio Club,Cells\n"+
		",E Hall,205,yes,no,Math Club,Proofs\n"+
		",E Hall,Lobby Table 1,yes,yes,Sponsors,Banner\n"+
		",ME,210,true,true,Chem Club,ACME SPONSOR Booth\n")
	exhibits := mustParse(t, exhibitCSV(
		[2]string{"Proofs", "Geometry"},
		[2]string{"Ghost", "Never placed"},
	))

	b, err := Build(context.Background(), loader.StaticLoader{"rooms": rooms, "exhibits": exhibits}, testOptions(), nil)
	require.NoError(t, err)
	assert.True(t, b.HasAward)
	require.Len(t, b.Rows, 3)

	assert.Equal(t, "E Hall | Floor 2", b.Rows[0].BookletLocation)
	assert.Equal(t, "Geometry", b.Rows[0].ExhibitDescription)
	assert.Equal(t, rules.FridayOnly, b.Rows[0].DayWarning)

	assert.Equal(t, "ECB | Floor 1", b.Rows[1].BookletLocation)
	assert.Equal(t, DefaultMissingDescription, b.Rows[1].ExhibitDescription)

	assert.Equal(t, "ME | Atrium", b.Rows[2].BookletLocation)
	assert.Equal(t, "Gold", b.Rows[2].Award)
	assert.Equal(t, rules.SaturdayOnly, b.Rows[2].DayWarning)
}

func TestBuildErrors(t *testing.T) {
	rooms := mustParse(t, roomHeader+"\n")
	exhibits := mustParse(t, exhibitCSV())

	t.Run("load", func(t *testing.T) {
		_, err := Build(context.Background(), loader.StaticLoader{"rooms": rooms}, testOptions(), nil)
		var stageErr *StageError
		require.True(t, errors.As(err, &stageErr))
		assert.Equal(t, "load", stageErr.Stage)
		assert.Equal(t, "exhibits", stageErr.Table)
		assert.ErrorIs(t, err, loader.ErrUnknownSource)
	})

	t.Run("decode", func(t *testing.T) {
		bad := mustParse(t, "Building,Room #\n")
		_, err := Build(context.Background(), loader.StaticLoader{"rooms": bad, "exhibits": exhibits}, testOptions(), nil)
		var stageErr *StageError
		require.True(t, errors.As(err, &stageErr))
		assert.Equal(t, "decode", stageErr.Stage)
		assert.Equal(t, "rooms", stageErr.Table)
		assert.ErrorIs(t, err, ErrMissingColumn)
		assert.Contains(t, err.Error(), "decode rooms: missing required column")
	})
}
