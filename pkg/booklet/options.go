// Package booklet assembles the expo booklet dataset from room assignments
// and exhibit submissions.
package booklet

import (
	"time"

	"github.com/ukaji3/expobook-go/pkg/booklet/loader"
	"github.com/ukaji3/expobook-go/pkg/booklet/rules"
)

// Published sheet exports.
const (
	DefaultRoomsURL = "https://docs.google.com/spreadsheets/d/e/" +
		"2PACX-1vRU55NCazcagM1ugIwGa-oTuqATCc-Ilye0P8AnoPXZFeEMuvO9B6r51Uxh8ktLiRiDCR-q_O-7TQ-F" +
		"/pub?gid=920592641&single=true&output=csv"
	DefaultExhibitsURL = "https://docs.google.com/spreadsheets/d/e/" +
		"2PACX-1vTlzXK2SdVT1gPIO5pPNaGx1T9uAoCsXKszEin1ZrmS7w2NmcxXbKgAynkYEvrPy15Gol7xwfKcWyrl" +
		"/pub?output=csv"

	DefaultRoomsFallback    = "_For_Ben__Copy_of_Master_Spreadsheet_2026_-_Room_Assignments.csv"
	DefaultExhibitsFallback = "Copy_of_EXPO_2026_-_Student_Exhibits__Responses__-_Form_Responses_1.csv"
)

// Exhibit form question columns.
const (
	DefaultExhibitTitleColumn = "Exhibit Title: The title that will be displayed and used to refer to your exhibit"

	DefaultExhibitDescriptionColumn = "Exhibit Description: Short description of what your exhibit will be/do. " +
		"Note the highlights of your exhibit and how you will present it. " +
		"This description will be used and made publicly available when describing your exhibit. " +
		"(Note: NO SLIME ALLOWED)"
)

const (
	// DefaultMissingDescription fills exhibits without a submitted description.
	DefaultMissingDescription = "No exhibit description - attention needed"
	// DefaultOutputPath is where the booklet CSV is written.
	DefaultOutputPath = "expo_booklet_data.csv"
	// DefaultTimeout bounds each sheet fetch.
	DefaultTimeout = 10 * time.Second
	// DefaultPreviewRows is the number of rows echoed after saving.
	DefaultPreviewRows = 10
)

// Options configures booklet assembly.
type Options struct {
	// Rooms is the room assignment sheet.
	Rooms loader.Source
	// Exhibits is the exhibit submission sheet.
	Exhibits loader.Source
	// ExhibitTitleColumn names the exhibit title column in Exhibits.
	ExhibitTitleColumn string
	// ExhibitDescriptionColumn names the exhibit description column in Exhibits.
	ExhibitDescriptionColumn string
	// MissingDescription replaces empty or unmatched descriptions.
	MissingDescription string
	// ExcludeKeywords drop rows whose organization contains any of them.
	ExcludeKeywords []string
	// LocationOrder is the print order of booklet locations.
	LocationOrder []string
	// NullTokens are cell texts read as missing. If nil, parser defaults apply.
	NullTokens []string
	// Timeout bounds each network fetch.
	Timeout time.Duration
	// Offline reads fallback files without fetching.
	Offline bool
	// OutputPath is the booklet CSV path.
	OutputPath string
	// XLSXPath, if set, also writes the booklet as a workbook.
	XLSXPath string
	// PreviewRows is the number of rows printed after saving.
	PreviewRows int
}

// DefaultOptions returns the options for the 2026 expo sheets.
func DefaultOptions() Options {
	return Options{
		Rooms: loader.Source{
			Name:     "rooms",
			URL:      DefaultRoomsURL,
			Fallback: DefaultRoomsFallback,
		},
		Exhibits: loader.Source{
			Name:     "exhibits",
			URL:      DefaultExhibitsURL,
			Fallback: DefaultExhibitsFallback,
		},
		ExhibitTitleColumn:       DefaultExhibitTitleColumn,
		ExhibitDescriptionColumn: DefaultExhibitDescriptionColumn,
		MissingDescription:       DefaultMissingDescription,
		ExcludeKeywords:          append([]string(nil), rules.DefaultExcludeKeywords...),
		LocationOrder:            append([]string(nil), rules.DefaultLocationOrder...),
		Timeout:                  DefaultTimeout,
		OutputPath:               DefaultOutputPath,
		PreviewRows:              DefaultPreviewRows,
	}
}

// LoaderConfig returns the loader settings implied by the options.
func (o Options) LoaderConfig() loader.Config {
	return loader.Config{
		Timeout:    o.Timeout,
		NullTokens: o.NullTokens,
		Offline:    o.Offline,
	}
}
