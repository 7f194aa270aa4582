package models

// RoomRecord represents one row of the room assignment sheet.
type RoomRecord struct {
	// Building is the building code (e.g., "E Hall", "ME", "ECB").
	Building string `json:"building"`
	// Room is the raw "Room #" text (e.g., "110", "Lobby Table 4").
	Room string `json:"room"`
	// Friday is the raw Friday attendance flag.
	Friday string `json:"friday"`
	// Saturday is the raw Saturday attendance flag.
	Saturday string `json:"saturday"`
	// Award is the award text; empty when the sheet has no award column.
	Award string `json:"award,omitempty"`
	// Organization is the exhibiting organization.
	Organization string `json:"organization"`
	// ExhibitTitle is the join key against exhibit submissions.
	ExhibitTitle string `json:"exhibit_title"`
	// BookletLocation is the derived "{Building} | {Area}" string.
	BookletLocation string `json:"booklet_location"`
	// DayWarning is "Friday Only", "Saturday Only" or empty.
	DayWarning string `json:"day_warning"`
}

// RoomSet is the decoded room sheet.
type RoomSet struct {
	// HasAward reports whether the sheet carried an award column.
	HasAward bool `json:"has_award"`
	// Records holds one record per sheet row, in sheet order.
	Records []RoomRecord `json:"records"`
}
