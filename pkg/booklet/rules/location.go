// Package rules holds the named rule tables that shape booklet rows:
// location normalization, day warnings, row exclusion and location order.
package rules

import (
	"regexp"
	"strings"
)

// LocationRule maps a trimmed building and room to a booklet location.
// Match reports false when the rule does not apply.
type LocationRule struct {
	Name  string
	Match func(building, room string) (string, bool)
}

var tablePattern = regexp.MustCompile(`(?i)^(.*?)\s*Table\s*[\d\-]+`)

// LocationRules are evaluated in order; the first match wins.
var LocationRules = []LocationRule{
	{Name: "lobby", Match: containsArea("lobby", "Lobby")},
	{Name: "atrium", Match: containsArea("atrium", "Atrium")},
	{Name: "table", Match: matchTable},
	{Name: "floor-1", Match: leadingDigit('1', "Floor 1")},
	{Name: "floor-2", Match: leadingDigit('2', "Floor 2")},
}

// FallbackRule is the name reported when no rule matched.
const FallbackRule = "room"

// Locate returns the booklet location for a building and room.
func Locate(building, room string) string {
	loc, _ := LocateRule(building, room)
	return loc
}

// LocateRule returns the booklet location and the name of the rule that
// produced it.
func LocateRule(building, room string) (string, string) {
	building = strings.TrimSpace(building)
	room = strings.TrimSpace(room)

	for _, rule := range LocationRules {
		if loc, ok := rule.Match(building, room); ok {
			return loc, rule.Name
		}
	}
	return join(building, room), FallbackRule
}

func join(building, area string) string {
	return building + " | " + area
}

func containsArea(keyword, area string) func(string, string) (string, bool) {
	return func(building, room string) (string, bool) {
		if strings.Contains(strings.ToLower(room), keyword) {
			return join(building, area), true
		}
		return "", false
	}
}

// matchTable strips a "Table N" or "Table N-M" suffix and keeps the area
// name before it. A bare table number is placed in the lobby.
func matchTable(building, room string) (string, bool) {
	m := tablePattern.FindStringSubmatch(room)
	if m == nil {
		return "", false
	}
	if area := strings.Trim(m[1], " |,"); area != "" {
		return join(building, area), true
	}
	return join(building, "Lobby"), true
}

func leadingDigit(digit byte, area string) func(string, string) (string, bool) {
	return func(building, room string) (string, bool) {
		if room != "" && room[0] == digit {
			return join(building, area), true
		}
		return "", false
	}
}
