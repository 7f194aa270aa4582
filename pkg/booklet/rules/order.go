package rules

// DefaultLocationOrder is the print order of booklet sections.
var DefaultLocationOrder = []string{
	"E Hall | Lobby",
	"E Hall | Floor 1",
	"E Hall | Floor 2",
	"ME | Lobby",
	"ME | Floor 1",
	"ME | Floor 2",
	"ECB | Atrium",
}

// LocationOrder ranks booklet locations by a fixed list.
type LocationOrder struct {
	rank map[string]int
	last int
}

// NewLocationOrder builds a LocationOrder. Repeated entries keep their
// first position.
func NewLocationOrder(locations []string) LocationOrder {
	rank := make(map[string]int, len(locations))
	for i, loc := range locations {
		if _, ok := rank[loc]; !ok {
			rank[loc] = i
		}
	}
	return LocationOrder{rank: rank, last: len(locations)}
}

// Key returns the position of loc in the list, or one past the end.
func (o LocationOrder) Key(loc string) int {
	if i, ok := o.rank[loc]; ok {
		return i
	}
	return o.last
}
