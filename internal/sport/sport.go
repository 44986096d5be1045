// Package sport holds the fixed catalog of sports-day events.
package sport

// Sport describes one event of the sports day.
type Sport struct {
	// Name is the identifier used in URLs and API paths (e.g. "kho_kho").
	Name string
	// Label is the human readable name.
	Label string
	// Icon is shown on sport cards.
	Icon string
}

const (
	Cricket          = "cricket"
	Throwball        = "throwball"
	KhoKho           = "kho_kho"
	BadmintonDoubles = "badminton_doubles"
	Relay            = "relay"
	TugOfWar         = "tug_of_war"
)

var catalog = []Sport{
	{Name: Cricket, Label: "Cricket", Icon: "🏏"},
	{Name: Throwball, Label: "Throwball", Icon: "⚡"},
	{Name: KhoKho, Label: "Kho-Kho", Icon: "🏃"},
	{Name: BadmintonDoubles, Label: "Badminton Doubles", Icon: "🏸"},
	{Name: Relay, Label: "Relay", Icon: "🏃‍♂️"},
	{Name: TugOfWar, Label: "Tug of War", Icon: "💪"},
}

// All returns the catalog in display order.
func All() []Sport {
	out := make([]Sport, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a sport by name.
func Lookup(name string) (Sport, bool) {
	for _, s := range catalog {
		if s.Name == name {
			return s, true
		}
	}
	return Sport{}, false
}

// Label returns the label for name, or name itself when unknown.
func Label(name string) string {
	if s, ok := Lookup(name); ok {
		return s.Label
	}
	return name
}
