package template

// Template is a care profile describing how a kind of egg should be
// incubated. The range and cycle fields are stored as display strings
// ("37.5-38°C", "2 giờ"); edit forms work on the parsed numeric values.
type Template struct {
	ID          string
	Name        string
	Icon        string
	Temperature string
	Humidity    string
	Duration    string
	TurnCycle   string
	Users       int
	Sessions    int
	SuccessRate int
}

// Icons is the fixed set of glyphs a template may use.
var Icons = []string{"🐔", "🦆", "🦢", "🐦", "🦤", "🦜", "🦅", "🦉", "🐧"}

// ValidIcon reports whether the glyph belongs to the allowed set.
func ValidIcon(icon string) bool {
	for _, i := range Icons {
		if i == icon {
			return true
		}
	}
	return false
}
