package hexwin

import "strings"

// Team is one of the two colors that can win.
type Team uint8

const (
	TeamNone Team = iota
	TeamRed
	TeamGreen
)

// String returns "red", "green", or "" for TeamNone.
func (t Team) String() string {
	switch t {
	case TeamRed:
		return "red"
	case TeamGreen:
		return "green"
	default:
		return ""
	}
}

// ParseTeam converts "red" or "green" (any case) to a Team.
func ParseTeam(s string) (Team, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red":
		return TeamRed, true
	case "green":
		return TeamGreen, true
	default:
		return TeamNone, false
	}
}

// Palette holds the two target colors. Hosts may retheme freely;
// values are normalized before comparison.
type Palette struct {
	Red   string
	Green string
}

// DefaultPalette returns the stock pink/green pair.
func DefaultPalette() Palette {
	return Palette{Red: "#ff4081", Green: "#81c784"}
}

// Color returns the normalized target color for a team.
func (p Palette) Color(t Team) string {
	switch t {
	case TeamRed:
		return Normalize(p.Red)
	case TeamGreen:
		return Normalize(p.Green)
	default:
		return NoColor
	}
}

// Axis names the pair of lattice edges a team has to connect.
type Axis uint8

const (
	// AxisTopBottom joins row 0 to the last row.
	AxisTopBottom Axis = iota
	// AxisLeftRight joins column 0 to the last column of any row.
	AxisLeftRight
)

// String returns the config spelling of the axis.
func (a Axis) String() string {
	if a == AxisLeftRight {
		return "left_right"
	}
	return "top_bottom"
}

// ParseAxis accepts "top_bottom" or "left_right" (also with dashes).
func ParseAxis(s string) (Axis, bool) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case "top_bottom", "":
		return AxisTopBottom, true
	case "left_right":
		return AxisLeftRight, true
	default:
		return AxisTopBottom, false
	}
}
