package hexwin

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// Neutral is the board background. Empty cells normalize to it and it
	// never satisfies a win.
	Neutral = "#ffffe0"

	// NoColor marks input whose color could not be determined.
	NoColor = ""
)

var (
	channelPattern = regexp.MustCompile(`\d+`)
	bareTriplet    = regexp.MustCompile(`^\(?\s*\d+\D+\d+\D+\d+\s*\)?$`)
)

// Normalize converts a raw color value into canonical lowercase "#rrggbb" form.
//
// Empty input becomes Neutral. Input starting with '#' is lowercased as is.
// Triplet input ("rgb(255, 0, 128)", "rgba(...)" or a bare "255,0,128") takes
// its first three decimal numbers, clamped to 255. Everything else, including
// a triplet with fewer than three numbers, becomes NoColor.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case s == "":
		return Neutral
	case strings.HasPrefix(s, "#"):
		return s
	case strings.HasPrefix(s, "rgb") || bareTriplet.MatchString(s):
		return fromTriplet(s)
	default:
		return NoColor
	}
}

// Winnable reports whether a normalized color can be a win target.
// NoColor and Neutral never can.
func Winnable(normalized string) bool {
	return normalized != NoColor && normalized != Neutral
}

func fromTriplet(s string) string {
	nums := channelPattern.FindAllString(s, 3)
	if len(nums) < 3 {
		return NoColor
	}
	c := colorful.Color{
		R: float64(channel(nums[0])) / 255.0,
		G: float64(channel(nums[1])) / 255.0,
		B: float64(channel(nums[2])) / 255.0,
	}
	return c.Hex()
}

// channel parses one decimal channel and clamps it to a byte.
func channel(digits string) uint8 {
	n, err := strconv.Atoi(digits)
	if err != nil || n > 255 {
		// only overflow can fail here since the pattern matched digits
		return 255
	}
	return uint8(n)
}
