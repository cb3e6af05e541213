package config

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/hexletters/internal/hexwin"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the config describes a playable board.
func (c HexConfig) Validate() error {
	if err := c.Board.validate(); err != nil {
		return err
	}
	if len(c.Palettes) == 0 {
		return invalid("palettes: at least one palette is required")
	}
	for i, p := range c.Palettes {
		if err := checkColor(fmt.Sprintf("palettes[%d].red", i), p.Red); err != nil {
			return err
		}
		if err := checkColor(fmt.Sprintf("palettes[%d].green", i), p.Green); err != nil {
			return err
		}
		if hexwin.Normalize(p.Red) == hexwin.Normalize(p.Green) {
			return invalid("palettes[%d]: red and green must differ", i)
		}
	}
	if err := checkColor("colors.default", c.Colors.Default); err != nil {
		return err
	}
	if err := checkColor("colors.marker", c.Colors.Marker); err != nil {
		return err
	}
	// Team colors must not appear anywhere else in the cycle.
	reserved := map[string]string{
		hexwin.Normalize(c.Colors.Default): "colors.default",
		hexwin.Normalize(c.Colors.Marker):  "colors.marker",
		hexwin.Neutral:                     "the board background",
	}
	for i, p := range c.Palettes {
		for team, color := range map[string]string{"red": p.Red, "green": p.Green} {
			if field, ok := reserved[hexwin.Normalize(color)]; ok {
				return invalid("palettes[%d].%s: %s is already used by %s", i, team, color, field)
			}
		}
	}
	if _, ok := hexwin.ParseAxis(c.Rules.RedAxis); !ok {
		return invalid("rules.red_axis: unknown axis %q", c.Rules.RedAxis)
	}
	if _, ok := hexwin.ParseAxis(c.Rules.GreenAxis); !ok {
		return invalid("rules.green_axis: unknown axis %q", c.Rules.GreenAxis)
	}
	return c.Party.validate()
}

func (b BoardConfig) validate() error {
	if len(b.Layout) < 3 {
		return invalid("board.layout: need at least 3 rows, got %d", len(b.Layout))
	}
	changeable := 0
	for r, row := range b.Layout {
		if len(row) < 3 {
			return invalid("board.layout[%d]: need at least 3 columns, got %d", r, len(row))
		}
		if r == 0 || r == len(b.Layout)-1 {
			continue
		}
		for col := 1; col < len(row)-1; col++ {
			if row[col] != "" {
				changeable++
			}
		}
	}
	seen := make(map[string]bool, len(b.Letters))
	for _, l := range b.Letters {
		if l == "" {
			return invalid("board.letters: empty letter")
		}
		if seen[l] {
			return invalid("board.letters: duplicate letter %q", l)
		}
		seen[l] = true
	}
	if len(b.Letters) < changeable {
		return invalid("board.letters: %d letters for %d cells", len(b.Letters), changeable)
	}
	return nil
}

func (p PartyConfig) validate() error {
	if p.DurationMS <= 0 || p.IntervalMS <= 0 || p.FlashDurationMS <= 0 {
		return invalid("party: durations must be positive")
	}
	if p.FlashCount < 0 {
		return invalid("party.flash_count: must not be negative")
	}
	if p.FlashCount > 0 && len(p.FlashColors) == 0 {
		return invalid("party.flash_colors: required when flash_count > 0")
	}
	for i, fc := range p.FlashColors {
		if err := checkColor(fmt.Sprintf("party.flash_colors[%d]", i), fc); err != nil {
			return err
		}
	}
	return checkColor("party.text_color", p.TextColor)
}

func checkColor(field, value string) error {
	if _, err := colorful.Hex(value); err != nil {
		return invalid("%s: %q is not a #rrggbb color", field, value)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
