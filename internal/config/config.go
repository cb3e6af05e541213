// Package config provides YAML-based configuration loading for the
// hexletters board: layout, letters, palettes, rules and celebration timing.
package config

// HexConfig contains all configuration for the hex letters game.
type HexConfig struct {
	Board    BoardConfig     `yaml:"board"`
	Palettes []PaletteConfig `yaml:"palettes"`
	Colors   ColorsConfig    `yaml:"colors"`
	Rules    RulesConfig     `yaml:"rules"`
	Party    PartyConfig     `yaml:"party"`
}

// BoardConfig defines the lattice and the letter pool.
type BoardConfig struct {
	// Layout lists the rows of the board. Border slots hold "" and become
	// fixed team cells; interior slots hold a letter, or "" for no cell.
	Layout [][]string `yaml:"layout"`
	// Letters is the pool dealt into changeable cells on every shuffle.
	Letters []string `yaml:"letters"`
}

// PaletteConfig is one red/green color set.
type PaletteConfig struct {
	Red   string `yaml:"red"`
	Green string `yaml:"green"`
}

// ColorsConfig holds the non-team colors of the cycle.
type ColorsConfig struct {
	Default string `yaml:"default"` // Background of untouched cells
	Marker  string `yaml:"marker"`  // Second step of the cycle (orange)
}

// RulesConfig names the edges each team connects while colors are not swapped.
type RulesConfig struct {
	RedAxis   string `yaml:"red_axis"`
	GreenAxis string `yaml:"green_axis"`
}

// PartyConfig controls the win celebration.
type PartyConfig struct {
	Text            string   `yaml:"text"`
	DurationMS      int      `yaml:"duration_ms"`
	IntervalMS      int      `yaml:"interval_ms"`
	FlashDurationMS int      `yaml:"flash_duration_ms"`
	FlashCount      int      `yaml:"flash_count"`
	FlashColors     []string `yaml:"flash_colors"`
	TextColor       string   `yaml:"text_color"`
}
