package config

import (
	_ "embed"
)

//go:embed defaults/hexletters.yaml
var defaultHexYAML []byte

// DefaultHexConfig returns the built-in configuration.
// It matches defaults/hexletters.yaml and is used when the embedded file cannot be parsed.
func DefaultHexConfig() HexConfig {
	return HexConfig{
		Board: BoardConfig{
			Layout: [][]string{
				{"", "", "", "", "", "", ""},
				{"", "أ", "ب", "ت", "ث", "ج", ""},
				{"", "ح", "خ", "د", "ذ", "ر", ""},
				{"", "ز", "س", "ش", "ص", "ض", ""},
				{"", "ط", "ظ", "ع", "غ", "ف", ""},
				{"", "ق", "ك", "ل", "م", "ن", ""},
				{"", "", "", "", "", "ه", ""},
			},
			Letters: []string{
				"أ", "ب", "ت", "ث", "ج", "ح", "خ", "د", "ذ", "ر", "ز", "س",
				"ش", "ص", "ض", "ط", "ظ", "ع", "غ", "ف", "ق", "ك", "ل", "م",
				"ن", "ه", "و", "ي",
			},
		},
		Palettes: []PaletteConfig{
			{Red: "#ff4081", Green: "#81c784"},
			{Red: "#f8bbd0", Green: "#4dd0e1"},
			{Red: "#d32f2f", Green: "#0288d1"},
			{Red: "#ff5722", Green: "#388e3c"},
		},
		Colors: ColorsConfig{
			Default: "#ffffe0",
			Marker:  "#ffa500",
		},
		Rules: RulesConfig{
			RedAxis:   "top_bottom",
			GreenAxis: "left_right",
		},
		Party: PartyConfig{
			Text:            "مبروك",
			DurationMS:      5000,
			IntervalMS:      300,
			FlashDurationMS: 1000,
			FlashCount:      5,
			FlashColors:     []string{"#ffd700", "#ff4500", "#00ff00"},
			TextColor:       "#ffd700",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultHexYAML
}
