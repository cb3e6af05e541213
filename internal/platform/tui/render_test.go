package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/hexletters/internal/core"
)

func TestContrastColor(t *testing.T) {
	tests := []struct {
		bg   string
		want string
	}{
		{"#ffffe0", "#000000"}, // board background
		{"#81c784", "#000000"},
		{"#ffd700", "#000000"},
		{"#d32f2f", "#ffffff"},
		{"#0288d1", "#ffffff"},
		{"#000000", "#ffffff"},
		{"not a color", "#ffffff"},
	}
	for _, tt := range tests {
		if got := ContrastColor(tt.bg); got != tt.want {
			t.Errorf("ContrastColor(%q) = %q, want %q", tt.bg, got, tt.want)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "plain")
	s.DrawStyledText(6, 0, "hex", core.ColorDefault, "#ff4081")
	s.DrawStyledText(0, 1, "ب", core.ColorBrightYellow, "")

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	for _, want := range []string{"plain", "hex", "ب"} {
		if !strings.Contains(out, want) {
			t.Errorf("Rendered screen lost %q", want)
		}
	}
}
