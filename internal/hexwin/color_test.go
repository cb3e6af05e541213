package hexwin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"hex uppercase", "#AABBCC", "#aabbcc"},
		{"hex already canonical", "#ff4081", "#ff4081"},
		{"hex with spaces", "  #81C784 ", "#81c784"},
		{"rgb triplet", "rgb(255, 0, 128)", "#ff0080"},
		{"rgb without spaces", "rgb(129,199,132)", "#81c784"},
		{"rgba keeps first three", "rgba(255, 64, 129, 0.5)", "#ff4081"},
		{"uppercase RGB", "RGB(0, 0, 0)", "#000000"},
		{"bare triplet", "255,0,128", "#ff0080"},
		{"bare triplet with spaces", "1 2 3", "#010203"},
		{"channel clamped", "rgb(300, 256, 999)", "#ffffff"},
		{"huge channel clamped", "rgb(99999999999999999999, 0, 0)", "#ff0000"},
		{"empty", "", Neutral},
		{"whitespace only", "   ", Neutral},
		{"garbage", "not-a-color", NoColor},
		{"named color", "red", NoColor},
		{"short rgb", "rgb(10, 20)", NoColor},
		{"rgb without numbers", "rgb()", NoColor},
		{"two numbers only", "10,20", NoColor},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, in := range []string{"#AABBCC", "rgb(1, 2, 3)", "", "#ffffe0"} {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalizeNeverTarget(t *testing.T) {
	p := DefaultPalette()
	for _, in := range []string{"", "nope", "rgb(", "#", "12"} {
		got := Normalize(in)
		assert.NotEqual(t, p.Color(TeamRed), got, "input %q", in)
		assert.NotEqual(t, p.Color(TeamGreen), got, "input %q", in)
	}
}

func TestWinnable(t *testing.T) {
	assert.False(t, Winnable(NoColor))
	assert.False(t, Winnable(Neutral))
	assert.False(t, Winnable(Normalize("")))
	assert.True(t, Winnable(Normalize("#FF4081")))
}
