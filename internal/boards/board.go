// Package boards reads hex board snapshots from YAML files so that
// positions can be checked for a winner without running the game.
package boards

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/hexletters/internal/hexwin"
)

// Cell shorthands accepted in rows besides raw colors.
const (
	AbsentMark  = "-" // No cell in this slot
	RedMark     = "R" // The board's red
	GreenMark   = "G" // The board's green
	NeutralMark = "." // Untouched background
)

// ErrEmptyBoard is returned for files without rows.
var ErrEmptyBoard = errors.New("boards: board has no rows")

// yamlBoard represents the YAML structure for a board file.
type yamlBoard struct {
	ID      string      `yaml:"id"`
	Name    string      `yaml:"name"`
	Palette yamlPalette `yaml:"palette"`
	Axes    yamlAxes    `yaml:"axes"`
	Expect  string      `yaml:"expect,omitempty"`
	Rows    [][]string  `yaml:"rows"`
}

type yamlPalette struct {
	Red   string `yaml:"red"`
	Green string `yaml:"green"`
}

type yamlAxes struct {
	Red   string `yaml:"red"`
	Green string `yaml:"green"`
}

// Board is a parsed snapshot ready for win detection.
type Board struct {
	ID        string
	Name      string
	Palette   hexwin.Palette
	RedAxis   hexwin.Axis
	GreenAxis hexwin.Axis
	// Expect is the winner the file claims, if it says: "red", "green" or "none".
	Expect   string
	Rows     [][]string
	FilePath string
}

// Parse decodes a YAML board.
// Missing palette colors fall back to the default palette and missing axes to top_bottom.
func Parse(data []byte) (Board, error) {
	var yb yamlBoard
	if err := yaml.Unmarshal(data, &yb); err != nil {
		return Board{}, fmt.Errorf("boards: yaml unmarshal: %w", err)
	}
	if len(yb.Rows) == 0 {
		return Board{}, ErrEmptyBoard
	}

	palette := hexwin.DefaultPalette()
	if yb.Palette.Red != "" {
		palette.Red = yb.Palette.Red
	}
	if yb.Palette.Green != "" {
		palette.Green = yb.Palette.Green
	}

	redAxis, ok := hexwin.ParseAxis(yb.Axes.Red)
	if !ok {
		return Board{}, fmt.Errorf("boards: unknown red axis %q", yb.Axes.Red)
	}
	greenAxis, ok := hexwin.ParseAxis(yb.Axes.Green)
	if !ok {
		return Board{}, fmt.Errorf("boards: unknown green axis %q", yb.Axes.Green)
	}

	expect := strings.ToLower(strings.TrimSpace(yb.Expect))
	switch expect {
	case "", "none", "red", "green":
	default:
		return Board{}, fmt.Errorf("boards: expect must be red, green or none, got %q", yb.Expect)
	}

	return Board{
		ID:        yb.ID,
		Name:      yb.Name,
		Palette:   palette,
		RedAxis:   redAxis,
		GreenAxis: greenAxis,
		Expect:    expect,
		Rows:      yb.Rows,
	}, nil
}

// Lattice returns the board topology. "-" slots are absent.
func (b Board) Lattice() *hexwin.Lattice {
	mask := make([][]bool, len(b.Rows))
	for r, row := range b.Rows {
		mask[r] = make([]bool, len(row))
		for c, v := range row {
			mask[r][c] = strings.TrimSpace(v) != AbsentMark
		}
	}
	return hexwin.NewLattice(mask)
}

// Snapshot normalizes the board's cells, expanding the shorthands.
func (b Board) Snapshot() hexwin.Snapshot {
	return hexwin.Capture(b.Lattice(), func(c hexwin.Coord) (string, bool) {
		return b.raw(b.Rows[c.Row][c.Col]), true
	})
}

func (b Board) raw(v string) string {
	switch strings.TrimSpace(v) {
	case RedMark:
		return b.Palette.Red
	case GreenMark:
		return b.Palette.Green
	case NeutralMark:
		return ""
	default:
		return v
	}
}

// Detector builds a detector for the board's palette and axes.
func (b Board) Detector() *hexwin.Detector {
	return hexwin.NewDetector(b.Lattice(), b.Palette,
		hexwin.WithRedAxis(b.RedAxis), hexwin.WithGreenAxis(b.GreenAxis))
}

// Check runs the detector on the board.
func (b Board) Check() hexwin.Result {
	return b.Detector().CheckWin(b.Snapshot())
}

// Matches reports whether res agrees with Expect. Boards without Expect always match.
func (b Board) Matches(res hexwin.Result) bool {
	switch b.Expect {
	case "":
		return true
	case "none":
		return !res.HasWon
	default:
		return res.HasWon && res.WinColor.String() == b.Expect
	}
}
