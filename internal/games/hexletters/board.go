package hexletters

import (
	"math/rand"

	"github.com/vovakirdan/hexletters/internal/hexwin"
)

// Role is what a board slot does.
type Role int

const (
	RoleAbsent     Role = iota // No cell in this slot
	RoleRedFixed               // Top/bottom border, red unless swapped
	RoleGreenFixed             // Left/right border and corners, green unless swapped
	RoleChangeable             // Interior letter cell the players color
)

// CycleLen is the number of steps in a changeable cell's color cycle:
// default, marker, red, green, default.
const CycleLen = 5

// Cell is one board slot.
type Cell struct {
	Role   Role
	Letter string
	Clicks int // Position in the color cycle, 0..CycleLen-1
}

// Board holds the slots of a hex letters board and its lattice.
type Board struct {
	cells      [][]Cell
	lattice    *hexwin.Lattice
	changeable []hexwin.Coord // Row-major
}

// NewBoard builds a board from a layout.
// The first and last rows are red borders with green corners, the first and
// last columns are green borders, and interior slots hold a letter cell
// when the layout has a letter there.
func NewBoard(layout [][]string) *Board {
	b := &Board{cells: make([][]Cell, len(layout))}
	mask := make([][]bool, len(layout))
	last := len(layout) - 1

	for r, row := range layout {
		b.cells[r] = make([]Cell, len(row))
		mask[r] = make([]bool, len(row))
		for c, letter := range row {
			role := slotRole(r, c, last, len(row)-1, letter)
			b.cells[r][c] = Cell{Role: role}
			mask[r][c] = role != RoleAbsent
			if role == RoleChangeable {
				b.cells[r][c].Letter = letter
				b.changeable = append(b.changeable, hexwin.At(r, c))
			}
		}
	}
	b.lattice = hexwin.NewLattice(mask)
	return b
}

func slotRole(r, c, lastRow, lastCol int, letter string) Role {
	switch {
	case r == 0 || r == lastRow:
		if c == 0 || c == lastCol {
			return RoleGreenFixed
		}
		return RoleRedFixed
	case c == 0 || c == lastCol:
		return RoleGreenFixed
	case letter != "":
		return RoleChangeable
	default:
		return RoleAbsent
	}
}

// Lattice returns the board topology.
func (b *Board) Lattice() *hexwin.Lattice {
	return b.lattice
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return len(b.cells)
}

// Width returns the number of slots in row r.
func (b *Board) Width(r int) int {
	if r < 0 || r >= len(b.cells) {
		return 0
	}
	return len(b.cells[r])
}

// Cell returns the slot at c. Out-of-range coordinates report RoleAbsent.
func (b *Board) Cell(c hexwin.Coord) Cell {
	if !b.lattice.InBounds(c) {
		return Cell{}
	}
	return b.cells[c.Row][c.Col]
}

// Changeable returns the letter cells in row-major order.
func (b *Board) Changeable() []hexwin.Coord {
	out := make([]hexwin.Coord, len(b.changeable))
	copy(out, b.changeable)
	return out
}

// Deal draws letters without repeats from pool into the letter cells and
// clears every cycle. pool must hold at least one letter per cell.
func (b *Board) Deal(pool []string, rng *rand.Rand) {
	letters := make([]string, len(pool))
	copy(letters, pool)
	rng.Shuffle(len(letters), func(i, j int) {
		letters[i], letters[j] = letters[j], letters[i]
	})

	for i, c := range b.changeable {
		cell := &b.cells[c.Row][c.Col]
		cell.Clicks = 0
		if i < len(letters) {
			cell.Letter = letters[i]
		}
	}
}

// Advance moves the cell at c one step along its cycle.
// It reports false for anything but a letter cell.
func (b *Board) Advance(c hexwin.Coord) bool {
	if b.Cell(c).Role != RoleChangeable {
		return false
	}
	cell := &b.cells[c.Row][c.Col]
	cell.Clicks = (cell.Clicks + 1) % CycleLen
	return true
}

// SetClicks puts the cell at c at a given cycle position.
func (b *Board) SetClicks(c hexwin.Coord, clicks int) bool {
	if b.Cell(c).Role != RoleChangeable {
		return false
	}
	b.cells[c.Row][c.Col].Clicks = ((clicks % CycleLen) + CycleLen) % CycleLen
	return true
}

// Scheme resolves cells to hex colors.
type Scheme struct {
	Palette hexwin.Palette
	Default string
	Marker  string
	Swapped bool
}

// Color returns the hex color of cell under s, or "" for an absent slot.
func (s Scheme) Color(cell Cell) string {
	red, green := s.Palette.Red, s.Palette.Green
	if s.Swapped {
		red, green = green, red
	}

	switch cell.Role {
	case RoleRedFixed:
		return red
	case RoleGreenFixed:
		return green
	case RoleChangeable:
		return [CycleLen]string{s.Default, s.Marker, s.Palette.Red, s.Palette.Green, s.Default}[cell.Clicks]
	default:
		return ""
	}
}

// Capture takes a fresh snapshot of the board under s.
func (b *Board) Capture(s Scheme) hexwin.Snapshot {
	return hexwin.Capture(b.lattice, func(c hexwin.Coord) (string, bool) {
		return s.Color(b.cells[c.Row][c.Col]), true
	})
}
