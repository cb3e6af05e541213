// Package hexwin decides whether a colored hex board has been won.
// It works on a fixed lattice of offset hex rows and a per-call color snapshot,
// and has no dependency on any rendering or input layer.
package hexwin

import "fmt"

// Coord identifies a lattice slot by row and column.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns the coordinate as "row,col".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Lattice is an immutable arrangement of rows of slots.
// Each row has its own width; a slot may be unused (no cell present).
type Lattice struct {
	present [][]bool
	widths  []int
}

// NewLattice builds a lattice from a presence mask where mask[r][c]
// reports whether slot (r, c) holds a cell. The mask is copied.
// A nil or empty mask gives a lattice of height zero.
func NewLattice(mask [][]bool) *Lattice {
	l := &Lattice{
		present: make([][]bool, len(mask)),
		widths:  make([]int, len(mask)),
	}
	for r, row := range mask {
		l.present[r] = make([]bool, len(row))
		copy(l.present[r], row)
		l.widths[r] = len(row)
	}
	return l
}

// RectLattice builds a rows x cols lattice with every slot present.
func RectLattice(rows, cols int) *Lattice {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	mask := make([][]bool, rows)
	for r := range mask {
		mask[r] = make([]bool, cols)
		for c := range mask[r] {
			mask[r][c] = true
		}
	}
	return NewLattice(mask)
}

// Height returns the number of rows.
func (l *Lattice) Height() int {
	if l == nil {
		return 0
	}
	return len(l.widths)
}

// Width returns the number of column slots in the given row, or 0 outside the lattice.
func (l *Lattice) Width(row int) int {
	if l == nil || row < 0 || row >= len(l.widths) {
		return 0
	}
	return l.widths[row]
}

// RowWidths returns a copy of the per-row widths.
func (l *Lattice) RowWidths() []int {
	if l == nil {
		return nil
	}
	out := make([]int, len(l.widths))
	copy(out, l.widths)
	return out
}

// InBounds reports whether c addresses a slot of the lattice.
func (l *Lattice) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < l.Height() && c.Col >= 0 && c.Col < l.Width(c.Row)
}

// Present reports whether a cell exists at c.
func (l *Lattice) Present(c Coord) bool {
	if !l.InBounds(c) {
		return false
	}
	return l.present[c.Row][c.Col]
}

// Coords lists every present cell in row-major order.
func (l *Lattice) Coords() []Coord {
	var out []Coord
	for r := 0; r < l.Height(); r++ {
		for c := 0; c < l.Width(r); c++ {
			if l.present[r][c] {
				out = append(out, At(r, c))
			}
		}
	}
	return out
}

// Neighbors returns the present cells adjacent to c.
func (l *Lattice) Neighbors(c Coord) []Coord {
	if l == nil {
		return nil
	}
	all := Neighbors(c.Row, c.Col, len(l.widths), l.widths)
	out := all[:0]
	for _, n := range all {
		if l.present[n.Row][n.Col] {
			out = append(out, n)
		}
	}
	return out
}
