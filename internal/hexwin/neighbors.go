package hexwin

// Offset tables for the two row parities, as (dRow, dCol).
// Odd rows sit half a cell to the right of even rows.
var (
	evenRowOffsets = [6][2]int{
		{-1, -1}, {-1, 0},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0},
	}
	oddRowOffsets = [6][2]int{
		{-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, 0}, {1, 1},
	}
)

// Neighbors returns the in-bounds hex neighbors of (row, col) on a lattice
// with the given height and per-row widths. Slots outside the lattice are
// dropped silently; presence of a cell is not checked here.
func Neighbors(row, col, height int, rowWidths []int) []Coord {
	offsets := &evenRowOffsets
	if row%2 != 0 {
		offsets = &oddRowOffsets
	}

	out := make([]Coord, 0, len(offsets))
	for _, d := range offsets {
		r, c := row+d[0], col+d[1]
		if r < 0 || r >= height || r >= len(rowWidths) {
			continue
		}
		if c < 0 || c >= rowWidths[r] {
			continue
		}
		out = append(out, At(r, c))
	}
	return out
}
