package hexletters

import (
	"github.com/vovakirdan/hexletters/internal/core"
	"github.com/vovakirdan/hexletters/internal/hexwin"
)

// moveCursor steps the cursor between letter cells.
// Left and right stay in the row; up and down pick the letter cell of the
// nearest row whose on-screen position is closest.
func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft):
		g.stepInRow(-1)
	case in.Has(core.ActionRight):
		g.stepInRow(1)
	case in.Has(core.ActionUp):
		g.stepRow(-1)
	case in.Has(core.ActionDown):
		g.stepRow(1)
	}
}

func (g *Game) stepInRow(dir int) {
	r := g.cursor.Row
	for c := g.cursor.Col + dir; c >= 0 && c < g.board.Width(r); c += dir {
		if g.board.Cell(hexwin.At(r, c)).Role == RoleChangeable {
			g.cursor = hexwin.At(r, c)
			return
		}
	}
}

func (g *Game) stepRow(dir int) {
	x := slotX(g.cursor)
	for r := g.cursor.Row + dir; r >= 0 && r < g.board.Height(); r += dir {
		best, bestDist := -1, 0
		for c := 0; c < g.board.Width(r); c++ {
			at := hexwin.At(r, c)
			if g.board.Cell(at).Role != RoleChangeable {
				continue
			}
			d := slotX(at) - x
			if d < 0 {
				d = -d
			}
			if best < 0 || d < bestDist {
				best, bestDist = c, d
			}
		}
		if best >= 0 {
			g.cursor = hexwin.At(r, best)
			return
		}
	}
}

// slotX is the horizontal offset of a slot on screen, relative to the board.
// Odd rows sit half a cell to the right.
func slotX(c hexwin.Coord) int {
	x := c.Col * cellStride
	if c.Row%2 == 1 {
		x += cellStride / 2
	}
	return x
}
