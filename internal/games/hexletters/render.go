package hexletters

import (
	"fmt"

	"github.com/vovakirdan/hexletters/internal/core"
	"github.com/vovakirdan/hexletters/internal/hexwin"
)

// Board drawing geometry, in terminal cells.
const (
	cellStride = 6 // Horizontal distance between slots in a row
	cellW      = 5 // Drawn width of a slot
	rowH       = 2 // Lines per row
	boardTop   = 2 // First board line
	hudLines   = 4 // Lines below the board: gap, stats, status, help
)

// boardWidth is the drawn width of the widest row, odd-row shift included.
func (g *Game) boardWidth() int {
	widest := 0
	for r := 0; r < g.board.Height(); r++ {
		widest = max(widest, g.board.Width(r))
	}
	return widest*cellStride + cellStride/2
}

// MinSize returns the smallest screen the framed board fits on.
func (g *Game) MinSize() (w, h int) {
	return g.boardWidth() + 2, boardTop + g.board.Height()*rowH + hudLines
}

// frame is the box drawn around the board on a screen of width w.
// The board itself starts one cell inside it.
func (g *Game) frame(w int) core.Rect {
	fw := g.boardWidth() + 2
	return core.NewRect((w-fw)/2, boardTop-1, fw, g.board.Height()*rowH+2)
}

// Render draws the board, HUD and celebration.
func (g *Game) Render(dst *core.Screen) {
	minW, minH := g.MinSize()
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2-1, "Screen too small", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d", minW, minH), core.ColorGray)
		return
	}

	frame := g.frame(dst.Width())
	g.drawTitle(dst)
	dst.DrawBox(frame)
	g.drawBoard(dst, frame.X+1)
	g.drawHUD(dst, frame.Bottom())
	g.drawFlashes(dst, frame)
}

func (g *Game) drawTitle(dst *core.Screen) {
	if !g.party.Active() {
		dst.DrawTextCentered(0, g.Title(), core.ColorBrightWhite)
		return
	}
	fg := core.ColorRed
	if g.party.TextGold() {
		fg = core.ColorBrightYellow
	}
	dst.DrawTextCentered(0, g.cfg.Party.Text, fg)
}

func (g *Game) drawBoard(dst *core.Screen, originX int) {
	scheme := g.Scheme()
	onPath := make(map[hexwin.Coord]bool, len(g.path))
	for _, c := range g.path {
		onPath[c] = true
	}

	for _, at := range g.board.Lattice().Coords() {
		cell := g.board.Cell(at)
		bg := scheme.Color(cell)
		x := originX + slotX(at)
		y := boardTop + at.Row*rowH

		for dy := 0; dy < rowH; dy++ {
			for dx := 0; dx < cellW; dx++ {
				dst.SetCell(x+dx, y+dy, core.Cell{Rune: ' ', Background: bg})
			}
		}
		if cell.Letter != "" {
			dst.DrawStyledText(x+cellW/2, y, cell.Letter, core.ColorDefault, bg)
		}
		if onPath[at] {
			dst.DrawStyledText(x+cellW/2, y+1, "•", core.ColorDefault, bg)
		}
		if at == g.cursor && !g.gameOver {
			dst.DrawStyledText(x, y, "[", core.ColorDefault, bg)
			dst.DrawStyledText(x+cellW-1, y, "]", core.ColorDefault, bg)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen, y int) {
	scheme := g.Scheme()
	red, green := g.redAxis, g.greenAxis
	if g.swapped {
		red, green = green, red
	}

	stats := fmt.Sprintf("Moves: %d   Colors: %d/%d   ", g.moves, g.palette+1, len(g.cfg.Palettes))
	redLabel := " Red " + axisArrow(red) + " "
	greenLabel := " Green " + axisArrow(green) + " "
	width := len([]rune(stats)) + len([]rune(redLabel)) + 1 + len([]rune(greenLabel))
	x := core.Clamp((dst.Width()-width)/2, 0, dst.Width())

	dst.DrawStyledText(x, y, stats, core.ColorWhite, "")
	x += len([]rune(stats))
	dst.DrawStyledText(x, y, redLabel, core.ColorDefault, scheme.Palette.Red)
	x += len([]rune(redLabel)) + 1
	dst.DrawStyledText(x, y, greenLabel, core.ColorDefault, scheme.Palette.Green)

	switch {
	case g.gameOver:
		dst.DrawTextCentered(y+1, fmt.Sprintf("%s wins in %d moves! R restart, X shuffle", teamTitle(g.winner), g.moves), core.ColorBrightGreen)
	case g.paused:
		dst.DrawTextCentered(y+1, "PAUSED - press P to continue", core.ColorYellow)
	}

	dst.DrawTextCentered(y+2, "arrows move  space color  x shuffle  v swap  c colors  f party  q quit", core.ColorGray)
}

// drawFlashes keeps flashes off the board so the letters stay readable.
func (g *Game) drawFlashes(dst *core.Screen, board core.Rect) {
	for _, f := range g.party.Flashes() {
		if board.Contains(f.X, f.Y) {
			continue
		}
		dst.SetCell(f.X, f.Y, core.Cell{Rune: '✦', Background: f.Color})
	}
}

func axisArrow(a hexwin.Axis) string {
	if a == hexwin.AxisLeftRight {
		return "↔"
	}
	return "↕"
}

func teamTitle(t hexwin.Team) string {
	switch t {
	case hexwin.TeamRed:
		return "Red"
	case hexwin.TeamGreen:
		return "Green"
	default:
		return "Nobody"
	}
}
