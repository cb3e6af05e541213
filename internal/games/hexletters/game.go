// Package hexletters implements the Arabic-letter hex board.
// Two teams color letter cells; red tries to join its borders with an
// unbroken chain of red cells, green does the same with green, and the
// first connection found ends the round with a celebration.
package hexletters

import (
	"math/rand"

	"github.com/vovakirdan/hexletters/internal/config"
	"github.com/vovakirdan/hexletters/internal/core"
	"github.com/vovakirdan/hexletters/internal/hexwin"
	"github.com/vovakirdan/hexletters/internal/registry"
)

// GameID is the registry and ledger identifier.
const GameID = "hexletters"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets a custom config file path for subsequent Resets.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the hex letters board.
type Game struct {
	cfg      config.HexConfig
	fixedCfg bool
	runtime  core.RuntimeConfig
	rng      *rand.Rand

	board   *Board
	cursor  hexwin.Coord
	palette int
	swapped bool

	redAxis   hexwin.Axis
	greenAxis hexwin.Axis

	moves    int
	tick     int
	gameOver bool
	paused   bool
	winner   hexwin.Team
	path     []hexwin.Coord
	party    Party
}

// New creates a game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game bound to cfg.
func NewWithConfig(cfg config.HexConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Hex Letters"
}

// Reset loads the config and deals a fresh board with the first color set.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, err := config.LoadHexLetters(configPath)
		if err != nil {
			cfg = config.Default()
		}
		g.cfg = cfg
	}
	g.redAxis, _ = hexwin.ParseAxis(g.cfg.Rules.RedAxis)
	g.greenAxis, _ = hexwin.ParseAxis(g.cfg.Rules.GreenAxis)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.board = NewBoard(g.cfg.Board.Layout)
	g.palette = 0
	g.swapped = false
	g.paused = false
	g.tick = 0
	g.newRound()
}

// Resize adapts to a new screen without touching the board.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// newRound deals new letters and clears every color.
func (g *Game) newRound() {
	g.board.Deal(g.cfg.Board.Letters, g.rng)
	g.moves = 0
	g.gameOver = false
	g.winner = hexwin.TeamNone
	g.path = nil
	g.party.Stop()

	g.cursor = hexwin.At(0, 0)
	if cells := g.board.Changeable(); len(cells) > 0 {
		g.cursor = cells[0]
	}
}

// Step applies one tick of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	won := false

	if in.Has(core.ActionShuffle) {
		g.newRound()
	}
	if in.Has(core.ActionPalette) && len(g.cfg.Palettes) > 0 {
		g.palette = (g.palette + 1) % len(g.cfg.Palettes)
		g.party.Stop()
		won = g.check() || won
	}
	if in.Has(core.ActionSwap) {
		g.swapped = !g.swapped
		won = g.check() || won
	}

	if !g.gameOver {
		g.moveCursor(in)
		if in.Has(core.ActionCycle) && g.board.Advance(g.cursor) {
			g.moves++
			won = g.check() || won
		}
	}

	if in.Has(core.ActionParty) {
		g.party.Start(g.cfg.Party, g.runtime.TickRate)
	}
	g.party.Update(g.runtime.ScreenW, g.runtime.ScreenH, g.rng)

	return core.StepResult{State: g.State(), Won: won}
}

// check runs the detector on a fresh snapshot and ends the round on a win.
func (g *Game) check() bool {
	if g.gameOver {
		return false
	}
	res := g.Detector().CheckWin(g.Colors())
	if !res.HasWon {
		return false
	}
	g.gameOver = true
	g.winner = res.WinColor
	g.path = res.Path
	g.party.Start(g.cfg.Party, g.runtime.TickRate)
	return true
}

// Scheme returns the color resolution currently in effect.
func (g *Game) Scheme() Scheme {
	var p config.PaletteConfig
	if len(g.cfg.Palettes) > 0 {
		p = g.cfg.Palettes[g.palette]
	}
	return Scheme{
		Palette: hexwin.Palette{Red: p.Red, Green: p.Green},
		Default: g.cfg.Colors.Default,
		Marker:  g.cfg.Colors.Marker,
		Swapped: g.swapped,
	}
}

// Colors captures the board as the detector sees it right now.
func (g *Game) Colors() hexwin.Snapshot {
	return g.board.Capture(g.Scheme())
}

// Detector builds a detector for the current palette.
// The team holding the top and bottom borders joins them; swapping the
// borders swaps the axes too.
func (g *Game) Detector() *hexwin.Detector {
	red, green := g.redAxis, g.greenAxis
	if g.swapped {
		red, green = green, red
	}
	return hexwin.NewDetector(g.board.Lattice(), g.Scheme().Palette,
		hexwin.WithRedAxis(red), hexwin.WithGreenAxis(green))
}

// Board returns the live board.
func (g *Game) Board() *Board {
	return g.board
}

// Cursor returns the selected cell.
func (g *Game) Cursor() hexwin.Coord {
	return g.cursor
}

// Path returns the winning chain, if any.
func (g *Game) Path() []hexwin.Coord {
	return g.path
}

// Party returns the celebration state.
func (g *Game) Party() *Party {
	return &g.party
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.moves,
		GameOver: g.gameOver,
		Paused:   g.paused,
		Winner:   g.winner.String(),
		Palette:  g.palette,
	}
}

// Snapshot captures the deterministic game state for testing.
type Snapshot struct {
	Tick    int
	Moves   int
	Cursor  hexwin.Coord
	Palette int
	Swapped bool
	Winner  hexwin.Team
	Letters []string // Letter cells in row-major order
	Clicks  []int
}

// Snapshot returns the current game state for testing.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:    g.tick,
		Moves:   g.moves,
		Cursor:  g.cursor,
		Palette: g.palette,
		Swapped: g.swapped,
		Winner:  g.winner,
	}
	for _, c := range g.board.Changeable() {
		cell := g.board.Cell(c)
		s.Letters = append(s.Letters, cell.Letter)
		s.Clicks = append(s.Clicks, cell.Clicks)
	}
	return s
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
