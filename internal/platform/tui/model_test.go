package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hexletters/internal/core"
	"github.com/vovakirdan/hexletters/internal/storage"
)

// stubGame wins for red after three cycles.
type stubGame struct {
	resets  int
	resized bool
	state   core.GameState
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionShuffle) {
		g.state = core.GameState{}
	}
	if in.Has(core.ActionCycle) && !g.state.GameOver {
		g.state.Score++
		if g.state.Score == 3 {
			g.state.GameOver = true
			g.state.Winner = "red"
			return core.StepResult{State: g.state, Won: true}
		}
	}
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Resize(w, h int) { g.resized = true }

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
		next, _ = m.Update(TickMsg{})
		m = next.(Model)
	}
	return m
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "matches.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelSavesMatchOnce(t *testing.T) {
	store := openStore(t)
	game := &stubGame{}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, "amal")
	m.Init()

	m = press(t, m, " ", " ", " ")
	if !m.State().GameOver {
		t.Fatal("Expected the stub to be over after three cycles")
	}
	m = press(t, m, " ", " ")

	matches, err := store.RecentMatches("stub", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("Expected exactly 1 saved match, got %d", len(matches))
	}
	if matches[0].Winner != "red" || matches[0].Moves != 3 || matches[0].Player != "amal" {
		t.Errorf("Unexpected match: %+v", matches[0])
	}

	// A new round through shuffle gets its own ledger entry.
	m = press(t, m, "x", " ", " ", " ")
	matches, _ = store.RecentMatches("stub", 10)
	if len(matches) != 2 {
		t.Errorf("Expected 2 saved matches after a second round, got %d", len(matches))
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10}, "")
	m.Init()

	m = press(t, m, "r")
	if game.resets != 1 {
		t.Fatalf("Restart mid-round should be ignored, resets = %d", game.resets)
	}

	m = press(t, m, " ", " ", " ", "r")
	if game.resets != 2 {
		t.Errorf("Restart after game over should reset, resets = %d", game.resets)
	}
	if m.State().GameOver {
		t.Error("State should be fresh after restart")
	}
}

func TestModelBackAndQuit(t *testing.T) {
	m := NewModel(&stubGame{}, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10}, "")

	back, _ := m.Update(keyMsg("esc"))
	if !back.(Model).BackToMenu() {
		t.Error("Esc should request the menu")
	}

	quit, cmd := m.Update(keyMsg("q"))
	if !quit.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10}, "")
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if !game.resized || game.resets != 1 {
		t.Errorf("Resize should go through Resize, resized=%v resets=%d", game.resized, game.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("Screen not resized: %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want core.Action
		quit bool
	}{
		{"w", core.ActionUp, false},
		{"j", core.ActionDown, false},
		{"a", core.ActionLeft, false},
		{"l", core.ActionRight, false},
		{" ", core.ActionCycle, false},
		{"x", core.ActionShuffle, false},
		{"v", core.ActionSwap, false},
		{"c", core.ActionPalette, false},
		{"f", core.ActionParty, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"esc", core.ActionBack, false},
		{"q", core.ActionQuit, true},
		{"z", core.ActionNone, false},
	}
	for _, tt := range tests {
		got, quit := km.MapKey(keyMsg(tt.key))
		if got != tt.want || quit != tt.quit {
			t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.key, got, quit, tt.want, tt.quit)
		}
	}

	if km.MapKeyToMenuAction(keyMsg("k")) != MenuActionUp {
		t.Error("k should move the menu up")
	}
	if km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}) != MenuActionResults {
		t.Error("tab should open results")
	}
}

func TestSessionFlow(t *testing.T) {
	store := openStore(t)
	s := NewSessionModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, "guest")

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if s.current != screenResults {
		t.Fatalf("Tab should open results, current = %d", s.current)
	}

	next, _ = s.Update(keyMsg("b"))
	s = next.(SessionModel)
	if s.current != screenMenu {
		t.Fatalf("Back should return to the menu, current = %d", s.current)
	}

	next, cmd := s.Update(keyMsg("q"))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}
