package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hexletters/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.state.Score++
	return core.StepResult{State: g.state}
}

func register(t *testing.T, id string) {
	t.Helper()
	Register(id, func() Game { return &stubGame{id: id} })
	t.Cleanup(func() { unregister(id) })
}

func TestRegisterAndCreate(t *testing.T) {
	register(t, "stub_b")
	register(t, "stub_a")

	require.True(t, Exists("stub_a"))

	g, err := Create("stub_b")
	require.NoError(t, err)
	assert.Equal(t, "stub_b", g.ID())

	var ids []string
	for _, info := range List() {
		if info.ID == "stub_a" || info.ID == "stub_b" {
			ids = append(ids, info.ID)
			assert.Equal(t, "Stub "+info.ID, info.Title)
		}
	}
	assert.Equal(t, []string{"stub_a", "stub_b"}, ids)
}

func TestCreateReturnsFreshInstances(t *testing.T) {
	register(t, "stub_fresh")

	a, err := Create("stub_fresh")
	require.NoError(t, err)
	a.Step(core.NewInputFrame())

	b, err := Create("stub_fresh")
	require.NoError(t, err)
	assert.Equal(t, 1, a.State().Score)
	assert.Equal(t, 0, b.State().Score)
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_game")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownGame)
	assert.False(t, Exists("no_such_game"))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register(t, "stub_dup")
	assert.Panics(t, func() {
		Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
	})
	assert.Panics(t, func() {
		Register("", func() Game { return &stubGame{} })
	})
}
