package boards

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hexletters/internal/hexwin"
)

const testdataDir = "testdata/boards"

func TestParseDefaults(t *testing.T) {
	b, err := Parse([]byte("rows:\n  - [R, .]\n  - [R, G]\n"))
	require.NoError(t, err)

	assert.Equal(t, hexwin.DefaultPalette(), b.Palette)
	assert.Equal(t, hexwin.AxisTopBottom, b.RedAxis)
	assert.Equal(t, hexwin.AxisTopBottom, b.GreenAxis)
	assert.Empty(t, b.Expect)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"syntax", "rows: [unclosed"},
		{"bad red axis", "axes: {red: up}\nrows:\n  - [R]\n"},
		{"bad green axis", "axes: {green: sideways}\nrows:\n  - [G]\n"},
		{"bad expect", "expect: blue\nrows:\n  - [R]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}

	_, err := Parse([]byte("name: empty\n"))
	assert.ErrorIs(t, err, ErrEmptyBoard)
}

func TestSnapshotExpandsShorthands(t *testing.T) {
	b, err := Parse([]byte("palette: {red: \"#D32F2F\"}\nrows:\n  - [R, G, ., \"-\", \"rgb(1,2,3)\", bogus]\n"))
	require.NoError(t, err)

	snap := b.Snapshot()
	assert.Equal(t, "#d32f2f", snap.Color(hexwin.At(0, 0)))
	assert.Equal(t, "#81c784", snap.Color(hexwin.At(0, 1)))
	assert.Equal(t, hexwin.Neutral, snap.Color(hexwin.At(0, 2)))
	assert.False(t, b.Lattice().Present(hexwin.At(0, 3)))
	assert.Equal(t, hexwin.NoColor, snap.Color(hexwin.At(0, 3)))
	assert.Equal(t, "#010203", snap.Color(hexwin.At(0, 4)))
	assert.Equal(t, hexwin.NoColor, snap.Color(hexwin.At(0, 5)))
}

func TestTestdataBoardsMatchExpectations(t *testing.T) {
	boards, err := NewLoader(testdataDir).LoadAll()
	require.NoError(t, err)
	require.NotEmpty(t, boards)

	for _, b := range boards {
		t.Run(b.ID, func(t *testing.T) {
			require.NotEmpty(t, b.Expect, "testdata boards must say what they expect")
			res := b.Check()
			assert.True(t, b.Matches(res), "got %+v, want %s", res, b.Expect)
		})
	}
}

func TestLoadAllSortsAndSkips(t *testing.T) {
	boards, err := NewLoader(testdataDir).LoadAll()
	require.NoError(t, err)

	var ids []string
	for _, b := range boards {
		ids = append(ids, b.ID)
		assert.NotEmpty(t, b.FilePath)
	}
	assert.Equal(t, []string{"absent", "both", "broken", "green-rgb", "left-right", "red-column"}, ids)
}

func TestLoadByID(t *testing.T) {
	b, err := NewLoader(testdataDir).LoadByID("left-right")
	require.NoError(t, err)

	assert.Equal(t, hexwin.AxisLeftRight, b.GreenAxis)
	assert.Equal(t, "#0288d1", b.Palette.Green)

	res := b.Check()
	require.True(t, res.HasWon)
	assert.Equal(t, hexwin.TeamGreen, res.WinColor)
	assert.Equal(t, 0, res.Path[0].Col)
	assert.Equal(t, 4, res.Path[len(res.Path)-1].Col)

	_, err = NewLoader(testdataDir).LoadByID("missing")
	assert.Error(t, err)
}

func TestLoadFileUsesFileNameAsID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quick.yml")
	require.NoError(t, os.WriteFile(path, []byte("rows:\n  - [R]\n  - [R]\n"), 0o644))

	b, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "quick", b.ID)
	assert.Equal(t, path, b.FilePath)

	res := b.Check()
	assert.True(t, res.HasWon)
	assert.Equal(t, hexwin.TeamRed, res.WinColor)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(testdataDir, "invalid.yaml"))
	assert.Error(t, err)
}

func TestMatches(t *testing.T) {
	red := hexwin.Result{HasWon: true, WinColor: hexwin.TeamRed}
	none := hexwin.Result{}

	assert.True(t, Board{}.Matches(red))
	assert.True(t, Board{Expect: "none"}.Matches(none))
	assert.False(t, Board{Expect: "none"}.Matches(red))
	assert.True(t, Board{Expect: "red"}.Matches(red))
	assert.False(t, Board{Expect: "green"}.Matches(red))
	assert.False(t, Board{Expect: "red"}.Matches(none))
}
