package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const boardDir = "../../internal/boards/testdata/boards"

func TestCheckBoardsReportsWinner(t *testing.T) {
	var out bytes.Buffer
	failed, err := checkBoards(&out, []string{filepath.Join(boardDir, "red_column.yaml")})
	require.NoError(t, err)
	assert.Zero(t, failed)
	assert.Equal(t, "red-column: red wins via (0,2) (1,2) (2,2) (3,2) (4,2) (as expected)\n", out.String())
}

func TestCheckBoardsNoWinner(t *testing.T) {
	var out bytes.Buffer
	failed, err := checkBoards(&out, []string{filepath.Join(boardDir, "broken.yaml")})
	require.NoError(t, err)
	assert.Zero(t, failed)
	assert.Equal(t, "broken: no winner (as expected)\n", out.String())
}

func TestCheckBoardsCountsMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrong.yaml")
	board := "expect: green\nrows:\n  - [R]\n  - [R]\n"
	require.NoError(t, os.WriteFile(path, []byte(board), 0o644))

	var out bytes.Buffer
	failed, err := checkBoards(&out, []string{path})
	require.NoError(t, err)
	assert.Equal(t, 1, failed)
	assert.Contains(t, out.String(), "wrong: red wins")
	assert.Contains(t, out.String(), "MISMATCH: expected green")
}

func TestCheckBoardsDirectory(t *testing.T) {
	var out bytes.Buffer
	failed, err := checkBoards(&out, []string{boardDir})
	require.NoError(t, err)
	assert.Zero(t, failed)
	assert.Contains(t, out.String(), "both: red wins")
	assert.Contains(t, out.String(), "green-rgb: green wins")
	assert.NotContains(t, out.String(), "invalid")
}

func TestCheckBoardsMissingFile(t *testing.T) {
	var out bytes.Buffer
	_, err := checkBoards(&out, []string{filepath.Join(boardDir, "missing.yaml")})
	require.Error(t, err)
}
