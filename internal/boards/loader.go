package boards

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader reads board files from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a new board loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively loads every .yaml/.yml board under Root, sorted by ID.
// Files that fail to parse are skipped.
func (l *Loader) LoadAll() ([]Board, error) {
	var boards []Board

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isBoardFile(path) {
			return nil
		}

		b, err := LoadFile(path)
		if err != nil {
			return nil
		}
		boards = append(boards, b)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("boards: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(boards, func(i, j int) bool {
		return boards[i].ID < boards[j].ID
	})
	return boards, nil
}

// LoadByID loads the board with the given ID.
func (l *Loader) LoadByID(id string) (Board, error) {
	boards, err := l.LoadAll()
	if err != nil {
		return Board{}, err
	}
	for _, b := range boards {
		if b.ID == id {
			return b, nil
		}
	}
	return Board{}, fmt.Errorf("boards: board not found: %s", id)
}

// LoadFile loads a single board file. Boards without an ID take the file name.
func LoadFile(path string) (Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Board{}, fmt.Errorf("boards: reading file %s: %w", path, err)
	}

	b, err := Parse(data)
	if err != nil {
		return Board{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if b.ID == "" {
		b.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	b.FilePath = path
	return b, nil
}

func isBoardFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
