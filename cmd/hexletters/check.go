package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexletters/internal/boards"
	"github.com/vovakirdan/hexletters/internal/hexwin"
)

var checkCmd = &cobra.Command{
	Use:   "check <board.yaml|dir>...",
	Short: "Run win detection on board files",
	Long: `Load board snapshots from YAML and report which team, if any, has won.

A directory argument checks every .yaml/.yml board beneath it.
Boards that declare "expect" are compared with the verdict and the
command exits non-zero when any of them disagrees.

Board format:
  name: red column
  palette: {red: "#ff4081", green: "#81c784"}
  axes: {red: top_bottom, green: left_right}
  expect: red
  rows:
    - [R, ., G]
    - [R, "#81c784", "-"]

R and G stand for the palette colors, "." is an empty cell and "-" an
absent slot. Anything else is a raw color such as "rgb(255, 64, 129)".

Examples:
  hexletters check ./boards/final.yaml
  hexletters check ./boards`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	failed, err := checkBoards(os.Stdout, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d board(s) did not match their expected winner\n", failed)
		os.Exit(1)
	}
}

// checkBoards prints a verdict for every board found under paths and
// returns how many disagreed with their expect field.
func checkBoards(w io.Writer, paths []string) (int, error) {
	var list []boards.Board
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return 0, err
		}
		if info.IsDir() {
			found, err := boards.NewLoader(p).LoadAll()
			if err != nil {
				return 0, err
			}
			log.Debug("loaded boards", "dir", p, "count", len(found))
			list = append(list, found...)
			continue
		}
		b, err := boards.LoadFile(p)
		if err != nil {
			return 0, err
		}
		list = append(list, b)
	}

	failed := 0
	for _, b := range list {
		res := b.Check()
		ok := b.Matches(res)
		if !ok {
			failed++
		}
		log.Debug("checked board", "id", b.ID, "file", b.FilePath,
			"red_axis", b.RedAxis, "green_axis", b.GreenAxis, "won", res.HasWon)
		fmt.Fprintln(w, formatVerdict(b, res, ok))
	}
	return failed, nil
}

func formatVerdict(b boards.Board, res hexwin.Result, ok bool) string {
	var sb strings.Builder
	sb.WriteString(b.ID)
	sb.WriteString(": ")
	if res.HasWon {
		fmt.Fprintf(&sb, "%s wins via %s", res.WinColor, formatPath(res.Path))
	} else {
		sb.WriteString("no winner")
	}
	if b.Expect != "" {
		if ok {
			sb.WriteString(" (as expected)")
		} else {
			fmt.Fprintf(&sb, " (MISMATCH: expected %s)", b.Expect)
		}
	}
	return sb.String()
}

func formatPath(path []hexwin.Coord) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return strings.Join(parts, " ")
}
