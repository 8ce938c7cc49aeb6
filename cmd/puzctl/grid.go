package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/puzkit/pkg/puz"
)

var gridSolution bool

func init() {
	cmd := newGridCmd()
	cmd.Flags().BoolVar(&gridSolution, "solution", false, "Print the solution instead of the player grid")
	rootCmd.AddCommand(cmd)
}

func newGridCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid <file.puz>",
		Short: "Print the puzzle grid as text",
		Long: `The grid command prints the player grid stored in the file, one row
per line. Blocks print as '#' and empty squares as '-'. With --solution the
answer letters are printed instead.

Example:
  puzctl grid daily.puz
  puzctl grid daily.puz --solution
  puzctl grid daily.puz --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrid(args)
		},
	}
	return cmd
}

func runGrid(args []string) error {
	path := args[0]

	f, err := puz.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read puzzle: %w", err)
	}

	cells := f.State
	if gridSolution {
		if f.IsScrambled() {
			return fmt.Errorf("%s: %w", path, puz.ErrScrambled)
		}
		cells = f.Puzzle
	}
	rows := gridRows(cells, int(f.Width))

	if jsonOut {
		return printJSON(map[string]interface{}{
			"width":  f.Width,
			"height": f.Height,
			"rows":   rows,
		})
	}

	printVerbose("%s: %dx%d\n", path, f.Width, f.Height)
	for _, row := range rows {
		printInfo("%s\n", row)
	}
	return nil
}

// gridRows splits a row-major cell string into display rows.
func gridRows(cells string, width int) []string {
	rows := make([]string, 0, len(cells)/width)
	for i := 0; i+width <= len(cells); i += width {
		row := make([]string, width)
		for x := 0; x < width; x++ {
			row[x] = gridGlyph(cells[i+x])
		}
		rows = append(rows, strings.Join(row, " "))
	}
	return rows
}

func gridGlyph(c byte) string {
	if c == '.' {
		return "#"
	}
	return string(c)
}
