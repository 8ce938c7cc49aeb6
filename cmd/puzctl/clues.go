package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/puzkit/pkg/grid"
	"github.com/joshuapare/puzkit/pkg/puz"
)

func init() {
	rootCmd.AddCommand(newCluesCmd())
}

func newCluesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clues <file.puz>",
		Short: "List the numbered Across and Down clues",
		Long: `The clues command numbers the grid and prints each clue under its
direction with its number and answer length.

Example:
  puzctl clues daily.puz
  puzctl clues daily.puz --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClues(args)
		},
	}
	return cmd
}

type clueInfo struct {
	Number int    `json:"number"`
	Clue   string `json:"clue"`
	Length int    `json:"length"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

type clueList struct {
	Across []clueInfo `json:"across"`
	Down   []clueInfo `json:"down"`
}

func runClues(args []string) error {
	path := args[0]

	printVerbose("Numbering puzzle: %s\n", path)

	g, err := openGrid(path)
	if err != nil {
		return err
	}

	list := clueList{Across: []clueInfo{}, Down: []clueInfo{}}
	for _, e := range g.Entries() {
		ci := clueInfo{Number: e.Number, Clue: e.Clue, Length: e.Length, Row: e.Y, Col: e.X}
		if e.Direction == grid.Across {
			list.Across = append(list.Across, ci)
		} else {
			list.Down = append(list.Down, ci)
		}
	}

	if jsonOut {
		return printJSON(list)
	}

	printClueSection("Across", list.Across)
	printInfo("\n")
	printClueSection("Down", list.Down)
	return nil
}

func printClueSection(title string, clues []clueInfo) {
	printInfo("%s\n", title)
	for _, c := range clues {
		printInfo("  %d. %s (%d)\n", c.Number, c.Clue, c.Length)
	}
}

// openGrid decodes path and numbers its grid.
func openGrid(path string) (*grid.Grid, error) {
	f, err := puz.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle: %w", err)
	}
	g, err := grid.Build(f)
	if err != nil {
		return nil, fmt.Errorf("failed to number %s: %w", path, err)
	}
	return g, nil
}
