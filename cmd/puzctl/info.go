package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/puzkit/pkg/puz"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file.puz>",
		Short: "Report puzzle header metadata",
		Long: `The info command decodes a .puz file and displays its header
metadata: dimensions, title, author, copyright, format version, clue count,
whether the solution is scrambled, and any extra sections.

Example:
  puzctl info daily.puz
  puzctl info daily.puz --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

// puzzleInfo is the JSON shape of the info command.
type puzzleInfo struct {
	File      string   `json:"file"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	Title     string   `json:"title"`
	Author    string   `json:"author"`
	Copyright string   `json:"copyright"`
	Version   string   `json:"version"`
	Clues     int      `json:"clues"`
	Scrambled bool     `json:"scrambled"`
	Preamble  int      `json:"preamble_bytes"`
	Sections  []string `json:"sections"`
	Notes     string   `json:"notes,omitempty"`
}

func newPuzzleInfo(path string, f *puz.File) puzzleInfo {
	sections := make([]string, 0, len(f.Sections))
	for _, s := range f.Sections {
		sections = append(sections, s.Name)
	}
	return puzzleInfo{
		File:      path,
		Width:     int(f.Width),
		Height:    int(f.Height),
		Title:     f.Title,
		Author:    f.Author,
		Copyright: f.Copyright,
		Version:   strings.TrimRight(f.Version, "\x00"),
		Clues:     int(f.NumClues),
		Scrambled: f.IsScrambled(),
		Preamble:  len(f.Preamble),
		Sections:  sections,
		Notes:     f.Notes,
	}
}

func runInfo(args []string) error {
	path := args[0]

	printVerbose("Opening puzzle: %s\n", path)

	f, err := puz.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read puzzle: %w", err)
	}
	info := newPuzzleInfo(path, f)

	// Output as JSON if requested
	if jsonOut {
		return printJSON(info)
	}

	// Text output
	printInfo("\nPuzzle Information:\n")
	printInfo("  File: %s\n", path)
	if stat, err := os.Stat(path); err == nil {
		printInfo("  Size: %d bytes\n", stat.Size())
	}
	printInfo("  Dimensions: %dx%d\n", info.Width, info.Height)
	printInfo("  Title: %s\n", info.Title)
	printInfo("  Author: %s\n", info.Author)
	printInfo("  Copyright: %s\n", info.Copyright)
	printInfo("  Version: %s\n", info.Version)
	printInfo("  Clues: %d\n", info.Clues)
	printInfo("  Scrambled: %t\n", info.Scrambled)
	if info.Preamble > 0 {
		printInfo("  Preamble: %d bytes\n", info.Preamble)
	}
	if len(info.Sections) > 0 {
		printInfo("  Sections: %s\n", strings.Join(info.Sections, ", "))
	}
	if info.Notes != "" {
		printInfo("  Notes: %s\n", info.Notes)
	}
	return nil
}
