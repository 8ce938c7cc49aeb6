package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/puzkit/pkg/puz"
)

var errChecksumMismatch = errors.New("checksum mismatch")

func init() {
	rootCmd.AddCommand(newVerifyCmd())
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <file.puz>",
		Short: "Check the checksums stored in a puzzle",
		Long: `The verify command recomputes every checksum in a .puz file (the
file and header checksums, the four masked checksums, and one per extra
section) and compares them with the stored values. It exits with status 1
when any of them disagree.

Example:
  puzctl verify daily.puz
  puzctl verify daily.puz --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args)
		},
	}
	return cmd
}

type verifyResult struct {
	File       string          `json:"file"`
	OK         bool            `json:"ok"`
	Mismatches []mismatchEntry `json:"mismatches"`
}

type mismatchEntry struct {
	Field    string `json:"field"`
	Stored   string `json:"stored"`
	Computed string `json:"computed"`
}

func runVerify(args []string) error {
	path := args[0]

	printVerbose("Verifying puzzle: %s\n", path)

	f, err := puz.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read puzzle: %w", err)
	}
	mismatches, err := puz.Verify(f)
	if err != nil {
		return fmt.Errorf("failed to compute checksums: %w", err)
	}

	result := verifyResult{File: path, OK: len(mismatches) == 0, Mismatches: []mismatchEntry{}}
	for _, m := range mismatches {
		result.Mismatches = append(result.Mismatches, mismatchEntry{
			Field:    m.Field,
			Stored:   fmt.Sprintf("0x%04x", m.Stored),
			Computed: fmt.Sprintf("0x%04x", m.Computed),
		})
	}

	if jsonOut {
		if err := printJSON(result); err != nil {
			return err
		}
	} else if result.OK {
		printInfo("✓ %s: all checksums match\n", path)
	} else {
		printInfo("✗ %s: %d checksum(s) do not match\n", path, len(mismatches))
		for _, m := range mismatches {
			printInfo("  %s\n", m)
		}
	}

	if !result.OK {
		return fmt.Errorf("%s: %w in %d field(s)", path, errChecksumMismatch, len(mismatches))
	}
	return nil
}
