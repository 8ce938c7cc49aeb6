package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/joshuapare/puzkit/cmd/puzterm/logger"
	"github.com/joshuapare/puzkit/pkg/puz"
	"github.com/joshuapare/puzkit/pkg/session"
)

func main() {
	// Parse flags first (before positional args)
	args := os.Args[1:]
	debugMode := false

	// Extract --debug/-d flag
	filteredArgs := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--debug" || arg == "-d" {
			debugMode = true
		} else {
			filteredArgs = append(filteredArgs, arg)
		}
	}

	// Initialize logger (must be before any logging calls)
	if err := logger.Init(logger.Options{
		Enabled: debugMode,
		LogDir:  os.Getenv("PUZTERM_LOG_DIR"),
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if len(filteredArgs) < 1 {
		printUsage()
		os.Exit(1)
	}

	if filteredArgs[0] == "--help" || filteredArgs[0] == "-h" {
		printHelp()
		os.Exit(0)
	}

	if filteredArgs[0] == "--version" || filteredArgs[0] == "-v" {
		fmt.Printf("puzterm %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	path := filteredArgs[0]
	logger.Info("starting puzterm", "path", path, "debug", debugMode)

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintf(os.Stderr, "Error: puzterm must be run in an interactive terminal\n")
		os.Exit(1)
	}

	p, err := puz.Load(path)
	if err != nil {
		logger.Error("failed to load puzzle", "path", path, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.WithPuzzle(path)
	for _, w := range p.Warnings {
		logger.Checksum(w.Field, w.Stored, w.Computed)
	}

	m := NewModel(path, p, session.Options{
		ShowErrors: envBool("PUZTERM_SHOW_ERRORS"),
	})

	// Create the Bubbletea program
	prog := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	// Run the program
	if _, err := prog.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	logger.Info("puzterm exited normally")
}

// envBool reports whether the named variable holds a true value.
func envBool(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: puzterm [options] <file.puz>\n")
	fmt.Fprintf(os.Stderr, "Try 'puzterm --help' for more information.\n")
}

func printHelp() {
	fmt.Println("puzterm - Play Across Lite crosswords in the terminal")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  puzterm [options] <file.puz>")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Opens a .puz crossword and lets you solve it on a grid drawn in the")
	fmt.Println("  terminal, with the clue list alongside and a running clock.")
	fmt.Println()
	fmt.Println("  Select mode:")
	fmt.Println("    ←↓↑→, hjkl, wasd  Move (wraps at the edges)")
	fmt.Println("    Enter, i          Edit the square under the cursor")
	fmt.Println("    e                 Toggle the error count in the status bar")
	fmt.Println("    y                 Copy the current clue")
	fmt.Println("    I                 Show puzzle info")
	fmt.Println("    PgUp, PgDn        Scroll the clue list")
	fmt.Println("    ?                 Show help")
	fmt.Println("    p, q, Esc         Pause")
	fmt.Println()
	fmt.Println("  Edit mode:")
	fmt.Println("    a-z, 0-9          Fill the square and advance")
	fmt.Println("    Space             Switch between across and down")
	fmt.Println("    Backspace         Step back one square")
	fmt.Println("    Delete            Clear the square")
	fmt.Println("    Enter, Esc        Return to select mode")
	fmt.Println()
	fmt.Println("  Paused:")
	fmt.Println("    p, Enter, Esc     Resume")
	fmt.Println("    q, Ctrl+C         Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -d, --debug    Enable debug logging to ~/.puzterm/logs/")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT:")
	fmt.Println("  PUZTERM_SHOW_ERRORS=1  Start with the error count visible")
	fmt.Println("  PUZTERM_LOG_DIR        Override the debug log directory")
	fmt.Println()
	fmt.Println("For non-interactive operations, use the 'puzctl' command instead.")
}
