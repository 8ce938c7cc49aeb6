/*
Package grid holds the solve state of a crossword: one Cell per square,
clue numbering, entry lookup, cursor navigation and progress evaluation.

A Grid is built once from a decoded file and afterwards only guesses
change:

	g, err := grid.Build(f)
	if err != nil {
	    return err // grid.ErrClueCountMismatch for inconsistent files
	}
	g.SetGuess(0, 0, 'P')
	st := grid.Evaluate(g)

Navigation helpers are pure functions of (grid, x, y); they never mutate
the grid and never fail. Wrap is used while selecting, Step while editing.
*/
package grid
