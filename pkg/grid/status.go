package grid

// Status summarizes progress. It is derived from the cells every time and
// never stored.
type Status struct {
	Cells   int
	Guesses int
	Errors  int
}

// Solved reports whether every playable square holds its answer.
func (s Status) Solved() bool {
	return s.Errors == 0 && s.Cells == s.Guesses
}

// Evaluate counts playable squares, filled squares and wrong guesses.
func Evaluate(g *Grid) Status {
	var s Status
	for _, c := range g.cells {
		if c.IsBlock() {
			continue
		}
		s.Cells++
		if c.Guess == 0 {
			continue
		}
		s.Guesses++
		if c.Guess != c.Truth {
			s.Errors++
		}
	}
	return s
}

// IsSolved is shorthand for Evaluate(g).Solved().
func IsSolved(g *Grid) bool {
	return Evaluate(g).Solved()
}
