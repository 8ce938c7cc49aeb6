package grid

// Move is a one-square cursor step.
type Move int

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
)

func (m Move) delta() (dx, dy int) {
	switch m {
	case MoveUp:
		return 0, -1
	case MoveDown:
		return 0, 1
	case MoveLeft:
		return -1, 0
	case MoveRight:
		return 1, 0
	}
	return 0, 0
}

func (m Move) apply(x, y int) (int, int) {
	dx, dy := m.delta()
	return x + dx, y + dy
}

// Forward is the typing direction for d.
func Forward(d Direction) Move {
	if d == Down {
		return MoveDown
	}
	return MoveRight
}

// Backward is the opposite of Forward.
func Backward(d Direction) Move {
	if d == Down {
		return MoveUp
	}
	return MoveLeft
}

// Wrap moves one square, wrapping around the edges. Blocks are visited like
// any other square.
func Wrap(g *Grid, x, y int, m Move) (int, int) {
	if g.width == 0 || g.height == 0 {
		return x, y
	}
	nx, ny := m.apply(x, y)
	return mod(nx, g.width), mod(ny, g.height)
}

// Step moves one square unless that would leave the grid or land on a
// block, in which case the position is returned unchanged.
func Step(g *Grid, x, y int, m Move) (int, int) {
	nx, ny := m.apply(x, y)
	if g.IsBlock(nx, ny) {
		return x, y
	}
	return nx, ny
}

func mod(a, n int) int {
	return (a%n + n) % n
}
