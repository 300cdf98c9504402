package game

import "fmt"

// Position is a (row, column) pair. Rows grow downward, columns to the right.
type Position struct {
	Row, Col int
}

func (p Position) Add(other Position) Position {
	return Position{Row: p.Row + other.Row, Col: p.Col + other.Col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Translation vectors used by the move commands.
var (
	Down  = Position{Row: 1, Col: 0}
	Left  = Position{Row: 0, Col: -1}
	Right = Position{Row: 0, Col: 1}
)

// Direction is the sense of a rotation step through a shape's rotation table.
type Direction int

const (
	CounterClockwise Direction = -1
	Clockwise        Direction = 1
)

// wrapIndex maps i into [0, n) for any sign of i.
func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}
