package game

// Cell is the content of one grid square. Only empty vs non-empty matters.
type Cell uint8

const (
	Empty    Cell = 0
	Occupied Cell = 0xDD
)

func (c Cell) IsEmpty() bool {
	return c == Empty
}

// Block is one square covered by a shape.
type Block struct {
	Pos  Position
	Cell Cell
}

func NewBlock(row, col int) Block {
	return Block{Pos: Position{Row: row, Col: col}, Cell: Occupied}
}

func (b Block) IsEmpty() bool {
	return b.Cell.IsEmpty()
}

// Equal reports whether both blocks are empty. Positions are ignored, so this
// is only meaningful when comparing rotation-table entries, never grid cells.
func (b Block) Equal(other Block) bool {
	return b.IsEmpty() && other.IsEmpty()
}

func (b Block) translated(by Position) Block {
	return Block{Pos: b.Pos.Add(by), Cell: b.Cell}
}
