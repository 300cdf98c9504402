package game

type DrawMode int

const (
	DrawClear DrawMode = iota
	DrawFill
)

// Shape is a falling piece. Translate and Rotate either commit fully or leave
// the shape untouched and return false. Draw never runs implicitly: the caller
// must clear the shape before moving it and draw it again afterwards.
type Shape interface {
	Kind() ShapeKind
	Position() Position
	RotationIndex() int
	BlockCount() int
	Blocks() []Block

	Translate(grid *Grid, delta Position) bool
	Rotate(grid *Grid, dir Direction) bool
	Draw(grid *Grid, mode DrawMode)
}

// tableShape drives any variant from its constant rotation table.
type tableShape struct {
	kind     ShapeKind
	states   [][]Block
	position Position
	rotation int
	blocks   []Block
}

func newTableShape(kind ShapeKind, states [][]Block, at Position) *tableShape {
	return &tableShape{
		kind:     kind,
		states:   states,
		position: at,
		rotation: 0,
		blocks:   materialize(states[0], at),
	}
}

func (s *tableShape) Kind() ShapeKind { return s.kind }
func (s *tableShape) Position() Position { return s.position }
func (s *tableShape) RotationIndex() int { return s.rotation }
func (s *tableShape) BlockCount() int { return len(s.blocks) }
func (s *tableShape) RotationCount() int { return len(s.states) }
func (s *tableShape) Blocks() []Block { return append([]Block(nil), s.blocks...) }

func (s *tableShape) Translate(grid *Grid, delta Position) bool {
	target := s.position.Add(delta)
	candidate := materialize(s.states[s.rotation], target)
	if collides(grid, candidate) {
		return false
	}

	s.position = target
	s.blocks = candidate
	return true
}

func (s *tableShape) Rotate(grid *Grid, dir Direction) bool {
	if len(s.states) == 1 {
		return true
	}

	next := wrapIndex(s.rotation+int(dir), len(s.states))
	candidate := materialize(s.states[next], s.position)
	if collides(grid, candidate) {
		return false
	}

	s.rotation = next
	s.blocks = candidate
	return true
}

func (s *tableShape) Draw(grid *Grid, mode DrawMode) {
	cell := Occupied
	if mode == DrawClear {
		cell = Empty
	}
	for _, b := range s.blocks {
		grid.Set(b.Pos, cell)
	}
}

func materialize(offsets []Block, at Position) []Block {
	blocks := make([]Block, len(offsets))
	for i, b := range offsets {
		blocks[i] = b.translated(at)
	}
	return blocks
}

func collides(grid *Grid, blocks []Block) bool {
	for _, b := range blocks {
		if grid.Collision(b.Pos) {
			return true
		}
	}
	return false
}
