package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotationTablesAreConsistent(t *testing.T) {
	wantStates := map[ShapeKind]int{BigSquare: 1, Bar: 2, BarT: 4, Square: 1}
	wantBlocks := map[ShapeKind]int{BigSquare: 4, Bar: 3, BarT: 4, Square: 1}

	for _, kind := range AllShapeKinds {
		states := rotationTables[kind]
		require.Len(t, states, wantStates[kind], kind.String())
		shape := NewShape(kind, Position{}).(*tableShape)
		assert.Equal(t, wantStates[kind], shape.RotationCount(), kind.String())
		for i, state := range states {
			assert.Len(t, state, wantBlocks[kind], "%s state %d", kind, i)
			for _, b := range state {
				assert.False(t, b.IsEmpty())
			}
		}
	}
}

func TestShapeStartsAtPositionInFirstState(t *testing.T) {
	at := Position{Row: 2, Col: 3}
	s := NewShape(BarT, at)

	assert.Equal(t, at, s.Position())
	assert.Equal(t, 0, s.RotationIndex())
	assert.Equal(t, 4, s.BlockCount())
	assert.Equal(t, []Block{NewBlock(2, 3), NewBlock(2, 4), NewBlock(2, 5), NewBlock(3, 4)}, s.Blocks())
}

func TestBarTRotationWraps(t *testing.T) {
	g := NewGrid(8, 8)
	s := NewShape(BarT, Position{Row: 2, Col: 2})

	require.True(t, s.Rotate(g, CounterClockwise))
	assert.Equal(t, 3, s.RotationIndex(), "left from state 0")

	require.True(t, s.Rotate(g, Clockwise))
	assert.Equal(t, 0, s.RotationIndex(), "right from state 3")

	for i := 1; i <= 4; i++ {
		require.True(t, s.Rotate(g, Clockwise))
		assert.Equal(t, i%4, s.RotationIndex())
	}
}

func TestRotateKeepsAbsolutePosition(t *testing.T) {
	g := NewGrid(8, 8)
	s := NewShape(Bar, Position{Row: 1, Col: 1})

	require.True(t, s.Rotate(g, Clockwise))

	assert.Equal(t, Position{Row: 1, Col: 1}, s.Position())
	assert.Equal(t, []Block{NewBlock(2, 1), NewBlock(2, 2), NewBlock(2, 3)}, s.Blocks())
}

func TestSingleStateShapesIgnoreRotation(t *testing.T) {
	g := NewGrid(4, 4)
	for _, kind := range []ShapeKind{Square, BigSquare} {
		s := NewShape(kind, Position{Row: 0, Col: 0})
		before := s.Blocks()

		assert.True(t, s.Rotate(g, Clockwise), kind.String())
		assert.True(t, s.Rotate(g, CounterClockwise), kind.String())
		assert.Equal(t, 0, s.RotationIndex())
		assert.Equal(t, before, s.Blocks())
	}
}

func TestRejectedTranslateLeavesShapeUnchanged(t *testing.T) {
	g := gridFromRows(t,
		"______",
		"______",
		"___X__",
	)
	s := NewShape(BarT, Position{Row: 0, Col: 2})
	beforePos, beforeBlocks := s.Position(), s.Blocks()

	assert.False(t, s.Translate(g, Down), "stem would land on an occupied cell")
	assert.False(t, s.Translate(g, Position{Row: 0, Col: 2}), "would leave the grid")

	assert.Equal(t, beforePos, s.Position())
	assert.Equal(t, beforeBlocks, s.Blocks())

	assert.True(t, s.Translate(g, Left))
	assert.Equal(t, Position{Row: 0, Col: 1}, s.Position())
}

func TestRejectedRotateLeavesShapeUnchanged(t *testing.T) {
	g := NewGrid(4, 4)
	s := NewShape(Bar, Position{Row: 0, Col: 0})
	require.True(t, s.Translate(g, Position{Row: 0, Col: 2}))
	beforeBlocks := s.Blocks()

	// Horizontal state would need column 4.
	assert.False(t, s.Rotate(g, Clockwise))
	assert.Equal(t, 0, s.RotationIndex())
	assert.Equal(t, beforeBlocks, s.Blocks())
}

func TestShapeDraw(t *testing.T) {
	g := NewGrid(4, 3)
	s := NewShape(BigSquare, Position{Row: 1, Col: 1})

	s.Draw(g, DrawFill)
	assert.Equal(t, []string{"____", "_XX_", "_XX_"}, rowsOf(g))

	s.Draw(g, DrawClear)
	assert.Equal(t, []string{"____", "____", "____"}, rowsOf(g))
}

func TestShapeStaysInsideGrid(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	moves := []Position{Down, Left, Right, {Row: -1, Col: 0}}

	for _, kind := range AllShapeKinds {
		g := NewGrid(6, 8)
		s := NewShape(kind, SpawnPosition(g.Width()))

		for step := 0; step < 500; step++ {
			if rng.IntN(3) == 0 {
				s.Rotate(g, Direction(rng.IntN(2)*2-1))
			} else {
				s.Translate(g, moves[rng.IntN(len(moves))])
			}
			for _, b := range s.Blocks() {
				require.False(t, g.Collision(b.Pos), "%s block %s left the grid at step %d", kind, b.Pos, step)
			}
		}
	}
}

func TestBlockEqual(t *testing.T) {
	empty := Block{Pos: Position{1, 1}, Cell: Empty}
	otherEmpty := Block{Pos: Position{5, 5}, Cell: Empty}
	full := NewBlock(1, 1)

	assert.True(t, empty.Equal(otherEmpty))
	assert.False(t, empty.Equal(full))
	assert.False(t, full.Equal(NewBlock(1, 1)))
}
