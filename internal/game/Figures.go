package game

import "fmt"

type ShapeKind int

const (
	BigSquare ShapeKind = iota
	Bar
	BarT
	Square
)

var AllShapeKinds = []ShapeKind{BigSquare, Bar, BarT, Square}

var shapeKindNames = map[ShapeKind]string{
	BigSquare: "BigSquare",
	Bar:       "Bar",
	BarT:      "BarT",
	Square:    "Square",
}

func (k ShapeKind) String() string {
	if name, ok := shapeKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// Rotation tables, authored by hand. Offsets are (row, col) from the shape's
// origin; every state of a variant has the same number of blocks.
var rotationTables = map[ShapeKind][][]Block{
	BigSquare: {
		{NewBlock(0, 0), NewBlock(0, 1), NewBlock(1, 0), NewBlock(1, 1)},
	},
	Bar: {
		{NewBlock(0, 1), NewBlock(1, 1), NewBlock(2, 1)},
		{NewBlock(1, 0), NewBlock(1, 1), NewBlock(1, 2)},
	},
	BarT: {
		{NewBlock(0, 0), NewBlock(0, 1), NewBlock(0, 2), NewBlock(1, 1)},
		{NewBlock(0, 1), NewBlock(1, 0), NewBlock(1, 1), NewBlock(2, 1)},
		{NewBlock(0, 1), NewBlock(1, 0), NewBlock(1, 1), NewBlock(1, 2)},
		{NewBlock(0, 0), NewBlock(1, 0), NewBlock(1, 1), NewBlock(2, 0)},
	},
	Square: {
		{NewBlock(0, 0)},
	},
}

// NewShape places a variant at the given position in its first rotation state.
func NewShape(kind ShapeKind, at Position) Shape {
	states, ok := rotationTables[kind]
	if !ok {
		panic(fmt.Sprintf("game: no rotation table for %s", kind))
	}
	return newTableShape(kind, states, at)
}
