package game

import "math/rand/v2"

// ShapeFactory creates every new shape at the same spawn position.
type ShapeFactory struct {
	spawnAt Position
	pick    func(n int) int
}

func NewShapeFactory(gridWidth int) *ShapeFactory {
	return newShapeFactoryWithPicker(gridWidth, rand.IntN)
}

func newShapeFactoryWithPicker(gridWidth int, pick func(n int) int) *ShapeFactory {
	return &ShapeFactory{
		spawnAt: SpawnPosition(gridWidth),
		pick:    pick,
	}
}

func SpawnPosition(gridWidth int) Position {
	return Position{Row: 0, Col: gridWidth/2 - 1}
}

func (f *ShapeFactory) SpawnAt() Position {
	return f.spawnAt
}

// Spawn picks one of the variants with equal probability.
func (f *ShapeFactory) Spawn() Shape {
	kind := AllShapeKinds[f.pick(len(AllShapeKinds))]
	return NewShape(kind, f.spawnAt)
}
