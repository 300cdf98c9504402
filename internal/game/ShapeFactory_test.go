package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpawnPosition(t *testing.T) {
	assert.Equal(t, Position{Row: 0, Col: 4}, SpawnPosition(10))
	assert.Equal(t, Position{Row: 0, Col: 1}, SpawnPosition(4))
	assert.Equal(t, Position{Row: 0, Col: 3}, NewShapeFactory(9).SpawnAt())
}

func TestFactorySpawnsEveryKindAtSpawnPosition(t *testing.T) {
	factory := newShapeFactoryWithPicker(10, sequencePicker(AllShapeKinds...))

	for _, want := range AllShapeKinds {
		s := factory.Spawn()
		assert.Equal(t, want, s.Kind())
		assert.Equal(t, Position{Row: 0, Col: 4}, s.Position())
		assert.Equal(t, 0, s.RotationIndex())
	}
}

func TestFactoryPicksKindsUniformly(t *testing.T) {
	factory := NewShapeFactory(10)
	counts := map[ShapeKind]int{}

	const spawns = 4000
	for i := 0; i < spawns; i++ {
		counts[factory.Spawn().Kind()]++
	}

	for _, kind := range AllShapeKinds {
		assert.InDelta(t, spawns/len(AllShapeKinds), counts[kind], 250, kind.String())
	}
}
