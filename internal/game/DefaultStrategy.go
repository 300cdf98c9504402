package game

// DefaultStrategy steers the shape over the lowest column and drops it.
type DefaultStrategy struct{}

func (s *DefaultStrategy) NextCommand(view ShapeView) (Command, error) {
	target := lowestColumn(view.ColumnHeights)

	switch {
	case view.Position.Col > target:
		return MoveLeft, nil
	case view.Position.Col < target:
		return MoveRight, nil
	default:
		return MoveDown, nil
	}
}

// lowestColumn returns the leftmost column with the smallest stack.
func lowestColumn(heights []int) int {
	best := 0
	for col, h := range heights {
		if h < heights[best] {
			best = col
		}
	}
	return best
}
