package game

// Strategy decides the next command for an automated player.
type Strategy interface {
	NextCommand(view ShapeView) (Command, error)
}
