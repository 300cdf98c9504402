package game

import (
	"fmt"
	"sync"
)

type Command int

const (
	Idle Command = iota
	RotateLeft
	RotateRight
	MoveDown
	MoveLeft
	MoveRight
)

var AllCommands = []Command{Idle, RotateLeft, RotateRight, MoveDown, MoveLeft, MoveRight}

var commandNames = [...]string{
	Idle:        "Idle",
	RotateLeft:  "RotateLeft",
	RotateRight: "RotateRight",
	MoveDown:    "MoveDown",
	MoveLeft:    "MoveLeft",
	MoveRight:   "MoveRight",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return fmt.Sprintf("Command(%d)", int(c))
	}
	return commandNames[c]
}

func ParseCommand(name string) (Command, error) {
	for i, n := range commandNames {
		if n == name {
			return Command(i), nil
		}
	}
	return Idle, fmt.Errorf("unknown command %q", name)
}

// CommandSlot holds at most one pending command. A push overwrites whatever
// was there; the overwritten command is dropped without notice.
type CommandSlot struct {
	mu    sync.Mutex
	cmd   Command
	ready chan struct{}
}

func NewCommandSlot() *CommandSlot {
	return &CommandSlot{
		cmd:   Idle,
		ready: make(chan struct{}, 1),
	}
}

func (s *CommandSlot) Push(cmd Command) {
	s.mu.Lock()
	s.cmd = cmd
	s.mu.Unlock()

	if cmd == Idle {
		return
	}
	select {
	case s.ready <- struct{}{}:
	default:
	}
}

// Take returns the pending command and resets the slot to Idle.
func (s *CommandSlot) Take() Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	cmd := s.cmd
	s.cmd = Idle
	return cmd
}

func (s *CommandSlot) Peek() Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cmd
}

// Ready receives a value after a non-Idle push. It may fire once more than
// needed; Take then simply returns Idle.
func (s *CommandSlot) Ready() <-chan struct{} {
	return s.ready
}
