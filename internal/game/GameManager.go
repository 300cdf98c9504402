package game

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type GameState int

const (
	StatePlaying GameState = iota
	StateOver
)

func (s GameState) String() string {
	if s == StateOver {
		return "Over"
	}
	return "Playing"
}

type GameTickMsg struct{}
type GameOverMsg struct {
	Ticks int
}

// Snapshot is a consistent copy of the game for renderers.
type Snapshot struct {
	Cells    [][]Cell
	Kind     ShapeKind
	Position Position
	Rotation int
	State    GameState
	Ticks    int
}

// GameManager is the per-tick state machine. It owns the grid and exactly one
// live shape, and consumes commands from an injected slot.
type GameManager struct {
	grid    *Grid
	width   int
	height  int
	shape   Shape
	factory *ShapeFactory
	slot    *CommandSlot
	state   GameState
	ticks   int

	Stats         *CommandStats
	UpdateChannel chan tea.Msg
	MapMutex      sync.RWMutex
}

func NewGameManager(width int, height int, slot *CommandSlot) *GameManager {
	return newGameManager(NewGrid(width, height), NewShapeFactory(width), slot)
}

func newGameManager(grid *Grid, factory *ShapeFactory, slot *CommandSlot) *GameManager {
	gm := &GameManager{
		grid:          grid,
		width:         grid.Width(),
		height:        grid.Height(),
		factory:       factory,
		slot:          slot,
		state:         StatePlaying,
		Stats:         NewCommandStats(),
		UpdateChannel: make(chan tea.Msg, UpdateChannelBacklog),
	}
	gm.spawn()
	return gm
}

func (gm *GameManager) Slot() *CommandSlot {
	return gm.slot
}

// StartGameLoop ticks once for every command pushed into the slot until ctx is
// done or the game is over.
func (gm *GameManager) StartGameLoop(ctx context.Context) {
	log.Debug("Game loop started.")
	defer log.Debug("Game loop stopped.")

	for {
		select {
		case <-ctx.Done():
			return
		case <-gm.slot.Ready():
			gm.Tick()
			gm.publish(GameTickMsg{})
			if gm.State() == StateOver {
				gm.publish(GameOverMsg{Ticks: gm.Ticks()})
				return
			}
		}
	}
}

// Tick consumes the pending command and applies it.
func (gm *GameManager) Tick() {
	cmd := gm.slot.Take()

	gm.MapMutex.Lock()
	defer gm.MapMutex.Unlock()
	gm.apply(cmd)
}

func (gm *GameManager) apply(cmd Command) {
	if cmd == Idle || gm.state == StateOver {
		return
	}
	gm.ticks++
	gm.Stats.Record(cmd)

	gm.shape.Draw(gm.grid, DrawClear)

	switch cmd {
	case RotateLeft:
		gm.shape.Rotate(gm.grid, CounterClockwise)
	case RotateRight:
		gm.shape.Rotate(gm.grid, Clockwise)
	case MoveDown:
		if !gm.shape.Translate(gm.grid, Down) {
			gm.land()
		}
	case MoveLeft:
		gm.shape.Translate(gm.grid, Left)
	case MoveRight:
		gm.shape.Translate(gm.grid, Right)
	}

	// A blocked spawn leaves the landed shape in place; it is already drawn
	// and rows may have shifted under it.
	if gm.state == StateOver {
		return
	}
	gm.shape.Draw(gm.grid, DrawFill)
}

// land locks the current shape where it is, clears full rows and replaces the
// shape with a fresh one.
func (gm *GameManager) land() {
	gm.shape.Draw(gm.grid, DrawFill)
	removed := gm.grid.ClearFullRows()
	log.Debug("Shape landed", "kind", gm.shape.Kind(), "position", gm.shape.Position(), "rows_cleared", removed)
	gm.spawn()
}

func (gm *GameManager) spawn() {
	next := gm.factory.Spawn()
	if collides(gm.grid, next.Blocks()) {
		gm.state = StateOver
		log.Info("Spawn position blocked, game over", "kind", next.Kind(), "ticks", gm.ticks)
		return
	}
	gm.shape = next
	gm.shape.Draw(gm.grid, DrawFill)
}

// Reset starts a new game on an empty grid of the same size.
func (gm *GameManager) Reset() {
	gm.MapMutex.Lock()
	defer gm.MapMutex.Unlock()

	gm.grid = NewGrid(gm.width, gm.height)
	gm.state = StatePlaying
	gm.ticks = 0
	gm.slot.Take()
	gm.drainUpdates()
	gm.spawn()
}

// drainUpdates drops messages left over from the previous game.
func (gm *GameManager) drainUpdates() {
	for {
		select {
		case <-gm.UpdateChannel:
		default:
			return
		}
	}
}

func (gm *GameManager) publish(msg tea.Msg) {
	select {
	case gm.UpdateChannel <- msg:
	default:
	}
}

func (gm *GameManager) State() GameState {
	gm.MapMutex.RLock()
	defer gm.MapMutex.RUnlock()
	return gm.state
}

func (gm *GameManager) Ticks() int {
	gm.MapMutex.RLock()
	defer gm.MapMutex.RUnlock()
	return gm.ticks
}

func (gm *GameManager) Width() int { return gm.width }
func (gm *GameManager) Height() int { return gm.height }

func (gm *GameManager) Snapshot() Snapshot {
	gm.MapMutex.RLock()
	defer gm.MapMutex.RUnlock()

	return Snapshot{
		Cells:    gm.grid.Cells(),
		Kind:     gm.shape.Kind(),
		Position: gm.shape.Position(),
		Rotation: gm.shape.RotationIndex(),
		State:    gm.state,
		Ticks:    gm.ticks,
	}
}

// ShapeView is what input strategies get to see.
type ShapeView struct {
	Kind          ShapeKind
	Position      Position
	Rotation      int
	Width         int
	Height        int
	ColumnHeights []int
}

func (gm *GameManager) View() ShapeView {
	gm.MapMutex.RLock()
	defer gm.MapMutex.RUnlock()

	return ShapeView{
		Kind:          gm.shape.Kind(),
		Position:      gm.shape.Position(),
		Rotation:      gm.shape.RotationIndex(),
		Width:         gm.grid.Width(),
		Height:        gm.grid.Height(),
		ColumnHeights: gm.grid.ColumnHeights(gm.shape.Blocks()),
	}
}
