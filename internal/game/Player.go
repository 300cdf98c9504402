package game

import (
	"context"
	"sync"

	"github.com/charmbracelet/ssh"
)

// Player is one session's single-player game together with the goroutines
// that feed its command slot.
type Player struct {
	Name       string
	Color      string
	SshSession ssh.Session
	Game       *GameManager
	AutoPilot  *AutoPilot

	ctx        context.Context
	cancel     context.CancelFunc
	loopWaiter sync.WaitGroup

	// lifecycle orders Restart against stop so loopWaiter.Add never races Wait.
	lifecycle sync.Mutex
}

func (p *Player) IsBot() bool {
	return p.AutoPilot != nil
}

// Push forwards a player command. Ignored while the autopilot is driving.
func (p *Player) Push(cmd Command) {
	if p.IsBot() {
		return
	}
	p.Game.Slot().Push(cmd)
}

// Restart resets the board and starts a new game loop once the previous one
// has returned. Only a finished game of a live session can be restarted.
func (p *Player) Restart() {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	if p.ctx.Err() != nil || p.Game.State() != StateOver {
		return
	}
	p.loopWaiter.Wait()
	p.Game.Reset()
	p.startGameLoop()
}

// stop cancels the session goroutines and waits for the game loop.
func (p *Player) stop() {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	p.cancel()
	p.loopWaiter.Wait()
}

func (p *Player) startGameLoop() {
	p.loopWaiter.Add(1)
	go func() {
		defer p.loopWaiter.Done()
		p.Game.StartGameLoop(p.ctx)
	}()
}
